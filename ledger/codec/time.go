package codec

import (
	"time"
)

const (
	// RippleEpoch is the ledger epoch (2000-01-01T00:00:00Z) in unix seconds
	RippleEpoch int64 = 946684800

	isoFormat = "2006-01-02T15:04:05.000Z"
)

// Timestamp is an ISO-8601 UTC time string. The empty Timestamp means absent.
type Timestamp string

// Time parses the timestamp, zero time when absent or malformed
func (t Timestamp) Time() time.Time {
	if t == "" {
		return time.Time{}
	}
	v, err := time.Parse(time.RFC3339, string(t))
	if err != nil {
		return time.Time{}
	}
	return v
}

// Before is true when t is set and strictly before other
func (t Timestamp) Before(other time.Time) bool {
	return t != "" && t.Time().Before(other)
}

// FromRippleTime converts seconds since the ledger epoch
func FromRippleTime(seconds uint32) Timestamp {
	return Timestamp(time.Unix(int64(seconds)+RippleEpoch, 0).UTC().Format(isoFormat))
}

// ToRippleTime converts a time to seconds since the ledger epoch
func ToRippleTime(t time.Time) uint32 {
	return uint32(t.Unix() - RippleEpoch)
}

// EpochTime is the secondary codec ledger-epoch integer -> ISO string
var EpochTime = Chain(UInt32, Secondary[*uint32, Timestamp]{
	Decode: func(v *uint32) (Timestamp, error) {
		return FromRippleTime(*v), nil
	},
	Encode: func(t Timestamp) *uint32 {
		parsed := t.Time()
		if parsed.IsZero() {
			return nil
		}
		v := ToRippleTime(parsed)
		return &v
	},
})

package codec

import (
	"encoding/hex"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

func isHex(s string) bool {
	if len(s)%2 != 0 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// HashCodec passes through a fixed size hex hash.
// Case is kept as received; callers uppercase when comparing with data from other sources.
func HashCodec(size int) Codec[string] {
	return Codec[string]{
		Decode: func(raw interface{}) (string, error) {
			s, ok := raw.(string)
			if !ok || len(s) != size*2 || !isHex(s) {
				return "", invalid(ErrInvalidHash, raw)
			}
			return s, nil
		},
		Encode: func(s string) interface{} { return s },
	}
}

// hash codecs by width
var (
	Hash128 = HashCodec(16)
	Hash160 = HashCodec(20)
	Hash192 = HashCodec(24)
	Hash256 = HashCodec(32)
)

// Blob passes through a variable length hex string
var Blob = Codec[string]{
	Decode: func(raw interface{}) (string, error) {
		s, ok := raw.(string)
		if !ok || !isHex(s) {
			return "", invalid(ErrInvalidBlob, raw)
		}
		return s, nil
	},
	Encode: func(s string) interface{} { return s },
}

// String passes through any string
var String = Codec[string]{
	Decode: func(raw interface{}) (string, error) {
		s, ok := raw.(string)
		if !ok {
			return "", invalid(ErrInvalidString, raw)
		}
		return s, nil
	},
	Encode: func(s string) interface{} { return s },
}

// toUint64 accepts the numeric shapes JSON decoding can produce.
// hexString allows rippled's hex encoding of 64 bit fields.
func toUint64(raw interface{}, bitSize int, hexString bool) (uint64, error) {
	var (
		n   uint64
		err error
	)
	switch v := raw.(type) {
	case json.Number:
		n, err = strconv.ParseUint(v.String(), 10, bitSize)
	case string:
		if hexString {
			n, err = strconv.ParseUint(v, 16, bitSize)
		} else {
			n, err = strconv.ParseUint(strings.TrimSpace(v), 10, bitSize)
		}
	case float64:
		if v < 0 || v != math.Trunc(v) || v > math.MaxUint64 {
			return 0, invalid(ErrInvalidInteger, raw)
		}
		n = uint64(v)
	case int:
		if v < 0 {
			return 0, invalid(ErrInvalidInteger, raw)
		}
		n = uint64(v)
	case int64:
		if v < 0 {
			return 0, invalid(ErrInvalidInteger, raw)
		}
		n = uint64(v)
	case uint8:
		n = uint64(v)
	case uint16:
		n = uint64(v)
	case uint32:
		n = uint64(v)
	case uint64:
		n = v
	default:
		return 0, invalid(ErrInvalidInteger, raw)
	}
	if err != nil {
		return 0, invalid(ErrInvalidInteger, raw)
	}
	if bitSize < 64 && n > (uint64(1)<<uint(bitSize))-1 {
		return 0, invalid(ErrInvalidInteger, raw)
	}
	return n, nil
}

// UInt8 decodes 8 bit unsigned integers
var UInt8 = Codec[*uint8]{
	Decode: func(raw interface{}) (*uint8, error) {
		n, err := toUint64(raw, 8, false)
		if err != nil {
			return nil, err
		}
		v := uint8(n)
		return &v, nil
	},
	Encode: func(v *uint8) interface{} { return *v },
}

// UInt16 decodes 16 bit unsigned integers
var UInt16 = Codec[*uint16]{
	Decode: func(raw interface{}) (*uint16, error) {
		n, err := toUint64(raw, 16, false)
		if err != nil {
			return nil, err
		}
		v := uint16(n)
		return &v, nil
	},
	Encode: func(v *uint16) interface{} { return *v },
}

// UInt32 decodes 32 bit unsigned integers
var UInt32 = Codec[*uint32]{
	Decode: func(raw interface{}) (*uint32, error) {
		n, err := toUint64(raw, 32, false)
		if err != nil {
			return nil, err
		}
		v := uint32(n)
		return &v, nil
	},
	Encode: func(v *uint32) interface{} { return *v },
}

// UInt64 decodes 64 bit unsigned integers; rippled emits them as hex strings
var UInt64 = Codec[*uint64]{
	Decode: func(raw interface{}) (*uint64, error) {
		_, isString := raw.(string)
		n, err := toUint64(raw, 64, isString)
		if err != nil {
			return nil, err
		}
		return &n, nil
	},
	Encode: func(v *uint64) interface{} { return strconv.FormatUint(*v, 16) },
}

// HashArray decodes a list of 256 bit hashes
var HashArray = Codec[[]string]{
	Decode: func(raw interface{}) ([]string, error) {
		list, ok := raw.([]interface{})
		if !ok {
			return nil, invalid(ErrInvalidArray, raw)
		}
		hashes := make([]string, 0, len(list))
		for _, item := range list {
			h, err := Hash256.Decode(item)
			if err != nil {
				return nil, err
			}
			hashes = append(hashes, h)
		}
		return hashes, nil
	},
	Encode: func(hashes []string) interface{} {
		list := make([]interface{}, len(hashes))
		for i, h := range hashes {
			list[i] = h
		}
		return list
	},
}

// Object passes through a nested record
var Object = Codec[map[string]interface{}]{
	Decode: func(raw interface{}) (map[string]interface{}, error) {
		m, ok := raw.(map[string]interface{})
		if !ok {
			return nil, invalid(ErrInvalidObject, raw)
		}
		return m, nil
	},
	Encode: func(m map[string]interface{}) interface{} { return m },
}

// HexToText decodes hex to text, returning the input when it is not hex
func HexToText(s string) string {
	if s == "" || !isHex(s) {
		return s
	}
	b, _ := hex.DecodeString(s)
	return string(b)
}

// TextToHex is the inverse of HexToText
func TextToHex(s string) string {
	return strings.ToUpper(hex.EncodeToString([]byte(s)))
}

// StringArray decodes a list of strings (e.g. Amendments)
var StringArray = Codec[[]string]{
	Decode: func(raw interface{}) ([]string, error) {
		list, ok := raw.([]interface{})
		if !ok {
			return nil, invalid(ErrInvalidArray, raw)
		}
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, invalid(ErrInvalidArray, raw)
			}
			out = append(out, s)
		}
		return out, nil
	},
	Encode: func(list []string) interface{} {
		out := make([]interface{}, len(list))
		for i, s := range list {
			out[i] = s
		}
		return out
	},
}

package codec

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// NativeCurrency describes the ledger's base asset.
// Values of native amounts travel on the wire as integer strings of minor units (drops).
type NativeCurrency struct {
	Code     string
	Decimals int32
}

var native = NativeCurrency{Code: "XRP", Decimals: 6}

// SetNativeCurrency configures the native asset.
// Call it once at start up, before any entity is decoded.
func SetNativeCurrency(code string, decimals int32) {
	if code != "" {
		native.Code = code
	}
	if decimals > 0 {
		native.Decimals = decimals
	}
}

// Native returns the configured native asset
func Native() NativeCurrency {
	return native
}

// Amount is either a native amount in display units (Issuer empty) or an issued currency
// amount passed through from the wire unchanged.
type Amount struct {
	Currency string `json:"currency,omitempty"`
	Value    string `json:"value"`
	Issuer   string `json:"issuer,omitempty"`

	MPTokenIssuanceID string `json:"mpt_issuance_id,omitempty"`
}

// NewNativeAmount builds a native amount from a display value
func NewNativeAmount(value string) *Amount {
	return &Amount{Currency: native.Code, Value: value}
}

// IsNative is true for the ledger's base asset
func (a *Amount) IsNative() bool {
	return a != nil && a.Issuer == "" && a.MPTokenIssuanceID == "" && a.Currency == native.Code
}

// Decimal returns the display value, zero when the value is malformed
func (a *Amount) Decimal() decimal.Decimal {
	if a == nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(a.Value)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// IsZero reports a zero (or malformed) value
func (a *Amount) IsZero() bool {
	return a.Decimal().IsZero()
}

// Negate returns a copy with the sign flipped
func (a *Amount) Negate() *Amount {
	c := *a
	c.Value = a.Decimal().Neg().String()
	return &c
}

// Abs returns a copy with a positive value
func (a *Amount) Abs() *Amount {
	c := *a
	c.Value = a.Decimal().Abs().String()
	return &c
}

// SameAsset reports whether both amounts are denominated in the same asset
func (a *Amount) SameAsset(b *Amount) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Currency == b.Currency && a.Issuer == b.Issuer && a.MPTokenIssuanceID == b.MPTokenIssuanceID
}

// String is value/currency[/issuer]
func (a *Amount) String() string {
	if a == nil {
		return ""
	}
	if a.MPTokenIssuanceID != "" {
		return a.Value + "/" + a.MPTokenIssuanceID
	}
	s := a.Value + "/" + CurrencyDisplay(a.Currency)
	if a.Issuer != "" {
		s += "/" + a.Issuer
	}
	return s
}

// DropsToNative converts an integer drops string to a native display value
func DropsToNative(drops string) (string, error) {
	drops = strings.TrimSpace(drops)
	if drops == "" || strings.ContainsAny(drops, ".eE") {
		return "", invalid(ErrInvalidAmount, drops)
	}
	d, err := decimal.NewFromString(drops)
	if err != nil {
		return "", fmt.Errorf("%w: %s %v", ErrInvalidAmount, drops, err)
	}
	return d.Shift(-native.Decimals).String(), nil
}

// NativeToDrops is the inverse of DropsToNative
func NativeToDrops(value string) (string, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return "", fmt.Errorf("%w: %s %v", ErrInvalidAmount, value, err)
	}
	return d.Shift(native.Decimals).Truncate(0).String(), nil
}

// CurrencyDisplay renders 40 hex char currency codes as text when printable
func CurrencyDisplay(code string) string {
	if len(code) != 40 {
		return code
	}
	b, err := hex.DecodeString(code)
	if err != nil || b[0] == 0 {
		return code
	}
	text := strings.TrimRight(string(b), "\x00")
	for _, r := range text {
		if !unicode.IsPrint(r) {
			return code
		}
	}
	return text
}

func decodeIssuedAmount(m map[string]interface{}) (*Amount, error) {
	value, ok := m["value"].(string)
	if !ok {
		if n, isNum := m["value"].(json.Number); isNum {
			value = n.String()
		} else {
			return nil, invalid(ErrInvalidAmount, m)
		}
	}
	if _, err := decimal.NewFromString(value); err != nil {
		return nil, fmt.Errorf("%w: %s %v", ErrInvalidAmount, value, err)
	}
	if mpt, ok := m["mpt_issuance_id"].(string); ok {
		return &Amount{Value: value, MPTokenIssuanceID: mpt}, nil
	}
	currency, _ := m["currency"].(string)
	if currency == "" {
		return nil, invalid(ErrInvalidAmount, m)
	}
	issuer, _ := m["issuer"].(string)
	return &Amount{Currency: currency, Value: value, Issuer: issuer}, nil
}

// AmountCodec handles the dual native/issued representation.
// Every amount bearing field uses this one codec.
var AmountCodec = Codec[*Amount]{
	Decode: func(raw interface{}) (*Amount, error) {
		switch v := raw.(type) {
		case string:
			value, err := DropsToNative(v)
			if err != nil {
				return nil, err
			}
			return &Amount{Currency: native.Code, Value: value}, nil
		case json.Number:
			value, err := DropsToNative(v.String())
			if err != nil {
				return nil, err
			}
			return &Amount{Currency: native.Code, Value: value}, nil
		case map[string]interface{}:
			return decodeIssuedAmount(v)
		case *Amount:
			return v, nil
		default:
			return nil, invalid(ErrInvalidAmount, raw)
		}
	},
	Encode: func(a *Amount) interface{} {
		if a == nil {
			return nil
		}
		if a.IsNative() {
			drops, err := NativeToDrops(a.Value)
			if err != nil {
				return a.Value
			}
			return drops
		}
		if a.MPTokenIssuanceID != "" {
			return map[string]interface{}{"mpt_issuance_id": a.MPTokenIssuanceID, "value": a.Value}
		}
		m := map[string]interface{}{"currency": a.Currency, "value": a.Value}
		if a.Issuer != "" {
			m["issuer"] = a.Issuer
		}
		return m
	},
}

// Issue is an asset descriptor without a value, as used by AMM transactions
type Issue struct {
	Currency string `json:"currency"`
	Issuer   string `json:"issuer,omitempty"`
}

// IsNative is true for the ledger's base asset
func (i *Issue) IsNative() bool {
	return i != nil && i.Issuer == "" && i.Currency == native.Code
}

func (i *Issue) String() string {
	if i == nil {
		return ""
	}
	if i.Issuer == "" {
		return CurrencyDisplay(i.Currency)
	}
	return CurrencyDisplay(i.Currency) + "/" + i.Issuer
}

// IssueCodec decodes {currency, issuer?}
var IssueCodec = Codec[*Issue]{
	Decode: func(raw interface{}) (*Issue, error) {
		m, ok := raw.(map[string]interface{})
		if !ok {
			return nil, invalid(ErrInvalidObject, raw)
		}
		currency, _ := m["currency"].(string)
		if currency == "" {
			return nil, invalid(ErrInvalidObject, raw)
		}
		issuer, _ := m["issuer"].(string)
		return &Issue{Currency: currency, Issuer: issuer}, nil
	},
	Encode: func(i *Issue) interface{} {
		m := map[string]interface{}{"currency": i.Currency}
		if i.Issuer != "" {
			m["issuer"] = i.Issuer
		}
		return m
	},
}

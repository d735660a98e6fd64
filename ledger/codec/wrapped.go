package codec

import (
	"fmt"
)

// Wrapped maps an array of {Wrapper: {...}} envelopes to unwrapped structs.
func Wrapped[T any](wrapper string, decode func(map[string]interface{}) (T, error), encode func(T) map[string]interface{}) Codec[[]T] {
	c := Codec[[]T]{
		Decode: func(raw interface{}) ([]T, error) {
			list, ok := raw.([]interface{})
			if !ok {
				return nil, invalid(ErrInvalidArray, raw)
			}
			out := make([]T, 0, len(list))
			for i, item := range list {
				envelope, ok := item.(map[string]interface{})
				if !ok {
					return nil, fmt.Errorf("%w: element %d is not an object", ErrInvalidArray, i)
				}
				inner, ok := envelope[wrapper].(map[string]interface{})
				if !ok {
					return nil, fmt.Errorf("%w: element %d has no %s", ErrInvalidArray, i, wrapper)
				}
				v, err := decode(inner)
				if err != nil {
					return nil, fmt.Errorf("%w: element %d: %v", ErrInvalidArray, i, err)
				}
				out = append(out, v)
			}
			return out, nil
		},
	}
	if encode != nil {
		c.Encode = func(items []T) interface{} {
			list := make([]interface{}, len(items))
			for i, item := range items {
				list[i] = map[string]interface{}{wrapper: encode(item)}
			}
			return list
		}
	}
	return c
}

func optionalString(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

// Memo is an unwrapped memo with hex fields decoded to text
type Memo struct {
	Type   string `json:"type,omitempty"`
	Data   string `json:"data,omitempty"`
	Format string `json:"format,omitempty"`
}

// Memos codec
var Memos = Wrapped("Memo",
	func(m map[string]interface{}) (Memo, error) {
		return Memo{
			Type:   HexToText(optionalString(m, "MemoType")),
			Data:   HexToText(optionalString(m, "MemoData")),
			Format: HexToText(optionalString(m, "MemoFormat")),
		}, nil
	},
	func(memo Memo) map[string]interface{} {
		m := map[string]interface{}{}
		if memo.Type != "" {
			m["MemoType"] = TextToHex(memo.Type)
		}
		if memo.Data != "" {
			m["MemoData"] = TextToHex(memo.Data)
		}
		if memo.Format != "" {
			m["MemoFormat"] = TextToHex(memo.Format)
		}
		return m
	},
)

// Signer is one multi-signature
type Signer struct {
	Account       Address `json:"account"`
	TxnSignature  string  `json:"txnSignature"`
	SigningPubKey string  `json:"signingPubKey"`
}

// Signers codec
var Signers = Wrapped("Signer",
	func(m map[string]interface{}) (Signer, error) {
		account, err := Account.Decode(m["Account"])
		if err != nil {
			return Signer{}, err
		}
		return Signer{
			Account:       account,
			TxnSignature:  optionalString(m, "TxnSignature"),
			SigningPubKey: optionalString(m, "SigningPubKey"),
		}, nil
	},
	func(s Signer) map[string]interface{} {
		return map[string]interface{}{
			"Account":       string(s.Account),
			"TxnSignature":  s.TxnSignature,
			"SigningPubKey": s.SigningPubKey,
		}
	},
)

// SignerEntry is one member of a signer list
type SignerEntry struct {
	Account       Address `json:"account"`
	SignerWeight  uint16  `json:"signerWeight"`
	WalletLocator string  `json:"walletLocator,omitempty"`
}

// SignerEntries codec
var SignerEntries = Wrapped("SignerEntry",
	func(m map[string]interface{}) (SignerEntry, error) {
		account, err := Account.Decode(m["Account"])
		if err != nil {
			return SignerEntry{}, err
		}
		weight, err := UInt16.Decode(m["SignerWeight"])
		if err != nil {
			return SignerEntry{}, err
		}
		return SignerEntry{
			Account:       account,
			SignerWeight:  *weight,
			WalletLocator: optionalString(m, "WalletLocator"),
		}, nil
	},
	func(e SignerEntry) map[string]interface{} {
		m := map[string]interface{}{
			"Account":      string(e.Account),
			"SignerWeight": e.SignerWeight,
		}
		if e.WalletLocator != "" {
			m["WalletLocator"] = e.WalletLocator
		}
		return m
	},
)

// HookParameter is a name/value pair passed to hooks; both hex encoded on the wire
type HookParameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// HookParameters codec
var HookParameters = Wrapped("HookParameter",
	func(m map[string]interface{}) (HookParameter, error) {
		return HookParameter{
			Name:  HexToText(optionalString(m, "HookParameterName")),
			Value: optionalString(m, "HookParameterValue"),
		}, nil
	},
	func(p HookParameter) map[string]interface{} {
		return map[string]interface{}{
			"HookParameterName":  TextToHex(p.Name),
			"HookParameterValue": p.Value,
		}
	},
)

// Hook is one hook slot of a SetHook transaction
type Hook struct {
	HookHash      string `json:"hookHash,omitempty"`
	HookNamespace string `json:"hookNamespace,omitempty"`
	HookOn        string `json:"hookOn,omitempty"`
	CreateCode    string `json:"createCode,omitempty"`
	Flags         uint32 `json:"flags,omitempty"`
}

// IsEmpty is true for a slot left untouched
func (h Hook) IsEmpty() bool {
	return h.HookHash == "" && h.CreateCode == "" && h.HookNamespace == "" && h.HookOn == "" && h.Flags == 0
}

// Hooks codec
var Hooks = Wrapped("Hook",
	func(m map[string]interface{}) (Hook, error) {
		h := Hook{
			HookHash:      optionalString(m, "HookHash"),
			HookNamespace: optionalString(m, "HookNamespace"),
			HookOn:        optionalString(m, "HookOn"),
			CreateCode:    optionalString(m, "CreateCode"),
		}
		if raw, ok := m["Flags"]; ok {
			flags, err := UInt32.Decode(raw)
			if err != nil {
				return Hook{}, err
			}
			h.Flags = *flags
		}
		return h, nil
	},
	nil,
)

// AuthAccounts codec (AMMBid)
var AuthAccounts = Wrapped("AuthAccount",
	func(m map[string]interface{}) (Address, error) {
		return Account.Decode(m["Account"])
	},
	func(a Address) map[string]interface{} {
		return map[string]interface{}{"Account": string(a)}
	},
)

// AmountEntries codec (Remit)
var AmountEntries = Wrapped("AmountEntry",
	func(m map[string]interface{}) (*Amount, error) {
		return AmountCodec.Decode(m["Amount"])
	},
	func(a *Amount) map[string]interface{} {
		return map[string]interface{}{"Amount": AmountCodec.Encode(a)}
	},
)

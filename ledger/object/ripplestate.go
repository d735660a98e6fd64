package object

import (
	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
)

var rippleStateFlags = codec.FlagTable{
	{Name: "lsfLowReserve", Mask: 0x00010000},
	{Name: "lsfHighReserve", Mask: 0x00020000},
	{Name: "lsfLowAuth", Mask: 0x00040000},
	{Name: "lsfHighAuth", Mask: 0x00080000},
	{Name: "lsfLowNoRipple", Mask: 0x00100000},
	{Name: "lsfHighNoRipple", Mask: 0x00200000},
	{Name: "lsfLowFreeze", Mask: 0x00400000},
	{Name: "lsfHighFreeze", Mask: 0x00800000},
}

var (
	rippleStateBalance   = entity.NewRequiredField("Balance", codec.AmountCodec)
	rippleStateLowLimit  = entity.NewRequiredField("LowLimit", codec.AmountCodec)
	rippleStateHighLimit = entity.NewRequiredField("HighLimit", codec.AmountCodec)
	rippleStateLowNode   = entity.NewField("LowNode", codec.UInt64)
	rippleStateHighNode  = entity.NewField("HighNode", codec.UInt64)

	rippleStateSchema = register(NewSchema(TypeRippleState, rippleStateFlags,
		rippleStateBalance,
		rippleStateLowLimit,
		rippleStateHighLimit,
		rippleStateLowNode,
		rippleStateHighNode,
	), func(b *entity.Binding) Object { return &RippleState{Base{b}} })
)

// RippleState is a trust line between two accounts.
// Balance is stated from the low account's perspective with the placeholder issuer AccountOne.
type RippleState struct {
	Base
}

func (o *RippleState) Balance() *codec.Amount   { return rippleStateBalance.Get(o.b) }
func (o *RippleState) LowLimit() *codec.Amount  { return rippleStateLowLimit.Get(o.b) }
func (o *RippleState) HighLimit() *codec.Amount { return rippleStateHighLimit.Get(o.b) }

// Low is the account with the numerically lower id
func (o *RippleState) Low() codec.Address {
	if l := o.LowLimit(); l != nil {
		return codec.Address(l.Issuer)
	}
	return ""
}

// High is the other side of the line
func (o *RippleState) High() codec.Address {
	if h := o.HighLimit(); h != nil {
		return codec.Address(h.Issuer)
	}
	return ""
}

// Currency of the line
func (o *RippleState) Currency() string {
	if b := o.Balance(); b != nil {
		return b.Currency
	}
	return ""
}

// BalanceFor returns the balance held by account, issued by its counterparty.
// Nil when account is not a side of the line.
func (o *RippleState) BalanceFor(account codec.Address) *codec.Amount {
	balance := o.Balance()
	if balance == nil {
		return nil
	}
	switch account {
	case o.Low():
		return &codec.Amount{Currency: balance.Currency, Value: balance.Value, Issuer: string(o.High())}
	case o.High():
		negated := balance.Negate()
		return &codec.Amount{Currency: balance.Currency, Value: negated.Value, Issuer: string(o.Low())}
	default:
		return nil
	}
}

// LimitFor is the trust limit account extends to its counterparty
func (o *RippleState) LimitFor(account codec.Address) *codec.Amount {
	switch account {
	case o.Low():
		return o.LowLimit()
	case o.High():
		return o.HighLimit()
	default:
		return nil
	}
}

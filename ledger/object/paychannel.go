package object

import (
	"time"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
)

var (
	payChannelAccount        = entity.NewRequiredField("Account", codec.Account)
	payChannelDestination    = entity.NewRequiredField("Destination", codec.Account)
	payChannelAmount         = entity.NewRequiredField("Amount", codec.AmountCodec)
	payChannelBalance        = entity.NewRequiredField("Balance", codec.AmountCodec)
	payChannelSettleDelay    = entity.NewRequiredField("SettleDelay", codec.UInt32)
	payChannelPublicKey      = entity.NewField("PublicKey", codec.Blob)
	payChannelExpiration     = entity.NewField("Expiration", codec.EpochTime)
	payChannelCancelAfter    = entity.NewField("CancelAfter", codec.EpochTime)
	payChannelSourceTag      = entity.NewField("SourceTag", codec.UInt32)
	payChannelDestinationTag = entity.NewField("DestinationTag", codec.UInt32)

	payChannelSchema = register(NewSchema(TypePayChannel, nil,
		payChannelAccount,
		payChannelDestination,
		payChannelAmount,
		payChannelBalance,
		payChannelSettleDelay,
		payChannelPublicKey,
		payChannelExpiration,
		payChannelCancelAfter,
		payChannelSourceTag,
		payChannelDestinationTag,
	), func(b *entity.Binding) Object { return &PayChannel{Base{b}} })
)

// PayChannel is a unidirectional payment channel
type PayChannel struct {
	Base
}

func (o *PayChannel) Account() codec.Address       { return payChannelAccount.Get(o.b) }
func (o *PayChannel) Destination() codec.Address   { return payChannelDestination.Get(o.b) }
func (o *PayChannel) Amount() *codec.Amount        { return payChannelAmount.Get(o.b) }
func (o *PayChannel) Balance() *codec.Amount       { return payChannelBalance.Get(o.b) }
func (o *PayChannel) SettleDelay() uint32          { return u32(payChannelSettleDelay.Get(o.b)) }
func (o *PayChannel) PublicKey() string            { return payChannelPublicKey.Get(o.b) }
func (o *PayChannel) Expiration() codec.Timestamp  { return payChannelExpiration.Get(o.b) }
func (o *PayChannel) CancelAfter() codec.Timestamp { return payChannelCancelAfter.Get(o.b) }
func (o *PayChannel) DestinationTag() *uint32      { return payChannelDestinationTag.Get(o.b) }

// Remaining is Amount minus claimed Balance
func (o *PayChannel) Remaining() *codec.Amount {
	amount, balance := o.Amount(), o.Balance()
	if amount == nil {
		return nil
	}
	remaining := *amount
	remaining.Value = amount.Decimal().Sub(balance.Decimal()).String()
	return &remaining
}

// IsExpired is true once Expiration or CancelAfter has passed
func (o *PayChannel) IsExpired(now time.Time) bool {
	return o.Expiration().Before(now) || o.CancelAfter().Before(now)
}

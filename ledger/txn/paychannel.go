package txn

import (
	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
)

// payment channel transaction types
const (
	TypePaymentChannelCreate = "PaymentChannelCreate"
	TypePaymentChannelFund   = "PaymentChannelFund"
	TypePaymentChannelClaim  = "PaymentChannelClaim"
)

var (
	payChanCreateDestination    = entity.NewRequiredField("Destination", codec.Account)
	payChanCreateAmount         = entity.NewRequiredField("Amount", codec.AmountCodec)
	payChanCreateSettleDelay    = entity.NewRequiredField("SettleDelay", codec.UInt32)
	payChanCreatePublicKey      = entity.NewRequiredField("PublicKey", codec.Blob)
	payChanCreateCancelAfter    = entity.NewField("CancelAfter", codec.EpochTime)
	payChanCreateDestinationTag = entity.NewField("DestinationTag", codec.UInt32)

	_ = register(NewSchema(TypePaymentChannelCreate, nil,
		payChanCreateDestination,
		payChanCreateAmount,
		payChanCreateSettleDelay,
		payChanCreatePublicKey,
		payChanCreateCancelAfter,
		payChanCreateDestinationTag,
	), func(b *entity.Binding) Transaction { return &PaymentChannelCreate{Base{b}} })
)

// PaymentChannelCreate opens a channel funded with Amount
type PaymentChannelCreate struct {
	Base
}

func (t *PaymentChannelCreate) Destination() codec.Address   { return payChanCreateDestination.Get(t.b) }
func (t *PaymentChannelCreate) Amount() *codec.Amount        { return payChanCreateAmount.Get(t.b) }
func (t *PaymentChannelCreate) SettleDelay() uint32          { return u32(payChanCreateSettleDelay.Get(t.b)) }
func (t *PaymentChannelCreate) PublicKey() string            { return payChanCreatePublicKey.Get(t.b) }
func (t *PaymentChannelCreate) CancelAfter() codec.Timestamp { return payChanCreateCancelAfter.Get(t.b) }
func (t *PaymentChannelCreate) DestinationTag() *uint32      { return payChanCreateDestinationTag.Get(t.b) }

// Channel is the created channel id per metadata
func (t *PaymentChannelCreate) Channel() string {
	if node := t.Meta().First(entity.CreatedNode, "PayChannel"); node != nil {
		return node.LedgerIndex
	}
	return ""
}

var (
	payChanFundChannel    = entity.NewRequiredField("Channel", codec.Hash256)
	payChanFundAmount     = entity.NewRequiredField("Amount", codec.AmountCodec)
	payChanFundExpiration = entity.NewField("Expiration", codec.EpochTime)

	_ = register(NewSchema(TypePaymentChannelFund, nil,
		payChanFundChannel,
		payChanFundAmount,
		payChanFundExpiration,
	), func(b *entity.Binding) Transaction { return &PaymentChannelFund{Base{b}} })
)

// PaymentChannelFund adds Amount to a channel
type PaymentChannelFund struct {
	Base
}

func (t *PaymentChannelFund) Channel() string             { return payChanFundChannel.Get(t.b) }
func (t *PaymentChannelFund) Amount() *codec.Amount       { return payChanFundAmount.Get(t.b) }
func (t *PaymentChannelFund) Expiration() codec.Timestamp { return payChanFundExpiration.Get(t.b) }

var payChanClaimFlags = codec.FlagTable{
	{Name: "tfRenew", Mask: 0x00010000},
	{Name: "tfClose", Mask: 0x00020000},
}

var (
	payChanClaimChannel   = entity.NewRequiredField("Channel", codec.Hash256)
	payChanClaimBalance   = entity.NewField("Balance", codec.AmountCodec)
	payChanClaimAmount    = entity.NewField("Amount", codec.AmountCodec)
	payChanClaimSignature = entity.NewField("Signature", codec.Blob)
	payChanClaimPublicKey = entity.NewField("PublicKey", codec.Blob)

	_ = register(NewSchema(TypePaymentChannelClaim, payChanClaimFlags,
		payChanClaimChannel,
		payChanClaimBalance,
		payChanClaimAmount,
		payChanClaimSignature,
		payChanClaimPublicKey,
	), func(b *entity.Binding) Transaction { return &PaymentChannelClaim{Base{b}} })
)

// PaymentChannelClaim claims from and/or closes a channel
type PaymentChannelClaim struct {
	Base
}

func (t *PaymentChannelClaim) Channel() string        { return payChanClaimChannel.Get(t.b) }
func (t *PaymentChannelClaim) Balance() *codec.Amount { return payChanClaimBalance.Get(t.b) }
func (t *PaymentChannelClaim) Amount() *codec.Amount  { return payChanClaimAmount.Get(t.b) }
func (t *PaymentChannelClaim) Signature() string      { return payChanClaimSignature.Get(t.b) }
func (t *PaymentChannelClaim) PublicKey() string      { return payChanClaimPublicKey.Get(t.b) }
func (t *PaymentChannelClaim) IsClose() bool          { return t.Flags().Has("tfClose") }
func (t *PaymentChannelClaim) IsRenew() bool          { return t.Flags().Has("tfRenew") }

// Claimed is the amount paid out by this claim: the channel Balance delta per metadata
func (t *PaymentChannelClaim) Claimed() *codec.Amount {
	node := t.Meta().FindByIndex(t.Channel())
	if node == nil {
		return nil
	}
	prev, changed := node.Previous("Balance")
	if !changed {
		return nil
	}
	before, err := codec.AmountCodec.Decode(prev)
	if err != nil {
		return nil
	}
	after, err := codec.AmountCodec.Decode(node.Fields()["Balance"])
	if err != nil {
		return nil
	}
	delta := *after
	delta.Value = after.Decimal().Sub(before.Decimal()).String()
	return &delta
}

package object

import (
	"time"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
)

var (
	escrowAccount        = entity.NewRequiredField("Account", codec.Account)
	escrowDestination    = entity.NewRequiredField("Destination", codec.Account)
	escrowAmount         = entity.NewRequiredField("Amount", codec.AmountCodec)
	escrowCondition      = entity.NewField("Condition", codec.Blob)
	escrowCancelAfter    = entity.NewField("CancelAfter", codec.EpochTime)
	escrowFinishAfter    = entity.NewField("FinishAfter", codec.EpochTime)
	escrowSourceTag      = entity.NewField("SourceTag", codec.UInt32)
	escrowDestinationTag = entity.NewField("DestinationTag", codec.UInt32)
	escrowDestNode       = entity.NewField("DestinationNode", codec.UInt64)

	escrowSchema = register(NewSchema(TypeEscrow, nil,
		escrowAccount,
		escrowDestination,
		escrowAmount,
		escrowCondition,
		escrowCancelAfter,
		escrowFinishAfter,
		escrowSourceTag,
		escrowDestinationTag,
		escrowDestNode,
	), func(b *entity.Binding) Object { return &Escrow{Base{b}} })
)

// Escrow holds an amount until it is finished or cancelled
type Escrow struct {
	Base
}

func (o *Escrow) Account() codec.Address       { return escrowAccount.Get(o.b) }
func (o *Escrow) Destination() codec.Address   { return escrowDestination.Get(o.b) }
func (o *Escrow) Amount() *codec.Amount        { return escrowAmount.Get(o.b) }
func (o *Escrow) Condition() string            { return escrowCondition.Get(o.b) }
func (o *Escrow) CancelAfter() codec.Timestamp { return escrowCancelAfter.Get(o.b) }
func (o *Escrow) FinishAfter() codec.Timestamp { return escrowFinishAfter.Get(o.b) }
func (o *Escrow) SourceTag() *uint32           { return escrowSourceTag.Get(o.b) }
func (o *Escrow) DestinationTag() *uint32      { return escrowDestinationTag.Get(o.b) }

// IsExpired is true iff CancelAfter is set and strictly before now
func (o *Escrow) IsExpired(now time.Time) bool {
	return o.CancelAfter().Before(now)
}

// CanFinish is true when not expired and FinishAfter is unset or has passed
func (o *Escrow) CanFinish(now time.Time) bool {
	if o.IsExpired(now) {
		return false
	}
	finishAfter := o.FinishAfter()
	return finishAfter == "" || finishAfter.Before(now)
}

// CanCancel is true once the escrow expired
func (o *Escrow) CanCancel(now time.Time) bool {
	return o.IsExpired(now)
}

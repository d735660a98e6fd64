package object

import (
	"time"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
)

var (
	checkAccount        = entity.NewRequiredField("Account", codec.Account)
	checkDestination    = entity.NewRequiredField("Destination", codec.Account)
	checkSendMax        = entity.NewRequiredField("SendMax", codec.AmountCodec)
	checkSequence       = entity.NewRequiredField("Sequence", codec.UInt32)
	checkExpiration     = entity.NewField("Expiration", codec.EpochTime)
	checkInvoiceID      = entity.NewField("InvoiceID", codec.Hash256)
	checkSourceTag      = entity.NewField("SourceTag", codec.UInt32)
	checkDestinationTag = entity.NewField("DestinationTag", codec.UInt32)
	checkDestNode       = entity.NewField("DestinationNode", codec.UInt64)

	checkSchema = register(NewSchema(TypeCheck, nil,
		checkAccount,
		checkDestination,
		checkSendMax,
		checkSequence,
		checkExpiration,
		checkInvoiceID,
		checkSourceTag,
		checkDestinationTag,
		checkDestNode,
	), func(b *entity.Binding) Object { return &Check{Base{b}} })
)

// Check is a deferred payment the destination may cash
type Check struct {
	Base
}

func (o *Check) Account() codec.Address      { return checkAccount.Get(o.b) }
func (o *Check) Destination() codec.Address  { return checkDestination.Get(o.b) }
func (o *Check) SendMax() *codec.Amount      { return checkSendMax.Get(o.b) }
func (o *Check) Sequence() uint32            { return u32(checkSequence.Get(o.b)) }
func (o *Check) Expiration() codec.Timestamp { return checkExpiration.Get(o.b) }
func (o *Check) InvoiceID() string           { return checkInvoiceID.Get(o.b) }
func (o *Check) DestinationTag() *uint32     { return checkDestinationTag.Get(o.b) }

// IsExpired is true once Expiration has passed
func (o *Check) IsExpired(now time.Time) bool {
	return o.Expiration().Before(now)
}

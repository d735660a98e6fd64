package txn

import (
	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
	"github.com/anyswap/xrpl-txmodel/ledger/object"
)

// check transaction types
const (
	TypeCheckCreate = "CheckCreate"
	TypeCheckCash   = "CheckCash"
	TypeCheckCancel = "CheckCancel"
)

var (
	checkCreateDestination    = entity.NewRequiredField("Destination", codec.Account)
	checkCreateSendMax        = entity.NewRequiredField("SendMax", codec.AmountCodec)
	checkCreateDestinationTag = entity.NewField("DestinationTag", codec.UInt32)
	checkCreateExpiration     = entity.NewField("Expiration", codec.EpochTime)
	checkCreateInvoiceID      = entity.NewField("InvoiceID", codec.Hash256)

	_ = register(NewSchema(TypeCheckCreate, nil,
		checkCreateDestination,
		checkCreateSendMax,
		checkCreateDestinationTag,
		checkCreateExpiration,
		checkCreateInvoiceID,
	), func(b *entity.Binding) Transaction { return &CheckCreate{Base{b}} })
)

// CheckCreate writes a check Destination may cash up to SendMax
type CheckCreate struct {
	Base
}

func (t *CheckCreate) Destination() codec.Address  { return checkCreateDestination.Get(t.b) }
func (t *CheckCreate) SendMax() *codec.Amount      { return checkCreateSendMax.Get(t.b) }
func (t *CheckCreate) DestinationTag() *uint32     { return checkCreateDestinationTag.Get(t.b) }
func (t *CheckCreate) Expiration() codec.Timestamp { return checkCreateExpiration.Get(t.b) }
func (t *CheckCreate) InvoiceID() string           { return checkCreateInvoiceID.Get(t.b) }

var (
	checkCashCheckID    = entity.NewRequiredField("CheckID", codec.Hash256)
	checkCashAmount     = entity.NewField("Amount", codec.AmountCodec)
	checkCashDeliverMin = entity.NewField("DeliverMin", codec.AmountCodec)

	_ = register(NewSchema(TypeCheckCash, nil,
		checkCashCheckID,
		checkCashAmount,
		checkCashDeliverMin,
	), func(b *entity.Binding) Transaction { return &CheckCash{Base: Base{b}} })
)

// CheckCash redeems a check for Amount exactly or at least DeliverMin
type CheckCash struct {
	Base
	check related[*object.Check]
}

func (t *CheckCash) CheckID() string           { return checkCashCheckID.Get(t.b) }
func (t *CheckCash) Amount() *codec.Amount     { return checkCashAmount.Get(t.b) }
func (t *CheckCash) DeliverMin() *codec.Amount { return checkCashDeliverMin.Get(t.b) }

// Check is the cashed check, nil until resolved
func (t *CheckCash) Check() *object.Check { return t.check.get() }

// AttachCheck sets the check once
func (t *CheckCash) AttachCheck(c *object.Check) bool { return t.check.attach(c) }

// ResolveRelated finds the deleted check in metadata
func (t *CheckCash) ResolveRelated() {
	if c, ok := findRelated[*object.Check](t.Meta(), entity.DeletedNode, object.TypeCheck, byIndex(t.CheckID())); ok {
		t.AttachCheck(c)
	}
}

var (
	checkCancelCheckID = entity.NewRequiredField("CheckID", codec.Hash256)

	_ = register(NewSchema(TypeCheckCancel, nil,
		checkCancelCheckID,
	), func(b *entity.Binding) Transaction { return &CheckCancel{Base: Base{b}} })
)

// CheckCancel removes a check without cashing it
type CheckCancel struct {
	Base
	check related[*object.Check]
}

func (t *CheckCancel) CheckID() string { return checkCancelCheckID.Get(t.b) }

// Check is the cancelled check, nil until resolved
func (t *CheckCancel) Check() *object.Check { return t.check.get() }

// AttachCheck sets the check once
func (t *CheckCancel) AttachCheck(c *object.Check) bool { return t.check.attach(c) }

// ResolveRelated finds the deleted check in metadata
func (t *CheckCancel) ResolveRelated() {
	if c, ok := findRelated[*object.Check](t.Meta(), entity.DeletedNode, object.TypeCheck, byIndex(t.CheckID())); ok {
		t.AttachCheck(c)
	}
}

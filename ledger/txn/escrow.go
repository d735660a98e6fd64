package txn

import (
	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
	"github.com/anyswap/xrpl-txmodel/ledger/keylet"
	"github.com/anyswap/xrpl-txmodel/ledger/object"
)

// escrow transaction types
const (
	TypeEscrowCreate = "EscrowCreate"
	TypeEscrowFinish = "EscrowFinish"
	TypeEscrowCancel = "EscrowCancel"
)

var (
	escrowCreateDestination    = entity.NewRequiredField("Destination", codec.Account)
	escrowCreateAmount         = entity.NewRequiredField("Amount", codec.AmountCodec)
	escrowCreateCancelAfter    = entity.NewField("CancelAfter", codec.EpochTime)
	escrowCreateFinishAfter    = entity.NewField("FinishAfter", codec.EpochTime)
	escrowCreateCondition      = entity.NewField("Condition", codec.Blob)
	escrowCreateDestinationTag = entity.NewField("DestinationTag", codec.UInt32)

	_ = register(NewSchema(TypeEscrowCreate, nil,
		escrowCreateDestination,
		escrowCreateAmount,
		escrowCreateCancelAfter,
		escrowCreateFinishAfter,
		escrowCreateCondition,
		escrowCreateDestinationTag,
	), func(b *entity.Binding) Transaction { return &EscrowCreate{Base{b}} })
)

// EscrowCreate locks Amount until FinishAfter or a crypto condition is met
type EscrowCreate struct {
	Base
}

func (t *EscrowCreate) Destination() codec.Address   { return escrowCreateDestination.Get(t.b) }
func (t *EscrowCreate) Amount() *codec.Amount        { return escrowCreateAmount.Get(t.b) }
func (t *EscrowCreate) CancelAfter() codec.Timestamp { return escrowCreateCancelAfter.Get(t.b) }
func (t *EscrowCreate) FinishAfter() codec.Timestamp { return escrowCreateFinishAfter.Get(t.b) }
func (t *EscrowCreate) Condition() string            { return escrowCreateCondition.Get(t.b) }
func (t *EscrowCreate) DestinationTag() *uint32      { return escrowCreateDestinationTag.Get(t.b) }

var (
	escrowFinishOwner         = entity.NewRequiredField("Owner", codec.Account)
	escrowFinishOfferSequence = entity.NewRequiredField("OfferSequence", codec.UInt32)
	escrowFinishCondition     = entity.NewField("Condition", codec.Blob)
	escrowFinishFulfillment   = entity.NewField("Fulfillment", codec.Blob)

	_ = register(NewSchema(TypeEscrowFinish, nil,
		escrowFinishOwner,
		escrowFinishOfferSequence,
		escrowFinishCondition,
		escrowFinishFulfillment,
	), func(b *entity.Binding) Transaction { return &EscrowFinish{Base: Base{b}} })
)

// EscrowFinish delivers an escrowed amount
type EscrowFinish struct {
	Base
	escrow related[*object.Escrow]
}

func (t *EscrowFinish) Owner() codec.Address  { return escrowFinishOwner.Get(t.b) }
func (t *EscrowFinish) OfferSequence() uint32 { return u32(escrowFinishOfferSequence.Get(t.b)) }
func (t *EscrowFinish) Condition() string     { return escrowFinishCondition.Get(t.b) }
func (t *EscrowFinish) Fulfillment() string   { return escrowFinishFulfillment.Get(t.b) }

// EscrowIndex is the ledger index of the referenced escrow
func (t *EscrowFinish) EscrowIndex() (string, error) {
	return keylet.Escrow(t.Owner(), t.OfferSequence())
}

// Escrow is the finished escrow, nil until resolved
func (t *EscrowFinish) Escrow() *object.Escrow { return t.escrow.get() }

// AttachEscrow sets the escrow once
func (t *EscrowFinish) AttachEscrow(e *object.Escrow) bool { return t.escrow.attach(e) }

// ResolveRelated finds the deleted escrow in metadata
func (t *EscrowFinish) ResolveRelated() {
	if e, ok := deletedEscrow(t.Meta(), t.Owner(), t.OfferSequence()); ok {
		t.AttachEscrow(e)
	}
}

var (
	escrowCancelOwner         = entity.NewRequiredField("Owner", codec.Account)
	escrowCancelOfferSequence = entity.NewRequiredField("OfferSequence", codec.UInt32)

	_ = register(NewSchema(TypeEscrowCancel, nil,
		escrowCancelOwner,
		escrowCancelOfferSequence,
	), func(b *entity.Binding) Transaction { return &EscrowCancel{Base: Base{b}} })
)

// EscrowCancel returns an expired escrow to its owner
type EscrowCancel struct {
	Base
	escrow related[*object.Escrow]
}

func (t *EscrowCancel) Owner() codec.Address  { return escrowCancelOwner.Get(t.b) }
func (t *EscrowCancel) OfferSequence() uint32 { return u32(escrowCancelOfferSequence.Get(t.b)) }

// EscrowIndex is the ledger index of the referenced escrow
func (t *EscrowCancel) EscrowIndex() (string, error) {
	return keylet.Escrow(t.Owner(), t.OfferSequence())
}

// Escrow is the cancelled escrow, nil until resolved
func (t *EscrowCancel) Escrow() *object.Escrow { return t.escrow.get() }

// AttachEscrow sets the escrow once
func (t *EscrowCancel) AttachEscrow(e *object.Escrow) bool { return t.escrow.attach(e) }

// ResolveRelated finds the deleted escrow in metadata
func (t *EscrowCancel) ResolveRelated() {
	if e, ok := deletedEscrow(t.Meta(), t.Owner(), t.OfferSequence()); ok {
		t.AttachEscrow(e)
	}
}

// deletedEscrow matches by keylet, falling back to the owner's only deleted escrow
func deletedEscrow(meta *entity.Meta, owner codec.Address, sequence uint32) (*object.Escrow, bool) {
	if index, err := keylet.Escrow(owner, sequence); err == nil {
		if e, ok := findRelated[*object.Escrow](meta, entity.DeletedNode, object.TypeEscrow, byIndex(index)); ok {
			return e, true
		}
	}
	return findRelated[*object.Escrow](meta, entity.DeletedNode, object.TypeEscrow, func(n *entity.AffectedNode) bool {
		return n.Fields().String("Account") == string(owner)
	})
}

package txn

import (
	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
	"github.com/anyswap/xrpl-txmodel/ledger/object"
)

// offer transaction types
const (
	TypeOfferCreate = "OfferCreate"
	TypeOfferCancel = "OfferCancel"
)

var offerCreateFlags = codec.FlagTable{
	{Name: "tfPassive", Mask: 0x00010000},
	{Name: "tfImmediateOrCancel", Mask: 0x00020000},
	{Name: "tfFillOrKill", Mask: 0x00040000},
	{Name: "tfSell", Mask: 0x00080000},
}

var (
	offerCreateTakerPays     = entity.NewRequiredField("TakerPays", codec.AmountCodec)
	offerCreateTakerGets     = entity.NewRequiredField("TakerGets", codec.AmountCodec)
	offerCreateExpiration    = entity.NewField("Expiration", codec.EpochTime)
	offerCreateOfferSequence = entity.NewField("OfferSequence", codec.UInt32)

	_ = register(NewSchema(TypeOfferCreate, offerCreateFlags,
		offerCreateTakerPays,
		offerCreateTakerGets,
		offerCreateExpiration,
		offerCreateOfferSequence,
	), func(b *entity.Binding) Transaction { return &OfferCreate{Base: Base{b}} })
)

// OfferCreate places an order on the DEX, optionally replacing OfferSequence
type OfferCreate struct {
	Base
	offer related[*object.Offer]
}

func (t *OfferCreate) TakerPays() *codec.Amount    { return offerCreateTakerPays.Get(t.b) }
func (t *OfferCreate) TakerGets() *codec.Amount    { return offerCreateTakerGets.Get(t.b) }
func (t *OfferCreate) Expiration() codec.Timestamp { return offerCreateExpiration.Get(t.b) }
func (t *OfferCreate) OfferSequence() *uint32      { return offerCreateOfferSequence.Get(t.b) }

// Offer is the offer left on the books, nil when fully filled or not yet resolved
func (t *OfferCreate) Offer() *object.Offer { return t.offer.get() }

// AttachOffer sets the created offer once
func (t *OfferCreate) AttachOffer(o *object.Offer) bool { return t.offer.attach(o) }

// ResolveRelated finds the created offer in metadata
func (t *OfferCreate) ResolveRelated() {
	account := t.Account()
	o, ok := findRelated[*object.Offer](t.Meta(), entity.CreatedNode, object.TypeOffer, func(n *entity.AffectedNode) bool {
		return n.Fields().String("Account") == string(account)
	})
	if ok {
		t.AttachOffer(o)
	}
}

var (
	offerCancelOfferSequence = entity.NewRequiredField("OfferSequence", codec.UInt32)

	_ = register(NewSchema(TypeOfferCancel, nil,
		offerCancelOfferSequence,
	), func(b *entity.Binding) Transaction { return &OfferCancel{Base{b}} })
)

// OfferCancel removes the offer created at OfferSequence
type OfferCancel struct {
	Base
}

func (t *OfferCancel) OfferSequence() uint32 { return u32(offerCancelOfferSequence.Get(t.b)) }

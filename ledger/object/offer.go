package object

import (
	"time"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
)

var offerFlags = codec.FlagTable{
	{Name: "lsfPassive", Mask: 0x00010000},
	{Name: "lsfSell", Mask: 0x00020000},
}

var (
	offerAccount       = entity.NewRequiredField("Account", codec.Account)
	offerSequence      = entity.NewRequiredField("Sequence", codec.UInt32)
	offerTakerPays     = entity.NewRequiredField("TakerPays", codec.AmountCodec)
	offerTakerGets     = entity.NewRequiredField("TakerGets", codec.AmountCodec)
	offerBookDirectory = entity.NewField("BookDirectory", codec.Hash256)
	offerBookNode      = entity.NewField("BookNode", codec.UInt64)
	offerExpiration    = entity.NewField("Expiration", codec.EpochTime)

	offerSchema = register(NewSchema(TypeOffer, offerFlags,
		offerAccount,
		offerSequence,
		offerTakerPays,
		offerTakerGets,
		offerBookDirectory,
		offerBookNode,
		offerExpiration,
	), func(b *entity.Binding) Object { return &Offer{Base{b}} })
)

// Offer is a standing order on the DEX
type Offer struct {
	Base
}

func (o *Offer) Account() codec.Address      { return offerAccount.Get(o.b) }
func (o *Offer) Sequence() uint32            { return u32(offerSequence.Get(o.b)) }
func (o *Offer) TakerPays() *codec.Amount    { return offerTakerPays.Get(o.b) }
func (o *Offer) TakerGets() *codec.Amount    { return offerTakerGets.Get(o.b) }
func (o *Offer) Expiration() codec.Timestamp { return offerExpiration.Get(o.b) }

// IsExpired is true once Expiration has passed
func (o *Offer) IsExpired(now time.Time) bool {
	return o.Expiration().Before(now)
}

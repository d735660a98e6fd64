package object

import (
	"time"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
)

var nftokenOfferFlags = codec.FlagTable{
	{Name: "lsfSellNFToken", Mask: 0x00000001},
}

var (
	nftokenOfferOwner       = entity.NewRequiredField("Owner", codec.Account)
	nftokenOfferNFTokenID   = entity.NewRequiredField("NFTokenID", codec.Hash256)
	nftokenOfferAmount      = entity.NewRequiredField("Amount", codec.AmountCodec)
	nftokenOfferDestination = entity.NewField("Destination", codec.Account)
	nftokenOfferExpiration  = entity.NewField("Expiration", codec.EpochTime)
	nftokenOfferNode        = entity.NewField("NFTokenOfferNode", codec.UInt64)

	nftokenOfferSchema = register(NewSchema(TypeNFTokenOffer, nftokenOfferFlags,
		nftokenOfferOwner,
		nftokenOfferNFTokenID,
		nftokenOfferAmount,
		nftokenOfferDestination,
		nftokenOfferExpiration,
		nftokenOfferNode,
	), func(b *entity.Binding) Object { return &NFTokenOffer{Base{b}} })
)

// NFTokenOffer is a buy or sell offer for one NFToken
type NFTokenOffer struct {
	Base
}

func (o *NFTokenOffer) Owner() codec.Address        { return nftokenOfferOwner.Get(o.b) }
func (o *NFTokenOffer) NFTokenID() string           { return nftokenOfferNFTokenID.Get(o.b) }
func (o *NFTokenOffer) Amount() *codec.Amount       { return nftokenOfferAmount.Get(o.b) }
func (o *NFTokenOffer) Destination() codec.Address  { return nftokenOfferDestination.Get(o.b) }
func (o *NFTokenOffer) Expiration() codec.Timestamp { return nftokenOfferExpiration.Get(o.b) }

// IsSellOffer is true when the owner sells the token
func (o *NFTokenOffer) IsSellOffer() bool {
	return o.Flags().Has("lsfSellNFToken")
}

// IsExpired is true once Expiration has passed
func (o *NFTokenOffer) IsExpired(now time.Time) bool {
	return o.Expiration().Before(now)
}

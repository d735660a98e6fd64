package object

import (
	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
)

var uriTokenFlags = codec.FlagTable{
	{Name: "lsfBurnable", Mask: 0x00000001},
}

var (
	uriTokenOwner       = entity.NewRequiredField("Owner", codec.Account)
	uriTokenIssuer      = entity.NewRequiredField("Issuer", codec.Account)
	uriTokenURI         = entity.NewRequiredField("URI", codec.Blob)
	uriTokenDigest      = entity.NewField("Digest", codec.Hash256)
	uriTokenAmount      = entity.NewField("Amount", codec.AmountCodec)
	uriTokenDestination = entity.NewField("Destination", codec.Account)

	uriTokenSchema = register(NewSchema(TypeURIToken, uriTokenFlags,
		uriTokenOwner,
		uriTokenIssuer,
		uriTokenURI,
		uriTokenDigest,
		uriTokenAmount,
		uriTokenDestination,
	), func(b *entity.Binding) Object { return &URIToken{Base{b}} })
)

// URIToken is a Xahau style non fungible token keyed by issuer and URI
type URIToken struct {
	Base
}

func (o *URIToken) Owner() codec.Address       { return uriTokenOwner.Get(o.b) }
func (o *URIToken) Issuer() codec.Address      { return uriTokenIssuer.Get(o.b) }
func (o *URIToken) Digest() string             { return uriTokenDigest.Get(o.b) }
func (o *URIToken) Destination() codec.Address { return uriTokenDestination.Get(o.b) }

// URI decoded from hex
func (o *URIToken) URI() string { return codec.HexToText(uriTokenURI.Get(o.b)) }

// Amount is the sell offer price, nil when not for sale
func (o *URIToken) Amount() *codec.Amount { return uriTokenAmount.Get(o.b) }

// IsForSale is true while a sell offer is attached
func (o *URIToken) IsForSale() bool { return o.Amount() != nil }

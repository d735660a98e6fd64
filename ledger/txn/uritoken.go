package txn

import (
	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
	"github.com/anyswap/xrpl-txmodel/ledger/keylet"
	"github.com/anyswap/xrpl-txmodel/ledger/object"
)

// URIToken transaction types
const (
	TypeURITokenMint            = "URITokenMint"
	TypeURITokenBurn            = "URITokenBurn"
	TypeURITokenBuy             = "URITokenBuy"
	TypeURITokenCreateSellOffer = "URITokenCreateSellOffer"
	TypeURITokenCancelSellOffer = "URITokenCancelSellOffer"
)

var uriTokenMintFlags = codec.FlagTable{
	{Name: "tfBurnable", Mask: 0x00000001},
}

var (
	uriTokenMintURI         = entity.NewRequiredField("URI", codec.Blob)
	uriTokenMintDigest      = entity.NewField("Digest", codec.Hash256)
	uriTokenMintAmount      = entity.NewField("Amount", codec.AmountCodec)
	uriTokenMintDestination = entity.NewField("Destination", codec.Account)

	_ = register(NewSchema(TypeURITokenMint, uriTokenMintFlags,
		uriTokenMintURI,
		uriTokenMintDigest,
		uriTokenMintAmount,
		uriTokenMintDestination,
	), func(b *entity.Binding) Transaction { return &URITokenMint{Base{b}} })
)

// URITokenMint mints a URIToken, optionally with a sell offer
type URITokenMint struct {
	Base
}

func (t *URITokenMint) URI() string                { return codec.HexToText(uriTokenMintURI.Get(t.b)) }
func (t *URITokenMint) Digest() string             { return uriTokenMintDigest.Get(t.b) }
func (t *URITokenMint) Amount() *codec.Amount      { return uriTokenMintAmount.Get(t.b) }
func (t *URITokenMint) Destination() codec.Address { return uriTokenMintDestination.Get(t.b) }

// URITokenID is the minted token's ledger index, derived from the issuer and URI
func (t *URITokenMint) URITokenID() (string, error) {
	if node := t.Meta().First(entity.CreatedNode, object.TypeURIToken); node != nil {
		return node.LedgerIndex, nil
	}
	return keylet.URIToken(t.Account(), uriTokenMintURI.Get(t.b))
}

var (
	uriTokenBurnID = entity.NewRequiredField("URITokenID", codec.Hash256)

	_ = register(NewSchema(TypeURITokenBurn, nil,
		uriTokenBurnID,
	), func(b *entity.Binding) Transaction { return &URITokenBurn{Base{b}} })
)

// URITokenBurn destroys a URIToken
type URITokenBurn struct {
	Base
}

func (t *URITokenBurn) URITokenID() string { return uriTokenBurnID.Get(t.b) }

var (
	uriTokenBuyID     = entity.NewRequiredField("URITokenID", codec.Hash256)
	uriTokenBuyAmount = entity.NewRequiredField("Amount", codec.AmountCodec)

	_ = register(NewSchema(TypeURITokenBuy, nil,
		uriTokenBuyID,
		uriTokenBuyAmount,
	), func(b *entity.Binding) Transaction { return &URITokenBuy{Base: Base{b}} })
)

// URITokenBuy buys a URIToken offered for sale
type URITokenBuy struct {
	Base
	token related[*object.URIToken]
}

func (t *URITokenBuy) URITokenID() string    { return uriTokenBuyID.Get(t.b) }
func (t *URITokenBuy) Amount() *codec.Amount { return uriTokenBuyAmount.Get(t.b) }

// URIToken is the bought token as left after the trade, nil until resolved
func (t *URITokenBuy) URIToken() *object.URIToken { return t.token.get() }

// AttachURIToken sets the token once
func (t *URITokenBuy) AttachURIToken(u *object.URIToken) bool { return t.token.attach(u) }

// ResolveRelated finds the modified token in metadata
func (t *URITokenBuy) ResolveRelated() {
	if u, ok := findRelated[*object.URIToken](t.Meta(), entity.ModifiedNode, object.TypeURIToken, byIndex(t.URITokenID())); ok {
		t.AttachURIToken(u)
	}
}

// Seller is the previous owner per metadata
func (t *URITokenBuy) Seller() codec.Address {
	node := t.Meta().FindByIndex(t.URITokenID())
	if node == nil {
		return ""
	}
	if prev, changed := node.Previous("Owner"); changed {
		if s, ok := prev.(string); ok {
			return codec.Address(s)
		}
	}
	return ""
}

var (
	uriTokenSellID          = entity.NewRequiredField("URITokenID", codec.Hash256)
	uriTokenSellAmount      = entity.NewRequiredField("Amount", codec.AmountCodec)
	uriTokenSellDestination = entity.NewField("Destination", codec.Account)

	_ = register(NewSchema(TypeURITokenCreateSellOffer, nil,
		uriTokenSellID,
		uriTokenSellAmount,
		uriTokenSellDestination,
	), func(b *entity.Binding) Transaction { return &URITokenCreateSellOffer{Base{b}} })
)

// URITokenCreateSellOffer offers an owned URIToken for sale
type URITokenCreateSellOffer struct {
	Base
}

func (t *URITokenCreateSellOffer) URITokenID() string         { return uriTokenSellID.Get(t.b) }
func (t *URITokenCreateSellOffer) Amount() *codec.Amount      { return uriTokenSellAmount.Get(t.b) }
func (t *URITokenCreateSellOffer) Destination() codec.Address { return uriTokenSellDestination.Get(t.b) }

var (
	uriTokenCancelSellID = entity.NewRequiredField("URITokenID", codec.Hash256)

	_ = register(NewSchema(TypeURITokenCancelSellOffer, nil,
		uriTokenCancelSellID,
	), func(b *entity.Binding) Transaction { return &URITokenCancelSellOffer{Base{b}} })
)

// URITokenCancelSellOffer withdraws a sell offer
type URITokenCancelSellOffer struct {
	Base
}

func (t *URITokenCancelSellOffer) URITokenID() string { return uriTokenCancelSellID.Get(t.b) }

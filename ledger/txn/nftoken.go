package txn

import (
	"errors"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
	"github.com/anyswap/xrpl-txmodel/ledger/nftoken"
	"github.com/anyswap/xrpl-txmodel/ledger/object"
)

// NFToken transaction types
const (
	TypeNFTokenMint        = "NFTokenMint"
	TypeNFTokenBurn        = "NFTokenBurn"
	TypeNFTokenCreateOffer = "NFTokenCreateOffer"
	TypeNFTokenCancelOffer = "NFTokenCancelOffer"
	TypeNFTokenAcceptOffer = "NFTokenAcceptOffer"
)

// ErrNFTokenIDUnavailable is returned when neither metadata nor the issuer's account root
// tell which token was minted
var ErrNFTokenIDUnavailable = errors.New("nftoken id not derivable from metadata")

var nftokenMintFlags = codec.FlagTable{
	{Name: "tfBurnable", Mask: 0x00000001},
	{Name: "tfOnlyXRP", Mask: 0x00000002},
	{Name: "tfTrustLine", Mask: 0x00000004},
	{Name: "tfTransferable", Mask: 0x00000008},
	{Name: "tfMutable", Mask: 0x00000010},
}

var (
	nftokenMintTaxon       = entity.NewRequiredField("NFTokenTaxon", codec.UInt32)
	nftokenMintIssuer      = entity.NewField("Issuer", codec.Account)
	nftokenMintTransferFee = entity.NewField("TransferFee", codec.UInt16)
	nftokenMintURI         = entity.NewField("URI", codec.Blob)
	nftokenMintAmount      = entity.NewField("Amount", codec.AmountCodec)
	nftokenMintDestination = entity.NewField("Destination", codec.Account)
	nftokenMintExpiration  = entity.NewField("Expiration", codec.EpochTime)

	_ = register(NewSchema(TypeNFTokenMint, nftokenMintFlags,
		nftokenMintTaxon,
		nftokenMintIssuer,
		nftokenMintTransferFee,
		nftokenMintURI,
		nftokenMintAmount,
		nftokenMintDestination,
		nftokenMintExpiration,
	), func(b *entity.Binding) Transaction { return &NFTokenMint{Base{b}} })
)

// NFTokenMint mints a token, optionally on behalf of Issuer and with a sell offer
type NFTokenMint struct {
	Base
}

func (t *NFTokenMint) NFTokenTaxon() uint32        { return u32(nftokenMintTaxon.Get(t.b)) }
func (t *NFTokenMint) URI() string                 { return codec.HexToText(nftokenMintURI.Get(t.b)) }
func (t *NFTokenMint) Amount() *codec.Amount       { return nftokenMintAmount.Get(t.b) }
func (t *NFTokenMint) Destination() codec.Address  { return nftokenMintDestination.Get(t.b) }
func (t *NFTokenMint) Expiration() codec.Timestamp { return nftokenMintExpiration.Get(t.b) }

// Issuer of the token: the Issuer field for authorized minters, Account otherwise
func (t *NFTokenMint) Issuer() codec.Address {
	if issuer := nftokenMintIssuer.Get(t.b); issuer != "" {
		return issuer
	}
	return t.Account()
}

// TransferFee in units of 1/100000
func (t *NFTokenMint) TransferFee() uint16 {
	if fee := nftokenMintTransferFee.Get(t.b); fee != nil {
		return *fee
	}
	return 0
}

// NFTokenID is the minted token id.
// It is taken from metadata when the server reports it, and computed from the issuer's
// account root otherwise: the token sequence is FirstNFTokenSequence plus the number of
// tokens minted before this one.
func (t *NFTokenMint) NFTokenID() (string, error) {
	meta := t.Meta()
	if !meta.IsSuccess() {
		return "", ErrNFTokenIDUnavailable
	}
	if meta.NFTokenID != "" {
		return meta.NFTokenID, nil
	}
	issuer := t.Issuer()
	for _, node := range meta.Find(entity.ModifiedNode, object.TypeAccountRoot) {
		fields := node.Fields()
		if fields.String("Account") != string(issuer) {
			continue
		}
		minted, err := codec.UInt32.Decode(fields["MintedNFTokens"])
		if err != nil || *minted == 0 {
			return "", ErrNFTokenIDUnavailable
		}
		var first uint32
		if v, err := codec.UInt32.Decode(fields["FirstNFTokenSequence"]); err == nil {
			first = *v
		}
		flags := uint16(t.RawFlags() & 0xFFFF)
		return nftoken.Encode(issuer, first+*minted-1, flags, t.TransferFee(), t.NFTokenTaxon())
	}
	return "", ErrNFTokenIDUnavailable
}

var (
	nftokenBurnID    = entity.NewRequiredField("NFTokenID", codec.Hash256)
	nftokenBurnOwner = entity.NewField("Owner", codec.Account)

	_ = register(NewSchema(TypeNFTokenBurn, nil,
		nftokenBurnID,
		nftokenBurnOwner,
	), func(b *entity.Binding) Transaction { return &NFTokenBurn{Base{b}} })
)

// NFTokenBurn destroys a token
type NFTokenBurn struct {
	Base
}

func (t *NFTokenBurn) NFTokenID() string { return nftokenBurnID.Get(t.b) }

// Owner of the burned token, Account when absent
func (t *NFTokenBurn) Owner() codec.Address {
	if owner := nftokenBurnOwner.Get(t.b); owner != "" {
		return owner
	}
	return t.Account()
}

var nftokenCreateOfferFlags = codec.FlagTable{
	{Name: "tfSellNFToken", Mask: 0x00000001},
}

var (
	nftokenCreateOfferID          = entity.NewRequiredField("NFTokenID", codec.Hash256)
	nftokenCreateOfferAmount      = entity.NewRequiredField("Amount", codec.AmountCodec)
	nftokenCreateOfferOwner       = entity.NewField("Owner", codec.Account)
	nftokenCreateOfferDestination = entity.NewField("Destination", codec.Account)
	nftokenCreateOfferExpiration  = entity.NewField("Expiration", codec.EpochTime)

	_ = register(NewSchema(TypeNFTokenCreateOffer, nftokenCreateOfferFlags,
		nftokenCreateOfferID,
		nftokenCreateOfferAmount,
		nftokenCreateOfferOwner,
		nftokenCreateOfferDestination,
		nftokenCreateOfferExpiration,
	), func(b *entity.Binding) Transaction { return &NFTokenCreateOffer{Base{b}} })
)

// NFTokenCreateOffer offers to buy (Owner set) or sell a token
type NFTokenCreateOffer struct {
	Base
}

func (t *NFTokenCreateOffer) NFTokenID() string           { return nftokenCreateOfferID.Get(t.b) }
func (t *NFTokenCreateOffer) Amount() *codec.Amount       { return nftokenCreateOfferAmount.Get(t.b) }
func (t *NFTokenCreateOffer) Owner() codec.Address        { return nftokenCreateOfferOwner.Get(t.b) }
func (t *NFTokenCreateOffer) Destination() codec.Address  { return nftokenCreateOfferDestination.Get(t.b) }
func (t *NFTokenCreateOffer) Expiration() codec.Timestamp { return nftokenCreateOfferExpiration.Get(t.b) }
func (t *NFTokenCreateOffer) IsSellOffer() bool           { return t.Flags().Has("tfSellNFToken") }

// OfferID is the created offer per metadata
func (t *NFTokenCreateOffer) OfferID() string {
	meta := t.Meta()
	if meta == nil {
		return ""
	}
	if meta.OfferID != "" {
		return meta.OfferID
	}
	if node := meta.First(entity.CreatedNode, object.TypeNFTokenOffer); node != nil {
		return node.LedgerIndex
	}
	return ""
}

var (
	nftokenCancelOfferOffers = entity.NewRequiredField("NFTokenOffers", codec.HashArray)

	_ = register(NewSchema(TypeNFTokenCancelOffer, nil,
		nftokenCancelOfferOffers,
	), func(b *entity.Binding) Transaction { return &NFTokenCancelOffer{Base{b}} })
)

// NFTokenCancelOffer removes offers
type NFTokenCancelOffer struct {
	Base
}

func (t *NFTokenCancelOffer) NFTokenOffers() []string { return nftokenCancelOfferOffers.Get(t.b) }

var (
	nftokenAcceptSellOffer = entity.NewField("NFTokenSellOffer", codec.Hash256)
	nftokenAcceptBuyOffer  = entity.NewField("NFTokenBuyOffer", codec.Hash256)
	nftokenAcceptBrokerFee = entity.NewField("NFTokenBrokerFee", codec.AmountCodec)

	_ = register(NewSchema(TypeNFTokenAcceptOffer, nil,
		nftokenAcceptSellOffer,
		nftokenAcceptBuyOffer,
		nftokenAcceptBrokerFee,
	), func(b *entity.Binding) Transaction { return &NFTokenAcceptOffer{Base: Base{b}} })
)

// NFTokenAcceptOffer accepts a sell offer, a buy offer or both (brokered)
type NFTokenAcceptOffer struct {
	Base
	sellOffer related[*object.NFTokenOffer]
	buyOffer  related[*object.NFTokenOffer]
}

func (t *NFTokenAcceptOffer) NFTokenSellOffer() string        { return nftokenAcceptSellOffer.Get(t.b) }
func (t *NFTokenAcceptOffer) NFTokenBuyOffer() string         { return nftokenAcceptBuyOffer.Get(t.b) }
func (t *NFTokenAcceptOffer) NFTokenBrokerFee() *codec.Amount { return nftokenAcceptBrokerFee.Get(t.b) }
func (t *NFTokenAcceptOffer) IsBrokered() bool                { return t.NFTokenSellOffer() != "" && t.NFTokenBuyOffer() != "" }
func (t *NFTokenAcceptOffer) SellOffer() *object.NFTokenOffer { return t.sellOffer.get() }
func (t *NFTokenAcceptOffer) BuyOffer() *object.NFTokenOffer  { return t.buyOffer.get() }

// AttachSellOffer sets the accepted sell offer once
func (t *NFTokenAcceptOffer) AttachSellOffer(o *object.NFTokenOffer) bool {
	return t.sellOffer.attach(o)
}

// AttachBuyOffer sets the accepted buy offer once
func (t *NFTokenAcceptOffer) AttachBuyOffer(o *object.NFTokenOffer) bool {
	return t.buyOffer.attach(o)
}

// ResolveRelated finds the consumed offers in metadata
func (t *NFTokenAcceptOffer) ResolveRelated() {
	meta := t.Meta()
	if o, ok := findRelated[*object.NFTokenOffer](meta, entity.DeletedNode, object.TypeNFTokenOffer, byIndex(t.NFTokenSellOffer())); ok {
		t.AttachSellOffer(o)
	}
	if o, ok := findRelated[*object.NFTokenOffer](meta, entity.DeletedNode, object.TypeNFTokenOffer, byIndex(t.NFTokenBuyOffer())); ok {
		t.AttachBuyOffer(o)
	}
}

// NFTokenID of the traded token, from whichever offer is resolved
func (t *NFTokenAcceptOffer) NFTokenID() string {
	if o := t.SellOffer(); o != nil {
		return o.NFTokenID()
	}
	if o := t.BuyOffer(); o != nil {
		return o.NFTokenID()
	}
	return ""
}

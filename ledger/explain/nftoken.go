package explain

import (
	"strconv"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/txn"
	"github.com/anyswap/xrpl-txmodel/log"
)

func init() {
	registerTx(txn.TypeNFTokenMint, newNFTokenMint)
	registerTx(txn.TypeNFTokenBurn, newNFTokenBurn)
	registerTx(txn.TypeNFTokenCreateOffer, newNFTokenCreateOffer)
	registerTx(txn.TypeNFTokenCancelOffer, newNFTokenCancelOffer)
	registerTx(txn.TypeNFTokenAcceptOffer, newNFTokenAcceptOffer)
}

func nftokenAsset(id string, owner codec.Address) []AssetDetail {
	if id == "" {
		return nil
	}
	return []AssetDetail{{Type: NFTokenAsset, NFTokenID: id, Owner: owner}}
}

type nftokenMint struct {
	txBase
	tx *txn.NFTokenMint
}

func newNFTokenMint(tx *txn.NFTokenMint, opts Options) Explainer {
	return &nftokenMint{newTxBase(tx, opts), tx}
}

func (e *nftokenMint) tokenID() string {
	id, err := e.tx.NFTokenID()
	if err != nil {
		log.Trace("minted token id unavailable", "hash", e.tx.Hash(), "err", err)
		return ""
	}
	return id
}

func (e *nftokenMint) Description() string {
	params := Params{
		"account": e.account(),
		"taxon":   strconv.FormatUint(uint64(e.tx.NFTokenTaxon()), 10),
	}
	desc := e.t("tx.NFTokenMint", params)
	if e.tx.Issuer() != e.tx.Account() {
		desc += " " + e.t("nftoken.onBehalf", Params{"issuer": string(e.tx.Issuer())})
	}
	if fee := e.tx.TransferFee(); fee > 0 {
		desc += " " + e.t("nftoken.transferFee", Params{"fee": strconv.FormatFloat(float64(fee)/1000, 'f', 3, 64) + "%"})
	}
	if uri := e.tx.URI(); uri != "" {
		desc += " " + e.t("nftoken.uri", Params{"uri": uri})
	}
	return desc
}

func (e *nftokenMint) Participants() Participants {
	p := Participants{Start: party(e.tx.Account(), e.tx.SourceTag())}
	if e.tx.Issuer() != e.tx.Account() {
		p.Through = party(e.tx.Issuer(), nil)
	}
	p.End = party(e.tx.Destination(), nil)
	return p
}

// MonetaryDetails: a mint with Amount also places a sell offer
func (e *nftokenMint) MonetaryDetails() *MonetaryDetails {
	d := e.monetary()
	d.add(e.tx.Amount(), PotentialEffect, Inc)
	return d
}

func (e *nftokenMint) AssetDetails() []AssetDetail {
	return nftokenAsset(e.tokenID(), e.tx.Account())
}

type nftokenBurn struct {
	txBase
	tx *txn.NFTokenBurn
}

func newNFTokenBurn(tx *txn.NFTokenBurn, opts Options) Explainer {
	return &nftokenBurn{newTxBase(tx, opts), tx}
}

func (e *nftokenBurn) Description() string {
	return e.t("tx.NFTokenBurn", Params{"account": e.account(), "token": e.tx.NFTokenID()})
}

func (e *nftokenBurn) Participants() Participants {
	return Participants{Start: party(e.tx.Account(), nil), End: party(e.tx.Owner(), nil)}
}

func (e *nftokenBurn) AssetDetails() []AssetDetail {
	return nftokenAsset(e.tx.NFTokenID(), e.tx.Owner())
}

type nftokenCreateOffer struct {
	txBase
	tx *txn.NFTokenCreateOffer
}

func newNFTokenCreateOffer(tx *txn.NFTokenCreateOffer, opts Options) Explainer {
	return &nftokenCreateOffer{newTxBase(tx, opts), tx}
}

func (e *nftokenCreateOffer) Description() string {
	params := Params{"account": e.account(), "token": e.tx.NFTokenID(), "amount": formatAmount(e.tx.Amount())}
	if e.tx.IsSellOffer() {
		return e.t("tx.NFTokenCreateOffer.sell", params)
	}
	params["owner"] = string(e.tx.Owner())
	return e.t("tx.NFTokenCreateOffer.buy", params)
}

func (e *nftokenCreateOffer) Participants() Participants {
	p := Participants{Start: party(e.tx.Account(), nil)}
	if e.tx.IsSellOffer() {
		p.End = party(e.tx.Destination(), nil)
	} else {
		p.End = party(e.tx.Owner(), nil)
	}
	return p
}

func (e *nftokenCreateOffer) MonetaryDetails() *MonetaryDetails {
	d := e.monetary()
	if e.tx.IsSellOffer() {
		d.add(e.tx.Amount(), PotentialEffect, Inc)
	} else {
		d.add(e.tx.Amount(), PotentialEffect, Dec)
	}
	return d
}

func (e *nftokenCreateOffer) AssetDetails() []AssetDetail {
	owner := e.tx.Account()
	if !e.tx.IsSellOffer() {
		owner = e.tx.Owner()
	}
	return nftokenAsset(e.tx.NFTokenID(), owner)
}

type nftokenCancelOffer struct {
	txBase
	tx *txn.NFTokenCancelOffer
}

func newNFTokenCancelOffer(tx *txn.NFTokenCancelOffer, opts Options) Explainer {
	return &nftokenCancelOffer{newTxBase(tx, opts), tx}
}

func (e *nftokenCancelOffer) Description() string {
	return e.t("tx.NFTokenCancelOffer", Params{"account": e.account(), "count": strconv.Itoa(len(e.tx.NFTokenOffers()))})
}

type nftokenAcceptOffer struct {
	txBase
	tx *txn.NFTokenAcceptOffer
}

func newNFTokenAcceptOffer(tx *txn.NFTokenAcceptOffer, opts Options) Explainer {
	return &nftokenAcceptOffer{newTxBase(tx, opts), tx}
}

func (e *nftokenAcceptOffer) Description() string {
	params := Params{"account": e.account(), "token": e.tx.NFTokenID()}
	switch {
	case e.tx.IsBrokered():
		params["fee"] = formatAmount(e.tx.NFTokenBrokerFee())
		return e.t("tx.NFTokenAcceptOffer.brokered", params)
	case e.tx.SellOffer() != nil:
		params["amount"] = formatAmount(e.tx.SellOffer().Amount())
		params["seller"] = string(e.tx.SellOffer().Owner())
		return e.t("tx.NFTokenAcceptOffer.sell", params)
	case e.tx.BuyOffer() != nil:
		params["amount"] = formatAmount(e.tx.BuyOffer().Amount())
		params["buyer"] = string(e.tx.BuyOffer().Owner())
		return e.t("tx.NFTokenAcceptOffer.buy", params)
	default:
		return e.t("tx.NFTokenAcceptOffer", params)
	}
}

// Participants: the seller starts, the buyer ends, a broker sits in between
func (e *nftokenAcceptOffer) Participants() Participants {
	sell, buy := e.tx.SellOffer(), e.tx.BuyOffer()
	var p Participants
	switch {
	case sell != nil && buy != nil:
		p.Start, p.Through, p.End = party(sell.Owner(), nil), party(e.tx.Account(), nil), party(buy.Owner(), nil)
	case sell != nil:
		p.Start, p.End = party(sell.Owner(), nil), party(e.tx.Account(), nil)
	case buy != nil:
		p.Start, p.End = party(e.tx.Account(), nil), party(buy.Owner(), nil)
	default:
		p.Start = party(e.tx.Account(), nil)
	}
	return p
}

func (e *nftokenAcceptOffer) MonetaryDetails() *MonetaryDetails {
	d := e.monetary()
	sell, buy := e.tx.SellOffer(), e.tx.BuyOffer()
	switch {
	case sell != nil && buy != nil:
		d.add(e.tx.NFTokenBrokerFee(), ImmediateEffect, e.towards(e.tx.Account()))
	case sell != nil:
		d.add(sell.Amount(), ImmediateEffect, e.towards(sell.Owner()))
	case buy != nil:
		d.add(buy.Amount(), ImmediateEffect, e.towards(e.tx.Account()))
	}
	return d
}

func (e *nftokenAcceptOffer) AssetDetails() []AssetDetail {
	var owner codec.Address
	if buy := e.tx.BuyOffer(); buy != nil {
		owner = buy.Owner()
	} else if e.tx.SellOffer() != nil {
		owner = e.tx.Account()
	}
	return nftokenAsset(e.tx.NFTokenID(), owner)
}

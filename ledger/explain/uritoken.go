package explain

import (
	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/txn"
	"github.com/anyswap/xrpl-txmodel/log"
)

func init() {
	registerTx(txn.TypeURITokenMint, newURITokenMint)
	registerTx(txn.TypeURITokenBurn, newURITokenBurn)
	registerTx(txn.TypeURITokenBuy, newURITokenBuy)
	registerTx(txn.TypeURITokenCreateSellOffer, newURITokenCreateSellOffer)
	registerTx(txn.TypeURITokenCancelSellOffer, newURITokenCancelSellOffer)
}

func uriTokenAsset(id string, owner codec.Address) []AssetDetail {
	if id == "" {
		return nil
	}
	return []AssetDetail{{Type: URITokenAsset, URITokenID: id, Owner: owner}}
}

type uriTokenMint struct {
	txBase
	tx *txn.URITokenMint
}

func newURITokenMint(tx *txn.URITokenMint, opts Options) Explainer {
	return &uriTokenMint{newTxBase(tx, opts), tx}
}

func (e *uriTokenMint) Description() string {
	desc := e.t("tx.URITokenMint", Params{"account": e.account(), "uri": e.tx.URI()})
	if amount := e.tx.Amount(); amount != nil {
		desc += " " + e.t("uritoken.forSale", Params{"amount": formatAmount(amount)})
	}
	return desc
}

func (e *uriTokenMint) Participants() Participants {
	return Participants{Start: party(e.tx.Account(), nil), End: party(e.tx.Destination(), nil)}
}

func (e *uriTokenMint) MonetaryDetails() *MonetaryDetails {
	d := e.monetary()
	d.add(e.tx.Amount(), PotentialEffect, Inc)
	return d
}

func (e *uriTokenMint) AssetDetails() []AssetDetail {
	id, err := e.tx.URITokenID()
	if err != nil {
		log.Trace("uri token id unavailable", "hash", e.tx.Hash(), "err", err)
	}
	return uriTokenAsset(id, e.tx.Account())
}

type uriTokenBurn struct {
	txBase
	tx *txn.URITokenBurn
}

func newURITokenBurn(tx *txn.URITokenBurn, opts Options) Explainer {
	return &uriTokenBurn{newTxBase(tx, opts), tx}
}

func (e *uriTokenBurn) Description() string {
	return e.t("tx.URITokenBurn", Params{"account": e.account(), "token": e.tx.URITokenID()})
}

func (e *uriTokenBurn) AssetDetails() []AssetDetail {
	return uriTokenAsset(e.tx.URITokenID(), e.tx.Account())
}

type uriTokenBuy struct {
	txBase
	tx *txn.URITokenBuy
}

func newURITokenBuy(tx *txn.URITokenBuy, opts Options) Explainer {
	return &uriTokenBuy{newTxBase(tx, opts), tx}
}

func (e *uriTokenBuy) Description() string {
	return e.t("tx.URITokenBuy", Params{"account": e.account(), "token": e.tx.URITokenID(), "amount": formatAmount(e.tx.Amount())})
}

func (e *uriTokenBuy) Participants() Participants {
	return Participants{Start: party(e.tx.Seller(), nil), End: party(e.tx.Account(), nil)}
}

func (e *uriTokenBuy) MonetaryDetails() *MonetaryDetails {
	d := e.monetary()
	action := Dec
	if seller := e.tx.Seller(); seller != "" && e.viewer() == seller {
		action = Inc
	}
	d.add(e.tx.Amount(), ImmediateEffect, action)
	return d
}

func (e *uriTokenBuy) AssetDetails() []AssetDetail {
	owner := e.tx.Account()
	if token := e.tx.URIToken(); token != nil {
		owner = token.Owner()
	}
	return uriTokenAsset(e.tx.URITokenID(), owner)
}

type uriTokenCreateSellOffer struct {
	txBase
	tx *txn.URITokenCreateSellOffer
}

func newURITokenCreateSellOffer(tx *txn.URITokenCreateSellOffer, opts Options) Explainer {
	return &uriTokenCreateSellOffer{newTxBase(tx, opts), tx}
}

func (e *uriTokenCreateSellOffer) Description() string {
	return e.t("tx.URITokenCreateSellOffer", Params{"account": e.account(), "token": e.tx.URITokenID(), "amount": formatAmount(e.tx.Amount())})
}

func (e *uriTokenCreateSellOffer) Participants() Participants {
	return Participants{Start: party(e.tx.Account(), nil), End: party(e.tx.Destination(), nil)}
}

func (e *uriTokenCreateSellOffer) MonetaryDetails() *MonetaryDetails {
	d := e.monetary()
	d.add(e.tx.Amount(), PotentialEffect, Inc)
	return d
}

func (e *uriTokenCreateSellOffer) AssetDetails() []AssetDetail {
	return uriTokenAsset(e.tx.URITokenID(), e.tx.Account())
}

type uriTokenCancelSellOffer struct {
	txBase
	tx *txn.URITokenCancelSellOffer
}

func newURITokenCancelSellOffer(tx *txn.URITokenCancelSellOffer, opts Options) Explainer {
	return &uriTokenCancelSellOffer{newTxBase(tx, opts), tx}
}

func (e *uriTokenCancelSellOffer) Description() string {
	return e.t("tx.URITokenCancelSellOffer", Params{"account": e.account(), "token": e.tx.URITokenID()})
}

func (e *uriTokenCancelSellOffer) AssetDetails() []AssetDetail {
	return uriTokenAsset(e.tx.URITokenID(), e.tx.Account())
}

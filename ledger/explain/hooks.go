package explain

import (
	"strconv"

	"github.com/anyswap/xrpl-txmodel/ledger/txn"
)

func init() {
	registerTx(txn.TypeSetHook, newSetHook)
	registerTx(txn.TypeInvoke, newInvoke)
	registerTx(txn.TypeImport, newImport)
	registerTx(txn.TypeClaimReward, newClaimReward)
	registerTx(txn.TypeRemit, newRemit)
}

type setHook struct {
	txBase
	tx *txn.SetHook
}

func newSetHook(tx *txn.SetHook, opts Options) Explainer {
	return &setHook{newTxBase(tx, opts), tx}
}

func (e *setHook) Description() string {
	installed := 0
	for _, h := range e.tx.Hooks() {
		if !h.IsEmpty() {
			installed++
		}
	}
	return e.t("tx.SetHook", Params{"account": e.account(), "count": strconv.Itoa(installed)})
}

type invoke struct {
	txBase
	tx *txn.Invoke
}

func newInvoke(tx *txn.Invoke, opts Options) Explainer {
	return &invoke{newTxBase(tx, opts), tx}
}

func (e *invoke) Description() string {
	if dest := e.tx.Destination(); dest != "" {
		return e.t("tx.Invoke.destination", Params{"account": e.account(), "destination": string(dest)})
	}
	return e.t("tx.Invoke", Params{"account": e.account()})
}

func (e *invoke) Participants() Participants {
	return Participants{Start: party(e.tx.Account(), nil), End: party(e.tx.Destination(), nil)}
}

type importTx struct {
	txBase
	tx *txn.Import
}

func newImport(tx *txn.Import, opts Options) Explainer {
	return &importTx{newTxBase(tx, opts), tx}
}

func (e *importTx) Description() string {
	return e.t("tx.Import", Params{"account": e.account()})
}

func (e *importTx) Participants() Participants {
	return Participants{Start: party(e.tx.Account(), nil), Through: party(e.tx.Issuer(), nil)}
}

type claimReward struct {
	txBase
	tx *txn.ClaimReward
}

func newClaimReward(tx *txn.ClaimReward, opts Options) Explainer {
	return &claimReward{newTxBase(tx, opts), tx}
}

func (e *claimReward) Description() string {
	if e.tx.IsOptOut() {
		return e.t("tx.ClaimReward.optOut", Params{"account": e.account()})
	}
	return e.t("tx.ClaimReward", Params{"account": e.account(), "issuer": string(e.tx.Issuer())})
}

func (e *claimReward) Participants() Participants {
	return Participants{Start: party(e.tx.Issuer(), nil), End: party(e.tx.Account(), nil)}
}

type remit struct {
	txBase
	tx *txn.Remit
}

func newRemit(tx *txn.Remit, opts Options) Explainer {
	return &remit{newTxBase(tx, opts), tx}
}

func (e *remit) Description() string {
	desc := e.t("tx.Remit", Params{
		"account":     e.account(),
		"destination": string(e.tx.Destination()),
		"amounts":     strconv.Itoa(len(e.tx.Amounts())),
		"tokens":      strconv.Itoa(len(e.tx.URITokenIDs())),
	})
	if uri := e.tx.MintURI(); uri != "" {
		desc += " " + e.t("remit.mint", Params{"uri": uri})
	}
	return desc
}

func (e *remit) Participants() Participants {
	return Participants{
		Start:   party(e.tx.Account(), e.tx.SourceTag()),
		Through: party(e.tx.Inform(), nil),
		End:     party(e.tx.Destination(), e.tx.DestinationTag()),
	}
}

func (e *remit) MonetaryDetails() *MonetaryDetails {
	d := e.monetary()
	action := e.towards(e.tx.Destination())
	for _, amount := range e.tx.Amounts() {
		d.add(amount, ImmediateEffect, action)
	}
	return d
}

func (e *remit) AssetDetails() []AssetDetail {
	var assets []AssetDetail
	for _, id := range e.tx.URITokenIDs() {
		assets = append(assets, uriTokenAsset(id, e.tx.Destination())...)
	}
	return assets
}

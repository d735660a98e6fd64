package explain

import (
	"strconv"

	"github.com/anyswap/xrpl-txmodel/ledger/txn"
)

func init() {
	registerTx(txn.TypePayment, newPayment)
	registerTx(txn.TypeTrustSet, newTrustSet)
	registerTx(txn.TypeAccountSet, newAccountSet)
	registerTx(txn.TypeAccountDelete, newAccountDelete)
	registerTx(txn.TypeSetRegularKey, newSetRegularKey)
	registerTx(txn.TypeSignerListSet, newSignerListSet)
	registerTx(txn.TypeDepositPreauth, newDepositPreauth)
	registerTx(txn.TypeTicketCreate, newTicketCreate)
}

type payment struct {
	txBase
	tx *txn.Payment
}

func newPayment(tx *txn.Payment, opts Options) Explainer {
	return &payment{newTxBase(tx, opts), tx}
}

func (e *payment) Description() string {
	amount := e.tx.DeliveredAmount()
	key := "tx.Payment"
	if e.tx.IsPartial() {
		key = "tx.Payment.partial"
	}
	return e.t(key, Params{
		"account":     e.account(),
		"destination": string(e.tx.Destination()),
		"amount":      formatAmount(amount),
	})
}

func (e *payment) Participants() Participants {
	return Participants{
		Start: party(e.tx.Account(), e.tx.SourceTag()),
		End:   party(e.tx.Destination(), e.tx.DestinationTag()),
	}
}

func (e *payment) MonetaryDetails() *MonetaryDetails {
	d := e.monetary()
	d.add(e.tx.DeliveredAmount(), ImmediateEffect, e.towards(e.tx.Destination()))
	return d
}

type trustSet struct {
	txBase
	tx *txn.TrustSet
}

func newTrustSet(tx *txn.TrustSet, opts Options) Explainer {
	return &trustSet{newTxBase(tx, opts), tx}
}

func (e *trustSet) Description() string {
	limit := e.tx.LimitAmount()
	if e.tx.IsRemoval() {
		return e.t("tx.TrustSet.remove", Params{"account": e.account(), "issuer": string(e.tx.Issuer()), "currency": currencyOf(limit)})
	}
	return e.t("tx.TrustSet", Params{"account": e.account(), "issuer": string(e.tx.Issuer()), "limit": formatAmount(limit)})
}

func (e *trustSet) Participants() Participants {
	return Participants{Start: party(e.tx.Account(), nil), End: party(e.tx.Issuer(), nil)}
}

type accountSet struct {
	txBase
	tx *txn.AccountSet
}

func newAccountSet(tx *txn.AccountSet, opts Options) Explainer {
	return &accountSet{newTxBase(tx, opts), tx}
}

func (e *accountSet) Description() string {
	switch {
	case e.tx.SetFlagName() != "":
		return e.t("tx.AccountSet.setFlag", Params{"account": e.account(), "flag": e.tx.SetFlagName()})
	case e.tx.ClearFlagName() != "":
		return e.t("tx.AccountSet.clearFlag", Params{"account": e.account(), "flag": e.tx.ClearFlagName()})
	case e.tx.HasDomain() && e.tx.Domain() == "":
		return e.t("tx.AccountSet.clearDomain", Params{"account": e.account()})
	case e.tx.HasDomain():
		return e.t("tx.AccountSet.domain", Params{"account": e.account(), "domain": e.tx.Domain()})
	default:
		return e.t("tx.AccountSet", Params{"account": e.account()})
	}
}

type accountDelete struct {
	txBase
	tx *txn.AccountDelete
}

func newAccountDelete(tx *txn.AccountDelete, opts Options) Explainer {
	return &accountDelete{newTxBase(tx, opts), tx}
}

func (e *accountDelete) Description() string {
	return e.t("tx.AccountDelete", Params{"account": e.account(), "destination": string(e.tx.Destination())})
}

func (e *accountDelete) Participants() Participants {
	return Participants{
		Start: party(e.tx.Account(), e.tx.SourceTag()),
		End:   party(e.tx.Destination(), e.tx.DestinationTag()),
	}
}

func (e *accountDelete) MonetaryDetails() *MonetaryDetails {
	d := e.monetary()
	if meta := e.tx.Meta(); meta != nil {
		d.add(meta.DeliveredAmount, ImmediateEffect, e.towards(e.tx.Destination()))
	}
	return d
}

type setRegularKey struct {
	txBase
	tx *txn.SetRegularKey
}

func newSetRegularKey(tx *txn.SetRegularKey, opts Options) Explainer {
	return &setRegularKey{newTxBase(tx, opts), tx}
}

func (e *setRegularKey) Description() string {
	if e.tx.RegularKey() == "" {
		return e.t("tx.SetRegularKey.remove", Params{"account": e.account()})
	}
	return e.t("tx.SetRegularKey", Params{"account": e.account(), "key": string(e.tx.RegularKey())})
}

type signerListSet struct {
	txBase
	tx *txn.SignerListSet
}

func newSignerListSet(tx *txn.SignerListSet, opts Options) Explainer {
	return &signerListSet{newTxBase(tx, opts), tx}
}

func (e *signerListSet) Description() string {
	if e.tx.IsRemoval() {
		return e.t("tx.SignerListSet.remove", Params{"account": e.account()})
	}
	return e.t("tx.SignerListSet", Params{
		"account": e.account(),
		"count":   strconv.Itoa(len(e.tx.SignerEntries())),
		"quorum":  strconv.FormatUint(uint64(e.tx.SignerQuorum()), 10),
	})
}

type depositPreauth struct {
	txBase
	tx *txn.DepositPreauth
}

func newDepositPreauth(tx *txn.DepositPreauth, opts Options) Explainer {
	return &depositPreauth{newTxBase(tx, opts), tx}
}

func (e *depositPreauth) Description() string {
	if e.tx.Authorize() != "" {
		return e.t("tx.DepositPreauth.authorize", Params{"account": e.account(), "authorized": string(e.tx.Authorize())})
	}
	return e.t("tx.DepositPreauth.unauthorize", Params{"account": e.account(), "authorized": string(e.tx.Unauthorize())})
}

func (e *depositPreauth) Participants() Participants {
	end := e.tx.Authorize()
	if end == "" {
		end = e.tx.Unauthorize()
	}
	return Participants{Start: party(e.tx.Account(), nil), End: party(end, nil)}
}

type ticketCreate struct {
	txBase
	tx *txn.TicketCreate
}

func newTicketCreate(tx *txn.TicketCreate, opts Options) Explainer {
	return &ticketCreate{newTxBase(tx, opts), tx}
}

func (e *ticketCreate) Description() string {
	return e.t("tx.TicketCreate", Params{"account": e.account(), "count": strconv.FormatUint(uint64(e.tx.TicketCount()), 10)})
}

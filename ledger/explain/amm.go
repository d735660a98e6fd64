package explain

import (
	"strconv"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/txn"
)

func init() {
	registerTx(txn.TypeAMMCreate, newAMMCreate)
	registerTx(txn.TypeAMMDeposit, newAMMDeposit)
	registerTx(txn.TypeAMMWithdraw, newAMMWithdraw)
	registerTx(txn.TypeAMMVote, newAMMVote)
	registerTx(txn.TypeAMMBid, newAMMBid)
	registerTx(txn.TypeAMMDelete, newAMMDelete)
	registerTx(txn.TypeClawback, newClawback)
	registerTx(txn.TypeDIDSet, newDIDSet)
	registerTx(txn.TypeDIDDelete, newGeneric[*txn.DIDDelete])
}

// poolTx is an AMM transaction on an existing pool
type poolTx interface {
	txn.Transaction
	Asset() *codec.Issue
	Asset2() *codec.Issue
	AMMAccount() codec.Address
}

type ammPool struct {
	txBase
	pool poolTx
}

func newAMMPool(tx poolTx, opts Options) ammPool {
	return ammPool{newTxBase(tx, opts), tx}
}

func (e *ammPool) params() Params {
	return Params{
		"account": e.account(),
		"asset":   e.pool.Asset().String(),
		"asset2":  e.pool.Asset2().String(),
	}
}

// Participants: the pool account sits between the liquidity provider and the pool
func (e *ammPool) Participants() Participants {
	return Participants{Start: party(e.tx.Account(), nil), Through: party(e.pool.AMMAccount(), nil)}
}

type ammCreate struct {
	txBase
	tx *txn.AMMCreate
}

func newAMMCreate(tx *txn.AMMCreate, opts Options) Explainer {
	return &ammCreate{newTxBase(tx, opts), tx}
}

func (e *ammCreate) Description() string {
	return e.t("tx.AMMCreate", Params{
		"account": e.account(),
		"amount":  formatAmount(e.tx.Amount()),
		"amount2": formatAmount(e.tx.Amount2()),
		"fee":     strconv.FormatUint(uint64(e.tx.TradingFee()), 10),
	})
}

func (e *ammCreate) Participants() Participants {
	return Participants{Start: party(e.tx.Account(), nil), Through: party(e.tx.AMMAccount(), nil)}
}

func (e *ammCreate) MonetaryDetails() *MonetaryDetails {
	d := e.monetary()
	d.add(e.tx.Amount(), ImmediateEffect, Dec)
	d.add(e.tx.Amount2(), ImmediateEffect, Dec)
	return d
}

type ammDeposit struct {
	ammPool
	tx *txn.AMMDeposit
}

func newAMMDeposit(tx *txn.AMMDeposit, opts Options) Explainer {
	return &ammDeposit{newAMMPool(tx, opts), tx}
}

func (e *ammDeposit) Description() string {
	return e.t("tx.AMMDeposit", e.params())
}

func (e *ammDeposit) MonetaryDetails() *MonetaryDetails {
	d := e.monetary()
	d.add(e.tx.Amount(), ImmediateEffect, Dec)
	d.add(e.tx.Amount2(), ImmediateEffect, Dec)
	d.add(e.tx.LPTokenOut(), ImmediateEffect, Inc)
	return d
}

type ammWithdraw struct {
	ammPool
	tx *txn.AMMWithdraw
}

func newAMMWithdraw(tx *txn.AMMWithdraw, opts Options) Explainer {
	return &ammWithdraw{newAMMPool(tx, opts), tx}
}

func (e *ammWithdraw) Description() string {
	return e.t("tx.AMMWithdraw", e.params())
}

func (e *ammWithdraw) MonetaryDetails() *MonetaryDetails {
	d := e.monetary()
	d.add(e.tx.Amount(), ImmediateEffect, Inc)
	d.add(e.tx.Amount2(), ImmediateEffect, Inc)
	d.add(e.tx.LPTokenIn(), ImmediateEffect, Dec)
	return d
}

type ammVote struct {
	ammPool
	tx *txn.AMMVote
}

func newAMMVote(tx *txn.AMMVote, opts Options) Explainer {
	return &ammVote{newAMMPool(tx, opts), tx}
}

func (e *ammVote) Description() string {
	params := e.params()
	params["fee"] = strconv.FormatUint(uint64(e.tx.TradingFee()), 10)
	return e.t("tx.AMMVote", params)
}

type ammBid struct {
	ammPool
	tx *txn.AMMBid
}

func newAMMBid(tx *txn.AMMBid, opts Options) Explainer {
	return &ammBid{newAMMPool(tx, opts), tx}
}

func (e *ammBid) Description() string {
	return e.t("tx.AMMBid", e.params())
}

// MonetaryDetails: the bid is only known to be bounded by BidMin and BidMax
func (e *ammBid) MonetaryDetails() *MonetaryDetails {
	d := e.monetary()
	if e.tx.BidMax() != nil {
		d.add(e.tx.BidMax(), PotentialEffect, Dec)
	} else {
		d.add(e.tx.BidMin(), PotentialEffect, Dec)
	}
	return d
}

type ammDelete struct {
	ammPool
}

func newAMMDelete(tx *txn.AMMDelete, opts Options) Explainer {
	return &ammDelete{newAMMPool(tx, opts)}
}

func (e *ammDelete) Description() string {
	return e.t("tx.AMMDelete", e.params())
}

type clawback struct {
	txBase
	tx *txn.Clawback
}

func newClawback(tx *txn.Clawback, opts Options) Explainer {
	return &clawback{newTxBase(tx, opts), tx}
}

func (e *clawback) Description() string {
	return e.t("tx.Clawback", Params{"account": e.account(), "holder": string(e.tx.Holder()), "amount": formatAmount(e.tx.Amount())})
}

func (e *clawback) Participants() Participants {
	return Participants{Start: party(e.tx.Holder(), nil), End: party(e.tx.Account(), nil)}
}

func (e *clawback) MonetaryDetails() *MonetaryDetails {
	d := e.monetary()
	d.add(e.tx.Amount(), ImmediateEffect, e.towards(e.tx.Account()))
	return d
}

type didSet struct {
	txBase
	tx *txn.DIDSet
}

func newDIDSet(tx *txn.DIDSet, opts Options) Explainer {
	return &didSet{newTxBase(tx, opts), tx}
}

func (e *didSet) Description() string {
	params := Params{"account": e.account()}
	if uri := e.tx.URI(); uri != "" {
		params["uri"] = uri
		return e.t("tx.DIDSet.uri", params)
	}
	return e.t("tx.DIDSet", params)
}

package explain

import (
	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/txn"
)

// txBase implements the parts shared by every transaction explainer
type txBase struct {
	tx   txn.Transaction
	opts Options
}

func newTxBase(tx txn.Transaction, opts Options) txBase {
	return txBase{tx: tx, opts: opts}
}

func (e *txBase) t(key string, params Params) string {
	return e.opts.localize(key, params)
}

// viewer is the account balance changes are reported for
func (e *txBase) viewer() codec.Address {
	if e.opts.Account != "" {
		return e.opts.Account
	}
	return e.tx.Account()
}

// towards is Inc when the viewer receives from a transfer to recipient, Dec otherwise
func (e *txBase) towards(recipient codec.Address) Action {
	if recipient != "" && e.viewer() == recipient {
		return Inc
	}
	return Dec
}

// Label impl Explainer
func (e *txBase) Label() string {
	return e.t("label."+e.tx.TransactionType(), nil)
}

// Description impl Explainer
func (e *txBase) Description() string {
	return e.t("tx.generic", Params{"account": string(e.tx.Account()), "type": e.tx.TransactionType()})
}

// Participants impl Explainer
func (e *txBase) Participants() Participants {
	return Participants{Start: party(e.tx.Account(), e.tx.Common().SourceTag())}
}

// MonetaryDetails impl Explainer
func (e *txBase) MonetaryDetails() *MonetaryDetails {
	return e.monetary()
}

func (e *txBase) monetary() *MonetaryDetails {
	meta := e.tx.Meta()
	return &MonetaryDetails{
		Mutate: BalanceChanges(e.tx, e.viewer()),
		failed: meta != nil && !meta.IsSuccess(),
	}
}

func (e *txBase) account() string { return string(e.tx.Account()) }

// generic explains transaction types without specific monetary semantics
type generic struct {
	txBase
}

func newGeneric[T txn.Transaction](tx T, opts Options) Explainer {
	return &generic{newTxBase(tx, opts)}
}

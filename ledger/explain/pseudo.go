package explain

import (
	"strconv"

	"github.com/anyswap/xrpl-txmodel/ledger/txn"
)

func init() {
	registerTx(txn.TypeEnableAmendment, newEnableAmendment)
	registerTx(txn.TypeSetFee, newSetFee)
	registerTx(txn.TypeUNLModify, newUNLModify)
}

// pseudo transactions have no submitter, so they have no participants
type pseudoBase struct {
	txBase
}

func (e *pseudoBase) Participants() Participants { return Participants{} }

func (e *pseudoBase) MonetaryDetails() *MonetaryDetails { return &MonetaryDetails{} }

type enableAmendment struct {
	pseudoBase
	tx *txn.EnableAmendment
}

func newEnableAmendment(tx *txn.EnableAmendment, opts Options) Explainer {
	return &enableAmendment{pseudoBase{newTxBase(tx, opts)}, tx}
}

func (e *enableAmendment) Description() string {
	return e.t("tx.EnableAmendment."+e.tx.Status(), Params{
		"amendment": e.tx.Amendment(),
		"ledger":    strconv.FormatUint(uint64(e.tx.LedgerSequence()), 10),
	})
}

type setFee struct {
	pseudoBase
	tx *txn.SetFee
}

func newSetFee(tx *txn.SetFee, opts Options) Explainer {
	return &setFee{pseudoBase{newTxBase(tx, opts)}, tx}
}

func (e *setFee) Description() string {
	return e.t("tx.SetFee", Params{
		"baseFee":          formatAmount(e.tx.BaseFee()),
		"reserveBase":      formatAmount(e.tx.ReserveBase()),
		"reserveIncrement": formatAmount(e.tx.ReserveIncrement()),
	})
}

type unlModify struct {
	pseudoBase
	tx *txn.UNLModify
}

func newUNLModify(tx *txn.UNLModify, opts Options) Explainer {
	return &unlModify{pseudoBase{newTxBase(tx, opts)}, tx}
}

func (e *unlModify) Description() string {
	key := "tx.UNLModify.enable"
	if e.tx.IsDisabling() {
		key = "tx.UNLModify.disable"
	}
	return e.t(key, Params{"validator": e.tx.Validator()})
}

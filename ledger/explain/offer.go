package explain

import (
	"strconv"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/txn"
)

func init() {
	registerTx(txn.TypeOfferCreate, newOfferCreate)
	registerTx(txn.TypeOfferCancel, newOfferCancel)
	registerTx(txn.TypeEscrowCreate, newEscrowCreate)
	registerTx(txn.TypeEscrowFinish, newEscrowFinish)
	registerTx(txn.TypeEscrowCancel, newEscrowCancel)
	registerTx(txn.TypeCheckCreate, newCheckCreate)
	registerTx(txn.TypeCheckCash, newCheckCash)
	registerTx(txn.TypeCheckCancel, newCheckCancel)
	registerTx(txn.TypePaymentChannelCreate, newPaymentChannelCreate)
	registerTx(txn.TypePaymentChannelFund, newPaymentChannelFund)
	registerTx(txn.TypePaymentChannelClaim, newPaymentChannelClaim)
}

type offerCreate struct {
	txBase
	tx *txn.OfferCreate
}

func newOfferCreate(tx *txn.OfferCreate, opts Options) Explainer {
	return &offerCreate{newTxBase(tx, opts), tx}
}

func (e *offerCreate) Description() string {
	params := Params{
		"account": e.account(),
		"gets":    formatAmount(e.tx.TakerGets()),
		"pays":    formatAmount(e.tx.TakerPays()),
	}
	if seq := e.tx.OfferSequence(); seq != nil {
		params["sequence"] = strconv.FormatUint(uint64(*seq), 10)
		return e.t("tx.OfferCreate.replace", params)
	}
	return e.t("tx.OfferCreate", params)
}

// MonetaryDetails: what is left on the books is only potentially exchanged
func (e *offerCreate) MonetaryDetails() *MonetaryDetails {
	d := e.monetary()
	d.add(e.tx.TakerGets(), PotentialEffect, Dec)
	d.add(e.tx.TakerPays(), PotentialEffect, Inc)
	return d
}

type offerCancel struct {
	txBase
	tx *txn.OfferCancel
}

func newOfferCancel(tx *txn.OfferCancel, opts Options) Explainer {
	return &offerCancel{newTxBase(tx, opts), tx}
}

func (e *offerCancel) Description() string {
	return e.t("tx.OfferCancel", Params{"account": e.account(), "sequence": strconv.FormatUint(uint64(e.tx.OfferSequence()), 10)})
}

type escrowCreate struct {
	txBase
	tx *txn.EscrowCreate
}

func newEscrowCreate(tx *txn.EscrowCreate, opts Options) Explainer {
	return &escrowCreate{newTxBase(tx, opts), tx}
}

func (e *escrowCreate) Description() string {
	params := Params{
		"account":     e.account(),
		"destination": string(e.tx.Destination()),
		"amount":      formatAmount(e.tx.Amount()),
	}
	desc := e.t("tx.EscrowCreate", params)
	if finishAfter := e.tx.FinishAfter(); finishAfter != "" {
		desc += " " + e.t("escrow.finishAfter", Params{"time": formatTime(finishAfter)})
	}
	if cancelAfter := e.tx.CancelAfter(); cancelAfter != "" {
		desc += " " + e.t("escrow.cancelAfter", Params{"time": formatTime(cancelAfter)})
	}
	return desc
}

func (e *escrowCreate) Participants() Participants {
	return Participants{
		Start: party(e.tx.Account(), e.tx.SourceTag()),
		End:   party(e.tx.Destination(), e.tx.DestinationTag()),
	}
}

func (e *escrowCreate) MonetaryDetails() *MonetaryDetails {
	d := e.monetary()
	d.add(e.tx.Amount(), PotentialEffect, e.towards(e.tx.Destination()))
	return d
}

// escrowRelease is shared by finish and cancel: both settle an escrow that may not be resolved
type escrowRelease struct {
	txBase
	owner    codec.Address
	sequence uint32
	escrow   func() *lockedEscrow
}

type lockedEscrow struct {
	account     codec.Address
	destination codec.Address
	amount      *codec.Amount
	sourceTag   *uint32
	destTag     *uint32
}

func (e *escrowRelease) params() Params {
	return Params{
		"account":  e.account(),
		"owner":    string(e.owner),
		"sequence": strconv.FormatUint(uint64(e.sequence), 10),
	}
}

func (e *escrowRelease) Participants() Participants {
	if v := e.escrow(); v != nil {
		return Participants{
			Start:   party(v.account, v.sourceTag),
			Through: throughIfOther(e.tx.Account(), v.account, v.destination),
			End:     party(v.destination, v.destTag),
		}
	}
	return Participants{Start: party(e.owner, nil), Through: throughIfOther(e.tx.Account(), e.owner, "")}
}

// throughIfOther is the submitting account when it is neither side
func throughIfOther(submitter, start, end codec.Address) *Party {
	if submitter == start || submitter == end {
		return nil
	}
	return party(submitter, nil)
}

type escrowFinish struct {
	escrowRelease
	tx *txn.EscrowFinish
}

func newEscrowFinish(tx *txn.EscrowFinish, opts Options) Explainer {
	e := &escrowFinish{tx: tx}
	e.escrowRelease = escrowRelease{txBase: newTxBase(tx, opts), owner: tx.Owner(), sequence: tx.OfferSequence(), escrow: e.view}
	return e
}

func (e *escrowFinish) view() *lockedEscrow {
	escrow := e.tx.Escrow()
	if escrow == nil {
		return nil
	}
	return &lockedEscrow{escrow.Account(), escrow.Destination(), escrow.Amount(), escrow.SourceTag(), escrow.DestinationTag()}
}

func (e *escrowFinish) Description() string {
	params := e.params()
	if v := e.view(); v != nil {
		params["amount"] = formatAmount(v.amount)
		params["destination"] = string(v.destination)
		return e.t("tx.EscrowFinish.resolved", params)
	}
	return e.t("tx.EscrowFinish", params)
}

func (e *escrowFinish) MonetaryDetails() *MonetaryDetails {
	d := e.monetary()
	if v := e.view(); v != nil {
		d.add(v.amount, ImmediateEffect, e.towards(v.destination))
	}
	return d
}

type escrowCancel struct {
	escrowRelease
	tx *txn.EscrowCancel
}

func newEscrowCancel(tx *txn.EscrowCancel, opts Options) Explainer {
	e := &escrowCancel{tx: tx}
	e.escrowRelease = escrowRelease{txBase: newTxBase(tx, opts), owner: tx.Owner(), sequence: tx.OfferSequence(), escrow: e.view}
	return e
}

func (e *escrowCancel) view() *lockedEscrow {
	escrow := e.tx.Escrow()
	if escrow == nil {
		return nil
	}
	return &lockedEscrow{escrow.Account(), escrow.Destination(), escrow.Amount(), escrow.SourceTag(), escrow.DestinationTag()}
}

func (e *escrowCancel) Description() string {
	params := e.params()
	if v := e.view(); v != nil {
		params["amount"] = formatAmount(v.amount)
		return e.t("tx.EscrowCancel.resolved", params)
	}
	return e.t("tx.EscrowCancel", params)
}

// MonetaryDetails: the escrowed amount returns to the owner
func (e *escrowCancel) MonetaryDetails() *MonetaryDetails {
	d := e.monetary()
	if v := e.view(); v != nil {
		d.add(v.amount, ImmediateEffect, e.towards(v.account))
	}
	return d
}

type checkCreate struct {
	txBase
	tx *txn.CheckCreate
}

func newCheckCreate(tx *txn.CheckCreate, opts Options) Explainer {
	return &checkCreate{newTxBase(tx, opts), tx}
}

func (e *checkCreate) Description() string {
	return e.t("tx.CheckCreate", Params{
		"account":     e.account(),
		"destination": string(e.tx.Destination()),
		"amount":      formatAmount(e.tx.SendMax()),
	})
}

func (e *checkCreate) Participants() Participants {
	return Participants{
		Start: party(e.tx.Account(), e.tx.SourceTag()),
		End:   party(e.tx.Destination(), e.tx.DestinationTag()),
	}
}

func (e *checkCreate) MonetaryDetails() *MonetaryDetails {
	d := e.monetary()
	d.add(e.tx.SendMax(), PotentialEffect, e.towards(e.tx.Destination()))
	return d
}

type checkCash struct {
	txBase
	tx *txn.CheckCash
}

func newCheckCash(tx *txn.CheckCash, opts Options) Explainer {
	return &checkCash{newTxBase(tx, opts), tx}
}

func (e *checkCash) cashed() *codec.Amount {
	if amount := e.tx.Amount(); amount != nil {
		return amount
	}
	return e.tx.DeliverMin()
}

func (e *checkCash) Description() string {
	return e.t("tx.CheckCash", Params{"account": e.account(), "amount": formatAmount(e.cashed()), "check": e.tx.CheckID()})
}

func (e *checkCash) Participants() Participants {
	if check := e.tx.Check(); check != nil {
		return Participants{Start: party(check.Account(), nil), End: party(check.Destination(), check.DestinationTag())}
	}
	return Participants{End: party(e.tx.Account(), nil)}
}

func (e *checkCash) MonetaryDetails() *MonetaryDetails {
	d := e.monetary()
	d.add(e.cashed(), ImmediateEffect, e.towards(e.tx.Account()))
	return d
}

type checkCancel struct {
	txBase
	tx *txn.CheckCancel
}

func newCheckCancel(tx *txn.CheckCancel, opts Options) Explainer {
	return &checkCancel{newTxBase(tx, opts), tx}
}

func (e *checkCancel) Description() string {
	return e.t("tx.CheckCancel", Params{"account": e.account(), "check": e.tx.CheckID()})
}

func (e *checkCancel) Participants() Participants {
	if check := e.tx.Check(); check != nil {
		return Participants{
			Start:   party(check.Account(), nil),
			Through: throughIfOther(e.tx.Account(), check.Account(), check.Destination()),
			End:     party(check.Destination(), check.DestinationTag()),
		}
	}
	return e.txBase.Participants()
}

// MonetaryDetails: a cancelled check moves nothing
func (e *checkCancel) MonetaryDetails() *MonetaryDetails {
	d := e.monetary()
	if check := e.tx.Check(); check != nil {
		d.add(check.SendMax(), NoEffect, "")
	}
	return d
}

type paymentChannelCreate struct {
	txBase
	tx *txn.PaymentChannelCreate
}

func newPaymentChannelCreate(tx *txn.PaymentChannelCreate, opts Options) Explainer {
	return &paymentChannelCreate{newTxBase(tx, opts), tx}
}

func (e *paymentChannelCreate) Description() string {
	return e.t("tx.PaymentChannelCreate", Params{
		"account":     e.account(),
		"destination": string(e.tx.Destination()),
		"amount":      formatAmount(e.tx.Amount()),
		"delay":       strconv.FormatUint(uint64(e.tx.SettleDelay()), 10),
	})
}

func (e *paymentChannelCreate) Participants() Participants {
	return Participants{
		Start: party(e.tx.Account(), e.tx.SourceTag()),
		End:   party(e.tx.Destination(), e.tx.DestinationTag()),
	}
}

func (e *paymentChannelCreate) MonetaryDetails() *MonetaryDetails {
	d := e.monetary()
	d.add(e.tx.Amount(), PotentialEffect, e.towards(e.tx.Destination()))
	return d
}

type paymentChannelFund struct {
	txBase
	tx *txn.PaymentChannelFund
}

func newPaymentChannelFund(tx *txn.PaymentChannelFund, opts Options) Explainer {
	return &paymentChannelFund{newTxBase(tx, opts), tx}
}

func (e *paymentChannelFund) Description() string {
	return e.t("tx.PaymentChannelFund", Params{"account": e.account(), "amount": formatAmount(e.tx.Amount()), "channel": e.tx.Channel()})
}

func (e *paymentChannelFund) MonetaryDetails() *MonetaryDetails {
	d := e.monetary()
	d.add(e.tx.Amount(), PotentialEffect, Dec)
	return d
}

type paymentChannelClaim struct {
	txBase
	tx *txn.PaymentChannelClaim
}

func newPaymentChannelClaim(tx *txn.PaymentChannelClaim, opts Options) Explainer {
	return &paymentChannelClaim{newTxBase(tx, opts), tx}
}

func (e *paymentChannelClaim) Description() string {
	params := Params{"account": e.account(), "channel": e.tx.Channel()}
	switch {
	case e.tx.IsClose():
		return e.t("tx.PaymentChannelClaim.close", params)
	case e.tx.IsRenew():
		return e.t("tx.PaymentChannelClaim.renew", params)
	}
	params["amount"] = formatAmount(e.tx.Balance())
	return e.t("tx.PaymentChannelClaim", params)
}

// Participants come from the channel entry in metadata, when present
func (e *paymentChannelClaim) Participants() Participants {
	if node := e.tx.Meta().FindByIndex(e.tx.Channel()); node != nil {
		fields := node.Fields()
		return Participants{
			Start:   party(codec.Address(fields.String("Account")), nil),
			Through: throughIfOther(e.tx.Account(), codec.Address(fields.String("Account")), codec.Address(fields.String("Destination"))),
			End:     party(codec.Address(fields.String("Destination")), nil),
		}
	}
	return e.txBase.Participants()
}

// MonetaryDetails: a claim without a balance change is informational
func (e *paymentChannelClaim) MonetaryDetails() *MonetaryDetails {
	d := e.monetary()
	if claimed := e.tx.Claimed(); claimed != nil && claimed.Decimal().IsPositive() {
		d.add(claimed, ImmediateEffect, Inc)
	} else {
		d.add(e.tx.Balance(), NoEffect, "")
	}
	return d
}

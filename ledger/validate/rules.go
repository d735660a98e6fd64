package validate

import (
	"context"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/keylet"
	"github.com/anyswap/xrpl-txmodel/ledger/object"
	"github.com/anyswap/xrpl-txmodel/ledger/txn"
	"github.com/anyswap/xrpl-txmodel/log"
)

var (
	_ = register(txn.TypePayment, validatePayment)
	_ = register(txn.TypeAccountDelete, validateAccountDelete)
	_ = register(txn.TypeCheckCash, validateCheckCash)
	_ = register(txn.TypeCheckCancel, validateCheckCancel)
	_ = register(txn.TypeEscrowFinish, validateEscrowFinish)
	_ = register(txn.TypeEscrowCancel, validateEscrowCancel)
	_ = register(txn.TypeOfferCancel, validateOfferCancel)
	_ = register(txn.TypeNFTokenAcceptOffer, validateNFTokenAcceptOffer)
)

// checkDestinationTag rejects a missing tag when the destination root requires one.
// A destination without a root is being created and can not require anything.
func checkDestinationTag(ctx context.Context, opts Options, destination codec.Address, tag *uint32) (exists bool, err error) {
	index, err := keylet.AccountRoot(destination)
	if err != nil {
		return false, err
	}
	root, found, err := fetch[*object.AccountRoot](ctx, opts, index)
	if err != nil || !found {
		return false, err
	}
	if root.RequireDestTag() && tag == nil {
		return true, reject(ErrDestinationTagRequired, "%s requires a destination tag", destination)
	}
	return true, nil
}

func validatePayment(ctx context.Context, tx *txn.Payment, opts Options) error {
	amount := tx.Amount()
	if amount == nil || !amount.Decimal().IsPositive() {
		return reject(ErrNonPositiveAmount, "payment amount %s", amount)
	}
	if tx.Destination() == tx.Account() && amount.IsNative() {
		return reject(ErrSelfPayment, "%s pays itself %s", tx.Account(), amount)
	}
	_, err := checkDestinationTag(ctx, opts, tx.Destination(), tx.DestinationTag())
	return err
}

func validateAccountDelete(ctx context.Context, tx *txn.AccountDelete, opts Options) error {
	if tx.Destination() == tx.Account() {
		return reject(ErrDestinationIsSelf, "%s can not delete itself into itself", tx.Account())
	}
	exists, err := checkDestinationTag(ctx, opts, tx.Destination(), tx.DestinationTag())
	if err != nil {
		return err
	}
	if !exists {
		return reject(ErrMissingRelatedObject, "destination %s does not exist", tx.Destination())
	}
	return nil
}

// related returns the entry attached from metadata, or reads it from the ledger
func related[T object.Object](ctx context.Context, opts Options, attached T, present bool, index string) (T, error) {
	if present {
		return attached, nil
	}
	entry, found, err := fetch[T](ctx, opts, index)
	if err != nil {
		return entry, err
	}
	if !found {
		return entry, reject(ErrMissingRelatedObject, "no ledger entry %s", index)
	}
	return entry, nil
}

func validateCheckCash(ctx context.Context, tx *txn.CheckCash, opts Options) error {
	check, err := related(ctx, opts, tx.Check(), tx.Check() != nil, tx.CheckID())
	if err != nil {
		return err
	}
	if tx.Account() != check.Destination() {
		return reject(ErrUnauthorizedActor, "%s is not the destination of check %s", tx.Account(), tx.CheckID())
	}
	if check.IsExpired(opts.now()) {
		return reject(ErrExpired, "check %s expired at %s", tx.CheckID(), check.Expiration())
	}
	sendMax := check.SendMax()
	for _, amount := range []*codec.Amount{tx.Amount(), tx.DeliverMin()} {
		if amount != nil && sendMax != nil && amount.SameAsset(sendMax) && amount.Decimal().GreaterThan(sendMax.Decimal()) {
			return reject(ErrAmountExceedsLimit, "%s exceeds the check maximum %s", amount, sendMax)
		}
	}
	return nil
}

// validateCheckCancel: an expired check may be cancelled by anyone, a live one only by its parties
func validateCheckCancel(ctx context.Context, tx *txn.CheckCancel, opts Options) error {
	check, err := related(ctx, opts, tx.Check(), tx.Check() != nil, tx.CheckID())
	if err != nil {
		return err
	}
	if check.IsExpired(opts.now()) {
		return nil
	}
	actor := tx.Account()
	if actor == check.Account() || actor == check.Destination() {
		return nil
	}
	log.Debug("check cancel rejected", "check", tx.CheckID(), "actor", actor)
	return reject(ErrUnauthorizedCancel, "%s may not cancel check %s before it expires", actor, tx.CheckID())
}

func validateEscrowFinish(ctx context.Context, tx *txn.EscrowFinish, opts Options) error {
	index, err := tx.EscrowIndex()
	if err != nil {
		return err
	}
	escrow, err := related(ctx, opts, tx.Escrow(), tx.Escrow() != nil, index)
	if err != nil {
		return err
	}
	now := opts.now()
	switch {
	case escrow.IsExpired(now):
		return reject(ErrExpired, "escrow %s of %s expired at %s", index, tx.Owner(), escrow.CancelAfter())
	case !escrow.CanFinish(now):
		return reject(ErrNotFinishable, "escrow %s of %s finishes after %s", index, tx.Owner(), escrow.FinishAfter())
	}
	return nil
}

func validateEscrowCancel(ctx context.Context, tx *txn.EscrowCancel, opts Options) error {
	index, err := tx.EscrowIndex()
	if err != nil {
		return err
	}
	escrow, err := related(ctx, opts, tx.Escrow(), tx.Escrow() != nil, index)
	if err != nil {
		return err
	}
	if !escrow.CanCancel(opts.now()) {
		return reject(ErrNotExpired, "escrow %s of %s is not cancellable yet", index, tx.Owner())
	}
	return nil
}

func validateOfferCancel(ctx context.Context, tx *txn.OfferCancel, opts Options) error {
	index, err := keylet.Offer(tx.Account(), tx.OfferSequence())
	if err != nil {
		return err
	}
	_, err = related[*object.Offer](ctx, opts, nil, false, index)
	return err
}

func validateNFTokenAcceptOffer(ctx context.Context, tx *txn.NFTokenAcceptOffer, opts Options) error {
	now := opts.now()
	offers := []struct {
		id       string
		attached *object.NFTokenOffer
	}{
		{tx.NFTokenSellOffer(), tx.SellOffer()},
		{tx.NFTokenBuyOffer(), tx.BuyOffer()},
	}
	for _, o := range offers {
		if o.id == "" {
			continue
		}
		offer, err := related(ctx, opts, o.attached, o.attached != nil, o.id)
		if err != nil {
			return err
		}
		if offer.IsExpired(now) {
			return reject(ErrExpired, "offer %s expired at %s", o.id, offer.Expiration())
		}
		if dest := offer.Destination(); dest != "" && dest != tx.Account() {
			return reject(ErrUnauthorizedActor, "offer %s is reserved for %s", o.id, dest)
		}
	}
	return nil
}

package validate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
	"github.com/anyswap/xrpl-txmodel/ledger/object"
	"github.com/anyswap/xrpl-txmodel/ledger/txn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const (
	genesis = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	other   = "ra5jrnrq9BxsvzGeJY5XS9inftcJWMdJUx"
	txHash  = "E08D6E9754025BA2534A78707605E0601F03ACE063687A0CA1BDDACFCD1698C7"

	genesisRoot = "2B6AC232AA4C4BE41BF49D2459FA4A0347E1B543A4C92FCEE0821C0201E2E9A8"
	escrowIndex = "7AD77DAEB1695C9E01674B8ECCA38F7961ABC7E8B728926B44A9B5F7630842AD"
	checkIndex  = "7F640CCE9CBA5B9DEF70D455B9BFFB1C9D500A5409B7AA84275C542AC0C35AE5"
	offerIndex  = "BF656DABDD84E6128A45039F8D557C9477D4DA31F5B00868F2191F0A11FE3798"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func ledgerEntry(t *testing.T, raw entity.Record) object.Object {
	o, err := object.Parse(raw, entity.SourceLedger)
	require.NoError(t, err)
	return o
}

func transaction(t *testing.T, raw entity.Record) txn.Transaction {
	raw["hash"] = txHash
	raw["Fee"] = "10"
	raw["Sequence"] = float64(7)
	tx, err := txn.Parse(raw, nil, entity.SourceLedger)
	require.NoError(t, err)
	return tx
}

func validate(t *testing.T, reader LedgerReader, tx txn.Transaction) error {
	factory, ok := For(tx.TransactionType())
	require.True(t, ok, tx.TransactionType())
	return factory(Options{Reader: reader, Now: clock}).Validate(context.Background(), tx)
}

func check(t *testing.T, expiration time.Time) object.Object {
	return ledgerEntry(t, entity.Record{
		"LedgerEntryType": "Check",
		"index":           checkIndex,
		"Account":         genesis,
		"Destination":     other,
		"SendMax":         "5000000",
		"Sequence":        float64(5),
		"Expiration":      codec.ToRippleTime(expiration),
	})
}

func checkCancel(t *testing.T, actor string) txn.Transaction {
	return transaction(t, entity.Record{
		"TransactionType": "CheckCancel",
		"Account":         actor,
		"CheckID":         checkIndex,
	})
}

func TestCheckCancel(t *testing.T) {
	// a third party: neither creator nor destination
	const stranger = "rrrrrrrrrrrrrrrrrrrrBZbvji"

	expired := NewMemoryReader(check(t, now.Add(-time.Hour)))
	live := NewMemoryReader(check(t, now.Add(time.Hour)))

	assert.NoError(t, validate(t, expired, checkCancel(t, stranger)))
	assert.NoError(t, validate(t, live, checkCancel(t, genesis)))
	assert.NoError(t, validate(t, live, checkCancel(t, other)))

	err := validate(t, live, checkCancel(t, stranger))
	assert.True(t, errors.Is(err, ErrUnauthorizedCancel))
	assert.True(t, IsSemantic(err))

	err = validate(t, NewMemoryReader(), checkCancel(t, genesis))
	assert.True(t, errors.Is(err, ErrMissingRelatedObject))
	assert.False(t, errors.Is(err, ErrUnauthorizedCancel))
}

func TestCheckCancelUsesResolvedCheck(t *testing.T) {
	raw := entity.Record{
		"hash":            txHash,
		"TransactionType": "CheckCancel",
		"Account":         other,
		"CheckID":         checkIndex,
		"Fee":             "10",
		"Sequence":        float64(3),
	}
	tx, err := txn.Parse(raw, nil, entity.SourceLedger)
	require.NoError(t, err)
	c, ok := check(t, now.Add(time.Hour)).(*object.Check)
	require.True(t, ok)
	require.True(t, tx.(*txn.CheckCancel).AttachCheck(c))

	// no reader needed once the check is attached
	factory, _ := For(txn.TypeCheckCancel)
	assert.NoError(t, factory(Options{Now: clock}).Validate(context.Background(), tx))
}

func TestCheckCash(t *testing.T) {
	reader := NewMemoryReader(check(t, now.Add(time.Hour)))
	cash := func(actor, amount string) txn.Transaction {
		return transaction(t, entity.Record{
			"TransactionType": "CheckCash",
			"Account":         actor,
			"CheckID":         checkIndex,
			"Amount":          amount,
		})
	}
	assert.NoError(t, validate(t, reader, cash(other, "5000000")))
	assert.True(t, errors.Is(validate(t, reader, cash(genesis, "5000000")), ErrUnauthorizedActor))
	assert.True(t, errors.Is(validate(t, reader, cash(other, "6000000")), ErrAmountExceedsLimit))

	expired := NewMemoryReader(check(t, now.Add(-time.Hour)))
	assert.True(t, errors.Is(validate(t, expired, cash(other, "1000000")), ErrExpired))
}

func escrow(t *testing.T, fields entity.Record) object.Object {
	raw := entity.Record{
		"LedgerEntryType": "Escrow",
		"index":           escrowIndex,
		"Account":         genesis,
		"Destination":     other,
		"Amount":          "10000000",
	}
	for k, v := range fields {
		raw[k] = v
	}
	return ledgerEntry(t, raw)
}

func TestEscrowRules(t *testing.T) {
	finish := transaction(t, entity.Record{"TransactionType": "EscrowFinish", "Account": other, "Owner": genesis, "OfferSequence": float64(5)})
	cancel := transaction(t, entity.Record{"TransactionType": "EscrowCancel", "Account": genesis, "Owner": genesis, "OfferSequence": float64(5)})

	past, future := codec.ToRippleTime(now.Add(-time.Hour)), codec.ToRippleTime(now.Add(time.Hour))

	finishable := NewMemoryReader(escrow(t, entity.Record{"FinishAfter": past}))
	assert.NoError(t, validate(t, finishable, finish))
	assert.True(t, errors.Is(validate(t, finishable, cancel), ErrNotExpired))

	locked := NewMemoryReader(escrow(t, entity.Record{"FinishAfter": future}))
	assert.True(t, errors.Is(validate(t, locked, finish), ErrNotFinishable))

	expired := NewMemoryReader(escrow(t, entity.Record{"CancelAfter": past}))
	assert.True(t, errors.Is(validate(t, expired, finish), ErrExpired))
	assert.NoError(t, validate(t, expired, cancel))

	assert.True(t, errors.Is(validate(t, NewMemoryReader(), finish), ErrMissingRelatedObject))
}

func accountRoot(t *testing.T, flags uint32) object.Object {
	return ledgerEntry(t, entity.Record{
		"LedgerEntryType": "AccountRoot",
		"index":           genesisRoot,
		"Account":         genesis,
		"Balance":         "100000000",
		"Sequence":        float64(1),
		"OwnerCount":      float64(0),
		"Flags":           float64(flags),
	})
}

func TestPayment(t *testing.T) {
	pay := func(from, to string, amount interface{}, tag interface{}) txn.Transaction {
		raw := entity.Record{"TransactionType": "Payment", "Account": from, "Destination": to, "Amount": amount}
		if tag != nil {
			raw["DestinationTag"] = tag
		}
		return transaction(t, raw)
	}
	open := NewMemoryReader(accountRoot(t, 0))
	tagged := NewMemoryReader(accountRoot(t, 0x00020000))

	assert.NoError(t, validate(t, open, pay(other, genesis, "1000000", nil)))
	// unfunded destinations are created by the payment
	assert.NoError(t, validate(t, NewMemoryReader(), pay(genesis, other, "1000000", nil)))

	assert.True(t, errors.Is(validate(t, open, pay(other, genesis, "0", nil)), ErrNonPositiveAmount))
	assert.True(t, errors.Is(validate(t, open, pay(genesis, genesis, "1000000", nil)), ErrSelfPayment))
	assert.True(t, errors.Is(validate(t, tagged, pay(other, genesis, "1000000", nil)), ErrDestinationTagRequired))
	assert.NoError(t, validate(t, tagged, pay(other, genesis, "1000000", float64(9))))

	// issued currency conversions through oneself are allowed
	usd := map[string]interface{}{"currency": "USD", "issuer": other, "value": "3"}
	assert.NoError(t, validate(t, open, pay(genesis, genesis, usd, nil)))
}

func TestAccountDelete(t *testing.T) {
	del := func(from, to string) txn.Transaction {
		return transaction(t, entity.Record{"TransactionType": "AccountDelete", "Account": from, "Destination": to})
	}
	reader := NewMemoryReader(accountRoot(t, 0))
	assert.NoError(t, validate(t, reader, del(other, genesis)))
	assert.True(t, errors.Is(validate(t, reader, del(genesis, genesis)), ErrDestinationIsSelf))
	assert.True(t, errors.Is(validate(t, NewMemoryReader(), del(other, genesis)), ErrMissingRelatedObject))
}

func TestOfferCancel(t *testing.T) {
	offer := ledgerEntry(t, entity.Record{
		"LedgerEntryType": "Offer",
		"index":           offerIndex,
		"Account":         genesis,
		"Sequence":        float64(5),
		"TakerPays":       "1000000",
		"TakerGets":       map[string]interface{}{"currency": "USD", "issuer": other, "value": "1"},
		"BookDirectory":   escrowIndex,
	})
	tx := transaction(t, entity.Record{"TransactionType": "OfferCancel", "Account": genesis, "OfferSequence": float64(5)})
	assert.NoError(t, validate(t, NewMemoryReader(offer), tx))
	assert.True(t, errors.Is(validate(t, NewMemoryReader(), tx), ErrMissingRelatedObject))
}

func TestRegistry(t *testing.T) {
	_, ok := For(txn.TypeTrustSet)
	assert.True(t, ok)
	for _, pseudo := range txn.PseudoTypes() {
		_, ok := For(pseudo)
		assert.False(t, ok, pseudo)
	}
	assert.Len(t, Types(), len(txn.Types()))

	trust := transaction(t, entity.Record{
		"TransactionType": "TrustSet",
		"Account":         genesis,
		"LimitAmount":     map[string]interface{}{"currency": "USD", "issuer": other, "value": "100"},
	})
	assert.NoError(t, validate(t, nil, trust))
}

func TestReaderErrors(t *testing.T) {
	tx := checkCancel(t, genesis)
	factory, _ := For(txn.TypeCheckCancel)

	err := factory(Options{Now: clock}).Validate(context.Background(), tx)
	assert.True(t, errors.Is(err, ErrNoLedgerReader))
	assert.False(t, IsSemantic(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = factory(Options{Reader: NewMemoryReader(), Now: clock}).Validate(ctx, tx)
	assert.True(t, errors.Is(err, context.Canceled))

	// a check index pointing at something else is a missing check
	wrong := NewMemoryReader(ledgerEntry(t, entity.Record{
		"LedgerEntryType": "Ticket",
		"index":           checkIndex,
		"Account":         genesis,
		"TicketSequence":  float64(5),
	}))
	assert.True(t, errors.Is(validate(t, wrong, tx), ErrMissingRelatedObject))
}

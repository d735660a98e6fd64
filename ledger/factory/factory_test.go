package factory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
	"github.com/anyswap/xrpl-txmodel/ledger/explain"
	"github.com/anyswap/xrpl-txmodel/ledger/object"
	"github.com/anyswap/xrpl-txmodel/ledger/txn"
	"github.com/anyswap/xrpl-txmodel/ledger/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	genesis = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	other   = "ra5jrnrq9BxsvzGeJY5XS9inftcJWMdJUx"
	txHash  = "E08D6E9754025BA2534A78707605E0601F03ACE063687A0CA1BDDACFCD1698C7"

	escrowIndex = "7AD77DAEB1695C9E01674B8ECCA38F7961ABC7E8B728926B44A9B5F7630842AD"
)

func record(t *testing.T, s string) entity.Record {
	raw, err := entity.ParseRecord([]byte(s))
	require.NoError(t, err)
	return raw
}

func TestUnknownTransactionType(t *testing.T) {
	tx, err := CreateTransaction(record(t, `{
		"hash":            "`+txHash+`",
		"TransactionType": "SomethingNew",
		"Account":         "`+genesis+`",
		"Fee":             "12",
		"Sequence": 3
	}`), nil, entity.SourceLedger)
	require.NoError(t, err)
	assert.False(t, tx.IsRecognized())
	assert.Equal(t, genesis, tx.Account().String())
	assert.Equal(t, "0.000012", tx.Common().Fee().Value)

	_, err = Explainers.Get("SomethingNew")
	assert.True(t, errors.Is(err, ErrExplainerNotFound))
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, KindTransaction, nf.Kind)
	assert.Equal(t, "SomethingNew", nf.Discriminant)

	_, err = Explain(tx, explain.Options{})
	assert.True(t, errors.Is(err, ErrUnrecognizedDiscriminant))

	err = Validate(context.Background(), tx, validate.Options{})
	assert.True(t, errors.Is(err, ErrUnrecognizedDiscriminant))

	_, err = Validators.Get("SomethingNew")
	assert.True(t, errors.Is(err, ErrValidatorNotFound))
}

func TestCreateFromEnvelopeResolvesRelated(t *testing.T) {
	tx, err := CreateFromEnvelope(record(t, `{
		"tx": {
			"hash":            "`+txHash+`",
			"TransactionType": "EscrowFinish",
			"Account":         "`+other+`",
			"Owner":           "`+genesis+`",
			"OfferSequence":   5,
			"Fee":             "10",
			"Sequence": 2
		},
		"meta": {
			"TransactionResult": "tesSUCCESS",
			"AffectedNodes": [
				{"DeletedNode": {"LedgerEntryType": "Escrow", "LedgerIndex": "`+escrowIndex+`",
					"FinalFields": {"Account": "`+genesis+`", "Destination": "`+other+`", "Amount": "10000000", "Flags": 0, "FinishAfter": 686051000}}}
			]
		}
	}`), entity.SourceLedger)
	require.NoError(t, err)

	finish, ok := tx.(*txn.EscrowFinish)
	require.True(t, ok)
	require.NotNil(t, finish.Escrow())
	assert.Equal(t, escrowIndex, finish.Escrow().Index())

	x, err := Explain(tx, explain.Options{Account: codec.Address(other)})
	require.NoError(t, err)
	assert.NotEmpty(t, x.Label)
	assert.NotEmpty(t, x.Description)
}

func TestPseudoTransaction(t *testing.T) {
	raw := record(t, `{
		"hash":               "`+txHash+`",
		"TransactionType":    "UNLModify",
		"Account":            "rrrrrrrrrrrrrrrrrrrrrhoLvTp",
		"UNLModifyDisabling": 1,
		"LedgerSequence":     1000,
		"UNLModifyValidator": "ED6629D456285AE3613B285F65BBFF168D695BA3921F309949AFCD2CA7AFEC16FE",
		"Fee":                "0",
		"Sequence": 0
	}`)
	tx, err := CreatePseudoTransaction(raw, nil, entity.SourceLedger)
	require.NoError(t, err)
	assert.True(t, tx.IsPseudo())

	x, err := Explain(tx, explain.Options{})
	require.NoError(t, err)
	assert.Nil(t, x.Participants.Start)

	err = Validate(context.Background(), tx, validate.Options{})
	assert.True(t, errors.Is(err, ErrValidatorNotFound))

	_, err = CreatePseudoTransaction(record(t, `{"TransactionType": "Payment"}`), nil, entity.SourceDraft)
	assert.True(t, errors.Is(err, ErrNotPseudo))
}

func TestLedgerObject(t *testing.T) {
	o, err := CreateLedgerObject(record(t, `{
		"LedgerEntryType": "Escrow",
		"index":           "`+escrowIndex+`",
		"Account":         "`+genesis+`",
		"Destination":     "`+other+`",
		"Amount":          "10000000",
		"CancelAfter": 686051000
	}`), entity.SourceLedger)
	require.NoError(t, err)
	x, err := ExplainObject(o, explain.Options{Now: func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }})
	require.NoError(t, err)
	assert.NotEmpty(t, x.Label)

	o, err = CreateLedgerObject(record(t, `{"LedgerEntryType": "Bridge", "index": "`+escrowIndex+`"}`), entity.SourceLedger)
	require.NoError(t, err)
	_, isUnknown := o.(*object.Unknown)
	assert.True(t, isUnknown)
	_, err = ExplainObject(o, explain.Options{})
	assert.True(t, errors.Is(err, ErrUnrecognizedDiscriminant))
	_, err = Explainers.GetObject("Bridge")
	assert.True(t, errors.Is(err, ErrExplainerNotFound))
}

func TestValidateDelegates(t *testing.T) {
	tx, err := CreateTransaction(record(t, `{
		"hash":            "`+txHash+`",
		"TransactionType": "Payment",
		"Account":         "`+genesis+`",
		"Destination":     "`+genesis+`",
		"Amount":          "1000",
		"Fee":             "10",
		"Sequence": 1
	}`), nil, entity.SourceLedger)
	require.NoError(t, err)

	err = Validate(context.Background(), tx, validate.Options{Reader: validate.NewMemoryReader()})
	assert.True(t, validate.IsSemantic(err))
	assert.True(t, errors.Is(err, validate.ErrSelfPayment))
}

func TestConsistency(t *testing.T) {
	assert.NoError(t, CheckConsistency())
}

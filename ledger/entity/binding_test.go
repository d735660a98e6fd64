package entity

import (
	"errors"
	"testing"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testAccount     = NewRequiredField("Account", codec.Account)
	testSequence    = NewRequiredField("Sequence", codec.UInt32)
	testAmount      = NewField("Amount", codec.AmountCodec)
	testDestination = NewField("Destination", codec.Account)
	testMemos       = NewField("Memos", codec.Memos)

	testSchema = NewSchema("Test", nil,
		[]Descriptor{testAccount, testSequence},
		[]Descriptor{testAmount, testDestination, testMemos},
	)
)

func TestNewSchemaRedefinition(t *testing.T) {
	assert.Panics(t, func() {
		NewSchema("Broken", nil, []Descriptor{testAccount}, []Descriptor{NewField("Account", codec.String)})
	})
	assert.Equal(t, []string{"Account", "Sequence"}, testSchema.Required())
	assert.Len(t, testSchema.Fields(), 5)
	_, ok := testSchema.Field("Memos")
	assert.True(t, ok)
}

func TestLedgerBindingRequired(t *testing.T) {
	_, err := NewLedgerBinding(testSchema, Record{"Account": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"}, nil)
	var missing *RequiredFieldMissing
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "Sequence", missing.Field)
	assert.ErrorIs(t, err, ErrRequiredFieldMissing)

	b := NewDraftBinding(testSchema, Record{"Account": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"}, nil)
	seq, err := testSequence.Lookup(b)
	assert.NoError(t, err)
	assert.Nil(t, seq)
	assert.False(t, b.IsLedger())
}

func TestFieldDecodeIsStable(t *testing.T) {
	raw := Record{
		"Account":  "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
		"Sequence": float64(7),
		"Amount":   "500000000",
	}
	b, err := NewLedgerBinding(testSchema, raw, nil)
	require.NoError(t, err)

	first := testAmount.Get(b)
	second := testAmount.Get(b)
	require.NotNil(t, first)
	assert.True(t, first == second, "decoded value must be referentially stable")
	assert.Equal(t, "500", first.Value)
	assert.Equal(t, uint32(7), *testSequence.Get(b))
	assert.Equal(t, SourceLedger, b.Source())
}

func TestOptionalInvalidIsAbsent(t *testing.T) {
	b := NewDraftBinding(testSchema, Record{
		"Account":     "not-an-address",
		"Destination": "also-bad",
		"Memos":       []interface{}{map[string]interface{}{"Memo": map[string]interface{}{"MemoData": "6869"}}},
	}, nil)

	assert.Equal(t, codec.Address(""), testDestination.Get(b))
	_, err := testDestination.Lookup(b)
	var decodeErr *codec.FieldDecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "invalid-address", decodeErr.Reason)
	assert.Equal(t, "Destination", decodeErr.Field)

	amount, err := testAmount.Lookup(b)
	assert.NoError(t, err)
	assert.Nil(t, amount)

	// sibling fields still decode
	assert.Equal(t, "hi", testMemos.Get(b)[0].Data)

	values, errs := b.Decode()
	assert.Len(t, errs, 2)
	assert.Contains(t, values, "Memos")
	assert.NotContains(t, values, "Amount")
}

func TestSetDraft(t *testing.T) {
	b := NewDraftBinding(testSchema, nil, nil)
	require.NoError(t, testAmount.Set(b, codec.NewNativeAmount("12.5")))
	assert.Equal(t, "12500000", b.Raw()["Amount"])
	assert.Equal(t, "12.5", testAmount.Get(b).Value)

	assert.ErrorIs(t, NewField("Other", codec.String).Set(b, "x"), ErrUnknownField)

	ledger, err := NewLedgerBinding(testSchema, Record{"Account": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", "Sequence": 1}, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, testAmount.Set(ledger, codec.NewNativeAmount("1")), ErrReadOnly)
}

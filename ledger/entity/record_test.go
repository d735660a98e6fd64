package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	r, err := ParseRecord([]byte(`{"Fee":"12","Sequence":5}`))
	require.NoError(t, err)
	assert.Equal(t, json.Number("5"), r["Sequence"])
	assert.Equal(t, "12", r.String("Fee"))

	_, err = ParseRecord([]byte(`null`))
	assert.ErrorIs(t, err, ErrInvalidRecord)
	_, err = ParseRecord([]byte(`[1]`))
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestSplitEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		hasMeta bool
		hash    string
	}{
		{"tx+meta", `{"tx":{"TransactionType":"Payment"},"meta":{"TransactionResult":"tesSUCCESS"}}`, true, ""},
		{"tx_json", `{"tx_json":{"TransactionType":"Payment"},"meta":{},"hash":"AB"}`, true, "AB"},
		{"flat meta", `{"TransactionType":"Payment","hash":"CD","metaData":{}}`, true, "CD"},
		{"draft", `{"TransactionType":"Payment"}`, false, ""},
	}
	for _, test := range tests {
		raw, err := ParseRecord([]byte(test.input))
		require.NoError(t, err, test.name)
		tx, meta := SplitEnvelope(raw)
		assert.Equal(t, "Payment", tx.String("TransactionType"), test.name)
		assert.Equal(t, test.hasMeta, meta != nil, test.name)
		assert.Equal(t, test.hash, tx.String("hash"), test.name)
		assert.False(t, tx.Has("meta"), test.name)
		assert.False(t, tx.Has("metaData"), test.name)
	}
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMeta = `{
  "TransactionIndex": 3,
  "TransactionResult": "tesSUCCESS",
  "delivered_amount": "1000000",
  "AffectedNodes": [
    {"ModifiedNode": {
      "LedgerEntryType": "AccountRoot",
      "LedgerIndex": "13F1A95D7AAB7108D5CE7EEAF504B2894B8C674E6D68499076441C4837282BF8",
      "FinalFields": {"Account": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", "Balance": "99000000"},
      "PreviousFields": {"Balance": "100000000"}
    }},
    {"DeletedNode": {
      "LedgerEntryType": "Escrow",
      "LedgerIndex": "DC5F3851D8A1AB622F957761E5963BC5BD439D5C24AC6AD7AC4523F0640244AC",
      "FinalFields": {"Account": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", "Amount": "1000000"}
    }},
    {"CreatedNode": {
      "LedgerEntryType": "Check",
      "LedgerIndex": "49647F0D748DC3FE26BDACBC57F251AADEFFF391403EC9BF87C97F67E9977FB0",
      "NewFields": {"Account": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"}
    }}
  ]
}`

func TestNewMeta(t *testing.T) {
	raw, err := ParseRecord([]byte(testMeta))
	require.NoError(t, err)
	meta, err := NewMeta(raw)
	require.NoError(t, err)

	assert.True(t, meta.IsSuccess())
	assert.Equal(t, uint32(3), meta.TransactionIndex)
	assert.Equal(t, "1", meta.DeliveredAmount.Value)
	require.Len(t, meta.AffectedNodes, 3)

	escrow := meta.First(DeletedNode, "Escrow")
	require.NotNil(t, escrow)
	assert.Equal(t, "1000000", escrow.Fields().String("Amount"))
	record := escrow.Record()
	assert.Equal(t, "Escrow", record.String("LedgerEntryType"))
	assert.Equal(t, escrow.LedgerIndex, record.String("index"))

	assert.Nil(t, meta.First(CreatedNode, "Escrow"))
	assert.Len(t, meta.Find("", "Check"), 1)

	root := meta.FindByIndex("13f1a95d7aab7108d5ce7eeaf504b2894b8c674e6d68499076441c4837282bf8")
	require.NotNil(t, root)
	prev, changed := root.Previous("Balance")
	assert.True(t, changed)
	assert.Equal(t, "100000000", prev)

	created := meta.First(CreatedNode, "Check")
	_, changed = created.Previous("Account")
	assert.False(t, changed)
}

func TestNewMetaInvalid(t *testing.T) {
	meta, err := NewMeta(nil)
	assert.NoError(t, err)
	assert.Nil(t, meta)
	assert.False(t, meta.IsSuccess())
	assert.Nil(t, meta.Find(DeletedNode, "Escrow"))

	_, err = NewMeta(Record{"AffectedNodes": "nope"})
	assert.ErrorIs(t, err, ErrInvalidRecord)
	_, err = NewMeta(Record{"AffectedNodes": []interface{}{map[string]interface{}{"ChangedNode": map[string]interface{}{}}}})
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

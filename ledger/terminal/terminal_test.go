package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
	"github.com/anyswap/xrpl-txmodel/ledger/explain"
	"github.com/anyswap/xrpl-txmodel/ledger/object"
	"github.com/anyswap/xrpl-txmodel/ledger/txn"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	genesis = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	other   = "ra5jrnrq9BxsvzGeJY5XS9inftcJWMdJUx"
	txHash  = "E08D6E9754025BA2534A78707605E0601F03ACE063687A0CA1BDDACFCD1698C7"
)

func init() {
	color.NoColor = true
}

func payment(t *testing.T) txn.Transaction {
	raw, err := entity.ParseRecord([]byte(`{
		"hash":            "` + txHash + `",
		"TransactionType": "Payment",
		"Account":         "` + genesis + `",
		"Destination":     "` + other + `",
		"Amount":          "25000000",
		"Fee":             "12",
		"Sequence": 4
	}`))
	require.NoError(t, err)
	tx, err := txn.Parse(raw, nil, entity.SourceLedger)
	require.NoError(t, err)
	return tx
}

func TestSprintTransaction(t *testing.T) {
	tx := payment(t)
	line := Sprint(tx, Default)
	assert.True(t, strings.HasPrefix(line, "? Payment"))
	assert.Contains(t, line, "=> "+other)
	assert.Contains(t, line, "25/XRP")
	assert.NotContains(t, line, txHash)

	line = Sprint(tx, ShowHash|Indent)
	assert.True(t, strings.HasPrefix(line, "    "+txHash))
}

func TestSprintObject(t *testing.T) {
	o, err := object.Parse(entity.Record{
		"LedgerEntryType": "AccountRoot",
		"index":           "2B6AC232AA4C4BE41BF49D2459FA4A0347E1B543A4C92FCEE0821C0201E2E9A8",
		"Account":         genesis,
		"Balance":         "1000000",
		"Sequence":        float64(1),
		"Flags":           float64(0x20000),
	}, entity.SourceLedger)
	require.NoError(t, err)
	line := Sprint(o, Default)
	assert.Contains(t, line, "AccountRoot")
	assert.Contains(t, line, "00020000")
	assert.Contains(t, line, "1/XRP")

	assert.Equal(t, "Cannot format: 7", Sprint(7, Default))
}

func TestFprintExplanation(t *testing.T) {
	tag := uint32(99)
	x := &explain.Explanation{
		Label:       "Payment",
		Description: "Payment of 25 XRP",
		Participants: explain.Participants{
			Start: &explain.Party{Address: genesis},
			End:   &explain.Party{Address: other, Tag: &tag},
		},
		Monetary: &explain.MonetaryDetails{
			Mutate: explain.Mutation{Dec: []*codec.Amount{codec.NewNativeAmount("25")}},
			Factor: []explain.MonetaryFactor{
				{Amount: *codec.NewNativeAmount("25"), Effect: explain.ImmediateEffect, Action: explain.Dec},
			},
		},
		Assets: []explain.AssetDetail{{Type: explain.NFTokenAsset, NFTokenID: "000813883EBCBE82C32E1CA28616DBDD2E40873D446B0EC505C73BA9047ED3FE"}},
	}

	var buf bytes.Buffer
	require.NoError(t, FprintExplanation(&buf, x, Default))
	out := buf.String()
	assert.Contains(t, out, "Payment of 25 XRP\n")
	assert.Contains(t, out, "end      "+other+":99\n")
	assert.Contains(t, out, "through  -\n")
	assert.Contains(t, out, "dec      25/XRP\n")
	assert.Contains(t, out, "inc      -\n")
	assert.Contains(t, out, "        DEC IMMEDIATE_EFFECT 25/XRP\n")
	assert.Contains(t, out, "NFToken  000813883EBCBE82")

	buf.Reset()
	require.NoError(t, FprintExplanation(&buf, x, 0))
	assert.NotContains(t, buf.String(), "IMMEDIATE_EFFECT")
}

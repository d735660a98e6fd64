package txn

import (
	"errors"
	"testing"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	genesis = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	other   = "ra5jrnrq9BxsvzGeJY5XS9inftcJWMdJUx"
	txHash  = "E08D6E9754025BA2534A78707605E0601F03ACE063687A0CA1BDDACFCD1698C7"

	escrowIndex = "7AD77DAEB1695C9E01674B8ECCA38F7961ABC7E8B728926B44A9B5F7630842AD"
)

func parse(t *testing.T, source entity.Source, txJSON, metaJSON string) Transaction {
	raw, err := entity.ParseRecord([]byte(txJSON))
	require.NoError(t, err)
	var meta *entity.Meta
	if metaJSON != "" {
		metaRecord, err := entity.ParseRecord([]byte(metaJSON))
		require.NoError(t, err)
		meta, err = entity.NewMeta(metaRecord)
		require.NoError(t, err)
	}
	tx, err := Parse(raw, meta, source)
	require.NoError(t, err)
	if r, ok := tx.(Resolver); ok && meta != nil {
		r.ResolveRelated()
	}
	return tx
}

func TestPayment(t *testing.T) {
	tx := parse(t, entity.SourceLedger, `{
		"hash": "`+txHash+`",
		"TransactionType": "Payment",
		"Account": "`+genesis+`",
		"Destination": "`+other+`",
		"DestinationTag": 12,
		"Amount": "25000000",
		"Fee": "12",
		"Flags": 2147614720,
		"Sequence": 4,
		"Memos": [{"Memo": {"MemoType": "74657374", "MemoData": "68656C6C6F"}}]
	}`, `{
		"TransactionResult": "tesSUCCESS",
		"TransactionIndex": 3,
		"delivered_amount": "1000000",
		"AffectedNodes": []
	}`)

	payment, ok := tx.(*Payment)
	require.True(t, ok)
	assert.True(t, payment.IsRecognized())
	assert.False(t, payment.IsPseudo())
	assert.Equal(t, TypePayment, payment.TransactionType())
	assert.Equal(t, txHash, payment.Hash())
	assert.Equal(t, codec.Address(genesis), payment.Account())
	assert.Equal(t, codec.Address(other), payment.Destination())
	assert.Equal(t, uint32(12), *payment.DestinationTag())
	assert.Equal(t, "25", payment.Amount().Value)
	assert.Equal(t, "0.000012", payment.Fee().Value)
	assert.Equal(t, "1", payment.DeliveredAmount().Value)
	assert.True(t, payment.IsPartial())
	assert.False(t, payment.IsCrossCurrency())
	assert.True(t, payment.IsSuccess())
	assert.Equal(t, "tesSUCCESS", payment.Result())
	assert.Equal(t, []string{"tfPartialPayment", "tfFullyCanonicalSig"}, payment.Binding().Schema().Flags.Set(payment.Flags()))
	require.Len(t, payment.Memos(), 1)
	assert.Equal(t, "hello", payment.Memos()[0].Data)
}

func TestRequiredFieldMissing(t *testing.T) {
	raw := entity.Record{
		"hash":            txHash,
		"TransactionType": "Payment",
		"Account":         genesis,
		"Amount":          "1",
		"Fee":             "10",
		"Sequence":        float64(1),
	}
	_, err := Parse(raw, nil, entity.SourceLedger)
	var missing *entity.RequiredFieldMissing
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "Destination", missing.Field)

	// drafts are bound leniently: no hash, no destination yet
	delete(raw, "hash")
	tx, err := Parse(raw, nil, entity.SourceDraft)
	require.NoError(t, err)
	assert.Equal(t, "", tx.Hash())
	assert.Equal(t, codec.Address(""), tx.(*Payment).Destination())
}

func TestUnknownTransactionType(t *testing.T) {
	tx := parse(t, entity.SourceLedger, `{
		"hash": "`+txHash+`",
		"TransactionType": "SomethingNew",
		"Account": "`+genesis+`",
		"Fee": "10",
		"Sequence": 9
	}`, "")

	_, ok := tx.(*Unknown)
	require.True(t, ok)
	assert.False(t, tx.IsRecognized())
	assert.Equal(t, "SomethingNew", tx.TransactionType())
	assert.Equal(t, uint32(9), tx.Common().Sequence())
}

func TestEscrowFinishResolvesEscrow(t *testing.T) {
	tx := parse(t, entity.SourceLedger, `{
		"hash": "`+txHash+`",
		"TransactionType": "EscrowFinish",
		"Account": "`+other+`",
		"Owner": "`+genesis+`",
		"OfferSequence": 5,
		"Fee": "10",
		"Sequence": 2
	}`, `{
		"TransactionResult": "tesSUCCESS",
		"AffectedNodes": [
			{"ModifiedNode": {"LedgerEntryType": "AccountRoot", "LedgerIndex": "2B6AC232AA4C4BE41BF49D2459FA4A0347E1B543A4C92FCEE0821C0201E2E9A8",
				"FinalFields": {"Account": "`+genesis+`", "Balance": "99000000", "Flags": 0, "OwnerCount": 0, "Sequence": 6}}},
			{"DeletedNode": {"LedgerEntryType": "Escrow", "LedgerIndex": "`+escrowIndex+`",
				"FinalFields": {"Account": "`+genesis+`", "Destination": "`+other+`", "Amount": "10000000", "Flags": 0, "FinishAfter": 686051000}}}
		]
	}`)

	finish, ok := tx.(*EscrowFinish)
	require.True(t, ok)
	index, err := finish.EscrowIndex()
	require.NoError(t, err)
	assert.Equal(t, escrowIndex, index)

	escrow := finish.Escrow()
	require.NotNil(t, escrow)
	assert.Equal(t, escrowIndex, escrow.Index())
	assert.Equal(t, "10", escrow.Amount().Value)
	assert.Equal(t, codec.Address(other), escrow.Destination())

	// set once
	assert.False(t, finish.AttachEscrow(nil))
	finish.ResolveRelated()
	assert.True(t, escrow == finish.Escrow())
}

func TestRelatedUnresolvedWithoutMeta(t *testing.T) {
	tx := parse(t, entity.SourceDraft, `{
		"TransactionType": "EscrowCancel",
		"Account": "`+genesis+`",
		"Owner": "`+genesis+`",
		"OfferSequence": 5
	}`, "")

	cancel := tx.(*EscrowCancel)
	assert.Nil(t, cancel.Escrow())
	cancel.ResolveRelated()
	assert.Nil(t, cancel.Escrow())
}

func TestNFTokenMintIDFromMeta(t *testing.T) {
	tx := parse(t, entity.SourceLedger, `{
		"hash": "`+txHash+`",
		"TransactionType": "NFTokenMint",
		"Account": "`+genesis+`",
		"NFTokenTaxon": 0,
		"Fee": "10",
		"Sequence": 7
	}`, `{
		"TransactionResult": "tesSUCCESS",
		"nftoken_id": "000B013A95F14B0044F78A264E41713C64B5F89242540EE208C3098E00000D65",
		"AffectedNodes": []
	}`)

	id, err := tx.(*NFTokenMint).NFTokenID()
	require.NoError(t, err)
	assert.Equal(t, "000B013A95F14B0044F78A264E41713C64B5F89242540EE208C3098E00000D65", id)
}

func TestNFTokenMintIDComputed(t *testing.T) {
	tx := parse(t, entity.SourceLedger, `{
		"hash": "`+txHash+`",
		"TransactionType": "NFTokenMint",
		"Account": "`+genesis+`",
		"Flags": 2147483656,
		"TransferFee": 5000,
		"NFTokenTaxon": 0,
		"URI": "697066733A2F2F78",
		"Fee": "10",
		"Sequence": 7
	}`, `{
		"TransactionResult": "tesSUCCESS",
		"AffectedNodes": [
			{"ModifiedNode": {"LedgerEntryType": "AccountRoot", "LedgerIndex": "2B6AC232AA4C4BE41BF49D2459FA4A0347E1B543A4C92FCEE0821C0201E2E9A8",
				"FinalFields": {"Account": "`+genesis+`", "Balance": "99000000", "MintedNFTokens": 3, "OwnerCount": 1, "Sequence": 8, "Flags": 0},
				"PreviousFields": {"MintedNFTokens": 2, "Sequence": 7}}}
		]
	}`)

	mint := tx.(*NFTokenMint)
	assert.Equal(t, "ipfs://x", mint.URI())
	assert.Equal(t, codec.Address(genesis), mint.Issuer())
	id, err := mint.NFTokenID()
	require.NoError(t, err)
	assert.Equal(t, "00081388B5F762798A53D543A014CAF8B297CFF8F2F937E82DCBAB9D00000002", id)
}

func TestNFTokenMintIDUnavailable(t *testing.T) {
	tx := parse(t, entity.SourceLedger, `{
		"hash": "`+txHash+`",
		"TransactionType": "NFTokenMint",
		"Account": "`+genesis+`",
		"NFTokenTaxon": 0,
		"Fee": "10",
		"Sequence": 7
	}`, `{"TransactionResult": "tecNO_PERMISSION", "AffectedNodes": []}`)

	_, err := tx.(*NFTokenMint).NFTokenID()
	assert.ErrorIs(t, err, ErrNFTokenIDUnavailable)
}

func TestURITokenMintID(t *testing.T) {
	tx := parse(t, entity.SourceDraft, `{
		"TransactionType": "URITokenMint",
		"Account": "`+genesis+`",
		"URI": "697066733A2F2F78",
		"Flags": 1
	}`, "")

	mint := tx.(*URITokenMint)
	assert.Equal(t, "ipfs://x", mint.URI())
	assert.True(t, mint.Flags().Has("tfBurnable"))
	id, err := mint.URITokenID()
	require.NoError(t, err)
	assert.Equal(t, "1D4DFD45205F2C85E10BA33291506BEF2EA5B70CA654E3E5E54939E485C35DE3", id)
}

func TestPseudoTransactions(t *testing.T) {
	tx := parse(t, entity.SourceLedger, `{
		"hash": "`+txHash+`",
		"TransactionType": "EnableAmendment",
		"Account": "rrrrrrrrrrrrrrrrrrrrrhoLvTp",
		"Amendment": "42426C4D4F1009EE67080A9B7965B44656D7714D104A72F9B4369F97ABF044EE",
		"LedgerSequence": 21225473,
		"Flags": 65536,
		"Fee": "0",
		"Sequence": 0
	}`, "")

	amendment, ok := tx.(*EnableAmendment)
	require.True(t, ok)
	assert.True(t, amendment.IsPseudo())
	assert.Equal(t, "gotMajority", amendment.Status())
	assert.Equal(t, uint32(21225473), amendment.LedgerSequence())

	tx = parse(t, entity.SourceLedger, `{
		"hash": "`+txHash+`",
		"TransactionType": "SetFee",
		"Account": "rrrrrrrrrrrrrrrrrrrrrhoLvTp",
		"BaseFee": "000000000000000A",
		"ReferenceFeeUnits": 10,
		"ReserveBase": 20000000,
		"ReserveIncrement": 5000000,
		"Fee": "0",
		"Sequence": 0
	}`, "")

	fee := tx.(*SetFee)
	assert.True(t, fee.IsPseudo())
	assert.Equal(t, "0.00001", fee.BaseFee().Value)
	assert.Equal(t, "20", fee.ReserveBase().Value)
	assert.Equal(t, "5", fee.ReserveIncrement().Value)

	_, ok = Lookup(TypeSetFee)
	assert.False(t, ok)
	c, ok := LookupPseudo(TypeSetFee)
	assert.True(t, ok)
	assert.True(t, c.Pseudo)
}

func TestRegistry(t *testing.T) {
	for _, txType := range Types() {
		c, ok := Lookup(txType)
		require.True(t, ok, txType)
		assert.Equal(t, txType, c.Schema.Kind)
		assert.False(t, c.Pseudo, txType)
	}
	assert.Contains(t, Types(), TypeRemit)
	assert.Contains(t, PseudoTypes(), TypeUNLModify)
}

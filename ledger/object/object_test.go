package object

import (
	"errors"
	"testing"
	"time"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func rippleTime(t time.Time) uint32 {
	return codec.ToRippleTime(t)
}

func escrowRecord(fields entity.Record) entity.Record {
	r := entity.Record{
		"LedgerEntryType": "Escrow",
		"index":           "dc5f3851d8a1ab622f957761e5963bc5bd439d5c24ac6ad7ac4523f0640244ac",
		"Account":         "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
		"Destination":     "ra5jrnrq9BxsvzGeJY5XS9inftcJWMdJUx",
		"Amount":          "10000000",
	}
	for k, v := range fields {
		r[k] = v
	}
	return r
}

func parseEscrow(t *testing.T, fields entity.Record) *Escrow {
	o, err := Parse(escrowRecord(fields), entity.SourceLedger)
	require.NoError(t, err)
	escrow, ok := o.(*Escrow)
	require.True(t, ok)
	return escrow
}

func TestEscrowStateMachine(t *testing.T) {
	expired := parseEscrow(t, entity.Record{"CancelAfter": rippleTime(now.Add(-time.Hour))})
	assert.True(t, expired.IsExpired(now))
	assert.False(t, expired.CanFinish(now))
	assert.True(t, expired.CanCancel(now))

	finishable := parseEscrow(t, entity.Record{"FinishAfter": rippleTime(now.Add(-time.Hour))})
	assert.False(t, finishable.IsExpired(now))
	assert.True(t, finishable.CanFinish(now))
	assert.False(t, finishable.CanCancel(now))

	locked := parseEscrow(t, entity.Record{
		"FinishAfter": rippleTime(now.Add(time.Hour)),
		"CancelAfter": rippleTime(now.Add(2 * time.Hour)),
	})
	assert.False(t, locked.IsExpired(now))
	assert.False(t, locked.CanFinish(now))

	open := parseEscrow(t, nil)
	assert.False(t, open.IsExpired(now))
	assert.True(t, open.CanFinish(now))

	assert.Equal(t, "10", open.Amount().Value)
	assert.Equal(t, "DC5F3851D8A1AB622F957761E5963BC5BD439D5C24AC6AD7AC4523F0640244AC", open.Index())
	assert.Equal(t, TypeEscrow, open.LedgerEntryType())
}

func TestParseRequiredMissing(t *testing.T) {
	raw := escrowRecord(nil)
	delete(raw, "Amount")

	_, err := Parse(raw, entity.SourceLedger)
	var missing *entity.RequiredFieldMissing
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "Amount", missing.Field)

	draft, err := Parse(raw, entity.SourceDraft)
	require.NoError(t, err)
	assert.Nil(t, draft.(*Escrow).Amount())
}

func TestParseUnknown(t *testing.T) {
	o, err := Parse(entity.Record{"LedgerEntryType": "Oracle", "Flags": 0, "PreviousTxnID": "ABCD"}, entity.SourceLedger)
	require.NoError(t, err)
	assert.False(t, o.IsRecognized())
	assert.Equal(t, "Oracle", o.LedgerEntryType())
	assert.Equal(t, uint32(0), o.(*Unknown).RawFlags())
}

func TestRippleStateBalanceFor(t *testing.T) {
	o, err := Parse(entity.Record{
		"LedgerEntryType": "RippleState",
		"Balance":         map[string]interface{}{"currency": "USD", "issuer": "rrrrrrrrrrrrrrrrrrrrBZbvji", "value": "-25"},
		"LowLimit":        map[string]interface{}{"currency": "USD", "issuer": "ra5jrnrq9BxsvzGeJY5XS9inftcJWMdJUx", "value": "0"},
		"HighLimit":       map[string]interface{}{"currency": "USD", "issuer": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", "value": "100"},
		"Flags":           0x00020000 | 0x00200000,
	}, entity.SourceLedger)
	require.NoError(t, err)
	line := o.(*RippleState)

	assert.Equal(t, "USD", line.Currency())
	assert.Equal(t, "-25", line.BalanceFor("ra5jrnrq9BxsvzGeJY5XS9inftcJWMdJUx").Value)
	high := line.BalanceFor("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")
	assert.Equal(t, "25", high.Value)
	assert.Equal(t, "ra5jrnrq9BxsvzGeJY5XS9inftcJWMdJUx", high.Issuer)
	assert.Nil(t, line.BalanceFor("rrrrrrrrrrrrrrrrrrrrrhoLvTp"))
	assert.Equal(t, "100", line.LimitFor("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh").Value)

	flags := line.Flags()
	assert.True(t, flags.Has("lsfHighReserve"))
	assert.True(t, flags.Has("lsfHighNoRipple"))
	assert.False(t, flags.Has("lsfLowReserve"))
}

func TestExpirations(t *testing.T) {
	past := rippleTime(now.Add(-time.Minute))
	check, err := Parse(entity.Record{
		"LedgerEntryType": "Check",
		"Account":         "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
		"Destination":     "ra5jrnrq9BxsvzGeJY5XS9inftcJWMdJUx",
		"SendMax":         "1000000",
		"Sequence":        5,
		"Expiration":      past,
	}, entity.SourceLedger)
	require.NoError(t, err)
	assert.True(t, check.(*Check).IsExpired(now))

	offer, err := Parse(entity.Record{
		"LedgerEntryType": "NFTokenOffer",
		"Owner":           "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
		"NFTokenID":       "000813883EBCBE82C32E1CA28616DBDD2E40873D446B0EC505C73BA9047ED3FE",
		"Amount":          "0",
		"Flags":           1,
	}, entity.SourceLedger)
	require.NoError(t, err)
	assert.True(t, offer.(*NFTokenOffer).IsSellOffer())
	assert.False(t, offer.(*NFTokenOffer).IsExpired(now))

	channel, err := Parse(entity.Record{
		"LedgerEntryType": "PayChannel",
		"Account":         "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
		"Destination":     "ra5jrnrq9BxsvzGeJY5XS9inftcJWMdJUx",
		"Amount":          "5000000",
		"Balance":         "1500000",
		"SettleDelay":     3600,
		"CancelAfter":     past,
	}, entity.SourceLedger)
	require.NoError(t, err)
	assert.True(t, channel.(*PayChannel).IsExpired(now))
	assert.Equal(t, "3.5", channel.(*PayChannel).Remaining().Value)
}

func TestFromAffectedNode(t *testing.T) {
	node := &entity.AffectedNode{
		State:           entity.DeletedNode,
		LedgerEntryType: "Ticket",
		LedgerIndex:     "E74DE2F40A874F3B6EA9A27DC5287B8D12A4DE224538848FB47FB5F65F9B77F4",
		FinalFields:     entity.Record{"Account": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", "TicketSequence": 3},
	}
	o, err := FromAffectedNode(node)
	require.NoError(t, err)
	ticket := o.(*Ticket)
	assert.Equal(t, uint32(3), ticket.TicketSequence())
	assert.Equal(t, node.LedgerIndex, ticket.Index())
	assert.True(t, ticket.Binding().IsLedger())

	_, err = FromAffectedNode(nil)
	assert.ErrorIs(t, err, entity.ErrInvalidRecord)
}

func TestTypesRegistered(t *testing.T) {
	assert.ElementsMatch(t, []string{
		TypeAccountRoot, TypeRippleState, TypeOffer, TypeEscrow, TypeCheck, TypePayChannel, TypeTicket,
		TypeDepositPreauth, TypeSignerList, TypeNFTokenOffer, TypeURIToken, TypeAMM, TypeDID,
	}, Types())
}

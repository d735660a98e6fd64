package nftoken

import (
	"math"
	"strings"
	"testing"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	vectorIssuer codec.Address = "ra5jrnrq9BxsvzGeJY5XS9inftcJWMdJUx"
	vectorID                   = "000813883EBCBE82C32E1CA28616DBDD2E40873D446B0EC505C73BA9047ED3FE"
)

func TestEncodeVector(t *testing.T) {
	id, err := Encode(vectorIssuer, 75420670, 8, 5000, 48)
	require.NoError(t, err)
	assert.Equal(t, vectorID, id)
}

func TestDecodeVector(t *testing.T) {
	token, err := Decode(vectorID)
	require.NoError(t, err)
	assert.Equal(t, &Token{
		Flags:       8,
		TransferFee: 5000,
		Issuer:      vectorIssuer,
		Taxon:       48,
		Sequence:    75420670,
	}, token)
	assert.True(t, token.HasFlag(FlagTransferable))
	assert.False(t, token.HasFlag(FlagBurnable))
	assert.Equal(t, "5.000%", token.TransferFeePercent())

	lower, err := Decode(strings.ToLower(vectorID))
	require.NoError(t, err)
	assert.Equal(t, token, lower)
}

func TestRoundTrip(t *testing.T) {
	tests := []Token{
		{Flags: 0, TransferFee: 0, Issuer: "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", Taxon: 0, Sequence: 0},
		{Flags: math.MaxUint16, TransferFee: 50000, Issuer: "rrrrrrrrrrrrrrrrrrrrrhoLvTp", Taxon: math.MaxUint32, Sequence: math.MaxUint32},
		{Flags: FlagBurnable | FlagOnlyXRP, TransferFee: 1, Issuer: vectorIssuer, Taxon: 12345, Sequence: 1},
	}
	for _, want := range tests {
		id, err := Encode(want.Issuer, want.Sequence, want.Flags, want.TransferFee, want.Taxon)
		require.NoError(t, err)
		assert.Len(t, id, 64)
		got, err := Decode(id)
		require.NoError(t, err)
		assert.Equal(t, want, *got)
	}
}

func TestErrors(t *testing.T) {
	_, err := Encode("rNotAnAddress", 1, 0, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidIssuer)

	_, err = Decode(vectorID[:62])
	assert.ErrorIs(t, err, ErrInvalidLength)
	_, err = Decode(vectorID + "00")
	assert.ErrorIs(t, err, ErrInvalidLength)
	_, err = Decode(strings.Repeat("Z", 64))
	assert.ErrorIs(t, err, ErrInvalidLength)
}

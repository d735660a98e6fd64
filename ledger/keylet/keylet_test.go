package keylet

import (
	"testing"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	genesis codec.Address = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	other   codec.Address = "ra5jrnrq9BxsvzGeJY5XS9inftcJWMdJUx"
)

func TestKeylets(t *testing.T) {
	tests := []struct {
		name  string
		index func() (string, error)
		want  string
	}{
		{"account", func() (string, error) { return AccountRoot(genesis) }, "2B6AC232AA4C4BE41BF49D2459FA4A0347E1B543A4C92FCEE0821C0201E2E9A8"},
		{"check", func() (string, error) { return Check(genesis, 5) }, "7F640CCE9CBA5B9DEF70D455B9BFFB1C9D500A5409B7AA84275C542AC0C35AE5"},
		{"escrow", func() (string, error) { return Escrow(genesis, 5) }, "7AD77DAEB1695C9E01674B8ECCA38F7961ABC7E8B728926B44A9B5F7630842AD"},
		{"offer", func() (string, error) { return Offer(genesis, 5) }, "BF656DABDD84E6128A45039F8D557C9477D4DA31F5B00868F2191F0A11FE3798"},
		{"paychan", func() (string, error) { return PayChannel(genesis, other, 9) }, "B9CE423015D1D235D3ABBE8CD023EF560B37A4EB3034E79A226C41D60230DFBB"},
		{"ticket", func() (string, error) { return Ticket(genesis, 3) }, "E74DE2F40A874F3B6EA9A27DC5287B8D12A4DE224538848FB47FB5F65F9B77F4"},
		{"signer list", func() (string, error) { return SignerList(genesis) }, "778365D5180F5DF3016817D1F318527AD7410D83F8636CF48C43E8AF72AB49BF"},
		{"nftoken offer", func() (string, error) { return NFTokenOffer(genesis, 5) }, "262B0F764974D0DB2561F566D989AECDE7B20565A1BA0213960EEF67121ADDA2"},
		{"uri token", func() (string, error) { return URIToken(genesis, codec.TextToHex("ipfs://x")) }, "1D4DFD45205F2C85E10BA33291506BEF2EA5B70CA654E3E5E54939E485C35DE3"},
	}
	for _, test := range tests {
		index, err := test.index()
		require.NoError(t, err, test.name)
		assert.Equal(t, test.want, index, test.name)
	}
}

func TestKeyletInvalid(t *testing.T) {
	_, err := AccountRoot("rBogus")
	assert.ErrorIs(t, err, codec.ErrInvalidAddress)

	_, err = URIToken(genesis, "zz")
	assert.ErrorIs(t, err, codec.ErrInvalidBlob)
}

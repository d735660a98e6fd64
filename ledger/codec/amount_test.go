package codec

import (
	"encoding/json"
	"testing"

	"github.com/juju/testing/checkers"
	. "gopkg.in/check.v1"
)

func Test(t *testing.T) { TestingT(t) }

type AmountSuite struct{}

var _ = Suite(&AmountSuite{})

var amountTests = []struct {
	raw      interface{}
	currency string
	value    string
	issuer   string
}{
	{"500000000", "XRP", "500", ""},
	{"1", "XRP", "0.000001", ""},
	{"0", "XRP", "0", ""},
	{json.Number("2500000"), "XRP", "2.5", ""},
	{map[string]interface{}{"currency": "BTC", "value": "0.012136", "issuer": "rchGBxcD1A1C2tdxF6papQYZ8kjRKMYcL"}, "BTC", "0.012136", "rchGBxcD1A1C2tdxF6papQYZ8kjRKMYcL"},
	{map[string]interface{}{"currency": "USD", "value": "-1e-3", "issuer": "rhub8VRN55s94qWKDv6jmDy1pUykJzF3wq"}, "USD", "-1e-3", "rhub8VRN55s94qWKDv6jmDy1pUykJzF3wq"},
}

func (s *AmountSuite) TestDecode(c *C) {
	for _, test := range amountTests {
		a, err := AmountCodec.Decode(test.raw)
		c.Assert(err, IsNil)
		c.Check(a.Currency, Equals, test.currency)
		c.Check(a.Value, Equals, test.value)
		c.Check(a.Issuer, Equals, test.issuer)
		c.Check(a.IsNative(), Equals, test.issuer == "")
	}
}

func (s *AmountSuite) TestEncode(c *C) {
	c.Check(AmountCodec.Encode(NewNativeAmount("500")), Equals, "500000000")
	c.Check(AmountCodec.Encode(NewNativeAmount("0.000001")), Equals, "1")

	issued := &Amount{Currency: "BTC", Value: "0.012136", Issuer: "rchGBxcD1A1C2tdxF6papQYZ8kjRKMYcL"}
	c.Check(AmountCodec.Encode(issued), checkers.DeepEquals, map[string]interface{}{
		"currency": "BTC", "value": "0.012136", "issuer": "rchGBxcD1A1C2tdxF6papQYZ8kjRKMYcL",
	})
}

func (s *AmountSuite) TestInvalid(c *C) {
	invalids := []interface{}{
		"",
		"1.5",
		"12e3",
		"abc",
		true,
		map[string]interface{}{"value": "1"},
		map[string]interface{}{"currency": "USD", "value": "x"},
	}
	for _, raw := range invalids {
		_, err := AmountCodec.Decode(raw)
		c.Check(err, ErrorMatches, "invalid-amount.*", Commentf("%v", raw))
	}
}

func (s *AmountSuite) TestMPTPassThrough(c *C) {
	a, err := AmountCodec.Decode(map[string]interface{}{"mpt_issuance_id": "0000012FFD9EE5DA93AC614B4DB94D7E0FCE415CA51BED47", "value": "100"})
	c.Assert(err, IsNil)
	c.Check(a.IsNative(), Equals, false)
	c.Check(a.String(), Equals, "100/0000012FFD9EE5DA93AC614B4DB94D7E0FCE415CA51BED47")
}

func (s *AmountSuite) TestHelpers(c *C) {
	a := &Amount{Currency: "USD", Value: "10.5", Issuer: "rhub8VRN55s94qWKDv6jmDy1pUykJzF3wq"}
	c.Check(a.Negate().Value, Equals, "-10.5")
	c.Check(a.Negate().Abs().Value, Equals, "10.5")
	c.Check(a.Value, Equals, "10.5")
	c.Check(a.SameAsset(a.Negate()), Equals, true)
	c.Check(a.SameAsset(NewNativeAmount("1")), Equals, false)
	c.Check(a.String(), Equals, "10.5/USD/rhub8VRN55s94qWKDv6jmDy1pUykJzF3wq")
	c.Check((&Amount{Value: "oops"}).IsZero(), Equals, true)
}

func (s *AmountSuite) TestCurrencyDisplay(c *C) {
	c.Check(CurrencyDisplay("USD"), Equals, "USD")
	c.Check(CurrencyDisplay("534F4C4F00000000000000000000000000000000"), Equals, "SOLO")
	c.Check(CurrencyDisplay("0000000000000000000000005553440000000000"), Equals, "0000000000000000000000005553440000000000")
}

func (s *AmountSuite) TestNativeCurrency(c *C) {
	defer SetNativeCurrency("XRP", 6)
	SetNativeCurrency("XAH", 6)
	a, err := AmountCodec.Decode("1000000")
	c.Assert(err, IsNil)
	c.Check(a.Currency, Equals, "XAH")
	c.Check(a.Value, Equals, "1")
}

func (s *AmountSuite) TestIssue(c *C) {
	i, err := IssueCodec.Decode(map[string]interface{}{"currency": "XRP"})
	c.Assert(err, IsNil)
	c.Check(i.IsNative(), Equals, true)
	c.Check(i.String(), Equals, "XRP")
	c.Check(IssueCodec.Encode(&Issue{Currency: "USD", Issuer: "rhub8VRN55s94qWKDv6jmDy1pUykJzF3wq"}), checkers.DeepEquals,
		map[string]interface{}{"currency": "USD", "issuer": "rhub8VRN55s94qWKDv6jmDy1pUykJzF3wq"})

	_, err = IssueCodec.Decode("XRP")
	c.Check(err, NotNil)
}

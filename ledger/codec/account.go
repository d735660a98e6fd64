package codec

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"golang.org/x/crypto/ripemd160"
)

const (
	rippleAlphabet  = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"
	bitcoinAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	accountIDVersion byte = 0
	accountIDLength       = 20

	// AccountZero is the base58 form of the all-zero account id
	AccountZero Address = "rrrrrrrrrrrrrrrrrrrrrhoLvTp"
	// AccountOne is the placeholder issuer used by RippleState balances
	AccountOne Address = "rrrrrrrrrrrrrrrrrrrrBZbvji"
)

var toBitcoin, toRipple [256]byte

func init() {
	for i := 0; i < len(rippleAlphabet); i++ {
		toBitcoin[rippleAlphabet[i]] = bitcoinAlphabet[i]
		toRipple[bitcoinAlphabet[i]] = rippleAlphabet[i]
	}
}

// Address is a classic base58 account address ("r...").
// The empty Address means absent.
type Address string

func (a Address) String() string { return string(a) }

// IsZero is true for the absent address
func (a Address) IsZero() bool { return a == "" }

// Equals compares two addresses
func (a Address) Equals(b Address) bool { return a != "" && a == b }

// Short is r1234...abcd, used in log lines
func (a Address) Short() string {
	if len(a) < 12 {
		return string(a)
	}
	return string(a[:6]) + "..." + string(a[len(a)-4:])
}

func translate(s string, table *[256]byte) (string, bool) {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := table[s[i]]
		if c == 0 {
			return "", false
		}
		sb.WriteByte(c)
	}
	return sb.String(), true
}

// DecodeAddress returns the 20 byte account id of a classic address
func DecodeAddress(address string) ([]byte, error) {
	if len(address) < 25 || len(address) > 35 || address[0] != 'r' {
		return nil, invalid(ErrInvalidAddress, address)
	}
	btc, ok := translate(address, &toBitcoin)
	if !ok {
		return nil, invalid(ErrInvalidAddress, address)
	}
	payload, version, err := base58.CheckDecode(btc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %v", ErrInvalidAddress, address, err)
	}
	if version != accountIDVersion || len(payload) != accountIDLength {
		return nil, invalid(ErrInvalidAddress, address)
	}
	return payload, nil
}

// EncodeAccountID returns the classic address of a 20 byte account id
func EncodeAccountID(accountID []byte) (Address, error) {
	if len(accountID) != accountIDLength {
		return "", fmt.Errorf("%w: account id must be %d bytes, got %d", ErrInvalidAddress, accountIDLength, len(accountID))
	}
	encoded, _ := translate(base58.CheckEncode(accountID, accountIDVersion), &toRipple)
	return Address(encoded), nil
}

// IsValidAddress checks a classic address
func IsValidAddress(address string) bool {
	_, err := DecodeAddress(address)
	return err == nil
}

// AddressFromPublicKey converts a hex encoded secp256k1 or ed25519 public key to its address
func AddressFromPublicKey(pubKeyHex string) (Address, error) {
	pub, err := hex.DecodeString(pubKeyHex)
	if err != nil || len(pub) != 33 {
		return "", fmt.Errorf("%w: bad public key %q", ErrInvalidBlob, pubKeyHex)
	}
	sha := sha256.Sum256(pub)
	ripe := ripemd160.New()
	ripe.Write(sha[:])
	return EncodeAccountID(ripe.Sum(nil))
}

// Account codec: validates and normalizes an address string
var Account = Codec[Address]{
	Decode: func(raw interface{}) (Address, error) {
		s, ok := raw.(string)
		if !ok {
			return "", invalid(ErrInvalidAddress, raw)
		}
		s = strings.TrimSpace(s)
		if _, err := DecodeAddress(s); err != nil {
			return "", err
		}
		return Address(s), nil
	},
	Encode: func(a Address) interface{} { return string(a) },
}

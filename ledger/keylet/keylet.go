// Package keylet derives ledger entry indexes (keylets): SHA-512Half over a two byte
// namespace followed by the entry's identifying fields.
package keylet

import (
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
)

// ledger namespaces
const (
	nsAccount       uint16 = 'a'
	nsOffer         uint16 = 'o'
	nsRippleState   uint16 = 'r'
	nsCheck         uint16 = 'C'
	nsEscrow        uint16 = 'u'
	nsPayChannel    uint16 = 'x'
	nsTicket        uint16 = 'T'
	nsDepositAuth   uint16 = 'p'
	nsSignerList    uint16 = 'S'
	nsNFTokenOffer  uint16 = 'q'
	nsURIToken      uint16 = 'U'
	nsDID           uint16 = 'I'
	nsOwnerDir      uint16 = 'O'
	defaultSignerID uint32 = 0
)

func write(h hash.Hash, item interface{}) error {
	switch v := item.(type) {
	case uint16:
		return binary.Write(h, binary.BigEndian, v)
	case uint32:
		return binary.Write(h, binary.BigEndian, v)
	case []byte:
		_, err := h.Write(v)
		return err
	case codec.Address:
		id, err := codec.DecodeAddress(string(v))
		if err != nil {
			return err
		}
		_, err = h.Write(id)
		return err
	default:
		return fmt.Errorf("keylet: unsupported item %T", item)
	}
}

func build(items ...interface{}) (string, error) {
	h := sha512.New()
	for _, item := range items {
		if err := write(h, item); err != nil {
			return "", err
		}
	}
	return strings.ToUpper(hex.EncodeToString(h.Sum(nil)[:32])), nil
}

// AccountRoot index of an account
func AccountRoot(account codec.Address) (string, error) {
	return build(nsAccount, account)
}

// OwnerDirectory root index of an account
func OwnerDirectory(account codec.Address) (string, error) {
	return build(nsOwnerDir, account)
}

// Offer created by account at sequence
func Offer(account codec.Address, sequence uint32) (string, error) {
	return build(nsOffer, account, sequence)
}

// Check created by account at sequence
func Check(account codec.Address, sequence uint32) (string, error) {
	return build(nsCheck, account, sequence)
}

// Escrow created by owner at sequence
func Escrow(owner codec.Address, sequence uint32) (string, error) {
	return build(nsEscrow, owner, sequence)
}

// PayChannel from source to destination created at sequence
func PayChannel(source, destination codec.Address, sequence uint32) (string, error) {
	return build(nsPayChannel, source, destination, sequence)
}

// Ticket of account at ticket sequence
func Ticket(account codec.Address, ticketSequence uint32) (string, error) {
	return build(nsTicket, account, ticketSequence)
}

// DepositPreauth granted by owner to authorized
func DepositPreauth(owner, authorized codec.Address) (string, error) {
	return build(nsDepositAuth, owner, authorized)
}

// SignerList of account
func SignerList(account codec.Address) (string, error) {
	return build(nsSignerList, account, defaultSignerID)
}

// NFTokenOffer created by owner at sequence
func NFTokenOffer(owner codec.Address, sequence uint32) (string, error) {
	return build(nsNFTokenOffer, owner, sequence)
}

// URIToken minted by issuer for a hex encoded uri
func URIToken(issuer codec.Address, uriHex string) (string, error) {
	uri, err := hex.DecodeString(uriHex)
	if err != nil {
		return "", fmt.Errorf("%w: uri %v", codec.ErrInvalidBlob, err)
	}
	return build(nsURIToken, issuer, uri)
}

// DID of account
func DID(account codec.Address) (string, error) {
	return build(nsDID, account)
}

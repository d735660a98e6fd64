// Package nftoken packs and unpacks the 32 byte NFToken identifier:
//
//	flags(2) | transfer fee(2) | issuer(20) | scrambled taxon(4) | sequence(4)
//
// all big endian. The taxon is scrambled with a linear congruential generator seeded by the
// token sequence, so tokens of one taxon minted in a row do not sort together.
package nftoken

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
)

const (
	// IDLength is the binary identifier length
	IDLength = 32

	lcgMultiplier uint32 = 384160001
	lcgIncrement  uint32 = 2459
)

// flags stored in the identifier
const (
	FlagBurnable     uint16 = 0x0001
	FlagOnlyXRP      uint16 = 0x0002
	FlagTrustLine    uint16 = 0x0004
	FlagTransferable uint16 = 0x0008
	FlagMutable      uint16 = 0x0010
)

// codec errors
var (
	ErrEncodingLengthMismatch = errors.New("nftoken id encoding length mismatch")
	ErrInvalidLength          = errors.New("nftoken id must be 64 hex characters")
	ErrInvalidIssuer          = errors.New("nftoken issuer is not a valid address")
)

// Token is a decoded identifier
type Token struct {
	Flags       uint16        `json:"flags"`
	TransferFee uint16        `json:"transferFee"`
	Issuer      codec.Address `json:"issuer"`
	Taxon       uint32        `json:"taxon"`
	Sequence    uint32        `json:"sequence"`
}

// HasFlag reports an identifier flag
func (t *Token) HasFlag(flag uint16) bool {
	return t.Flags&flag != 0
}

// TransferFeePercent renders the fee (units of 1/100000) as a percentage string
func (t *Token) TransferFeePercent() string {
	return fmt.Sprintf("%.3f%%", float64(t.TransferFee)/1000)
}

func scramble(taxon, sequence uint32) uint32 {
	return taxon ^ (lcgMultiplier*sequence + lcgIncrement)
}

// Encode builds the uppercase hex identifier
func Encode(issuer codec.Address, sequence uint32, flags, transferFee uint16, taxon uint32) (string, error) {
	account, err := codec.DecodeAddress(string(issuer))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidIssuer, err)
	}
	buf := make([]byte, 0, IDLength)
	buf = binary.BigEndian.AppendUint16(buf, flags)
	buf = binary.BigEndian.AppendUint16(buf, transferFee)
	buf = append(buf, account...)
	buf = binary.BigEndian.AppendUint32(buf, scramble(taxon, sequence))
	buf = binary.BigEndian.AppendUint32(buf, sequence)
	if len(buf) != IDLength {
		return "", fmt.Errorf("%w: got %d bytes", ErrEncodingLengthMismatch, len(buf))
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}

// Decode splits an identifier into its fields
func Decode(id string) (*Token, error) {
	if len(id) != IDLength*2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, len(id))
	}
	buf, err := hex.DecodeString(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLength, err)
	}
	issuer, err := codec.EncodeAccountID(buf[4:24])
	if err != nil {
		return nil, err
	}
	sequence := binary.BigEndian.Uint32(buf[28:32])
	return &Token{
		Flags:       binary.BigEndian.Uint16(buf[0:2]),
		TransferFee: binary.BigEndian.Uint16(buf[2:4]),
		Issuer:      issuer,
		Taxon:       scramble(binary.BigEndian.Uint32(buf[24:28]), sequence),
		Sequence:    sequence,
	}, nil
}

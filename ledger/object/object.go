// Package object models standing ledger entries (LedgerEntryType discriminant).
package object

import (
	"fmt"
	"strings"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
)

// ledger entry types
const (
	TypeAccountRoot    = "AccountRoot"
	TypeRippleState    = "RippleState"
	TypeOffer          = "Offer"
	TypeEscrow         = "Escrow"
	TypeCheck          = "Check"
	TypePayChannel     = "PayChannel"
	TypeTicket         = "Ticket"
	TypeDepositPreauth = "DepositPreauth"
	TypeSignerList     = "SignerList"
	TypeNFTokenOffer   = "NFTokenOffer"
	TypeURIToken       = "URIToken"
	TypeAMM            = "AMM"
	TypeDID            = "DID"
)

// Object is a decoded ledger entry
type Object interface {
	LedgerEntryType() string
	Index() string
	Binding() *entity.Binding
	IsRecognized() bool
}

// common fields
var (
	LedgerEntryTypeField = entity.NewRequiredField("LedgerEntryType", codec.String)
	IndexField           = entity.NewField("index", codec.Hash256)
	FlagsField           = entity.NewField("Flags", codec.UInt32)
	PreviousTxnID        = entity.NewField("PreviousTxnID", codec.Hash256)
	PreviousTxnLgrSeq    = entity.NewField("PreviousTxnLgrSeq", codec.UInt32)
	OwnerNode            = entity.NewField("OwnerNode", codec.UInt64)

	commonFields = []entity.Descriptor{
		LedgerEntryTypeField,
		IndexField,
		FlagsField,
		PreviousTxnID,
		PreviousTxnLgrSeq,
		OwnerNode,
	}
)

// NewSchema merges the common ledger entry fields with a variant's own
func NewSchema(entryType string, flags codec.FlagTable, fields ...entity.Descriptor) *entity.Schema {
	return entity.NewSchema(entryType, flags, commonFields, fields)
}

// Base carries the binding and common accessors of every ledger entry
type Base struct {
	b *entity.Binding
}

// Binding impl Object
func (o *Base) Binding() *entity.Binding { return o.b }

// LedgerEntryType impl Object
func (o *Base) LedgerEntryType() string { return LedgerEntryTypeField.Get(o.b) }

// Index is the ledger index (uppercase hex)
func (o *Base) Index() string {
	if index := IndexField.Get(o.b); index != "" {
		return strings.ToUpper(index)
	}
	return strings.ToUpper(o.b.Raw().String("LedgerIndex"))
}

// IsRecognized impl Object
func (o *Base) IsRecognized() bool { return true }

// RawFlags is the flags bitmask
func (o *Base) RawFlags() uint32 { return u32(FlagsField.Get(o.b)) }

// Flags decodes the bitmask with the variant's flag table
func (o *Base) Flags() codec.Flags {
	return codec.DecodeFlags(o.RawFlags(), o.b.Schema().Flags)
}

// PreviousTxnID is the last transaction that modified the entry
func (o *Base) PreviousTxnID() string { return PreviousTxnID.Get(o.b) }

// Unknown is a ledger entry of a type this package does not model
type Unknown struct {
	Base
}

// IsRecognized impl Object
func (o *Unknown) IsRecognized() bool { return false }

var unknownSchema = NewSchema("Unknown", nil)

// Constructor builds a variant over a bound record
type Constructor struct {
	Schema *entity.Schema
	New    func(b *entity.Binding) Object
}

var constructors = map[string]Constructor{}

func register(schema *entity.Schema, fn func(b *entity.Binding) Object) *entity.Schema {
	if _, exist := constructors[schema.Kind]; exist {
		panic("object: duplicate ledger entry type " + schema.Kind)
	}
	constructors[schema.Kind] = Constructor{Schema: schema, New: fn}
	return schema
}

// Lookup finds the constructor of a ledger entry type
func Lookup(entryType string) (Constructor, bool) {
	c, ok := constructors[entryType]
	return c, ok
}

// Types lists the modelled ledger entry types
func Types() []string {
	types := make([]string, 0, len(constructors))
	for t := range constructors {
		types = append(types, t)
	}
	return types
}

// Parse binds a raw ledger entry, falling back to Unknown for unmodelled types
func Parse(raw entity.Record, source entity.Source) (Object, error) {
	c, ok := constructors[raw.String("LedgerEntryType")]
	if !ok {
		c = Constructor{Schema: unknownSchema, New: func(b *entity.Binding) Object { return &Unknown{Base{b}} }}
	}
	if source == entity.SourceDraft {
		return c.New(entity.NewDraftBinding(c.Schema, raw, nil)), nil
	}
	b, err := entity.NewLedgerBinding(c.Schema, raw, nil)
	if err != nil {
		return nil, err
	}
	return c.New(b), nil
}

// FromAffectedNode builds a ledger sourced entry from a metadata node
func FromAffectedNode(node *entity.AffectedNode) (Object, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: nil affected node", entity.ErrInvalidRecord)
	}
	return Parse(node.Record(), entity.SourceLedger)
}

func u32(p *uint32) uint32 {
	if p == nil {
		return 0
	}
	return *p
}

// Package txn models transactions (TransactionType discriminant).
//
// Every variant embeds Base for the common fields and declares its own fields in a schema merged
// with the common set. Variants referring to another ledger entry resolve it in a second phase
// from the transaction metadata, see ResolveRelated.
package txn

import (
	"strings"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
)

// Transaction is a decoded transaction of any variant
type Transaction interface {
	TransactionType() string
	Hash() string
	Account() codec.Address
	Binding() *entity.Binding
	Meta() *entity.Meta
	Common() *Base
	IsRecognized() bool
	IsPseudo() bool
}

// Resolver is implemented by variants with late bound relationships
type Resolver interface {
	ResolveRelated()
}

// common fields
var (
	HashField            = entity.NewRequiredField("hash", codec.Hash256)
	TransactionTypeField = entity.NewRequiredField("TransactionType", codec.String)
	AccountField         = entity.NewRequiredField("Account", codec.Account)
	SequenceField        = entity.NewRequiredField("Sequence", codec.UInt32)
	FeeField             = entity.NewRequiredField("Fee", codec.AmountCodec)
	FlagsField           = entity.NewField("Flags", codec.UInt32)
	SourceTagField       = entity.NewField("SourceTag", codec.UInt32)
	LastLedgerSequence   = entity.NewField("LastLedgerSequence", codec.UInt32)
	TicketSequenceField  = entity.NewField("TicketSequence", codec.UInt32)
	AccountTxnID         = entity.NewField("AccountTxnID", codec.Hash256)
	SigningPubKeyField   = entity.NewField("SigningPubKey", codec.Blob)
	TxnSignatureField    = entity.NewField("TxnSignature", codec.Blob)
	SignersField         = entity.NewField("Signers", codec.Signers)
	MemosField           = entity.NewField("Memos", codec.Memos)
	NetworkIDField       = entity.NewField("NetworkID", codec.UInt32)
	HookParametersField  = entity.NewField("HookParameters", codec.HookParameters)
	DateField            = entity.NewField("date", codec.EpochTime)
	LedgerIndexField     = entity.NewField("ledger_index", codec.UInt32)

	commonFields = []entity.Descriptor{
		HashField,
		TransactionTypeField,
		AccountField,
		SequenceField,
		FeeField,
		FlagsField,
		SourceTagField,
		LastLedgerSequence,
		TicketSequenceField,
		AccountTxnID,
		SigningPubKeyField,
		TxnSignatureField,
		SignersField,
		MemosField,
		NetworkIDField,
		HookParametersField,
		DateField,
		LedgerIndexField,
	}
)

var universalFlags = codec.FlagTable{
	{Name: "tfFullyCanonicalSig", Mask: 0x80000000},
	{Name: "tfInnerBatchTxn", Mask: 0x40000000},
}

// NewSchema merges the common transaction fields with a variant's own.
// The universal flags are appended to the variant's flag table.
func NewSchema(txType string, flags codec.FlagTable, fields ...entity.Descriptor) *entity.Schema {
	table := make(codec.FlagTable, 0, len(flags)+len(universalFlags))
	table = append(table, flags...)
	table = append(table, universalFlags...)
	return entity.NewSchema(txType, table, commonFields, fields)
}

// Base holds the binding and the common field accessors
type Base struct {
	b *entity.Binding
}

// Common impl Transaction
func (t *Base) Common() *Base { return t }

// Binding impl Transaction
func (t *Base) Binding() *entity.Binding { return t.b }

// Meta impl Transaction
func (t *Base) Meta() *entity.Meta { return t.b.Meta() }

// IsRecognized impl Transaction
func (t *Base) IsRecognized() bool { return true }

// IsPseudo impl Transaction
func (t *Base) IsPseudo() bool { return false }

// TransactionType is the discriminant as found on the wire
func (t *Base) TransactionType() string { return TransactionTypeField.Get(t.b) }

// Hash in uppercase hex, empty for drafts
func (t *Base) Hash() string { return strings.ToUpper(HashField.Get(t.b)) }

func (t *Base) Account() codec.Address     { return AccountField.Get(t.b) }
func (t *Base) Sequence() uint32           { return u32(SequenceField.Get(t.b)) }
func (t *Base) Fee() *codec.Amount         { return FeeField.Get(t.b) }
func (t *Base) RawFlags() uint32           { return u32(FlagsField.Get(t.b)) }
func (t *Base) SourceTag() *uint32         { return SourceTagField.Get(t.b) }
func (t *Base) TicketSequence() *uint32    { return TicketSequenceField.Get(t.b) }
func (t *Base) SigningPubKey() string      { return SigningPubKeyField.Get(t.b) }
func (t *Base) TxnSignature() string       { return TxnSignatureField.Get(t.b) }
func (t *Base) Signers() []codec.Signer    { return SignersField.Get(t.b) }
func (t *Base) Memos() []codec.Memo        { return MemosField.Get(t.b) }
func (t *Base) NetworkID() *uint32         { return NetworkIDField.Get(t.b) }
func (t *Base) Date() codec.Timestamp      { return DateField.Get(t.b) }
func (t *Base) LastLedgerSequence() uint32 { return u32(LastLedgerSequence.Get(t.b)) }

// HookParameters attached to the transaction
func (t *Base) HookParameters() []codec.HookParameter { return HookParametersField.Get(t.b) }

// Flags decodes the bitmask with the variant's flag table
func (t *Base) Flags() codec.Flags {
	return codec.DecodeFlags(t.RawFlags(), t.b.Schema().Flags)
}

// Result is the engine result code, empty without metadata
func (t *Base) Result() string {
	if meta := t.b.Meta(); meta != nil {
		return meta.TransactionResult
	}
	return ""
}

// IsSuccess is true when applied with tesSUCCESS
func (t *Base) IsSuccess() bool { return t.b.Meta().IsSuccess() }

// IsMultiSigned is true when signed by a signer list
func (t *Base) IsMultiSigned() bool { return len(t.Signers()) > 0 }

// SignerAddress derives the signing account from SigningPubKey.
// It differs from Account when a regular key signed the transaction.
func (t *Base) SignerAddress() (codec.Address, error) {
	return codec.AddressFromPublicKey(t.SigningPubKey())
}

// Unknown is a transaction type this package does not model; only common fields are available
type Unknown struct {
	Base
}

// IsRecognized impl Transaction
func (t *Unknown) IsRecognized() bool { return false }

var unknownSchema = NewSchema("Unknown", nil)

func u32(p *uint32) uint32 {
	if p == nil {
		return 0
	}
	return *p
}

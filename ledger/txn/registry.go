package txn

import (
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
	"github.com/anyswap/xrpl-txmodel/log"
)

// Constructor builds a variant over a bound record
type Constructor struct {
	Schema *entity.Schema
	New    func(b *entity.Binding) Transaction
	Pseudo bool
}

var (
	transactions = map[string]Constructor{}
	pseudos      = map[string]Constructor{}
)

func register(schema *entity.Schema, fn func(b *entity.Binding) Transaction) *entity.Schema {
	if _, exist := transactions[schema.Kind]; exist {
		panic("txn: duplicate transaction type " + schema.Kind)
	}
	transactions[schema.Kind] = Constructor{Schema: schema, New: fn}
	return schema
}

func registerPseudo(schema *entity.Schema, fn func(b *entity.Binding) Transaction) *entity.Schema {
	if _, exist := pseudos[schema.Kind]; exist {
		panic("txn: duplicate pseudo transaction type " + schema.Kind)
	}
	pseudos[schema.Kind] = Constructor{Schema: schema, New: fn, Pseudo: true}
	return schema
}

// Lookup finds the constructor of a user transaction type
func Lookup(txType string) (Constructor, bool) {
	c, ok := transactions[txType]
	return c, ok
}

// LookupPseudo finds the constructor of a pseudo transaction type
func LookupPseudo(txType string) (Constructor, bool) {
	c, ok := pseudos[txType]
	return c, ok
}

// Types lists the modelled user transaction types
func Types() []string {
	return keys(transactions)
}

// PseudoTypes lists the modelled pseudo transaction types
func PseudoTypes() []string {
	return keys(pseudos)
}

func keys(m map[string]Constructor) []string {
	types := make([]string, 0, len(m))
	for t := range m {
		types = append(types, t)
	}
	return types
}

var unknownConstructor = Constructor{
	Schema: unknownSchema,
	New:    func(b *entity.Binding) Transaction { return &Unknown{Base{b}} },
}

// Build binds raw to the constructor's schema.
// Ledger sourced records must carry every required field; drafts are bound leniently.
func (c Constructor) Build(raw entity.Record, meta *entity.Meta, source entity.Source) (Transaction, error) {
	if source == entity.SourceDraft {
		return c.New(entity.NewDraftBinding(c.Schema, raw, meta)), nil
	}
	b, err := entity.NewLedgerBinding(c.Schema, raw, meta)
	if err != nil {
		return nil, err
	}
	return c.New(b), nil
}

// Parse binds a raw transaction of any user or pseudo type.
// Unmodelled types yield Unknown, which still exposes the common fields.
func Parse(raw entity.Record, meta *entity.Meta, source entity.Source) (Transaction, error) {
	txType := raw.String("TransactionType")
	c, ok := transactions[txType]
	if !ok {
		c, ok = pseudos[txType]
	}
	if !ok {
		log.Debug("unrecognized transaction type", "type", txType)
		c = unknownConstructor
	}
	return c.Build(raw, meta, source)
}

package entity

import (
	"github.com/anyswap/xrpl-txmodel/ledger/codec"
)

// Source is the lifecycle stage an entity was built for
type Source int

// entity sources
const (
	// SourceDraft is user drafted json before submission; required fields may be absent
	SourceDraft Source = iota
	// SourceLedger is authoritative data fetched from the network
	SourceLedger
)

func (s Source) String() string {
	if s == SourceLedger {
		return "ledger"
	}
	return "draft"
}

type decoded struct {
	value interface{}
	err   error
}

// Binding ties a schema to one raw record.
// Decoded values are cached per binding, so repeated reads return the same value.
// A Binding is not safe for concurrent use.
type Binding struct {
	raw    Record
	meta   *Meta
	schema *Schema
	source Source
	cache  map[string]decoded
}

func newBinding(schema *Schema, raw Record, meta *Meta, source Source) *Binding {
	if raw == nil {
		raw = Record{}
	}
	return &Binding{
		raw:    raw,
		meta:   meta,
		schema: schema,
		source: source,
		cache:  make(map[string]decoded, len(schema.fields)),
	}
}

// NewLedgerBinding binds authoritative data; every required field must be present.
func NewLedgerBinding(schema *Schema, raw Record, meta *Meta) (*Binding, error) {
	b := newBinding(schema, raw, meta, SourceLedger)
	for _, d := range schema.fields {
		if d.IsRequired() && !b.raw.Has(d.FieldName()) {
			return nil, &RequiredFieldMissing{Entity: schema.Kind, Field: d.FieldName()}
		}
	}
	return b, nil
}

// NewDraftBinding binds user drafted json without required field enforcement
func NewDraftBinding(schema *Schema, raw Record, meta *Meta) *Binding {
	return newBinding(schema, raw, meta, SourceDraft)
}

func (b *Binding) lookup(d Descriptor) (interface{}, error) {
	name := d.FieldName()
	if c, ok := b.cache[name]; ok {
		return c.value, c.err
	}
	if _, ok := b.schema.byName[name]; !ok {
		return nil, ErrUnknownField
	}
	var c decoded
	if raw, present := b.raw[name]; !present || raw == nil {
		if d.IsRequired() && b.source == SourceLedger {
			c.err = &RequiredFieldMissing{Entity: b.schema.Kind, Field: name}
		}
	} else if v, err := d.decode(raw); err != nil {
		c.err = codec.NewFieldDecodeError(name, err)
	} else {
		c.value = v
	}
	b.cache[name] = c
	return c.value, c.err
}

// Raw is the source record
func (b *Binding) Raw() Record { return b.raw }

// Meta is the transaction metadata, nil for drafts and standalone ledger objects
func (b *Binding) Meta() *Meta { return b.meta }

// Schema of the bound variant
func (b *Binding) Schema() *Schema { return b.schema }

// Source of the record
func (b *Binding) Source() Source { return b.source }

// IsLedger is true for authoritative records
func (b *Binding) IsLedger() bool { return b.source == SourceLedger }

// Decode decodes every declared field present in the record.
// Failures are collected per field and never stop sibling fields from decoding.
func (b *Binding) Decode() (map[string]interface{}, []error) {
	values := make(map[string]interface{})
	var errs []error
	for _, d := range b.schema.fields {
		v, err := b.lookup(d)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if v != nil {
			values[d.FieldName()] = v
		}
	}
	return values, errs
}

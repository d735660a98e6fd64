package entity

import (
	"github.com/anyswap/xrpl-txmodel/ledger/codec"
	"github.com/anyswap/xrpl-txmodel/log"
)

// Descriptor is the type erased view of a Field used by schemas and bindings
type Descriptor interface {
	FieldName() string
	IsRequired() bool
	decode(raw interface{}) (interface{}, error)
}

// Field declares one typed field of an entity variant.
// Descriptors are immutable and shared by every binding of a schema.
type Field[T any] struct {
	Name     string
	Required bool
	Codec    codec.Codec[T]
}

// NewField declares an optional field
func NewField[T any](name string, c codec.Codec[T]) *Field[T] {
	return &Field[T]{Name: name, Codec: c}
}

// NewRequiredField declares a field that ledger sourced entities always carry
func NewRequiredField[T any](name string, c codec.Codec[T]) *Field[T] {
	return &Field[T]{Name: name, Required: true, Codec: c}
}

// FieldName impl Descriptor
func (f *Field[T]) FieldName() string { return f.Name }

// IsRequired impl Descriptor
func (f *Field[T]) IsRequired() bool { return f.Required }

func (f *Field[T]) decode(raw interface{}) (interface{}, error) {
	return f.Codec.Decode(raw)
}

// Lookup decodes the field on first access and caches the result on the binding.
// An absent optional field yields the zero value and no error. A present field that
// does not decode yields a *codec.FieldDecodeError whether or not it is required;
// use Get to treat such values as absent.
func (f *Field[T]) Lookup(b *Binding) (T, error) {
	var zero T
	v, err := b.lookup(f)
	if err != nil || v == nil {
		return zero, err
	}
	return v.(T), nil
}

// Get is Lookup with failures mapped to the zero value
func (f *Field[T]) Get(b *Binding) T {
	v, err := f.Lookup(b)
	if err != nil {
		log.Debug("field unavailable", "entity", b.schema.Kind, "field", f.Name, "err", err)
	}
	return v
}

// Has reports whether the field is present in the raw record
func (f *Field[T]) Has(b *Binding) bool {
	return b.raw.Has(f.Name)
}

// Set encodes v into a draft record
func (f *Field[T]) Set(b *Binding, v T) error {
	if b.source == SourceLedger {
		return ErrReadOnly
	}
	if f.Codec.Encode == nil {
		return ErrNoEncoder
	}
	if _, ok := b.schema.byName[f.Name]; !ok {
		return ErrUnknownField
	}
	b.raw[f.Name] = f.Codec.Encode(v)
	delete(b.cache, f.Name)
	return nil
}

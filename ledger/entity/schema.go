package entity

import (
	"fmt"

	"github.com/anyswap/xrpl-txmodel/ledger/codec"
)

// Schema is the merged field table of one entity variant
type Schema struct {
	Kind  string
	Flags codec.FlagTable

	fields []Descriptor
	byName map[string]Descriptor
}

// NewSchema merges descriptor groups (common fields first).
// A variant may add fields but never redefine one, so a duplicate name panics.
func NewSchema(kind string, flags codec.FlagTable, groups ...[]Descriptor) *Schema {
	s := &Schema{
		Kind:   kind,
		Flags:  flags,
		byName: make(map[string]Descriptor),
	}
	for _, group := range groups {
		for _, d := range group {
			name := d.FieldName()
			if _, exist := s.byName[name]; exist {
				panic(fmt.Sprintf("schema %s: field %s redefined", kind, name))
			}
			s.byName[name] = d
			s.fields = append(s.fields, d)
		}
	}
	return s
}

// Fields returns descriptors in declaration order
func (s *Schema) Fields() []Descriptor {
	return s.fields
}

// Field finds a descriptor by name
func (s *Schema) Field(name string) (Descriptor, bool) {
	d, ok := s.byName[name]
	return d, ok
}

// Required lists required field names
func (s *Schema) Required() []string {
	var names []string
	for _, d := range s.fields {
		if d.IsRequired() {
			names = append(names, d.FieldName())
		}
	}
	return names
}

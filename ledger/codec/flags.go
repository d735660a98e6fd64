package codec

import (
	"math/bits"

	"github.com/anyswap/xrpl-txmodel/log"
	"github.com/bits-and-blooms/bitset"
)

// FlagName names one bit of a flags bitmask
type FlagName struct {
	Name string
	Mask uint32
}

// FlagTable is the per entity type bit name table
type FlagTable []FlagName

// Flags is the decoded set of named boolean flags
type Flags map[string]bool

// Has reports a set flag
func (f Flags) Has(name string) bool {
	return f[name]
}

// Set lists the names of set flags in table order
func (t FlagTable) Set(flags Flags) []string {
	var names []string
	for _, n := range t {
		if flags[n.Name] {
			names = append(names, n.Name)
		}
	}
	return names
}

// Encode packs named flags back into a bitmask
func (t FlagTable) Encode(flags Flags) uint32 {
	var v uint32
	for _, n := range t {
		if flags[n.Name] {
			v |= n.Mask
		}
	}
	return v
}

// DecodeFlags maps a bitmask to named flags; every name in the table is present in the result.
func DecodeFlags(value uint32, table FlagTable) Flags {
	set := bitset.From([]uint64{uint64(value)})
	known := bitset.New(32)
	flags := make(Flags, len(table))
	for _, n := range table {
		idx := uint(bits.TrailingZeros32(n.Mask))
		known.Set(idx)
		flags[n.Name] = set.Test(idx)
	}
	if unknown := set.Difference(known); unknown.Any() {
		log.Trace("flags with unnamed bits", "value", value, "unnamed", unknown.String())
	}
	return flags
}

// FlagsCodec is the secondary flags codec layered on UInt32
func FlagsCodec(table FlagTable) Codec[Flags] {
	return Chain(UInt32, Secondary[*uint32, Flags]{
		Decode: func(v *uint32) (Flags, error) {
			return DecodeFlags(*v, table), nil
		},
		Encode: func(f Flags) *uint32 {
			v := table.Encode(f)
			return &v
		},
	})
}

package validate

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/anyswap/xrpl-txmodel/ledger/object"
)

// MemoryReader serves ledger entries from memory, keyed by index
type MemoryReader struct {
	mu      sync.RWMutex
	entries map[string]object.Object
}

// NewMemoryReader indexes entries by their Index
func NewMemoryReader(entries ...object.Object) *MemoryReader {
	r := &MemoryReader{entries: make(map[string]object.Object, len(entries))}
	for _, e := range entries {
		r.Put(e)
	}
	return r
}

// Put adds or replaces an entry
func (r *MemoryReader) Put(o object.Object) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[strings.ToUpper(o.Index())] = o
}

// LedgerEntry impl LedgerReader
func (r *MemoryReader) LedgerEntry(ctx context.Context, index string) (object.Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.entries[strings.ToUpper(index)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, index)
	}
	return o, nil
}

package txn

import (
	"github.com/anyswap/xrpl-txmodel/common"
	"github.com/anyswap/xrpl-txmodel/ledger/entity"
	"github.com/anyswap/xrpl-txmodel/ledger/object"
	"github.com/anyswap/xrpl-txmodel/log"
)

// related is a set once slot for a ledger entry a transaction refers to.
// Reading before anything is attached yields the zero value.
type related[T object.Object] struct {
	value T
	set   bool
}

func (r *related[T]) get() T {
	return r.value
}

// attach stores v unless a value was already attached
func (r *related[T]) attach(v T) bool {
	if r.set {
		return false
	}
	r.value, r.set = v, true
	return true
}

// findRelated scans metadata for a node of the given state and entry type accepted by match,
// and builds the typed ledger entry from it.
func findRelated[T object.Object](meta *entity.Meta, state entity.NodeState, entryType string, match func(*entity.AffectedNode) bool) (T, bool) {
	var zero T
	for _, node := range meta.Find(state, entryType) {
		if match != nil && !match(node) {
			continue
		}
		o, err := object.FromAffectedNode(node)
		if err != nil {
			log.Debug("related ledger entry not decodable", "type", entryType, "index", node.LedgerIndex, "err", err)
			continue
		}
		if v, ok := o.(T); ok {
			return v, true
		}
	}
	return zero, false
}

func byIndex(index string) func(*entity.AffectedNode) bool {
	return func(n *entity.AffectedNode) bool {
		return index != "" && common.IsEqualIgnoreCase(n.LedgerIndex, index)
	}
}

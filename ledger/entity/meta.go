package entity

import (
	"fmt"

	"github.com/anyswap/xrpl-txmodel/common"
	"github.com/anyswap/xrpl-txmodel/ledger/codec"
)

// NodeState is the kind of change applied to a ledger entry
type NodeState string

// affected node states
const (
	CreatedNode  NodeState = "CreatedNode"
	ModifiedNode NodeState = "ModifiedNode"
	DeletedNode  NodeState = "DeletedNode"
)

var nodeStates = []NodeState{CreatedNode, ModifiedNode, DeletedNode}

// AffectedNode is one ledger entry touched by a transaction
type AffectedNode struct {
	State           NodeState
	LedgerEntryType string
	LedgerIndex     string
	FinalFields     Record
	PreviousFields  Record
	NewFields       Record
	PreviousTxnID   string
}

// Fields returns the entry state after the transaction (before deletion for deleted nodes)
func (n *AffectedNode) Fields() Record {
	if n.State == CreatedNode {
		return n.NewFields
	}
	return n.FinalFields
}

// Previous returns a field's value before the transaction and whether it changed.
// Created nodes have no previous state.
func (n *AffectedNode) Previous(field string) (interface{}, bool) {
	if n.PreviousFields == nil {
		return nil, false
	}
	v, ok := n.PreviousFields[field]
	return v, ok
}

// Record rebuilds a flat ledger entry record with LedgerEntryType and index set
func (n *AffectedNode) Record() Record {
	r := n.Fields().Clone()
	r["LedgerEntryType"] = n.LedgerEntryType
	if n.LedgerIndex != "" {
		r["index"] = n.LedgerIndex
	}
	return r
}

// Meta is the transaction metadata
type Meta struct {
	AffectedNodes     []*AffectedNode
	TransactionResult string
	TransactionIndex  uint32
	DeliveredAmount   *codec.Amount
	NFTokenID         string
	NFTokenIDs        []string
	OfferID           string
	raw               Record
}

// NewMeta decodes transaction metadata. A nil record gives nil meta.
func NewMeta(raw Record) (*Meta, error) {
	if raw == nil {
		return nil, nil
	}
	m := &Meta{
		TransactionResult: raw.String("TransactionResult"),
		NFTokenID:         raw.String("nftoken_id"),
		OfferID:           raw.String("offer_id"),
		raw:               raw,
	}
	if v, ok := raw["TransactionIndex"]; ok {
		if idx, err := codec.UInt32.Decode(v); err == nil {
			m.TransactionIndex = *idx
		}
	}
	for _, key := range []string{"delivered_amount", "DeliveredAmount"} {
		if v, ok := raw[key]; ok {
			// "unavailable" for old ledgers
			if amount, err := codec.AmountCodec.Decode(v); err == nil {
				m.DeliveredAmount = amount
				break
			}
		}
	}
	if v, ok := raw["nftoken_ids"]; ok {
		m.NFTokenIDs, _ = codec.StringArray.Decode(v)
	}
	if v, ok := raw["AffectedNodes"]; ok {
		list, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: AffectedNodes is not an array", ErrInvalidRecord)
		}
		for i, item := range list {
			node, err := parseAffectedNode(item)
			if err != nil {
				return nil, fmt.Errorf("%w: affected node %d: %v", ErrInvalidRecord, i, err)
			}
			m.AffectedNodes = append(m.AffectedNodes, node)
		}
	}
	return m, nil
}

func parseAffectedNode(item interface{}) (*AffectedNode, error) {
	wrapper, ok := AsRecord(item)
	if !ok {
		return nil, fmt.Errorf("not an object")
	}
	for _, state := range nodeStates {
		inner, ok := AsRecord(wrapper[string(state)])
		if !ok {
			continue
		}
		node := &AffectedNode{
			State:           state,
			LedgerEntryType: inner.String("LedgerEntryType"),
			LedgerIndex:     inner.String("LedgerIndex"),
			PreviousTxnID:   inner.String("PreviousTxnID"),
		}
		node.FinalFields, _ = AsRecord(inner["FinalFields"])
		node.PreviousFields, _ = AsRecord(inner["PreviousFields"])
		node.NewFields, _ = AsRecord(inner["NewFields"])
		if node.Fields() == nil {
			if state == CreatedNode {
				node.NewFields = Record{}
			} else {
				node.FinalFields = Record{}
			}
		}
		return node, nil
	}
	return nil, fmt.Errorf("unknown node state")
}

// Raw is the undecoded metadata
func (m *Meta) Raw() Record {
	if m == nil {
		return nil
	}
	return m.raw
}

// IsSuccess is true for tesSUCCESS
func (m *Meta) IsSuccess() bool {
	return m != nil && m.TransactionResult == "tesSUCCESS"
}

// Find returns the nodes with the given state and entry type, in metadata order.
// An empty state matches every state.
func (m *Meta) Find(state NodeState, entryType string) []*AffectedNode {
	if m == nil {
		return nil
	}
	var nodes []*AffectedNode
	for _, n := range m.AffectedNodes {
		if (state == "" || n.State == state) && n.LedgerEntryType == entryType {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// First is the first match of Find, nil when none
func (m *Meta) First(state NodeState, entryType string) *AffectedNode {
	nodes := m.Find(state, entryType)
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// FindByIndex finds a node by ledger index, ignoring hex case
func (m *Meta) FindByIndex(index string) *AffectedNode {
	if m == nil {
		return nil
	}
	for _, n := range m.AffectedNodes {
		if common.IsEqualIgnoreCase(n.LedgerIndex, index) {
			return n
		}
	}
	return nil
}

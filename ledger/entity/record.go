package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is a raw wire record as produced by json decoding
type Record map[string]interface{}

// ParseRecord decodes a json object keeping numbers as json.Number
func ParseRecord(data []byte) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var r Record
	if err := dec.Decode(&r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if r == nil {
		return nil, fmt.Errorf("%w: null", ErrInvalidRecord)
	}
	return r, nil
}

// AsRecord converts a nested raw value to a Record
func AsRecord(v interface{}) (Record, bool) {
	switch m := v.(type) {
	case Record:
		return m, m != nil
	case map[string]interface{}:
		return Record(m), m != nil
	default:
		return nil, false
	}
}

// String returns a string valued key, empty when absent or not a string
func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// Has reports a present, non-null key
func (r Record) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// Clone is a shallow copy
func (r Record) Clone() Record {
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// MarshalIndent renders the record for display
func (r Record) MarshalIndent() string {
	b, err := json.MarshalIndent(map[string]interface{}(r), "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", map[string]interface{}(r))
	}
	return string(b)
}

// SplitEnvelope separates a transaction from its metadata.
// It accepts {tx, meta}, {tx_json, meta, hash}, a flat tx with meta/metaData and a bare draft.
func SplitEnvelope(raw Record) (tx, meta Record) {
	if inner, ok := AsRecord(raw["tx"]); ok {
		tx = inner
		meta, _ = AsRecord(raw["meta"])
		return tx, meta
	}
	if inner, ok := AsRecord(raw["tx_json"]); ok {
		tx = inner
		if !tx.Has("hash") && raw.Has("hash") {
			tx = tx.Clone()
			tx["hash"] = raw["hash"]
		}
		meta, _ = AsRecord(raw["meta"])
		return tx, meta
	}
	for _, key := range []string{"meta", "metaData"} {
		if m, ok := AsRecord(raw[key]); ok {
			tx = raw.Clone()
			delete(tx, "meta")
			delete(tx, "metaData")
			return tx, m
		}
	}
	return raw, nil
}

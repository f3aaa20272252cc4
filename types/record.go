package types

import (
	"bytes"
	"encoding/json"
	"hash/fnv"
	"iter"
	"maps"
	"slices"
)

// A RecordMap is a map of Strings to Values.
type RecordMap map[String]Value

// A Record is an immutable collection of attributes, where attribute names
// are Strings and values can be of any type.
type Record struct {
	m       RecordMap
	hashVal uint64
}

// NewRecord returns an immutable Record given a Go map of Strings to Values.
// The input map is copied, so later mutations of it do not affect the Record.
func NewRecord(r RecordMap) Record {
	m := maps.Clone(r)

	// Entry hashes are summed so that the digest is independent of map
	// iteration order.
	var hashVal uint64
	for k, v := range m {
		h := fnv.New64()
		_, _ = h.Write([]byte(k))
		hashVal += h.Sum64() ^ v.Hash()
	}

	return Record{m: m, hashVal: hashVal}
}

// Len returns the number of attributes in the Record.
func (r Record) Len() int {
	return len(r.m)
}

// Get returns the value associated with the given attribute, if present.
func (r Record) Get(k String) (Value, bool) {
	v, ok := r.m[k]
	return v, ok
}

// All iterates over the attributes of the Record in non-deterministic order.
func (r Record) All() iter.Seq2[String, Value] {
	return func(yield func(String, Value) bool) {
		for k, v := range r.m {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Map returns a copy of the Record's attributes which is safe to mutate.
func (r Record) Map() RecordMap {
	return maps.Clone(r.m)
}

// Equal returns true if the Records have the same attributes with Equal values.
func (a Record) Equal(bi Value) bool {
	b, ok := bi.(Record)
	if !ok || len(a.m) != len(b.m) {
		return false
	}
	for k, av := range a.m {
		bv, ok := b.m[k]
		if !ok || !av.Equal(bv) {
			return false
		}
	}
	return true
}

// UnmarshalJSON parses a JSON-encoded Cedar record literal into a Record.
func (r *Record) UnmarshalJSON(b []byte) error {
	var res map[string]explicitValue
	if err := json.Unmarshal(b, &res); err != nil {
		return err
	}

	m := make(RecordMap, len(res))
	for k, vv := range res {
		m[String(k)] = vv.Value
	}
	*r = NewRecord(m)
	return nil
}

// MarshalJSON marshals the Record into JSON, with attributes in sorted order.
func (r Record) MarshalJSON() ([]byte, error) {
	m := make(map[string]json.RawMessage, len(r.m))
	for k, v := range r.m {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		m[string(k)] = b
	}
	return json.Marshal(m)
}

// String produces a string representation of the Record, e.g. `{"a": 1, "b": true}`.
func (r Record) String() string { return string(r.MarshalCedar()) }

// MarshalCedar produces a valid MarshalCedar language representation of the Record,
// e.g. `{"a": 1, "b": true}`. Attributes are rendered in sorted order.
func (r Record) MarshalCedar() []byte {
	var sb bytes.Buffer
	sb.WriteRune('{')
	for i, k := range slices.Sorted(maps.Keys(r.m)) {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.Write(k.MarshalCedar())
		sb.WriteString(": ")
		sb.Write(r.m[k].MarshalCedar())
	}
	sb.WriteRune('}')
	return sb.Bytes()
}

func (r Record) Hash() uint64 {
	return r.hashVal
}

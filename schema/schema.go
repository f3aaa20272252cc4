// Package schema decodes Cedar schema fragments from their JSON format and
// encodes them back.
//
// A schema fragment maps namespace names to namespace definitions: the
// common types, entity types, and actions declared in each namespace.
// Decoding is strict. Repeated keys in any mapping, unrecognized fields in
// any declaration, and built-in type tags missing their required fields all
// fail the decode outright, so a fragment that decodes successfully has
// exactly one definition per name.
//
// Decoding produces the declarations exactly as written: common type
// references are left unresolved, and nothing checks that referenced
// entity types or common types exist. Both of those are the validator's
// concern, downstream of this package.
//
// # Decoding a Fragment
//
//	fragment, err := schema.NewFragmentFromBytes(data)
//	if err != nil {
//		// the document does not conform to the schema format
//	}
//	for name, namespace := range fragment {
//		...
//	}
//
// # Encoding a Fragment
//
// Fragments, namespaces, and type expressions all marshal back to the same
// JSON format they decode from:
//
//	data, err := json.Marshal(fragment)
package schema

import (
	"encoding/json"
	"io"
)

// A Fragment maps namespace names to their definitions. Namespace names
// are kept verbatim, including the empty name for the implicit namespace;
// a name like "A::B" does not imply nesting at this layer.
type Fragment map[string]Namespace

// UnmarshalJSON decodes a schema fragment, rejecting repeated namespace
// names.
func (f *Fragment) UnmarshalJSON(data []byte) error {
	m, err := decodeKeyedMap(data, "namespace", decodeValue[Namespace])
	if err != nil {
		return err
	}
	*f = m
	return nil
}

// MarshalJSON encodes the fragment. A nil fragment encodes as an empty
// object.
func (f Fragment) MarshalJSON() ([]byte, error) {
	if f == nil {
		f = Fragment{}
	}
	return json.Marshal(map[string]Namespace(f))
}

// NewFragmentFromBytes decodes a schema fragment from its JSON encoding.
func NewFragmentFromBytes(data []byte) (Fragment, error) {
	var f Fragment
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f, nil
}

// NewFragmentFromReader decodes a schema fragment from JSON read from r.
func NewFragmentFromReader(r io.Reader) (Fragment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewFragmentFromBytes(data)
}

// NewFragmentFromValue decodes a schema fragment from a structured value
// already parsed from JSON, such as a map of maps. The value is re-encoded
// and decoded again, so both constructors apply identical rules.
func NewFragmentFromValue(v any) (Fragment, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return NewFragmentFromBytes(data)
}

// Package types defines the Cedar value model used for canonical JSON data,
// such as the attribute payloads attached to action declarations in schemas.
package types

// A Value is an immutable Cedar value.
//
// Equal Values always produce the same Hash, so Values can be stored in
// hashed collections.
type Value interface {
	// String produces a string representation of the Value.
	String() string
	// MarshalCedar produces a valid Cedar language representation of the Value.
	MarshalCedar() []byte
	// Equal returns true if the Values are equal.
	Equal(Value) bool
	// Hash produces a digest of the Value.
	Hash() uint64
}

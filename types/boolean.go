package types

import "strconv"

// A Boolean is a value that is either true or false.
type Boolean bool

const (
	True  = Boolean(true)
	False = Boolean(false)
)

// Equal returns true if the input represents the same Boolean.
func (v Boolean) Equal(bi Value) bool {
	b, ok := bi.(Boolean)
	return ok && v == b
}

// String produces a string representation of the Boolean, e.g. `true`.
func (v Boolean) String() string { return string(v.MarshalCedar()) }

// MarshalCedar produces a valid MarshalCedar language representation of the Boolean, e.g. `true`.
func (v Boolean) MarshalCedar() []byte {
	return []byte(strconv.FormatBool(bool(v)))
}

func (v Boolean) Hash() uint64 {
	if v {
		return 1
	}
	return 0
}

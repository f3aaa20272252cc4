package types

import "strconv"

// A Long is a whole number without decimals that can range from -2^63 to 2^63-1.
type Long int64

// Equal returns true if the input represents the same Long.
func (v Long) Equal(bi Value) bool {
	b, ok := bi.(Long)
	return ok && v == b
}

// String produces a string representation of the Long, e.g. `1`.
func (v Long) String() string { return string(v.MarshalCedar()) }

// MarshalCedar produces a valid MarshalCedar language representation of the Long, e.g. `1`.
func (v Long) MarshalCedar() []byte {
	return []byte(strconv.FormatInt(int64(v), 10))
}

func (v Long) Hash() uint64 {
	return uint64(v)
}

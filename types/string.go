package types

import "hash/fnv"

// A String is a sequence of characters consisting of letters, numbers, or symbols.
type String string

// Equal returns true if the input represents the same String.
func (v String) Equal(bi Value) bool {
	b, ok := bi.(String)
	return ok && v == b
}

// String produces an unquoted string representation of the String, e.g. `hello`.
func (v String) String() string {
	return string(v)
}

// MarshalCedar produces a valid MarshalCedar language representation of the String, e.g. `"hello"`.
func (v String) MarshalCedar() []byte {
	buf := []byte{'"'}
	for _, c := range []byte(v) {
		switch c {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		default:
			buf = append(buf, c)
		}
	}
	return append(buf, '"')
}

func (v String) Hash() uint64 {
	h := fnv.New64()
	_, _ = h.Write([]byte(v))
	return h.Sum64()
}

// Package sets provides the immutable hash set backing collection values.
package sets

import (
	"bytes"
	"encoding/json"
	"iter"

	"golang.org/x/exp/maps"
)

type item[T any] interface {
	Equal(T) bool
	Hash() uint64
}

// An ImmutableHashSet is an immutable collection of hashable elements that
// are themselves immutable.
type ImmutableHashSet[T item[T]] struct {
	s map[uint64]T
}

// NewImmutableHashSet builds an ImmutableHashSet from a slice. Duplicates are
// removed and order is not preserved.
func NewImmutableHashSet[T item[T]](elems []T) ImmutableHashSet[T] {
	var set map[uint64]T
	if len(elems) > 0 {
		set = make(map[uint64]T, len(elems))
	}
	for _, e := range elems {
		hash := e.Hash()

		// Collisions are resolved by open addressing, incrementing the hash
		// until a free slot or an equal element is found. Sound only because
		// nothing is ever removed from the map.
		for {
			existing, ok := set[hash]
			if !ok {
				set[hash] = e
				break
			} else if e.Equal(existing) {
				break
			}
			hash++
		}
	}

	return ImmutableHashSet[T]{s: set}
}

// Len returns the number of unique elements in the set.
func (s ImmutableHashSet[T]) Len() int {
	return len(s.s)
}

// All iterates over the elements of the set in non-deterministic order.
func (s ImmutableHashSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.s {
			if !yield(v) {
				return
			}
		}
	}
}

// Contains reports whether element e is present in the set.
func (s ImmutableHashSet[T]) Contains(e item[T]) bool {
	hash := e.Hash()

	for {
		existing, ok := s.s[hash]
		if !ok {
			return false
		} else if e.Equal(existing) {
			return true
		}
		hash++
	}
}

// Slice returns the elements of the set as a slice which is safe to mutate.
// The order of the elements is non-deterministic.
func (s ImmutableHashSet[T]) Slice() []T {
	if s.s == nil {
		return nil
	}
	return maps.Values(s.s)
}

// Equal reports whether two sets contain the same elements.
func (as ImmutableHashSet[T]) Equal(bs ImmutableHashSet[T]) bool {
	if len(as.s) != len(bs.s) {
		return false
	}

	for _, v := range as.s {
		if !bs.Contains(v) {
			return false
		}
	}
	return true
}

// UnmarshalJSON parses a JSON array into an ImmutableHashSet.
func (s *ImmutableHashSet[T]) UnmarshalJSON(b []byte) error {
	var res []T
	err := json.Unmarshal(b, &res)
	if err != nil {
		return err
	}

	*s = NewImmutableHashSet(res)
	return nil
}

// MarshalJSON renders the set as a JSON array. Elements appear in a
// non-deterministic order.
func (s ImmutableHashSet[T]) MarshalJSON() ([]byte, error) {
	w := &bytes.Buffer{}
	w.WriteByte('[')
	var i int
	for v := range s.All() {
		if i != 0 {
			w.WriteByte(',')
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		w.Write(b)
		i++
	}
	w.WriteByte(']')
	return w.Bytes(), nil
}

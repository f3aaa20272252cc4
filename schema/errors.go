package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateKey is returned when a JSON object in a schema fragment
	// repeats a key, including when the repeated entries are identical.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrUnknownField is returned when an object carries a field that is not
	// part of its form.
	ErrUnknownField = errors.New("unknown field")
	// ErrMissingField is returned when an object lacks a required field.
	ErrMissingField = errors.New("missing field")
)

// A DuplicateKeyError reports a repeated key and which kind of mapping it
// appeared in.
type DuplicateKeyError struct {
	Kind string
	Key  string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%v: %s %q", ErrDuplicateKey, e.Kind, e.Key)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

// An UnknownFieldError reports a field that is not part of the form named by
// In.
type UnknownFieldError struct {
	Field string
	In    string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%v: %q in %s", ErrUnknownField, e.Field, e.In)
}

func (e *UnknownFieldError) Unwrap() error { return ErrUnknownField }

// A MissingFieldError reports a required field absent from the form named by
// In.
type MissingFieldError struct {
	Field string
	In    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%v: %q in %s", ErrMissingField, e.Field, e.In)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

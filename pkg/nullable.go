package pkg

import (
	"bytes"
	"encoding/json"
)

// Nullable is an update value for a nullable column.  It has three states:
// unset (the zero value, left out of the payload so the column is not
// touched), null (clears the column) and a value.  Fields of this type use
// the omitzero tag option.
type Nullable[T any] struct {
	Value T
	// Valid is false when the column is to be set to null.
	Valid bool
	// Set is false when the column is left untouched.
	Set bool
}

// SetTo returns a Nullable that writes v.
func SetTo[T any](v T) Nullable[T] {
	return Nullable[T]{Value: v, Valid: true, Set: true}
}

// SetNull returns a Nullable that clears the column.
func SetNull[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// IsZero reports whether the column is left untouched.
func (n Nullable[T]) IsZero() bool {
	return !n.Set
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*n = SetNull[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = SetTo(v)
	return nil
}

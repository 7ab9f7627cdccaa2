package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a JSON field that remembers whether it appeared in the request
// body at all. Set reports presence, Valid reports a non-null value. Plain
// pointers cannot tell "field omitted" apart from "field: null", and sparse
// updates need exactly that distinction.
type Optional[T any] struct {
	Value T
	Valid bool
	Set   bool
}

// Some returns a present, non-null Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Valid: true, Set: true}
}

// Null returns a present but explicitly null Optional.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON runs only for keys present in the body, so Set is true
// exactly when the field was supplied.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr returns the value as a pointer, nil when the field was null.
func (o Optional[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

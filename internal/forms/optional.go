package forms

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// Optional is a three-state JSON field for partial updates: a field can
// be absent (leave unchanged), explicitly null (clear), or carry a
// value. Plain pointers cannot tell the first two apart.
type Optional[T any] struct {
	// Set reports whether the field appeared in the payload at all.
	Set bool
	// Valid reports whether a non-null value was provided.
	Valid bool
	// Value is the decoded value when Valid.
	Value T
}

// Some returns an Optional carrying a value. Mostly used by tests and
// internal callers that build patches programmatically.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// Null returns an explicitly-null Optional.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(b, jsonNull) {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return jsonNull, nil
	}
	return json.Marshal(o.Value)
}

// Ptr returns the value as a pointer, nil when the field is null or
// absent. Convenient for nillable persistence setters.
func (o Optional[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

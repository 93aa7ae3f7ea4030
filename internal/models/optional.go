package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a patch field with three states: absent (Set == false),
// explicit null (Set && !Valid) and a value (Set && Valid).
//
// encoding/json only calls UnmarshalJSON for keys present in the payload,
// so a zero Optional always means the caller did not send the field.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// Some returns an Optional carrying v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// Null returns an Optional that explicitly clears the field.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// Ptr returns the value as a pointer, nil for null or absent.
func (o Optional[T]) Ptr() *T {
	if !o.Set || !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Valid = false
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// IsZero reports whether the field is absent. Fields tagged omitzero are
// dropped from the encoded payload in that case.
func (o Optional[T]) IsZero() bool {
	return !o.Set
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

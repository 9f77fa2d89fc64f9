package domain

import "encoding/json"

// Nullable is a PATCH field with three states: absent (the zero value),
// explicit null, or a value. Tag fields with omitzero so absent fields are
// left out of the payload.
type Nullable[T any] struct {
	value T
	set   bool
	null  bool
}

func Value[T any](v T) Nullable[T] {
	return Nullable[T]{value: v, set: true}
}

func Null[T any]() Nullable[T] {
	return Nullable[T]{set: true, null: true}
}

// IsZero reports whether the field is absent.
func (n Nullable[T]) IsZero() bool { return !n.set }

func (n Nullable[T]) IsNull() bool { return n.set && n.null }

func (n Nullable[T]) Get() (T, bool) {
	return n.value, n.set && !n.null
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.set || n.null {
		return []byte("null"), nil
	}
	return json.Marshal(n.value)
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Null[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Value(v)
	return nil
}

// Package optional marks a value as present or missing. Outer joins use it to
// record which side a key came from.
package optional

import "fmt"

// Value holds a T or nothing. The zero Value is None.
type Value[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, ok: true}
}

// None is the missing value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// NonEmpty reports whether v holds a value.
func (v Value[T]) NonEmpty() bool { return v.ok }

// Empty reports whether v is None.
func (v Value[T]) Empty() bool { return !v.ok }

// Get returns the held value, or the zero T and false.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.ok
}

// GetOrElse returns the held value, or fallback when v is None.
func (v Value[T]) GetOrElse(fallback T) T {
	if !v.ok {
		return fallback
	}

	return v.value
}

// String renders v as "Some(value)" or "None".
func (v Value[T]) String() string {
	if !v.ok {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", v.value)
}

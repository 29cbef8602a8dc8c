// Package zero names the zero value of a type parameter.
package zero

// Value returns the zero value of T. Exhausted iterators hand it out next to
// ok=false.
func Value[T any]() T {
	var v T

	return v
}

// Package sortable lets types that know how to order themselves key ordered
// sets and maps without a separate compare func.
package sortable

import "github.com/havoc-io/ordered-iter/compare"

// Sortable is a type with a total order over its own values.
type Sortable[T any] interface {
	Equals(other T) bool
	LessThan(other T) bool
}

// Compare orders a and b by their Equals and LessThan methods.
func Compare[T Sortable[T]](a, b T) int {
	if a.Equals(b) {
		return 0
	}

	if a.LessThan(b) {
		return -1
	}

	return 1
}

// Func is Compare as a compare.Func, ready for ordered.SortableSetOf.
func Func[T Sortable[T]]() compare.Func[T] {
	return Compare[T]
}

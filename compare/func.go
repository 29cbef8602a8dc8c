// Package compare holds the three-way comparison type that ordered sequences
// carry, plus a few stock orderings.
package compare

import (
	"cmp"
	"strings"

	"facette.io/natsort"
)

// Func is a three-way comparison. It returns a negative number when a sorts
// before b, zero when they are equal and a positive number when a sorts after b.
//
// Every ordered sequence carries the Func its keys are sorted by, so that two
// sequences can be merged without agreeing on a key type constraint up front.
type Func[T any] func(a, b T) int

// Ordered returns the natural ordering of a cmp.Ordered type.
func Ordered[T cmp.Ordered]() Func[T] {
	return cmp.Compare[T]
}

// Reverse inverts the ordering of f.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}

// Less adapts f into a strict less-than predicate.
func (f Func[T]) Less(a, b T) bool {
	return f(a, b) < 0
}

// Equal reports whether f considers a and b to be the same key.
func (f Func[T]) Equal(a, b T) bool {
	return f(a, b) == 0
}

// Natural orders strings the way a human would: embedded numbers are compared
// by value, so "file2" sorts before "file10".
//
// natsort reports strings that differ only in leading zeros ("a1", "a01") as
// smaller in both directions. Such ties, and any other pair it cannot tell
// apart, fall back to byte order so the result is a total order.
func Natural(a, b string) int {
	if a == b {
		return 0
	}

	less, greater := natsort.Compare(a, b), natsort.Compare(b, a)

	switch {
	case less && !greater:
		return -1
	case greater && !less:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

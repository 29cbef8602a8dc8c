// Package tuple pairs values. Map joins use Tuple2 to hold the left and right
// values found under one key.
package tuple

// Tuple2 holds two values of possibly different types. It is comparable when
// both element types are.
type Tuple2[A, B any] struct {
	first  A
	second B
}

// NewTuple2 pairs first with second.
func NewTuple2[A, B any](first A, second B) Tuple2[A, B] {
	return Tuple2[A, B]{first, second}
}

// First returns the left element.
func (t Tuple2[A, B]) First() A { return t.first } //nolint:ireturn

// Second returns the right element.
func (t Tuple2[A, B]) Second() B { return t.second } //nolint:ireturn

// Values unpacks both elements at once:
//
//	for key, pair := range joined.All() {
//	    left, right := pair.Values()
//	}
func (t Tuple2[A, B]) Values() (A, B) { //nolint:ireturn
	return t.first, t.second
}

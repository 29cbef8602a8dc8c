package ordered

import (
	"github.com/havoc-io/ordered-iter/assert"
	"github.com/havoc-io/ordered-iter/compare"
	"github.com/havoc-io/ordered-iter/optional"
	"github.com/havoc-io/ordered-iter/tuple"
	"github.com/havoc-io/ordered-iter/zero"
)

// OuterValue is the value type of an outer join: the value each side holds
// for the key, or None for the side that lacks it. At least one side is
// always present.
type OuterValue[A, B any] = tuple.Tuple2[optional.Value[A], optional.Value[B]]

// OuterJoinIterator yields every key found in either input exactly once, in
// increasing order, together with the value from each side that has it.
//
// Unlike the inner joins it peeks at both heads instead of pulling them, since
// a key that only one side holds must be emitted without disturbing the other
// side. It ends only when both inputs are exhausted.
type OuterJoinIterator[K, A, B any] struct {
	left  *Peekable[K, A]
	right *Peekable[K, B]
	cmp   compare.Func[K]
	state state
}

var _ MapIterator[int, OuterValue[int, int]] = (*OuterJoinIterator[int, int, int])(nil)

// NewOuterJoinIterator joins left and right, both sorted by cmp.
// The join owns left and right from here on.
func NewOuterJoinIterator[K, A, B any](
	left MapIterator[K, A], right MapIterator[K, B], cmp compare.Func[K],
) *OuterJoinIterator[K, A, B] {
	return &OuterJoinIterator[K, A, B]{
		left:  NewPeekable(left),
		right: NewPeekable(right),
		cmp:   cmp,
	}
}

// Next returns the smallest key not yet emitted from either side.
func (j *OuterJoinIterator[K, A, B]) Next() (K, OuterValue[A, B], bool) {
	if j.state == exhausted {
		return j.exhaust()
	}

	leftKey, _, leftOk := j.left.Peek()
	rightKey, _, rightOk := j.right.Peek()

	switch {
	case leftOk && rightOk:
		switch order := j.cmp(leftKey, rightKey); {
		case order < 0:
			return j.takeLeft()
		case order > 0:
			return j.takeRight()
		default:
			key, leftValue := j.popLeft()
			_, rightValue := j.popRight()

			return key, tuple.NewTuple2(optional.Some(leftValue), optional.Some(rightValue)), true
		}
	case leftOk:
		return j.takeLeft()
	case rightOk:
		return j.takeRight()
	default:
		return j.exhaust()
	}
}

// Stop ends the join and stops both inputs.
func (j *OuterJoinIterator[K, A, B]) Stop() {
	if j.state == exhausted {
		return
	}

	j.state = exhausted
	j.left.Stop()
	j.right.Stop()
}

func (j *OuterJoinIterator[K, A, B]) takeLeft() (K, OuterValue[A, B], bool) {
	key, value := j.popLeft()

	return key, tuple.NewTuple2(optional.Some(value), optional.None[B]()), true
}

func (j *OuterJoinIterator[K, A, B]) takeRight() (K, OuterValue[A, B], bool) {
	key, value := j.popRight()

	return key, tuple.NewTuple2(optional.None[A](), optional.Some(value)), true
}

// popLeft consumes the element a successful Peek just buffered.
func (j *OuterJoinIterator[K, A, B]) popLeft() (K, A) {
	key, value, ok := j.left.Next()
	assert.True(ok, "ordered: outer join lost the peeked left element")

	return key, value
}

func (j *OuterJoinIterator[K, A, B]) popRight() (K, B) {
	key, value, ok := j.right.Next()
	assert.True(ok, "ordered: outer join lost the peeked right element")

	return key, value
}

func (j *OuterJoinIterator[K, A, B]) exhaust() (K, OuterValue[A, B], bool) {
	j.Stop()

	return zero.Value[K](), zero.Value[OuterValue[A, B]](), false
}

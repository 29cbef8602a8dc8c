package ordered

import (
	"github.com/havoc-io/ordered-iter/compare"
	"github.com/havoc-io/ordered-iter/tuple"
	"github.com/havoc-io/ordered-iter/zero"
)

// InnerJoinMapIterator yields, for every key present in both input maps, the
// key paired with both values.
type InnerJoinMapIterator[K, A, B any] struct {
	a     MapIterator[K, A]
	b     MapIterator[K, B]
	cmp   compare.Func[K]
	state state
}

var _ MapIterator[int, tuple.Tuple2[int, int]] = (*InnerJoinMapIterator[int, int, int])(nil)

// NewInnerJoinMapIterator joins a and b, both sorted by cmp.
// The join owns a and b from here on.
func NewInnerJoinMapIterator[K, A, B any](
	a MapIterator[K, A], b MapIterator[K, B], cmp compare.Func[K],
) *InnerJoinMapIterator[K, A, B] {
	return &InnerJoinMapIterator[K, A, B]{a: a, b: b, cmp: cmp}
}

// Next returns the next shared key with (value from a, value from b).
// It ends as soon as either input is exhausted.
func (j *InnerJoinMapIterator[K, A, B]) Next() (K, tuple.Tuple2[A, B], bool) {
	if j.state == exhausted {
		return j.exhaust()
	}

	keyA, valA, ok := j.a.Next()
	if !ok {
		return j.exhaust()
	}

	keyB, valB, ok := j.b.Next()
	if !ok {
		return j.exhaust()
	}

	for {
		switch order := j.cmp(keyA, keyB); {
		case order < 0:
			if keyA, valA, ok = j.a.Next(); !ok {
				return j.exhaust()
			}
		case order > 0:
			if keyB, valB, ok = j.b.Next(); !ok {
				return j.exhaust()
			}
		default:
			return keyA, tuple.NewTuple2(valA, valB), true
		}
	}
}

// Stop ends the join and stops both inputs.
func (j *InnerJoinMapIterator[K, A, B]) Stop() {
	if j.state == exhausted {
		return
	}

	j.state = exhausted
	j.a.Stop()
	j.b.Stop()
}

func (j *InnerJoinMapIterator[K, A, B]) exhaust() (K, tuple.Tuple2[A, B], bool) {
	j.Stop()

	return zero.Value[K](), zero.Value[tuple.Tuple2[A, B]](), false
}

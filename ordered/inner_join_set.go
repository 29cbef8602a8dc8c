package ordered

import (
	"github.com/havoc-io/ordered-iter/compare"
	"github.com/havoc-io/ordered-iter/zero"
)

// InnerJoinSetIterator yields the keys present in both of its input sets, in
// increasing order.
type InnerJoinSetIterator[K any] struct {
	a, b  SetIterator[K]
	cmp   compare.Func[K]
	state state
}

var _ SetIterator[int] = (*InnerJoinSetIterator[int])(nil)

// NewInnerJoinSetIterator intersects a and b, both sorted by cmp.
// The join owns a and b from here on.
func NewInnerJoinSetIterator[K any](a, b SetIterator[K], cmp compare.Func[K]) *InnerJoinSetIterator[K] {
	return &InnerJoinSetIterator[K]{a: a, b: b, cmp: cmp}
}

// Next advances whichever side is behind until both heads agree. A match
// consumes both heads. The join ends as soon as either side runs out: keys only
// grow, so the other side cannot match anything after that.
func (j *InnerJoinSetIterator[K]) Next() (K, bool) {
	if j.state == exhausted {
		return zero.Value[K](), false
	}

	keyA, ok := j.a.Next()
	if !ok {
		return j.exhaust()
	}

	keyB, ok := j.b.Next()
	if !ok {
		return j.exhaust()
	}

	for {
		switch order := j.cmp(keyA, keyB); {
		case order < 0:
			if keyA, ok = j.a.Next(); !ok {
				return j.exhaust()
			}
		case order > 0:
			if keyB, ok = j.b.Next(); !ok {
				return j.exhaust()
			}
		default:
			return keyA, true
		}
	}
}

// Stop ends the join and stops both inputs.
func (j *InnerJoinSetIterator[K]) Stop() {
	if j.state == exhausted {
		return
	}

	j.state = exhausted
	j.a.Stop()
	j.b.Stop()
}

func (j *InnerJoinSetIterator[K]) exhaust() (K, bool) {
	j.Stop()

	return zero.Value[K](), false
}

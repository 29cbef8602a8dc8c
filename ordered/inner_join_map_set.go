package ordered

import (
	"github.com/havoc-io/ordered-iter/compare"
	"github.com/havoc-io/ordered-iter/zero"
)

// InnerJoinMapSetIterator filters a map sequence by a set sequence: it yields
// the entries of the map whose key also appears in the set. The set side
// contributes no value.
type InnerJoinMapSetIterator[K, V any] struct {
	m     MapIterator[K, V]
	s     SetIterator[K]
	cmp   compare.Func[K]
	state state
}

var _ MapIterator[int, string] = (*InnerJoinMapSetIterator[int, string])(nil)

// NewInnerJoinMapSetIterator filters m by s, both sorted by cmp.
// The join owns m and s from here on.
func NewInnerJoinMapSetIterator[K, V any](
	m MapIterator[K, V], s SetIterator[K], cmp compare.Func[K],
) *InnerJoinMapSetIterator[K, V] {
	return &InnerJoinMapSetIterator[K, V]{m: m, s: s, cmp: cmp}
}

// Next returns the next map entry whose key is in the set.
// It ends as soon as either input is exhausted.
func (j *InnerJoinMapSetIterator[K, V]) Next() (K, V, bool) {
	if j.state == exhausted {
		return j.exhaust()
	}

	setKey, ok := j.s.Next()
	if !ok {
		return j.exhaust()
	}

	mapKey, value, ok := j.m.Next()
	if !ok {
		return j.exhaust()
	}

	for {
		switch order := j.cmp(setKey, mapKey); {
		case order < 0:
			if setKey, ok = j.s.Next(); !ok {
				return j.exhaust()
			}
		case order > 0:
			if mapKey, value, ok = j.m.Next(); !ok {
				return j.exhaust()
			}
		default:
			return mapKey, value, true
		}
	}
}

// Stop ends the join and stops both inputs.
func (j *InnerJoinMapSetIterator[K, V]) Stop() {
	if j.state == exhausted {
		return
	}

	j.state = exhausted
	j.m.Stop()
	j.s.Stop()
}

func (j *InnerJoinMapSetIterator[K, V]) exhaust() (K, V, bool) {
	j.Stop()

	return zero.Value[K](), zero.Value[V](), false
}

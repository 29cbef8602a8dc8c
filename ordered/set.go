package ordered

import (
	"cmp"
	"iter"

	"github.com/havoc-io/ordered-iter/assert"
	"github.com/havoc-io/ordered-iter/compare"
	"github.com/havoc-io/ordered-iter/sortable"
)

// Set is an ordered set sequence: a SetIterator together with the ordering its
// keys follow. Set is itself a SetIterator, so it can be handed to any join.
//
// A Set is a small value type; copies share the same underlying iterator and
// therefore the same position. The zero Set is not usable; build one with
// NewSet, SetOf, OrderedSetOf, SortableSetOf or EmptySet.
type Set[K any] struct {
	it  SetIterator[K]
	cmp compare.Func[K]
}

var _ SetIterator[int] = Set[int]{}

// NewSet wraps an iterator whose keys are strictly increasing under cmp.
func NewSet[K any](it SetIterator[K], cmp compare.Func[K]) Set[K] {
	assert.NotNil(it, "ordered: NewSet called with a nil iterator")
	assert.True(cmp != nil, "ordered: NewSet called with a nil compare func")

	if s, ok := it.(Set[K]); ok {
		it = s.it
	}

	return Set[K]{it: it, cmp: cmp}
}

// SetOf pulls keys from a push iterator. The push iterator runs as a coroutine
// until it is drained or the Set is stopped, so abandon a SetOf sequence only
// after calling Stop (All does this for you).
func SetOf[K any](seq iter.Seq[K], cmp compare.Func[K]) Set[K] {
	return NewSet[K](newPullSet(seq), cmp)
}

// OrderedSetOf is SetOf using the natural ordering of K.
func OrderedSetOf[K cmp.Ordered](seq iter.Seq[K]) Set[K] {
	return SetOf(seq, compare.Ordered[K]())
}

// SortableSetOf is SetOf using the Equals and LessThan methods of K.
func SortableSetOf[K sortable.Sortable[K]](seq iter.Seq[K]) Set[K] {
	return SetOf(seq, sortable.Func[K]())
}

// EmptySet returns a set sequence that is already exhausted.
func EmptySet[K any](cmp compare.Func[K]) Set[K] {
	return NewSet[K](emptySet[K]{}, cmp)
}

// Next pulls the next key.
func (s Set[K]) Next() (K, bool) {
	return s.it.Next()
}

// Stop releases the sequence and everything it owns.
func (s Set[K]) Stop() {
	s.it.Stop()
}

// Compare returns the ordering the keys of s follow.
func (s Set[K]) Compare() compare.Func[K] {
	return s.cmp
}

// All drains s into a range loop. The sequence is stopped when the loop ends,
// whether it ran to completion or broke out early.
func (s Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		defer s.Stop()

		for {
			key, ok := s.Next()
			if !ok || !yield(key) {
				return
			}
		}
	}
}

// Collect drains s into a slice.
func (s Set[K]) Collect() []K {
	var out []K

	for key := range s.All() {
		out = append(out, key)
	}

	return out
}

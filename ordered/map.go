package ordered

import (
	"cmp"
	"iter"

	"github.com/havoc-io/ordered-iter/assert"
	"github.com/havoc-io/ordered-iter/compare"
	"github.com/havoc-io/ordered-iter/sortable"
)

// Map is an ordered map sequence: a MapIterator together with the ordering its
// keys follow. Map is itself a MapIterator, so it can be handed to any join.
//
// Like Set, copies of a Map share one position, and the zero Map is not usable.
type Map[K, V any] struct {
	it  MapIterator[K, V]
	cmp compare.Func[K]
}

var _ MapIterator[int, string] = Map[int, string]{}

// NewMap wraps an iterator whose keys are strictly increasing under cmp.
func NewMap[K, V any](it MapIterator[K, V], cmp compare.Func[K]) Map[K, V] {
	assert.NotNil(it, "ordered: NewMap called with a nil iterator")
	assert.True(cmp != nil, "ordered: NewMap called with a nil compare func")

	if m, ok := it.(Map[K, V]); ok {
		it = m.it
	}

	return Map[K, V]{it: it, cmp: cmp}
}

// MapOf pulls entries from a push iterator, for example the Seq of a sorted
// container. See SetOf for the lifetime of the underlying coroutine.
func MapOf[K, V any](seq iter.Seq2[K, V], cmp compare.Func[K]) Map[K, V] {
	return NewMap[K, V](newPullMap(seq), cmp)
}

// OrderedMapOf is MapOf using the natural ordering of K.
func OrderedMapOf[K cmp.Ordered, V any](seq iter.Seq2[K, V]) Map[K, V] {
	return MapOf(seq, compare.Ordered[K]())
}

// SortableMapOf is MapOf using the Equals and LessThan methods of K.
func SortableMapOf[K sortable.Sortable[K], V any](seq iter.Seq2[K, V]) Map[K, V] {
	return MapOf(seq, sortable.Func[K]())
}

// EmptyMap returns a map sequence that is already exhausted.
func EmptyMap[K, V any](cmp compare.Func[K]) Map[K, V] {
	return NewMap[K, V](emptyMap[K, V]{}, cmp)
}

// Next pulls the next entry.
func (m Map[K, V]) Next() (K, V, bool) {
	return m.it.Next()
}

// Stop releases the sequence and everything it owns.
func (m Map[K, V]) Stop() {
	m.it.Stop()
}

// Compare returns the ordering the keys of m follow.
func (m Map[K, V]) Compare() compare.Func[K] {
	return m.cmp
}

// Keys projects m onto its keys. The returned Set takes over m.
func (m Map[K, V]) Keys() Set[K] {
	return NewSet[K](keysIterator[K, V]{m: m.it}, m.cmp)
}

// All drains m into a range loop and stops it when the loop ends.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		defer m.Stop()

		for {
			key, value, ok := m.Next()
			if !ok || !yield(key, value) {
				return
			}
		}
	}
}

// Collect drains m into a slice of entries.
func (m Map[K, V]) Collect() []KeyValuePair[K, V] {
	var out []KeyValuePair[K, V]

	for key, value := range m.All() {
		out = append(out, KeyValuePair[K, V]{Key: key, Value: value})
	}

	return out
}

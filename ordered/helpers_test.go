package ordered_test

import (
	"cmp"
	"slices"

	"github.com/havoc-io/ordered-iter/ordered"
	"github.com/havoc-io/ordered-iter/zero"
)

// multiples returns factor*k for k in [from, to).
func multiples(factor, from, to int) []int {
	out := make([]int, 0, to-from)
	for k := from; k < to; k++ {
		out = append(out, factor*k)
	}

	return out
}

// sliceSet is a hand-rolled SetIterator that records how it was used, so tests
// can check how far a join advanced its inputs and whether it stopped them.
type sliceSet[K any] struct {
	keys    []K
	pos     int
	pulls   int
	stopped int
}

func newSliceSet[K any](keys []K) *sliceSet[K] {
	return &sliceSet[K]{keys: keys}
}

func (s *sliceSet[K]) Next() (K, bool) {
	s.pulls++

	if s.stopped > 0 || s.pos >= len(s.keys) {
		return zero.Value[K](), false
	}

	key := s.keys[s.pos]
	s.pos++

	return key, true
}

func (s *sliceSet[K]) Stop() {
	s.stopped++
}

// sliceMap is the MapIterator counterpart of sliceSet.
type sliceMap[K, V any] struct {
	keys    []K
	values  []V
	pos     int
	pulls   int
	stopped int
}

func newSliceMap[K, V any](keys []K, value func(K) V) *sliceMap[K, V] {
	values := make([]V, len(keys))
	for i, k := range keys {
		values[i] = value(k)
	}

	return &sliceMap[K, V]{keys: keys, values: values}
}

func (m *sliceMap[K, V]) Next() (K, V, bool) {
	m.pulls++

	if m.stopped > 0 || m.pos >= len(m.keys) {
		return zero.Value[K](), zero.Value[V](), false
	}

	key, value := m.keys[m.pos], m.values[m.pos]
	m.pos++

	return key, value, true
}

func (m *sliceMap[K, V]) Stop() {
	m.stopped++
}

func intSet(keys []int) ordered.Set[int] {
	return ordered.OrderedSetOf(slices.Values(keys))
}

// intMap maps every key to key/factor, the way the scenarios build {factor*k -> k}.
func intMap(keys []int, factor int) ordered.Map[int, int] {
	return ordered.NewMap[int, int](newSliceMap(keys, func(k int) int { return k / factor }), cmp.Compare[int])
}

func intersection(a, b []int) []int {
	var out []int

	for _, k := range a {
		if _, found := slices.BinarySearch(b, k); found {
			out = append(out, k)
		}
	}

	return out
}

func union(a, b []int) []int {
	out := slices.Concat(a, b)
	slices.Sort(out)

	return slices.Compact(out)
}

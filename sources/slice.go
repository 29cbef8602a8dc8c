package sources

import (
	"cmp"

	"github.com/havoc-io/ordered-iter/compare"
	"github.com/havoc-io/ordered-iter/ordered"
	"github.com/havoc-io/ordered-iter/zero"
)

// Slice walks keys, which must be strictly increasing under cmp.
func Slice[K any](keys []K, cmp compare.Func[K]) ordered.Set[K] {
	return ordered.NewSet[K](&sliceCursor[K]{keys: keys}, cmp)
}

// OrderedSlice is Slice using the natural ordering of K.
func OrderedSlice[K cmp.Ordered](keys []K) ordered.Set[K] {
	return Slice(keys, compare.Ordered[K]())
}

// Entries walks key/value pairs whose keys are strictly increasing under cmp.
func Entries[K, V any](entries []ordered.KeyValuePair[K, V], cmp compare.Func[K]) ordered.Map[K, V] {
	return ordered.NewMap[K, V](&entriesCursor[K, V]{entries: entries}, cmp)
}

// OrderedEntries is Entries using the natural ordering of K.
func OrderedEntries[K cmp.Ordered, V any](entries []ordered.KeyValuePair[K, V]) ordered.Map[K, V] {
	return Entries(entries, compare.Ordered[K]())
}

// Indexed treats values as a map from position to value.
func Indexed[V any](values []V) ordered.Map[int, V] {
	return ordered.NewMap[int, V](&indexedCursor[V]{values: values}, compare.Ordered[int]())
}

type sliceCursor[K any] struct {
	keys []K
	pos  int
}

func (c *sliceCursor[K]) Next() (K, bool) {
	if c.pos >= len(c.keys) {
		return zero.Value[K](), false
	}

	key := c.keys[c.pos]
	c.pos++

	return key, true
}

func (c *sliceCursor[K]) Stop() {
	c.keys, c.pos = nil, 0
}

type entriesCursor[K, V any] struct {
	entries []ordered.KeyValuePair[K, V]
	pos     int
}

func (c *entriesCursor[K, V]) Next() (K, V, bool) {
	if c.pos >= len(c.entries) {
		return zero.Value[K](), zero.Value[V](), false
	}

	entry := c.entries[c.pos]
	c.pos++

	return entry.Key, entry.Value, true
}

func (c *entriesCursor[K, V]) Stop() {
	c.entries, c.pos = nil, 0
}

type indexedCursor[V any] struct {
	values []V
	pos    int
}

func (c *indexedCursor[V]) Next() (int, V, bool) {
	if c.pos >= len(c.values) {
		return 0, zero.Value[V](), false
	}

	index := c.pos
	c.pos++

	return index, c.values[index], true
}

func (c *indexedCursor[V]) Stop() {
	c.values, c.pos = nil, 0
}

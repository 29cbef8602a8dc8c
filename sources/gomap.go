package sources

import (
	"cmp"
	"maps"
	"slices"

	"github.com/havoc-io/ordered-iter/compare"
	"github.com/havoc-io/ordered-iter/ordered"
	"github.com/havoc-io/ordered-iter/zero"
)

// GoMap walks a builtin map in increasing key order. The keys are sorted up
// front; values are read from m as the sequence reaches them.
func GoMap[K cmp.Ordered, V any](m map[K]V) ordered.Map[K, V] {
	return ordered.NewMap[K, V](&goMapCursor[K, V]{
		m:    m,
		keys: slices.Sorted(maps.Keys(m)),
	}, compare.Ordered[K]())
}

// GoMapKeys is the key set of a builtin map, in increasing order.
func GoMapKeys[K cmp.Ordered, V any](m map[K]V) ordered.Set[K] {
	return OrderedSlice(slices.Sorted(maps.Keys(m)))
}

type goMapCursor[K comparable, V any] struct {
	m    map[K]V
	keys []K
	pos  int
}

func (c *goMapCursor[K, V]) Next() (K, V, bool) {
	if c.pos >= len(c.keys) {
		return zero.Value[K](), zero.Value[V](), false
	}

	key := c.keys[c.pos]
	c.pos++

	return key, c.m[key], true
}

func (c *goMapCursor[K, V]) Stop() {
	c.m, c.keys, c.pos = nil, nil, 0
}

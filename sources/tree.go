package sources

import (
	"cmp"

	rb "github.com/glycerine/rbtree"
	"github.com/havoc-io/ordered-iter/compare"
	"github.com/havoc-io/ordered-iter/ordered"
	"github.com/havoc-io/ordered-iter/zero"
)

// Tree is an ordered map backed by a red-black tree. Get, Set and Delete are
// O(log n); Map and Keys walk the tree in order without copying it.
//
// Like a builtin map, Tree does no locking.
type Tree[K, V any] struct {
	tree *rb.Tree
	cmp  compare.Func[K]
}

type treeEntry[K, V any] struct {
	key   K
	value V
}

// NewTree makes an empty tree ordered by cmp.
func NewTree[K, V any](cmp compare.Func[K]) *Tree[K, V] {
	return &Tree[K, V]{
		tree: rb.NewTree(func(a, b rb.Item) int {
			return cmp(a.(*treeEntry[K, V]).key, b.(*treeEntry[K, V]).key)
		}),
		cmp: cmp,
	}
}

// NewOrderedTree makes an empty tree using the natural ordering of K.
func NewOrderedTree[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewTree[K, V](compare.Ordered[K]())
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int {
	return t.tree.Len()
}

// Set stores value under key, replacing any previous value. It reports
// whether the key was new.
func (t *Tree[K, V]) Set(key K, value V) (added bool) {
	query := &treeEntry[K, V]{key: key, value: value}

	it, found := t.tree.FindGE_isEqual(query)
	if found {
		it.Item().(*treeEntry[K, V]).value = value

		return false
	}

	added, _ = t.tree.InsertGetIt(query)

	return added
}

// Get returns the value stored under key.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	it, found := t.tree.FindGE_isEqual(&treeEntry[K, V]{key: key})
	if !found {
		return zero.Value[V](), false
	}

	return it.Item().(*treeEntry[K, V]).value, true
}

// Delete removes key and reports whether it was present.
func (t *Tree[K, V]) Delete(key K) bool {
	it, found := t.tree.FindGE_isEqual(&treeEntry[K, V]{key: key})
	if !found {
		return false
	}

	t.tree.DeleteWithIterator(it)

	return true
}

// Map walks the entries in key order.
func (t *Tree[K, V]) Map() ordered.Map[K, V] {
	return ordered.NewMap[K, V](&treeCursor[K, V]{tree: t.tree}, t.cmp)
}

// Keys walks the keys in order.
func (t *Tree[K, V]) Keys() ordered.Set[K] {
	return t.Map().Keys()
}

type treeCursor[K, V any] struct {
	tree    *rb.Tree
	it      rb.Iterator
	started bool
}

func (c *treeCursor[K, V]) Next() (K, V, bool) {
	if c.tree == nil {
		return zero.Value[K](), zero.Value[V](), false
	}

	if c.started {
		c.it = c.it.Next()
	} else {
		c.it, c.started = c.tree.Min(), true
	}

	if c.it.Limit() {
		c.tree = nil

		return zero.Value[K](), zero.Value[V](), false
	}

	entry := c.it.Item().(*treeEntry[K, V])

	return entry.key, entry.value, true
}

func (c *treeCursor[K, V]) Stop() {
	c.tree = nil
}

// TreeSet is the key-only form of Tree.
type TreeSet[K any] struct {
	tree *Tree[K, struct{}]
}

// NewTreeSet makes an empty set ordered by cmp.
func NewTreeSet[K any](cmp compare.Func[K]) *TreeSet[K] {
	return &TreeSet[K]{tree: NewTree[K, struct{}](cmp)}
}

// NewOrderedTreeSet makes an empty set using the natural ordering of K.
func NewOrderedTreeSet[K cmp.Ordered]() *TreeSet[K] {
	return NewTreeSet[K](compare.Ordered[K]())
}

// Add inserts keys and returns how many of them were new.
func (s *TreeSet[K]) Add(keys ...K) int {
	added := 0

	for _, key := range keys {
		if s.tree.Set(key, struct{}{}) {
			added++
		}
	}

	return added
}

// Contains reports whether key is in the set.
func (s *TreeSet[K]) Contains(key K) bool {
	_, found := s.tree.Get(key)

	return found
}

// Remove deletes key and reports whether it was present.
func (s *TreeSet[K]) Remove(key K) bool {
	return s.tree.Delete(key)
}

// Len returns the number of keys in the set.
func (s *TreeSet[K]) Len() int {
	return s.tree.Len()
}

// Keys walks the set in order.
func (s *TreeSet[K]) Keys() ordered.Set[K] {
	return s.tree.Keys()
}

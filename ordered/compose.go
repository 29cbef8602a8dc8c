package ordered

import (
	"github.com/havoc-io/ordered-iter/tuple"
)

// InnerJoinSet intersects s with other. The result is a Set, so it can be
// joined again. other must be sorted by the same ordering as s.
func (s Set[K]) InnerJoinSet(other SetIterator[K]) Set[K] {
	return NewSet[K](NewInnerJoinSetIterator(s.it, unwrapSet(other), s.cmp), s.cmp)
}

// InnerJoinSet keeps the entries of m whose key appears in set.
func (m Map[K, V]) InnerJoinSet(set SetIterator[K]) Map[K, V] {
	return NewMap[K, V](NewInnerJoinMapSetIterator(m.it, unwrapSet(set), m.cmp), m.cmp)
}

// InnerJoinSetMap is the set-initiated form of Map.InnerJoinSet: it keeps the
// entries of m whose key appears in set. Methods cannot introduce the value
// type parameter V, hence a function.
func InnerJoinSetMap[K, V any](set Set[K], m MapIterator[K, V]) Map[K, V] {
	return NewMap[K, V](NewInnerJoinMapSetIterator(unwrapMap(m), set.it, set.cmp), set.cmp)
}

// InnerJoinMap joins two map sequences on their keys, pairing the values of
// every key present in both.
func InnerJoinMap[K, A, B any](a Map[K, A], b MapIterator[K, B]) Map[K, tuple.Tuple2[A, B]] {
	return NewMap[K, tuple.Tuple2[A, B]](NewInnerJoinMapIterator(a.it, unwrapMap(b), a.cmp), a.cmp)
}

// OuterJoin joins two map sequences keeping every key of either side. Each
// value records which sides held the key.
func OuterJoin[K, A, B any](left Map[K, A], right MapIterator[K, B]) Map[K, OuterValue[A, B]] {
	return NewMap[K, OuterValue[A, B]](NewOuterJoinIterator(left.it, unwrapMap(right), left.cmp), left.cmp)
}

// Intersect folds InnerJoinSet over its arguments from the left, giving the
// keys common to all of them.
func Intersect[K any](first Set[K], rest ...SetIterator[K]) Set[K] {
	out := first
	for _, next := range rest {
		out = out.InnerJoinSet(next)
	}

	return out
}

// unwrapSet avoids stacking a Set handle inside an engine; the handle adds
// nothing but an extra interface call per pull.
func unwrapSet[K any](it SetIterator[K]) SetIterator[K] {
	if s, ok := it.(Set[K]); ok {
		return s.it
	}

	return it
}

func unwrapMap[K, V any](it MapIterator[K, V]) MapIterator[K, V] {
	if m, ok := it.(Map[K, V]); ok {
		return m.it
	}

	return it
}

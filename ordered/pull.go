package ordered

import (
	"iter"

	"github.com/havoc-io/ordered-iter/zero"
)

// pullSet adapts a push iterator to SetIterator with iter.Pull.
type pullSet[K any] struct {
	next func() (K, bool)
	stop func()
}

func newPullSet[K any](seq iter.Seq[K]) *pullSet[K] {
	next, stop := iter.Pull(seq)

	return &pullSet[K]{next: next, stop: stop}
}

func (p *pullSet[K]) Next() (K, bool) {
	return p.next()
}

func (p *pullSet[K]) Stop() {
	p.stop()
}

// pullMap adapts a push iterator to MapIterator with iter.Pull2.
type pullMap[K, V any] struct {
	next func() (K, V, bool)
	stop func()
}

func newPullMap[K, V any](seq iter.Seq2[K, V]) *pullMap[K, V] {
	next, stop := iter.Pull2(seq)

	return &pullMap[K, V]{next: next, stop: stop}
}

func (p *pullMap[K, V]) Next() (K, V, bool) {
	return p.next()
}

func (p *pullMap[K, V]) Stop() {
	p.stop()
}

// keysIterator drops the values of a map sequence.
type keysIterator[K, V any] struct {
	m MapIterator[K, V]
}

func (k keysIterator[K, V]) Next() (K, bool) {
	key, _, ok := k.m.Next()

	return key, ok
}

func (k keysIterator[K, V]) Stop() {
	k.m.Stop()
}

type emptySet[K any] struct{}

func (emptySet[K]) Next() (K, bool) {
	return zero.Value[K](), false
}

func (emptySet[K]) Stop() {}

type emptyMap[K, V any] struct{}

func (emptyMap[K, V]) Next() (K, V, bool) {
	return zero.Value[K](), zero.Value[V](), false
}

func (emptyMap[K, V]) Stop() {}

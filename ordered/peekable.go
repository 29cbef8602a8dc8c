package ordered

import "github.com/havoc-io/ordered-iter/zero"

// Peekable wraps a MapIterator with a one element lookahead. Peek inspects the
// head of the sequence without consuming it; the following Next hands out the
// buffered element instead of pulling a new one.
type Peekable[K, V any] struct {
	it     MapIterator[K, V]
	key    K
	value  V
	peeked bool
	done   bool
}

var _ MapIterator[int, int] = (*Peekable[int, int])(nil)

// NewPeekable takes ownership of it.
func NewPeekable[K, V any](it MapIterator[K, V]) *Peekable[K, V] {
	return &Peekable[K, V]{it: it}
}

// Peek returns the head of the sequence without consuming it.
func (p *Peekable[K, V]) Peek() (K, V, bool) {
	if !p.peeked && !p.done {
		key, value, ok := p.it.Next()
		if !ok {
			p.done = true

			return zero.Value[K](), zero.Value[V](), false
		}

		p.key, p.value, p.peeked = key, value, true
	}

	if !p.peeked {
		return zero.Value[K](), zero.Value[V](), false
	}

	return p.key, p.value, true
}

// Next consumes the head of the sequence.
func (p *Peekable[K, V]) Next() (K, V, bool) {
	if p.peeked {
		key, value := p.key, p.value
		p.release()

		return key, value, true
	}

	if p.done {
		return zero.Value[K](), zero.Value[V](), false
	}

	key, value, ok := p.it.Next()
	if !ok {
		p.done = true
	}

	return key, value, ok
}

// Stop drops any buffered element and stops the wrapped iterator.
func (p *Peekable[K, V]) Stop() {
	p.release()
	p.done = true
	p.it.Stop()
}

func (p *Peekable[K, V]) release() {
	p.key, p.value, p.peeked = zero.Value[K](), zero.Value[V](), false
}

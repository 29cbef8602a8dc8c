package sources

import (
	"math/bits"

	"github.com/havoc-io/ordered-iter/compare"
	"github.com/havoc-io/ordered-iter/ordered"
)

const wordSize = 64

// Bits is the set of positions of the one bits in words. Bit i of words[w] is
// position w*64+i.
func Bits(words []uint64) ordered.Set[int] {
	return ordered.NewSet[int](&bitsCursor{words: words}, compare.Ordered[int]())
}

type bitsCursor struct {
	words []uint64
	index int
	// word is what is left of words[index].
	word    uint64
	started bool
}

func (c *bitsCursor) Next() (int, bool) {
	if !c.started {
		if len(c.words) == 0 {
			return 0, false
		}

		c.word, c.started = c.words[0], true
	}

	for c.word == 0 {
		c.index++
		if c.index >= len(c.words) {
			c.index = len(c.words)

			return 0, false
		}

		c.word = c.words[c.index]
	}

	offset := bits.TrailingZeros64(c.word)
	c.word &= c.word - 1

	return c.index*wordSize + offset, true
}

func (c *bitsCursor) Stop() {
	c.words, c.word = nil, 0
}

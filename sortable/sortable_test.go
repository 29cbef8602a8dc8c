package sortable_test

import (
	"slices"
	"testing"

	"github.com/havoc-io/ordered-iter/sortable"
	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, sortable.Compare(sortable.Int(1), sortable.Int(2)))
	assert.Equal(t, 0, sortable.Compare(sortable.Int(2), sortable.Int(2)))
	assert.Equal(t, 1, sortable.Compare(sortable.Int(3), sortable.Int(2)))

	assert.Equal(t, -1, sortable.Compare(sortable.Byte('a'), sortable.Byte('b')))
	assert.Equal(t, 1, sortable.Compare(sortable.String("b"), sortable.String("a")))
}

func TestFuncSortsSlices(t *testing.T) {
	t.Parallel()

	values := []sortable.String{"pear", "apple", "fig"}
	slices.SortFunc(values, sortable.Func[sortable.String]())

	assert.Equal(t, []sortable.String{"apple", "fig", "pear"}, values)
}

func TestNaturalString(t *testing.T) {
	t.Parallel()

	values := []sortable.NaturalString{"v10", "v2", "v1"}
	slices.SortFunc(values, sortable.Compare[sortable.NaturalString])

	assert.Equal(t, []sortable.NaturalString{"v1", "v2", "v10"}, values)

	// Bytewise order disagrees.
	assert.True(t, sortable.String("v10").LessThan("v2"))
	assert.False(t, sortable.NaturalString("v10").LessThan("v2"))
}

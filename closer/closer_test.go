package closer_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/havoc-io/ordered-iter/closer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errClose = errors.New("close failed")

func recording(log *[]string, name string, err error) io.Closer {
	return closer.Func(func() error {
		*log = append(*log, name)

		return err
	})
}

func TestFunc(t *testing.T) {
	t.Parallel()

	called := 0
	c := closer.Func(func() error {
		called++

		return errClose
	})

	require.ErrorIs(t, c.Close(), errClose)
	assert.Equal(t, 1, called)
}

func TestCloser_Empty(t *testing.T) {
	t.Parallel()

	require.NoError(t, closer.NewCloser().Close())
	require.NoError(t, closer.NewCloser(nil, nil).Close())
}

func TestCloser_ClosesInOrder(t *testing.T) {
	t.Parallel()

	var log []string

	c := closer.NewCloser(recording(&log, "decoder", nil))
	c.Add(nil)
	c.Add(recording(&log, "file", nil))

	require.NoError(t, c.Close())
	assert.Equal(t, []string{"decoder", "file"}, log)
}

func TestCloser_JoinsErrors(t *testing.T) {
	t.Parallel()

	var log []string

	c := closer.NewCloser(
		recording(&log, "first", errClose),
		recording(&log, "second", nil),
		recording(&log, "third", errClose),
	)

	err := c.Close()
	require.ErrorIs(t, err, errClose)
	assert.Equal(t, []string{"first", "second", "third"}, log)
}

func TestCloseOnce(t *testing.T) {
	t.Parallel()

	assert.Nil(t, closer.CloseOnce(nil))

	var log []string

	once := closer.CloseOnce(recording(&log, "file", nil))
	assert.Same(t, once, closer.CloseOnce(once))

	require.NoError(t, once.Close())
	require.NoError(t, once.Close())
	assert.Equal(t, []string{"file"}, log)
}

func TestCloseOnce_RetriesAfterFailure(t *testing.T) {
	t.Parallel()

	attempts := 0
	once := closer.CloseOnce(closer.Func(func() error {
		attempts++
		if attempts == 1 {
			return errClose
		}

		return nil
	}))

	require.ErrorIs(t, once.Close(), errClose)
	require.NoError(t, once.Close())
	require.NoError(t, once.Close())
	assert.Equal(t, 2, attempts)
}

func TestReadCloser(t *testing.T) {
	t.Parallel()

	var log []string

	rc := closer.ReadCloser(strings.NewReader("payload"), recording(&log, "body", nil))

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	require.NoError(t, rc.Close())
	assert.Equal(t, []string{"body"}, log)
}

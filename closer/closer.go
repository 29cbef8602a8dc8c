// Package closer releases stacks of io.Closer values, such as a decoder and the
// file under it.
package closer

import (
	"errors"
	"io"
)

// Func adapts a plain function to io.Closer.
type Func func() error

// Close calls f.
func (f Func) Close() error { return f() }

// Closer releases the closers added to it, first added first closed. Add a
// decoder before the file it reads so the decoder is done before its source
// goes away.
type Closer struct {
	closers []io.Closer
}

// NewCloser returns a Closer that starts out holding closers.
func NewCloser(closers ...io.Closer) *Closer {
	return &Closer{closers: closers}
}

// Add queues c. A nil c is ignored at Close time.
func (c *Closer) Add(closer io.Closer) {
	c.closers = append(c.closers, closer)
}

// Close runs every queued closer even after a failure and joins the errors.
func (c *Closer) Close() error {
	errs := make([]error, 0, len(c.closers))

	for _, each := range c.closers {
		if each == nil {
			continue
		}

		errs = append(errs, each.Close())
	}

	return errors.Join(errs...)
}

type once struct {
	done  bool
	inner io.Closer
}

// CloseOnce lets only the first successful Close through to c. A failed Close
// can be retried. Not safe for concurrent use.
func CloseOnce(c io.Closer) io.Closer {
	switch c := c.(type) {
	case nil:
		return nil
	case *once:
		return c
	default:
		return &once{inner: c}
	}
}

func (o *once) Close() error {
	if o.done {
		return nil
	}

	err := o.inner.Close()
	o.done = err == nil

	return err
}

// ReadCloser reads from r and closes with c.
func ReadCloser(r io.Reader, c io.Closer) io.ReadCloser {
	return struct {
		io.Reader
		io.Closer
	}{r, c}
}

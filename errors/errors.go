// Package errors holds the sentinel errors reported by the file-backed
// sequences and the command line tool, plus a small error accumulator.
// The join engines themselves never fail.
package errors

import "errors"

var (
	// ErrUnsorted means an input produced a key that sorts before its predecessor.
	ErrUnsorted = errors.New("input is not sorted")

	// ErrDuplicateKey means an input produced the same key twice in a row.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrMalformedRecord means a record could not be parsed.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrUnknownFormat means the requested record format is not supported.
	ErrUnknownFormat = errors.New("unknown record format")

	// ErrUnknownEncoding means the requested character set is not supported.
	ErrUnknownEncoding = errors.New("unknown character encoding")

	// ErrRemoteStatus means a remote input answered with a non-200 status.
	ErrRemoteStatus = errors.New("unexpected remote status")
)

// Collection gathers the errors of several independent steps, such as closing
// every input after a run. Not safe for concurrent use.
type Collection []error

// Add records err unless it is nil.
func (c *Collection) Add(err error) {
	if err != nil {
		*c = append(*c, err)
	}
}

// Err is nil when nothing was added, the lone error when one was, and
// errors.Join of all of them otherwise.
func (c Collection) Err() error {
	if len(c) == 1 {
		return c[0]
	}

	return errors.Join(c...)
}

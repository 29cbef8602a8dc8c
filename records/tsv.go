package records

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	errs "github.com/havoc-io/ordered-iter/errors"
)

const maxLineSize = 1 << 20

type tsvReader struct {
	scanner   *bufio.Scanner
	separator string
	line      int
}

func newTSVReader(r io.Reader, separator string) *tsvReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	return &tsvReader{scanner: scanner, separator: separator}
}

// next skips blank lines. A line that starts with the separator has no key
// and is malformed.
func (t *tsvReader) next() (string, string, error) {
	for t.scanner.Scan() {
		t.line++

		line := strings.TrimSuffix(t.scanner.Text(), "\r")
		if line == "" {
			continue
		}

		key, value, _ := strings.Cut(line, t.separator)
		if key == "" {
			return "", "", fmt.Errorf("%w: line %d has an empty key", errs.ErrMalformedRecord, t.line)
		}

		return key, value, nil
	}

	if err := t.scanner.Err(); err != nil {
		return "", "", err
	}

	return "", "", io.EOF
}

func (t *tsvReader) position() int {
	return t.line
}

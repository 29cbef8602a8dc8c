package records

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	errs "github.com/havoc-io/ordered-iter/errors"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// sniffSize is how much of the input EncodingAuto looks at.
const sniffSize = 4096

// utf8Reader decodes r from the named character set into UTF-8 and returns
// the canonical name of the set it used.
func utf8Reader(r io.Reader, label string) (io.Reader, string, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "utf-8", "utf8":
		return r, "utf-8", nil
	case EncodingAuto:
		return detectedReader(r)
	}

	enc, name := charset.Lookup(label)
	if enc == nil {
		return nil, "", fmt.Errorf("%w: %q", errs.ErrUnknownEncoding, label)
	}

	if name == "utf-8" {
		return r, name, nil
	}

	return transform.NewReader(r, enc.NewDecoder()), name, nil
}

// detectedReader guesses the character set from the first block of r. When
// the guess fails or names a set it cannot decode, the input is taken to be
// UTF-8 already.
func detectedReader(r io.Reader) (io.Reader, string, error) {
	buffered := bufio.NewReaderSize(r, sniffSize)

	sample, err := buffered.Peek(sniffSize)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, "", err
	}

	if len(sample) == 0 {
		return buffered, "utf-8", nil
	}

	best, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil {
		return buffered, "utf-8", nil //nolint:nilerr
	}

	decoded, err := charset.NewReaderLabel(best.Charset, buffered)
	if err != nil {
		return buffered, "utf-8", nil //nolint:nilerr
	}

	return decoded, best.Charset, nil
}

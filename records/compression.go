package records

import (
	"io"
	"path"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// decompressor wraps a compressed stream. The returned closer releases the
// decoder only; the caller still owns r.
type decompressor func(r io.Reader) (io.Reader, io.Closer, error)

var decompressors = map[string]decompressor{ //nolint:gochecknoglobals
	".gz": func(r io.Reader) (io.Reader, io.Closer, error) {
		reader, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}

		return reader, reader, nil
	},
	".zst": func(r io.Reader) (io.Reader, io.Closer, error) {
		decoder, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}

		rc := decoder.IOReadCloser()

		return rc, rc, nil
	},
	".lz4": func(r io.Reader) (io.Reader, io.Closer, error) {
		return lz4.NewReader(r), nil, nil
	},
	".br": func(r io.Reader) (io.Reader, io.Closer, error) {
		return brotli.NewReader(r), nil, nil
	},
	".sz": func(r io.Reader) (io.Reader, io.Closer, error) {
		return snappy.NewReader(r), nil, nil
	},
}

// splitCompression strips a known compression extension from location and
// returns it (lower cased) as the second result.
func splitCompression(location string) (string, string) {
	ext := strings.ToLower(path.Ext(location))
	if _, found := decompressors[ext]; !found {
		return location, ""
	}

	return strings.TrimSuffix(location, location[len(location)-len(ext):]), ext
}

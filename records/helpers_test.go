package records_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"
)

// writeFile writes content under name in a fresh temp dir, compressed to
// match name's extension, and returns the full path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, compress(t, filepath.Ext(name), []byte(content)), 0o600))

	return path
}

func compress(t *testing.T, ext string, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer

	var writer io.WriteCloser

	switch ext {
	case ".gz":
		writer = gzip.NewWriter(&buf)
	case ".zst":
		encoder, err := zstd.NewWriter(&buf)
		require.NoError(t, err)

		writer = encoder
	case ".lz4":
		writer = lz4.NewWriter(&buf)
	case ".br":
		writer = brotli.NewWriter(&buf)
	case ".sz":
		writer = snappy.NewBufferedWriter(&buf)
	default:
		return data
	}

	_, err := writer.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return buf.Bytes()
}

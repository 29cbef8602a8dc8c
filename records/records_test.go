package records_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/havoc-io/ordered-iter/compare"
	errs "github.com/havoc-io/ordered-iter/errors"
	"github.com/havoc-io/ordered-iter/ordered"
	"github.com/havoc-io/ordered-iter/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entries = []ordered.KeyValuePair[string, string]

func collect(t *testing.T, path string, opts records.Options) (entries, error) {
	t.Helper()

	f, err := records.Open(t.Context(), path, opts)
	require.NoError(t, err)

	defer func() {
		require.NoError(t, f.Close())
	}()

	return f.Map().Collect(), f.Err()
}

func TestOpenTSV(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		opts    records.Options
		want    entries
	}{
		{
			name:    "key and value",
			content: "a\t1\nb\t2\n",
			want:    entries{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}},
		},
		{
			name:    "key only lines and blanks",
			content: "a\n\nb\n\r\nc\tx\ty\n",
			want:    entries{{Key: "a"}, {Key: "b"}, {Key: "c", Value: "x\ty"}},
		},
		{
			name:    "windows line endings",
			content: "a\t1\r\nb\t2\r\n",
			want:    entries{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}},
		},
		{
			name:    "custom separator",
			content: "a,1\nb,2",
			opts:    records.Options{Separator: ","},
			want:    entries{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}},
		},
		{
			name:    "empty file",
			content: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := collect(t, writeFile(t, "data.tsv", tt.content), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpenYAML(t *testing.T) {
	t.Parallel()

	content := `- key: apple
  value: red
- key: banana
---
key: cherry
value: "7"
---
- {key: date, value: brown}
`

	for _, name := range []string{"fruit.yaml", "fruit.yml"} {
		got, err := collect(t, writeFile(t, name, content), records.Options{})
		require.NoError(t, err)

		assert.Equal(t, entries{
			{Key: "apple", Value: "red"},
			{Key: "banana"},
			{Key: "cherry", Value: "7"},
			{Key: "date", Value: "brown"},
		}, got, name)
	}

	// The format can be forced regardless of the name.
	got, err := collect(t, writeFile(t, "fruit.txt", "key: x\n"), records.Options{Format: records.FormatYAML})
	require.NoError(t, err)
	assert.Equal(t, entries{{Key: "x"}}, got)
}

func TestCompressedFiles(t *testing.T) {
	t.Parallel()

	content := "k1\tv1\nk2\tv2\nk3\tv3\n"
	want := entries{{Key: "k1", Value: "v1"}, {Key: "k2", Value: "v2"}, {Key: "k3", Value: "v3"}}

	for _, ext := range []string{".gz", ".zst", ".lz4", ".br", ".sz"} {
		t.Run(ext, func(t *testing.T) {
			t.Parallel()

			got, err := collect(t, writeFile(t, "data.tsv"+ext, content), records.Options{})
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	t.Run("compressed yaml", func(t *testing.T) {
		t.Parallel()

		got, err := collect(t, writeFile(t, "data.yaml.zst", "- key: a\n  value: b\n"), records.Options{})
		require.NoError(t, err)
		assert.Equal(t, entries{{Key: "a", Value: "b"}}, got)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		opts    records.Options
		wantErr error
		want    entries
	}{
		{
			name:    "unsorted",
			content: "a\nc\nb\nd\n",
			opts:    records.Options{Validate: true},
			wantErr: errs.ErrUnsorted,
			want:    entries{{Key: "a"}, {Key: "c"}},
		},
		{
			name:    "duplicate",
			content: "a\nb\nb\n",
			opts:    records.Options{Validate: true},
			wantErr: errs.ErrDuplicateKey,
			want:    entries{{Key: "a"}, {Key: "b"}},
		},
		{
			name:    "not validated",
			content: "b\na\n",
			want:    entries{{Key: "b"}, {Key: "a"}},
		},
		{
			name:    "natural order",
			content: "file2\nfile10\nfile100\n",
			opts:    records.Options{Validate: true, Compare: compare.Natural},
			want:    entries{{Key: "file2"}, {Key: "file10"}, {Key: "file100"}},
		},
		{
			name:    "natural order breaks leading zero ties by bytes",
			content: "a01\na1\n",
			opts:    records.Options{Validate: true, Compare: compare.Natural},
			want:    entries{{Key: "a01"}, {Key: "a1"}},
		},
		{
			name:    "natural order rejects the reversed tie",
			content: "a1\na01\n",
			opts:    records.Options{Validate: true, Compare: compare.Natural},
			wantErr: errs.ErrUnsorted,
			want:    entries{{Key: "a1"}},
		},
		{
			name:    "byte order rejects natural order",
			content: "file2\nfile10\n",
			opts:    records.Options{Validate: true},
			wantErr: errs.ErrUnsorted,
			want:    entries{{Key: "file2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := collect(t, writeFile(t, "data.tsv", tt.content), tt.opts)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		file     string
		content  string
		wantKeys []string
	}{
		{name: "tsv empty key", file: "bad.tsv", content: "a\t1\n\t2\n", wantKeys: []string{"a"}},
		{name: "yaml scalar document", file: "bad.yaml", content: "just text\n"},
		{name: "yaml record without key", file: "bad.yaml", content: "- key: a\n- value: b\n", wantKeys: []string{"a"}},
		{name: "yaml nested value", file: "bad.yaml", content: "- key: a\n  value: [1, 2]\n"},
		{name: "yaml syntax", file: "bad.yaml", content: "- key: a\n  value: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := records.Open(t.Context(), writeFile(t, tt.file, tt.content), records.Options{})
			require.NoError(t, err)

			got := f.Keys().Collect()
			require.ErrorIs(t, f.Err(), errs.ErrMalformedRecord)
			assert.Equal(t, tt.wantKeys, got)
			require.NoError(t, f.Close())
		})
	}
}

func TestOpenErrors(t *testing.T) {
	t.Parallel()

	_, err := records.Open(t.Context(), "/does/not/exist.tsv", records.Options{})
	require.Error(t, err)

	_, err = records.Open(t.Context(), writeFile(t, "a.tsv", "a\n"), records.Options{Format: "csv"})
	require.ErrorIs(t, err, errs.ErrUnknownFormat)

	_, err = records.Open(t.Context(), writeFile(t, "a.tsv", "a\n"), records.Options{Encoding: "klingon"})
	require.ErrorIs(t, err, errs.ErrUnknownEncoding)

	notGzip := filepath.Join(t.TempDir(), "a.tsv.gz")
	require.NoError(t, os.WriteFile(notGzip, []byte("a\tplain\n"), 0o600))

	_, err = records.Open(t.Context(), notGzip, records.Options{})
	require.Error(t, err)
}

func TestJoinFiles(t *testing.T) {
	t.Parallel()

	left, err := records.Open(t.Context(), writeFile(t, "left.tsv", "apple\t1\nbanana\t2\ncherry\t3\n"), records.Options{})
	require.NoError(t, err)

	right, err := records.Open(t.Context(), writeFile(t, "right.tsv.gz", "banana\tyellow\ncherry\tred\ndate\tbrown\n"),
		records.Options{})
	require.NoError(t, err)

	var lines []string

	for key, pair := range ordered.InnerJoinMap(left.Map(), right.Map()).All() {
		count, colour := pair.Values()
		lines = append(lines, strings.Join([]string{key, count, colour}, " "))
	}

	assert.Equal(t, []string{"banana 2 yellow", "cherry 3 red"}, lines)
	require.NoError(t, left.Err())
	require.NoError(t, right.Err())

	// The join released both files; closing again is harmless.
	require.NoError(t, left.Close())
	require.NoError(t, right.Close())
}

func TestStopEndsFile(t *testing.T) {
	t.Parallel()

	f, err := records.Open(t.Context(), writeFile(t, "data.tsv", "a\nb\nc\n"), records.Options{})
	require.NoError(t, err)

	m := f.Map()

	key, _, ok := m.Next()
	require.True(t, ok)
	assert.Equal(t, "a", key)
	assert.Equal(t, 1, f.Records())

	m.Stop()

	_, _, ok = m.Next()
	assert.False(t, ok)
	require.NoError(t, f.Err())
	require.NoError(t, f.Close())
}

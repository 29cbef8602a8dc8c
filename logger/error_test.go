package logger

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBase = errors.New("base error")

func TestAnnotateError(t *testing.T) {
	t.Parallel()

	require.NoError(t, AnnotateError(nil, "key", "value"))

	err := AnnotateError(errBase, "path", "a.tsv", "line", 7)
	require.Error(t, err)

	assert.Equal(t, "base error", err.Error())
	require.ErrorIs(t, err, errBase)

	var se *annotatedError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, []slog.Attr{slog.String("path", "a.tsv"), slog.Int("line", 7)}, se.attrs)

	wrapped := fmt.Errorf("opening: %w", err)
	require.ErrorIs(t, wrapped, errBase)
	require.ErrorAs(t, wrapped, &se)
}

func TestAnnotationHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []any
		want []map[string]any
	}{
		{
			name: "plain error kept",
			args: []any{"error", errBase},
			want: []map[string]any{{"error": "base error"}},
		},
		{
			name: "annotated error unpacked",
			args: []any{"error", AnnotateError(errBase, "line", 3), "file", "x"},
			want: []map[string]any{{"error": "base error", "file": "x", "line": float64(3)}},
		},
		{
			name: "wrapped annotation keeps outer context",
			args: []any{"error", fmt.Errorf("opening: %w", AnnotateError(errBase, "line", 3))},
			want: []map[string]any{{"error": "opening: base error", "line": float64(3)}},
		},
		{
			name: "nested annotations all logged",
			args: []any{"error", AnnotateError(fmt.Errorf("reading: %w", AnnotateError(errBase, "line", 3)), "location", "a.tsv")},
			want: []map[string]any{{"error": "reading: base error", "location": "a.tsv", "line": float64(3)}},
		},
		{
			name: "no errors",
			args: []any{"count", 2},
			want: []map[string]any{{"count": float64(2)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			slog.New(NewHandler(Options{JSON: true, Output: &buf})).Info("msg", tt.args...)

			records := decodeLines(t, &buf)
			require.Len(t, records, len(tt.want))

			for i, want := range tt.want {
				for key, value := range want {
					assert.Equal(t, value, records[i][key], key)
				}
			}
		})
	}
}

func TestAnnotationHandlerWithAttrsAndGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	handler := NewHandler(Options{JSON: true, Output: &buf})
	logger := slog.New(handler).With("fixed", "yes").WithGroup("g")

	logger.Info("msg", "error", AnnotateError(errBase, "line", 1))

	records := decodeLines(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "yes", records[0]["fixed"])

	group, ok := records[0]["g"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "base error", group["error"])
	assert.InDelta(t, 1, group["line"], 0)

	assert.True(t, handler.Enabled(t.Context(), slog.LevelInfo))
	assert.False(t, handler.Enabled(t.Context(), slog.LevelDebug))
}

func TestAnnotationHandlerJoinedErrors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	joined := errors.Join(
		AnnotateError(errors.New("left.tsv unsorted"), "location", "left.tsv"),
		AnnotateError(errors.New("right.tsv unsorted"), "location", "right.tsv"),
	)

	slog.New(NewHandler(Options{Output: &buf})).Error("command failed", "error", joined)

	line := buf.String()
	assert.Contains(t, line, "left.tsv unsorted")
	assert.Contains(t, line, "right.tsv unsorted")
	assert.Contains(t, line, "location=left.tsv")
	assert.Contains(t, line, "location=right.tsv")
	assert.Less(t, strings.Index(line, "location=left.tsv"), strings.Index(line, "location=right.tsv"))
}

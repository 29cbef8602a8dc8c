// Package logger configures log/slog for the application and carries logging
// values such as the subsystem through context.Context.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
)

//nolint:gochecknoglobals
var (
	// subsystem is what Get tags records with when ctx names none.
	subsystem atomic.Value
	// configMu serializes replacing the process-wide default logger.
	configMu sync.Mutex
)

// Options selects the handler ConfigureLoggingWithOptions and NewHandler build.
type Options struct {
	Subsystem string
	JSON      bool
	MinLevel  slog.Level
	// Output defaults to stderr, leaving stdout to command output.
	Output io.Writer
}

// ConfigureLoggingWithOptions installs a text or JSON handler as the slog
// default and returns the resulting logger.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMu.Lock()
	defer configMu.Unlock()

	logger := slog.New(NewHandler(opts))

	slog.SetDefault(logger)
	subsystem.Store(opts.Subsystem)

	return logger
}

// NewHandler builds the handler ConfigureLoggingWithOptions installs, without
// touching any global state.
func NewHandler(opts Options) slog.Handler {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	return annotationHandler{next: handler}
}

// ErrInvalidLevel is returned by ParseLevel for names it does not know.
var ErrInvalidLevel = errors.New("invalid log level")

// ParseLevel maps debug, info, warn (or warning) and error to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
	}
}

type contextKey int

const (
	subsystemKey contextKey = iota
	valuesKey
)

// WithSubsystem overrides the default subsystem for loggers built from ctx.
func WithSubsystem(ctx context.Context, name string) context.Context {
	return context.WithValue(orBackground(ctx), subsystemKey, name)
}

// GetSubsystem is the subsystem stored in ctx, or the default one.
func GetSubsystem(ctx context.Context) string {
	if name, ok := orBackground(ctx).Value(subsystemKey).(string); ok {
		return name
	}

	name, _ := subsystem.Load().(string)

	return name
}

// With returns ctx carrying extra key-value pairs for Get to log.
func With(ctx context.Context, args ...any) context.Context {
	ctx = orBackground(ctx)
	if len(args) == 0 {
		return ctx
	}

	return context.WithValue(ctx, valuesKey, append(values(ctx), args...))
}

// values returns a private copy so sibling contexts never share an array.
func values(ctx context.Context) []any {
	stored, _ := ctx.Value(valuesKey).([]any)

	return slices.Clone(stored)
}

func orBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}

	return ctx
}

// Get returns the default logger tagged with the subsystem and values of ctx.
// Only the first ctx is used; none means context.Background.
func Get(ctx ...context.Context) *slog.Logger {
	var from context.Context
	if len(ctx) > 0 {
		from = ctx[0]
	}

	from = orBackground(from)
	log := slog.Default()

	if name := GetSubsystem(from); name != "" {
		log = log.With("subsystem", name)
	}

	if args := values(from); len(args) > 0 {
		log = log.With(args...)
	}

	return log
}

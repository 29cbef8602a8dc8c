package logger

import (
	"context"
	"log/slog"
	"slices"
)

// AnnotateError attaches slog key-value pairs to err. Handlers from NewHandler
// log them as attributes of the record carrying the error. errors.Is and
// errors.As see through the annotation. A nil err stays nil.
//
//	return logger.AnnotateError(err, "location", path, "record", line)
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	return &annotatedError{
		err:   err,
		attrs: slog.Group("", args...).Value.Group(),
	}
}

type annotatedError struct {
	err   error
	attrs []slog.Attr
}

func (a *annotatedError) Error() string { return a.err.Error() }
func (a *annotatedError) Unwrap() error { return a.err }

// annotationHandler rewrites records so that annotated errors log as the
// error they wrap followed by their attributes.
type annotationHandler struct {
	next slog.Handler
}

var _ slog.Handler = annotationHandler{}

func (h annotationHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle logs an annotated error as the error it wraps. An error that only
// contains annotations, through fmt.Errorf or errors.Join, is logged as is.
// Either way the annotations found inside follow the record's own attributes.
func (h annotationHandler) Handle(ctx context.Context, record slog.Record) error {
	var (
		own   = make([]slog.Attr, 0, record.NumAttrs())
		extra []slog.Attr
	)

	record.Attrs(func(attr slog.Attr) bool {
		if err, ok := attr.Value.Any().(error); ok {
			if annotated, ok := err.(*annotatedError); ok { //nolint:errorlint
				attr = slog.Any(attr.Key, annotated.err)
			}

			extra = append(extra, annotations(err)...)
		}

		own = append(own, attr)

		return true
	})

	if len(extra) == 0 {
		return h.next.Handle(ctx, record)
	}

	rewritten := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	rewritten.AddAttrs(own...)
	rewritten.AddAttrs(extra...)

	return h.next.Handle(ctx, rewritten)
}

// annotations collects the attributes of every annotated error in err's tree,
// depth first.
func annotations(err error) []slog.Attr {
	switch err := err.(type) { //nolint:errorlint
	case *annotatedError:
		return append(slices.Clone(err.attrs), annotations(err.err)...)
	case interface{ Unwrap() []error }:
		var attrs []slog.Attr

		for _, inner := range err.Unwrap() {
			attrs = append(attrs, annotations(inner)...)
		}

		return attrs
	case interface{ Unwrap() error }:
		return annotations(err.Unwrap())
	default:
		return nil
	}
}

func (h annotationHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return annotationHandler{next: h.next.WithAttrs(attrs)}
}

func (h annotationHandler) WithGroup(name string) slog.Handler {
	return annotationHandler{next: h.next.WithGroup(name)}
}

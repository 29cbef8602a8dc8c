// Package records streams sorted key/value files as ordered sequences, so
// they can be fed straight into the joins of package ordered.
//
// A location is a local path or an http(s) URL. A trailing .gz, .zst, .lz4,
// .br or .sz extension selects a decompressor, and the extension before it
// selects the record format unless Options.Format says otherwise:
//
//	f, err := records.Open(ctx, "left.tsv.zst", records.Options{Validate: true})
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	for key, value := range f.Map().All() {
//	    ...
//	}
//
//	if err := f.Err(); err != nil {
//	    return err
//	}
package records

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/havoc-io/ordered-iter/closer"
	"github.com/havoc-io/ordered-iter/compare"
	errs "github.com/havoc-io/ordered-iter/errors"
	"github.com/havoc-io/ordered-iter/logger"
	"github.com/havoc-io/ordered-iter/ordered"
)

type recordReader interface {
	next() (key, value string, err error)
	// position is the line or record number of the last record returned.
	position() int
}

// File is an open record file. Map and Keys are two views of the same single
// pass over the file, so only one of them should be consumed.
type File struct {
	location string
	reader   recordReader
	cmp      compare.Func[string]
	validate bool
	closer   io.Closer

	records  int
	previous string
	done     bool
	err      error
}

// Open prepares location for reading. Nothing but the header of a remote
// response, and the first block when guessing the encoding, is read before
// the sequence is consumed.
func Open(ctx context.Context, location string, opts Options) (*File, error) {
	opts = opts.withDefaults()

	// Released last to first once the file ends or is closed.
	var layers []io.Closer

	release := func(err error) error {
		slices.Reverse(layers)

		return errors.Join(err, closer.NewCloser(layers...).Close())
	}

	var (
		raw  io.Reader
		name = location
	)

	if isRemote(location) {
		body, urlPath, err := fetch(ctx, location, opts.Transport)
		if err != nil {
			return nil, err
		}

		raw, name = body, urlPath
		layers = append(layers, body)
	} else {
		file, err := os.Open(location)
		if err != nil {
			return nil, err
		}

		raw = file
		layers = append(layers, file)
	}

	if opts.Format == "" {
		opts.Format = formatFor(name)
	}

	_, codec := splitCompression(name)
	if codec != "" {
		decoded, decoderCloser, err := decompressors[codec](raw)
		if err != nil {
			return nil, release(fmt.Errorf("opening %s: %w", location, err))
		}

		raw = decoded

		if decoderCloser != nil {
			layers = append(layers, decoderCloser)
		}
	}

	text, charsetName, err := utf8Reader(raw, opts.Encoding)
	if err != nil {
		return nil, release(err)
	}

	var reader recordReader

	switch opts.Format {
	case FormatTSV:
		reader = newTSVReader(text, opts.Separator)
	case FormatYAML:
		reader = newYAMLReader(text)
	default:
		return nil, release(fmt.Errorf("%w: %q", errs.ErrUnknownFormat, opts.Format))
	}

	slices.Reverse(layers)

	logger.Get(logger.With(ctx, "location", location)).Debug("opened records",
		"format", opts.Format,
		"compression", codec,
		"encoding", charsetName,
		"validate", opts.Validate)

	return &File{
		location: location,
		reader:   reader,
		cmp:      opts.Compare,
		validate: opts.Validate,
		closer:   closer.CloseOnce(closer.NewCloser(layers...)),
	}, nil
}

// Location returns the path or URL the file was opened from.
func (f *File) Location() string {
	return f.location
}

// Records returns how many records have been read so far.
func (f *File) Records() int {
	return f.records
}

// Map returns the records as an ordered map sequence. The sequence releases
// the file when it ends or is stopped.
func (f *File) Map() ordered.Map[string, string] {
	return ordered.NewMap[string, string](fileCursor{f: f}, f.cmp)
}

// Keys returns the keys of the records as an ordered set sequence.
func (f *File) Keys() ordered.Set[string] {
	return f.Map().Keys()
}

// Err returns the error that ended the sequence early, if any. Check it once
// the sequence is drained.
func (f *File) Err() error {
	return f.err
}

// Close releases the file. It is safe to call more than once and after the
// sequence has released the file itself.
func (f *File) Close() error {
	f.done = true

	return f.closer.Close()
}

func (f *File) next() (string, string, bool) {
	if f.done {
		return "", "", false
	}

	key, value, err := f.reader.next()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			f.fail(err)
		}

		f.finish()

		return "", "", false
	}

	if f.validate && f.records > 0 {
		if err := f.check(key); err != nil {
			f.fail(err)
			f.finish()

			return "", "", false
		}
	}

	f.records++
	f.previous = key

	return key, value, true
}

func (f *File) check(key string) error {
	switch order := f.cmp(f.previous, key); {
	case order > 0:
		return fmt.Errorf("%w: %q follows %q", errs.ErrUnsorted, key, f.previous)
	case order == 0:
		return fmt.Errorf("%w: %q", errs.ErrDuplicateKey, key)
	default:
		return nil
	}
}

func (f *File) fail(err error) {
	if f.err == nil {
		f.err = logger.AnnotateError(err, "location", f.location, "record", f.reader.position())
	}
}

// finish releases the file, keeping a close failure if nothing failed before.
func (f *File) finish() {
	if err := f.Close(); err != nil {
		f.fail(err)
	}
}

type fileCursor struct {
	f *File
}

func (c fileCursor) Next() (string, string, bool) {
	return c.f.next()
}

func (c fileCursor) Stop() {
	c.f.finish()
}

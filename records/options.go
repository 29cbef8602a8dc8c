package records

import (
	"net/http"
	"path"
	"strings"

	"github.com/havoc-io/ordered-iter/compare"
)

// Format is the layout of the records in a file.
type Format string

const (
	// FormatTSV is one record per line: the key, the separator, then the
	// value. A line without a separator is a key with an empty value.
	FormatTSV Format = "tsv"

	// FormatYAML is a stream of documents, each either one {key, value}
	// mapping or a sequence of them.
	FormatYAML Format = "yaml"
)

// EncodingAuto asks Open to guess the character set from the first block of
// the file.
const EncodingAuto = "auto"

const defaultSeparator = "\t"

// Options configures Open. The zero value reads tab separated UTF-8 text in
// byte order without checking it.
type Options struct {
	// Format overrides detection by extension (.yaml and .yml mean FormatYAML,
	// anything else FormatTSV).
	Format Format

	// Separator splits key from value in FormatTSV. Defaults to a tab.
	Separator string

	// Encoding is a character set label such as "latin1" or "shift_jis", or
	// EncodingAuto. Empty means UTF-8.
	Encoding string

	// Compare is the ordering the keys follow. Defaults to byte order.
	Compare compare.Func[string]

	// Validate makes the sequence end with ErrUnsorted or ErrDuplicateKey as
	// soon as a key does not follow its predecessor under Compare.
	Validate bool

	// Transport fetches http and https locations. Defaults to
	// http.DefaultTransport. Responses are decompressed per Content-Encoding.
	Transport http.RoundTripper
}

func (o Options) withDefaults() Options {
	if o.Separator == "" {
		o.Separator = defaultSeparator
	}

	if o.Compare == nil {
		o.Compare = compare.Ordered[string]()
	}

	if o.Transport == nil {
		o.Transport = http.DefaultTransport
	}

	return o
}

// formatFor picks the format from the extension under any compression
// extension.
func formatFor(name string) Format {
	name, _ = splitCompression(name)

	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTSV
	}
}

package sortable

import "github.com/havoc-io/ordered-iter/compare"

// Ready-made key types. Convert back with a plain conversion, e.g. int(k).
type (
	// Int orders ints numerically.
	Int int
	// Byte orders bytes numerically.
	Byte byte
	// String orders strings bytewise.
	String string
	// NaturalString orders strings with embedded numbers compared by value
	// ("v2" < "v10"), see compare.Natural.
	NaturalString string
)

var (
	_ Sortable[Int]           = Int(0)
	_ Sortable[Byte]          = Byte(0)
	_ Sortable[String]        = String("")
	_ Sortable[NaturalString] = NaturalString("")
)

// Equals reports whether i and other are the same number.
func (i Int) Equals(other Int) bool { return i == other }

// LessThan reports whether i is numerically smaller than other.
func (i Int) LessThan(other Int) bool { return i < other }

// Equals reports whether b and other are the same byte.
func (b Byte) Equals(other Byte) bool { return b == other }

// LessThan reports whether b is numerically smaller than other.
func (b Byte) LessThan(other Byte) bool { return b < other }

// Equals reports whether s and other hold the same bytes.
func (s String) Equals(other String) bool { return s == other }

// LessThan reports whether s sorts bytewise before other.
func (s String) LessThan(other String) bool { return s < other }

// Equals reports whether s and other hold the same bytes.
func (s NaturalString) Equals(other NaturalString) bool { return s == other }

// LessThan reports whether s sorts before other in natural order.
func (s NaturalString) LessThan(other NaturalString) bool {
	return compare.Natural(string(s), string(other)) < 0
}

// Package object models parsed PDF values as a closed set of shapes and
// converts them into JSON-safe structures for inspection output.
package object

import "fmt"

// Kind identifies the shape of a parsed PDF value.
type Kind int

const (
	// KindNull is an absent or null value.
	KindNull Kind = iota

	// KindDict is a dictionary (name-to-value mapping).
	KindDict

	// KindArray is an ordered sequence of values.
	KindArray

	// KindText is a symbolic name or other displayable text.
	KindText

	// KindBinary is an opaque byte string.
	KindBinary

	// KindStream is a stream object (dictionary plus encoded byte content).
	KindStream

	// KindRef is an unresolved indirect reference.
	KindRef

	// KindOpaque is any other atomic value, carried as its textual rendering.
	KindOpaque
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindDict:
		return "dict"
	case KindArray:
		return "array"
	case KindText:
		return "text"
	case KindBinary:
		return "binary"
	case KindStream:
		return "stream"
	case KindRef:
		return "ref"
	case KindOpaque:
		return "opaque"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Ref identifies an indirect object within a document.
type Ref struct {
	Number     int
	Generation int
}

// String renders the reference in PDF notation.
func (r Ref) String() string {
	return fmt.Sprintf("%d %d R", r.Number, r.Generation)
}

// Filter is one named encoding transform declared on a stream, together
// with its decode parameters (null when the stream declares none).
type Filter struct {
	Name   string
	Params Object
}

// FilterFlate is the deflate-style compression filter name. Streams encoded
// with it are decoded to text; any other filter is reported raw.
const FilterFlate = "FlateDecode"

// Stream is the parsed form of a PDF stream object. Implementations live in
// the parsing infrastructure; the normalizer only consumes this surface.
type Stream interface {
	// ObjectNumber returns the stream's indirect object number.
	ObjectNumber() int

	// Filters returns the declared filter list, outermost first.
	Filters() []Filter

	// RawBytes returns the stream content before any filter is applied.
	RawBytes() []byte

	// Decoded returns the stream content with the full filter pipeline
	// applied.
	Decoded() ([]byte, error)
}

// Resolver resolves indirect references against a document's object table.
// The collaborator follows reference chains itself, so a single resolution
// step yields a non-reference value or a direct reference to one.
type Resolver interface {
	Resolve(ref Ref) (Object, error)
}

// Object is a parsed PDF value. Exactly one payload field is meaningful,
// selected by Kind.
type Object struct {
	Kind   Kind
	Dict   map[string]Object
	Array  []Object
	Text   string
	Binary []byte
	Stream Stream
	Ref    Ref
	Opaque string
}

// Null returns the null value.
func Null() Object {
	return Object{Kind: KindNull}
}

// DictOf wraps a mapping.
func DictOf(m map[string]Object) Object {
	return Object{Kind: KindDict, Dict: m}
}

// ArrayOf wraps an ordered sequence.
func ArrayOf(items []Object) Object {
	return Object{Kind: KindArray, Array: items}
}

// TextOf wraps displayable text.
func TextOf(s string) Object {
	return Object{Kind: KindText, Text: s}
}

// BinaryOf wraps an opaque byte string.
func BinaryOf(b []byte) Object {
	return Object{Kind: KindBinary, Binary: b}
}

// StreamOf wraps a parsed stream.
func StreamOf(s Stream) Object {
	return Object{Kind: KindStream, Stream: s}
}

// RefTo wraps an indirect reference.
func RefTo(number, generation int) Object {
	return Object{Kind: KindRef, Ref: Ref{Number: number, Generation: generation}}
}

// OpaqueOf wraps the textual rendering of an unrecognized atomic value.
func OpaqueOf(repr string) Object {
	return Object{Kind: KindOpaque, Opaque: repr}
}

// IsNull reports whether the object is the null value.
func (o Object) IsNull() bool {
	return o.Kind == KindNull
}

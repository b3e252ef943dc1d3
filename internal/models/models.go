// Package models defines the two payload representations the generators
// produce: structured values destined for canonical serialization, and
// raw text/byte literals that must bypass it.
package models

// Value is a generic type to represent any structured JSON value.
// Supported leaves are string, int/int64, bool and nil; containers are
// *Object and Array. Anything else is rejected at serialization time.
type Value interface{}

// Member is a single key/value pair inside an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is an insertion-ordered JSON object. It is backed by a member
// slice rather than a Go map so that serialization emits keys in exactly
// the order they were set — a map would shuffle the hundreds of thousands
// of keys the wide-object generator produces.
type Object struct {
	members []Member
}

// NewObject creates an empty Object.
func NewObject() *Object {
	return &Object{}
}

// NewObjectCap creates an empty Object with capacity for n members.
// Generators that know their key count up front use this to avoid
// repeated slice growth.
func NewObjectCap(n int) *Object {
	return &Object{members: make([]Member, 0, n)}
}

// Set appends a key/value pair. Callers are responsible for key
// uniqueness; Set never reorders or deduplicates. It returns the Object
// so construction can be chained.
func (o *Object) Set(key string, value Value) *Object {
	o.members = append(o.members, Member{Key: key, Value: value})
	return o
}

// Len returns the number of members.
func (o *Object) Len() int {
	return len(o.members)
}

// Members returns the members in insertion order. The returned slice is
// the Object's backing storage and must not be mutated.
func (o *Object) Members() []Member {
	return o.members
}

// Array is a JSON array of Values.
type Array []Value

// Representation tags how a Payload must be emitted.
type Representation int

const (
	// RepDocument marks a structured value that goes through canonical
	// serialization.
	RepDocument Representation = iota
	// RepText marks literal text written as-is (single UTF-8 encode step).
	RepText
	// RepBinary marks literal bytes written verbatim, with no encoding
	// step at all.
	RepBinary
)

// String returns the representation name.
func (r Representation) String() string {
	switch r {
	case RepDocument:
		return "document"
	case RepText:
		return "text"
	case RepBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Payload is the finished artifact a generator returns: exactly one of
// Doc, Text or Bytes is meaningful, selected by Rep. Payloads are never
// mutated after construction.
type Payload struct {
	Rep   Representation
	Doc   Value
	Text  string
	Bytes []byte
}

// Document wraps a structured value as a serialize-me payload.
func Document(v Value) Payload {
	return Payload{Rep: RepDocument, Doc: v}
}

// Text wraps literal text as a write-as-is payload.
func Text(s string) Payload {
	return Payload{Rep: RepText, Text: s}
}

// Binary wraps literal bytes as a write-as-is-binary payload.
func Binary(b []byte) Payload {
	return Payload{Rep: RepBinary, Bytes: b}
}

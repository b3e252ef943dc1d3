// Package generator constructs the destructive payload catalog: deeply
// nested documents, objects with huge key counts or pathological key
// lengths, huge arrays, duplicate-keyed raw text, malformed documents,
// non-standard numeric tokens and reserved-name ("dunder") key injection.
//
// Every generator is a pure function from explicit parameters to an
// immutable models.Payload. Structured shapes return serialize-me
// documents; shapes the serializer cannot express (duplicate keys,
// syntax errors, invalid bytes, nesting beyond its depth cap) return
// raw text or bytes that the emission layer writes verbatim.
package generator

import (
	"fmt"
	"slices"
	"strings"

	apperrors "github.com/JonasFriedli/DestructiveJSON/internal/errors"
	"github.com/JonasFriedli/DestructiveJSON/internal/formatter"
	"github.com/JonasFriedli/DestructiveJSON/internal/models"
)

const (
	// nestingKey is the single key of every level of the deep-nesting
	// payload.
	nestingKey = "n"
	// longKeyChar is the character the long-key payload repeats.
	longKeyChar = "k"
	// longKeyValue is the fixed value under the long key.
	longKeyValue = "v"
	// arrayKey holds the huge array at the top level.
	arrayKey = "arr"
	// indexWidth is the zero-padded width of wide-object key indices.
	indexWidth = 8
)

// DefaultInvalidUTF8 is the invalid continuation-byte sequence embedded
// by the broken-utf8 payload when no override is configured. Golden
// files depend on it.
var DefaultInvalidUTF8 = []byte{0xFF, 0xFF}

// Nested returns d levels of single-key containers terminating in an
// empty one: {"n": {"n": ... {}}}. Depth 0 is {}.
//
// The chain is emitted as literal text, byte-identical to the canonical
// serialization of the equivalent structured value. The token encoder
// caps nesting at 10,000 levels, well short of the depths this payload
// must reach to stress recursive-descent parsers, so like the other
// shapes the serializer cannot express, the chain takes the raw path:
// two linear string repeats, no per-level recursion anywhere.
func Nested(depth int) (models.Payload, error) {
	if depth < 0 {
		return models.Payload{}, apperrors.NewParameterError(
			fmt.Sprintf("depth must be >= 0, got %d", depth), apperrors.ErrNegativeParam)
	}

	open := `{"` + nestingKey + `":`
	var sb strings.Builder
	sb.Grow(depth*(len(open)+1) + 2)
	sb.WriteString(strings.Repeat(open, depth))
	sb.WriteString("{}")
	sb.WriteString(strings.Repeat("}", depth))
	return models.Text(sb.String()), nil
}

// ManyKeys returns a single-level object with count keys, each formed as
// prefix plus an 8-digit zero-padded index, valued with the index. Keys
// are unique by construction and appear in index order.
func ManyKeys(count int, prefix string) (models.Payload, error) {
	obj, err := manyKeysObject(count, prefix)
	if err != nil {
		return models.Payload{}, err
	}
	return models.Document(obj), nil
}

func manyKeysObject(count int, prefix string) (*models.Object, error) {
	if count < 0 {
		return nil, apperrors.NewParameterError(
			fmt.Sprintf("key count must be >= 0, got %d", count), apperrors.ErrNegativeParam)
	}

	obj := models.NewObjectCap(count)
	for i := 0; i < count; i++ {
		obj.Set(fmt.Sprintf("%s%0*d", prefix, indexWidth, i), int64(i))
	}
	return obj, nil
}

// LongKey returns {"kkk...k": "v"} with a key of exactly length repeated
// characters. strings.Repeat builds the key in one allocation.
func LongKey(length int) (models.Payload, error) {
	if length < 0 {
		return models.Payload{}, apperrors.NewParameterError(
			fmt.Sprintf("key length must be >= 0, got %d", length), apperrors.ErrNegativeParam)
	}

	obj := models.NewObjectCap(1).Set(strings.Repeat(longKeyChar, length), longKeyValue)
	return models.Document(obj), nil
}

// HugeArray returns {"arr": [element, element, ...]} with length
// repetitions of one scalar element.
func HugeArray(length int, element models.Value) (models.Payload, error) {
	if length < 0 {
		return models.Payload{}, apperrors.NewParameterError(
			fmt.Sprintf("array length must be >= 0, got %d", length), apperrors.ErrNegativeParam)
	}
	if !isScalar(element) {
		return models.Payload{}, apperrors.NewParameterError(
			fmt.Sprintf("array element must be a scalar leaf, got %T", element), apperrors.ErrUnsupportedLeaf)
	}

	arr := slices.Repeat(models.Array{element}, length)
	obj := models.NewObjectCap(1).Set(arrayKey, arr)
	return models.Document(obj), nil
}

// DuplicateKeys returns RAW TEXT of the form {"key":v1,"key":v2,...}
// with the same key repeated once per value. No structured container can
// hold duplicate keys and no conforming serializer will emit them, so
// the braces, colons and commas are assembled by literal concatenation;
// only the key and each individual value go through canonical
// serialization.
func DuplicateKeys(key string, values []models.Value) (models.Payload, error) {
	if key == "" {
		return models.Payload{}, apperrors.NewParameterError(
			"duplicate key name must not be empty", apperrors.ErrEmptyKey)
	}

	quoted, err := formatter.QuoteKey(key)
	if err != nil {
		return models.Payload{}, err
	}

	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(',')
		}
		text, err := formatter.Marshal(v)
		if err != nil {
			return models.Payload{}, err
		}
		sb.WriteString(quoted)
		sb.WriteByte(':')
		sb.WriteString(text)
	}
	sb.WriteByte('}')
	return models.Text(sb.String()), nil
}

// DuplicateValues builds the value sequence the duplicate subcommand
// uses: "key_0", "key_1", ... so each occurrence of the key carries a
// distinguishable value and key-collision resolution order is visible
// in the parse result.
func DuplicateValues(key string, n int) ([]models.Value, error) {
	if n < 0 {
		return nil, apperrors.NewParameterError(
			fmt.Sprintf("duplicate count must be >= 0, got %d", n), apperrors.ErrNegativeParam)
	}

	values := make([]models.Value, n)
	for i := range values {
		values[i] = fmt.Sprintf("%s_%d", key, i)
	}
	return values, nil
}

// NaNInf returns the fixed raw text {"x": NaN, "y": Infinity, "z": -Infinity}.
// The tokens are invalid under RFC 8259 but accepted by lenient parsers;
// a serializer would refuse or repair them, so this is raw text.
func NaNInf() models.Payload {
	return models.Text(`{"x": NaN, "y": Infinity, "z": -Infinity}`)
}

// ControlChars returns an object whose keys embed ASCII control and
// whitespace characters: tab, newline, carriage return and surrounding
// spaces. The serializer escapes them, so the document is well-formed;
// it targets consumers that assume printable member names.
func ControlChars() models.Payload {
	obj := models.NewObjectCap(5).
		Set("tab\tkey", "ws").
		Set("line\nbreak", "ws").
		Set("return\rkey", "ws").
		Set(" padded key ", "ws").
		Set("normal", "ok")
	return models.Document(obj)
}

// isScalar reports whether v is one of the supported leaf types.
func isScalar(v models.Value) bool {
	switch v.(type) {
	case nil, string, bool, int, int64:
		return true
	default:
		return false
	}
}

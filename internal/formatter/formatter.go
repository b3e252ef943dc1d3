// Package formatter turns generator output into final bytes: canonical
// serialization for structured values, verbatim passthrough for raw
// text/byte payloads.
//
// Serialization walks the value tree token by token with a
// jsontext.Encoder, so member order is exactly insertion order — the
// encoder is never handed a Go map it could reorder. Raw payloads are
// never parsed, validated or re-encoded here; producing documents the
// grammar forbids is the whole point.
package formatter

import (
	"bytes"
	"fmt"

	"github.com/go-json-experiment/json/jsontext"

	apperrors "github.com/JonasFriedli/DestructiveJSON/internal/errors"
	"github.com/JonasFriedli/DestructiveJSON/internal/models"
)

// Indent is the indentation unit of the pretty form.
const Indent = "  "

// Marshal serializes a structured value to compact canonical text:
// "," and ":" separators, no extraneous whitespace, non-ASCII preserved
// unescaped.
func Marshal(v models.Value) (string, error) {
	return marshal(v)
}

// MarshalIndent serializes a structured value to the pretty form with
// two-space indentation.
func MarshalIndent(v models.Value) (string, error) {
	return marshal(v, jsontext.WithIndent(Indent))
}

func marshal(v models.Value, opts ...jsontext.Options) (string, error) {
	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf, opts...)
	if err := encodeValue(enc, v); err != nil {
		return "", err
	}
	// The encoder terminates top-level values with a newline; payload
	// text carries none.
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// encodeValue writes one value, recursing into containers.
func encodeValue(enc *jsontext.Encoder, v models.Value) error {
	switch t := v.(type) {
	case nil:
		return enc.WriteToken(jsontext.Null)
	case string:
		return enc.WriteToken(jsontext.String(t))
	case bool:
		return enc.WriteToken(jsontext.Bool(t))
	case int:
		return enc.WriteToken(jsontext.Int(int64(t)))
	case int64:
		return enc.WriteToken(jsontext.Int(t))
	case *models.Object:
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for _, m := range t.Members() {
			if err := enc.WriteToken(jsontext.String(m.Key)); err != nil {
				return err
			}
			if err := encodeValue(enc, m.Value); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndObject)
	case models.Array:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, e := range t {
			if err := encodeValue(enc, e); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	default:
		return apperrors.NewSerializeError(
			fmt.Sprintf("unsupported leaf type %T", v), apperrors.ErrUnsupportedLeaf)
	}
}

// QuoteKey serializes a single object key, with the same escaping the
// canonical form applies. Used by the raw-text duplicate-key builder,
// which assembles its braces and commas by hand.
func QuoteKey(key string) (string, error) {
	quoted, err := jsontext.AppendQuote(nil, key)
	if err != nil {
		return "", apperrors.NewSerializeError(fmt.Sprintf("failed to quote key %q", key), err)
	}
	return string(quoted), nil
}

// Render is the single write-payload operation: it dispatches on the
// payload's representation tag and returns the final output bytes.
// Document payloads are serialized (pretty selects the indented form);
// text and binary payloads pass through untouched.
func Render(p models.Payload, pretty bool) ([]byte, error) {
	switch p.Rep {
	case models.RepDocument:
		var text string
		var err error
		if pretty {
			text, err = MarshalIndent(p.Doc)
		} else {
			text, err = Marshal(p.Doc)
		}
		if err != nil {
			return nil, err
		}
		return []byte(text), nil
	case models.RepText:
		return []byte(p.Text), nil
	case models.RepBinary:
		return p.Bytes, nil
	default:
		return nil, apperrors.NewSerializeError(
			fmt.Sprintf("unknown payload representation %d", p.Rep), nil)
	}
}

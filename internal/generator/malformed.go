package generator

import (
	"github.com/JonasFriedli/DestructiveJSON/internal/models"
)

// MalformedMode selects an entry from the closed catalog of
// syntactically broken documents.
type MalformedMode string

const (
	ModeUnclosed      MalformedMode = "unclosed"
	ModeTrailingComma MalformedMode = "trailing-comma"
	ModeBadToken      MalformedMode = "bad-token"
	ModeBrokenUTF8    MalformedMode = "broken-utf8"
)

// MalformedModes lists the recognized modes, for CLI enums and batch
// iteration.
var MalformedModes = []MalformedMode{ModeUnclosed, ModeTrailingComma, ModeBadToken, ModeBrokenUTF8}

// Malformed returns the fixed literal payload for a mode. Each entry is
// a catalog constant, not parameter-driven; an unrecognized mode falls
// through to the catalog's default entry rather than failing, matching
// the catalog's closed-set-plus-default contract.
//
// The broken-utf8 entry is the one binary payload: it embeds
// invalidUTF8 (DefaultInvalidUTF8 when nil) between quotes with no
// encoding step, since any re-encode would fail on the bytes or quietly
// repair them.
func Malformed(mode MalformedMode, invalidUTF8 []byte) models.Payload {
	switch mode {
	case ModeUnclosed:
		return models.Text(`{"a": 1, "b": [1,2,3]`)
	case ModeTrailingComma:
		return models.Text(`{"a":1,}`)
	case ModeBadToken:
		// NaN inside an otherwise well-formed document. Deliberate test
		// material for parsers that accept the extension.
		return models.Text(`{"a": NaN }`)
	case ModeBrokenUTF8:
		if invalidUTF8 == nil {
			invalidUTF8 = DefaultInvalidUTF8
		}
		b := append([]byte(`{"a": "`), invalidUTF8...)
		b = append(b, '"', '}')
		return models.Binary(b)
	default:
		return models.Text(`{"malformed":`)
	}
}

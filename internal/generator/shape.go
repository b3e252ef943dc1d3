package generator

import (
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/JonasFriedli/DestructiveJSON/internal/config"
	"github.com/JonasFriedli/DestructiveJSON/internal/models"
)

// Shape enumerates the payload catalog. The batch operation and the CLI
// dispatch over this closed set; adding a shape means extending Shapes,
// the switch in All and the command table together.
type Shape int

const (
	ShapeDeepNesting Shape = iota
	ShapeManyKeys
	ShapeLongKey
	ShapeHugeArray
	ShapeDuplicateKeys
	ShapeControlCharKeys
	ShapeDunder
	ShapeMalformed
	ShapeNanInf
	ShapeMixed
)

// Shapes lists every declared shape in catalog order.
var Shapes = []Shape{
	ShapeDeepNesting,
	ShapeManyKeys,
	ShapeLongKey,
	ShapeHugeArray,
	ShapeDuplicateKeys,
	ShapeControlCharKeys,
	ShapeDunder,
	ShapeMalformed,
	ShapeNanInf,
	ShapeMixed,
}

// String returns the shape's catalog name.
func (s Shape) String() string {
	switch s {
	case ShapeDeepNesting:
		return "DeepNesting"
	case ShapeManyKeys:
		return "ManyKeys"
	case ShapeLongKey:
		return "LongKey"
	case ShapeHugeArray:
		return "HugeArray"
	case ShapeDuplicateKeys:
		return "DuplicateKeys"
	case ShapeControlCharKeys:
		return "ControlCharKeys"
	case ShapeDunder:
		return "Dunder"
	case ShapeMalformed:
		return "Malformed"
	case ShapeNanInf:
		return "NanInf"
	case ShapeMixed:
		return "Mixed"
	default:
		return "Unknown"
	}
}

// Filename returns the batch output file name for the shape, e.g.
// "deep_nesting.json" for ShapeDeepNesting.
func (s Shape) Filename() string {
	return strcase.ToSnake(s.String()) + ".json"
}

// MalformedFilename returns the batch file name for one malformed mode,
// e.g. "malformed_unclosed.json". Mode tags are already lowercase, so
// only their dashes need mapping.
func MalformedFilename(mode MalformedMode) string {
	suffix := strings.ReplaceAll(string(mode), "-", "_")
	return strcase.ToSnake(ShapeMalformed.String()) + "_" + suffix + ".json"
}

// Named pairs a generated payload with its shape and batch file name.
type Named struct {
	Shape   Shape
	File    string
	Payload models.Payload
}

// All generates one payload per declared shape using the defaults
// record. Generation is sequential with no state shared between shapes;
// the first failing shape aborts the batch before any later shape is
// generated.
func All(cfg *config.Config) ([]Named, error) {
	d := cfg.Defaults
	invalidUTF8, err := cfg.InvalidUTF8Bytes()
	if err != nil {
		return nil, err
	}
	malformedMode := MalformedMode(d.MalformedMode)

	out := make([]Named, 0, len(Shapes))
	for _, shape := range Shapes {
		var payload models.Payload
		var err error
		file := shape.Filename()

		switch shape {
		case ShapeDeepNesting:
			payload, err = Nested(d.Depth)
		case ShapeManyKeys:
			payload, err = ManyKeys(d.ManyKeys, d.KeyPrefix)
		case ShapeLongKey:
			payload, err = LongKey(d.LongKey)
		case ShapeHugeArray:
			payload, err = HugeArray(d.ArrayLength, int64(0))
		case ShapeDuplicateKeys:
			var values []models.Value
			values, err = DuplicateValues(d.DuplicateKey, d.Duplicates)
			if err == nil {
				payload, err = DuplicateKeys(d.DuplicateKey, values)
			}
		case ShapeControlCharKeys:
			payload = ControlChars()
		case ShapeDunder:
			payload, err = Dunder(DunderMode(d.DunderMode), cfg.Dunder)
		case ShapeMalformed:
			payload = Malformed(malformedMode, invalidUTF8)
			file = MalformedFilename(malformedMode)
		case ShapeNanInf:
			payload = NaNInf()
		case ShapeMixed:
			payload, err = Mixed(d.MixedKeys, d.MixedLongKey, cfg.Dunder)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, Named{Shape: shape, File: file, Payload: payload})
	}
	return out, nil
}

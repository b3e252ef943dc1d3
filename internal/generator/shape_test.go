package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonasFriedli/DestructiveJSON/internal/config"
	"github.com/JonasFriedli/DestructiveJSON/internal/formatter"
	"github.com/JonasFriedli/DestructiveJSON/internal/models"
)

func TestShape_Filename(t *testing.T) {
	tests := []struct {
		shape Shape
		want  string
	}{
		{ShapeDeepNesting, "deep_nesting.json"},
		{ShapeManyKeys, "many_keys.json"},
		{ShapeLongKey, "long_key.json"},
		{ShapeHugeArray, "huge_array.json"},
		{ShapeDuplicateKeys, "duplicate_keys.json"},
		{ShapeControlCharKeys, "control_char_keys.json"},
		{ShapeDunder, "dunder.json"},
		{ShapeMalformed, "malformed.json"},
		{ShapeNanInf, "nan_inf.json"},
		{ShapeMixed, "mixed.json"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.shape.Filename())
	}
}

func TestMalformedFilename(t *testing.T) {
	assert.Equal(t, "malformed_unclosed.json", MalformedFilename(ModeUnclosed))
	assert.Equal(t, "malformed_trailing_comma.json", MalformedFilename(ModeTrailingComma))
}

// smallConfig shrinks the defaults so batch tests stay fast.
func smallConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Defaults.Depth = 3
	cfg.Defaults.ManyKeys = 5
	cfg.Defaults.LongKey = 4
	cfg.Defaults.ArrayLength = 3
	cfg.Defaults.Duplicates = 3
	cfg.Defaults.MixedKeys = 4
	cfg.Defaults.MixedLongKey = 6
	return cfg
}

func TestAll_OnePayloadPerShape(t *testing.T) {
	entries, err := All(smallConfig())
	require.NoError(t, err)
	require.Len(t, entries, len(Shapes))

	seen := make(map[string]struct{})
	for i, e := range entries {
		assert.Equal(t, Shapes[i], e.Shape)
		assert.NotEmpty(t, e.File)
		seen[e.File] = struct{}{}
	}
	assert.Len(t, seen, len(Shapes), "batch file names must be distinct")
}

func TestAll_EachShapeSatisfiesItsProperty(t *testing.T) {
	entries, err := All(smallConfig())
	require.NoError(t, err)

	byShape := make(map[Shape]Named, len(entries))
	for _, e := range entries {
		byShape[e.Shape] = e
	}

	rendered := func(s Shape) string {
		data, err := formatter.Render(byShape[s].Payload, false)
		require.NoError(t, err)
		return string(data)
	}

	assert.Equal(t, `{"n":{"n":{"n":{}}}}`, rendered(ShapeDeepNesting))
	assert.Equal(t, 5, strings.Count(rendered(ShapeManyKeys), `"k0000`))
	assert.Equal(t, `{"kkkk":"v"}`, rendered(ShapeLongKey))
	assert.Equal(t, `{"arr":[0,0,0]}`, rendered(ShapeHugeArray))
	assert.Equal(t, `{"dup":"dup_0","dup":"dup_1","dup":"dup_2"}`, rendered(ShapeDuplicateKeys))
	assert.Equal(t, `{"tab\tkey":"ws","line\nbreak":"ws","return\rkey":"ws"," padded key ":"ws","normal":"ok"}`, rendered(ShapeControlCharKeys))
	assert.Equal(t, `{"__class__":"p","__dict__":{"a":1},"__init__":"s","normal":"ok"}`, rendered(ShapeDunder))
	assert.Equal(t, `{"a": 1, "b": [1,2,3]`, rendered(ShapeMalformed))
	assert.Equal(t, "malformed_unclosed.json", byShape[ShapeMalformed].File)
	assert.Equal(t, `{"x": NaN, "y": Infinity, "z": -Infinity}`, rendered(ShapeNanInf))
	assert.Contains(t, rendered(ShapeMixed), `"__dict__":{"injected":"pwn","num":123}`)
	assert.Contains(t, rendered(ShapeMixed), `"kkkkkk":"v"`)
}

func TestAll_UsesConfiguredCatalogAndBytes(t *testing.T) {
	cfg := smallConfig()
	cfg.Defaults.MalformedMode = "broken-utf8"
	cfg.Malformed.InvalidUTF8 = "c0af"
	cfg.Dunder = config.DunderCatalog{Class: "@c", Dict: "@d", Init: "@i"}

	entries, err := All(cfg)
	require.NoError(t, err)

	var malformed, dunder models.Payload
	for _, e := range entries {
		switch e.Shape {
		case ShapeMalformed:
			malformed = e.Payload
			assert.Equal(t, "malformed_broken_utf8.json", e.File)
		case ShapeDunder:
			dunder = e.Payload
		}
	}

	require.Equal(t, models.RepBinary, malformed.Rep)
	want := append([]byte(`{"a": "`), 0xC0, 0xAF)
	want = append(want, '"', '}')
	assert.Equal(t, want, malformed.Bytes)

	data, err := formatter.Render(dunder, false)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"@d":{"a":1}`)
}

func TestAll_AbortsOnFirstFailure(t *testing.T) {
	cfg := smallConfig()
	cfg.Defaults.Depth = -1

	_, err := All(cfg)
	assert.Error(t, err)
}

func TestAll_InvalidDunderModeFails(t *testing.T) {
	cfg := smallConfig()
	cfg.Defaults.DunderMode = "bogus"

	_, err := All(cfg)
	assert.Error(t, err)
}

package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JonasFriedli/DestructiveJSON/internal/models"
)

func TestMalformed_TextModes(t *testing.T) {
	tests := []struct {
		mode MalformedMode
		want string
	}{
		{ModeUnclosed, `{"a": 1, "b": [1,2,3]`},
		{ModeTrailingComma, `{"a":1,}`},
		{ModeBadToken, `{"a": NaN }`},
		{MalformedMode("no-such-mode"), `{"malformed":`},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			payload := Malformed(tt.mode, nil)
			assert.Equal(t, models.RepText, payload.Rep)
			assert.Equal(t, tt.want, payload.Text)
		})
	}
}

func TestMalformed_BrokenUTF8(t *testing.T) {
	payload := Malformed(ModeBrokenUTF8, nil)

	assert.Equal(t, models.RepBinary, payload.Rep)
	want := append([]byte(`{"a": "`), 0xFF, 0xFF)
	want = append(want, '"', '}')
	assert.Equal(t, want, payload.Bytes)
}

func TestMalformed_BrokenUTF8CustomSequence(t *testing.T) {
	// Overlong-encoding bytes instead of bare continuation bytes.
	payload := Malformed(ModeBrokenUTF8, []byte{0xC0, 0xAF})

	want := append([]byte(`{"a": "`), 0xC0, 0xAF)
	want = append(want, '"', '}')
	assert.Equal(t, want, payload.Bytes)
}

func TestMalformedModes_Catalog(t *testing.T) {
	assert.Equal(t, []MalformedMode{ModeUnclosed, ModeTrailingComma, ModeBadToken, ModeBrokenUTF8}, MalformedModes)
}

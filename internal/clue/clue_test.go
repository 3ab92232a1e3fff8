package clue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "plain text", text: "Bright star in the sky", want: "Bright star in the sky"},
		{name: "markup", text: "<p>Bright <b>star</b> in the sky</p>", want: "Bright star in the sky"},
		{name: "entities", text: "Salt &amp; pepper shaker", want: "Salt & pepper shaker"},
		{name: "quotes and prefix", text: "Clue: \"Bright star\"\n", want: "Bright star"},
		{name: "script content dropped", text: "<script>alert(1)</script>Warm drink", want: "Warm drink"},
		{name: "whitespace collapsed", text: "  Warm \n\t drink  ", want: "Warm drink"},
		{name: "empty", text: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.text))
		})
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		word    string
		want    string
		wantErr bool
	}{
		{name: "valid", text: "<i>Hot drink</i>", word: "TEA", want: "Hot drink"},
		{name: "empty", text: "<br/>", word: "TEA", wantErr: true},
		{name: "contains the answer", text: "A cup of tea", word: "TEA", wantErr: true},
		{name: "too long", text: strings.Repeat("word ", 20), word: "TEA", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Clean(tt.text, tt.word)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoClue)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

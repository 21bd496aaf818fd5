package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{"first wins", []string{"a", "b", "c"}, "a"},
		{"skips empty", []string{"", "b", "c"}, "b"},
		{"skips whitespace only", []string{"   ", "\t\n", "c"}, "c"},
		{"all empty", []string{"", "   ", ""}, ""},
		{"no candidates", nil, ""},
		{"keeps survivor verbatim", []string{"", " padded "}, " padded "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, firstNonEmpty(tt.candidates...))
		})
	}
}

func TestFirstNonEmptyIsDeterministic(t *testing.T) {
	in := []string{"", "x", "y"}
	first := firstNonEmpty(in...)
	assert.Equal(t, first, firstNonEmpty(in...))
	// The result is always one of the non-blank inputs, never synthesized.
	assert.Contains(t, in, first)
}

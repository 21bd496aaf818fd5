package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMovieRating(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"rating label", "Rating: PG-13", "PG-13"},
		{"rating label loose token", "Rating: pg13", "PG-13"},
		{"rated label", "Rated: R", "R"},
		{"rated prose form", "DUNE PART TWO Rated PG-13", "PG-13"},
		{"parenthesized", "DUNE PART TWO (PG-13)", "PG-13"},
		{"parenthesized single letter", "OPPENHEIMER (R)", "R"},
		{"bare multi letter token", "PG-13 1HR 46MIN", "PG-13"},
		{"bare nc17", "NC-17", "NC-17"},
		{"rating line with bare letter", "MPAA rating R", "R"},
		{"unrecognized token", "Rating: XYZ", ""},
		{"bare single letter is not a rating", "ROW R SEAT 4", ""},
		{"no rating", "DUNE PART TWO\n12/03/24", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractMovieRating(tt.text))
		})
	}
}

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMovieTitle(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"labeled", "Movie: Inside Out 2", "Inside Out 2"},
		{"first content line", "DUNE PART TWO\n12/03/24\n7:30 PM", "DUNE PART TWO"},
		{"chain line skipped", "AMC Empire 25\nDUNE PART TWO", "DUNE PART TWO"},
		{"boilerplate skipped", "www.fandango.com\nOPPENHEIMER", "OPPENHEIMER"},
		{"field lines skipped", "Seat A12\nTicket # 99881234\nTHE BATMAN", "THE BATMAN"},
		{"time line skipped", "7:30 PM DOLBY\nWICKED", "WICKED"},
		{"rating trailer stripped", "Regal Cinemas\nDUNE PART TWO (PG-13)", "DUNE PART TWO"},
		{"rated trailer stripped", "MISSION IMPOSSIBLE RATED PG-13", "MISSION IMPOSSIBLE"},
		{"nothing but field lines", "12/03/24\n$9.00\nROW A12", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractMovieTitle(tt.text))
		})
	}
}

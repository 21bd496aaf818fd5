package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stubTranscript = `AMC Empire 25
DUNE PART TWO (PG-13)
12/03/24 7:30 PM
AUD 9 ROW A12
ADULT $12.50
Ticket # TKT-2024-0913`

func TestBuildFallbackOnly(t *testing.T) {
	got := Build(stubTranscript, nil)

	assert.Equal(t, "DUNE PART TWO", got.MovieTitle)
	assert.Equal(t, "AMC Empire 25", got.TheaterName)
	assert.Equal(t, "AMC", got.TheaterChain)
	assert.Equal(t, "12/03/24", got.ShowDate)
	assert.Equal(t, "7:30 PM", got.ShowTime)
	assert.Equal(t, "$12.50", got.Price)
	assert.Equal(t, "A-12", got.SeatNumber)
	assert.Equal(t, "PG-13", got.MovieRating)
	assert.Equal(t, "9", got.TheaterRoom)
	assert.Equal(t, "TKT-2024-0913", got.TicketNumber)
}

func TestBuildVisionWins(t *testing.T) {
	vision := &Fields{MovieRating: "R", MovieTitle: "  "}
	got := Build(stubTranscript, vision)

	// A populated vision field is authoritative over the transcript.
	assert.Equal(t, "R", got.MovieRating)
	// A blank vision field falls through to the extractor.
	assert.Equal(t, "DUNE PART TWO", got.MovieTitle)
	assert.Equal(t, "A-12", got.SeatNumber)
}

func TestBuildNilVisionMatchesExtractors(t *testing.T) {
	got := Build(stubTranscript, nil)

	assert.Equal(t, ExtractMovieTitle(stubTranscript), got.MovieTitle)
	assert.Equal(t, ExtractShowDate(stubTranscript), got.ShowDate)
	assert.Equal(t, ExtractPrice(stubTranscript), got.Price)
	assert.Equal(t, ExtractTicketNumber(stubTranscript), got.TicketNumber)
}

func TestBuildIsolatesPanickingExtractor(t *testing.T) {
	var idx = -1
	for i, b := range fieldBindings {
		if b.name == "show_date" {
			idx = i
			break
		}
	}
	require.NotEqual(t, -1, idx)

	orig := fieldBindings[idx].fn
	fieldBindings[idx].fn = func(string) string { panic("bad pattern") }
	defer func() { fieldBindings[idx].fn = orig }()

	got := Build(stubTranscript, nil)

	// The faulty field comes back absent; every other field is untouched.
	assert.Equal(t, "", got.ShowDate)
	assert.Equal(t, "DUNE PART TWO", got.MovieTitle)
	assert.Equal(t, "7:30 PM", got.ShowTime)
	assert.Equal(t, "$12.50", got.Price)
}

package extract

import (
	"regexp"
	"strings"

	"github.com/marcus-hale/ticket-stubs-tracker/constants"
)

var (
	// Direct vocabulary match. Bare single letters (G, R) only count inside
	// parentheses or after "Rated"; they are too common as row letters and
	// initials to stand alone. Multi-letter tokens may appear bare.
	reRatingDirect = regexp.MustCompile(`(?i)(?:\bRATED\s+(PG-?13|NC-?17|PG|G|R)\b|\((PG-?13|NC-?17|PG|G|R)\)|\b(PG-?13|NC-?17|PG)\b)`)
	// Loose token match for lines that already talk about a rating.
	reRatingLoose = regexp.MustCompile(`(?i)\b(PG-?13|NC-?17|PG|G|R)\b`)
)

// ExtractMovieRating finds the MPAA rating. All strategies feed the shared
// canonicalization in constants; anything outside the fixed vocabulary is
// dropped rather than guessed.
func ExtractMovieRating(text string) string {
	return runStrategies(text, []strategy{
		ratingLabeled,
		ratingVocabulary,
		ratingLineScan,
	})
}

func ratingLabeled(text string) string {
	v := scanLabeledLines(text, []string{"rating:", "rated:"}, ",|", nil)
	if v == "" {
		return ""
	}
	return standardizeRating(strings.Fields(v)[0])
}

func ratingVocabulary(text string) string {
	for _, line := range splitLines(text) {
		m := reRatingDirect.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		for _, g := range m[1:] {
			if g != "" {
				if r := standardizeRating(g); r != "" {
					return r
				}
			}
		}
	}
	return ""
}

// ratingLineScan looks only at lines that mention "rating"; in that context
// even a bare G or R is safe to read as the vocabulary token.
func ratingLineScan(text string) string {
	for _, line := range splitLines(text) {
		if !strings.Contains(strings.ToLower(line), "rating") {
			continue
		}
		if m := reRatingLoose.FindString(line); m != "" {
			if r := standardizeRating(m); r != "" {
				return r
			}
		}
	}
	return ""
}

// standardizeRating maps loose text onto the canonical vocabulary, "" when
// unrecognized.
func standardizeRating(tok string) string {
	r, ok := constants.CanonicalizeRating(tok)
	if !ok {
		return ""
	}
	return string(r)
}

package extract

import (
	"regexp"
	"strings"
)

var (
	reRoomInline = regexp.MustCompile(`(?i)\b(?:AUD(?:ITORIUM)?|SCREEN|HALL|CINEMA)\b\s*#?\s*(\d{1,2}|[A-Z])\b`)
	reRoomShape  = regexp.MustCompile(`^(?:\d{1,2}|[A-Za-z])$`)

	theaterWords = []string{"theatre", "theater", "cinemas", "cinema", "multiplex", "drafthouse"}
)

// ExtractTheaterName finds the venue name (as opposed to the chain brand):
// a labeled value, a branded line that carries more than the brand itself
// ("AMC Empire 25"), or a venue-word line near the header or footer.
func ExtractTheaterName(text string) string {
	return runStrategies(text, []strategy{
		theaterLabeled,
		theaterBrandedLine,
		theaterVenueWordLine,
	})
}

func theaterLabeled(text string) string {
	return scanLabeledLines(text, []string{"theater:", "theatre:", "cinema:", "location:", "venue:"}, ",|", nil)
}

func theaterBrandedLine(text string) string {
	for _, line := range splitLines(text) {
		if isBoilerplate(line) {
			continue
		}
		chain := matchKnownChain(line)
		if chain == "" {
			continue
		}
		v := cleanValue(line)
		// The line must say more than the brand alone to count as a venue.
		if len(v) > len(chain)+2 {
			return v
		}
	}
	return ""
}

func theaterVenueWordLine(text string) string {
	for _, line := range headTailLines(text, 3) {
		if isBoilerplate(line) {
			continue
		}
		lower := strings.ToLower(line)
		for _, w := range theaterWords {
			if strings.Contains(lower, w) {
				return cleanValue(line)
			}
		}
	}
	return ""
}

// ExtractTheaterRoom finds the auditorium/screen designation and returns the
// bare identifier ("7", "G").
func ExtractTheaterRoom(text string) string {
	return runStrategies(text, []strategy{
		roomLabeled,
		roomInlinePattern,
	})
}

func roomLabeled(text string) string {
	v := scanLabeledLines(text, []string{"auditorium", "screen:", "screen #", "room:", "hall:", "theater #", "theatre #"}, ",|", nil)
	if v == "" {
		return ""
	}
	// Keep only a plausible designation; "auditorium closes 15 min after"
	// style lines must not leak through.
	token := strings.Fields(v)[0]
	if !reRoomShape.MatchString(token) {
		return ""
	}
	return strings.ToUpper(token)
}

func roomInlinePattern(text string) string {
	for _, line := range splitLines(text) {
		if m := reRoomInline.FindStringSubmatch(line); m != nil {
			return strings.ToUpper(m[1])
		}
	}
	return ""
}

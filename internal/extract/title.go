package extract

import (
	"regexp"
)

var (
	reTitleDigitsOnly = regexp.MustCompile(`^[\d\s/:#.-]+$`)
	reTitleFieldLead  = regexp.MustCompile(`(?i)^(?:date|time|show|seat|row|aud|auditorium|screen|price|total|admission|rating|rated|ticket|order|conf|confirmation|reference|transaction|cashier|terminal)\b`)
	reTitleLetters    = regexp.MustCompile(`[A-Za-z]{3,}`)
	reRatingTrailer   = regexp.MustCompile(`(?i)\s*(?:\(\s*(?:RATED\s+)?(?:PG-?13|NC-?17|PG|G|R)\s*\)|\s+RATED\s+(?:PG-?13|NC-?17|PG|G|R))\s*$`)
)

// ExtractMovieTitle finds the film title: a labeled value when the stub has
// one, otherwise the first content line that is not chrome, branding, or
// some other field's value. The heuristic is necessarily loose — titles are
// the one field with no shape at all.
func ExtractMovieTitle(text string) string {
	return runStrategies(text, []strategy{
		titleLabeled,
		titleFirstContentLine,
	})
}

func titleLabeled(text string) string {
	return scanLabeledLines(text, []string{"movie:", "film:", "feature:", "title:"}, "|", nil)
}

func titleFirstContentLine(text string) string {
	for _, line := range splitLines(text) {
		if isBoilerplate(line) {
			continue
		}
		if !reTitleLetters.MatchString(line) || reTitleDigitsOnly.MatchString(line) {
			continue
		}
		if reTitleFieldLead.MatchString(line) {
			continue
		}
		if matchKnownChain(line) != "" {
			continue
		}
		// Other fields' inline values masquerade as content lines.
		if reDateSlash.MatchString(line) || reDateDash.MatchString(line) || reDateMonthName.MatchString(line) {
			continue
		}
		if reTime12Hour.MatchString(line) || rePriceDollar.MatchString(line) {
			continue
		}
		if reSeatRowCompact.MatchString(line) || reRowSeatPair.MatchString(line) {
			continue
		}
		// Stubs often print the rating on the title line: "DUNE (PG-13)".
		line = reRatingTrailer.ReplaceAllString(line, "")
		if v := cleanValue(line); len(v) >= 3 {
			return v
		}
	}
	return ""
}

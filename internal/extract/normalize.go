package extract

import (
	"regexp"
	"strings"
)

var (
	reUnsafeChars = regexp.MustCompile(`[^\w\s&:'.\-]`)
	reWhitespace  = regexp.MustCompile(`\s+`)
)

// cleanValue strips characters outside the allow-list (word characters,
// whitespace, &:'.-), collapses whitespace runs to single spaces and trims
// the ends. Every candidate passes through here before it is returned, so
// matching can be sloppy but output stays tidy.
func cleanValue(s string) string {
	s = reUnsafeChars.ReplaceAllString(s, "")
	s = reWhitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

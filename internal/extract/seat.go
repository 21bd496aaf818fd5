package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	reSeatRowCompact = regexp.MustCompile(`(?i)\bROW\s*([A-Z])\s*-?\s*(\d{1,2})\b`)
	reSeatHyphenated = regexp.MustCompile(`\b([A-Z])-(\d{1,2})\b`)
	reSeatWord       = regexp.MustCompile(`(?i)\bSEAT\s+([A-Z]?)(\d{1,3})\b`)
	reRowSeatPair    = regexp.MustCompile(`(?i)\brow\s+([A-Z0-9]{1,3})\s*,?\s*seat\s+([A-Z0-9]{1,3})\b`)
	// Monetary context; a "seat" match on such a line is almost always a
	// price fragment, not a seat.
	rePriceContext = regexp.MustCompile(`(?i)[$£€]|\b(?:price|total|amount|cash|change|paid)\b`)
)

// ExtractSeatNumber finds the seat assignment. Output is "A-12" (row letter,
// zero-padded seat) when a row/number pattern matched, the labeled value for
// "seat:" scans, or "Row X, Seat Y" for the co-occurrence form.
func ExtractSeatNumber(text string) string {
	return runStrategies(text, []strategy{
		seatRowNumberPattern,
		seatLabeled,
		seatRowPair,
	})
}

func seatRowNumberPattern(text string) string {
	for _, line := range splitLines(text) {
		if rePriceContext.MatchString(line) {
			continue
		}
		// Lines carrying the long "row X, seat Y" form belong to the
		// dedicated pattern below, which keeps both labels.
		if reRowSeatPair.MatchString(line) {
			continue
		}
		if m := reSeatRowCompact.FindStringSubmatch(line); m != nil {
			return formatRowSeat(m[1], m[2])
		}
		if m := reSeatHyphenated.FindStringSubmatch(line); m != nil {
			return formatRowSeat(m[1], m[2])
		}
		if m := reSeatWord.FindStringSubmatch(line); m != nil {
			if m[1] != "" {
				return formatRowSeat(m[1], m[2])
			}
			if n, err := strconv.Atoi(m[2]); err == nil {
				return fmt.Sprintf("%02d", n)
			}
		}
	}
	return ""
}

func seatLabeled(text string) string {
	// Value runs to the next delimiter or a competing "row:" label.
	return scanLabeledLines(text, []string{"seat:"}, ",|-", []string{"row:"})
}

func seatRowPair(text string) string {
	for _, line := range splitLines(text) {
		if m := reRowSeatPair.FindStringSubmatch(line); m != nil {
			return fmt.Sprintf("Row %s, Seat %s", strings.ToUpper(m[1]), strings.ToUpper(m[2]))
		}
	}
	return ""
}

// formatRowSeat renders the canonical "A-12" form with a zero-padded seat.
func formatRowSeat(row, seat string) string {
	n, err := strconv.Atoi(seat)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s-%02d", strings.ToUpper(row), n)
}

package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reDateSlash = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2,4})\b`)
	reDateDash  = regexp.MustCompile(`\b(\d{1,2})-(\d{1,2})-(\d{2,4})\b`)
	// "Dec 3", "December 3rd, 2024" — year optional on stubs.
	reDateMonthName = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`)
)

var monthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// ExtractShowDate finds the show date in a transcript and returns it in the
// canonical MM/DD/YY form, or "" when no date-like substring exists. Each
// strategy scans line by line; the first matching line wins.
func ExtractShowDate(text string) string {
	return runStrategies(text, []strategy{
		dateSlashFormat,
		dateDashFormat,
		dateMonthNameFormat,
	})
}

func dateSlashFormat(text string) string {
	for _, line := range splitLines(text) {
		if m := reDateSlash.FindStringSubmatch(line); m != nil {
			if d := canonicalDate(m[1], m[2], m[3]); d != "" {
				return d
			}
		}
	}
	return ""
}

func dateDashFormat(text string) string {
	for _, line := range splitLines(text) {
		if m := reDateDash.FindStringSubmatch(line); m != nil {
			if d := canonicalDate(m[1], m[2], m[3]); d != "" {
				return d
			}
		}
	}
	return ""
}

func dateMonthNameFormat(text string) string {
	for _, line := range splitLines(text) {
		m := reDateMonthName.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		month := monthNumbers[strings.ToLower(m[1])]
		year := m[3]
		if year == "" {
			// Stubs frequently print "SAT DEC 3" with no year; assume the
			// current one.
			year = strconv.Itoa(time.Now().Year())
		}
		if d := canonicalDate(strconv.Itoa(month), m[2], year); d != "" {
			return d
		}
	}
	return ""
}

// canonicalDate zero-pads month and day, truncates the year to its last two
// digits and rejects out-of-range values. Idempotent on already-canonical
// MM/DD/YY input.
func canonicalDate(mm, dd, yy string) string {
	month, err := strconv.Atoi(mm)
	if err != nil || month < 1 || month > 12 {
		return ""
	}
	day, err := strconv.Atoi(dd)
	if err != nil || day < 1 || day > 31 {
		return ""
	}
	year, err := strconv.Atoi(yy)
	if err != nil || year < 0 {
		return ""
	}
	return fmt.Sprintf("%02d/%02d/%02d", month, day, year%100)
}

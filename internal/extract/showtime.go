package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	reTimeLabeled = regexp.MustCompile(`(?i)\b(?:show\s*time|showing|time)\s*[:#]?\s*(\d{1,2}):(\d{2})\s*([AP])?\.?M?\.?\b`)
	reTime12Hour  = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\s*([AaPp])\.?[Mm]\.?\b`)
	reTime24Hour  = regexp.MustCompile(`\b([01]?\d|2[0-3]):([0-5]\d)\b`)
)

// ExtractShowTime finds the showtime and returns it in the canonical
// "H:MM AM|PM" form, or "" when nothing time-like appears.
func ExtractShowTime(text string) string {
	return runStrategies(text, []strategy{
		timeLabeled,
		time12HourScan,
		time24HourScan,
	})
}

func timeLabeled(text string) string {
	for _, line := range splitLines(text) {
		if m := reTimeLabeled.FindStringSubmatch(line); m != nil {
			if t := canonicalTime(m[1], m[2], m[3]); t != "" {
				return t
			}
		}
	}
	return ""
}

func time12HourScan(text string) string {
	for _, line := range splitLines(text) {
		if m := reTime12Hour.FindStringSubmatch(line); m != nil {
			if t := canonicalTime(m[1], m[2], m[3]); t != "" {
				return t
			}
		}
	}
	return ""
}

func time24HourScan(text string) string {
	for _, line := range splitLines(text) {
		if m := reTime24Hour.FindStringSubmatch(line); m != nil {
			if t := canonicalTime(m[1], m[2], ""); t != "" {
				return t
			}
		}
	}
	return ""
}

// canonicalTime renders a 12-hour "H:MM AM|PM" string. Hours 13-23 are
// converted from 24-hour form; a missing meridiem on 1-11 is read as PM,
// the plausible slot for a screening.
func canonicalTime(hh, mm, meridiem string) string {
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return ""
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return ""
	}

	suffix := strings.ToUpper(meridiem)
	switch {
	case suffix == "A":
		suffix = "AM"
	case suffix == "P":
		suffix = "PM"
	case hour == 0:
		hour = 12
		suffix = "AM"
	case hour >= 13:
		hour -= 12
		suffix = "PM"
	default:
		suffix = "PM"
	}
	if hour == 0 || hour > 12 {
		return ""
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, suffix)
}

package extract

import (
	"strings"

	"github.com/marcus-hale/ticket-stubs-tracker/constants"
)

// splitLines returns the transcript's non-blank lines, trimmed, in order.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// isBoilerplate classifies a line as ticket chrome rather than content:
// URL/barcode noise, or a short line made of stock stub keywords. Shared by
// the chain and theater strategies as a skip filter.
func isBoilerplate(line string) bool {
	lower := strings.ToLower(line)
	if strings.Contains(lower, "http") || strings.Contains(lower, "www.") || strings.Contains(lower, ".com") {
		return true
	}
	if len(line) < 30 {
		for _, kw := range constants.BoilerplateKeywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

// headTailLines returns up to the first n and last n non-blank lines, the
// usual home of branding on a stub.
func headTailLines(text string, n int) []string {
	lines := splitLines(text)
	if len(lines) <= 2*n {
		return lines
	}
	out := make([]string, 0, 2*n)
	out = append(out, lines[:n]...)
	out = append(out, lines[len(lines)-n:]...)
	return out
}

// labelValue returns the text following a "<label>" prefix on the line, cut
// at the first delimiter rune or competing label, cleaned. Labels must
// include their own separator ("seat:", "ticket #"). Matching is
// case-insensitive; the returned value keeps its original casing.
func labelValue(line string, labels []string, delims string, stopLabels []string) string {
	lower := strings.ToLower(line)
	for _, label := range labels {
		i := strings.Index(lower, label)
		if i < 0 {
			continue
		}
		rest := line[i+len(label):]
		rest = strings.TrimLeft(rest, ":# \t")
		if delims != "" {
			if j := strings.IndexAny(rest, delims); j >= 0 {
				rest = rest[:j]
			}
		}
		restLower := strings.ToLower(rest)
		for _, stop := range stopLabels {
			if j := strings.Index(restLower, stop); j >= 0 {
				rest = rest[:j]
				restLower = restLower[:j]
			}
		}
		if v := cleanValue(rest); v != "" {
			return v
		}
	}
	return ""
}

// scanLabeledLines applies labelValue across the transcript and returns the
// first hit.
func scanLabeledLines(text string, labels []string, delims string, stopLabels []string) string {
	for _, line := range splitLines(text) {
		if v := labelValue(line, labels, delims, stopLabels); v != "" {
			return v
		}
	}
	return ""
}

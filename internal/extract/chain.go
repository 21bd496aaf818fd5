package extract

import (
	"strings"

	"github.com/marcus-hale/ticket-stubs-tracker/constants"
)

// ExtractTheaterChain identifies the operating chain from the curated brand
// dictionary. All strategies share the boilerplate classifier as a filter so
// stub chrome ("YOUR TICKET", barcode captions) never yields a brand.
func ExtractTheaterChain(text string) string {
	return runStrategies(text, []strategy{
		chainDictionary,
		chainLabeled,
		chainHeaderFooter,
	})
}

func chainDictionary(text string) string {
	for _, line := range splitLines(text) {
		if isBoilerplate(line) {
			continue
		}
		if c := matchKnownChain(line); c != "" {
			return c
		}
	}
	return ""
}

func chainLabeled(text string) string {
	for _, line := range splitLines(text) {
		if isBoilerplate(line) {
			continue
		}
		v := labelValue(line, []string{"chain:", "network:", "brand:"}, ",|", nil)
		if v == "" {
			continue
		}
		// Prefer the canonical brand string when the labeled value is a
		// known chain; otherwise return the cleaned value as written.
		if c := matchKnownChain(v); c != "" {
			return c
		}
		return v
	}
	return ""
}

// chainHeaderFooter restricts the dictionary to the first and last three
// non-blank lines, where branding usually sits even on cluttered stubs.
func chainHeaderFooter(text string) string {
	for _, line := range headTailLines(text, 3) {
		if isBoilerplate(line) {
			continue
		}
		if c := matchKnownChain(line); c != "" {
			return c
		}
	}
	return ""
}

// matchKnownChain returns the canonical brand string for the first dictionary
// entry found in the line, or "". KnownChains orders longer brand strings
// first so "AMC Theatres" wins over "AMC".
func matchKnownChain(line string) string {
	upper := strings.ToUpper(line)
	for _, chain := range constants.KnownChains {
		if strings.Contains(upper, strings.ToUpper(chain)) {
			return chain
		}
	}
	return ""
}

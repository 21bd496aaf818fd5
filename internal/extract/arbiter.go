package extract

import "strings"

// firstNonEmpty is the candidate arbiter shared by every extractor: it skips
// empty and whitespace-only candidates and returns the first survivor
// verbatim, or "" when none remain.
//
// First-match-wins is a deliberate simplification over confidence scoring;
// extraction output is order-dependent, so changing a strategy list reorders
// externally observable results.
func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return ""
}

package extract

import (
	"regexp"
	"strings"
)

var (
	// Accepted ticket-number shape: 6-15 alphanumeric/hyphen characters.
	reTicketShape = regexp.MustCompile(`^[A-Za-z0-9-]{6,15}$`)
	// Candidate tokens on keyword lines: hyphenated triplets ("TKT-2024-0913")
	// or alphanumeric runs containing at least one digit.
	reTicketToken   = regexp.MustCompile(`\b(?:[A-Za-z0-9]+-[A-Za-z0-9]+-[A-Za-z0-9]+|[A-Za-z]*\d[A-Za-z0-9]*)\b`)
	reTicketKeyword = regexp.MustCompile(`(?i)\b(?:ticket|confirmation|order|reference|transaction)\b`)
	reBarcodeHint   = regexp.MustCompile(`(?i)\b(?:barcode|scan)\b`)

	ticketNumberLabels = []string{
		"ticket #", "ticket#", "ticket no", "ticket number",
		"confirmation no", "confirmation #", "confirmation number",
		"order #", "order no", "order number",
		"conf #", "conf no",
		"reference #", "reference no",
		"transaction #", "transaction id",
	}
)

// ExtractTicketNumber finds the ticket/confirmation identifier. Every
// candidate must pass the 6-15 character shape check before it reaches the
// arbiter; a labeled match that fails the check is discarded, not returned.
func ExtractTicketNumber(text string) string {
	return runStrategies(text, []strategy{
		ticketNumberLabeled,
		ticketNumberKeywordLine,
		ticketNumberNearBarcode,
	})
}

func ticketNumberLabeled(text string) string {
	for _, line := range splitLines(text) {
		v := labelValue(line, ticketNumberLabels, ",|", nil)
		if v == "" {
			continue
		}
		token := strings.Fields(v)[0]
		if reTicketShape.MatchString(token) && strings.ContainsAny(token, "0123456789") {
			return strings.ToUpper(token)
		}
	}
	return ""
}

func ticketNumberKeywordLine(text string) string {
	for _, line := range splitLines(text) {
		if !reTicketKeyword.MatchString(line) {
			continue
		}
		if tok := ticketTokenIn(line); tok != "" {
			return tok
		}
	}
	return ""
}

// ticketNumberNearBarcode searches the two lines on either side of a
// barcode/scan mention for an acceptable token.
func ticketNumberNearBarcode(text string) string {
	lines := splitLines(text)
	for i, line := range lines {
		if !reBarcodeHint.MatchString(line) {
			continue
		}
		lo, hi := i-2, i+2
		if lo < 0 {
			lo = 0
		}
		if hi > len(lines)-1 {
			hi = len(lines) - 1
		}
		for j := lo; j <= hi; j++ {
			if tok := ticketTokenIn(lines[j]); tok != "" {
				return tok
			}
		}
	}
	return ""
}

// ticketTokenIn returns the first token on the line passing the shape check.
// Tokens must carry at least one digit; plain words never qualify.
func ticketTokenIn(line string) string {
	for _, tok := range reTicketToken.FindAllString(line, -1) {
		if !reTicketShape.MatchString(tok) {
			continue
		}
		if !strings.ContainsAny(tok, "0123456789") {
			continue
		}
		return strings.ToUpper(tok)
	}
	return ""
}

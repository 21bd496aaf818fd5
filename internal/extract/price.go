package extract

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	rePriceLabeled = regexp.MustCompile(`(?i)\b(?:price|total|amount|admission)\b\s*[:#]?\s*[$£€]?\s*(\d{1,3}(?:\.\d{2})?)\b`)
	rePriceDollar  = regexp.MustCompile(`[$]\s*(\d{1,3}(?:\.\d{2})?)\b`)
)

// ExtractPrice finds the admission price and returns the canonical "$D.DD"
// form. Currency is normalized to a dollar sign; implausible amounts
// (zero, or three figures and up per seat) are discarded.
func ExtractPrice(text string) string {
	return runStrategies(text, []strategy{
		priceLabeled,
		priceDollarScan,
	})
}

func priceLabeled(text string) string {
	for _, line := range splitLines(text) {
		if m := rePriceLabeled.FindStringSubmatch(line); m != nil {
			if p := canonicalPrice(m[1]); p != "" {
				return p
			}
		}
	}
	return ""
}

func priceDollarScan(text string) string {
	for _, line := range splitLines(text) {
		if m := rePriceDollar.FindStringSubmatch(line); m != nil {
			if p := canonicalPrice(m[1]); p != "" {
				return p
			}
		}
	}
	return ""
}

func canonicalPrice(amount string) string {
	f, err := strconv.ParseFloat(amount, 64)
	if err != nil || f <= 0 || f >= 500 {
		return ""
	}
	return fmt.Sprintf("$%.2f", f)
}

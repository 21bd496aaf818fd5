package constants

import "strings"

// Rating is the canonical MPAA rating vocabulary. Anything outside this set
// is treated as "not determined" rather than guessed.
type Rating string

const (
	RatingG    Rating = "G"
	RatingPG   Rating = "PG"
	RatingPG13 Rating = "PG-13"
	RatingR    Rating = "R"
	RatingNC17 Rating = "NC-17"
)

var allRatings = []Rating{RatingG, RatingPG, RatingPG13, RatingR, RatingNC17}

func RatingsAsStringSlice() []string {
	result := make([]string, len(allRatings))
	for i, r := range allRatings {
		result[i] = string(r)
	}
	return result
}

// CanonicalizeRating maps loose OCR text ("pg13", "(PG-13)", "Rated R") onto
// the fixed vocabulary. Unrecognized input returns ok=false.
func CanonicalizeRating(input string) (Rating, bool) {
	if input == "" {
		return "", false
	}

	normalized := strings.ToUpper(strings.TrimSpace(input))
	normalized = strings.Trim(normalized, "()[]{}.,:;")
	normalized = strings.TrimPrefix(normalized, "RATED")
	normalized = strings.TrimSpace(normalized)
	normalized = strings.ReplaceAll(normalized, " ", "")

	switch normalized {
	case "G":
		return RatingG, true
	case "PG":
		return RatingPG, true
	case "PG-13", "PG13":
		return RatingPG13, true
	case "R":
		return RatingR, true
	case "NC-17", "NC17":
		return RatingNC17, true
	}
	return "", false
}

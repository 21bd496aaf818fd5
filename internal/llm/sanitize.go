package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/marcus-hale/ticket-stubs-tracker/constants"
)

var (
	reShowDate     = regexp.MustCompile(`^\d{2}/\d{2}/\d{2}$`)
	reShowTime     = regexp.MustCompile(`^\d{1,2}:\d{2} (AM|PM)$`)
	rePriceShape   = regexp.MustCompile(`^\$\d+\.\d{2}$`)
	reTicketNumber = regexp.MustCompile(`^[A-Za-z0-9-]{6,15}$`)
)

// SanitizeFields normalizes a model response so the document can still
// validate against the strict schema:
//   - drops null/empty values and unknown keys
//   - canonicalizes the rating against the vocabulary (or drops it)
//   - coerces a numeric price to "$D.DD"
//   - drops shaped fields (date, time, price, ticket number) that miss
//     their canonical pattern rather than failing the whole document
func SanitizeFields(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 4)
	drop := func(k, why string) {
		delete(m, k)
		dropped = append(dropped, k+"("+why+")")
	}

	// price arrives as a bare number more often than not
	if v, ok := m["price"]; ok {
		switch t := v.(type) {
		case float64:
			m["price"] = fmt.Sprintf("$%.2f", t)
		case string:
			s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(t), "$"))
			if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
				m["price"] = fmt.Sprintf("$%.2f", f)
			} else {
				drop("price", "unparseable")
			}
		default:
			drop("price", "type")
		}
	}

	if v, ok := m["movie_rating"].(string); ok {
		if r, found := constants.CanonicalizeRating(v); found {
			m["movie_rating"] = string(r)
		} else {
			drop("movie_rating", "vocabulary")
		}
	}

	// trim every string; drop empties and non-strings
	for k, v := range m {
		if k == "confidence" {
			continue
		}
		s, ok := v.(string)
		if !ok {
			drop(k, "type")
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			drop(k, "empty")
			continue
		}
		m[k] = s
	}

	// shaped fields must hit their canonical pattern
	shapes := map[string]*regexp.Regexp{
		"show_date":     reShowDate,
		"show_time":     reShowTime,
		"price":         rePriceShape,
		"ticket_number": reTicketNumber,
	}
	for k, re := range shapes {
		if v, ok := m[k].(string); ok && !re.MatchString(v) {
			drop(k, "shape")
		}
	}

	// remove unknown keys (strict additionalProperties = false friendliness)
	allowed := map[string]struct{}{
		"movie_title": {}, "theater_name": {}, "theater_chain": {},
		"show_date": {}, "show_time": {}, "price": {}, "seat_number": {},
		"movie_rating": {}, "theater_room": {}, "ticket_number": {},
		"confidence": {},
	}
	for k := range m {
		if _, ok := allowed[k]; !ok {
			drop(k, "unknown")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	return out, dropped, nil
}

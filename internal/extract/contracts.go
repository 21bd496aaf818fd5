// Package extract is the deterministic field-extraction fallback for ticket
// stubs: a set of independent per-field extractors that work on raw OCR text
// with no layout schema. Each extractor runs an ordered list of pattern
// strategies and arbitrates among their candidates; the orchestrator merges
// the results with the vision channel's output, which wins whenever it
// produced a value.
//
// Everything in this package is a pure function over its input. The only
// shared state is the compiled pattern set, which is immutable after init,
// so concurrent extractions need no locking.
package extract

// Fields is the structured record produced for one ticket stub. An empty
// string means "not determined" — the core never errors on absence.
type Fields struct {
	MovieTitle   string `json:"movie_title,omitempty"`
	TheaterName  string `json:"theater_name,omitempty"`
	TheaterChain string `json:"theater_chain,omitempty"`
	ShowDate     string `json:"show_date,omitempty"` // MM/DD/YY
	ShowTime     string `json:"show_time,omitempty"` // H:MM AM|PM
	Price        string `json:"price,omitempty"`     // $D.DD
	SeatNumber   string `json:"seat_number,omitempty"`
	MovieRating  string `json:"movie_rating,omitempty"` // G|PG|PG-13|R|NC-17
	TheaterRoom  string `json:"theater_room,omitempty"`
	TicketNumber string `json:"ticket_number,omitempty"`
}

// strategy is one pattern-matching attempt for a single field: a pure, total
// function of the transcript that returns "" when nothing matches. A strategy
// belongs to exactly one extractor and never produces candidates for another
// field.
type strategy func(text string) string

// runStrategies evaluates strategies in declared order and arbitrates their
// candidates. Order encodes precedence; keep lists sorted from most to least
// specific.
func runStrategies(text string, strategies []strategy) string {
	candidates := make([]string, 0, len(strategies))
	for _, s := range strategies {
		candidates = append(candidates, s(text))
	}
	return firstNonEmpty(candidates...)
}

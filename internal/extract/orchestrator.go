package extract

import (
	"log/slog"
	"strings"
)

// fieldBinding ties one record field to its fallback extractor. The table is
// read-only after init; tests swap entries to exercise fault isolation.
type fieldBinding struct {
	name string
	get  func(*Fields) *string
	fn   func(string) string
}

var fieldBindings = []fieldBinding{
	{"movie_title", func(f *Fields) *string { return &f.MovieTitle }, ExtractMovieTitle},
	{"theater_name", func(f *Fields) *string { return &f.TheaterName }, ExtractTheaterName},
	{"theater_chain", func(f *Fields) *string { return &f.TheaterChain }, ExtractTheaterChain},
	{"show_date", func(f *Fields) *string { return &f.ShowDate }, ExtractShowDate},
	{"show_time", func(f *Fields) *string { return &f.ShowTime }, ExtractShowTime},
	{"price", func(f *Fields) *string { return &f.Price }, ExtractPrice},
	{"seat_number", func(f *Fields) *string { return &f.SeatNumber }, ExtractSeatNumber},
	{"movie_rating", func(f *Fields) *string { return &f.MovieRating }, ExtractMovieRating},
	{"theater_room", func(f *Fields) *string { return &f.TheaterRoom }, ExtractTheaterRoom},
	{"ticket_number", func(f *Fields) *string { return &f.TicketNumber }, ExtractTicketNumber},
}

// Build assembles the final record. Per field: a non-empty vision-channel
// value is authoritative; otherwise the deterministic extractor fills in
// from the transcript. Build never fails — a panicking extractor costs only
// its own field, and "could not determine" is expressed as "".
func Build(rawText string, vision *Fields) Fields {
	var out Fields
	for _, b := range fieldBindings {
		if vision != nil {
			if v := strings.TrimSpace(*b.get(vision)); v != "" {
				*b.get(&out) = v
				continue
			}
		}
		*b.get(&out) = safeExtract(b.name, b.fn, rawText)
	}
	return out
}

// safeExtract isolates extractor faults: a recovered panic is logged and
// converted to an absent field so one bad pattern never blanks the record.
func safeExtract(field string, fn func(string) string, text string) (value string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("extract.field_panic", "field", field, "panic", r)
			value = ""
		}
	}()
	return fn(text)
}

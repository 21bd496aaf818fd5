package llm

import (
	"context"

	"github.com/marcus-hale/ticket-stubs-tracker/internal/extract"
)

// TicketFields is the normalized shape we want from the model. Field names
// line up with the transcript extractors so the two channels merge 1:1.
type TicketFields struct {
	MovieTitle      string  `json:"movie_title,omitempty"`
	TheaterName     string  `json:"theater_name,omitempty"`
	TheaterChain    string  `json:"theater_chain,omitempty"`
	ShowDate        string  `json:"show_date,omitempty"` // MM/DD/YY
	ShowTime        string  `json:"show_time,omitempty"` // H:MM AM|PM
	Price           string  `json:"price,omitempty"`     // $D.DD
	SeatNumber      string  `json:"seat_number,omitempty"`
	MovieRating     string  `json:"movie_rating,omitempty"`
	TheaterRoom     string  `json:"theater_room,omitempty"`
	TicketNumber    string  `json:"ticket_number,omitempty"`
	ModelConfidence float32 `json:"confidence,omitempty"` // optional (0..1)
}

// Fields converts to the merge shape consumed by extract.Build.
func (f TicketFields) Fields() extract.Fields {
	return extract.Fields{
		MovieTitle:   f.MovieTitle,
		TheaterName:  f.TheaterName,
		TheaterChain: f.TheaterChain,
		ShowDate:     f.ShowDate,
		ShowTime:     f.ShowTime,
		Price:        f.Price,
		SeatNumber:   f.SeatNumber,
		MovieRating:  f.MovieRating,
		TheaterRoom:  f.TheaterRoom,
		TicketNumber: f.TicketNumber,
	}
}

type ExtractRequest struct {
	TranscriptText string
	FilenameHint   string
	FolderHint     string
	Timezone       string

	PrepConfidence float32
	FilePath       string
}

// FieldExtractor is the interface the pipeline depends on.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req ExtractRequest) (TicketFields, []byte /*rawJSON*/, error)
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Ticket represents a parsed ticket stub for data transfer between layers.
// Optional fields stay nil when no channel could determine them.
type Ticket struct {
	ID           uuid.UUID `json:"id"`
	MovieTitle   *string   `json:"movie_title,omitempty"`
	TheaterName  *string   `json:"theater_name,omitempty"`
	TheaterChain *string   `json:"theater_chain,omitempty"`
	ShowDate     *string   `json:"show_date,omitempty"` // MM/DD/YY
	ShowTime     *string   `json:"show_time,omitempty"` // H:MM AM|PM
	Price        *string   `json:"price,omitempty"`     // $D.DD
	SeatNumber   *string   `json:"seat_number,omitempty"`
	MovieRating  *string   `json:"movie_rating,omitempty"`
	TheaterRoom  *string   `json:"theater_room,omitempty"`
	TicketNumber *string   `json:"ticket_number,omitempty"`
	NeedsReview  bool      `json:"needs_review"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcus-hale/ticket-stubs-tracker/internal/common"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/entity"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/extract"
)

// CreateTicketRequest wraps parameters for persisting a parsed stub.
type CreateTicketRequest struct {
	JobID       uuid.UUID
	Fields      extract.Fields
	NeedsReview bool
}

type TicketRepository interface {
	ListTickets(ctx context.Context) ([]*entity.Ticket, error)
	GetTicket(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)
	InsertFromFields(ctx context.Context, request *CreateTicketRequest) (*entity.Ticket, error)
}

type ticketRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewTicketRepository(pool *pgxpool.Pool, logger *slog.Logger) TicketRepository {
	return &ticketRepository{
		pool:   pool,
		logger: logger,
	}
}

const ticketColumns = `id, movie_title, theater_name, theater_chain, show_date, show_time,
	price, seat_number, movie_rating, theater_room, ticket_number, needs_review,
	created_at, updated_at`

func (r *ticketRepository) ListTickets(ctx context.Context) ([]*entity.Ticket, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+ticketColumns+` FROM tickets ORDER BY created_at DESC`)
	if err != nil {
		r.logger.Error("failed to list tickets", "error", err)
		return nil, common.WrapError(err, "list tickets")
	}
	defer rows.Close()

	var result []*entity.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, common.WrapError(err, "scan ticket")
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

func (r *ticketRepository) GetTicket(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+ticketColumns+` FROM tickets WHERE id = $1`, id)
	t, err := scanTicket(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.NewAppError("TICKET_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to get ticket", "ticket_id", id, "error", err)
		return nil, common.WrapError(err, "get ticket")
	}
	return t, nil
}

func (r *ticketRepository) InsertFromFields(ctx context.Context, request *CreateTicketRequest) (*entity.Ticket, error) {
	f := request.Fields

	// "" means "could not determine" and is stored as NULL
	opt := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}

	row := r.pool.QueryRow(ctx,
		`INSERT INTO tickets (movie_title, theater_name, theater_chain, show_date, show_time,
			price, seat_number, movie_rating, theater_room, ticket_number, needs_review)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING `+ticketColumns,
		opt(f.MovieTitle), opt(f.TheaterName), opt(f.TheaterChain),
		opt(f.ShowDate), opt(f.ShowTime), opt(f.Price), opt(f.SeatNumber),
		opt(f.MovieRating), opt(f.TheaterRoom), opt(f.TicketNumber),
		request.NeedsReview)
	t, err := scanTicket(row)
	if err != nil {
		r.logger.Error("failed to insert ticket", "job_id", request.JobID, "error", err)
		return nil, common.WrapError(err, "insert ticket")
	}
	return t, nil
}

func scanTicket(row pgx.Row) (*entity.Ticket, error) {
	var t entity.Ticket
	err := row.Scan(
		&t.ID, &t.MovieTitle, &t.TheaterName, &t.TheaterChain, &t.ShowDate,
		&t.ShowTime, &t.Price, &t.SeatNumber, &t.MovieRating, &t.TheaterRoom,
		&t.TicketNumber, &t.NeedsReview, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

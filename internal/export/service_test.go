package export

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/marcus-hale/ticket-stubs-tracker/internal/entity"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/repository"
)

type stubTicketsRepo struct {
	tickets []*entity.Ticket
	err     error
}

func (s *stubTicketsRepo) ListTickets(ctx context.Context) ([]*entity.Ticket, error) {
	return s.tickets, s.err
}

func (s *stubTicketsRepo) GetTicket(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	return nil, errors.New("not found")
}

func (s *stubTicketsRepo) InsertFromFields(ctx context.Context, request *repository.CreateTicketRequest) (*entity.Ticket, error) {
	return nil, errors.New("not implemented")
}

func strp(s string) *string { return &s }

func TestExportTicketsXLSX(t *testing.T) {
	repo := &stubTicketsRepo{tickets: []*entity.Ticket{
		{
			ID:          uuid.New(),
			MovieTitle:  strp("DUNE PART TWO"),
			ShowDate:    strp("12/03/24"),
			Price:       strp("$12.50"),
			MovieRating: strp("PG-13"),
		},
		{
			ID:          uuid.New(),
			MovieTitle:  strp("OPPENHEIMER"),
			NeedsReview: true,
		},
	}}

	data, err := NewService(repo, nil).ExportTicketsXLSX(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Tickets")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 tickets

	assert.Equal(t, "Movie Title", rows[0][0])
	assert.Equal(t, "DUNE PART TWO", rows[1][0])
	assert.Equal(t, "12/03/24", rows[1][3])
	assert.Equal(t, "$12.50", rows[1][5])
	assert.Equal(t, "OPPENHEIMER", rows[2][0])
}

func TestExportTicketsXLSXRepoError(t *testing.T) {
	repo := &stubTicketsRepo{err: errors.New("db down")}
	_, err := NewService(repo, nil).ExportTicketsXLSX(context.Background())
	assert.Error(t, err)
}

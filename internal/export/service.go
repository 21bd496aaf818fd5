package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/marcus-hale/ticket-stubs-tracker/internal/repository"
)

// Service is a tiny façade over the ticket repository that produces XLSX
// bytes for exports.
type Service struct {
	ticketsRepo repository.TicketRepository
	logger      *slog.Logger
}

func NewService(repo repository.TicketRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{ticketsRepo: repo, logger: logger}
}

// ExportTicketsXLSX returns an XLSX workbook (as bytes) with one row per
// parsed ticket. Undetermined fields come out as blank cells.
func (s *Service) ExportTicketsXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	tickets, err := s.ticketsRepo.ListTickets(ctx)
	if err != nil {
		return nil, fmt.Errorf("query tickets: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Tickets"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Movie Title",
		"Theater Name",
		"Theater Chain",
		"Show Date",
		"Show Time",
		"Price",
		"Seat",
		"Rating",
		"Room",
		"Ticket Number",
		"Needs Review",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	str := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}

	row := 2
	for _, t := range tickets {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, str(t.MovieTitle))
		write(2, str(t.TheaterName))
		write(3, str(t.TheaterChain))
		write(4, str(t.ShowDate))
		write(5, str(t.ShowTime))
		write(6, str(t.Price))
		write(7, str(t.SeatNumber))
		write(8, str(t.MovieRating))
		write(9, str(t.TheaterRoom))
		write(10, str(t.TicketNumber))
		write(11, t.NeedsReview)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 32) // title
	_ = f.SetColWidth(sheet, "B", "B", 28) // venue
	_ = f.SetColWidth(sheet, "C", "C", 18) // chain
	_ = f.SetColWidth(sheet, "D", "E", 12) // date/time
	_ = f.SetColWidth(sheet, "J", "J", 18) // ticket number

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(tickets),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

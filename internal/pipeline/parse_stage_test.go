package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcus-hale/ticket-stubs-tracker/constants"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/entity"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/llm"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/repository"
)

const stubTranscript = `AMC Empire 25
DUNE PART TWO (PG-13)
12/03/24 7:30 PM
ADULT $12.50`

type fakeJobsRepo struct {
	jobs       map[uuid.UUID]*entity.ScanJob
	running    []uuid.UUID
	lastFinish *repository.FinishJobRequest
}

func newFakeJobsRepo() *fakeJobsRepo {
	return &fakeJobsRepo{jobs: make(map[uuid.UUID]*entity.ScanJob)}
}

func (f *fakeJobsRepo) add(transcript string) uuid.UUID {
	id := uuid.New()
	j := &entity.ScanJob{
		ID:         id,
		SourcePath: "/stubs/dune.txt",
		Filename:   "dune.txt",
		FileExt:    "txt",
		Status:     string(constants.JobStatusQueued),
		StartedAt:  time.Now(),
	}
	if transcript != "" {
		j.TranscriptText = &transcript
	}
	f.jobs[id] = j
	return id
}

func (f *fakeJobsRepo) Create(ctx context.Context, sourcePath, filename, fileExt, transcript string) (*entity.ScanJob, error) {
	id := f.add(transcript)
	return f.jobs[id], nil
}

func (f *fakeJobsRepo) Get(ctx context.Context, id uuid.UUID) (*entity.ScanJob, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return j, nil
}

func (f *fakeJobsRepo) ListPending(ctx context.Context, limit int) ([]*entity.ScanJob, error) {
	return nil, nil
}

func (f *fakeJobsRepo) MarkRunning(ctx context.Context, id uuid.UUID) error {
	f.running = append(f.running, id)
	return nil
}

func (f *fakeJobsRepo) Finish(ctx context.Context, request *repository.FinishJobRequest) (*entity.ScanJob, error) {
	f.lastFinish = request
	return f.jobs[request.JobID], nil
}

type fakeTicketsRepo struct {
	lastInsert *repository.CreateTicketRequest
	insertErr  error
}

func (f *fakeTicketsRepo) ListTickets(ctx context.Context) ([]*entity.Ticket, error) {
	return nil, nil
}

func (f *fakeTicketsRepo) GetTicket(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	return nil, errors.New("not found")
}

func (f *fakeTicketsRepo) InsertFromFields(ctx context.Context, request *repository.CreateTicketRequest) (*entity.Ticket, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.lastInsert = request
	return &entity.Ticket{ID: uuid.New(), NeedsReview: request.NeedsReview}, nil
}

type fakeVision struct {
	fields llm.TicketFields
	raw    []byte
	err    error
	calls  int
}

func (f *fakeVision) ExtractFields(ctx context.Context, req llm.ExtractRequest) (llm.TicketFields, []byte, error) {
	f.calls++
	return f.fields, f.raw, f.err
}

func newStage(jobs *fakeJobsRepo, tickets *fakeTicketsRepo, fe llm.FieldExtractor) *ParseStage {
	return NewParseStage(nil, Config{ModelName: "gpt-4o-mini"}, jobs, tickets, fe)
}

func TestParseStageVisionWins(t *testing.T) {
	jobs := newFakeJobsRepo()
	tickets := &fakeTicketsRepo{}
	vision := &fakeVision{
		fields: llm.TicketFields{MovieRating: "R", ModelConfidence: 0.9},
		raw:    []byte(`{"movie_rating":"R"}`),
	}
	jobID := jobs.add(stubTranscript)

	ticketID, err := newStage(jobs, tickets, vision).Run(context.Background(), jobID)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, ticketID)
	assert.Equal(t, 1, vision.calls)

	require.NotNil(t, tickets.lastInsert)
	fields := tickets.lastInsert.Fields
	// vision overrides the transcript's (PG-13); everything else falls back
	assert.Equal(t, "R", fields.MovieRating)
	assert.Equal(t, "DUNE PART TWO", fields.MovieTitle)
	assert.Equal(t, "12/03/24", fields.ShowDate)
	assert.Equal(t, "$12.50", fields.Price)
	assert.False(t, tickets.lastInsert.NeedsReview)

	require.NotNil(t, jobs.lastFinish)
	assert.Equal(t, constants.JobStatusParsed, jobs.lastFinish.Status)
	require.NotNil(t, jobs.lastFinish.ModelName)
	assert.Equal(t, "gpt-4o-mini", *jobs.lastFinish.ModelName)
	assert.JSONEq(t, `{"movie_rating":"R"}`, string(jobs.lastFinish.VisionJSON))
}

func TestParseStageVisionFailureFallsBack(t *testing.T) {
	jobs := newFakeJobsRepo()
	tickets := &fakeTicketsRepo{}
	vision := &fakeVision{err: errors.New("rate limited")}
	jobID := jobs.add(stubTranscript)

	_, err := newStage(jobs, tickets, vision).Run(context.Background(), jobID)
	require.NoError(t, err)

	require.NotNil(t, tickets.lastInsert)
	fields := tickets.lastInsert.Fields
	assert.Equal(t, "PG-13", fields.MovieRating)
	assert.Equal(t, "DUNE PART TWO", fields.MovieTitle)

	require.NotNil(t, jobs.lastFinish)
	assert.Equal(t, constants.JobStatusParsed, jobs.lastFinish.Status)
	assert.Nil(t, jobs.lastFinish.ModelName)
}

func TestParseStageNoVisionExtractor(t *testing.T) {
	jobs := newFakeJobsRepo()
	tickets := &fakeTicketsRepo{}
	jobID := jobs.add(stubTranscript)

	_, err := newStage(jobs, tickets, nil).Run(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, "DUNE PART TWO", tickets.lastInsert.Fields.MovieTitle)
}

func TestParseStageEmptyTranscriptFails(t *testing.T) {
	jobs := newFakeJobsRepo()
	tickets := &fakeTicketsRepo{}
	jobID := jobs.add("")

	_, err := newStage(jobs, tickets, nil).Run(context.Background(), jobID)
	require.Error(t, err)

	require.NotNil(t, jobs.lastFinish)
	assert.Equal(t, constants.JobStatusFailed, jobs.lastFinish.Status)
	assert.Nil(t, tickets.lastInsert)
}

func TestParseStageSparseRecordNeedsReview(t *testing.T) {
	jobs := newFakeJobsRepo()
	tickets := &fakeTicketsRepo{}
	jobID := jobs.add("ROW A12\nthank you")

	_, err := newStage(jobs, tickets, nil).Run(context.Background(), jobID)
	require.NoError(t, err)
	assert.True(t, tickets.lastInsert.NeedsReview)
}

func TestParseStageLowModelConfidenceNeedsReview(t *testing.T) {
	jobs := newFakeJobsRepo()
	tickets := &fakeTicketsRepo{}
	vision := &fakeVision{
		fields: llm.TicketFields{MovieRating: "R", ModelConfidence: 0.2},
		raw:    []byte(`{"movie_rating":"R","confidence":0.2}`),
	}
	jobID := jobs.add(stubTranscript)

	_, err := newStage(jobs, tickets, vision).Run(context.Background(), jobID)
	require.NoError(t, err)
	assert.True(t, tickets.lastInsert.NeedsReview)
}

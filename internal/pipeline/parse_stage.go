package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/marcus-hale/ticket-stubs-tracker/constants"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/extract"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/llm"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/repository"
)

// Config holds thresholds and behavior flags for the parse stage.
type Config struct {
	MinConfidence float32 // default 0.60
	ModelName     string
}

type ParseStage struct {
	Logger      *slog.Logger
	Cfg         Config
	JobsRepo    repository.ScanJobRepository
	TicketsRepo repository.TicketRepository
	Extractor   llm.FieldExtractor // nil disables the vision channel
}

func NewParseStage(
	logger *slog.Logger,
	cfg Config,
	jobs repository.ScanJobRepository,
	tickets repository.TicketRepository,
	fe llm.FieldExtractor,
) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = 0.60
	}
	return &ParseStage{
		Logger:      logger,
		Cfg:         cfg,
		JobsRepo:    jobs,
		TicketsRepo: tickets,
		Extractor:   fe,
	}
}

// Run executes the parse stage for a queued scan job: vision channel first
// (tolerating its failure), then the transcript extractors fill every field
// the vision channel left blank, and the assembled ticket is persisted.
// Returns the new ticket ID.
func (p *ParseStage) Run(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	job, err := p.JobsRepo.Get(ctx, jobID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load job: %w", err)
	}
	if job.TranscriptText == nil || *job.TranscriptText == "" {
		p.failJob(ctx, jobID, "empty transcript", nil, nil)
		return uuid.Nil, fmt.Errorf("job %s has no transcript", jobID)
	}
	if err := p.JobsRepo.MarkRunning(ctx, jobID); err != nil {
		return uuid.Nil, err
	}

	transcript := *job.TranscriptText
	prep := heuristicConfidence(transcript)

	p.Logger.Info("parse.start",
		"job_id", jobID, "transcript_bytes", len(transcript), "prep_confidence", prep,
	)

	// Vision channel. A failure here costs nothing but the channel itself:
	// the transcript extractors carry the record on their own.
	var (
		visionPtr  *extract.Fields
		visionRaw  []byte
		visionConf float32
	)
	if p.Extractor != nil {
		req := llm.ExtractRequest{
			TranscriptText: transcript,
			FilenameHint:   filepath.Base(job.SourcePath),
			FolderHint:     filepath.Dir(job.SourcePath),
			PrepConfidence: prep,
			FilePath:       job.SourcePath,
		}
		vf, raw, vErr := p.Extractor.ExtractFields(ctx, req)
		if vErr != nil {
			p.Logger.Warn("parse.vision_failed",
				"job_id", jobID, "error", vErr,
			)
		} else {
			f := vf.Fields()
			visionPtr = &f
			visionRaw = raw
			visionConf = vf.ModelConfidence
		}
	}

	merged := extract.Build(transcript, visionPtr)

	// Heuristic needs_review
	needsReview := merged.MovieTitle == "" || merged.ShowDate == "" || merged.Price == ""
	if visionConf > 0 && visionConf < p.Cfg.MinConfidence {
		needsReview = true
	}

	ticket, err := p.TicketsRepo.InsertFromFields(ctx, &repository.CreateTicketRequest{
		JobID:       jobID,
		Fields:      merged,
		NeedsReview: needsReview,
	})
	if err != nil {
		p.failJob(ctx, jobID, err.Error(), &prep, visionRaw)
		return uuid.Nil, fmt.Errorf("insert ticket: %w", err)
	}

	finish := &repository.FinishJobRequest{
		JobID:          jobID,
		Status:         constants.JobStatusParsed,
		TicketID:       &ticket.ID,
		PrepConfidence: &prep,
		VisionJSON:     visionRaw,
	}
	if p.Cfg.ModelName != "" && visionPtr != nil {
		finish.ModelName = &p.Cfg.ModelName
	}
	if _, err := p.JobsRepo.Finish(ctx, finish); err != nil {
		return ticket.ID, err
	}

	p.Logger.Info("parse.ok",
		"job_id", jobID, "ticket_id", ticket.ID,
		"title", merged.MovieTitle, "date", merged.ShowDate, "price", merged.Price,
		"needs_review", needsReview, "vision_used", visionPtr != nil,
	)
	return ticket.ID, nil
}

func (p *ParseStage) failJob(ctx context.Context, jobID uuid.UUID, msg string, prep *float32, raw []byte) {
	if _, err := p.JobsRepo.Finish(ctx, &repository.FinishJobRequest{
		JobID:          jobID,
		Status:         constants.JobStatusFailed,
		ErrorMessage:   &msg,
		PrepConfidence: prep,
		VisionJSON:     raw,
	}); err != nil {
		p.Logger.Error("parse.fail_update_error", "job_id", jobID, "error", err)
	}
}

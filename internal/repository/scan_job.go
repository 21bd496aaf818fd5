package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcus-hale/ticket-stubs-tracker/constants"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/common"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/entity"
)

// FinishJobRequest wraps the terminal update of a scan job.
type FinishJobRequest struct {
	JobID          uuid.UUID
	Status         constants.JobStatus
	TicketID       *uuid.UUID
	ErrorMessage   *string
	PrepConfidence *float32
	VisionJSON     json.RawMessage
	ModelName      *string
}

type ScanJobRepository interface {
	Create(ctx context.Context, sourcePath, filename, fileExt, transcript string) (*entity.ScanJob, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.ScanJob, error)
	ListPending(ctx context.Context, limit int) ([]*entity.ScanJob, error)
	MarkRunning(ctx context.Context, id uuid.UUID) error
	Finish(ctx context.Context, request *FinishJobRequest) (*entity.ScanJob, error)
}

type scanJobRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewScanJobRepository(pool *pgxpool.Pool, logger *slog.Logger) ScanJobRepository {
	return &scanJobRepository{
		pool:   pool,
		logger: logger,
	}
}

const scanJobColumns = `id, ticket_id, source_path, filename, file_ext, transcript_text,
	status, error_message, prep_confidence, vision_json, model_name, started_at, finished_at`

func (r *scanJobRepository) Create(ctx context.Context, sourcePath, filename, fileExt, transcript string) (*entity.ScanJob, error) {
	var tr *string
	if transcript != "" {
		tr = &transcript
	}
	row := r.pool.QueryRow(ctx,
		`INSERT INTO scan_jobs (source_path, filename, file_ext, transcript_text, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+scanJobColumns,
		sourcePath, filename, constants.NormalizeExt(fileExt), tr, string(constants.JobStatusQueued))
	j, err := scanScanJob(row)
	if err != nil {
		r.logger.Error("failed to create scan job", "source_path", sourcePath, "error", err)
		return nil, common.WrapError(err, "create scan job")
	}
	return j, nil
}

func (r *scanJobRepository) Get(ctx context.Context, id uuid.UUID) (*entity.ScanJob, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+scanJobColumns+` FROM scan_jobs WHERE id = $1`, id)
	j, err := scanScanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.NewAppError("SCAN_JOB_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to get scan job", "job_id", id, "error", err)
		return nil, common.WrapError(err, "get scan job")
	}
	return j, nil
}

func (r *scanJobRepository) ListPending(ctx context.Context, limit int) ([]*entity.ScanJob, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+scanJobColumns+` FROM scan_jobs WHERE status = $1 ORDER BY started_at LIMIT $2`,
		string(constants.JobStatusQueued), limit)
	if err != nil {
		return nil, common.WrapError(err, "list pending scan jobs")
	}
	defer rows.Close()

	var result []*entity.ScanJob
	for rows.Next() {
		j, err := scanScanJob(rows)
		if err != nil {
			return nil, common.WrapError(err, "scan scan job")
		}
		result = append(result, j)
	}
	return result, rows.Err()
}

func (r *scanJobRepository) MarkRunning(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE scan_jobs SET status = $2 WHERE id = $1 AND status = $3`,
		id, string(constants.JobStatusRunning), string(constants.JobStatusQueued))
	if err != nil {
		return common.WrapError(err, "mark scan job running")
	}
	if tag.RowsAffected() == 0 {
		return common.NewAppError("SCAN_JOB_NOT_QUEUED", id.String(), common.ErrInvalidInput)
	}
	return nil
}

func (r *scanJobRepository) Finish(ctx context.Context, request *FinishJobRequest) (*entity.ScanJob, error) {
	now := time.Now().UTC()
	row := r.pool.QueryRow(ctx,
		`UPDATE scan_jobs
		 SET status = $2, ticket_id = $3, error_message = $4, prep_confidence = $5,
		     vision_json = $6, model_name = $7, finished_at = $8
		 WHERE id = $1
		 RETURNING `+scanJobColumns,
		request.JobID, string(request.Status), request.TicketID, request.ErrorMessage,
		request.PrepConfidence, request.VisionJSON, request.ModelName, now)
	j, err := scanScanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.NewAppError("SCAN_JOB_NOT_FOUND", request.JobID.String(), common.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to finish scan job", "job_id", request.JobID, "error", err)
		return nil, common.WrapError(err, "finish scan job")
	}
	return j, nil
}

func scanScanJob(row pgx.Row) (*entity.ScanJob, error) {
	var j entity.ScanJob
	err := row.Scan(
		&j.ID, &j.TicketID, &j.SourcePath, &j.Filename, &j.FileExt,
		&j.TranscriptText, &j.Status, &j.ErrorMessage, &j.PrepConfidence,
		&j.VisionJSON, &j.ModelName, &j.StartedAt, &j.FinishedAt,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

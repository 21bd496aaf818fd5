package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/marcus-hale/ticket-stubs-tracker/internal/async"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/repository"
)

// Ingestor turns transcript files into queued scan jobs.
type Ingestor struct {
	Jobs   repository.ScanJobRepository
	Queue  async.Queue
	Logger *slog.Logger
}

func NewIngestor(jobs repository.ScanJobRepository, queue async.Queue, logger *slog.Logger) *Ingestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingestor{Jobs: jobs, Queue: queue, Logger: logger}
}

// IngestPath reads one transcript file, records a scan job, and queues it.
func (i *Ingestor) IngestPath(ctx context.Context, path string) (uuid.UUID, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return uuid.Nil, fmt.Errorf("read transcript: %w", err)
	}

	job, err := i.Jobs.Create(ctx, path, filepath.Base(path), filepath.Ext(path), string(b))
	if err != nil {
		return uuid.Nil, fmt.Errorf("create scan job: %w", err)
	}

	if err := i.Queue.Enqueue(ctx, async.Job{JobID: job.ID, SubmittedAt: time.Now()}); err != nil {
		return job.ID, fmt.Errorf("enqueue scan job: %w", err)
	}

	i.Logger.Info("ingest.queued", "job_id", job.ID, "path", path)
	return job.ID, nil
}

// WatchLoop blocks on the directory watcher, ingesting each transcript it
// reports, until the context is cancelled.
func (i *Ingestor) WatchLoop(ctx context.Context, cfg WatchConfig) error {
	evCh, errCh, err := StartWatcher(ctx, cfg)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case path, ok := <-evCh:
			if !ok {
				return nil
			}
			if _, err := i.IngestPath(ctx, path); err != nil {
				i.Logger.Error("ingest.failed", "path", path, "error", err)
			}
		case wErr, ok := <-errCh:
			if ok && wErr != nil {
				i.Logger.Error("ingest.watcher_error", "error", wErr)
			}
		}
	}
}

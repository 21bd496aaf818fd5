package async

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRunner struct {
	mu   sync.Mutex
	seen []uuid.UUID
}

func (r *countingRunner) Run(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, jobID)
	return uuid.New(), nil
}

func (r *countingRunner) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}

func TestParseQueueDrainsOnShutdown(t *testing.T) {
	runner := &countingRunner{}
	q := NewParseQueue(runner, nil, WithWorkers(2), WithQueueSize(16))

	ctx := context.Background()
	for i := 0; i < 10; i++ {
		require.NoError(t, q.Enqueue(ctx, Job{JobID: uuid.New(), SubmittedAt: time.Now()}))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	q.Shutdown(shutdownCtx)

	assert.Equal(t, 10, runner.count())
}

func TestParseQueueRejectsAfterShutdown(t *testing.T) {
	runner := &countingRunner{}
	q := NewParseQueue(runner, nil, WithWorkers(1))

	ctx := context.Background()
	q.Shutdown(ctx)

	// Enqueue after shutdown is a no-op, not a panic.
	require.NoError(t, q.Enqueue(ctx, Job{JobID: uuid.New()}))
	assert.Zero(t, runner.count())

	// Second shutdown is idempotent.
	q.Shutdown(ctx)
}

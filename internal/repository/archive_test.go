package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcus-hale/ticket-stubs-tracker/internal/extract"
)

func TestArchiveStoreRoundTrip(t *testing.T) {
	store, err := OpenArchive(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	fields := extract.Fields{
		MovieTitle: "DUNE PART TWO",
		ShowDate:   "12/03/24",
		Price:      "$12.50",
	}

	id, err := store.SaveScan(ctx, "/stubs/dune.txt", "DUNE PART TWO\n12/03/24", fields)
	require.NoError(t, err)
	assert.NotZero(t, id)

	scans, err := store.ListScans(ctx, 10)
	require.NoError(t, err)
	require.Len(t, scans, 1)
	assert.Equal(t, "/stubs/dune.txt", scans[0].SourcePath)
	assert.Equal(t, fields, scans[0].Fields)
	assert.False(t, scans[0].ScannedAt.IsZero())
}

func TestArchiveStoreListLimit(t *testing.T) {
	store, err := OpenArchive(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := store.SaveScan(ctx, "/stubs/s.txt", "text", extract.Fields{})
		require.NoError(t, err)
	}

	scans, err := store.ListScans(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, scans, 3)
}

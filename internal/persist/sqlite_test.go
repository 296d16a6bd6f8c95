package persist

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenSQLiteRequiresPath(t *testing.T) {
	_, err := OpenSQLite("  ")
	assert.Error(t, err)
}

func TestSaveAssignsRunID(t *testing.T) {
	s := openTestStore(t)

	meta := RunMeta{Kind: "structure", Label: "neon-ground"}
	require.NoError(t, s.Save(context.Background(), meta, Results{"levels": []int{1, 2}}))

	runs, err := s.Runs(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.NotEmpty(t, runs[0].ID)
	assert.Equal(t, "structure", runs[0].Kind)
	assert.Equal(t, "neon-ground", runs[0].Label)
	assert.False(t, runs[0].StartedAt.IsZero(), "a missing start time is filled in")
}

func TestSaveRequiresKind(t *testing.T) {
	s := openTestStore(t)

	err := s.Save(context.Background(), RunMeta{Label: "anonymous"}, Results{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kind")
}

func TestSaveAndLoadResultsRoundTrip(t *testing.T) {
	s := openTestStore(t)

	started := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	meta := RunMeta{ID: "run-1", Kind: "simulation", Label: "neon-k", StartedAt: started}
	saved := Results{
		"ion-distribution": map[int]float64{9: 0.75, 8: 0.25},
		"note":             "monochromatic",
	}
	require.NoError(t, s.Save(context.Background(), meta, saved))

	runs, err := s.Runs(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-1", runs[0].ID)
	assert.True(t, started.Equal(runs[0].StartedAt), "got %v", runs[0].StartedAt)

	loaded, err := s.LoadResults(context.Background(), "run-1")
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// JSON decoding widens the typed payload: int keys become strings,
	// numbers become float64.
	ion, ok := loaded["ion-distribution"].(map[string]any)
	require.True(t, ok, "ion payload: %T", loaded["ion-distribution"])
	assert.Equal(t, 0.75, ion["9"])
	assert.Equal(t, 0.25, ion["8"])
	assert.Equal(t, "monochromatic", loaded["note"])
}

func TestRunsNewestFirst(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Save(context.Background(), RunMeta{ID: "first", Kind: "cascade"}, Results{}))
	// created_at has millisecond resolution; spacing the inserts keeps
	// the ordering assertion meaningful.
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, s.Save(context.Background(), RunMeta{ID: "second", Kind: "simulation"}, Results{}))

	runs, err := s.Runs(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "second", runs[0].ID)
	assert.Equal(t, "first", runs[1].ID)
}

func TestLoadResultsUnknownRun(t *testing.T) {
	s := openTestStore(t)

	loaded, err := s.LoadResults(context.Background(), "never-saved")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestSaveHonorsCancellation(t *testing.T) {
	s := openTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Save(ctx, RunMeta{Kind: "structure"}, Results{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDiscardAcceptsEverything(t *testing.T) {
	assert.NoError(t, Discard{}.Save(context.Background(), RunMeta{}, Results{"x": 1}))
}

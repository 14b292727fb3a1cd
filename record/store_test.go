package record

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/marble-sandbox/event"
)

func startStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.Init(filepath.Join(t.TempDir(), "runs.db")))
	require.NoError(t, s.Start())
	t.Cleanup(func() { s.Stop() })
	return s
}

func TestNewRunFromCompletion(t *testing.T) {
	run, err := NewRun(&event.LevelCompletePayload{
		Level:   "Ramp Run",
		Score:   14,
		Seconds: 32.5,
		Goals:   map[int]string{1: "Azure", 2: "Ember"},
		Marble:  "Azure",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ramp Run", run.Level)
	assert.Equal(t, 32.5, run.Duration)

	owners, err := run.GoalOwners()
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "Azure", 2: "Ember"}, owners)
}

func TestSaveAndBest(t *testing.T) {
	s := startStore(t)
	ctx := context.Background()

	runs := []Run{
		{Level: "a", Score: 5, Duration: 40},
		{Level: "a", Score: 9, Duration: 50},
		{Level: "a", Score: 9, Duration: 30},
		{Level: "b", Score: 99, Duration: 10},
	}
	for i := range runs {
		require.NoError(t, s.Save(ctx, &runs[i]))
		assert.NotZero(t, runs[i].ID)
	}

	best, err := s.Best(ctx, "a", 2)
	require.NoError(t, err)
	require.Len(t, best, 2)
	assert.Equal(t, 30.0, best[0].Duration, "ties break on duration")
	assert.Equal(t, 50.0, best[1].Duration)

	n, err := s.Count(ctx, "")
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
}

func TestSubmitDrainsOnStop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s := NewStore()
	require.NoError(t, s.Init(path))
	require.NoError(t, s.Start())

	for i := 0; i < 5; i++ {
		assert.True(t, s.Submit(Run{Level: "q", Score: i}))
	}
	require.NoError(t, s.Stop())
	assert.False(t, s.Submit(Run{Level: "q"}), "submit after stop")
	require.NoError(t, s.Stop(), "stop is idempotent")

	reopened := NewStore()
	require.NoError(t, reopened.Init(path))
	require.NoError(t, reopened.Start())
	defer reopened.Stop()

	n, err := reopened.Count(context.Background(), "q")
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)
}

func TestInitRejectsBadDSN(t *testing.T) {
	assert.Error(t, NewStore().Init(42))
	assert.Error(t, NewStore().Init(""))
	assert.Error(t, NewStore().Init())
}

func TestQueriesBeforeStart(t *testing.T) {
	s := NewStore()
	_, err := s.Best(context.Background(), "a", 1)
	assert.ErrorIs(t, err, ErrClosed)
	assert.False(t, s.Submit(Run{}))
}

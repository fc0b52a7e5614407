package records

import (
	"context"
	"math/rand/v2"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrea/robotfindskitten/internal/game"
	"github.com/kingrea/robotfindskitten/internal/items"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state", "records.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	catalog, err := items.NewCatalog(true, nil, nil)
	require.NoError(t, err)
	world, err := game.NewWorld(game.WorldConfig{Width: 30, Height: 10, Items: 12}, catalog, rand.New(rand.NewPCG(4, 4)))
	require.NoError(t, err)
	sess := game.NewSession(world, 4)
	sess.Quit()

	require.NoError(t, s.Save(ctx, sess))
	// Saving again replaces rather than duplicates.
	require.NoError(t, s.Save(ctx, sess))

	recent, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	got := recent[0]
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, game.ResultQuit, got.Result)
	assert.Equal(t, sess.Moves, got.Moves)
	assert.Equal(t, 12, got.Items)
	assert.Equal(t, 30, got.Width)
	assert.Equal(t, 10, got.Height)
	assert.Equal(t, int64(4), got.Seed)
	assert.Equal(t, sess.StartedAt.UnixMilli(), got.StartedAt.UnixMilli())
}

func TestSaveRejectsUnfinishedSession(t *testing.T) {
	s := openTestStore(t)
	catalog, err := items.NewCatalog(true, nil, nil)
	require.NoError(t, err)
	world, err := game.NewWorld(game.WorldConfig{Width: 10, Height: 10, Items: 1}, catalog, rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)
	assert.Error(t, s.Save(context.Background(), game.NewSession(world, 1)))
	assert.Error(t, s.Save(context.Background(), nil))
}

func TestSummary(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	fixtures := []Record{
		{ID: "a", StartedAt: base, EndedAt: base.Add(40 * time.Second), Result: game.ResultFound, Moves: 30},
		{ID: "b", StartedAt: base.Add(time.Hour), EndedAt: base.Add(time.Hour + 10*time.Second), Result: game.ResultFound, Moves: 10},
		{ID: "c", StartedAt: base.Add(2 * time.Hour), EndedAt: base.Add(2*time.Hour + time.Second), Result: game.ResultQuit, Moves: 2},
	}
	for _, rec := range fixtures {
		require.NoError(t, s.Insert(ctx, rec))
	}

	sum, err := s.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Sessions)
	assert.Equal(t, 2, sum.Finds)
	assert.Equal(t, 1, sum.Quits)
	assert.Equal(t, 10, sum.FewestMoves)
	assert.InDelta(t, 14.0, sum.AverageMoves, 0.001)
	assert.Equal(t, 10*time.Second, sum.FastestFind)

	recent, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "c", recent[0].ID)
	assert.Equal(t, "b", recent[1].ID)
	assert.Equal(t, time.Second, recent[0].Duration())
}

func TestSummaryEmpty(t *testing.T) {
	s := openTestStore(t)
	sum, err := s.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{}, sum)
}

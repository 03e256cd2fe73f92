package snapshot_test

import (
	"testing"

	"github.com/mauv0809/superlig-stats/internal/database"
	"github.com/mauv0809/superlig-stats/internal/leaderboard"
	"github.com/mauv0809/superlig-stats/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *snapshot.SQLStore {
	t.Helper()
	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	t.Cleanup(teardown)
	return snapshot.NewStore(db)
}

func testBoard(metric string) *leaderboard.Board {
	return &leaderboard.Board{
		Metric:  metric,
		Label:   leaderboard.PrettyLabel(metric),
		Columns: []string{"Rk", "player", "team", leaderboard.PrettyLabel(metric)},
		Rows: [][]string{
			{"1", "Demir", "GS", "12"},
			{"2", "Kaya", "BJK", "9"},
		},
	}
}

func TestStoreSaveAndList(t *testing.T) {
	store := newTestStore(t)

	id, err := store.Save(testBoard("goals"), "minutes>=900")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	snaps, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, snaps, 1)

	got := snaps[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "goals", got.Metric)
	assert.Equal(t, "Goals", got.Label)
	assert.Equal(t, "minutes>=900", got.Filters)
	assert.False(t, got.CreatedAt.IsZero())

	// The board round-trips intact.
	require.NotNil(t, got.Board)
	assert.Equal(t, testBoard("goals").Rows, got.Board.Rows)
	assert.Equal(t, testBoard("goals").Columns, got.Board.Columns)
}

func TestStoreListLimit(t *testing.T) {
	store := newTestStore(t)

	for _, metric := range []string{"goals", "assists", "tackles"} {
		_, err := store.Save(testBoard(metric), "")
		require.NoError(t, err)
	}

	snaps, err := store.List(2)
	require.NoError(t, err)
	assert.Len(t, snaps, 2)

	snaps, err = store.List(0)
	require.NoError(t, err)
	assert.Len(t, snaps, 3)
}

func TestStoreClear(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save(testBoard("tackles"), "")
	require.NoError(t, err)
	require.NoError(t, store.Clear())

	snaps, err := store.List(0)
	require.NoError(t, err)
	assert.Empty(t, snaps)
}

func TestStoreSaveNilBoard(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save(nil, "")
	assert.Error(t, err)
}

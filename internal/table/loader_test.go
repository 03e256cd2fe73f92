package table_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mauv0809/superlig-stats/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoercesNonIdentifierColumns(t *testing.T) {
	csv := strings.Join([]string{
		"player,team,country,goals,minutesPlayed",
		"Icardi,Galatasaray,Argentina,12,900",
		"Dzeko,Fenerbahce,Bosnia,not-a-number,810",
		"Muldur,Fenerbahce,Türkiye,,",
	}, "\n")

	tbl, err := table.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Len())

	assert.Equal(t, "Icardi", tbl.Rows[0]["player"].Text)
	assert.Equal(t, 12.0, tbl.Rows[0]["goals"].Num)
	assert.True(t, tbl.Rows[0]["goals"].Valid)

	// Bad and empty numeric cells become missing, never an error.
	assert.False(t, tbl.Rows[1]["goals"].Valid)
	assert.False(t, tbl.Rows[2]["goals"].Valid)
	assert.False(t, tbl.Rows[2]["minutesPlayed"].Valid)

	// Identifier columns stay text even when they look numeric.
	assert.Equal(t, "Türkiye", tbl.Rows[2]["country"].Text)
}

func TestParseKeepsPositionAndNationalityAsText(t *testing.T) {
	csv := strings.Join([]string{
		"player,team,tackles,position,nationality",
		"Demir,GS,71,DM,Türkiye",
	}, "\n")

	tbl, err := table.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, "DM", tbl.Rows[0]["position"].Text)
	assert.Equal(t, "Türkiye", tbl.Rows[0]["nationality"].Text)
	assert.False(t, tbl.Rows[0]["position"].Valid)
}

func TestParseDerivesNineties(t *testing.T) {
	csv := "player,team,minutesPlayed\nIcardi,Galatasaray,900\nDzeko,Fenerbahce,"
	tbl, err := table.Parse(strings.NewReader(csv))
	require.NoError(t, err)

	require.True(t, tbl.HasColumn("90s"))
	assert.Equal(t, 10.0, tbl.Rows[0]["90s"].Num)
	assert.False(t, tbl.Rows[1]["90s"].Valid)
}

func TestParseWithoutMinutesHasNoNineties(t *testing.T) {
	tbl, err := table.Parse(strings.NewReader("player,team,goals\nIcardi,Galatasaray,12"))
	require.NoError(t, err)
	assert.False(t, tbl.HasColumn("90s"))
}

func TestLoadMissingFile(t *testing.T) {
	loader := table.NewLoader(nil)
	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadUsesCacheUntilInvalidated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stats.csv")
	require.NoError(t, os.WriteFile(path, []byte("player,team,goals\nIcardi,Galatasaray,12\n"), 0o644))

	cache := table.NewCache()
	loader := table.NewLoader(cache)

	first, err := loader.Load(path)
	require.NoError(t, err)

	// Rewrite the file; the cached copy must still be served.
	require.NoError(t, os.WriteFile(path, []byte("player,team,goals\nOsimhen,Galatasaray,20\n"), 0o644))
	second, err := loader.Load(path)
	require.NoError(t, err)
	assert.Same(t, first, second)

	loader.Invalidate(path)
	third, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Osimhen", third.Rows[0]["player"].Text)
}

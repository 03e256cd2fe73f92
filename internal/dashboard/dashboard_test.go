package dashboard_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mauv0809/superlig-stats/internal/dashboard"
	"github.com/mauv0809/superlig-stats/internal/metrics"
	"github.com/mauv0809/superlig-stats/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tackles_joined.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newService(t *testing.T, csv string) (*dashboard.Service, *metrics.MockMetrics) {
	t.Helper()
	mock := metrics.NewMockMetrics()
	svc := dashboard.New(table.NewLoader(nil), mock, writeCSV(t, csv), "Türkiye")
	return svc, mock
}

const statsCSV = `player,team,age,country,minutesPlayed,goals,tackles,accuratePassesPercentage
Demir,GS,27,Türkiye,1800,12,40,88.5
Icardi,GS,32,Argentina,1710,18,5,79.2
Kaya,BJK,21,Türkiye,900,4,62,84.1
Dzeko,FB,39,Bosnia,450,6,8,81.0
`

func TestCardsCoverPresentMetricsOnly(t *testing.T) {
	svc, mock := newService(t, statsCSV)

	cards, err := svc.Cards(dashboard.Filters{Nationality: dashboard.NationalityAll})
	require.NoError(t, err)

	// Only the metrics the table carries produce cards, in layout order.
	require.Len(t, cards, 3)
	assert.Equal(t, "Attacking", cards[0].Group)
	assert.Equal(t, "Goals", cards[0].Title)
	assert.Equal(t, "Top 10 · Goals", cards[0].Subtitle)
	assert.Equal(t, "Possession & Passing", cards[1].Group)
	assert.Equal(t, "Accurate Passes %", cards[1].Title)
	assert.Equal(t, "Defending", cards[2].Group)
	assert.Equal(t, "Tackles", cards[2].Title)

	assert.Equal(t, 3, mock.BoardsBuiltCount)
	assert.Equal(t, 1, mock.TableLoadsCount)
}

func TestCardsBoardsCarryAgeAndCountry(t *testing.T) {
	svc, _ := newService(t, statsCSV)

	cards, err := svc.Cards(dashboard.Filters{Nationality: dashboard.NationalityAll})
	require.NoError(t, err)

	goals := cards[0].Board
	assert.Equal(t, []string{"Rk", "player", "team", "Goals", "Age", "Country"}, goals.Columns)
	assert.Equal(t, []string{"1", "Icardi", "GS", "18", "32", "Argentina"}, goals.Rows[0])
}

func TestCardsNationalityFilter(t *testing.T) {
	svc, _ := newService(t, statsCSV)

	cards, err := svc.Cards(dashboard.Filters{Nationality: dashboard.NationalityDomestic})
	require.NoError(t, err)
	goals := cards[0].Board
	require.Len(t, goals.Rows, 2)
	assert.Equal(t, "Demir", goals.Rows[0][1])
	assert.Equal(t, "Kaya", goals.Rows[1][1])

	cards, err = svc.Cards(dashboard.Filters{Nationality: dashboard.NationalityForeign})
	require.NoError(t, err)
	goals = cards[0].Board
	require.Len(t, goals.Rows, 2)
	assert.Equal(t, "Icardi", goals.Rows[0][1])
}

func TestCardsPer90SkipsPercentageMetrics(t *testing.T) {
	svc, _ := newService(t, statsCSV)

	cards, err := svc.Cards(dashboard.Filters{Nationality: dashboard.NationalityAll, Per90: true})
	require.NoError(t, err)

	// Dzeko: 6 goals in 450 minutes is 1.2 per 90, the best rate.
	goals := cards[0].Board
	assert.Equal(t, "Dzeko", goals.Rows[0][1])
	assert.Equal(t, "1.20", goals.Rows[0][3])

	// The percentage card stays a raw rate.
	passes := cards[1].Board
	assert.Equal(t, "Demir", passes.Rows[0][1])
	assert.Equal(t, "88.50", passes.Rows[0][3])
}

func TestCardSingleMetric(t *testing.T) {
	svc, _ := newService(t, statsCSV)

	minAge := 25
	card, err := svc.Card("tackles", dashboard.Filters{
		Nationality: dashboard.NationalityAll,
		MinAge:      &minAge,
	})
	require.NoError(t, err)

	assert.Equal(t, "Defending", card.Group)
	// Kaya (21) is out by age; Demir leads the rest.
	assert.Equal(t, "Demir", card.Board.Rows[0][1])

	_, err = svc.Card("redCards", dashboard.Filters{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"redCards"`)
}

func TestCardRender(t *testing.T) {
	svc, _ := newService(t, statsCSV)

	card, err := svc.Card("goals", dashboard.Filters{Nationality: dashboard.NationalityAll})
	require.NoError(t, err)

	out := card.Render()
	assert.Contains(t, out, "Goals")
	assert.Contains(t, out, "Icardi")
	// One line per player plus chrome.
	assert.Greater(t, len(strings.Split(out, "\n")), 4)
}

package leaderboard_test

import (
	"testing"

	"github.com/mauv0809/superlig-stats/internal/leaderboard"
	"github.com/mauv0809/superlig-stats/internal/table"
	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		cell table.Cell
		want string
	}{
		{"whole number drops decimals", table.Num(3.0), "3"},
		{"fraction keeps two decimals", table.Num(3.5), "3.50"},
		{"rounds to two decimals", table.Num(1.0 / 3.0), "0.33"},
		{"missing renders empty", table.Cell{}, ""},
		{"negative whole", table.Num(-2), "-2"},
		{"large whole has no separators", table.Num(12345), "12345"},
		{"text passes through", table.Text("Türkiye"), "Türkiye"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, leaderboard.FormatNumber(tc.cell))
		})
	}
}

func TestPrettyLabel(t *testing.T) {
	assert.Equal(t, "Goals", leaderboard.PrettyLabel("goals"))
	assert.Equal(t, "Key Passes", leaderboard.PrettyLabel("key_passes"))
	assert.Equal(t, "Key Passes", leaderboard.PrettyLabel("keyPasses"))
	assert.Equal(t, "Ground Duels Won", leaderboard.PrettyLabel("groundDuelsWon"))
}

func TestCardTitle(t *testing.T) {
	assert.Equal(t, "Accurate Passes %", leaderboard.CardTitle("accuratePassesPercentage"))
	assert.Equal(t, "Goals", leaderboard.CardTitle("goals"))
}

package snapshot

import (
	"time"

	"github.com/mauv0809/superlig-stats/internal/leaderboard"
)

// Snapshot is one persisted leaderboard with the filter summary it was
// built under.
type Snapshot struct {
	ID        string             `json:"id"`
	Metric    string             `json:"metric"`
	Label     string             `json:"label"`
	Filters   string             `json:"filters"`
	CreatedAt time.Time          `json:"created_at"`
	Board     *leaderboard.Board `json:"board"`
}

package notifier

import (
	"github.com/mauv0809/superlig-stats/internal/leaderboard"
	"github.com/mauv0809/superlig-stats/internal/table"
)

// Notifier defines a high-level interface for sending notifications about
// leaderboard results. This decouples the rest of the application from the
// specific notification provider (e.g., Slack).
type Notifier interface {
	// SendBoard posts a built leaderboard with its filter summary.
	SendBoard(board *leaderboard.Board, filters string, dryRun bool) error
	// SendTopTacklers posts the top-tacklers table for a season.
	SendTopTacklers(t *table.Table, season string, dryRun bool) error
}

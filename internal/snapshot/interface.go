package snapshot

import "github.com/mauv0809/superlig-stats/internal/leaderboard"

// Store persists leaderboard snapshots.
type Store interface {
	// Save persists the board and returns the new snapshot's ID. filters
	// is a human-readable summary of the settings the board was built
	// under.
	Save(board *leaderboard.Board, filters string) (string, error)
	// List returns the most recent snapshots, newest first. limit <= 0
	// means no limit.
	List(limit int) ([]Snapshot, error)
	// Clear removes all snapshots.
	Clear() error
}

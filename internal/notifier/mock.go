package notifier

import (
	"sync"

	"github.com/mauv0809/superlig-stats/internal/leaderboard"
	"github.com/mauv0809/superlig-stats/internal/table"
)

var _ Notifier = (*Mock)(nil)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	SendBoardFunc       func(board *leaderboard.Board, filters string, dryRun bool) error
	SendTopTacklersFunc func(t *table.Table, season string, dryRun bool) error

	SendBoardCalls []struct {
		Board   *leaderboard.Board
		Filters string
		DryRun  bool
	}
	SendTopTacklersCalls []struct {
		Table  *table.Table
		Season string
		DryRun bool
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SendBoard(board *leaderboard.Board, filters string, dryRun bool) error {
	m.mu.Lock()
	m.SendBoardCalls = append(m.SendBoardCalls, struct {
		Board   *leaderboard.Board
		Filters string
		DryRun  bool
	}{board, filters, dryRun})
	m.mu.Unlock()
	if m.SendBoardFunc != nil {
		return m.SendBoardFunc(board, filters, dryRun)
	}
	return nil
}

func (m *Mock) SendTopTacklers(t *table.Table, season string, dryRun bool) error {
	m.mu.Lock()
	m.SendTopTacklersCalls = append(m.SendTopTacklersCalls, struct {
		Table  *table.Table
		Season string
		DryRun bool
	}{t, season, dryRun})
	m.mu.Unlock()
	if m.SendTopTacklersFunc != nil {
		return m.SendTopTacklersFunc(t, season, dryRun)
	}
	return nil
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendBoardCalls = nil
	m.SendTopTacklersCalls = nil
}

package snapshot

import (
	"sync"

	"github.com/mauv0809/superlig-stats/internal/leaderboard"
)

var _ Store = (*MockStore)(nil)

// MockStore is a mock implementation of the Store interface for testing.
type MockStore struct {
	mu sync.Mutex

	SaveFunc  func(board *leaderboard.Board, filters string) (string, error)
	ListFunc  func(limit int) ([]Snapshot, error)
	ClearFunc func() error

	SaveCalls []struct {
		Board   *leaderboard.Board
		Filters string
	}
	ListCalls  []int
	ClearCalls int
}

// NewMockStore creates a new mock instance.
func NewMockStore() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Save(board *leaderboard.Board, filters string) (string, error) {
	m.mu.Lock()
	m.SaveCalls = append(m.SaveCalls, struct {
		Board   *leaderboard.Board
		Filters string
	}{board, filters})
	m.mu.Unlock()
	if m.SaveFunc != nil {
		return m.SaveFunc(board, filters)
	}
	return "mock-snapshot-id", nil
}

func (m *MockStore) List(limit int) ([]Snapshot, error) {
	m.mu.Lock()
	m.ListCalls = append(m.ListCalls, limit)
	m.mu.Unlock()
	if m.ListFunc != nil {
		return m.ListFunc(limit)
	}
	return nil, nil
}

func (m *MockStore) Clear() error {
	m.mu.Lock()
	m.ClearCalls++
	m.mu.Unlock()
	if m.ClearFunc != nil {
		return m.ClearFunc()
	}
	return nil
}

// Reset clears all recorded calls.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls = nil
	m.ListCalls = nil
	m.ClearCalls = 0
}

package sofascore

import (
	"sync"

	"github.com/mauv0809/superlig-stats/internal/table"
)

// MockClient is a mock implementation of the Client interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	LeagueStatsFunc func(season, league, accumulation string) (*table.Table, error)
	PlayerInfoFunc  func(playerName string) (PlayerInfo, error)

	// Call records
	LeagueStatsCalls []string
	PlayerInfoCalls  []string
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LeagueStatsCalls = nil
	m.PlayerInfoCalls = nil
}

func (m *MockClient) LeagueStats(season, league, accumulation string) (*table.Table, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LeagueStatsCalls = append(m.LeagueStatsCalls, season)
	if m.LeagueStatsFunc != nil {
		return m.LeagueStatsFunc(season, league, accumulation)
	}
	return &table.Table{}, nil
}

func (m *MockClient) PlayerInfo(playerName string) (PlayerInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PlayerInfoCalls = append(m.PlayerInfoCalls, playerName)
	if m.PlayerInfoFunc != nil {
		return m.PlayerInfoFunc(playerName)
	}
	return PlayerInfo{}, nil
}

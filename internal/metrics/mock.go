package metrics

import "sync"

// MockMetrics is a mock implementation of the Metrics interface for
// testing. It is safe for concurrent use.
type MockMetrics struct {
	mu sync.Mutex

	TableLoadsCount       int
	BoardsBuiltCount      int
	ScrapeFallbacksCount  int
	SlackNotifSentCount   int
	SlackNotifFailedCount int
	StartupTime           float64
}

var _ Metrics = (*MockMetrics)(nil)

// NewMockMetrics creates a new mock instance.
func NewMockMetrics() *MockMetrics {
	return &MockMetrics{}
}

func (m *MockMetrics) IncTableLoads() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TableLoadsCount++
}

func (m *MockMetrics) IncBoardsBuilt() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BoardsBuiltCount++
}

func (m *MockMetrics) IncScrapeFallbacks() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ScrapeFallbacksCount++
}

func (m *MockMetrics) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackNotifSentCount++
}

func (m *MockMetrics) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackNotifFailedCount++
}

func (m *MockMetrics) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTime = duration
}

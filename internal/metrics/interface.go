package metrics

// Metrics defines the application-level observability hooks. Components
// take this interface so tests can inject the mock.
type Metrics interface {
	IncTableLoads()
	IncBoardsBuilt()
	IncScrapeFallbacks()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}

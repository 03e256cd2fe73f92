package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		TableLoads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "superlig_table_loads_total",
			Help: "The total number of stats-table load requests (cache hits included).",
		}),
		BoardsBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "superlig_boards_built_total",
			Help: "The total number of leaderboard tables built.",
		}),
		ScrapeFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "superlig_scrape_fallbacks_total",
			Help: "The total number of times the tacklers extractor fell back to live scraping.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "superlig_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "superlig_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "superlig_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.TableLoads,
		s.BoardsBuilt,
		s.ScrapeFallbacks,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncTableLoads() {
	s.TableLoads.Inc()
}

func (s *Service) IncBoardsBuilt() {
	s.BoardsBuilt.Inc()
}

func (s *Service) IncScrapeFallbacks() {
	s.ScrapeFallbacks.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}

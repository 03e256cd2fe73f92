package http

import (
	"net/http"

	"github.com/mauv0809/superlig-stats/internal/config"
	"github.com/mauv0809/superlig-stats/internal/dashboard"
	"github.com/mauv0809/superlig-stats/internal/metrics"
	"github.com/mauv0809/superlig-stats/internal/notifier"
	"github.com/mauv0809/superlig-stats/internal/snapshot"
	"github.com/mauv0809/superlig-stats/internal/table"
	"github.com/mauv0809/superlig-stats/internal/tacklers"
)

func NewServer(store snapshot.Store, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, dashboardSvc *dashboard.Service, tacklersExt *tacklers.Extractor, notifier notifier.Notifier, loader *table.Loader) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Dashboard:      dashboardSvc,
		Tacklers:       tacklersExt,
		Notifier:       notifier,
		Loader:         loader,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/leaderboards", Chain(s.LeaderboardsHandler(), paramsMiddleware))
	s.Router.Handle("/tacklers", Chain(s.TacklersHandler(), paramsMiddleware))
	s.Router.Handle("/notify-leaderboard", Chain(s.NotifyLeaderboardHandler(), paramsMiddleware))
	s.Router.Handle("/snapshots", Chain(s.SnapshotsHandler(), paramsMiddleware))
	s.Router.Handle("/reload", Chain(s.ReloadHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

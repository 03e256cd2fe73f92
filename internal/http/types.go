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

type Server struct {
	Store          snapshot.Store
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Dashboard      *dashboard.Service
	Tacklers       *tacklers.Extractor
	Notifier       notifier.Notifier
	Loader         *table.Loader
	Router         *http.ServeMux
}

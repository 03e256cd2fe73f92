package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds the Prometheus collectors for the stats service.
type Service struct {
	TableLoads         prometheus.Counter
	BoardsBuilt        prometheus.Counter
	ScrapeFallbacks    prometheus.Counter
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}

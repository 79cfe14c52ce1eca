// Package observability exports the monitor's own health as Prometheus
// metrics.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type PromObs struct {
	ticks             prometheus.Counter
	tickDuration      prometheus.Histogram
	collectorFailures *prometheus.CounterVec
	publishFailures   prometheus.Counter
	snapshotsStored   prometheus.Counter
	wsClients         prometheus.Gauge
}

func NewPromObs(reg prometheus.Registerer) *PromObs {
	p := &PromObs{
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "monitor_ticks_total",
			Help: "Collection ticks completed.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "monitor_tick_duration_seconds",
			Help:    "Time spent sampling all domains in one tick.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		collectorFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "monitor_collector_failures_total",
			Help: "Domains left out of a snapshot because their collector failed.",
		}, []string{"domain"}),
		publishFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "monitor_publish_failures_total",
			Help: "Snapshots that could not be delivered to the server.",
		}),
		snapshotsStored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "monitor_snapshots_stored_total",
			Help: "Snapshots accepted into the server cache.",
		}),
		wsClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "monitor_ws_clients",
			Help: "Currently connected websocket clients.",
		}),
	}

	reg.MustRegister(
		p.ticks,
		p.tickDuration,
		p.collectorFailures,
		p.publishFailures,
		p.snapshotsStored,
		p.wsClients,
	)

	return p
}

func (p *PromObs) ObserveTick(d time.Duration) {
	p.ticks.Inc()
	p.tickDuration.Observe(d.Seconds())
}

func (p *PromObs) CollectorFailed(name string) {
	p.collectorFailures.WithLabelValues(name).Inc()
}

func (p *PromObs) PublishFailed() {
	p.publishFailures.Inc()
}

func (p *PromObs) SnapshotStored() {
	p.snapshotsStored.Inc()
}

func (p *PromObs) SetWsClients(n int) {
	p.wsClients.Set(float64(n))
}

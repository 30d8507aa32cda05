// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Alert metrics
	AlertsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "overlay_alerts_total",
			Help: "Total number of alert triggers by outcome",
		},
		[]string{"status"}, // status: played, failed, dropped
	)

	AlertDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "overlay_alert_duration_seconds",
			Help:    "Time from show to stop of one alert",
			Buckets: []float64{1, 2.5, 5, 7.5, 10, 15, 20, 30, 60},
		},
	)

	AlertQueueSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "overlay_alert_queue_size",
			Help: "Alerts waiting behind the one on screen",
		},
	)

	// Engine metrics
	ActiveParticles = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "overlay_active_particles",
			Help: "Live particles per effect of the active set",
		},
		[]string{"effect"},
	)

	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "overlay_tick_duration_seconds",
			Help:    "Wall time spent in one simulation tick",
			Buckets: []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025},
		},
	)

	FramesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "overlay_frames_total",
			Help: "Total number of rendered frames",
		},
	)
)

// Alert statuses
const (
	StatusPlayed  = "played"
	StatusFailed  = "failed"
	StatusDropped = "dropped"
)

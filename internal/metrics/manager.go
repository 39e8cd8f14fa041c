// Package metrics exposes the Prometheus instruments of the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests           *prometheus.CounterVec
	CounterHandleRequestPanic prometheus.Counter
	CounterDraftsSuggested    *prometheus.CounterVec
	CounterResultsRecorded    *prometheus.CounterVec
	CounterSetsRecorded       prometheus.Counter
	CounterCardioLogged       prometheus.Counter

	// gauges
	GaugeRequests prometheus.Gauge

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
	HistogramDraftSize       prometheus.Histogram
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("fitfokus", "test", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	return &Manager{
		CounterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "The total number of incoming requests",
		}, []string{"method", "status"}),
		CounterHandleRequestPanic: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "handle_request_panics_total",
			Help:      "The total number of recovered request panics",
		}),
		CounterDraftsSuggested: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "drafts_suggested_total",
			Help:      "The total number of workout drafts suggested by plan type",
		}, []string{"plan_type"}),
		CounterResultsRecorded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "results_recorded_total",
			Help:      "The total number of recorded workout results by plan type",
		}, []string{"plan_type"}),
		CounterSetsRecorded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "sets_recorded_total",
			Help:      "The total number of sets upserted",
		}),
		CounterCardioLogged: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cardio_sessions_logged_total",
			Help:      "The total number of cardio sessions logged",
		}),
		GaugeRequests: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "current_requests",
			Help:        "Current number of requests served",
			ConstLabels: nil,
		}),
		HistogramRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Histogram of response time for requests in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"route", "method", "status_code"}),
		HistogramDraftSize: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "draft_exercises",
			Help:      "Number of exercises in suggested drafts",
			Buckets:   prometheus.LinearBuckets(1, 1, 12), //nolint:mnd // drafts hold at most 12 exercises
		}),
	}
}

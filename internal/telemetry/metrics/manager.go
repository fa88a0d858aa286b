package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter
	CounterEngineEvents        *prometheus.CounterVec
	CounterCacheLookups        *prometheus.CounterVec
	CounterSamplesDropped      prometheus.Counter
	CounterDaysComputed        prometheus.Counter
	CounterDayFailures         prometheus.Counter

	// gauges
	GaugeLifeSignal   prometheus.Gauge
	GaugeRequests     prometheus.Gauge
	GaugeDaysInFlight prometheus.Gauge

	// histograms
	HistRequestDuration    prometheus.Histogram
	HistDayComputeDuration prometheus.Histogram
	HistDayTrimp           prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("hrload", "test", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("hrload", "test", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of panics recovered while handling a request",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_request",
		Help:      "The total number of requests rejected by the rate limiter",
	})
	counterEngineEvents := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "engine_events",
		Help:      "The total number of diagnostic events emitted by the engine",
	}, []string{"event"})
	counterCacheLookups := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "cache_lookups",
		Help:      "The total number of TRIMP result cache lookups",
	}, []string{"result"})
	counterSamplesDropped := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "samples_dropped",
		Help:      "The total number of malformed heart rate samples dropped",
	})
	counterDaysComputed := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "days_computed",
		Help:      "The total number of days recomputed and stored",
	})
	counterDayFailures := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "day_failures",
		Help:      "The total number of days that failed to load or store",
	})

	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "1 while the service is up and serving",
	})
	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "requests",
		Help:      "Current number of open connections",
	})
	gaugeDaysInFlight := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "days_in_flight",
		Help:      "Current number of days being recomputed",
	})

	histRequestDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Request duration in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	})
	histDayComputeDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "day_compute_duration_seconds",
		Help:      "Duration of a single day recompute (load, engine, store) in seconds",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	})
	histDayTrimp := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "day_trimp",
		Help:      "Distribution of the daily total TRIMP",
		Buckets:   []float64{0, 25, 50, 100, 150, 250, 400, 600},
	})

	return &Manager{
		CounterRequests:            counterRequests,
		CounterHandleRequestPanic:  counterHandleRequestPanic,
		CounterRateLimitedRequests: counterRateLimitedRequests,
		CounterEngineEvents:        counterEngineEvents,
		CounterCacheLookups:        counterCacheLookups,
		CounterSamplesDropped:      counterSamplesDropped,
		CounterDaysComputed:        counterDaysComputed,
		CounterDayFailures:         counterDayFailures,
		GaugeLifeSignal:            gaugeLifeSignal,
		GaugeRequests:              gaugeRequests,
		GaugeDaysInFlight:          gaugeDaysInFlight,
		HistRequestDuration:        histRequestDuration,
		HistDayComputeDuration:     histDayComputeDuration,
		HistDayTrimp:               histDayTrimp,
	}
}

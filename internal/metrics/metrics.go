package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// API server metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roman_http_requests_total",
		Help: "Total HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "roman_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"route", "method"})

	RateLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roman_rate_limit_hits_total",
		Help: "Total rate limit rejections",
	})
)

// Engine metrics. The transliterator itself stays pure; the handlers
// record these around the call.
var (
	RomanizationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roman_romanizations_total",
		Help: "Romanization calls by outcome (changed or passthrough)",
	}, []string{"outcome"})

	RomanizationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "roman_romanization_duration_seconds",
		Help:    "Romanization call duration in seconds",
		Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01},
	})

	RomanizationInputRunes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "roman_romanization_input_runes",
		Help:    "Input length of romanization calls in runes",
		Buckets: []float64{10, 50, 100, 500, 1000, 5000, 10000},
	})
)

// Transcript store metrics.
var (
	TranscriptsStored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roman_transcripts_stored_total",
		Help: "Transcripts persisted through the API",
	})

	TranscriptsPurged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roman_transcripts_purged_total",
		Help: "Transcripts removed by the retention sweep",
	})
)

// Database pool metrics (gauges updated periodically, postgres only).
var (
	DBPoolTotalConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "roman_db_pool_total_conns",
		Help: "Total number of connections in the pool",
	})

	DBPoolIdleConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "roman_db_pool_idle_conns",
		Help: "Number of idle connections in the pool",
	})

	DBPoolAcquiredConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "roman_db_pool_acquired_conns",
		Help: "Number of acquired connections in the pool",
	})

	DBPoolMaxConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "roman_db_pool_max_conns",
		Help: "Max connections configured for the pool",
	})
)

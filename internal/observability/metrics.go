// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Forecast metrics
	ForecastRunsTotal prometheus.Counter
	ForecastDuration  prometheus.Histogram
	ModelRunsTotal    *prometheus.CounterVec
	PathsSimulated    *prometheus.CounterVec

	// Ingestion metrics
	ReturnPointsStored prometheus.Counter

	// Database metrics
	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec

	// Health metrics
	LastSuccessfulForecast prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "valuation_lab"
	}

	return &Metrics{
		// Forecast metrics
		ForecastRunsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "forecast",
			Name:      "runs_total",
			Help:      "Total number of forecast runs completed",
		}),
		ForecastDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "forecast",
			Name:      "duration_seconds",
			Help:      "Forecast run duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
		}),
		ModelRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "forecast",
			Name:      "model_runs_total",
			Help:      "Total number of single-model simulation runs by model",
		}, []string{"model"}),
		PathsSimulated: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "forecast",
			Name:      "paths_simulated_total",
			Help:      "Total number of simulated paths by model",
		}, []string{"model"}),

		// Ingestion metrics
		ReturnPointsStored: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingestion",
			Name:      "return_points_stored_total",
			Help:      "Total number of return-series points stored to database",
		}),

		// Database metrics
		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "database",
			Name:      "query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"database", "operation"}),
		DBQueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "database",
			Name:      "query_errors_total",
			Help:      "Total number of database query errors",
		}, []string{"database", "operation"}),

		// Health metrics
		LastSuccessfulForecast: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "health",
			Name:      "last_successful_forecast_timestamp",
			Help:      "Unix timestamp of last successful forecast run",
		}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

// RecordForecastRun records a completed forecast run.
func RecordForecastRun(assetID string, seconds float64) {
	_ = assetID // asset cardinality is unbounded, kept out of label space
	DefaultMetrics.ForecastRunsTotal.Inc()
	DefaultMetrics.ForecastDuration.Observe(seconds)
	DefaultMetrics.LastSuccessfulForecast.SetToCurrentTime()
}

// RecordModelRun records one single-model simulation run.
func RecordModelRun(model string, paths int) {
	DefaultMetrics.ModelRunsTotal.WithLabelValues(model).Inc()
	DefaultMetrics.PathsSimulated.WithLabelValues(model).Add(float64(paths))
}

// RecordReturnPointsStored increments the return points stored counter.
func RecordReturnPointsStored(n int) {
	DefaultMetrics.ReturnPointsStored.Add(float64(n))
}

// RecordDBQuery records database query metrics.
func RecordDBQuery(database, operation string, seconds float64, err error) {
	DefaultMetrics.DBQueryDuration.WithLabelValues(database, operation).Observe(seconds)
	if err != nil {
		DefaultMetrics.DBQueryErrors.WithLabelValues(database, operation).Inc()
	}
}

package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	statisticsComputed   *prometheus.CounterVec
	anomaliesDetected    *prometheus.CounterVec
	simulationsRun       prometheus.Counter
	simulationDuration   prometheus.Histogram
	transactionsRecorded *prometheus.CounterVec
	reportsGenerated     prometheus.Counter
	healthScore          prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		statisticsComputed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "category_statistics_computed_total",
				Help: "Total number of category statistics computations",
			},
			[]string{"category"},
		),
		anomaliesDetected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "anomalies_detected_total",
				Help: "Total number of transactions flagged as anomalous",
			},
			[]string{"category"},
		),
		simulationsRun: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "simulations_run_total",
				Help: "Total number of Monte Carlo simulations executed",
			},
		),
		simulationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "simulation_duration_milliseconds",
				Help:    "Monte Carlo simulation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_recorded_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"category"},
		),
		reportsGenerated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "monthly_reports_generated_total",
				Help: "Total number of monthly reports generated",
			},
		),
		healthScore: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "latest_health_score",
				Help: "Most recently computed budget health score",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	category := tags["category"]

	switch name {
	case "statistics_computed":
		m.statisticsComputed.WithLabelValues(category).Inc()
	case "anomalies_detected":
		m.anomaliesDetected.WithLabelValues(category).Inc()
	case "simulations_run":
		m.simulationsRun.Inc()
	case "transactions_recorded":
		m.transactionsRecorded.WithLabelValues(category).Inc()
	case "reports_generated":
		m.reportsGenerated.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "simulation":
		m.simulationDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "health_score":
		m.healthScore.Set(value)
	}
}

package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	analyticsRequests   *prometheus.CounterVec
	seriesBuildDuration prometheus.Histogram
	seriesMonthsOmitted *prometheus.CounterVec
	seriesPointCount    prometheus.Gauge
	healthScoreValue    prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		analyticsRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_requests_total",
				Help: "Total number of analytics computations by operation and status",
			},
			[]string{"operation", "status"},
		),
		seriesBuildDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "series_build_duration_milliseconds",
				Help:    "Historical series build duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		seriesMonthsOmitted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "series_months_omitted_total",
				Help: "Months dropped from a historical series by reason",
			},
			[]string{"reason"},
		),
		seriesPointCount: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "series_point_count",
				Help: "Number of points in the most recent historical series",
			},
		),
		healthScoreValue: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "health_score_value",
				Help:    "Distribution of evaluated health scores",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]
	reason := tags["reason"]
	status := tags["status"]

	switch name {
	case "analytics.request":
		if status == "" {
			status = "success"
		}
		m.analyticsRequests.WithLabelValues(operation, status).Inc()
	case "series.month.omitted":
		if reason == "" {
			reason = "unknown"
		}
		m.seriesMonthsOmitted.WithLabelValues(reason).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "series.build":
		m.seriesBuildDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "series.points":
		m.seriesPointCount.Set(value)
	case "health.score":
		m.healthScoreValue.Observe(value)
	}
}

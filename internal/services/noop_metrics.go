package services

import "time"

// noopMetrics discards all recordings. Used in tests and wherever no
// Prometheus registry is wired.
type noopMetrics struct{}

// NewNoopMetrics creates a recorder that discards everything
func NewNoopMetrics() MetricsRecorderInterface {
	return noopMetrics{}
}

func (noopMetrics) IncrementCounter(name string, tags map[string]string) {}

func (noopMetrics) RecordProcessingTime(name string, duration time.Duration) {}

func (noopMetrics) RecordGauge(name string, value float64, tags map[string]string) {}

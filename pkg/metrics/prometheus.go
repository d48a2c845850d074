package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	messagesSent   *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec
	lastPrice      *prometheus.GaugeVec
	latency        *prometheus.HistogramVec
	payloads       *prometheus.CounterVec
	recordsDropped *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		messagesSent: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goldpulse_messages_sent_total",
				Help: "Total number of messages sent to backend",
			},
			[]string{"backend", "category"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goldpulse_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "goldpulse_last_price",
				Help: "Last recorded price for a category",
			},
			[]string{"category"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "goldpulse_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		payloads: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goldpulse_payloads_normalized_total",
				Help: "Total upstream payloads run through the normalization pipeline",
			},
			[]string{"category", "format"},
		),
		recordsDropped: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goldpulse_records_dropped_total",
				Help: "Total malformed records skipped during normalization",
			},
			[]string{"category"},
		),
	}
}

// RecordMessageSent records a message sent to a backend.
func (r *Recorder) RecordMessageSent(backend, category string) {
	r.messagesSent.WithLabelValues(backend, category).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLastPrice records the last price for a category.
func (r *Recorder) RecordLastPrice(category string, price float64) {
	r.lastPrice.WithLabelValues(category).Set(price)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordPayload records a normalized upstream payload by detected format.
func (r *Recorder) RecordPayload(category, format string) {
	r.payloads.WithLabelValues(category, format).Inc()
}

// RecordRecordsDropped records malformed records skipped for a category.
func (r *Recorder) RecordRecordsDropped(category string, n int) {
	if n > 0 {
		r.recordsDropped.WithLabelValues(category).Add(float64(n))
	}
}

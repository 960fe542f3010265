package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "coderkit"

const (
	OpEncode = "encode"
	OpDecode = "decode"
)

var SizeBuckets = prometheus.ExponentialBuckets(16, 4, 10)

// Collector holds encode/decode instrumentation for coders. A nil *Collector
// is valid and records nothing.
type Collector struct {
	Calls        *prometheus.CounterVec
	Errors       *prometheus.CounterVec
	PlainBytes   *prometheus.CounterVec
	EncodedBytes *prometheus.CounterVec
	EncodedSize  *prometheus.HistogramVec
}

// NewCollector creates coder metrics and registers them with reg. reg may be
// nil, in which case the metrics are left unregistered.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		Calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calls_total",
			Help:      "Total number of encode and decode calls",
		}, []string{"coder", "op"}),

		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Total number of failed encode and decode calls",
		}, []string{"coder", "op"}),

		PlainBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plain_bytes_total",
			Help:      "Bytes of base encoding before compression",
		}, []string{"coder", "op"}),

		EncodedBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "encoded_bytes_total",
			Help:      "Bytes of final encoding after compression",
		}, []string{"coder", "op"}),

		EncodedSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "encoded_size_bytes",
			Help:      "Size of final encodings",
			Buckets:   SizeBuckets,
		}, []string{"coder", "op"}),
	}

	if reg != nil {
		reg.MustRegister(c.Calls, c.Errors, c.PlainBytes, c.EncodedBytes, c.EncodedSize)
	}
	return c
}

// RecordCall records a successful call. plain is the size of the base
// encoding and encoded the size of the bytes handed out or received.
func (c *Collector) RecordCall(coder, op string, plain, encoded int) {
	if c == nil {
		return
	}
	c.Calls.WithLabelValues(coder, op).Inc()
	c.PlainBytes.WithLabelValues(coder, op).Add(float64(plain))
	c.EncodedBytes.WithLabelValues(coder, op).Add(float64(encoded))
	c.EncodedSize.WithLabelValues(coder, op).Observe(float64(encoded))
}

// RecordError records a failed call.
func (c *Collector) RecordError(coder, op string) {
	if c == nil {
		return
	}
	c.Calls.WithLabelValues(coder, op).Inc()
	c.Errors.WithLabelValues(coder, op).Inc()
}

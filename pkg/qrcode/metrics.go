package qrcode

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values of the encode counter.
const (
	OutcomeSuccess = "success"
	OutcomeEmpty   = "empty"
	OutcomeError   = "error"
)

// Metrics holds the prometheus collectors describing encoder activity.
type Metrics struct {
	total    *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewMetrics creates the encoder collectors and registers them on reg.
// Collectors already registered by an earlier call are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "qrform",
			Name:      "encode_total",
			Help:      "Number of QR encode attempts by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "qrform",
			Name:      "encode_duration_seconds",
			Help:      "Time spent encoding QR codes.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 10),
		}),
	}
	if reg == nil {
		return m, nil
	}

	if err := reg.Register(m.total); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		m.total = are.ExistingCollector.(*prometheus.CounterVec)
	}
	if err := reg.Register(m.duration); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		m.duration = are.ExistingCollector.(prometheus.Histogram)
	}
	return m, nil
}

func (m *Metrics) observe(err error, d time.Duration) {
	if m == nil {
		return
	}
	m.total.WithLabelValues(outcome(err)).Inc()
	if d > 0 {
		m.duration.Observe(d.Seconds())
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrEmptyContent):
		return OutcomeEmpty
	default:
		return OutcomeError
	}
}

package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const (
	OutcomeAccepted    = "accepted"
	OutcomeUnavailable = "unavailable"
	OutcomeInvalid     = "invalid"
)

// Recorder counts booking outcomes and admission latency.
type Recorder struct {
	requests *prometheus.CounterVec
	latency  prometheus.Histogram
}

func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cabbook",
			Subsystem: "booking",
			Name:      "requests_total",
			Help:      "Booking requests by outcome.",
		}, []string{"outcome"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cabbook",
			Subsystem: "booking",
			Name:      "admission_seconds",
			Help:      "Time spent deciding and issuing a booking.",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10),
		}),
	}
	for _, c := range []prometheus.Collector{r.requests, r.latency} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	// pre-create series so they show up as zero
	for _, o := range []string{OutcomeAccepted, OutcomeUnavailable, OutcomeInvalid} {
		r.requests.WithLabelValues(o)
	}
	return r, nil
}

func (r *Recorder) Observe(outcome string, d time.Duration) {
	r.requests.WithLabelValues(outcome).Inc()
	r.latency.Observe(d.Seconds())
}

// WriteText dumps everything g gathers in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return nil
}

// Package metrics exposes prometheus collectors for the cache layer.
package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder implements cache.Metrics on top of a prometheus counter vector.
type Recorder struct {
	ops *prometheus.CounterVec
}

// NewRecorder builds the collector set and registers it on reg. Passing
// prometheus.DefaultRegisterer wires the standard /metrics endpoint.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "carpool_cache_operations_total",
			Help: "Cache operations partitioned by entity domain and outcome.",
		}, []string{"domain", "op"}),
	}
	reg.MustRegister(r.ops)
	return r
}

func (r *Recorder) Hit(domain string) {
	r.ops.WithLabelValues(domain, "hit").Inc()
}

func (r *Recorder) Miss(domain string) {
	r.ops.WithLabelValues(domain, "miss").Inc()
}

// Invalidate receives the bare pattern, e.g. "travel:*"; the domain label is
// everything before the first colon.
func (r *Recorder) Invalidate(pattern string) {
	domain := pattern
	if i := strings.IndexByte(pattern, ':'); i >= 0 {
		domain = pattern[:i]
	}
	r.ops.WithLabelValues(domain, "invalidate").Inc()
}

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_CountsByDomainAndOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.Hit("travel")
	r.Hit("travel")
	r.Miss("travel")
	r.Miss("user")
	r.Invalidate("travel:*")
	r.Invalidate("inscription:*")

	assert.Equal(t, float64(2), testutil.ToFloat64(r.ops.WithLabelValues("travel", "hit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.ops.WithLabelValues("travel", "miss")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.ops.WithLabelValues("user", "miss")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.ops.WithLabelValues("travel", "invalidate")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.ops.WithLabelValues("inscription", "invalidate")))
}

func TestRecorder_InvalidateStripsPatternSuffix(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.Invalidate("auth:*")
	r.Invalidate("nopattern")

	assert.Equal(t, float64(1), testutil.ToFloat64(r.ops.WithLabelValues("auth", "invalidate")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.ops.WithLabelValues("nopattern", "invalidate")))
}

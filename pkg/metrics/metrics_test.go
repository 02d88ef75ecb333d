package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAuthzDecision(t *testing.T) {
	before := testutil.ToFloat64(authzDecisionsTotal.WithLabelValues("faq", OutcomeDeny))
	AuthzDecision("faq", OutcomeDeny)
	assert.Equal(t, before+1, testutil.ToFloat64(authzDecisionsTotal.WithLabelValues("faq", OutcomeDeny)))
}

func TestJobRun(t *testing.T) {
	before := testutil.ToFloat64(jobTransitionsTotal.WithLabelValues("disabling"))
	JobRun("disabling", ResultOK, 3, time.Second)
	JobRun("disabling", ResultOK, 0, 0)
	assert.Equal(t, before+3, testutil.ToFloat64(jobTransitionsTotal.WithLabelValues("disabling")))
	assert.Equal(t, float64(2), testutil.ToFloat64(jobRunsTotal.WithLabelValues("disabling", ResultOK)))
}

func TestInitIsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Init()
		Init()
	})
}

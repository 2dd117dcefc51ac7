package metrics

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPMetrics_SecondInstanceDoesNotPanic(t *testing.T) {
	require.NotPanics(t, func() {
		NewHTTPMetrics("service-a")
		NewHTTPMetrics("service-b")
	})
}

func TestObserveFanOut(t *testing.T) {
	NewHTTPMetrics("service-a")

	before := counterValue(t, "system")
	ObserveFanOut("system", 42)
	assert.Equal(t, before+42, counterValue(t, "system"))
}

func counterValue(t *testing.T, kind string) float64 {
	t.Helper()
	c, err := NotificationFanOutCounter.GetMetricWithLabelValues(kind)
	require.NoError(t, err)

	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

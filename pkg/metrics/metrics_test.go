package metrics_test

import (
	"context"
	"strings"
	"testing"
	"time"
	"utilbox/pkg/metrics"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func findFamily(families []*dto.MetricFamily, prefix string) *dto.MetricFamily {
	for _, f := range families {
		if strings.HasPrefix(f.GetName(), prefix) {
			return f
		}
	}

	return nil
}

func TestMetrics_ObserveIsExported(t *testing.T) {
	reg := metrics.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Shutdown(context.Background()) })

	ctx := context.Background()
	m.Observe(ctx, "tip", metrics.OutcomeOK, 2*time.Millisecond)
	m.Observe(ctx, "tip", metrics.OutcomeInvalid, time.Millisecond)
	m.Observe(ctx, "palindrome", metrics.OutcomeOK, time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	ops := findFamily(families, "utilbox_operations")
	require.NotNil(t, ops, "operations counter should be exported")
	require.Len(t, ops.GetMetric(), 3)

	var total float64
	for _, m := range ops.GetMetric() {
		total += m.GetCounter().GetValue()
	}
	require.InDelta(t, 3, total, 0)

	dur := findFamily(families, "utilbox_operation_duration")
	require.NotNil(t, dur, "duration histogram should be exported")
	require.Equal(t, dto.MetricType_HISTOGRAM, dur.GetType())

	require.NotNil(t, findFamily(families, "go_goroutines"))
}

func TestNop(t *testing.T) {
	require.NotPanics(t, func() {
		metrics.Nop().Observe(context.Background(), "count", metrics.OutcomeOK, time.Second)
	})
}

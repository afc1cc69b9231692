package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

// collect drains every sample c currently exposes
func collect(t *testing.T, c prometheus.Collector) []*dto.Metric {
	t.Helper()
	ch := make(chan prometheus.Metric)
	go func() {
		c.Collect(ch)
		close(ch)
	}()

	var out []*dto.Metric
	for m := range ch {
		pb := &dto.Metric{}
		require.NoError(t, m.Write(pb))
		out = append(out, pb)
	}
	return out
}

// value sums the counter and gauge samples of c
func value(t *testing.T, c prometheus.Collector) float64 {
	t.Helper()
	var sum float64
	for _, m := range collect(t, c) {
		switch {
		case m.Counter != nil:
			sum += m.Counter.GetValue()
		case m.Gauge != nil:
			sum += m.Gauge.GetValue()
		}
	}
	return sum
}

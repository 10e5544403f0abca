package metrics

import (
	"testing"

	"github.com/basestationlabs/rframe/parser"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Collector) float64 {
	t.Helper()
	ch := make(chan prometheus.Metric, 1)
	c.Collect(ch)
	m := &dto.Metric{}
	require.NoError(t, (<-ch).Write(m))
	return m.GetCounter().GetValue()
}

func TestRecorderCountsParseOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.ObserveParse(parser.ResultSuccess)
	r.ObserveParse(parser.ResultSuccess)
	r.ObserveParse(parser.ResultCRCMismatch)

	require.Equal(t, float64(2), counterValue(t, r.parseTotal.WithLabelValues("success")))
	require.Equal(t, float64(1), counterValue(t, r.parseTotal.WithLabelValues("crc_mismatch")))
}

func TestRecorderCountsBufferOverflow(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.ObserveBufferOverflow()
	r.ObserveBufferOverflow()

	require.Equal(t, float64(2), counterValue(t, r.bufferOverflowTotal))
}

func TestRecorderCountsDispatchByCmd(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.ObserveDispatch(0x0201)
	r.ObserveDispatch(0x0201)
	r.ObserveDispatch(0x0304)

	require.Equal(t, float64(2), counterValue(t, r.dispatchTotal.WithLabelValues("0x201")))
	require.Equal(t, float64(1), counterValue(t, r.dispatchTotal.WithLabelValues("0x304")))
}

// Package metrics adapts the parser's Metrics hook onto Prometheus
// collectors, the same instrumentation shape used elsewhere in the
// retrieved pack's services (counters for outcome totals, keyed by a
// result label, plus a plain overflow counter and a per-command
// dispatch counter).
package metrics

import (
	"strconv"

	"github.com/basestationlabs/rframe/parser"
	"github.com/prometheus/client_golang/prometheus"
)

// resultLabel maps a parser.Result to the label value recorded on the
// rframe_parse_total counter.
func resultLabel(r parser.Result) string {
	switch r {
	case parser.ResultSuccess:
		return "success"
	case parser.ResultIncomplete:
		return "incomplete"
	case parser.ResultCRCMismatch:
		return "crc_mismatch"
	case parser.ResultInvalidCommand:
		return "invalid_command"
	case parser.ResultNoFrameHeader:
		return "no_frame_header"
	case parser.ResultJunkDiscarded:
		return "junk_discarded"
	default:
		return "unknown"
	}
}

// Recorder is a parser.Metrics implementation backed by Prometheus
// collectors registered against a caller-supplied registry.
type Recorder struct {
	parseTotal          *prometheus.CounterVec
	bufferOverflowTotal prometheus.Counter
	dispatchTotal       *prometheus.CounterVec
}

// NewRecorder builds and registers the collectors against reg. reg
// must not be nil; callers typically pass prometheus.NewRegistry() or
// prometheus.DefaultRegisterer wrapped in a *prometheus.Registry.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		parseTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rframe_parse_total",
			Help: "Total frame parse attempts, partitioned by outcome.",
		}, []string{"result"}),
		bufferOverflowTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rframe_buffer_overflow_total",
			Help: "Total number of Push calls that overflowed the ring buffer.",
		}),
		dispatchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rframe_dispatch_total",
			Help: "Total packets dispatched into arena storage, partitioned by command.",
		}, []string{"cmd"}),
	}
	reg.MustRegister(r.parseTotal, r.bufferOverflowTotal, r.dispatchTotal)
	return r
}

// ObserveParse implements parser.Metrics.
func (r *Recorder) ObserveParse(result parser.Result) {
	r.parseTotal.WithLabelValues(resultLabel(result)).Inc()
}

// ObserveBufferOverflow implements parser.Metrics.
func (r *Recorder) ObserveBufferOverflow() {
	r.bufferOverflowTotal.Inc()
}

// ObserveDispatch implements parser.Metrics.
func (r *Recorder) ObserveDispatch(cmd uint16) {
	r.dispatchTotal.WithLabelValues("0x" + strconv.FormatUint(uint64(cmd), 16)).Inc()
}

var _ parser.Metrics = (*Recorder)(nil)

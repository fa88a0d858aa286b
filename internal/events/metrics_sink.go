package events

import (
	"github.com/2beens/hrload/internal/telemetry/metrics"
)

var _ Sink = (*MetricsSink)(nil)

// MetricsSink counts events per name and feeds the dropped samples counter.
type MetricsSink struct {
	instr *metrics.Manager
}

func NewMetricsSink(instr *metrics.Manager) *MetricsSink {
	return &MetricsSink{instr: instr}
}

func (s *MetricsSink) Emit(event string, fields Fields) {
	s.instr.CounterEngineEvents.WithLabelValues(event).Inc()
	if dropped, ok := fields[FieldDropped].(int); ok && dropped > 0 {
		s.instr.CounterSamplesDropped.Add(float64(dropped))
	}
}

package position

import (
	"github.com/2beens/hrload/internal/events"
	"github.com/2beens/hrload/internal/hrseries"
)

// Input is everything a detector may look at for one activity.
type Input struct {
	ActivityID  string
	Matrix      Matrix
	Descriptors []Descriptor
	// Reference is the daily stream restricted to the activity window,
	// used to disambiguate heuristic candidates. May be empty.
	Reference hrseries.Series
}

// Detector resolves which matrix columns hold heart rate and timestamps.
// ok is false when the columns cannot be resolved with confidence, which
// is not an error: the activity just contributes no segment.
type Detector interface {
	Detect(in Input, sink events.Sink) (cols Columns, ok bool)
}

var _ Detector = (*Chain)(nil)

// Chain uses the descriptors when the source sent any and the heuristic
// otherwise. With descriptors present the heuristic never runs.
type Chain struct {
	Descriptors Detector
	Heuristic   Detector
}

func NewChain(heuristic Detector) *Chain {
	return &Chain{
		Descriptors: DescriptorDriven{},
		Heuristic:   heuristic,
	}
}

func (c *Chain) Detect(in Input, sink events.Sink) (Columns, bool) {
	sink = events.OrNop(sink)
	if len(in.Descriptors) > 0 {
		return c.Descriptors.Detect(in, sink)
	}
	return c.Heuristic.Detect(in, sink)
}

func undetected(sink events.Sink, in Input, reason string) (Columns, bool) {
	sink.Emit(events.ColumnsUndetected, events.Fields{
		events.FieldActivityID: in.ActivityID,
		events.FieldReason:     reason,
	})
	return Columns{}, false
}

func detected(sink events.Sink, in Input, cols Columns) (Columns, bool) {
	sink.Emit(events.ColumnsDetected, events.Fields{
		events.FieldActivityID: in.ActivityID,
		"hr_column":            cols.HeartRate,
		"timestamp_column":     cols.Timestamp,
		"method":               cols.Method,
		"correlation":          cols.Correlation,
	})
	return cols, true
}

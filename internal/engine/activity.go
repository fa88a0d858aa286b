package engine

import (
	"github.com/2beens/hrload/internal/events"
	"github.com/2beens/hrload/internal/hrseries"
	"github.com/2beens/hrload/internal/position"
	"github.com/2beens/hrload/internal/resultcache"
	"github.com/2beens/hrload/internal/trimp"
)

type ActivityInput struct {
	Activity Activity
	// Reference is the daily stream, used to tell heuristic candidates apart.
	// It is restricted to the activity window here.
	Reference hrseries.Series
	Previous  *resultcache.Entry
}

type ActivityOutput struct {
	ActivityID     string
	Detected       bool
	Columns        position.Columns
	Series         hrseries.Series
	Result         trimp.Result
	Entry          resultcache.Entry
	CacheHit       bool
	Classification string
}

// ComputeActivity computes the load of a single activity stream. An activity
// whose columns are not detected yields an empty series and a zero result.
func (e *Engine) ComputeActivity(in ActivityInput) ActivityOutput {
	a := in.Activity
	sink := events.With(e.sink, events.Fields{events.FieldActivityID: a.ID})

	var reference hrseries.Series
	if in.Reference != nil {
		reference = clean(in.Reference, sink, "daily").Window(a.Start.UnixMilli(), a.End().UnixMilli())
	}

	stream, cols, ok := e.activityStream(a, reference, sink)
	entry, hit := e.compute(stream, in.Previous, sink)

	return ActivityOutput{
		ActivityID:     a.ID,
		Detected:       ok,
		Columns:        cols,
		Series:         stream,
		Result:         entry.Result,
		Entry:          entry,
		CacheHit:       hit,
		Classification: trimp.Classify(entry.Result),
	}
}

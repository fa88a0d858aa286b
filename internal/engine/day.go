package engine

import (
	"time"

	"github.com/2beens/hrload/internal/events"
	"github.com/2beens/hrload/internal/hrseries"
	"github.com/2beens/hrload/internal/resultcache"
	"github.com/2beens/hrload/internal/timeline"
	"github.com/2beens/hrload/internal/trimp"
)

type DayInput struct {
	Date time.Time
	// Daily is the coarse whole day stream, nil when the source had none.
	Daily      hrseries.Series
	Activities []Activity
	// Previous is the stored entry for the date, nil if there is none.
	Previous *resultcache.Entry
}

type DayOutput struct {
	Date           time.Time
	Series         hrseries.Series
	Result         trimp.Result
	Entry          resultcache.Entry
	CacheHit       bool
	Classification string
	DailyScore     float64
	// Undetected lists the activities that contributed no segment.
	Undetected []string
}

// ComputeDay reconciles the day's streams into one timeline and computes its
// training load. Missing data yields an empty series and a zero result.
func (e *Engine) ComputeDay(in DayInput) DayOutput {
	sink := events.With(e.sink, events.Fields{events.FieldDate: in.Date.Format(time.DateOnly)})

	var daily hrseries.Series
	if in.Daily != nil {
		daily = clean(in.Daily, sink, "daily")
	}

	var (
		segments   []timeline.ActivitySegment
		undetected []string
	)
	for _, a := range in.Activities {
		reference := daily.Window(a.Start.UnixMilli(), a.End().UnixMilli())
		stream, _, ok := e.activityStream(a, reference, sink)
		if !ok {
			undetected = append(undetected, a.ID)
			continue
		}

		extracted := hrseries.ExtractSegments(stream, e.segmentGap)
		sink.Emit(events.SegmentsExtracted, events.Fields{
			events.FieldActivityID: a.ID,
			"segments":             len(extracted),
		})
		for _, s := range extracted {
			segments = append(segments, timeline.ActivitySegment{
				Segment:  s,
				SourceID: a.ID,
				Start:    a.Start,
				End:      a.End(),
			})
		}
	}

	series := timeline.Reconcile(daily, segments, sink)
	entry, hit := e.compute(series, in.Previous, sink)

	return DayOutput{
		Date:           in.Date,
		Series:         series,
		Result:         entry.Result,
		Entry:          entry,
		CacheHit:       hit,
		Classification: trimp.Classify(entry.Result),
		DailyScore:     trimp.DailyScore(entry.Result),
		Undetected:     undetected,
	}
}

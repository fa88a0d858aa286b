package timeline

import (
	"time"

	"github.com/2beens/hrload/internal/events"
	"github.com/2beens/hrload/internal/hrseries"
)

// ActivitySegment is one gap free piece of an activity stream together with
// the activity it came from.
type ActivitySegment struct {
	Segment  hrseries.Segment
	SourceID string
	Start    time.Time
	End      time.Time
}

// Reconcile overlays the activity segments onto the daily stream. Inside the
// [first, last] range of a segment only that segment's samples survive; when
// activity ranges overlap, the later segment in input order owns the overlap.
// A nil or empty daily stream builds the day from the segments alone, with
// the same overlap rule. The samples a segment loses to a later overlapping
// one are reported as "overlapped" on its SegmentApplied event.
// The inputs are not modified and the output is sorted by timestamp.
func Reconcile(daily hrseries.Series, segments []ActivitySegment, sink events.Sink) hrseries.Series {
	sink = events.OrNop(sink)

	spans := make([]span, 0, len(segments))
	for i, s := range segments {
		if s.Segment.Len() == 0 {
			continue
		}
		spans = append(spans, span{from: s.Segment.First(), to: s.Segment.Last(), owner: i})
	}

	if len(daily) == 0 && len(spans) == 0 {
		sink.Emit(events.TimelineEmpty, events.Fields{})
		return hrseries.Series{}
	}
	if len(daily) == 0 {
		sink.Emit(events.TimelineFromScratch, events.Fields{"segments": len(spans)})
	}

	owners := buildIntervalMap(spans)

	size := len(daily)
	for _, s := range segments {
		size += s.Segment.Len()
	}
	out := make(hrseries.Series, 0, size)

	replaced := 0
	for _, sample := range daily {
		if owners.OwnerAt(sample.Timestamp) != NoOwner {
			replaced++
			continue
		}
		out = append(out, sample)
	}

	for i, s := range segments {
		kept := 0
		for _, sample := range s.Segment.Samples {
			if owners.OwnerAt(sample.Timestamp) == i {
				out = append(out, sample)
				kept++
			}
		}
		if s.Segment.Len() == 0 {
			continue
		}
		sink.Emit(events.SegmentApplied, events.Fields{
			events.FieldActivityID: s.SourceID,
			"samples":              s.Segment.Len(),
			"kept":                 kept,
			"overlapped":           s.Segment.Len() - kept,
			"from":                 s.Segment.First(),
			"to":                   s.Segment.Last(),
		})
	}

	if replaced > 0 {
		sink.Emit(events.DailySamplesReplaced, events.Fields{"replaced": replaced})
	}

	hrseries.SortByTimestamp(out)
	return out
}

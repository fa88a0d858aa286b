package hrseries

import "time"

// DefaultSegmentGap is the largest gap between two consecutive samples
// that still keeps them in the same segment.
const DefaultSegmentGap = 60 * time.Second

// Segment is a maximal run of a series with no internal gap above the threshold.
type Segment struct {
	Samples Series
}

func (s Segment) First() int64 {
	return s.Samples[0].Timestamp
}

func (s Segment) Last() int64 {
	return s.Samples[len(s.Samples)-1].Timestamp
}

func (s Segment) Len() int {
	return len(s.Samples)
}

// ExtractSegments splits a sorted series into gap free segments.
// A new segment starts whenever the gap to the previous sample exceeds maxGap.
func ExtractSegments(series Series, maxGap time.Duration) []Segment {
	if len(series) == 0 {
		return []Segment{}
	}

	maxGapMs := maxGap.Milliseconds()
	segments := make([]Segment, 0, 1)
	start := 0
	for i := 1; i < len(series); i++ {
		if series[i].Timestamp-series[i-1].Timestamp > maxGapMs {
			segments = append(segments, Segment{Samples: series[start:i].Clone()})
			start = i
		}
	}
	segments = append(segments, Segment{Samples: series[start:].Clone()})

	return segments
}

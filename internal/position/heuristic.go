package position

import (
	"math"
	"time"

	"github.com/2beens/hrload/internal/events"
	"github.com/2beens/hrload/internal/hrseries"
)

const (
	minHRDistinct        = 5
	minTimestampDistinct = 100
	minEpochMillis       = 1e12
	defaultAlignWindow   = 30 * time.Second
	defaultMinCorr       = 0.7
	minAlignedPairs      = 3
)

// Bounds is the inclusive heart rate range a column must stay in
// to be considered a heart rate channel.
type Bounds struct {
	Min int
	Max int
}

// DefaultBounds are the historical fixed bounds.
var DefaultBounds = Bounds{Min: 48, Max: 167}

// BoundsAround derives the bounds from a user's resting and max heart rate,
// widened by margin on both sides.
func BoundsAround(restingHR, maxHR, margin int) Bounds {
	return Bounds{Min: restingHR - margin, Max: maxHR + margin}
}

func (b Bounds) contains(v float64) bool {
	return v >= float64(b.Min) && v <= float64(b.Max)
}

var _ Detector = (*HeuristicRangeWithCorrelation)(nil)

// HeuristicRangeWithCorrelation sniffs the columns by their value ranges and,
// when more than one pair qualifies, picks the pair whose heart rate best
// correlates with the daily reference stream.
type HeuristicRangeWithCorrelation struct {
	Bounds         Bounds
	AlignTolerance time.Duration
	MinCorrelation float64
}

func NewHeuristic(bounds Bounds) *HeuristicRangeWithCorrelation {
	return &HeuristicRangeWithCorrelation{
		Bounds:         bounds,
		AlignTolerance: defaultAlignWindow,
		MinCorrelation: defaultMinCorr,
	}
}

type columnProfile struct {
	index    int
	values   []float64
	min      float64
	max      float64
	distinct int
	integral bool
}

func profile(m Matrix, idx int) columnProfile {
	p := columnProfile{
		index:    idx,
		values:   m.Column(idx),
		min:      math.Inf(1),
		max:      math.Inf(-1),
		integral: true,
	}
	seen := make(map[float64]struct{}, len(p.values))
	for _, v := range p.values {
		seen[v] = struct{}{}
		p.min = math.Min(p.min, v)
		p.max = math.Max(p.max, v)
		if v != math.Trunc(v) {
			p.integral = false
		}
	}
	p.distinct = len(seen)
	return p
}

func (h *HeuristicRangeWithCorrelation) isHeartRate(p columnProfile) bool {
	if len(p.values) == 0 || !p.integral || p.distinct <= minHRDistinct {
		return false
	}
	return h.Bounds.contains(p.min) && h.Bounds.contains(p.max)
}

func isTimestamp(p columnProfile) bool {
	return len(p.values) > 0 && p.min > minEpochMillis && p.distinct > minTimestampDistinct
}

func (h *HeuristicRangeWithCorrelation) Detect(in Input, sink events.Sink) (Columns, bool) {
	sink = events.OrNop(sink)

	var hrCandidates, tsCandidates []int
	for idx := 0; idx < in.Matrix.Width(); idx++ {
		p := profile(in.Matrix, idx)
		switch {
		case h.isHeartRate(p):
			hrCandidates = append(hrCandidates, idx)
		case isTimestamp(p):
			tsCandidates = append(tsCandidates, idx)
		}
	}

	if len(hrCandidates) == 0 {
		return undetected(sink, in, "no_heart_rate_candidates")
	}
	if len(tsCandidates) == 0 {
		return undetected(sink, in, "no_timestamp_candidates")
	}

	if len(hrCandidates) == 1 && len(tsCandidates) == 1 {
		return detected(sink, in, Columns{
			HeartRate: hrCandidates[0],
			Timestamp: tsCandidates[0],
			Method:    "heuristic_single_pair",
		})
	}

	if len(in.Reference) < minAlignedPairs {
		return undetected(sink, in, "ambiguous_without_reference")
	}

	best := Columns{Correlation: math.NaN()}
	for _, tsIdx := range tsCandidates {
		for _, hrIdx := range hrCandidates {
			cols := Columns{HeartRate: hrIdx, Timestamp: tsIdx}
			candidate, _ := hrseries.Clean(Extract(in.Matrix, cols))
			ref, cand := align(in.Reference, candidate, h.AlignTolerance.Milliseconds())
			if len(ref) < minAlignedPairs {
				sink.Emit(events.CandidateRejected, events.Fields{
					events.FieldActivityID: in.ActivityID,
					"hr_column":            hrIdx,
					"timestamp_column":     tsIdx,
					events.FieldReason:     "too_few_aligned_samples",
				})
				continue
			}

			r, ok := pearson(ref, cand)
			if !ok {
				sink.Emit(events.CandidateRejected, events.Fields{
					events.FieldActivityID: in.ActivityID,
					"hr_column":            hrIdx,
					"timestamp_column":     tsIdx,
					events.FieldReason:     "no_variance",
				})
				continue
			}

			if math.IsNaN(best.Correlation) || math.Abs(r) > math.Abs(best.Correlation) {
				best = cols
				best.Correlation = r
			}
		}
	}

	if math.IsNaN(best.Correlation) || math.Abs(best.Correlation) <= h.MinCorrelation {
		return undetected(sink, in, "correlation_below_threshold")
	}

	best.Method = "heuristic_correlation"
	return detected(sink, in, best)
}

package engine

import (
	"fmt"
	"time"

	"github.com/2beens/hrload/internal/events"
	"github.com/2beens/hrload/internal/hrseries"
	"github.com/2beens/hrload/internal/position"
	"github.com/2beens/hrload/internal/resultcache"
	"github.com/2beens/hrload/internal/trimp"
)

// boundsMargin widens the derived heart rate bounds on both sides.
const boundsMargin = 10

type Options struct {
	Params trimp.Params
	// Detector resolves activity columns. Defaults to descriptors with the
	// range and correlation heuristic as fallback.
	Detector position.Detector
	// Sink receives the diagnostic events of every stage. May be nil.
	Sink       events.Sink
	SegmentGap time.Duration
	// DeriveBounds derives the heuristic heart rate range from Params
	// instead of the fixed default. Ignored when Detector is set.
	DeriveBounds bool
}

// Engine runs the per day and per activity pipelines. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	calc       *trimp.Calculator
	detector   position.Detector
	sink       events.Sink
	segmentGap time.Duration
}

// New fails on invalid heart rate parameters, before anything is computed.
func New(opts Options) (*Engine, error) {
	calc, err := trimp.NewCalculator(opts.Params)
	if err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}

	detector := opts.Detector
	if detector == nil {
		bounds := position.DefaultBounds
		if opts.DeriveBounds {
			bounds = position.BoundsAround(opts.Params.RestingHR, opts.Params.MaxHR, boundsMargin)
		}
		detector = position.NewChain(position.NewHeuristic(bounds))
	}

	segmentGap := opts.SegmentGap
	if segmentGap <= 0 {
		segmentGap = hrseries.DefaultSegmentGap
	}

	return &Engine{
		calc:       calc,
		detector:   detector,
		sink:       events.OrNop(opts.Sink),
		segmentGap: segmentGap,
	}, nil
}

func (e *Engine) Params() trimp.Params {
	return e.calc.Params()
}

// Activity is one recorded workout as the activity source returns it.
type Activity struct {
	ID          string
	Matrix      position.Matrix
	Descriptors []position.Descriptor
	Start       time.Time
	Duration    time.Duration
}

func (a Activity) End() time.Time {
	return a.Start.Add(a.Duration)
}

// clean drops the malformed samples and reports how many went.
func clean(raw hrseries.Series, sink events.Sink, source string) hrseries.Series {
	series, stats := hrseries.Clean(raw)
	if stats.Dropped() > 0 {
		sink.Emit(events.SamplesDropped, events.Fields{
			"source":            source,
			events.FieldDropped: stats.Dropped(),
			"no_timestamp":      stats.NoTimestamp,
			"no_heart_rate":     stats.NoHeartRate,
			"out_of_range":      stats.OutOfRange,
			"duplicate_stamp":   stats.DuplicateStamp,
		})
	}
	return series
}

// activityStream detects the activity columns and returns its cleaned stream.
// ok is false when the columns could not be resolved.
func (e *Engine) activityStream(a Activity, reference hrseries.Series, sink events.Sink) (hrseries.Series, position.Columns, bool) {
	sink = events.With(sink, events.Fields{events.FieldActivityID: a.ID})
	cols, ok := e.detector.Detect(position.Input{
		ActivityID:  a.ID,
		Matrix:      a.Matrix,
		Descriptors: a.Descriptors,
		Reference:   reference,
	}, sink)
	if !ok {
		return hrseries.Series{}, position.Columns{}, false
	}
	return clean(position.Extract(a.Matrix, cols), sink, "activity"), cols, true
}

// ContentHash keys a computed result. It covers the heart rate parameters as
// well as the series, so changed parameters never match an older entry.
func ContentHash(params trimp.Params, series hrseries.Series) string {
	return hrseries.MustContentHash(series, int64(params.RestingHR), int64(params.MaxHR))
}

// compute runs the calculator unless prev already holds the result for series.
func (e *Engine) compute(series hrseries.Series, prev *resultcache.Entry, sink events.Sink) (resultcache.Entry, bool) {
	hash := ContentHash(e.Params(), series)
	entry, hit := resultcache.Resolve(hash, prev, func() trimp.Result {
		result, skipped := e.calc.ComputeWithStats(series)
		if skipped != (trimp.SkipStats{}) {
			sink.Emit(events.IntervalSkipped, events.Fields{
				"null_heart_rate": skipped.NullHeartRate,
				"large_gap":       skipped.LargeGap,
				"non_positive":    skipped.NonPositive,
				"below_threshold": skipped.BelowThreshold,
			})
		}
		return result
	})

	if hit {
		sink.Emit(events.CacheHit, events.Fields{"hash": hash})
	} else {
		sink.Emit(events.CacheMiss, events.Fields{"hash": hash})
	}
	return entry, hit
}

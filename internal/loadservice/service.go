package loadservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/hrload/internal/engine"
	"github.com/2beens/hrload/internal/events"
	"github.com/2beens/hrload/internal/hrseries"
	"github.com/2beens/hrload/internal/loadstore"
	"github.com/2beens/hrload/internal/resultcache"
	"github.com/2beens/hrload/internal/telemetry/metrics"
	"github.com/2beens/hrload/internal/telemetry/tracing"
	"github.com/2beens/hrload/internal/trimp"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const defaultWorkers = 4

type NewServiceParams struct {
	UserID     int
	Daily      DailySource
	Activities ActivitySource
	HRParams   ParamsSource
	Store      LoadStore
	// Cache sits in front of the stored rows. May be nil.
	Cache        resultcache.Store
	Sink         events.Sink
	DeriveBounds bool
	Workers      int
	Metrics      *metrics.Manager
}

// Service recomputes and stores the training load of one user. Work on the
// same date or activity is serialized, different keys run concurrently.
type Service struct {
	userID       int
	daily        DailySource
	activities   ActivitySource
	hrParams     ParamsSource
	store        LoadStore
	cache        resultcache.Store
	sink         events.Sink
	deriveBounds bool
	workers      int
	metrics      *metrics.Manager
	locks        *keyLock
}

func NewService(params NewServiceParams) *Service {
	workers := params.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	instr := params.Metrics
	if instr == nil {
		instr = metrics.NewTestManager()
	}

	return &Service{
		userID:       params.UserID,
		daily:        params.Daily,
		activities:   params.Activities,
		hrParams:     params.HRParams,
		store:        params.Store,
		cache:        params.Cache,
		sink:         events.OrNop(params.Sink),
		deriveBounds: params.DeriveBounds,
		workers:      workers,
		metrics:      instr,
		locks:        newKeyLock(),
	}
}

// newEngine loads the user's heart rate parameters. Invalid parameters fail
// here, before any day is touched.
func (s *Service) newEngine(ctx context.Context) (*engine.Engine, error) {
	params, err := s.hrParams.HRParams(ctx, s.userID)
	if err != nil {
		return nil, fmt.Errorf("load hr params: %w", err)
	}
	return engine.New(engine.Options{
		Params:       params,
		Sink:         s.sink,
		DeriveBounds: s.deriveBounds,
	})
}

// SetHRParams validates and stores the user's heart rate parameters. Stored
// results stay in place, their content hash covers the parameters they were
// computed with, so the next recompute of each key misses.
func (s *Service) SetHRParams(ctx context.Context, params trimp.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if err := s.hrParams.SaveHRParams(ctx, s.userID, params); err != nil {
		return fmt.Errorf("save hr params: %w", err)
	}
	log.Debugf("hr params set: resting %d, max %d", params.RestingHR, params.MaxHR)
	return nil
}

// RecomputeDay rebuilds the timeline of date, computes its load and stores
// the outcome. The stored rows are not touched on a cache hit.
func (s *Service) RecomputeDay(ctx context.Context, date time.Time) (engine.DayOutput, error) {
	eng, err := s.newEngine(ctx)
	if err != nil {
		return engine.DayOutput{}, err
	}
	return s.recomputeDay(ctx, eng, date)
}

func (s *Service) recomputeDay(ctx context.Context, eng *engine.Engine, date time.Time) (engine.DayOutput, error) {
	unlock := s.locks.Lock(resultcache.DayKey(date))
	defer unlock()
	return s.recomputeDayLocked(ctx, eng, date)
}

// recomputeDayLocked expects the caller to hold the date's lock.
func (s *Service) recomputeDayLocked(ctx context.Context, eng *engine.Engine, date time.Time) (_ engine.DayOutput, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.loadservice.recomputeDay")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("date", date.Format(time.DateOnly)))

	s.metrics.GaugeDaysInFlight.Inc()
	defer s.metrics.GaugeDaysInFlight.Dec()
	start := time.Now()
	defer func() {
		if err != nil {
			s.metrics.CounterDayFailures.Inc()
		}
	}()

	daily, err := s.daily.DailySeries(ctx, s.userID, date)
	if err != nil {
		return engine.DayOutput{}, fmt.Errorf("load daily series %s: %w", date.Format(time.DateOnly), err)
	}
	activities, err := s.activities.Activities(ctx, s.userID, date)
	if err != nil {
		return engine.DayOutput{}, fmt.Errorf("load activities %s: %w", date.Format(time.DateOnly), err)
	}

	key := resultcache.DayKey(date)
	prev, err := s.previous(ctx, key, func() (*resultcache.Entry, error) {
		row, err := s.store.DayLoad(ctx, s.userID, date)
		return row.Entry(), err
	})
	if err != nil {
		return engine.DayOutput{}, err
	}

	out := eng.ComputeDay(engine.DayInput{
		Date:       date,
		Daily:      daily,
		Activities: activities,
		Previous:   prev,
	})
	s.countLookup(out.CacheHit)
	span.SetAttributes(attribute.Bool("cache-hit", out.CacheHit))

	if !out.CacheHit {
		err = s.store.SaveDayLoad(ctx, loadstore.DayRow{
			UserID:         s.userID,
			Date:           date,
			Series:         out.Series,
			Result:         out.Result,
			ContentHash:    out.Entry.Hash,
			Classification: out.Classification,
			DailyScore:     out.DailyScore,
			UpdatedAt:      time.Now().UTC(),
		})
		if err != nil {
			return engine.DayOutput{}, fmt.Errorf("save day load %s: %w", date.Format(time.DateOnly), err)
		}
		s.putCache(ctx, key, out.Entry)
	}

	s.metrics.CounterDaysComputed.Inc()
	s.metrics.HistDayTrimp.Observe(out.Result.Total)
	s.metrics.HistDayComputeDuration.Observe(time.Since(start).Seconds())

	log.Debugf("day %s recomputed: trimp %.2f, %d samples, cache hit %t",
		date.Format(time.DateOnly), out.Result.Total, len(out.Series), out.CacheHit)

	return out, nil
}

// OverrideDay replaces the daily stream of date and recomputes it. The
// stored entry is invalidated before the new stream is written.
func (s *Service) OverrideDay(ctx context.Context, date time.Time, series hrseries.Series) (engine.DayOutput, error) {
	eng, err := s.newEngine(ctx)
	if err != nil {
		return engine.DayOutput{}, err
	}

	key := resultcache.DayKey(date)
	unlock := s.locks.Lock(key)
	defer unlock()

	if err := s.invalidate(ctx, key, func() error {
		return s.store.InvalidateDay(ctx, s.userID, date)
	}); err != nil {
		return engine.DayOutput{}, err
	}

	if err := s.daily.SaveDailySeries(ctx, s.userID, date, series); err != nil {
		return engine.DayOutput{}, fmt.Errorf("save daily series %s: %w", date.Format(time.DateOnly), err)
	}

	return s.recomputeDayLocked(ctx, eng, date)
}

// RecomputeActivity computes the load of a single activity, using the daily
// stream of its date as the correlation reference.
func (s *Service) RecomputeActivity(ctx context.Context, activityID string) (_ engine.ActivityOutput, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.loadservice.recomputeActivity")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("activity-id", activityID))

	eng, err := s.newEngine(ctx)
	if err != nil {
		return engine.ActivityOutput{}, err
	}

	key := resultcache.ActivityKey(activityID)
	unlock := s.locks.Lock(key)
	defer unlock()

	activity, err := s.activities.Activity(ctx, s.userID, activityID)
	if err != nil {
		return engine.ActivityOutput{}, fmt.Errorf("load activity %s: %w", activityID, err)
	}
	reference, err := s.daily.DailySeries(ctx, s.userID, activity.Start)
	if err != nil {
		return engine.ActivityOutput{}, fmt.Errorf("load reference for %s: %w", activityID, err)
	}

	prev, err := s.previous(ctx, key, func() (*resultcache.Entry, error) {
		row, err := s.store.ActivityLoad(ctx, s.userID, activityID)
		return row.Entry(), err
	})
	if err != nil {
		return engine.ActivityOutput{}, err
	}

	out := eng.ComputeActivity(engine.ActivityInput{
		Activity:  activity,
		Reference: reference,
		Previous:  prev,
	})
	s.countLookup(out.CacheHit)

	if !out.CacheHit {
		err = s.store.SaveActivityLoad(ctx, loadstore.ActivityRow{
			UserID:         s.userID,
			ActivityID:     activityID,
			Series:         out.Series,
			Result:         out.Result,
			ContentHash:    out.Entry.Hash,
			Classification: out.Classification,
			UpdatedAt:      time.Now().UTC(),
		})
		if err != nil {
			return engine.ActivityOutput{}, fmt.Errorf("save activity load %s: %w", activityID, err)
		}
		s.putCache(ctx, key, out.Entry)
	}

	return out, nil
}

// InvalidateActivity drops the stored entry of an activity so its next
// recompute runs the calculator again.
func (s *Service) InvalidateActivity(ctx context.Context, activityID string) error {
	key := resultcache.ActivityKey(activityID)
	unlock := s.locks.Lock(key)
	defer unlock()

	return s.invalidate(ctx, key, func() error {
		return s.store.InvalidateActivity(ctx, s.userID, activityID)
	})
}

// previous returns the entry the last computation left behind. The cache is
// asked first, a cache failure falls back to the stored row.
func (s *Service) previous(ctx context.Context, key string, fromStore func() (*resultcache.Entry, error)) (*resultcache.Entry, error) {
	if s.cache != nil {
		entry, found, err := s.cache.Get(ctx, key)
		if err != nil {
			log.Warnf("result cache get %s: %s", key, err)
		} else if found {
			return &entry, nil
		}
	}

	entry, err := fromStore()
	if errors.Is(err, loadstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load previous %s: %w", key, err)
	}
	return entry, nil
}

func (s *Service) putCache(ctx context.Context, key string, entry resultcache.Entry) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Put(ctx, key, entry); err != nil {
		log.Warnf("result cache put %s: %s", key, err)
	}
}

func (s *Service) invalidate(ctx context.Context, key string, inStore func() error) error {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, key); err != nil {
			return fmt.Errorf("invalidate cache %s: %w", key, err)
		}
	}
	if err := inStore(); err != nil {
		return fmt.Errorf("invalidate stored %s: %w", key, err)
	}
	return nil
}

func (s *Service) countLookup(hit bool) {
	if hit {
		s.metrics.CounterCacheLookups.WithLabelValues("hit").Inc()
	} else {
		s.metrics.CounterCacheLookups.WithLabelValues("miss").Inc()
	}
}

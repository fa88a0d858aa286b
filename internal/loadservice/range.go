package loadservice

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/hrload/internal/engine"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// Dates returns every calendar date from..to, both inclusive, at UTC midnight.
func Dates(from, to time.Time) []time.Time {
	from = truncateDay(from)
	to = truncateDay(to)
	var dates []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RecomputeRange recomputes every date in from..to on a pool of workers.
// A failing date does not stop the others: the outputs of the dates that
// succeeded come back in date order next to the combined error of the rest.
// Invalid heart rate parameters fail the whole range up front.
func (s *Service) RecomputeRange(ctx context.Context, from, to time.Time) ([]engine.DayOutput, error) {
	eng, err := s.newEngine(ctx)
	if err != nil {
		return nil, err
	}

	dates := Dates(from, to)
	results := make([]*engine.DayOutput, len(dates))

	var (
		errsMutex sync.Mutex
		errs      error
	)
	addErr := func(err error) {
		errsMutex.Lock()
		errs = multierr.Append(errs, err)
		errsMutex.Unlock()
	}

	g := new(errgroup.Group)
	g.SetLimit(s.workers)
	for i, date := range dates {
		if ctx.Err() != nil {
			addErr(fmt.Errorf("recompute %s: %w", date.Format(time.DateOnly), ctx.Err()))
			continue
		}
		i, date := i, date
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				addErr(fmt.Errorf("recompute %s: %w", date.Format(time.DateOnly), err))
				return nil
			}
			out, err := s.recomputeDay(ctx, eng, date)
			if err != nil {
				log.Errorf("recompute day %s: %s", date.Format(time.DateOnly), err)
				addErr(err)
				return nil
			}
			results[i] = &out
			return nil
		})
	}
	_ = g.Wait()

	outputs := make([]engine.DayOutput, 0, len(dates))
	for _, r := range results {
		if r != nil {
			outputs = append(outputs, *r)
		}
	}

	log.Debugf("recomputed %d/%d days in range %s..%s",
		len(outputs), len(dates), from.Format(time.DateOnly), to.Format(time.DateOnly))

	return outputs, errs
}

package loadservice

import (
	"context"
	"time"

	"github.com/2beens/hrload/internal/engine"
	"github.com/2beens/hrload/internal/hrseries"
	"github.com/2beens/hrload/internal/loadstore"
	"github.com/2beens/hrload/internal/trimp"
)

//go:generate mockgen -source=$GOFILE -destination=collaborators_mocks_test.go -package=loadservice_test

// DailySource supplies the coarse whole day stream, nil when there is none.
type DailySource interface {
	DailySeries(ctx context.Context, userID int, date time.Time) (hrseries.Series, error)
	SaveDailySeries(ctx context.Context, userID int, date time.Time, series hrseries.Series) error
}

// ActivitySource supplies the activities recorded on a date.
type ActivitySource interface {
	Activities(ctx context.Context, userID int, date time.Time) ([]engine.Activity, error)
	Activity(ctx context.Context, userID int, activityID string) (engine.Activity, error)
}

type ParamsSource interface {
	HRParams(ctx context.Context, userID int) (trimp.Params, error)
	SaveHRParams(ctx context.Context, userID int, params trimp.Params) error
}

// LoadStore persists the computed rows per date and per activity.
type LoadStore interface {
	DayLoad(ctx context.Context, userID int, date time.Time) (*loadstore.DayRow, error)
	SaveDayLoad(ctx context.Context, row loadstore.DayRow) error
	InvalidateDay(ctx context.Context, userID int, date time.Time) error
	ActivityLoad(ctx context.Context, userID int, activityID string) (*loadstore.ActivityRow, error)
	SaveActivityLoad(ctx context.Context, row loadstore.ActivityRow) error
	InvalidateActivity(ctx context.Context, userID int, activityID string) error
}

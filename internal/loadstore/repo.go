package loadstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/hrload/internal/engine"
	"github.com/2beens/hrload/internal/hrseries"
	"github.com/2beens/hrload/internal/telemetry/tracing"
	"github.com/2beens/hrload/internal/trimp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrNotFound = errors.New("not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// HRParams returns the user's heart rate parameters, or the defaults when
// none were configured.
func (r *Repo) HRParams(ctx context.Context, userID int) (_ trimp.Params, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.loadstore.hrParams")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user-id", userID))

	var params trimp.Params
	err = r.db.QueryRow(ctx, `
		SELECT resting_hr, max_hr
		FROM hr_parameters
		WHERE user_id = $1
	`, userID).Scan(&params.RestingHR, &params.MaxHR)
	if errors.Is(err, pgx.ErrNoRows) {
		return trimp.DefaultParams(), nil
	}
	if err != nil {
		return trimp.Params{}, fmt.Errorf("query hr params: %w", err)
	}
	return params, nil
}

func (r *Repo) SaveHRParams(ctx context.Context, userID int, params trimp.Params) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.loadstore.saveHrParams")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `
		INSERT INTO hr_parameters (user_id, resting_hr, max_hr)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET resting_hr = EXCLUDED.resting_hr, max_hr = EXCLUDED.max_hr
	`, userID, params.RestingHR, params.MaxHR)
	return err
}

// DailySeries returns the raw daily stream of a date, nil when the source had none.
func (r *Repo) DailySeries(ctx context.Context, userID int, date time.Time) (_ hrseries.Series, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.loadstore.dailySeries")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("date", date.Format(time.DateOnly)))

	var raw []byte
	err = r.db.QueryRow(ctx, `
		SELECT heart_rate_values
		FROM daily_heart_rate
		WHERE user_id = $1 AND date = $2
	`, userID, dateOnly(date)).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query daily series: %w", err)
	}
	return decodePairs(raw)
}

// SaveDailySeries replaces the daily stream of a date.
func (r *Repo) SaveDailySeries(ctx context.Context, userID int, date time.Time, series hrseries.Series) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.loadstore.saveDailySeries")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	raw, err := encodePairs(series)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO daily_heart_rate (user_id, date, heart_rate_values)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, date) DO UPDATE
		SET heart_rate_values = EXCLUDED.heart_rate_values
	`, userID, dateOnly(date), raw)
	return err
}

const activityColumns = `activity_id, start_time, duration_seconds, metrics, descriptors`

func scanActivity(row pgx.Row) (engine.Activity, error) {
	var (
		a               engine.Activity
		durationSeconds int
		metrics         []byte
		descriptors     []byte
	)
	if err := row.Scan(&a.ID, &a.Start, &durationSeconds, &metrics, &descriptors); err != nil {
		return engine.Activity{}, err
	}
	a.Duration = time.Duration(durationSeconds) * time.Second

	if len(metrics) > 0 {
		if err := json.Unmarshal(metrics, &a.Matrix); err != nil {
			return engine.Activity{}, fmt.Errorf("decode activity %s metrics: %w", a.ID, err)
		}
	}
	if len(descriptors) > 0 {
		if err := json.Unmarshal(descriptors, &a.Descriptors); err != nil {
			return engine.Activity{}, fmt.Errorf("decode activity %s descriptors: %w", a.ID, err)
		}
	}
	return a, nil
}

// Activities returns the activities of a date ordered by insertion, the order
// the activity source returned them in.
func (r *Repo) Activities(ctx context.Context, userID int, date time.Time) (_ []engine.Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.loadstore.activities")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("date", date.Format(time.DateOnly)))

	rows, err := r.db.Query(ctx, `
		SELECT `+activityColumns+`
		FROM activity
		WHERE user_id = $1 AND date = $2
		ORDER BY id
	`, userID, dateOnly(date))
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	activities := make([]engine.Activity, 0)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}

	span.SetAttributes(attribute.Int("count", len(activities)))
	return activities, nil
}

func (r *Repo) Activity(ctx context.Context, userID int, activityID string) (_ engine.Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.loadstore.activity")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("activity-id", activityID))

	a, err := scanActivity(r.db.QueryRow(ctx, `
		SELECT `+activityColumns+`
		FROM activity
		WHERE user_id = $1 AND activity_id = $2
	`, userID, activityID))
	if errors.Is(err, pgx.ErrNoRows) {
		return engine.Activity{}, fmt.Errorf("activity %s: %w", activityID, ErrNotFound)
	}
	return a, err
}

func (r *Repo) SaveActivity(ctx context.Context, userID int, a engine.Activity) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.loadstore.saveActivity")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	metrics, err := json.Marshal(a.Matrix)
	if err != nil {
		return fmt.Errorf("encode metrics: %w", err)
	}
	descriptors, err := json.Marshal(a.Descriptors)
	if err != nil {
		return fmt.Errorf("encode descriptors: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO activity (user_id, activity_id, date, start_time, duration_seconds, metrics, descriptors)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (activity_id) DO UPDATE
		SET start_time = EXCLUDED.start_time,
		    duration_seconds = EXCLUDED.duration_seconds,
		    metrics = EXCLUDED.metrics,
		    descriptors = EXCLUDED.descriptors
	`, userID, a.ID, dateOnly(a.Start), a.Start, int(a.Duration.Seconds()), metrics, descriptors)
	return err
}

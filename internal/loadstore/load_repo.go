package loadstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/hrload/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

func (r *Repo) DayLoad(ctx context.Context, userID int, date time.Time) (_ *DayRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.loadstore.dayLoad")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("date", date.Format(time.DateOnly)))

	row := &DayRow{UserID: userID}
	var series, result []byte
	err = r.db.QueryRow(ctx, `
		SELECT date, series, result, content_hash, classification, daily_score, updated_at
		FROM day_load
		WHERE user_id = $1 AND date = $2
	`, userID, dateOnly(date)).Scan(
		&row.Date, &series, &result, &row.ContentHash, &row.Classification, &row.DailyScore, &row.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("day load %s: %w", date.Format(time.DateOnly), ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if row.Series, err = decodePairs(series); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(result, &row.Result); err != nil {
		return nil, fmt.Errorf("decode day result: %w", err)
	}
	return row, nil
}

// SaveDayLoad writes the day row in one statement, so the series, result and
// hash always change together.
func (r *Repo) SaveDayLoad(ctx context.Context, row DayRow) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.loadstore.saveDayLoad")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("date", row.Date.Format(time.DateOnly)))

	series, err := encodePairs(row.Series)
	if err != nil {
		return err
	}
	result, err := json.Marshal(row.Result)
	if err != nil {
		return fmt.Errorf("encode day result: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO day_load (user_id, date, series, result, content_hash, classification, daily_score, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (user_id, date) DO UPDATE
		SET series = EXCLUDED.series,
		    result = EXCLUDED.result,
		    content_hash = EXCLUDED.content_hash,
		    classification = EXCLUDED.classification,
		    daily_score = EXCLUDED.daily_score,
		    updated_at = now()
	`, row.UserID, dateOnly(row.Date), series, result, row.ContentHash, row.Classification, row.DailyScore)
	return err
}

// InvalidateDay clears the stored hash so the next recompute cannot hit.
func (r *Repo) InvalidateDay(ctx context.Context, userID int, date time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.loadstore.invalidateDay")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `
		UPDATE day_load
		SET content_hash = '', updated_at = now()
		WHERE user_id = $1 AND date = $2
	`, userID, dateOnly(date))
	return err
}

func (r *Repo) ActivityLoad(ctx context.Context, userID int, activityID string) (_ *ActivityRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.loadstore.activityLoad")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("activity-id", activityID))

	row := &ActivityRow{UserID: userID, ActivityID: activityID}
	var series, result []byte
	err = r.db.QueryRow(ctx, `
		SELECT series, result, content_hash, classification, updated_at
		FROM activity_load
		WHERE user_id = $1 AND activity_id = $2
	`, userID, activityID).Scan(&series, &result, &row.ContentHash, &row.Classification, &row.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("activity load %s: %w", activityID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if row.Series, err = decodePairs(series); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(result, &row.Result); err != nil {
		return nil, fmt.Errorf("decode activity result: %w", err)
	}
	return row, nil
}

func (r *Repo) SaveActivityLoad(ctx context.Context, row ActivityRow) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.loadstore.saveActivityLoad")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("activity-id", row.ActivityID))

	series, err := encodePairs(row.Series)
	if err != nil {
		return err
	}
	result, err := json.Marshal(row.Result)
	if err != nil {
		return fmt.Errorf("encode activity result: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO activity_load (user_id, activity_id, series, result, content_hash, classification, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (activity_id) DO UPDATE
		SET series = EXCLUDED.series,
		    result = EXCLUDED.result,
		    content_hash = EXCLUDED.content_hash,
		    classification = EXCLUDED.classification,
		    updated_at = now()
	`, row.UserID, row.ActivityID, series, result, row.ContentHash, row.Classification)
	return err
}

func (r *Repo) InvalidateActivity(ctx context.Context, userID int, activityID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.loadstore.invalidateActivity")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `
		UPDATE activity_load
		SET content_hash = '', updated_at = now()
		WHERE user_id = $1 AND activity_id = $2
	`, userID, activityID)
	return err
}

//go:build integration_test || all_tests

package loadstore_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/2beens/hrload/internal/engine"
	"github.com/2beens/hrload/internal/hrseries"
	"github.com/2beens/hrload/internal/loadstore"
	"github.com/2beens/hrload/internal/position"
	"github.com/2beens/hrload/internal/testinternals"
	"github.com/2beens/hrload/internal/trimp"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = 1

// newTestRepo starts a throwaway postgres, applies the schema through
// database/sql and returns a repo on a pgx pool.
func newTestRepo(t *testing.T) *loadstore.Repo {
	t.Helper()
	ctx := context.Background()

	dockerPool, err := dockertest.NewPool("")
	require.NoError(t, err)
	require.NoError(t, dockerPool.Client.Ping())

	pgResource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=hrload",
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgResource.Close(); err != nil {
			t.Logf("postgres teardown: %s", err)
		}
	})

	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/hrload?sslmode=disable", pgResource.GetPort("5432/tcp"))

	var sqlDB *sql.DB
	require.NoError(t, dockerPool.Retry(func() error {
		var err error
		if sqlDB, err = sql.Open("postgres", dsn); err != nil {
			return err
		}
		return sqlDB.Ping()
	}))
	defer sqlDB.Close()

	_, err = sqlDB.ExecContext(ctx, loadstore.Schema)
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return loadstore.NewRepo(pool)
}

func TestRepo(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	date := testinternals.DayStart

	t.Run("hr params default", func(t *testing.T) {
		params, err := repo.HRParams(ctx, testUserID)
		require.NoError(t, err)
		assert.Equal(t, trimp.DefaultParams(), params)

		require.NoError(t, repo.SaveHRParams(ctx, testUserID, trimp.Params{RestingHR: 52, MaxHR: 181}))
		params, err = repo.HRParams(ctx, testUserID)
		require.NoError(t, err)
		assert.Equal(t, trimp.Params{RestingHR: 52, MaxHR: 181}, params)
	})

	t.Run("daily series", func(t *testing.T) {
		series, err := repo.DailySeries(ctx, testUserID, date)
		require.NoError(t, err)
		assert.Nil(t, series)

		daily := testinternals.DailySeries(testinternals.Faker(1), 2)
		require.NoError(t, repo.SaveDailySeries(ctx, testUserID, date, daily))
		series, err = repo.DailySeries(ctx, testUserID, date)
		require.NoError(t, err)
		assert.Equal(t, daily, series)
	})

	t.Run("activities", func(t *testing.T) {
		hr, ts := 141.0, float64(date.Add(time.Hour).UnixMilli())
		a := engine.Activity{
			ID:          "run-1",
			Matrix:      position.Matrix{{&ts, &hr, nil}},
			Descriptors: []position.Descriptor{{Index: 1, Key: position.HeartRateKey, Unit: "bpm", Factor: 1}},
			Start:       date.Add(time.Hour),
			Duration:    30 * time.Minute,
		}
		require.NoError(t, repo.SaveActivity(ctx, testUserID, a))

		activities, err := repo.Activities(ctx, testUserID, date)
		require.NoError(t, err)
		require.Len(t, activities, 1)
		assert.Equal(t, "run-1", activities[0].ID)
		assert.Equal(t, 30*time.Minute, activities[0].Duration)
		assert.True(t, a.Start.Equal(activities[0].Start))
		assert.Equal(t, a.Descriptors, activities[0].Descriptors)
		require.Len(t, activities[0].Matrix, 1)
		assert.Nil(t, activities[0].Matrix[0][2])
		assert.Equal(t, 141.0, *activities[0].Matrix[0][1])

		_, err = repo.Activity(ctx, testUserID, "nope")
		assert.ErrorIs(t, err, loadstore.ErrNotFound)
	})

	t.Run("day load", func(t *testing.T) {
		_, err := repo.DayLoad(ctx, testUserID, date)
		assert.True(t, errors.Is(err, loadstore.ErrNotFound))

		calc, err := trimp.NewCalculator(trimp.DefaultParams())
		require.NoError(t, err)
		series := hrseries.Series{{Timestamp: date.UnixMilli(), HeartRate: 120}, {Timestamp: date.UnixMilli() + 60_000, HeartRate: 140}}
		result := calc.Compute(series)

		require.NoError(t, repo.SaveDayLoad(ctx, loadstore.DayRow{
			UserID:         testUserID,
			Date:           date,
			Series:         series,
			Result:         result,
			ContentHash:    hrseries.MustContentHash(series),
			Classification: trimp.Classify(result),
			DailyScore:     trimp.DailyScore(result),
		}))

		row, err := repo.DayLoad(ctx, testUserID, date)
		require.NoError(t, err)
		assert.Equal(t, series, row.Series)
		assert.Equal(t, result, row.Result)
		require.NotNil(t, row.Entry())

		require.NoError(t, repo.InvalidateDay(ctx, testUserID, date))
		row, err = repo.DayLoad(ctx, testUserID, date)
		require.NoError(t, err)
		assert.Nil(t, row.Entry())
	})

	t.Run("activity load", func(t *testing.T) {
		_, err := repo.ActivityLoad(ctx, testUserID, "run-1")
		assert.ErrorIs(t, err, loadstore.ErrNotFound)

		require.NoError(t, repo.SaveActivityLoad(ctx, loadstore.ActivityRow{
			UserID:         testUserID,
			ActivityID:     "run-1",
			Series:         hrseries.Series{},
			Result:         trimp.Result{Zones: trimp.NewZones(), PerBPM: map[int]float64{}, PerBPMMinutes: map[int]float64{}},
			ContentHash:    "abc",
			Classification: trimp.Mixed,
		}))
		row, err := repo.ActivityLoad(ctx, testUserID, "run-1")
		require.NoError(t, err)
		assert.Equal(t, "abc", row.ContentHash)

		require.NoError(t, repo.InvalidateActivity(ctx, testUserID, "run-1"))
		row, err = repo.ActivityLoad(ctx, testUserID, "run-1")
		require.NoError(t, err)
		assert.Empty(t, row.ContentHash)
	})
}

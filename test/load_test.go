//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/2beens/hrload/internal/engine"
	"github.com/2beens/hrload/internal/hrseries"
	"github.com/2beens/hrload/internal/loadstore"
	"github.com/2beens/hrload/internal/position"
	"github.com/2beens/hrload/internal/trimp"
)

var seedDay = time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

type dayBody struct {
	Date           string  `json:"date"`
	Total          float64 `json:"total"`
	Classification string  `json:"classification"`
	Samples        int     `json:"samples"`
	CacheHit       bool    `json:"cacheHit"`
}

func ptr(v float64) *float64 {
	return &v
}

// seed stores a day with a resting daily stream and one hard 30 minute run.
func seed(ctx context.Context, repo *loadstore.Repo) error {
	if err := repo.SaveHRParams(ctx, testUserID, trimp.Params{RestingHR: 50, MaxHR: 180}); err != nil {
		return err
	}

	var daily hrseries.Series
	for i := 0; i < 24*30; i++ {
		daily = append(daily, hrseries.Sample{
			Timestamp: seedDay.Add(time.Duration(i) * 2 * time.Minute).UnixMilli(),
			HeartRate: 60 + i%7,
		})
	}
	if err := repo.SaveDailySeries(ctx, testUserID, seedDay, daily); err != nil {
		return err
	}

	start := seedDay.Add(7 * time.Hour)
	matrix := make(position.Matrix, 0, 1800)
	for i := 0; i < 1800; i++ {
		matrix = append(matrix, []*float64{
			ptr(float64(start.Add(time.Duration(i) * time.Second).UnixMilli())),
			ptr(float64(140 + i%20)),
		})
	}
	return repo.SaveActivity(ctx, testUserID, engine.Activity{
		ID:     "run-1",
		Matrix: matrix,
		Descriptors: []position.Descriptor{
			{Index: 0, Key: position.TimestampKey, Unit: "ms"},
			{Index: 1, Key: position.HeartRateKey, Unit: "bpm"},
		},
		Start:    start,
		Duration: 30 * time.Minute,
	})
}

func get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, serverEndpoint+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	_ = resp.Body.Close()
	return resp, nil
}

func (s *IntegrationTestSuite) do(method, path string, body []byte) (int, []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, bytes.NewReader(body))
	s.Require().NoError(err)
	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, respBody
}

func (s *IntegrationTestSuite) TestRecomputeDay() {
	path := fmt.Sprintf("/days/%s/recompute", seedDay.Format(time.DateOnly))

	code, body := s.do(http.MethodPost, path, nil)
	s.Require().Equal(http.StatusOK, code, string(body))

	var first dayBody
	s.Require().NoError(json.Unmarshal(body, &first))
	s.Equal("2024-03-10", first.Date)
	s.Positive(first.Total)

	code, body = s.do(http.MethodPost, path, nil)
	s.Require().Equal(http.StatusOK, code)
	var second dayBody
	s.Require().NoError(json.Unmarshal(body, &second))
	s.True(second.CacheHit)
	s.Equal(first.Total, second.Total)

	row, err := s.repo.DayLoad(context.Background(), testUserID, seedDay)
	s.Require().NoError(err)
	s.Equal(first.Total, row.Result.Total)
	s.NotEmpty(row.ContentHash)
}

func (s *IntegrationTestSuite) TestOverrideDay() {
	day := seedDay.AddDate(0, 0, 1)
	pairs := `[[1710115200000,120],[1710115260000,125],[1710115320000,null],[1710115380000,130]]`

	code, body := s.do(http.MethodPut, fmt.Sprintf("/days/%s/daily", day.Format(time.DateOnly)), []byte(pairs))
	s.Require().Equal(http.StatusOK, code, string(body))

	var resp dayBody
	s.Require().NoError(json.Unmarshal(body, &resp))
	s.Positive(resp.Samples)
	s.LessOrEqual(resp.Samples, 3)
	s.False(resp.CacheHit)

	stored, err := s.repo.DailySeries(context.Background(), testUserID, day)
	s.Require().NoError(err)
	s.Len(stored, 4)
}

func (s *IntegrationTestSuite) TestRecomputeActivity() {
	code, body := s.do(http.MethodPost, "/activities/run-1/recompute", nil)
	s.Require().Equal(http.StatusOK, code, string(body))

	var resp struct {
		Detected bool    `json:"detected"`
		Method   string  `json:"method"`
		Total    float64 `json:"total"`
	}
	s.Require().NoError(json.Unmarshal(body, &resp))
	s.True(resp.Detected)
	s.Equal("descriptor", resp.Method)
	s.Positive(resp.Total)

	code, _ = s.do(http.MethodPost, "/activities/missing/recompute", nil)
	s.Equal(http.StatusNotFound, code)
}

func (s *IntegrationTestSuite) TestRecomputeRange() {
	code, body := s.do(http.MethodPost, "/range/recompute?from=2024-03-08&to=2024-03-10", nil)
	s.Require().Equal(http.StatusOK, code, string(body))

	var resp struct {
		Days []dayBody `json:"days"`
	}
	s.Require().NoError(json.Unmarshal(body, &resp))
	s.Require().Len(resp.Days, 3)
	s.Equal("2024-03-08", resp.Days[0].Date)
	s.Zero(resp.Days[0].Total)
}

func (s *IntegrationTestSuite) TestSetHRParams() {
	code, _ := s.do(http.MethodPut, "/hr-params", []byte(`{"restingHr":190,"maxHr":180}`))
	s.Equal(http.StatusUnprocessableEntity, code)

	code, body := s.do(http.MethodPut, "/hr-params", []byte(`{"restingHr":50,"maxHr":180}`))
	s.Require().Equal(http.StatusOK, code, string(body))

	params, err := s.repo.HRParams(context.Background(), testUserID)
	s.Require().NoError(err)
	s.Equal(trimp.Params{RestingHR: 50, MaxHR: 180}, params)
}

package loadstore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/hrload/internal/hrseries"
	"github.com/2beens/hrload/internal/resultcache"
	"github.com/2beens/hrload/internal/trimp"
)

// DayRow is the persisted outcome of one day.
type DayRow struct {
	UserID         int
	Date           time.Time
	Series         hrseries.Series
	Result         trimp.Result
	ContentHash    string
	Classification string
	DailyScore     float64
	UpdatedAt      time.Time
}

// Entry returns the stored cache entry, nil once the row was invalidated.
func (r *DayRow) Entry() *resultcache.Entry {
	if r == nil || r.ContentHash == "" {
		return nil
	}
	return &resultcache.Entry{Hash: r.ContentHash, Result: r.Result}
}

// ActivityRow is the persisted outcome of one activity.
type ActivityRow struct {
	UserID         int
	ActivityID     string
	Series         hrseries.Series
	Result         trimp.Result
	ContentHash    string
	Classification string
	UpdatedAt      time.Time
}

func (r *ActivityRow) Entry() *resultcache.Entry {
	if r == nil || r.ContentHash == "" {
		return nil
	}
	return &resultcache.Entry{Hash: r.ContentHash, Result: r.Result}
}

// encodePairs stores a series in the [[timestamp, hr], ...] shape of the
// upstream daily endpoint, a missing heart rate is written as null.
func encodePairs(series hrseries.Series) ([]byte, error) {
	pairs := make([][2]*int64, 0, len(series))
	for _, s := range series {
		ts := s.Timestamp
		pair := [2]*int64{&ts, nil}
		if s.HasHeartRate() {
			hr := int64(s.HeartRate)
			pair[1] = &hr
		}
		pairs = append(pairs, pair)
	}
	return json.Marshal(pairs)
}

func decodePairs(raw []byte) (hrseries.Series, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var pairs [][2]*int64
	if err := json.Unmarshal(raw, &pairs); err != nil {
		return nil, fmt.Errorf("decode heart rate pairs: %w", err)
	}
	return hrseries.FromPairs(pairs), nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

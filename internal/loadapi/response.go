package loadapi

import (
	"time"

	"github.com/2beens/hrload/internal/engine"
	"github.com/2beens/hrload/internal/trimp"
)

type zoneResponse struct {
	Label   string  `json:"label"`
	Color   string  `json:"color"`
	Minutes float64 `json:"minutes"`
	Trimp   float64 `json:"trimp"`
}

type dayResponse struct {
	Date           string         `json:"date"`
	Total          float64        `json:"total"`
	Zones          []zoneResponse `json:"zones"`
	Classification string         `json:"classification"`
	DailyScore     float64        `json:"dailyScore"`
	Samples        int            `json:"samples"`
	CacheHit       bool           `json:"cacheHit"`
	Undetected     []string       `json:"undetectedActivities,omitempty"`
}

type rangeResponse struct {
	Days   []dayResponse `json:"days"`
	Errors []string      `json:"errors,omitempty"`
}

type activityResponse struct {
	ActivityID     string         `json:"activityId"`
	Detected       bool           `json:"detected"`
	Method         string         `json:"method,omitempty"`
	Total          float64        `json:"total"`
	Zones          []zoneResponse `json:"zones"`
	Classification string         `json:"classification"`
	Samples        int            `json:"samples"`
	CacheHit       bool           `json:"cacheHit"`
}

func newZones(zones []trimp.ZoneBucket) []zoneResponse {
	resp := make([]zoneResponse, 0, len(zones))
	for _, z := range zones {
		resp = append(resp, zoneResponse{
			Label:   z.Label(),
			Color:   z.Color(),
			Minutes: z.Minutes,
			Trimp:   z.Trimp,
		})
	}
	return resp
}

func newDayResponse(out engine.DayOutput) dayResponse {
	return dayResponse{
		Date:           out.Date.Format(time.DateOnly),
		Total:          out.Result.Total,
		Zones:          newZones(out.Result.Zones),
		Classification: out.Classification,
		DailyScore:     out.DailyScore,
		Samples:        len(out.Series),
		CacheHit:       out.CacheHit,
		Undetected:     out.Undetected,
	}
}

func newActivityResponse(out engine.ActivityOutput) activityResponse {
	return activityResponse{
		ActivityID:     out.ActivityID,
		Detected:       out.Detected,
		Method:         out.Columns.Method,
		Total:          out.Result.Total,
		Zones:          newZones(out.Result.Zones),
		Classification: out.Classification,
		Samples:        len(out.Series),
		CacheHit:       out.CacheHit,
	}
}

package trimp

import (
	"math"
	"time"

	"github.com/2beens/hrload/internal/hrseries"
)

const (
	// DefaultMaxInterval is the largest gap still integrated. Longer intervals
	// are treated as the sensor being off and contribute nothing.
	DefaultMaxInterval = 300 * time.Second

	intensityFactor = 0.64
	intensityExp    = 1.92
)

// Result is the load of one series.
type Result struct {
	PerBPM        map[int]float64 `json:"perBpm"`
	PerBPMMinutes map[int]float64 `json:"perBpmMinutes"`
	Zones         []ZoneBucket    `json:"zones"`
	Total         float64         `json:"total"`
}

func emptyResult() Result {
	return Result{
		PerBPM:        map[int]float64{},
		PerBPMMinutes: map[int]float64{},
		Zones:         NewZones(),
	}
}

// ZonesTotal is the load summed over the zone buckets.
func (r Result) ZonesTotal() float64 {
	total := 0.0
	for _, z := range r.Zones {
		total += z.Trimp
	}
	return total
}

type Calculator struct {
	params      Params
	maxInterval time.Duration
}

// NewCalculator validates params, nothing is computed with a non positive reserve.
func NewCalculator(params Params) (*Calculator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{
		params:      params,
		maxInterval: DefaultMaxInterval,
	}, nil
}

func (c *Calculator) Params() Params {
	return c.params
}

// ForInterval is the load of minutes spent at hr.
func (c *Calculator) ForInterval(hr int, minutes float64) float64 {
	if hr < ExerciseThreshold {
		return 0
	}
	ratio := c.params.ReserveRatio(hr)
	return minutes * ratio * intensityFactor * math.Exp(intensityExp*ratio)
}

// SkipStats counts the intervals that contributed nothing. NonPositive are
// pairs whose timestamps do not move forward.
type SkipStats struct {
	NullHeartRate  int
	LargeGap       int
	NonPositive    int
	BelowThreshold int
}

// Compute integrates the load over consecutive sample pairs. Each interval is
// attributed to the heart rate of its right endpoint.
func (c *Calculator) Compute(series hrseries.Series) Result {
	result, _ := c.ComputeWithStats(series)
	return result
}

func (c *Calculator) ComputeWithStats(series hrseries.Series) (Result, SkipStats) {
	var stats SkipStats
	result := emptyResult()
	if len(series) < 2 {
		return result, stats
	}

	maxIntervalMs := c.maxInterval.Milliseconds()
	for i := 1; i < len(series); i++ {
		prev, cur := series[i-1], series[i]
		if !prev.HasHeartRate() || !cur.HasHeartRate() {
			stats.NullHeartRate++
			continue
		}

		elapsedMs := cur.Timestamp - prev.Timestamp
		if elapsedMs <= 0 {
			stats.NonPositive++
			continue
		}
		if elapsedMs > maxIntervalMs {
			stats.LargeGap++
			continue
		}

		zi := zoneIndex(cur.HeartRate)
		if zi < 0 {
			stats.BelowThreshold++
			continue
		}

		minutes := float64(elapsedMs) / 1000 / 60
		load := c.ForInterval(cur.HeartRate, minutes)

		result.PerBPM[cur.HeartRate] += load
		result.PerBPMMinutes[cur.HeartRate] += minutes
		result.Zones[zi].Minutes += minutes
		result.Zones[zi].Trimp += load
		result.Total += load
	}

	return result, stats
}

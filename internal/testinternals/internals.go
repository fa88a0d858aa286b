package testinternals

import (
	"time"

	"github.com/2beens/hrload/internal/hrseries"
	"github.com/brianvoe/gofakeit/v6"
)

// DayStart is a fixed midnight used across tests, 2024-03-10 UTC.
var DayStart = time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

// Faker returns a seeded faker so randomized tests stay reproducible.
func Faker(seed int64) *gofakeit.Faker {
	return gofakeit.New(seed)
}

// RandomSeries builds n sorted samples starting at start, each step a random
// 1..maxStep seconds after the previous one, heart rate in [minHR, maxHR].
func RandomSeries(f *gofakeit.Faker, start time.Time, n, maxStep, minHR, maxHR int) hrseries.Series {
	series := make(hrseries.Series, 0, n)
	ts := start.UnixMilli()
	for i := 0; i < n; i++ {
		series = append(series, hrseries.Sample{
			Timestamp: ts,
			HeartRate: f.Number(minHR, maxHR),
		})
		ts += int64(f.Number(1, maxStep)) * 1000
	}
	return series
}

// DailySeries is a coarse day stream, one sample every two minutes from
// DayStart for the given number of hours.
func DailySeries(f *gofakeit.Faker, hours int) hrseries.Series {
	n := hours * 30
	series := make(hrseries.Series, 0, n)
	for i := 0; i < n; i++ {
		series = append(series, hrseries.Sample{
			Timestamp: DayStart.Add(time.Duration(i) * 2 * time.Minute).UnixMilli(),
			HeartRate: f.Number(55, 95),
		})
	}
	return series
}

// ActivitySeries is a 1 Hz workout stream starting offset after DayStart.
func ActivitySeries(f *gofakeit.Faker, offset, duration time.Duration) hrseries.Series {
	n := int(duration / time.Second)
	start := DayStart.Add(offset).UnixMilli()
	series := make(hrseries.Series, 0, n)
	for i := 0; i < n; i++ {
		series = append(series, hrseries.Sample{
			Timestamp: start + int64(i)*1000,
			HeartRate: f.Number(110, 175),
		})
	}
	return series
}

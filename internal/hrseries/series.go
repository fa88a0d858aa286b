package hrseries

import (
	"sort"
)

const (
	// PlausibleMinHR and PlausibleMaxHR bound a physiologically possible reading.
	// Samples outside of it are dropped while cleaning.
	PlausibleMinHR = 25
	PlausibleMaxHR = 250
)

// Sample is a single heart rate reading.
// A HeartRate <= 0 marks a sample without a reading (upstream sends null).
// A Timestamp <= 0 marks a sample without a timestamp the same way, so a
// reading at exactly the unix epoch counts as missing.
type Sample struct {
	Timestamp int64 `json:"timestamp"` // epoch millis
	HeartRate int   `json:"heartRate"`
}

func (s Sample) HasHeartRate() bool {
	return s.HeartRate > 0
}

func (s Sample) HasTimestamp() bool {
	return s.Timestamp > 0
}

// Series is sorted ascending by Timestamp and holds the best known
// heart rate at each observed instant. It is never mutated in place
// by the engine, every stage produces a new one.
type Series []Sample

func (s Series) Clone() Series {
	if s == nil {
		return nil
	}
	c := make(Series, len(s))
	copy(c, s)
	return c
}

func (s Series) Empty() bool {
	return len(s) == 0
}

// Bounds returns the first and last timestamp of the series.
// ok is false for an empty series.
func (s Series) Bounds() (first, last int64, ok bool) {
	if len(s) == 0 {
		return 0, 0, false
	}
	return s[0].Timestamp, s[len(s)-1].Timestamp, true
}

// Window returns the samples with from <= timestamp <= to.
// The receiver must be sorted.
func (s Series) Window(from, to int64) Series {
	if len(s) == 0 || from > to {
		return Series{}
	}
	lo := sort.Search(len(s), func(i int) bool { return s[i].Timestamp >= from })
	hi := sort.Search(len(s), func(i int) bool { return s[i].Timestamp > to })
	out := make(Series, hi-lo)
	copy(out, s[lo:hi])
	return out
}

func (s Series) IsSorted() bool {
	return sort.SliceIsSorted(s, func(i, j int) bool {
		return s[i].Timestamp < s[j].Timestamp
	})
}

// SortByTimestamp sorts in place, keeping the relative order of equal timestamps.
func SortByTimestamp(s Series) {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Timestamp < s[j].Timestamp
	})
}

// FromPairs builds a series from [timestamp, hr] pairs, the shape the
// daily heart rate endpoint returns. Nil entries become zero values and
// are dropped later by Clean.
func FromPairs(pairs [][2]*int64) Series {
	series := make(Series, 0, len(pairs))
	for _, p := range pairs {
		var sample Sample
		if p[0] != nil {
			sample.Timestamp = *p[0]
		}
		if p[1] != nil {
			sample.HeartRate = int(*p[1])
		}
		series = append(series, sample)
	}
	return series
}

package trimp

import (
	"strconv"
)

const (
	// ExerciseThreshold is the lowest heart rate that contributes load.
	ExerciseThreshold = 80
	zoneWidth         = 10
	unboundedFrom     = 160
)

// ZoneBucket accumulates the minutes and load spent in a heart rate zone.
// Upper is inclusive and ignored when Unbounded is set.
type ZoneBucket struct {
	Lower     int     `json:"lower"`
	Upper     int     `json:"upper"`
	Unbounded bool    `json:"unbounded"`
	Minutes   float64 `json:"minutes"`
	Trimp     float64 `json:"trimp"`
}

func (z ZoneBucket) Label() string {
	if z.Unbounded {
		return strconv.Itoa(z.Lower) + "+"
	}
	return strconv.Itoa(z.Lower) + "-" + strconv.Itoa(z.Upper)
}

func (z ZoneBucket) Contains(hr int) bool {
	return hr >= z.Lower && (z.Unbounded || hr <= z.Upper)
}

var zoneColors = []string{
	"#002040",
	"#1f77b4",
	"#7fb3d3",
	"#17becf",
	"#2ca02c",
	"#ff7f0e",
	"#ff6b35",
	"#d62728",
	"#8b0000",
}

// legacy daily score weight per zone, in zone order
var zoneWeights = []float64{0.5, 1.0, 1.5, 2.0, 2.5, 3.0, 3.5, 4.0, 4.5}

// Color is the chart colour of the zone.
func (z ZoneBucket) Color() string {
	i := zoneIndex(z.Lower)
	if i < 0 {
		return ""
	}
	return zoneColors[i]
}

// NewZones returns the fixed, empty zone table: 80-89 up to 150-159, then 160+.
func NewZones() []ZoneBucket {
	zones := make([]ZoneBucket, 0, len(zoneColors))
	for lower := ExerciseThreshold; lower < unboundedFrom; lower += zoneWidth {
		zones = append(zones, ZoneBucket{Lower: lower, Upper: lower + zoneWidth - 1})
	}
	return append(zones, ZoneBucket{Lower: unboundedFrom, Unbounded: true})
}

// zoneIndex maps a heart rate to its zone in the NewZones table, -1 below the threshold.
func zoneIndex(hr int) int {
	switch {
	case hr < ExerciseThreshold:
		return -1
	case hr >= unboundedFrom:
		return len(zoneColors) - 1
	default:
		return (hr - ExerciseThreshold) / zoneWidth
	}
}

package trimp

const (
	LongLowIntensity   = "long_low_intensity"
	ShortHighIntensity = "short_high_intensity"
	Mixed              = "mixed"

	lowBelow  = 120
	highFrom  = 130
	dominance = 2
)

// Classify labels a result by where its load mass sits.
// 120-129 counts towards neither side.
func Classify(r Result) string {
	var low, high float64
	for _, z := range r.Zones {
		switch {
		case !z.Unbounded && z.Upper < lowBelow:
			low += z.Trimp
		case z.Lower >= highFrom:
			high += z.Trimp
		}
	}

	switch {
	case low > high*dominance:
		return LongLowIntensity
	case high > low*dominance:
		return ShortHighIntensity
	default:
		return Mixed
	}
}

// DailyScore is the legacy weighted time in zone score, 0 with no minutes.
func DailyScore(r Result) float64 {
	totalMinutes := 0.0
	for _, z := range r.Zones {
		totalMinutes += z.Minutes
	}
	if totalMinutes == 0 {
		return 0
	}

	score := 0.0
	for _, z := range r.Zones {
		i := zoneIndex(z.Lower)
		if i < 0 {
			continue
		}
		score += z.Minutes / totalMinutes * zoneWeights[i] * 100
	}
	return score
}

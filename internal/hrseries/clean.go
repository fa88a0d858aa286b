package hrseries

// CleanStats describes what Clean dropped.
type CleanStats struct {
	Input          int
	NoTimestamp    int
	NoHeartRate    int
	OutOfRange     int
	DuplicateStamp int
}

func (cs CleanStats) Dropped() int {
	return cs.NoTimestamp + cs.NoHeartRate + cs.OutOfRange + cs.DuplicateStamp
}

// Clean sorts the raw samples and drops the malformed ones: missing timestamp,
// missing heart rate, heart rate outside [PlausibleMinHR, PlausibleMaxHR] and
// repeated timestamps (the first one seen wins). The input is left untouched.
func Clean(raw Series) (Series, CleanStats) {
	stats := CleanStats{Input: len(raw)}
	kept := make(Series, 0, len(raw))
	for _, s := range raw {
		switch {
		case !s.HasTimestamp():
			stats.NoTimestamp++
		case !s.HasHeartRate():
			stats.NoHeartRate++
		case s.HeartRate < PlausibleMinHR || s.HeartRate > PlausibleMaxHR:
			stats.OutOfRange++
		default:
			kept = append(kept, s)
		}
	}

	SortByTimestamp(kept)

	out := kept[:0]
	for _, s := range kept {
		if len(out) > 0 && s.Timestamp == out[len(out)-1].Timestamp {
			stats.DuplicateStamp++
			continue
		}
		out = append(out, s)
	}

	return out, stats
}

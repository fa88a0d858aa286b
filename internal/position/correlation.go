package position

import (
	"math"
	"sort"

	"github.com/2beens/hrload/internal/hrseries"
)

// pearson returns the correlation coefficient of xs and ys.
// ok is false for fewer than two pairs or when either side has no variance.
func pearson(xs, ys []float64) (float64, bool) {
	n := len(xs)
	if n < 2 || n != len(ys) {
		return 0, false
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/float64(n), sumY/float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, false
	}

	r := cov / math.Sqrt(varX*varY)
	if math.IsNaN(r) {
		return 0, false
	}
	return r, true
}

// align pairs every reference sample with the candidate sample nearest in
// time, as long as it is within toleranceMs. candidate must be sorted.
func align(reference, candidate hrseries.Series, toleranceMs int64) (ref, cand []float64) {
	if len(candidate) == 0 {
		return nil, nil
	}

	for _, r := range reference {
		i := sort.Search(len(candidate), func(i int) bool {
			return candidate[i].Timestamp >= r.Timestamp
		})

		best := -1
		bestDiff := int64(math.MaxInt64)
		for _, j := range []int{i - 1, i} {
			if j < 0 || j >= len(candidate) {
				continue
			}
			diff := candidate[j].Timestamp - r.Timestamp
			if diff < 0 {
				diff = -diff
			}
			if diff < bestDiff {
				best, bestDiff = j, diff
			}
		}

		if best >= 0 && bestDiff <= toleranceMs {
			ref = append(ref, float64(r.HeartRate))
			cand = append(cand, float64(candidate[best].HeartRate))
		}
	}

	return ref, cand
}

package position

import (
	"math"

	"github.com/2beens/hrload/internal/hrseries"
)

// Canonical descriptor keys for the two channels the engine needs.
const (
	HeartRateKey = "directHeartRate"
	TimestampKey = "directTimestamp"
)

// Matrix is the per activity metrics table: rows are samples, columns are
// unnamed metric channels. A nil cell is a missing value.
type Matrix [][]*float64

// Width is the number of columns of the widest row.
func (m Matrix) Width() int {
	width := 0
	for _, row := range m {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// Column returns the non nil values of column idx, in row order.
func (m Matrix) Column(idx int) []float64 {
	values := make([]float64, 0, len(m))
	for _, row := range m {
		if idx < len(row) && row[idx] != nil {
			values = append(values, *row[idx])
		}
	}
	return values
}

func (m Matrix) cell(row, col int) (float64, bool) {
	r := m[row]
	if col >= len(r) || r[col] == nil {
		return 0, false
	}
	v := *r[col]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Descriptor is the optional metadata the source sends for a column.
type Descriptor struct {
	Index  int     `json:"metricsIndex"`
	Key    string  `json:"key"`
	Unit   string  `json:"unit"`
	Factor float64 `json:"factor"`
}

// Columns is a resolved (heart rate, timestamp) column pair.
type Columns struct {
	HeartRate       int
	Timestamp       int
	HeartRateFactor float64
	TimestampFactor float64
	// Method names the strategy (and branch) that resolved the pair.
	Method      string
	Correlation float64
}

func scale(v, factor float64) float64 {
	if factor == 0 {
		return v
	}
	return v * factor
}

// Extract reads the resolved columns out of the matrix. Rows with a missing
// timestamp or heart rate keep a zero value and are dropped by hrseries.Clean.
func Extract(m Matrix, cols Columns) hrseries.Series {
	series := make(hrseries.Series, 0, len(m))
	for i := range m {
		var sample hrseries.Sample
		if ts, ok := m.cell(i, cols.Timestamp); ok {
			sample.Timestamp = int64(math.Round(scale(ts, cols.TimestampFactor)))
		}
		if hr, ok := m.cell(i, cols.HeartRate); ok {
			sample.HeartRate = int(math.Round(scale(hr, cols.HeartRateFactor)))
		}
		series = append(series, sample)
	}
	return series
}

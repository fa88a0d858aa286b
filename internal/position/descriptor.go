package position

import (
	"github.com/2beens/hrload/internal/events"
)

var _ Detector = DescriptorDriven{}

// DescriptorDriven trusts the column metadata sent by the source.
type DescriptorDriven struct{}

func (DescriptorDriven) Detect(in Input, sink events.Sink) (Columns, bool) {
	sink = events.OrNop(sink)

	hr, hrFound := findDescriptor(in.Descriptors, HeartRateKey)
	ts, tsFound := findDescriptor(in.Descriptors, TimestampKey)
	switch {
	case !hrFound:
		return undetected(sink, in, "descriptor_missing_heart_rate")
	case !tsFound:
		return undetected(sink, in, "descriptor_missing_timestamp")
	}

	width := in.Matrix.Width()
	if hr.Index < 0 || hr.Index >= width || ts.Index < 0 || ts.Index >= width {
		return undetected(sink, in, "descriptor_index_out_of_range")
	}

	return detected(sink, in, Columns{
		HeartRate:       hr.Index,
		Timestamp:       ts.Index,
		HeartRateFactor: hr.Factor,
		TimestampFactor: ts.Factor,
		Method:          "descriptor",
	})
}

func findDescriptor(descriptors []Descriptor, key string) (Descriptor, bool) {
	for _, d := range descriptors {
		if d.Key == key {
			return d, true
		}
	}
	return Descriptor{}, false
}

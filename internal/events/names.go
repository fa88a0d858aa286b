package events

// Event names emitted by the engine stages.
const (
	SamplesDropped       = "series.samples_dropped"
	ColumnsDetected      = "position.columns_detected"
	ColumnsUndetected    = "position.columns_undetected"
	CandidateRejected    = "position.candidate_rejected"
	SegmentsExtracted    = "segments.extracted"
	SegmentApplied       = "timeline.segment_applied"
	DailySamplesReplaced = "timeline.daily_samples_replaced"
	TimelineEmpty        = "timeline.empty"
	TimelineFromScratch  = "timeline.constructed_from_activities"
	IntervalSkipped      = "trimp.interval_skipped"
	CacheHit             = "cache.hit"
	CacheMiss            = "cache.miss"
)

// Common field keys.
const (
	FieldDate       = "date"
	FieldActivityID = "activity_id"
	FieldDropped    = "dropped"
	FieldReason     = "reason"
)

package prediction

const (
	veryHighConfidenceThreshold = 90
	highConfidenceThreshold     = 75
	mediumConfidenceThreshold   = 50
)

// CalculateConfidenceLevel buckets a confidence score. Thresholds are inclusive lower
// bounds; anything below 50, including negative and NaN scores, is low.
func CalculateConfidenceLevel(confidence float64) ConfidenceLevel {
	switch {
	case confidence >= veryHighConfidenceThreshold:
		return ConfidenceVeryHigh
	case confidence >= highConfidenceThreshold:
		return ConfidenceHigh
	case confidence >= mediumConfidenceThreshold:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

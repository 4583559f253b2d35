package prediction

// Record is the stored part of a prediction. Everything else is derived from it.
type Record struct {
	CurrentValue   float64 `json:"current_value"`
	PredictedValue float64 `json:"predicted_value"`
	Confidence     float64 `json:"confidence"`
}

// Metrics holds the values derived from a Record.
type Metrics struct {
	PercentageChange  float64         `json:"percentage_change"`
	ExpectedROI       float64         `json:"expected_roi"`
	Trend             Trend           `json:"trend"`
	ConfidenceLevel   ConfidenceLevel `json:"confidence_level"`
	RecommendedAction Action          `json:"recommended_action"`
}

// Evaluate derives all metrics of a record in one pass.
func Evaluate(rec Record) (Metrics, error) {
	change, err := CalculateROI(rec.CurrentValue, rec.PredictedValue)
	if err != nil {
		return Metrics{}, err
	}

	trend := classifyChange(change)
	return Metrics{
		PercentageChange:  roundTo2(change),
		ExpectedROI:       change,
		Trend:             trend,
		ConfidenceLevel:   CalculateConfidenceLevel(rec.Confidence),
		RecommendedAction: GetRecommendedAction(trend, rec.Confidence),
	}, nil
}

package prediction

// actionConfidenceThreshold is the minimum confidence for a directional recommendation.
const actionConfidenceThreshold = 75

// GetRecommendedAction returns buy for a confident up trend, sell for a confident
// down trend and hold for everything else.
func GetRecommendedAction(trend Trend, confidence float64) Action {
	confident := confidence >= actionConfidenceThreshold
	switch {
	case trend == TrendUp && confident:
		return ActionBuy
	case trend == TrendDown && confident:
		return ActionSell
	default:
		return ActionHold
	}
}

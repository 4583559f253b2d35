package prediction

// trendDeadZone is the percentage band around zero that is reported as stable.
const trendDeadZone = 1.0

// GetTrendDirection classifies the move from currentValue to predictedValue.
// Changes strictly above +1% are up, strictly below -1% are down, everything else is stable.
func GetTrendDirection(currentValue, predictedValue float64) (Trend, error) {
	change, err := CalculateROI(currentValue, predictedValue)
	if err != nil {
		return "", err
	}
	return classifyChange(change), nil
}

func classifyChange(percentChange float64) Trend {
	switch {
	case percentChange > trendDeadZone:
		return TrendUp
	case percentChange < -trendDeadZone:
		return TrendDown
	default:
		return TrendStable
	}
}

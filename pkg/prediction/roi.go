package prediction

// CalculateROI returns the signed percentage change from currentValue to predictedValue.
// A zero currentValue yields ErrZeroCurrentValue instead of an infinite or NaN result.
func CalculateROI(currentValue, predictedValue float64) (float64, error) {
	if currentValue == 0 {
		return 0, ErrZeroCurrentValue
	}
	return ((predictedValue - currentValue) / currentValue) * 100, nil
}

package forecast

// Align reconciles a predicted sequence with the actual test values when
// their lengths differ. Predictions cover the test period's inclusive date
// range, which can hold more calendar days than the test series has
// observations, so the surplus is trimmed from the front: the extra points
// are the leading ones the date range admits before the first shared
// observation. The mirrored case trims leading actuals instead. This is a
// fixed policy, not a general alignment algorithm.
//
// The returned slices always have equal length; if that length is zero,
// ErrEmptyAlignment is returned.
func Align(actual, predicted []float64) ([]float64, []float64, error) {
	switch {
	case len(predicted) > len(actual):
		predicted = predicted[len(predicted)-len(actual):]
	case len(predicted) < len(actual):
		actual = actual[len(actual)-len(predicted):]
	}

	if len(actual) == 0 {
		return nil, nil, ErrEmptyAlignment
	}
	return actual, predicted, nil
}

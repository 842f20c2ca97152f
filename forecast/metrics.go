package forecast

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrorMetrics holds the backtest accuracy metrics for one route.
// MAPE is a percentage and is computed unconditionally: an actual value of
// zero makes it non-finite. That is reported as "metric unavailable"
// rather than treated as an error, so a single zero-count day never aborts
// a route.
type ErrorMetrics struct {
	MAE  float64
	RMSE float64
	MAPE float64
}

// MAPEDefined reports whether the MAPE value is finite.
func (m ErrorMetrics) MAPEDefined() bool {
	return !math.IsNaN(m.MAPE) && !math.IsInf(m.MAPE, 0)
}

// Evaluate computes MAE, RMSE and MAPE between equal-length actual and
// predicted sequences of length >= 1.
func Evaluate(actual, predicted []float64) (ErrorMetrics, error) {
	if len(actual) != len(predicted) {
		return ErrorMetrics{}, errors.New("forecast: actual and predicted lengths differ")
	}
	if len(actual) == 0 {
		return ErrorMetrics{}, errors.New("forecast: cannot evaluate empty sequences")
	}

	absErr := make([]float64, len(actual))
	sqErr := make([]float64, len(actual))
	pctErr := make([]float64, len(actual))
	for i := range actual {
		diff := actual[i] - predicted[i]
		absErr[i] = math.Abs(diff)
		sqErr[i] = diff * diff
		pctErr[i] = math.Abs(diff / actual[i])
	}

	return ErrorMetrics{
		MAE:  stat.Mean(absErr, nil),
		RMSE: math.Sqrt(stat.Mean(sqErr, nil)),
		MAPE: stat.Mean(pctErr, nil) * 100,
	}, nil
}

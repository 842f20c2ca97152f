package forecast

import "errors"

var (
	// ErrInsufficientData is returned when a route's history is too short
	// to split and evaluate.
	ErrInsufficientData = errors.New("forecast: not enough observations")

	// ErrEmptyAlignment is returned when alignment leaves no overlapping
	// observations to score.
	ErrEmptyAlignment = errors.New("forecast: no overlapping observations after alignment")
)

// ModelFitError wraps a failure to fit the seasonal model, including the
// insufficient-seasonal-history case.
type ModelFitError struct {
	Err error
}

func (e *ModelFitError) Error() string {
	return "forecast: model fit failed: " + e.Err.Error()
}

func (e *ModelFitError) Unwrap() error {
	return e.Err
}

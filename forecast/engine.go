package forecast

import (
	"fmt"
	"time"

	"github.com/go-kul-anand/Kovai-co-timeseries/sarima"
	"github.com/go-kul-anand/Kovai-co-timeseries/timeseries"
)

// Default model settings. A single small fixed order is used for every
// route instead of an automatic order search, trading forecast accuracy
// for bounded fitting time across routes.
const (
	DefaultSeasonalPeriod = 7
	DefaultHorizon        = 7
)

// Engine fits the fixed-order seasonal model for one route and produces
// test-period predictions plus a future forecast.
type Engine struct {
	Period  int // seasonal period (observations per cycle)
	Horizon int // future forecast steps
}

// NewEngine creates an engine; non-positive arguments fall back to the
// weekly defaults.
func NewEngine(period, horizon int) *Engine {
	if period <= 0 {
		period = DefaultSeasonalPeriod
	}
	if horizon <= 0 {
		horizon = DefaultHorizon
	}
	return &Engine{Period: period, Horizon: horizon}
}

// Prediction is the engine output for one route.
type Prediction struct {
	// TestPredictions holds one value per calendar day in the inclusive
	// test date range. When the test series has internal gaps this is
	// longer than the test series itself; Align reconciles the two.
	TestPredictions []float64

	// Future holds exactly Horizon values for the periods following the
	// training and test history.
	Future []float64
}

// Forecast fits SARIMA(1,1,1)(1,0,1)[Period] on the training series with
// relaxed stationarity and invertibility constraints and predicts over
// the test date range plus Horizon further steps.
//
// The combined history must span at least two seasonal cycles, otherwise
// a ModelFitError is returned: the seasonal terms cannot be estimated
// from less.
func (e *Engine) Forecast(train, test *timeseries.Series) (*Prediction, error) {
	if train.Len() == 0 || test.Len() == 0 {
		return nil, ErrInsufficientData
	}

	if n := train.Len() + test.Len(); n < 2*e.Period {
		return nil, &ModelFitError{Err: fmt.Errorf(
			"history of %d observations is shorter than two seasonal cycles (%d)", n, 2*e.Period)}
	}

	model := sarima.New(1, 1, 1, 1, 0, 1, e.Period)
	if err := model.Fit(train.Values); err != nil {
		return nil, &ModelFitError{Err: err}
	}

	// The test prediction range is defined by dates, not by observation
	// count: one step per calendar day from the first through the last
	// test date, offset by the gap between the training end and the
	// first test day.
	lead := daysBetween(train.LastDate(), test.FirstDate())
	if lead < 1 {
		// Duplicate dates across the split boundary; treat the first test
		// day as the next step.
		lead = 1
	}
	span := daysBetween(test.FirstDate(), test.LastDate()) + 1

	steps, err := model.Predict(lead - 1 + span + e.Horizon)
	if err != nil {
		return nil, &ModelFitError{Err: err}
	}

	return &Prediction{
		TestPredictions: steps[lead-1 : lead-1+span],
		Future:          steps[lead-1+span:],
	}, nil
}

// daysBetween counts calendar days from a to b; both are normalized
// midnight-UTC dates.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

package sarima

import (
	"math"
	"testing"
)

// weeklySeries builds n days of ridership-like data with weekly seasonality.
func weeklySeries(n int) []float64 {
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		trend := float64(i) * 0.3
		seasonal := 25 * math.Sin(2*math.Pi*float64(i)/7)
		noise := float64(i%5-2) / 2
		values[i] = 300 + trend + seasonal + noise
	}
	return values
}

func TestNewOrder(t *testing.T) {
	model := New(1, 1, 1, 1, 0, 1, 7)

	o := model.Order
	if o.P != 1 || o.D != 1 || o.Q != 1 {
		t.Errorf("Unexpected non-seasonal order: %+v", o)
	}
	if o.SP != 1 || o.SD != 0 || o.SQ != 1 || o.M != 7 {
		t.Errorf("Unexpected seasonal order: %+v", o)
	}
	if model.Config.EnforceStationarity || model.Config.EnforceInvertibility {
		t.Errorf("Constraints should be relaxed by default")
	}
}

func TestFitWeeklyData(t *testing.T) {
	model := New(1, 1, 1, 1, 0, 1, 7)

	if err := model.Fit(weeklySeries(70)); err != nil {
		t.Fatalf("Failed to fit model: %v", err)
	}

	if model.Variance <= 0 {
		t.Errorf("Expected positive residual variance, got %f", model.Variance)
	}
	if len(model.Residuals()) == 0 {
		t.Errorf("Expected residuals after fit")
	}

	t.Logf("AR=%v MA=%v SAR=%v SMA=%v", model.ARCoeffs, model.MACoeffs, model.SARCoeffs, model.SMACoeffs)
}

func TestFitShortSeries(t *testing.T) {
	model := New(1, 1, 1, 1, 0, 1, 7)

	if err := model.Fit([]float64{1, 2}); err == nil {
		t.Fatalf("Expected error for too-short series")
	}
}

func TestFitSmallSeries(t *testing.T) {
	// The pipeline fits 11-point training prefixes; that must not fail.
	model := New(1, 1, 1, 1, 0, 1, 7)

	values := []float64{10, 12, 11, 13, 10, 14, 12, 11, 13, 12, 14}
	if err := model.Fit(values); err != nil {
		t.Fatalf("Failed to fit on 11 observations: %v", err)
	}

	forecasts, err := model.Predict(10)
	if err != nil {
		t.Fatalf("Failed to predict: %v", err)
	}
	for i, f := range forecasts {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Errorf("Forecast %d is not finite: %f", i, f)
		}
	}
}

func TestPredictLength(t *testing.T) {
	model := New(1, 1, 1, 1, 0, 1, 7)
	if err := model.Fit(weeklySeries(56)); err != nil {
		t.Fatalf("Failed to fit model: %v", err)
	}

	for _, steps := range []int{1, 7, 30} {
		forecasts, err := model.Predict(steps)
		if err != nil {
			t.Fatalf("Predict(%d) failed: %v", steps, err)
		}
		if len(forecasts) != steps {
			t.Errorf("Predict(%d): expected %d forecasts, got %d", steps, steps, len(forecasts))
		}
	}
}

func TestPredictBeforeFit(t *testing.T) {
	model := New(1, 1, 1, 1, 0, 1, 7)

	if _, err := model.Predict(7); err == nil {
		t.Fatalf("Expected error when predicting before fit")
	}
}

func TestPredictInvalidSteps(t *testing.T) {
	model := New(1, 1, 1, 1, 0, 1, 7)
	if err := model.Fit(weeklySeries(56)); err != nil {
		t.Fatalf("Failed to fit model: %v", err)
	}

	if _, err := model.Predict(0); err == nil {
		t.Fatalf("Expected error for zero steps")
	}
}

func TestDeterminism(t *testing.T) {
	values := weeklySeries(70)

	run := func() []float64 {
		model := New(1, 1, 1, 1, 0, 1, 7)
		if err := model.Fit(values); err != nil {
			t.Fatalf("Failed to fit model: %v", err)
		}
		forecasts, err := model.Predict(7)
		if err != nil {
			t.Fatalf("Failed to predict: %v", err)
		}
		return forecasts
	}

	first := run()
	second := run()
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Forecast %d differs between identical runs: %f vs %f", i, first[i], second[i])
		}
	}
}

func TestForecastTracksLevel(t *testing.T) {
	// Forecasts for a series around level 300 should stay in a sane band.
	model := New(1, 1, 1, 1, 0, 1, 7)
	values := weeklySeries(84)
	if err := model.Fit(values); err != nil {
		t.Fatalf("Failed to fit model: %v", err)
	}

	forecasts, err := model.Predict(7)
	if err != nil {
		t.Fatalf("Failed to predict: %v", err)
	}

	for i, f := range forecasts {
		if f < 100 || f > 600 {
			t.Errorf("Forecast %d far from series level: %f", i, f)
		}
	}
}

func TestSeasonalDifferencingOrder(t *testing.T) {
	// A (0,0,0)(0,1,0)[7] model forecasts by repeating the last season
	// plus the mean seasonal change.
	model := New(0, 0, 0, 0, 1, 0, 7)

	values := make([]float64, 28)
	for i := range values {
		values[i] = float64(10 + i%7)
	}
	if err := model.Fit(values); err != nil {
		t.Fatalf("Failed to fit model: %v", err)
	}

	forecasts, err := model.Predict(7)
	if err != nil {
		t.Fatalf("Failed to predict: %v", err)
	}
	for i, f := range forecasts {
		want := float64(10 + i%7)
		if math.Abs(f-want) > 1 {
			t.Errorf("Forecast %d: expected about %f, got %f", i, want, f)
		}
	}
}

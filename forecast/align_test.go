package forecast

import (
	"errors"
	"testing"
)

func TestAlignIdentity(t *testing.T) {
	actual := []float64{1, 2, 3}
	predicted := []float64{1.1, 2.1, 3.1}

	a, p, err := Align(actual, predicted)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	if len(a) != 3 || len(p) != 3 {
		t.Fatalf("Expected unchanged lengths, got %d/%d", len(a), len(p))
	}
	for i := range actual {
		if a[i] != actual[i] || p[i] != predicted[i] {
			t.Errorf("Equal-length input must pass through unchanged")
		}
	}
}

func TestAlignDropsLeadingPrediction(t *testing.T) {
	// The model's inclusive date range tends to emit one extra leading point.
	actual := []float64{10, 20, 30}
	predicted := []float64{99, 11, 21, 31}

	a, p, err := Align(actual, predicted)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	if len(a) != 3 || len(p) != 3 {
		t.Fatalf("Expected lengths 3/3, got %d/%d", len(a), len(p))
	}
	if p[0] != 11 {
		t.Errorf("Expected the leading prediction to be dropped, got %v", p)
	}
}

func TestAlignDropsLeadingActual(t *testing.T) {
	actual := []float64{10, 20, 30, 40}
	predicted := []float64{21, 31, 41}

	a, p, err := Align(actual, predicted)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	if len(a) != 3 || len(p) != 3 {
		t.Fatalf("Expected lengths 3/3, got %d/%d", len(a), len(p))
	}
	if a[0] != 20 {
		t.Errorf("Expected the leading actual to be dropped, got %v", a)
	}
}

func TestAlignMultiPointMismatch(t *testing.T) {
	actual := []float64{10, 20}
	predicted := []float64{1, 2, 3, 11, 21}

	a, p, err := Align(actual, predicted)
	if err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	if len(a) != 2 || len(p) != 2 {
		t.Fatalf("Expected lengths 2/2, got %d/%d", len(a), len(p))
	}
	if p[0] != 11 || p[1] != 21 {
		t.Errorf("Expected exactly 3 leading predictions dropped, got %v", p)
	}
}

func TestAlignEmptyResult(t *testing.T) {
	if _, _, err := Align(nil, []float64{1, 2}); !errors.Is(err, ErrEmptyAlignment) {
		t.Errorf("Expected ErrEmptyAlignment for empty actuals, got %v", err)
	}
	if _, _, err := Align([]float64{1, 2}, nil); !errors.Is(err, ErrEmptyAlignment) {
		t.Errorf("Expected ErrEmptyAlignment for empty predictions, got %v", err)
	}
	if _, _, err := Align(nil, nil); !errors.Is(err, ErrEmptyAlignment) {
		t.Errorf("Expected ErrEmptyAlignment for empty input, got %v", err)
	}
}

package timeseries

import (
	"math"
	"testing"
	"time"
)

func TestNewSyntheticDates(t *testing.T) {
	s := New([]float64{1, 2, 3})

	if s.Len() != 3 {
		t.Fatalf("Expected length 3, got %d", s.Len())
	}
	if !s.Dates[1].Equal(s.Dates[0].AddDate(0, 0, 1)) {
		t.Errorf("Expected consecutive daily dates, got %v", s.Dates)
	}
}

func TestNewWithDatesNormalizes(t *testing.T) {
	d := time.Date(2024, 3, 5, 17, 30, 0, 0, time.Local)
	s := NewWithDates([]time.Time{d}, []float64{10}, "Local Route")

	want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	if !s.Dates[0].Equal(want) {
		t.Errorf("Expected normalized date %v, got %v", want, s.Dates[0])
	}
	if s.Name != "Local Route" {
		t.Errorf("Expected name to be kept, got %q", s.Name)
	}
}

func TestSlice(t *testing.T) {
	s := New([]float64{10, 20, 30, 40, 50})

	sub := s.Slice(1, 4)
	if sub.Len() != 3 {
		t.Fatalf("Expected length 3, got %d", sub.Len())
	}
	if sub.Values[0] != 20 || sub.Values[2] != 40 {
		t.Errorf("Unexpected values: %v", sub.Values)
	}
	if !sub.Dates[0].Equal(s.Dates[1]) {
		t.Errorf("Expected dates to follow values in slice")
	}

	// Clipped bounds
	all := s.Slice(-3, 100)
	if all.Len() != 5 {
		t.Errorf("Expected clipped slice of length 5, got %d", all.Len())
	}

	// Inverted range
	empty := s.Slice(4, 2)
	if empty.Len() != 0 {
		t.Errorf("Expected empty slice, got length %d", empty.Len())
	}

	// Mutating the slice must not touch the original
	sub.Values[0] = -1
	if s.Values[1] != 20 {
		t.Errorf("Slice shares backing array with original")
	}
}

func TestDiff(t *testing.T) {
	s := New([]float64{10, 12, 15, 14})

	diff := s.Diff()
	expected := []float64{2, 3, -1}
	if diff.Len() != len(expected) {
		t.Fatalf("Expected length %d, got %d", len(expected), diff.Len())
	}
	for i, v := range expected {
		if diff.Values[i] != v {
			t.Errorf("Diff at %d: expected %f, got %f", i, v, diff.Values[i])
		}
	}
}

func TestSeasonalDiff(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})

	diff := s.SeasonalDiff(7)
	if diff.Len() != 3 {
		t.Fatalf("Expected length 3, got %d", diff.Len())
	}
	for i, v := range diff.Values {
		if v != 7 {
			t.Errorf("Seasonal diff at %d: expected 7, got %f", i, v)
		}
	}

	// Period longer than series
	empty := s.SeasonalDiff(30)
	if empty.Len() != 0 {
		t.Errorf("Expected empty series, got length %d", empty.Len())
	}
}

func TestDescriptiveStats(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	if got := s.Mean(); got != 5 {
		t.Errorf("Mean: expected 5, got %f", got)
	}
	if got := s.Min(); got != 2 {
		t.Errorf("Min: expected 2, got %f", got)
	}
	if got := s.Max(); got != 9 {
		t.Errorf("Max: expected 9, got %f", got)
	}
	if got := s.Median(); got != 4.5 {
		t.Errorf("Median: expected 4.5, got %f", got)
	}

	// Sample std of this classic sequence is sqrt(32/7)
	want := math.Sqrt(32.0 / 7.0)
	if got := s.Std(); math.Abs(got-want) > 1e-12 {
		t.Errorf("Std: expected %f, got %f", want, got)
	}
}

func TestQuantile(t *testing.T) {
	s := New([]float64{1, 2, 3, 4})

	if got := s.Quantile(0); got != 1 {
		t.Errorf("Q0: expected 1, got %f", got)
	}
	if got := s.Quantile(1); got != 4 {
		t.Errorf("Q1: expected 4, got %f", got)
	}
	if got := s.Quantile(0.25); got != 1.75 {
		t.Errorf("Q0.25: expected 1.75, got %f", got)
	}
	if got := s.Quantile(0.5); got != 2.5 {
		t.Errorf("Q0.5: expected 2.5, got %f", got)
	}
}

func TestEmptySeriesStats(t *testing.T) {
	s := &Series{}

	if !math.IsNaN(s.Min()) || !math.IsNaN(s.Max()) || !math.IsNaN(s.Median()) {
		t.Errorf("Expected NaN stats for empty series")
	}
	if s.Mean() != 0 || s.Std() != 0 {
		t.Errorf("Expected zero mean/std for empty series")
	}
}

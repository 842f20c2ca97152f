// Package timeseries provides the ridership dataset and date-indexed series types.
package timeseries

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Series is a date-indexed sequence of observations for a single route.
// Dates and Values always have the same length, dates are calendar days
// normalized to midnight UTC, and a Series derived from a Dataset contains
// no missing values.
type Series struct {
	Dates  []time.Time
	Values []float64
	Name   string
}

// New creates a series with synthetic consecutive daily dates. Useful for
// tests and for data without an explicit date column.
func New(values []float64) *Series {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	dates := make([]time.Time, len(values))
	for i := range dates {
		dates[i] = base.AddDate(0, 0, i)
	}
	return &Series{Dates: dates, Values: values}
}

// NewWithDates creates a series with explicit dates. Dates are normalized
// to midnight UTC.
func NewWithDates(dates []time.Time, values []float64, name string) *Series {
	normalized := make([]time.Time, len(dates))
	for i, d := range dates {
		normalized[i] = Day(d)
	}
	return &Series{Dates: normalized, Values: values, Name: name}
}

// Day truncates a timestamp to its calendar day in UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.Values)
}

// FirstDate returns the date of the first observation.
func (s *Series) FirstDate() time.Time {
	return s.Dates[0]
}

// LastDate returns the date of the last observation.
func (s *Series) LastDate() time.Time {
	return s.Dates[len(s.Dates)-1]
}

// Slice returns a copy of the series from start to end (exclusive).
// Out-of-range bounds are clipped; an inverted range yields an empty series.
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Name: s.Name}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	dates := make([]time.Time, end-start)
	copy(dates, s.Dates[start:end])

	return &Series{Dates: dates, Values: values, Name: s.Name}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	return s.Slice(0, s.Len())
}

// Diff returns the first difference of the series.
func (s *Series) Diff() *Series {
	return s.lagDiff(1)
}

// SeasonalDiff returns the seasonal difference with period m.
func (s *Series) SeasonalDiff(m int) *Series {
	return s.lagDiff(m)
}

func (s *Series) lagDiff(k int) *Series {
	if k <= 0 || len(s.Values) <= k {
		return &Series{Name: s.Name}
	}

	values := make([]float64, len(s.Values)-k)
	dates := make([]time.Time, len(values))
	for i := k; i < len(s.Values); i++ {
		values[i-k] = s.Values[i] - s.Values[i-k]
		dates[i-k] = s.Dates[i]
	}

	return &Series{Dates: dates, Values: values, Name: s.Name}
}

// Mean returns the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return stat.Mean(s.Values, nil)
}

// Std returns the sample standard deviation of the series.
func (s *Series) Std() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	return stat.StdDev(s.Values, nil)
}

// Min returns the smallest value, or NaN for an empty series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	min := s.Values[0]
	for _, v := range s.Values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest value, or NaN for an empty series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	max := s.Values[0]
	for _, v := range s.Values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Median returns the median value, or NaN for an empty series.
func (s *Series) Median() float64 {
	return s.Quantile(0.5)
}

// Quantile returns the p-quantile (0 <= p <= 1) of the series using
// linear interpolation, or NaN for an empty series.
func (s *Series) Quantile(p float64) float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return quantileSorted(sorted, p)
}

// quantileSorted interpolates between order statistics, matching the
// linear definition used by the source reports.
func quantileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

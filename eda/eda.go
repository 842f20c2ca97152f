// Package eda produces tabular exploratory reports for the ridership dataset.
//
// The reports cover the numeric side of the exploratory analysis: per-route
// descriptive statistics, pairwise correlations, weekday/weekend comparison
// and monthly totals. Everything is written as CSV under the output
// directory; chart rendering is out of scope.
package eda

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"

	"github.com/go-kul-anand/Kovai-co-timeseries/timeseries"
)

const (
	summaryStatsFile   = "summary_statistics.csv"
	correlationFile    = "correlation_matrix.csv"
	weekdayWeekendFile = "weekday_weekend.csv"
	monthlyTotalsFile  = "monthly_totals.csv"
)

type summaryStatRow struct {
	Route  string  `csv:"Route"`
	Count  int     `csv:"Count"`
	Mean   float64 `csv:"Mean"`
	Std    float64 `csv:"Std"`
	Min    float64 `csv:"Min"`
	P25    float64 `csv:"25%"`
	Median float64 `csv:"50%"`
	P75    float64 `csv:"75%"`
	Max    float64 `csv:"Max"`
}

type correlationRow struct {
	Route       string  `csv:"Route"`
	Other       string  `csv:"Other"`
	Correlation float64 `csv:"Correlation"`
}

type weekdayWeekendRow struct {
	Route         string  `csv:"Route"`
	WeekdayMean   float64 `csv:"Weekday Mean"`
	WeekdayMedian float64 `csv:"Weekday Median"`
	WeekendMean   float64 `csv:"Weekend Mean"`
	WeekendMedian float64 `csv:"Weekend Median"`
}

type monthlyTotalRow struct {
	Month string  `csv:"Month"`
	Route string  `csv:"Route"`
	Total float64 `csv:"Total"`
}

// Run computes all reports for the configured routes and writes them under
// outDir. Routes absent from the dataset are logged and skipped.
func Run(dataset *timeseries.Dataset, routes []string, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("eda: create %s: %w", outDir, err)
	}

	var present []string
	for _, route := range routes {
		if !dataset.HasColumn(route) {
			log.Warn().Str("route", route).Msg("Route column not found in dataset, skipping")
			continue
		}
		present = append(present, route)
	}

	reports := []struct {
		name  string
		write func(*timeseries.Dataset, []string, string) error
	}{
		{summaryStatsFile, writeSummaryStats},
		{correlationFile, writeCorrelations},
		{weekdayWeekendFile, writeWeekdayWeekend},
		{monthlyTotalsFile, writeMonthlyTotals},
	}
	for _, report := range reports {
		if err := report.write(dataset, present, outDir); err != nil {
			return err
		}
		log.Info().Str("path", filepath.Join(outDir, report.name)).Msg("Saved EDA report")
	}
	return nil
}

// writeSummaryStats is the describe() table: count, mean, std and the
// five-number summary per route.
func writeSummaryStats(dataset *timeseries.Dataset, routes []string, outDir string) error {
	rows := make([]summaryStatRow, 0, len(routes))
	for _, route := range routes {
		s, _ := dataset.Column(route)
		rows = append(rows, summaryStatRow{
			Route:  route,
			Count:  s.Len(),
			Mean:   s.Mean(),
			Std:    s.Std(),
			Min:    s.Min(),
			P25:    s.Quantile(0.25),
			Median: s.Median(),
			P75:    s.Quantile(0.75),
			Max:    s.Max(),
		})
	}
	return writeCSV(filepath.Join(outDir, summaryStatsFile), &rows)
}

// writeCorrelations emits the pairwise Pearson correlation in long form,
// computed over rows where both routes have observations.
func writeCorrelations(dataset *timeseries.Dataset, routes []string, outDir string) error {
	series := make(map[string]map[time.Time]float64, len(routes))
	for _, route := range routes {
		s, _ := dataset.Column(route)
		byDate := make(map[time.Time]float64, s.Len())
		for i, d := range s.Dates {
			byDate[d] = s.Values[i]
		}
		series[route] = byDate
	}

	var rows []correlationRow
	for _, a := range routes {
		for _, b := range routes {
			rows = append(rows, correlationRow{
				Route:       a,
				Other:       b,
				Correlation: pairwiseCorrelation(series[a], series[b]),
			})
		}
	}
	return writeCSV(filepath.Join(outDir, correlationFile), &rows)
}

func pairwiseCorrelation(a, b map[time.Time]float64) float64 {
	var x, y []float64
	for d, va := range a {
		if vb, ok := b[d]; ok {
			x = append(x, va)
			y = append(y, vb)
		}
	}
	if len(x) < 2 {
		return math.NaN()
	}
	return stat.Correlation(x, y, nil)
}

// writeWeekdayWeekend compares each route's weekday and weekend ridership;
// Saturday and Sunday count as the weekend.
func writeWeekdayWeekend(dataset *timeseries.Dataset, routes []string, outDir string) error {
	rows := make([]weekdayWeekendRow, 0, len(routes))
	for _, route := range routes {
		s, _ := dataset.Column(route)

		var weekday, weekend []float64
		for i, d := range s.Dates {
			if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
				weekend = append(weekend, s.Values[i])
			} else {
				weekday = append(weekday, s.Values[i])
			}
		}

		rows = append(rows, weekdayWeekendRow{
			Route:         route,
			WeekdayMean:   meanOf(weekday),
			WeekdayMedian: medianOf(weekday),
			WeekendMean:   meanOf(weekend),
			WeekendMedian: medianOf(weekend),
		})
	}
	return writeCSV(filepath.Join(outDir, weekdayWeekendFile), &rows)
}

// writeMonthlyTotals sums each route per calendar month, the aggregation
// behind the source's trend reports.
func writeMonthlyTotals(dataset *timeseries.Dataset, routes []string, outDir string) error {
	var rows []monthlyTotalRow
	for _, route := range routes {
		s, _ := dataset.Column(route)

		totals := make(map[string]float64)
		var order []string
		for i, d := range s.Dates {
			month := d.Format("2006-01")
			if _, seen := totals[month]; !seen {
				order = append(order, month)
			}
			totals[month] += s.Values[i]
		}

		for _, month := range order {
			rows = append(rows, monthlyTotalRow{Month: month, Route: route, Total: totals[month]})
		}
	}
	return writeCSV(filepath.Join(outDir, monthlyTotalsFile), &rows)
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return stat.Mean(values, nil)
}

func medianOf(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	s := &timeseries.Series{Values: values}
	return s.Median()
}

func writeCSV(path string, rows interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("eda: create %s: %w", path, err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(rows, file); err != nil {
		return fmt.Errorf("eda: write %s: %w", path, err)
	}
	return nil
}

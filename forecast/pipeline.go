package forecast

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"

	"github.com/go-kul-anand/Kovai-co-timeseries/timeseries"
)

const (
	routeForecastFile = "next_7_days_forecast.csv"
	summaryFile       = "forecast_summary.csv"
	dateLayout        = "2006-01-02"
)

type forecastRow struct {
	Date     string  `csv:"Date"`
	Forecast float64 `csv:"Forecast"`
}

type summaryRow struct {
	Route string  `csv:"Route"`
	MAE   float64 `csv:"MAE"`
	RMSE  float64 `csv:"RMSE"`
	MAPE  float64 `csv:"MAPE"`
}

// RouteResult is the outcome for one successfully processed route.
type RouteResult struct {
	Route       string
	Metrics     ErrorMetrics
	Future      []float64
	FutureDates []time.Time
}

// RunResult summarizes a pipeline run.
type RunResult struct {
	Processed   []RouteResult
	Skipped     []string         // configured routes absent from the dataset
	Failed      map[string]error // routes that errored, excluded from the summary
	SummaryPath string
}

// Pipeline orchestrates the per-route forecasting run. Routes are
// processed one at a time in configured order; a failing route is logged
// and excluded from the summary without stopping the run.
type Pipeline struct {
	cfg    Config
	engine *Engine
}

// NewPipeline creates a pipeline for the given configuration.
func NewPipeline(cfg Config) *Pipeline {
	if len(cfg.Routes) == 0 {
		cfg.Routes = append([]string(nil), DefaultRoutes...)
	}
	return &Pipeline{
		cfg:    cfg,
		engine: NewEngine(cfg.SeasonalPeriod, cfg.Horizon),
	}
}

// Run forecasts every configured route present in the dataset and writes
// the per-route forecast files plus the aggregate summary.
func (p *Pipeline) Run(dataset *timeseries.Dataset) (*RunResult, error) {
	result := &RunResult{Failed: make(map[string]error)}

	log.Info().Int("routes", len(p.cfg.Routes)).Msg("Running SARIMA forecasting")

	for _, route := range p.cfg.Routes {
		if !dataset.HasColumn(route) {
			log.Warn().Str("route", route).Msg("Route column not found in dataset, skipping")
			result.Skipped = append(result.Skipped, route)
			continue
		}

		routeResult, err := p.forecastRoute(dataset, route)
		if err != nil {
			log.Error().Err(err).Str("route", route).Msg("Route failed")
			result.Failed[route] = err
			continue
		}

		log.Info().
			Str("route", route).
			Float64("mae", routeResult.Metrics.MAE).
			Float64("rmse", routeResult.Metrics.RMSE).
			Float64("mape", routeResult.Metrics.MAPE).
			Msg("Route forecast complete")

		result.Processed = append(result.Processed, routeResult)
	}

	summaryPath, err := p.writeSummary(result.Processed)
	if err != nil {
		return nil, err
	}
	result.SummaryPath = summaryPath

	log.Info().Str("path", summaryPath).Msg("Forecast summary saved")
	if len(result.Skipped) > 0 {
		log.Warn().Strs("routes", result.Skipped).Msg("Skipped routes")
	}
	if len(result.Failed) > 0 {
		failed := make([]string, 0, len(result.Failed))
		for route := range result.Failed {
			failed = append(failed, route)
		}
		log.Warn().Strs("routes", failed).Msg("Failed routes")
	}

	return result, nil
}

// forecastRoute runs split, fit, alignment, evaluation and the per-route
// forecast file write for a single route.
func (p *Pipeline) forecastRoute(dataset *timeseries.Dataset, route string) (RouteResult, error) {
	series, _ := dataset.Column(route)
	if series.Len() < 2 {
		return RouteResult{}, fmt.Errorf("%w: %d in route history", ErrInsufficientData, series.Len())
	}

	split := ChronologicalSplit(series)
	if split.Test.Len() == 0 {
		return RouteResult{}, fmt.Errorf("%w: empty test window", ErrInsufficientData)
	}

	prediction, err := p.engine.Forecast(split.Train, split.Test)
	if err != nil {
		return RouteResult{}, err
	}

	actual, predicted, err := Align(split.Test.Values, prediction.TestPredictions)
	if err != nil {
		return RouteResult{}, err
	}

	metrics, err := Evaluate(actual, predicted)
	if err != nil {
		return RouteResult{}, err
	}

	// Future forecast dates start the day after the dataset's last
	// observed date, regardless of gaps in this route's own history.
	dates := make([]time.Time, len(prediction.Future))
	for i := range dates {
		dates[i] = dataset.LastDate().AddDate(0, 0, i+1)
	}

	if err := p.writeRouteForecast(route, dates, prediction.Future); err != nil {
		return RouteResult{}, err
	}

	return RouteResult{
		Route:       route,
		Metrics:     metrics,
		Future:      prediction.Future,
		FutureDates: dates,
	}, nil
}

func (p *Pipeline) writeRouteForecast(route string, dates []time.Time, future []float64) error {
	dir := filepath.Join(p.cfg.Output, route)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("forecast: create %s: %w", dir, err)
	}

	rows := make([]forecastRow, len(future))
	for i := range future {
		rows[i] = forecastRow{
			Date:     dates[i].Format(dateLayout),
			Forecast: future[i],
		}
	}

	path := filepath.Join(dir, routeForecastFile)
	if err := writeCSV(path, &rows); err != nil {
		return err
	}

	log.Info().Str("route", route).Str("path", path).Msg("Saved 7-day forecast")
	return nil
}

func (p *Pipeline) writeSummary(processed []RouteResult) (string, error) {
	if err := os.MkdirAll(p.cfg.Output, 0o755); err != nil {
		return "", fmt.Errorf("forecast: create %s: %w", p.cfg.Output, err)
	}

	rows := make([]summaryRow, len(processed))
	for i, r := range processed {
		rows[i] = summaryRow{
			Route: r.Route,
			MAE:   r.Metrics.MAE,
			RMSE:  r.Metrics.RMSE,
			MAPE:  r.Metrics.MAPE,
		}
	}

	path := filepath.Join(p.cfg.Output, summaryFile)
	if err := writeCSV(path, &rows); err != nil {
		return "", err
	}
	return path, nil
}

// writeCSV marshals rows to a whole-file CSV; each run overwrites its
// outputs, which keeps reruns idempotent.
func writeCSV(path string, rows interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("forecast: create %s: %w", path, err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(rows, file); err != nil {
		return fmt.Errorf("forecast: write %s: %w", path, err)
	}
	return nil
}

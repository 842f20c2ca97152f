// Package ridership provides SARIMA-based forecasting for daily public
// transit passenger counts.
//
// The module turns a single ridership CSV (a Date column plus one numeric
// column per service type) into per-route 7-day forecasts with backtested
// error metrics, along with tabular exploratory reports.
//
// # Pipeline
//
// For every configured route the pipeline runs a fixed sequence:
//
//  1. Load the dataset, parse day-first dates, sort ascending.
//  2. Split the route series chronologically 80/20.
//  3. Fit SARIMA(1,1,1)(1,0,1)[7] on the training prefix.
//  4. Predict over the test date range and 7 future days.
//  5. Align predictions with actuals, compute MAE/RMSE/MAPE.
//  6. Write reports/forecast/<route>/next_7_days_forecast.csv and an
//     aggregate reports/forecast/forecast_summary.csv.
//
// A route that is missing from the dataset, or whose history is too short
// to fit the seasonal model, is logged and skipped; the run continues with
// the remaining routes.
//
// # Packages
//
//   - timeseries: dataset loading and date-indexed series
//   - stats: autocorrelation functions used by the estimator
//   - sarima: the seasonal ARIMA model
//   - forecast: split, engine, alignment, metrics, orchestration
//   - eda: descriptive statistics reports
//
// # Usage
//
// The ridership binary exposes the pipeline as CLI commands:
//
//	ridership forecast run --dataset data/dataset.csv
//	ridership eda run --dataset data/dataset.csv
package ridership

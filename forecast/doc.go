// Package forecast implements the per-route ridership forecasting pipeline.
//
// The pipeline loads the shared dataset once, then for each configured
// route splits its history chronologically 80/20, fits the fixed-order
// seasonal model on the training prefix, predicts across the test date
// range plus a 7-day future horizon, reconciles prediction/observation
// length mismatches, and scores the backtest with MAE, RMSE and MAPE.
//
// Per-route failures are contained: a route that cannot be forecast is
// logged and left out of the summary while the remaining routes proceed.
// Only a dataset load failure aborts the run, since no route can proceed
// without data.
//
// Outputs are flat CSV files under the configured output directory:
// one <route>/next_7_days_forecast.csv per route and one aggregate
// forecast_summary.csv.
package forecast

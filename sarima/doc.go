// Package sarima implements a seasonal ARIMA model for daily ridership series.
//
// A SARIMA(p,d,q)(P,D,Q)[m] model combines non-seasonal AR(p), differencing
// of order d and MA(q) terms with seasonal counterparts at period m. The
// forecasting pipeline uses a single fixed configuration,
// SARIMA(1,1,1)(1,0,1)[7], chosen to bound fitting time per route; this
// package nonetheless accepts arbitrary small orders.
//
// # Estimation
//
// Parameters are estimated by conditional sum of squares using gradient
// descent with momentum, seeded from the sample autocorrelations of the
// differenced series. The procedure is fully deterministic: fitting the
// same data twice yields identical coefficients and forecasts.
//
// # Constraints
//
// By default stationarity and invertibility are not enforced: coefficients
// are kept inside a numerically safe box during descent, and a model whose
// coefficients sit on that boundary is still returned. Setting
// Config.EnforceStationarity or Config.EnforceInvertibility turns the
// boundary into a fit error instead.
//
// # Usage
//
//	model := sarima.New(1, 1, 1, 1, 0, 1, 7)
//	if err := model.Fit(train); err != nil {
//	    return err
//	}
//	forecasts, err := model.Predict(10)
package sarima

package sarima

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-kul-anand/Kovai-co-timeseries/stats"
)

// coeffBound is the box the optimizer keeps coefficients inside. It sits
// at the edge of the stationarity/invertibility region for first-order
// terms; hitting it only fails the fit when the matching constraint is
// enforced.
const coeffBound = 0.99

// Order holds the model order (p,d,q)(P,D,Q)[m].
type Order struct {
	P int // non-seasonal AR order
	D int // non-seasonal differencing order
	Q int // non-seasonal MA order

	SP int // seasonal AR order
	SD int // seasonal differencing order
	SQ int // seasonal MA order
	M  int // seasonal period
}

// Config controls fit-time constraint checking. Both default to false,
// the relaxed mode the pipeline relies on: a model is never rejected
// merely because a coefficient violates a constraint.
type Config struct {
	EnforceStationarity  bool
	EnforceInvertibility bool
}

// Model is a seasonal ARIMA model.
type Model struct {
	Order  Order
	Config Config

	ARCoeffs  []float64
	MACoeffs  []float64
	SARCoeffs []float64
	SMACoeffs []float64
	Intercept float64
	Variance  float64

	fitted    bool
	original  []float64 // series as fitted, undifferenced
	diffed    []float64 // after d and D rounds of differencing
	residuals []float64 // residuals on the differenced scale
}

// New creates a SARIMA model with the given order.
func New(p, d, q, sp, sd, sq, m int) *Model {
	return &Model{
		Order: Order{P: p, D: d, Q: q, SP: sp, SD: sd, SQ: sq, M: m},

		ARCoeffs:  make([]float64, p),
		MACoeffs:  make([]float64, q),
		SARCoeffs: make([]float64, sp),
		SMACoeffs: make([]float64, sq),
	}
}

// Fit estimates the model parameters from the given series.
func (m *Model) Fit(values []float64) error {
	o := m.Order
	minLen := o.D + o.SD*o.M + 2
	if len(values) < minLen {
		return fmt.Errorf("sarima: series of %d observations is too short for order (%d,%d,%d)(%d,%d,%d)[%d]",
			len(values), o.P, o.D, o.Q, o.SP, o.SD, o.SQ, o.M)
	}

	m.original = append([]float64(nil), values...)

	diffed := m.original
	for i := 0; i < o.D; i++ {
		diffed = difference(diffed, 1)
	}
	for i := 0; i < o.SD; i++ {
		diffed = difference(diffed, o.M)
	}
	if len(diffed) < 2 {
		return errors.New("sarima: differencing left too few observations")
	}
	m.diffed = diffed

	m.seedCoefficients()
	m.descend()

	if err := m.checkConstraints(); err != nil {
		return err
	}

	m.fitted = true
	return nil
}

// seedCoefficients initializes the coefficient vectors before descent.
// AR terms start at half the matching autocorrelation, MA terms at a
// small positive constant.
func (m *Model) seedCoefficients() {
	o := m.Order

	mean := 0.0
	for _, v := range m.diffed {
		mean += v
	}
	m.Intercept = mean / float64(len(m.diffed))

	if o.P > 0 {
		if acf := stats.ACF(m.diffed, o.P); acf != nil {
			for i := 0; i < o.P && i+1 < len(acf); i++ {
				m.ARCoeffs[i] = acf[i+1] * 0.5
			}
		}
	}
	if o.SP > 0 {
		if acf := stats.ACF(m.diffed, o.SP*o.M); acf != nil {
			for i := 0; i < o.SP; i++ {
				if lag := (i + 1) * o.M; lag < len(acf) {
					m.SARCoeffs[i] = acf[lag] * 0.5
				}
			}
		}
	}
	for i := range m.MACoeffs {
		m.MACoeffs[i] = 0.1
	}
	for i := range m.SMACoeffs {
		m.SMACoeffs[i] = 0.1
	}
}

// termAt evaluates the one-step-ahead model equation at index t given the
// history y and residual history resid. Residuals beyond the fitted range
// must be zero-filled by the caller.
func (m *Model) termAt(t int, y, resid []float64) float64 {
	o := m.Order
	pred := m.Intercept

	for i := 0; i < o.P && t-i-1 >= 0; i++ {
		pred += m.ARCoeffs[i] * (y[t-i-1] - m.Intercept)
	}
	for i := 0; i < o.SP; i++ {
		if lag := (i + 1) * o.M; t-lag >= 0 {
			pred += m.SARCoeffs[i] * (y[t-lag] - m.Intercept)
		}
	}
	for i := 0; i < o.Q && t-i-1 >= 0; i++ {
		pred += m.MACoeffs[i] * resid[t-i-1]
	}
	for i := 0; i < o.SQ; i++ {
		if lag := (i + 1) * o.M; t-lag >= 0 {
			pred += m.SMACoeffs[i] * resid[t-lag]
		}
	}
	return pred
}

// descend minimizes the conditional sum of squares with momentum gradient
// descent. The iteration count, tolerances and learning schedule are fixed,
// so the result is deterministic for a given input.
func (m *Model) descend() {
	o := m.Order
	y := m.diffed
	n := len(y)

	const (
		maxIter      = 200
		tolerance    = 1e-8
		momentum     = 0.9
		decay        = 0.99
		maxNoImprove = 20
	)
	learningRate := 0.005

	arVel := make([]float64, o.P)
	maVel := make([]float64, o.Q)
	sarVel := make([]float64, o.SP)
	smaVel := make([]float64, o.SQ)

	// Skip the warm-up region unless the series is too short to afford it.
	startIdx := max(max(o.P, o.Q), max(o.SP*o.M, o.SQ*o.M))
	if startIdx >= n-10 {
		startIdx = 0
	}

	bestSSE := math.Inf(1)
	bestAR := make([]float64, o.P)
	bestMA := make([]float64, o.Q)
	bestSAR := make([]float64, o.SP)
	bestSMA := make([]float64, o.SQ)
	noImprove := 0

	for iter := 0; iter < maxIter; iter++ {
		resid := make([]float64, n)
		sse := 0.0
		for t := startIdx; t < n; t++ {
			resid[t] = y[t] - m.termAt(t, y, resid)
			sse += resid[t] * resid[t]
		}

		if sse < bestSSE {
			bestSSE = sse
			copy(bestAR, m.ARCoeffs)
			copy(bestMA, m.MACoeffs)
			copy(bestSAR, m.SARCoeffs)
			copy(bestSMA, m.SMACoeffs)
			noImprove = 0
		} else {
			noImprove++
			if noImprove > maxNoImprove {
				break
			}
		}

		arGrad := make([]float64, o.P)
		maGrad := make([]float64, o.Q)
		sarGrad := make([]float64, o.SP)
		smaGrad := make([]float64, o.SQ)

		for t := startIdx; t < n; t++ {
			for i := 0; i < o.P && t-i-1 >= 0; i++ {
				arGrad[i] -= 2 * resid[t] * (y[t-i-1] - m.Intercept)
			}
			for i := 0; i < o.SP; i++ {
				if lag := (i + 1) * o.M; t-lag >= 0 {
					sarGrad[i] -= 2 * resid[t] * (y[t-lag] - m.Intercept)
				}
			}
			for i := 0; i < o.Q && t-i-1 >= 0; i++ {
				maGrad[i] -= 2 * resid[t] * resid[t-i-1]
			}
			for i := 0; i < o.SQ; i++ {
				if lag := (i + 1) * o.M; t-lag >= 0 {
					smaGrad[i] -= 2 * resid[t] * resid[t-lag]
				}
			}
		}

		step := func(coeffs, vel, grad []float64) {
			for i := range coeffs {
				vel[i] = momentum*vel[i] + learningRate*grad[i]/float64(n)
				coeffs[i] = clamp(coeffs[i]-vel[i], -coeffBound, coeffBound)
			}
		}
		step(m.ARCoeffs, arVel, arGrad)
		step(m.SARCoeffs, sarVel, sarGrad)
		step(m.MACoeffs, maVel, maGrad)
		step(m.SMACoeffs, smaVel, smaGrad)

		learningRate *= decay

		if iter > 0 && math.Abs(sse-bestSSE) < tolerance {
			break
		}
	}

	copy(m.ARCoeffs, bestAR)
	copy(m.MACoeffs, bestMA)
	copy(m.SARCoeffs, bestSAR)
	copy(m.SMACoeffs, bestSMA)

	// Final residual pass with the best coefficients.
	m.residuals = make([]float64, n)
	for t := 0; t < n; t++ {
		m.residuals[t] = y[t] - m.termAt(t, y, m.residuals)
	}

	sse := 0.0
	count := 0
	for t := startIdx; t < n; t++ {
		sse += m.residuals[t] * m.residuals[t]
		count++
	}
	numParams := o.P + o.Q + o.SP + o.SQ + 1
	if count > numParams {
		m.Variance = sse / float64(count-numParams)
	} else {
		m.Variance = sse / float64(count)
	}
}

// checkConstraints rejects boundary solutions when the corresponding
// constraint is enforced. In relaxed mode it never fails.
func (m *Model) checkConstraints() error {
	atBound := func(coeffs []float64) bool {
		for _, c := range coeffs {
			if math.Abs(c) >= coeffBound {
				return true
			}
		}
		return false
	}

	if m.Config.EnforceStationarity && (atBound(m.ARCoeffs) || atBound(m.SARCoeffs)) {
		return errors.New("sarima: AR coefficients violate stationarity")
	}
	if m.Config.EnforceInvertibility && (atBound(m.MACoeffs) || atBound(m.SMACoeffs)) {
		return errors.New("sarima: MA coefficients violate invertibility")
	}
	return nil
}

// Predict forecasts the given number of steps beyond the fitted series,
// on the original (undifferenced) scale.
func (m *Model) Predict(steps int) ([]float64, error) {
	if !m.fitted {
		return nil, errors.New("sarima: model must be fitted before prediction")
	}
	if steps < 1 {
		return nil, errors.New("sarima: steps must be at least 1")
	}

	n := len(m.diffed)

	extY := make([]float64, n+steps)
	copy(extY, m.diffed)

	// Future residuals are zero in expectation.
	extResid := make([]float64, n+steps)
	copy(extResid, m.residuals)

	for h := 0; h < steps; h++ {
		t := n + h
		extY[t] = m.termAt(t, extY, extResid)
	}

	forecasts := make([]float64, steps)
	copy(forecasts, extY[n:])

	return m.integrate(forecasts), nil
}

// Residuals returns the fit residuals on the differenced scale.
func (m *Model) Residuals() []float64 {
	if !m.fitted {
		return nil
	}
	return append([]float64(nil), m.residuals...)
}

// integrate undoes differencing to bring forecasts back to the original
// scale. Fit differences non-seasonally first, then seasonally, so
// integration reverses that: seasonal first, then non-seasonal cumsum.
func (m *Model) integrate(forecasts []float64) []float64 {
	o := m.Order

	result := append([]float64(nil), forecasts...)

	// The non-seasonally differenced series, needed as the base level for
	// seasonal integration.
	base := m.original
	for i := 0; i < o.D; i++ {
		if len(base) <= 1 {
			break
		}
		base = difference(base, 1)
	}

	if o.SD > 0 && o.M > 0 {
		nBase := len(base)
		for i := 0; i < o.SD; i++ {
			for j := range result {
				if j < o.M {
					if idx := nBase - o.M + j; idx >= 0 && idx < nBase {
						result[j] += base[idx]
					}
				} else {
					result[j] += result[j-o.M]
				}
			}
		}
	}

	for i := 0; i < o.D; i++ {
		last := m.original[len(m.original)-1]
		for j := range result {
			if j == 0 {
				result[j] += last
			} else {
				result[j] += result[j-1]
			}
		}
	}

	return result
}

// difference returns the lag-k difference of values.
func difference(values []float64, k int) []float64 {
	if k <= 0 || len(values) <= k {
		return nil
	}
	out := make([]float64, len(values)-k)
	for i := k; i < len(values); i++ {
		out[i-k] = values[i] - values[i-k]
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

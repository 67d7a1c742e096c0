package adf

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// maxConditionNumber is the conditioning ceiling for a usable design
// matrix. Beyond it the trial is treated as rank-deficient and skipped.
const maxConditionNumber = 1e12

// regression holds the OLS output for one lag trial.
type regression struct {
	coeffs  []float64
	resid   []float64
	rss     float64
	se0     float64 // standard error of the lagged-level coefficient
	nObs    int
	nParams int
}

// solveOLS fits y = X*beta by QR least squares and derives the residual
// sum of squares and the standard error of the first column's coefficient
// from sigma^2 * (X'X)^-1. Rank deficiency beyond tolerance is reported as
// ErrSingularMatrix so the lag search can skip the trial.
func solveOLS(x *mat.Dense, y *mat.VecDense) (*regression, error) {
	rows, cols := x.Dims()

	var qr mat.QR
	qr.Factorize(x)
	if cond := qr.Cond(); cond > maxConditionNumber || math.IsNaN(cond) {
		return nil, fmt.Errorf("%w: condition number %.3g", ErrSingularMatrix, cond)
	}

	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, y); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularMatrix, err)
	}

	// Residuals and RSS.
	var fitted mat.VecDense
	fitted.MulVec(x, &beta)

	resid := make([]float64, rows)
	rss := 0.0
	for i := 0; i < rows; i++ {
		r := y.AtVec(i) - fitted.AtVec(i)
		resid[i] = r
		rss += r * r
	}
	if rss <= 0 || math.IsNaN(rss) {
		// A perfect or non-finite fit means the regressors span the
		// response exactly; no meaningful t-statistic exists.
		return nil, fmt.Errorf("%w: degenerate residual sum of squares %g", ErrSingularMatrix, rss)
	}

	// Coefficient covariance diagonal via (X'X)^-1.
	var xtx, xtxInv mat.Dense
	xtx.Mul(x.T(), x)
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularMatrix, err)
	}

	sigma2 := rss / float64(rows-cols)
	se0 := math.Sqrt(sigma2 * xtxInv.At(0, 0))
	if se0 < 1e-12 || math.IsNaN(se0) || math.IsInf(se0, 0) {
		return nil, fmt.Errorf("%w: unusable standard error %g", ErrSingularMatrix, se0)
	}

	coeffs := make([]float64, cols)
	for i := 0; i < cols; i++ {
		coeffs[i] = beta.AtVec(i)
	}

	return &regression{
		coeffs:  coeffs,
		resid:   resid,
		rss:     rss,
		se0:     se0,
		nObs:    rows,
		nParams: cols,
	}, nil
}

// statistic returns the ADF t-statistic for the lagged-level coefficient.
func (r *regression) statistic() float64 {
	return r.coeffs[0] / r.se0
}

// aic returns n*ln(RSS/n) + 2k, the Akaike Information Criterion under
// Gaussian errors up to an additive constant.
func (r *regression) aic() float64 {
	n := float64(r.nObs)
	return n*math.Log(r.rss/n) + 2*float64(r.nParams)
}

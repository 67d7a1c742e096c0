package adf

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/meanrev/goadf/timeseries"
)

// buildDesign constructs the ADF regression for one lag-order trial.
//
// The response is the first difference Δy_t for t = lag+1 .. n-1. The
// regressor columns are, in order: the lagged level y_{t-1} (the
// coefficient under test), the lag most recent lagged differences
// Δy_{t-1} .. Δy_{t-lag}, and the deterministic terms implied by the
// ModelSpec. One observation is lost to differencing and lag more to the
// lag depth, so the matrix has n-lag-1 rows.
func buildDesign(level, diff []float64, lag int, spec ModelSpec) (*mat.Dense, *mat.VecDense, error) {
	n := len(level)
	rows := n - lag - 1
	cols := 1 + lag + spec.detCols()

	if rows <= cols+1 {
		return nil, nil, fmt.Errorf("%w: lag %d needs more than %d usable observations, have %d",
			timeseries.ErrInsufficientData, lag, cols+1, rows)
	}

	x := mat.NewDense(rows, cols, nil)
	y := mat.NewVecDense(rows, nil)

	for i := 0; i < rows; i++ {
		t := lag + 1 + i // time index of the response in level space

		y.SetVec(i, diff[t-1])
		x.Set(i, 0, level[t-1])
		for j := 1; j <= lag; j++ {
			x.Set(i, j, diff[t-1-j])
		}

		switch spec {
		case Constant:
			x.Set(i, 1+lag, 1)
		case ConstantAndTrend:
			x.Set(i, 1+lag, 1)
			x.Set(i, 2+lag, float64(t))
		}
	}

	return x, y, nil
}

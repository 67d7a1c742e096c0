package adf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSolveOLSRecoversCoefficients(t *testing.T) {
	// y = 3x + 5 plus a small alternating disturbance.
	n := 40
	x := mat.NewDense(n, 2, nil)
	y := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		xv := float64(i) / 4
		eps := 0.05
		if i%2 == 1 {
			eps = -0.05
		}
		x.Set(i, 0, xv)
		x.Set(i, 1, 1)
		y.SetVec(i, 3*xv+5+eps)
	}

	reg, err := solveOLS(x, y)
	require.NoError(t, err)

	assert.InDelta(t, 3.0, reg.coeffs[0], 0.01)
	assert.InDelta(t, 5.0, reg.coeffs[1], 0.05)
	assert.Equal(t, n, reg.nObs)
	assert.Equal(t, 2, reg.nParams)
	assert.Greater(t, reg.rss, 0.0)
	assert.Greater(t, reg.se0, 0.0)
	assert.Len(t, reg.resid, n)

	// RSS must equal the sum of squared residuals it reports.
	sum := 0.0
	for _, r := range reg.resid {
		sum += r * r
	}
	assert.InDelta(t, reg.rss, sum, 1e-10)
}

func TestSolveOLSSingular(t *testing.T) {
	// Two identical columns are rank deficient.
	n := 20
	x := mat.NewDense(n, 2, nil)
	y := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		v := float64(i + 1)
		x.Set(i, 0, v)
		x.Set(i, 1, v)
		y.SetVec(i, 2*v+math.Sin(float64(i)))
	}

	_, err := solveOLS(x, y)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSingularMatrix)
}

func TestSolveOLSPerfectFitRejected(t *testing.T) {
	// An exact linear relationship leaves zero residual variance; no
	// meaningful t-statistic exists, so the trial must be skipped.
	n := 15
	x := mat.NewDense(n, 2, nil)
	y := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		v := float64(i)
		x.Set(i, 0, v)
		x.Set(i, 1, 1)
		y.SetVec(i, 2*v+1)
	}

	_, err := solveOLS(x, y)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSingularMatrix)
}

func TestStatisticAndAIC(t *testing.T) {
	reg := &regression{
		coeffs:  []float64{-0.5, 0.1},
		se0:     0.25,
		rss:     10,
		nObs:    100,
		nParams: 2,
	}

	assert.InDelta(t, -2.0, reg.statistic(), 1e-12)

	want := 100*math.Log(10.0/100) + 2*2
	assert.InDelta(t, want, reg.aic(), 1e-12)
}

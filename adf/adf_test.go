package adf

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meanrev/goadf/timeseries"
)

// randomWalk simulates a pure unit-root process: the cumulative sum of
// independent standard normal steps.
func randomWalk(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, n)
	level := 0.0
	for i := range values {
		level += rng.NormFloat64()
		values[i] = level
	}
	return values
}

// ar1Series simulates the strongly mean-reverting process
// y_t = phi*y_{t-1} + e_t.
func ar1Series(n int, phi float64, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, n)
	level := 0.0
	for i := range values {
		level = phi*level + rng.NormFloat64()
		values[i] = level
	}
	return values
}

// oscillatingSeries reproduces the documented example: values alternating
// around 1.0 with slowly growing amplitude.
func oscillatingSeries(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		amp := 0.02 + 0.001*float64(i)
		if i%2 == 1 {
			amp = -amp
		}
		values[i] = 1.0 + amp + 0.002*math.Sin(float64(i)*1.7)
	}
	return values
}

func TestDeterminism(t *testing.T) {
	data := ar1Series(250, 0.5, 99)

	first, err := Test(context.Background(), data, Constant, nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		again, err := Test(context.Background(), data, Constant, nil)
		require.NoError(t, err)
		assert.Equal(t, first, again, "repeated call %d diverged", i)
	}
}

func TestRandomWalkIsNotStationary(t *testing.T) {
	// A unit-root process should fail to reject the null in the large
	// majority of trials; a handful of false rejections at the 5% level
	// is expected statistical behavior.
	trials := 20
	stationary := 0
	for seed := int64(1); seed <= int64(trials); seed++ {
		res, err := Test(context.Background(), randomWalk(300, seed), Constant, nil)
		require.NoError(t, err)
		if res.IsStationary {
			stationary++
		}
	}
	assert.LessOrEqual(t, stationary, 4,
		"random walks flagged stationary in %d/%d trials", stationary, trials)
}

func TestAR1IsStationary(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		res, err := Test(context.Background(), ar1Series(300, 0.3, seed), Constant, nil)
		require.NoError(t, err)

		assert.True(t, res.IsStationary, "seed %d statistic %f", seed, res.Statistic)
		assert.Less(t, res.PValue, 0.05, "seed %d", seed)
		assert.Negative(t, res.Statistic)
	}
}

func TestOscillatingSpreadExample(t *testing.T) {
	res, err := Test(context.Background(), oscillatingSeries(100), Constant, nil)
	require.NoError(t, err)

	assert.Negative(t, res.Statistic)
	assert.True(t, res.IsStationary)
	assert.GreaterOrEqual(t, res.Lags, 0)
	assert.LessOrEqual(t, res.Lags, defaultMaxLag(100))
}

func TestResultShape(t *testing.T) {
	res, err := Test(context.Background(), ar1Series(200, 0.4, 17), Constant, nil)
	require.NoError(t, err)

	assert.Equal(t, 200-res.Lags-1, res.NObs)
	assert.Contains(t, res.CriticalValues, "1%")
	assert.Contains(t, res.CriticalValues, "5%")
	assert.Contains(t, res.CriticalValues, "10%")
	assert.Less(t, res.CriticalValues["1%"], res.CriticalValues["5%"])
	assert.Less(t, res.CriticalValues["5%"], res.CriticalValues["10%"])
	assert.False(t, math.IsNaN(res.AIC))
	assert.GreaterOrEqual(t, res.PValue, 0.0)
	assert.LessOrEqual(t, res.PValue, 1.0)
}

func TestMaxLagOverride(t *testing.T) {
	data := ar1Series(300, 0.5, 5)

	cfg := DefaultConfig()
	cfg.MaxLag = 2

	res, err := Test(context.Background(), data, Constant, cfg)
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Lags, 2)
}

func TestParallelAndSequentialAgree(t *testing.T) {
	data := ar1Series(400, 0.6, 13)

	seq := DefaultConfig()
	seq.Parallel = false
	par := DefaultConfig()
	par.Parallel = true

	a, err := Test(context.Background(), data, ConstantAndTrend, seq)
	require.NoError(t, err)
	b, err := Test(context.Background(), data, ConstantAndTrend, par)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestModelSpecsProduceDistinctCriticalValues(t *testing.T) {
	data := ar1Series(250, 0.4, 31)

	resNone, err := Test(context.Background(), data, NoConstant, nil)
	require.NoError(t, err)
	resDrift, err := Test(context.Background(), data, Constant, nil)
	require.NoError(t, err)
	resTrend, err := Test(context.Background(), data, ConstantAndTrend, nil)
	require.NoError(t, err)

	// Deeper deterministic specifications shift the tau distribution left.
	assert.Less(t, resDrift.CriticalValues["5%"], resNone.CriticalValues["5%"])
	assert.Less(t, resTrend.CriticalValues["5%"], resDrift.CriticalValues["5%"])
}

func TestInsufficientData(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxLag = 5

	_, err := Test(context.Background(), []float64{1.0, 2.0, 3.0}, Constant, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, timeseries.ErrInsufficientData)
}

func TestNonFiniteDifferencing(t *testing.T) {
	// Finite inputs whose differences overflow.
	data := []float64{1e308, -1e308, 1e308, -1e308, 1e308, -1e308}

	_, err := Test(context.Background(), data, Constant, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, timeseries.ErrNonFinite)
}

func TestNonFiniteValuesAreCleaned(t *testing.T) {
	data := ar1Series(150, 0.3, 41)
	data[10] = math.NaN()
	data[77] = math.Inf(1)

	res, err := Test(context.Background(), data, Constant, nil)
	require.NoError(t, err)
	assert.Equal(t, 148-res.Lags-1, res.NObs)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Test(ctx, ar1Series(300, 0.5, 1), Constant, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTestStatistic(t *testing.T) {
	res, err := TestStatistic(-3.5, Constant)
	require.NoError(t, err)

	assert.True(t, res.IsStationary)
	assert.False(t, res.PValueClamped)
	assert.Less(t, res.PValue, 0.05)

	res, err = TestStatistic(-1.0, Constant)
	require.NoError(t, err)
	assert.False(t, res.IsStationary)
	assert.Greater(t, res.PValue, 0.10)
}

func TestTestStatisticClamped(t *testing.T) {
	low, err := TestStatistic(-50, Constant)
	require.NoError(t, err)
	assert.True(t, low.PValueClamped)
	assert.True(t, low.IsStationary)

	high, err := TestStatistic(50, Constant)
	require.NoError(t, err)
	assert.True(t, high.PValueClamped)
	assert.False(t, high.IsStationary)

	// Clamped p-values sit exactly on the table boundaries.
	assert.Greater(t, high.PValue, 0.99)
	assert.Less(t, low.PValue, 0.01)
}

func TestStatisticConsistentWithFullTest(t *testing.T) {
	data := ar1Series(250, 0.4, 53)

	full, err := Test(context.Background(), data, Constant, nil)
	require.NoError(t, err)

	statOnly, err := TestStatistic(full.Statistic, Constant)
	require.NoError(t, err)

	assert.Equal(t, full.PValue, statOnly.PValue)
	assert.Equal(t, full.CriticalValues, statOnly.CriticalValues)
	assert.Equal(t, full.IsStationary, statOnly.IsStationary)
}

func TestTestSeries(t *testing.T) {
	series := timeseries.New(ar1Series(200, 0.3, 61))
	series.Name = "spread"

	res, err := TestSeries(context.Background(), series, Constant, nil)
	require.NoError(t, err)
	assert.True(t, res.IsStationary)
}

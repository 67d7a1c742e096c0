package adf

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/meanrev/goadf/timeseries"
)

// Config holds configuration for the ADF test.
type Config struct {
	MaxLag   int         // Cap on the lag search range; 0 uses the Schwert rule
	Parallel bool        // Evaluate lag trials on worker goroutines
	Logger   *zap.Logger // Diagnostics for skipped trials and clamps; nil disables
}

// DefaultConfig returns the default ADF test configuration.
func DefaultConfig() *Config {
	return &Config{
		Parallel: true,
	}
}

// Result represents the outcome of a full ADF test.
type Result struct {
	Statistic float64 `json:"test_statistic"` // ADF t-statistic at the selected lag
	Lags      int     `json:"optimal_lags"`   // AIC-optimal lag order
	AIC       float64 `json:"aic_value"`      // AIC of the selected regression
	PValue    float64 `json:"p_value"`        // Interpolated from the reference table
	NObs      int     `json:"n_obs"`          // Usable observations at the selected lag

	// CriticalValues holds the 1%, 5% and 10% critical values for the
	// model specification.
	CriticalValues map[string]float64 `json:"critical_values"`

	// IsStationary is true when Statistic < CriticalValues["5%"]. The
	// statistic-versus-critical-value rule is the primary verdict; PValue
	// is reported for reference and may disagree within interpolation
	// error very close to the boundary.
	IsStationary bool `json:"is_stationary"`

	// PValueClamped is true when the statistic fell outside the reference
	// table's range and PValue was clamped to the boundary probability.
	PValueClamped bool `json:"p_value_clamped"`
}

// Test runs the Augmented Dickey-Fuller test on data with automatic
// AIC-based lag selection. A nil cfg uses DefaultConfig.
//
// The null hypothesis is that the series has a unit root; a statistic
// below the 5% critical value rejects it, marking the series stationary.
func Test(ctx context.Context, data []float64, spec ModelSpec, cfg *Config) (*Result, error) {
	return TestSeries(ctx, timeseries.New(data), spec, cfg)
}

// TestSeries runs the ADF test on a timeseries.Series.
func TestSeries(ctx context.Context, series *timeseries.Series, spec ModelSpec, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cleaned, err := series.Clean()
	if err != nil {
		return nil, err
	}

	diff := cleaned.Diff()
	if err := diff.CheckFinite(); err != nil {
		return nil, err
	}

	n := cleaned.Len()
	maxLag := cfg.MaxLag
	if maxLag <= 0 {
		maxLag = defaultMaxLag(n)
	}

	// The zero-lag regression is the smallest trial; if even that one has
	// too few rows the series is fatally short, regardless of maxLag.
	if rows, cols := n-1, 1+spec.detCols(); rows <= cols+1 {
		return nil, fmt.Errorf("%w: %d observations leave %d usable rows for %d regressors",
			timeseries.ErrInsufficientData, n, rows, cols)
	}

	best, err := searchLags(ctx, cleaned.Values, diff.Values, spec, maxLag, cfg.Parallel, logger)
	if err != nil {
		return nil, err
	}

	table, err := spec.table()
	if err != nil {
		return nil, err
	}

	pValue, clamped := table.PValue(best.statistic)
	if clamped {
		min, max := table.Bounds()
		logger.Warn("test statistic outside reference table, p-value clamped",
			zap.Float64("statistic", best.statistic),
			zap.Float64("table_min", min),
			zap.Float64("table_max", max),
			zap.Stringer("model", spec))
	}

	criticalValues := table.CriticalValues()

	return &Result{
		Statistic:      best.statistic,
		Lags:           best.lag,
		AIC:            best.aic,
		PValue:         pValue,
		NObs:           best.nObs,
		CriticalValues: criticalValues,
		IsStationary:   best.statistic < criticalValues["5%"],
		PValueClamped:  clamped,
	}, nil
}

// StatResult is the outcome of converting a precomputed test statistic.
type StatResult struct {
	Statistic      float64            `json:"statistic"`
	PValue         float64            `json:"p_value"`
	CriticalValues map[string]float64 `json:"critical_values"`
	IsStationary   bool               `json:"is_stationary"`
	PValueClamped  bool               `json:"p_value_clamped"`
}

// TestStatistic converts a precomputed ADF statistic into a p-value,
// critical values and a stationarity verdict, without running any
// regression. It uses the same reference table and decision rule as Test.
func TestStatistic(statistic float64, spec ModelSpec) (*StatResult, error) {
	table, err := spec.table()
	if err != nil {
		return nil, err
	}

	pValue, clamped := table.PValue(statistic)
	criticalValues := table.CriticalValues()

	return &StatResult{
		Statistic:      statistic,
		PValue:         pValue,
		CriticalValues: criticalValues,
		IsStationary:   statistic < criticalValues["5%"],
		PValueClamped:  clamped,
	}, nil
}

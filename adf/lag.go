package adf

import (
	"context"
	"math"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the number of lag trials below which the search
// stays sequential; the fan-out is not worth it for a handful of small
// regressions.
const parallelThreshold = 8

// lagTrial is the outcome of one candidate lag order.
type lagTrial struct {
	lag       int
	statistic float64
	aic       float64
	nObs      int
}

// defaultMaxLag returns the Schwert rule floor(12*(n/100)^0.25), clamped
// to [1, n/3].
func defaultMaxLag(n int) int {
	m := int(math.Floor(12 * math.Pow(float64(n)/100, 0.25)))
	if m > n/3 {
		m = n / 3
	}
	if m < 1 {
		m = 1
	}
	return m
}

// evalLag builds and solves the regression for one candidate lag order.
func evalLag(level, diff []float64, lag int, spec ModelSpec) (lagTrial, error) {
	x, y, err := buildDesign(level, diff, lag, spec)
	if err != nil {
		return lagTrial{}, err
	}
	reg, err := solveOLS(x, y)
	if err != nil {
		return lagTrial{}, err
	}
	return lagTrial{
		lag:       lag,
		statistic: reg.statistic(),
		aic:       reg.aic(),
		nObs:      reg.nObs,
	}, nil
}

// searchLags evaluates lag orders 0..maxLag and returns the AIC-minimizing
// trial. Trials that fail (too few rows, rank deficiency) are skipped; if
// every trial fails the search reports ErrNoValidLag. Ties on AIC resolve
// to the smaller lag order.
func searchLags(ctx context.Context, level, diff []float64, spec ModelSpec, maxLag int, parallel bool, logger *zap.Logger) (lagTrial, error) {
	if parallel && maxLag+1 >= parallelThreshold {
		return searchLagsParallel(ctx, level, diff, spec, maxLag, logger)
	}

	best := lagTrial{aic: math.Inf(1)}
	found := false

	for lag := 0; lag <= maxLag; lag++ {
		if err := ctx.Err(); err != nil {
			return lagTrial{}, err
		}
		trial, err := evalLag(level, diff, lag, spec)
		if err != nil {
			logger.Debug("lag trial skipped",
				zap.Int("lag", lag),
				zap.Stringer("model", spec),
				zap.Error(err))
			continue
		}
		if trial.aic < best.aic {
			best = trial
			found = true
		}
	}

	if !found {
		return lagTrial{}, ErrNoValidLag
	}
	return best, nil
}

// searchLagsParallel fans the candidate lags out over worker goroutines.
// Each trial reads only the shared level and difference slices and writes
// its own result slot, so no locking is needed; the min-AIC merge walks the
// slots in ascending lag order, which makes the tie-break identical to the
// sequential search.
func searchLagsParallel(ctx context.Context, level, diff []float64, spec ModelSpec, maxLag int, logger *zap.Logger) (lagTrial, error) {
	results := make([]*lagTrial, maxLag+1)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for lag := 0; lag <= maxLag; lag++ {
		lag := lag
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			trial, err := evalLag(level, diff, lag, spec)
			if err != nil {
				logger.Debug("lag trial skipped",
					zap.Int("lag", lag),
					zap.Stringer("model", spec),
					zap.Error(err))
				return nil
			}
			results[lag] = &trial
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return lagTrial{}, err
	}

	best := lagTrial{aic: math.Inf(1)}
	found := false
	for _, trial := range results {
		if trial == nil {
			continue
		}
		if trial.aic < best.aic {
			best = *trial
			found = true
		}
	}

	if !found {
		return lagTrial{}, ErrNoValidLag
	}
	return best, nil
}

// Package goadf provides an Augmented Dickey-Fuller stationarity engine
// for numeric time series.
//
// GoADF decides whether a series is mean-reverting by running the ADF
// unit-root regression across candidate lag orders, selecting the
// AIC-optimal order, and converting the resulting test statistic into a
// p-value and critical values via embedded Dickey-Fuller reference tables.
// It is built for statistical-arbitrage workflows that must classify
// candidate spread series as tradable or not.
//
// # Quick Start
//
// Run the full test on a slice of observations:
//
//	res, err := adf.Test(ctx, values, adf.Constant, nil)
//	if err != nil {
//		// handle
//	}
//	fmt.Println(res.Statistic, res.PValue, res.IsStationary)
//
// Convert a precomputed statistic alone:
//
//	sr, err := adf.TestStatistic(-3.1, adf.Constant)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - adf: the test engine (design matrix, OLS, lag selection, results)
//   - dftable: embedded Dickey-Fuller distribution tables and interpolation
//   - timeseries: series container, cleaning, and differencing utilities
//
// # References
//
//   - Dickey, D.A., & Fuller, W.A. (1979). Distribution of the Estimators
//     for Autoregressive Time Series with a Unit Root
//   - Schwert, G.W. (1989). Tests for Unit Roots: A Monte Carlo Investigation
package goadf

// Package adf implements the Augmented Dickey-Fuller unit-root test with
// automatic lag-order selection.
//
// The engine regresses the first difference of the series on the lagged
// level, a number of lagged differences, and the deterministic terms implied
// by the ModelSpec. The lag order is chosen by minimizing the Akaike
// Information Criterion over a bounded candidate range, and the resulting
// test statistic is converted into a p-value and critical values through the
// embedded reference tables in the dftable package.
//
// # Running the test
//
//	res, err := adf.Test(ctx, values, adf.Constant, nil)
//	if err != nil {
//	    // ErrInsufficientData, ErrNonFinite or ErrNoValidLag
//	}
//	if res.IsStationary {
//	    // statistic below the 5% critical value
//	}
//
// # Converting a precomputed statistic
//
//	sr, err := adf.TestStatistic(-3.1, adf.Constant)
//
// The test is pure: repeated calls with identical inputs return identical
// results, whether or not the lag search runs in parallel.
package adf

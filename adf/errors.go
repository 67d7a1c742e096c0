package adf

import "errors"

// Input errors (timeseries.ErrInsufficientData, timeseries.ErrNonFinite)
// abort the call before any regression runs. The errors below are the
// numerical failure modes of the engine itself.
var (
	// ErrSingularMatrix reports a rank-deficient design matrix for one lag
	// trial. The lag search recovers by skipping the trial; it is only
	// surfaced directly by the low-level solver.
	ErrSingularMatrix = errors.New("adf: singular design matrix")

	// ErrNoValidLag reports that every candidate lag order failed, leaving
	// no regression to select. Fatal for the call.
	ErrNoValidLag = errors.New("adf: no candidate lag order produced a usable regression")
)

package timeseries

import "errors"

var (
	// ErrInsufficientData reports a series too short for the requested
	// operation, either as given or after cleaning.
	ErrInsufficientData = errors.New("timeseries: insufficient data")

	// ErrNonFinite reports NaN or infinite values where finite ones are
	// required, including overflow introduced by differencing.
	ErrNonFinite = errors.New("timeseries: non-finite value")
)

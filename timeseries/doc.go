// Package timeseries provides the series container and preprocessing
// utilities consumed by the ADF engine.
//
// # Creating a Series
//
// Create a series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// # Cleaning
//
// Drop non-finite observations before handing the series to the engine:
//
//	cleaned, err := series.Clean()
//	if errors.Is(err, timeseries.ErrInsufficientData) {
//	    // too few finite values remain
//	}
//
// # Transformations
//
//	diff := series.Diff()    // first difference
//	diff2 := series.DiffN(2) // second difference
//	subset := series.Slice(10, 50)
//
// # Loading from CSV
//
//	// Load a specific column
//	series, err := timeseries.LoadCSVColumn("spreads.csv", "spread")
//
//	// Load with row filtering
//	series, err := timeseries.LoadCSVFiltered("spreads.csv", "pair", "AAPL/MSFT", "spread")
package timeseries

// Package dftable provides embedded Dickey-Fuller reference distributions
// and the interpolation used to convert ADF test statistics into p-values
// and critical values.
//
// One table is embedded per deterministic-term specification (none, drift,
// trend). Each table is a strictly ascending sequence of
// (statistic, cumulative probability) pairs obtained by Monte-Carlo
// simulation of the Dickey-Fuller tau distribution; see the gen
// subdirectory for the generator.
//
// Tables are parsed lazily, once per process, and are immutable afterwards,
// so they may be read from any number of goroutines without locking.
//
//	tbl, err := dftable.Lookup(dftable.Drift)
//	p, clamped := tbl.PValue(-3.1)
//	cv := tbl.CriticalValues() // {"1%": ..., "5%": ..., "10%": ...}
package dftable

package dftable

import (
	"bufio"
	"embed"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Table names, one per deterministic-term specification of the ADF
// regression.
const (
	None  = "none"  // no deterministic terms
	Drift = "drift" // intercept
	Trend = "trend" // intercept and linear trend
)

//go:embed data/none.csv data/drift.csv data/trend.csv
var tableFS embed.FS

// Table is an immutable Dickey-Fuller reference distribution: statistics
// sorted strictly ascending with their cumulative probabilities.
type Table struct {
	stats []float64
	probs []float64
}

type lazyTable struct {
	once  sync.Once
	table *Table
}

var tables = map[string]*lazyTable{
	None:  {},
	Drift: {},
	Trend: {},
}

// Lookup returns the reference table for the given specification name.
// Tables are parsed on first use and shared by all callers afterwards.
func Lookup(model string) (*Table, error) {
	lt, ok := tables[model]
	if !ok {
		return nil, fmt.Errorf("dftable: unknown table %q", model)
	}
	lt.once.Do(func() {
		lt.table = mustParse(model)
	})
	return lt.table, nil
}

// mustParse reads an embedded table. The data is generated and embedded at
// build time, so a malformed table is a programmer error, not a runtime
// condition.
func mustParse(model string) *Table {
	f, err := tableFS.Open("data/" + model + ".csv")
	if err != nil {
		panic(fmt.Sprintf("dftable: missing embedded table %q: %v", model, err))
	}
	defer f.Close()

	t := &Table{}
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		if line == 1 {
			continue // header
		}
		row := scanner.Text()
		if row == "" {
			continue
		}
		comma := strings.IndexByte(row, ',')
		if comma < 0 {
			panic(fmt.Sprintf("dftable: %s.csv line %d: missing delimiter", model, line))
		}
		stat, err := strconv.ParseFloat(row[:comma], 64)
		if err != nil {
			panic(fmt.Sprintf("dftable: %s.csv line %d: %v", model, line, err))
		}
		prob, err := strconv.ParseFloat(row[comma+1:], 64)
		if err != nil {
			panic(fmt.Sprintf("dftable: %s.csv line %d: %v", model, line, err))
		}
		if n := len(t.stats); n > 0 && (stat <= t.stats[n-1] || prob <= t.probs[n-1]) {
			panic(fmt.Sprintf("dftable: %s.csv line %d: entries not strictly ascending", model, line))
		}
		t.stats = append(t.stats, stat)
		t.probs = append(t.probs, prob)
	}
	if err := scanner.Err(); err != nil {
		panic(fmt.Sprintf("dftable: reading %s.csv: %v", model, err))
	}
	if len(t.stats) < 2 {
		panic(fmt.Sprintf("dftable: %s.csv: table too small", model))
	}
	return t
}

// Len returns the number of table entries.
func (t *Table) Len() int {
	return len(t.stats)
}

// Bounds returns the smallest and largest statistic the table covers.
func (t *Table) Bounds() (min, max float64) {
	return t.stats[0], t.stats[len(t.stats)-1]
}

// PValue maps a test statistic to a cumulative probability by binary search
// and linear interpolation between the bracketing entries. Statistics
// outside the table's range are clamped to the boundary probability and
// reported via the second return value; clamped results are never
// extrapolated.
func (t *Table) PValue(stat float64) (p float64, clamped bool) {
	n := len(t.stats)
	if stat <= t.stats[0] {
		return t.probs[0], stat < t.stats[0]
	}
	if stat >= t.stats[n-1] {
		return t.probs[n-1], stat > t.stats[n-1]
	}

	// First index with stats[i] >= stat; the bracket is [i-1, i].
	i := sort.SearchFloat64s(t.stats, stat)
	if t.stats[i] == stat {
		return t.probs[i], false
	}
	s1, s2 := t.stats[i-1], t.stats[i]
	p1, p2 := t.probs[i-1], t.probs[i]
	return p1 + (stat-s1)/(s2-s1)*(p2-p1), false
}

// CriticalValue performs the inverse lookup: the statistic whose cumulative
// probability equals alpha, interpolated between the bracketing entries.
// Alphas outside the table's recorded probabilities clamp to the boundary
// statistic.
func (t *Table) CriticalValue(alpha float64) float64 {
	n := len(t.probs)
	if alpha <= t.probs[0] {
		return t.stats[0]
	}
	if alpha >= t.probs[n-1] {
		return t.stats[n-1]
	}

	i := sort.SearchFloat64s(t.probs, alpha)
	if t.probs[i] == alpha {
		return t.stats[i]
	}
	p1, p2 := t.probs[i-1], t.probs[i]
	s1, s2 := t.stats[i-1], t.stats[i]
	return s1 + (alpha-p1)/(p2-p1)*(s2-s1)
}

// CriticalValues returns the conventional 1%, 5% and 10% critical values.
func (t *Table) CriticalValues() map[string]float64 {
	return map[string]float64{
		"1%":  t.CriticalValue(0.01),
		"5%":  t.CriticalValue(0.05),
		"10%": t.CriticalValue(0.10),
	}
}

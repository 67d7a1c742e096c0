package adf

import (
	"fmt"

	"github.com/meanrev/goadf/dftable"
)

// ModelSpec selects the deterministic terms included in the ADF regression.
type ModelSpec int

const (
	// NoConstant includes no deterministic terms.
	NoConstant ModelSpec = iota
	// Constant includes an intercept.
	Constant
	// ConstantAndTrend includes an intercept and a linear trend.
	ConstantAndTrend
)

// ParseModelSpec maps the wire names "none", "drift" and "trend" to their
// ModelSpec variants.
func ParseModelSpec(s string) (ModelSpec, error) {
	switch s {
	case "none":
		return NoConstant, nil
	case "drift":
		return Constant, nil
	case "trend":
		return ConstantAndTrend, nil
	default:
		return 0, fmt.Errorf("adf: unknown model type %q", s)
	}
}

// String returns the wire name of the specification.
func (m ModelSpec) String() string {
	switch m {
	case NoConstant:
		return "none"
	case Constant:
		return "drift"
	case ConstantAndTrend:
		return "trend"
	default:
		return fmt.Sprintf("ModelSpec(%d)", int(m))
	}
}

// detCols returns the number of deterministic columns the specification
// appends to the design matrix.
func (m ModelSpec) detCols() int {
	switch m {
	case Constant:
		return 1
	case ConstantAndTrend:
		return 2
	default:
		return 0
	}
}

// table returns the Dickey-Fuller reference table matching the
// specification.
func (m ModelSpec) table() (*dftable.Table, error) {
	switch m {
	case NoConstant:
		return dftable.Lookup(dftable.None)
	case Constant:
		return dftable.Lookup(dftable.Drift)
	case ConstantAndTrend:
		return dftable.Lookup(dftable.Trend)
	default:
		return nil, fmt.Errorf("adf: invalid model spec %d", int(m))
	}
}

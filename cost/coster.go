package cost

import "math"

// OpKind mirrors memo.OpKind without importing the memo package, so cost has
// no dependency on memo (memo depends on cost, not the reverse).
type OpKind int

const (
	TableScanKind OpKind = iota
	ProjectionKind
	FilterKind
	InnerJoinKind
)

// Candidate describes the operator-specific inputs a Coster needs to price
// one expression, decoupled from the memo package's own Op representation.
type Candidate struct {
	Kind OpKind

	// TableScanKind only.
	Fetch *uint64

	// InnerJoinKind only: the unordered table-name pair behind each
	// resolved equi-join key, used to look up selectivities.
	JoinTablePairs []TablePair

	ChildRowCounts []uint64
	ChildCosts     []float64
}

// Coster computes a row count and a cost for a Candidate. Swappable so
// alternate cost models - a biased model for deterministic tests, for
// instance - can be injected in place of DefaultCoster without touching
// callers; see DESIGN.md for prior-art grounding.
type Coster interface {
	Compute(c Candidate, cfg Config, sel *SelectivityTable) (rowCount uint64, cost float64)
}

// DefaultCoster implements the cost/cardinality table: TableScan returns its
// row count (or Fetch, if set) at cost equal to that row count; Projection
// and Filter are linear in their child's row count; InnerJoin applies the
// selectivity of its join keys to the cross product of its children's row
// counts.
type DefaultCoster struct{}

func (DefaultCoster) Compute(c Candidate, cfg Config, sel *SelectivityTable) (uint64, float64) {
	switch c.Kind {
	case TableScanKind:
		rc := cfg.DefaultRowCount
		if c.Fetch != nil {
			rc = *c.Fetch
		}
		return rc, float64(rc)

	case ProjectionKind:
		rc := c.ChildRowCounts[0]
		return rc, cfg.ProjectCostPerRow*float64(rc) + c.ChildCosts[0]

	case FilterKind:
		rc := uint64(0.10 * float64(c.ChildRowCounts[0]))
		return rc, cfg.FilterCostPerRow*float64(rc) + c.ChildCosts[0]

	case InnerJoinKind:
		product := c.ChildRowCounts[0] * c.ChildRowCounts[1]
		selectivity := 1.0
		for _, p := range c.JoinTablePairs {
			if s, ok := sel.Lookup(p.A, p.B); ok {
				selectivity *= s
			}
		}
		var rc uint64
		if selectivity == 1.0 {
			rc = product
		} else {
			rc = uint64(selectivity * float64(product))
		}
		return rc, cfg.JoinCostPerRow*float64(rc) + c.ChildCosts[0] + c.ChildCosts[1]

	default:
		return 0, math.Inf(1)
	}
}

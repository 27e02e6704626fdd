package memo

import (
	"github.com/aaneja/cascadesopt/cost"
	"github.com/aaneja/cascadesopt/lqp"
)

const maxRowCount = ^uint64(0)

// MExpr is one multi-expression: an intrinsic operator plus an ordered list
// of operand groups. Cost and row count start as sentinels (+Inf / max
// uint64, "unknown") and are finalized exactly once, after every operand
// group has been fully explored (the children-first determinism invariant).
type MExpr struct {
	Op       Op
	Operands []GroupID

	fingerprint Fingerprint
	cost        float64
	rowCount    uint64
}

func (m *MExpr) Fingerprint() Fingerprint { return m.fingerprint }
func (m *MExpr) Cost() float64            { return m.cost }
func (m *MExpr) RowCount() uint64         { return m.rowCount }

// Schema walks downward through pass-through operators (only FilterOp, in
// this module's operator set) until it reaches a schema-carrying operator,
// mirroring the Group.start_expression...get_schema() chase used by the
// associativity rule to resolve a child's schema.
func (m *MExpr) Schema(mem *Memo) (lqp.Schema, bool) {
	switch op := m.Op.(type) {
	case TableScanOp:
		return op.Sch, true
	case ProjectionOp:
		return op.Sch, true
	case InnerJoinOp:
		return op.Sch, true
	case FilterOp:
		child := mem.Group(m.Operands[0])
		start := child.StartExpression()
		if start == nil {
			return nil, false
		}
		return start.Schema(mem)
	default:
		return nil, false
	}
}

// UpdateCostAndRowCount computes this expression's cost and row count from
// its operand groups, which must already be fully explored. Delegates the
// arithmetic to a cost.Coster so the model can be swapped without touching
// the memo (see cost.DefaultCoster).
func (m *MExpr) UpdateCostAndRowCount(mem *Memo, coster cost.Coster, cfg cost.Config, sel *cost.SelectivityTable) {
	var cand cost.Candidate

	switch op := m.Op.(type) {
	case TableScanOp:
		cand.Kind = cost.TableScanKind
		cand.Fetch = op.Fetch
	case ProjectionOp:
		cand.Kind = cost.ProjectionKind
		child := mem.Group(m.Operands[0])
		cand.ChildRowCounts = []uint64{child.RowCount()}
		cand.ChildCosts = []float64{child.Cost()}
	case FilterOp:
		cand.Kind = cost.FilterKind
		child := mem.Group(m.Operands[0])
		cand.ChildRowCounts = []uint64{child.RowCount()}
		cand.ChildCosts = []float64{child.Cost()}
	case InnerJoinOp:
		cand.Kind = cost.InnerJoinKind
		left := mem.Group(m.Operands[0])
		right := mem.Group(m.Operands[1])
		cand.ChildRowCounts = []uint64{left.RowCount(), right.RowCount()}
		cand.ChildCosts = []float64{left.Cost(), right.Cost()}
		cand.JoinTablePairs = joinTablePairs(op.On)
	}

	m.rowCount, m.cost = coster.Compute(cand, cfg, sel)
}

func joinTablePairs(on []lqp.EqPair) []cost.TablePair {
	pairs := make([]cost.TablePair, 0, len(on))
	for _, p := range on {
		a := columnTable(p.Left)
		b := columnTable(p.Right)
		if a == "" || b == "" {
			continue
		}
		pairs = append(pairs, cost.TablePair{A: a, B: b})
	}
	return pairs
}

func columnTable(e lqp.Expr) string {
	if c, ok := e.(lqp.Column); ok {
		return c.Table
	}
	return ""
}

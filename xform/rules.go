package xform

import (
	"github.com/aaneja/cascadesopt/lqp"
	"github.com/aaneja/cascadesopt/memo"
	"github.com/aaneja/cascadesopt/memo/exprutil"
)

// CommuteJoin implements A join B => B join A. Always produces exactly one
// candidate: operand order is significant (the data-model invariant), so
// swapping it always yields a distinct fingerprint worth trying, but it
// never fails the way associativity can.
func CommuteJoin(mem *memo.Memo, op memo.InnerJoinOp, operands []memo.GroupID) *memo.MExpr {
	swapped := []memo.GroupID{operands[1], operands[0]}
	return mem.NewCandidate(op, swapped)
}

// associateJoin implements (A join B) join C => A join (B join C). For
// every inner-join variant already discovered in the left operand's group,
// it resolves the schemas of A, B and C, recombines both joins' predicates,
// splits that combined predicate against (B,C) to build the new inner join,
// interns it as an ordinary (non-derived) group, then splits the same
// combined predicate against (A, B join C) to build the new top join -
// which the caller registers as a derivation of the current group.
func (d *Driver) associateJoin(origin memo.GroupID, op memo.InnerJoinOp, operands []memo.GroupID) []*memo.MExpr {
	leftGroup := d.Mem.Group(operands[0])
	cGroup := operands[1]

	var results []*memo.MExpr

	for _, leftMExpr := range leftGroup.Equivalent() {
		leftJoin, ok := leftMExpr.Op.(memo.InnerJoinOp)
		if !ok {
			continue
		}

		aGroup := leftMExpr.Operands[0]
		bGroup := leftMExpr.Operands[1]

		schemaA, ok := d.Mem.GroupSchema(aGroup)
		if !ok {
			d.logSkip(errSchemaUnavailable.New(aGroup))
			continue
		}
		schemaB, ok := d.Mem.GroupSchema(bGroup)
		if !ok {
			d.logSkip(errSchemaUnavailable.New(bGroup))
			continue
		}
		schemaC, ok := d.Mem.GroupSchema(cGroup)
		if !ok {
			d.logSkip(errSchemaUnavailable.New(cGroup))
			continue
		}

		combined := combinedPredicate(leftJoin, op)

		rightOn, rightResidual, err := exprutil.SplitPredicate(combined, schemaB, schemaC)
		if err != nil {
			d.logSkip(errPredicateSplitFailure.New(err))
			continue
		}
		bcSchema := lqp.BuildJoinSchema(schemaB, schemaC, lqp.InnerJoinType)
		bcOp := memo.InnerJoinOp{On: rightOn, Filter: rightResidual, Sch: bcSchema}
		bcGroup := d.Mem.GetOrIntern(bcOp, []memo.GroupID{bGroup, cGroup})

		topOn, topResidual, err := exprutil.SplitPredicate(combined, schemaA, bcSchema)
		if err != nil {
			d.logSkip(errPredicateSplitFailure.New(err))
			continue
		}
		topSchema := lqp.BuildJoinSchema(schemaA, bcSchema, lqp.InnerJoinType)
		topOp := memo.InnerJoinOp{On: topOn, Filter: topResidual, Sch: topSchema}
		topExpr := d.Mem.NewCandidate(topOp, []memo.GroupID{aGroup, bcGroup})

		results = append(results, topExpr)
	}

	return results
}

// combinedPredicate recombines both joins' on-clauses and residual filters
// into a single conjunction, so the two can be re-split around a different
// grouping of the three inputs.
func combinedPredicate(a, b memo.InnerJoinOp) lqp.Expr {
	var exprs []lqp.Expr
	for _, p := range a.On {
		exprs = append(exprs, lqp.BinaryExpr{Left: p.Left, Op: lqp.Eq, Right: p.Right})
	}
	if a.Filter != nil {
		exprs = append(exprs, a.Filter)
	}
	for _, p := range b.On {
		exprs = append(exprs, lqp.BinaryExpr{Left: p.Left, Op: lqp.Eq, Right: p.Right})
	}
	if b.Filter != nil {
		exprs = append(exprs, b.Filter)
	}
	return exprutil.Conjunction(exprs)
}

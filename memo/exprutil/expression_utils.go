package exprutil

import (
	"fmt"

	"github.com/aaneja/cascadesopt/lqp"
)

// FlipEquality swaps the sides of an equality predicate; any other
// expression is returned unchanged.
func FlipEquality(e lqp.Expr) lqp.Expr {
	if b, ok := e.(lqp.BinaryExpr); ok && b.Op == lqp.Eq {
		return lqp.BinaryExpr{Left: b.Right, Op: lqp.Eq, Right: b.Left}
	}
	return e
}

// SplitConjunction flattens a chain of AND'ed expressions into its leaves.
// A nil input yields an empty slice.
func SplitConjunction(e lqp.Expr) []lqp.Expr {
	if e == nil {
		return nil
	}
	if b, ok := e.(lqp.BinaryExpr); ok && b.Op == lqp.And {
		return append(SplitConjunction(b.Left), SplitConjunction(b.Right)...)
	}
	return []lqp.Expr{e}
}

// Conjunction ANDs a list of expressions together, left to right. Returns
// nil for an empty list (no predicate at all, not a "true" literal).
func Conjunction(exprs []lqp.Expr) lqp.Expr {
	if len(exprs) == 0 {
		return nil
	}
	out := exprs[0]
	for _, e := range exprs[1:] {
		out = lqp.BinaryExpr{Left: out, Op: lqp.And, Right: e}
	}
	return out
}

// InferEqualities derives the transitive closure of a set of equality
// predicates and returns only the NEW pairs it discovers - anything already
// present in preds (in either direction) is excluded, matching
// expression_utils.rs::infer_equalities exactly. For {a=b, b=c, c=d} this
// returns {a=c, a=d, b=d} (order unspecified).
func InferEqualities(preds []lqp.Expr) []lqp.Expr {
	uf := NewUnionFind()
	original := make(map[lqp.Expr]bool, len(preds))
	for _, p := range preds {
		original[p] = true
		if b, ok := p.(lqp.BinaryExpr); ok && b.Op == lqp.Eq {
			uf.Union(b.Left, b.Right)
		}
	}

	var out []lqp.Expr
	for _, members := range uf.Classes() {
		if len(members) < 2 {
			continue
		}
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				eq := lqp.BinaryExpr{Left: members[i], Op: lqp.Eq, Right: members[j]}
				if original[eq] || original[FlipEquality(eq)] {
					continue
				}
				out = append(out, eq)
			}
		}
	}
	return out
}

// UniqueEqualities collapses a set of EqPairs to one representative pair per
// non-singleton equivalence class.
func UniqueEqualities(pairs []lqp.EqPair) []lqp.EqPair {
	uf := NewUnionFind()
	for _, p := range pairs {
		uf.Union(p.Left, p.Right)
	}
	classes := uf.Classes()
	out := make([]lqp.EqPair, 0, len(classes))
	for _, members := range classes {
		if len(members) > 1 {
			out = append(out, lqp.EqPair{Left: members[0], Right: members[1]})
		}
	}
	return out
}

// SplitPredicate splits pred into equi-join keys resolvable against
// leftSchema/rightSchema and a residual filter covering everything else.
// Conjuncts are augmented with InferEqualities before resolution, so a
// transitively-implied key (a1=a3 via a1=a2, a2=a3) is found even though it
// never appears literally in pred. Returns an error only when both schemas
// are empty, which would make every equi-join resolution vacuously fail -
// the PredicateSplitFailure case callers log and skip.
func SplitPredicate(pred lqp.Expr, leftSchema, rightSchema lqp.Schema) ([]lqp.EqPair, lqp.Expr, error) {
	if len(leftSchema) == 0 && len(rightSchema) == 0 {
		return nil, nil, fmt.Errorf("cannot split predicate against two empty schemas")
	}

	conjuncts := SplitConjunction(pred)
	inferred := InferEqualities(conjuncts)

	seen := make(map[lqp.EqPair]bool)
	var onPairs []lqp.EqPair
	var residual []lqp.Expr

	// Original conjuncts that fail to resolve as an equi-join key fall back
	// into the residual filter unchanged. Inferred equalities are purely a
	// discovery aid: one that fails to resolve is simply not a join key
	// here and is dropped, never injected into the residual filter (it was
	// never actually part of the predicate).
	resolve := func(e lqp.Expr, keepOnFailure bool) {
		b, ok := e.(lqp.BinaryExpr)
		if !ok || b.Op != lqp.Eq {
			if keepOnFailure {
				residual = append(residual, e)
			}
			return
		}
		l, r, ok := lqp.FindValidEquijoinKeyPair(b.Left, b.Right, leftSchema, rightSchema)
		if !ok {
			if keepOnFailure {
				residual = append(residual, e)
			}
			return
		}
		pair := lqp.EqPair{Left: l, Right: r}
		flipped := lqp.EqPair{Left: r, Right: l}
		if seen[pair] || seen[flipped] {
			return
		}
		seen[pair] = true
		onPairs = append(onPairs, pair)
	}

	for _, e := range conjuncts {
		resolve(e, true)
	}
	for _, e := range inferred {
		resolve(e, false)
	}

	return onPairs, Conjunction(residual), nil
}

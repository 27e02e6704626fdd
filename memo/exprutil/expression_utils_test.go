package exprutil_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/aaneja/cascadesopt/lqp"
	"github.com/aaneja/cascadesopt/memo/exprutil"
)

func col(name string) lqp.Column { return lqp.Column{Table: "t", Name: name} }

func eq(a, b lqp.Expr) lqp.Expr { return lqp.BinaryExpr{Left: a, Op: lqp.Eq, Right: b} }

// containsEquality reports whether set contains expr in either direction,
// matching the original Rust test's "contains X or contains flip(X)" check.
func containsEquality(set []lqp.Expr, expr lqp.Expr) bool {
	flipped := exprutil.FlipEquality(expr)
	for _, e := range set {
		if e == expr || e == flipped {
			return true
		}
	}
	return false
}

func TestInferEqualitiesChain(t *testing.T) {
	a, b, c, d := col("a"), col("b"), col("c"), col("d")

	preds := []lqp.Expr{eq(a, b), eq(b, c), eq(c, d)}
	got := exprutil.InferEqualities(preds)

	require.Len(t, got, 3)
	require.True(t, containsEquality(got, eq(a, c)))
	require.True(t, containsEquality(got, eq(a, d)))
	require.True(t, containsEquality(got, eq(b, d)))
}

func TestInferEqualitiesWiderClass(t *testing.T) {
	a, b, c, d, e := col("a"), col("b"), col("c"), col("d"), col("e")

	preds := []lqp.Expr{eq(a, b), eq(b, c), eq(c, d), eq(c, e)}
	got := exprutil.InferEqualities(preds)

	want := []lqp.Expr{eq(a, c), eq(a, d), eq(a, e), eq(b, d), eq(b, e), eq(d, e)}
	require.Len(t, got, len(want))
	for _, w := range want {
		require.True(t, containsEquality(got, w), "expected inferred set to contain %s", w)
	}
}

func TestInferEqualitiesNoOverlap(t *testing.T) {
	a, b := col("a"), col("b")
	got := exprutil.InferEqualities([]lqp.Expr{eq(a, b)})
	require.Empty(t, got, "a single pair has no further equalities to infer")
}

func TestFlipEquality(t *testing.T) {
	a, b := col("a"), col("b")
	require.Equal(t, eq(b, a), exprutil.FlipEquality(eq(a, b)))

	lit := lqp.Literal{Value: 1}
	require.Equal(t, lit, exprutil.FlipEquality(lit), "non-equality expressions are returned unchanged")
}

func TestSplitPredicateDirectKey(t *testing.T) {
	left := lqp.Schema{{Table: "t1", Name: "a1", Type: lqp.Int64}}
	right := lqp.Schema{{Table: "t2", Name: "a2", Type: lqp.Int64}}

	pred := eq(lqp.Column{Table: "t1", Name: "a1"}, lqp.Column{Table: "t2", Name: "a2"})

	on, residual, err := exprutil.SplitPredicate(pred, left, right)
	require.NoError(t, err)
	require.Nil(t, residual)
	require.Equal(t, []lqp.EqPair{{Left: lqp.Column{Table: "t1", Name: "a1"}, Right: lqp.Column{Table: "t2", Name: "a2"}}}, on)
}

func TestSplitPredicateInferredKey(t *testing.T) {
	// a1=a2 AND a2=a3, split against (t1) and (t3): a1=a3 must be
	// discovered transitively even though it never appears literally.
	left := lqp.Schema{{Table: "t1", Name: "a1", Type: lqp.Int64}}
	right := lqp.Schema{{Table: "t3", Name: "a3", Type: lqp.Int64}}

	a1 := lqp.Column{Table: "t1", Name: "a1"}
	a2 := lqp.Column{Table: "t2", Name: "a2"}
	a3 := lqp.Column{Table: "t3", Name: "a3"}

	pred := lqp.BinaryExpr{Left: eq(a1, a2), Op: lqp.And, Right: eq(a2, a3)}

	on, _, err := exprutil.SplitPredicate(pred, left, right)
	require.NoError(t, err)
	require.Len(t, on, 1)
	require.Equal(t, a1, on[0].Left)
	require.Equal(t, a3, on[0].Right)
}

// TestConjunctionRoundTripsThroughSplit confirms Conjunction(SplitConjunction(e))
// reconstructs the same tree shape for a 3-clause predicate, using go-cmp for
// the deep-equal check since lqp.Expr values nest interface fields that
// require.Equal also handles but cmp.Diff reports more usefully on mismatch.
func TestConjunctionRoundTripsThroughSplit(t *testing.T) {
	a, b, c := col("a"), col("b"), col("c")
	original := lqp.BinaryExpr{
		Left:  lqp.BinaryExpr{Left: eq(a, b), Op: lqp.And, Right: eq(b, c)},
		Op:    lqp.And,
		Right: eq(a, c),
	}

	leaves := exprutil.SplitConjunction(original)
	require.Len(t, leaves, 3)

	rebuilt := exprutil.Conjunction(leaves)
	if diff := cmp.Diff(original, rebuilt); diff != "" {
		t.Fatalf("Conjunction(SplitConjunction(e)) mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitPredicateResidualFilter(t *testing.T) {
	left := lqp.Schema{{Table: "t1", Name: "a1", Type: lqp.Int64}}
	right := lqp.Schema{{Table: "t2", Name: "a2", Type: lqp.Int64}}

	a1 := lqp.Column{Table: "t1", Name: "a1"}
	a2 := lqp.Column{Table: "t2", Name: "a2"}
	residualPred := lqp.BinaryExpr{Left: a1, Op: lqp.Gt, Right: lqp.Literal{Value: 10}}

	pred := lqp.BinaryExpr{Left: eq(a1, a2), Op: lqp.And, Right: residualPred}

	on, residual, err := exprutil.SplitPredicate(pred, left, right)
	require.NoError(t, err)
	require.Len(t, on, 1)
	require.Equal(t, residualPred, residual)
}

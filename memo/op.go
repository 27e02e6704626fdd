package memo

import "github.com/aaneja/cascadesopt/lqp"

// OpKind tags the intrinsic operator carried by an MExpr, independent of its
// operand groups.
type OpKind int

const (
	TableScanOpKind OpKind = iota
	ProjectionOpKind
	FilterOpKind
	InnerJoinOpKind
)

// Op is the intrinsic, operand-free payload of an MExpr. Deliberately holds
// no child lqp.Node pointers - an MExpr's children are always GroupIDs, never
// raw plan nodes. This is what lets a rule-derived join (built from pieces of
// two different memo groups) exist without needing a placeholder child node.
type Op interface {
	Kind() OpKind
}

// TableScanOp is a leaf operator. Fetch mirrors lqp.TableScan.Fetch.
type TableScanOp struct {
	Table string
	Sch   lqp.Schema
	Fetch *uint64
}

func (TableScanOp) Kind() OpKind { return TableScanOpKind }

// ProjectionOp carries output expressions over a single operand.
type ProjectionOp struct {
	Exprs []lqp.Expr
	Sch   lqp.Schema
}

func (ProjectionOp) Kind() OpKind { return ProjectionOpKind }

// FilterOp is a pass-through operator; its schema is its operand's schema.
type FilterOp struct {
	Predicate lqp.Expr
}

func (FilterOp) Kind() OpKind { return FilterOpKind }

// InnerJoinOp is a two-operand join. On is tagged hash:"ignore" so the
// fingerprint of a join is independent of which equi-join keys it carries -
// logically equivalent reorderings and rule-inferred variants of the same
// two children collapse into one memo group (see fingerprint.go).
type InnerJoinOp struct {
	On     []lqp.EqPair `hash:"ignore"`
	Filter lqp.Expr
	Sch    lqp.Schema
}

func (InnerJoinOp) Kind() OpKind { return InnerJoinOpKind }

package lqp

import "fmt"

// JoinType is restricted to Inner per this module's scope; the tag is still
// carried on Join so the shape matches a general join node.
type JoinType int

const (
	InnerJoinType JoinType = iota
)

func (t JoinType) String() string {
	switch t {
	case InnerJoinType:
		return "Inner"
	default:
		return "Unknown"
	}
}

// Node is a logical plan node. Mirrors the split a SQL engine draws between
// Node and Expression: nodes carry a Schema and Children, expressions don't.
type Node interface {
	Schema() Schema
	Children() []Node
	String() string
}

// TableScan is a leaf node reading a single table, optionally capped by
// Fetch (the row-count override used by the synthetic CLI plans).
type TableScan struct {
	Table string
	Sch   Schema
	Fetch *uint64
}

func (t *TableScan) Schema() Schema   { return t.Sch }
func (t *TableScan) Children() []Node { return nil }
func (t *TableScan) String() string   { return fmt.Sprintf("TableScan(%s)", t.Table) }

// Projection carries a list of output expressions over a single input.
type Projection struct {
	Exprs []Expr
	Input Node
	Sch   Schema
}

func (p *Projection) Schema() Schema   { return p.Sch }
func (p *Projection) Children() []Node { return []Node{p.Input} }
func (p *Projection) String() string   { return "Projection" }

// Filter is a pass-through node: its schema is its input's schema unchanged.
type Filter struct {
	Predicate Expr
	Input     Node
}

func (f *Filter) Schema() Schema   { return f.Input.Schema() }
func (f *Filter) Children() []Node { return []Node{f.Input} }
func (f *Filter) String() string   { return "Filter" }

// Join is a two-input node. On holds the resolved equi-join keys; Filter
// holds any residual (non-equi) predicate, nil for a plain equi-join. An
// empty On with a nil Filter is a cross join, not an error (see memo/xform
// error handling).
type Join struct {
	Left, Right Node
	JoinType    JoinType
	On          []EqPair
	Filter      Expr
	Sch         Schema
}

func (j *Join) Schema() Schema   { return j.Sch }
func (j *Join) Children() []Node { return []Node{j.Left, j.Right} }
func (j *Join) String() string   { return "Join" }

package memo

import "math"

// GroupID indexes into the Memo's group arena. 0 is reserved and never
// assigned to a real group, mirroring the cockroachdb memo arena convention.
type GroupID uint32

// Group is an equivalence class of logically identical MExprs. It moves
// through three states: initial (just created, holding only its seeding
// MExpr), exploring (its unexplored queue is being drained), and explored
// (every member has a finalized cost and row count).
type Group struct {
	id       GroupID
	explored bool

	startExpression *MExpr
	cheapest        *MExpr
	minCost         float64

	unexplored []*MExpr
	equivalent []*MExpr

	// Leaf identity for the toy string-encoded join plans used in unit
	// tests (see memo.NewSourceGroup). Unused by the InternPlan path.
	sourceNode string
	isSource   bool
}

func newGroup(id GroupID, start *MExpr) *Group {
	g := &Group{id: id, startExpression: start, minCost: math.Inf(1)}
	g.unexplored = append(g.unexplored, start)
	return g
}

func newSourceGroup(id GroupID, nodeID string) *Group {
	return &Group{id: id, sourceNode: nodeID, isSource: true, minCost: math.Inf(1)}
}

func (g *Group) ID() GroupID                       { return g.id }
func (g *Group) Explored() bool                    { return g.explored }
func (g *Group) IsSource() bool                    { return g.isSource }
func (g *Group) SourceNodeID() string              { return g.sourceNode }
func (g *Group) StartExpression() *MExpr           { return g.startExpression }
func (g *Group) CheapestLogicalExpression() *MExpr { return g.cheapest }
func (g *Group) Equivalent() []*MExpr              { return g.equivalent }

// PushUnexplored queues a newly derived or seeding MExpr for exploration.
func (g *Group) PushUnexplored(m *MExpr) {
	g.unexplored = append(g.unexplored, m)
}

// PopUnexplored dequeues the next MExpr awaiting exploration, FIFO.
func (g *Group) PopUnexplored() (*MExpr, bool) {
	if len(g.unexplored) == 0 {
		return nil, false
	}
	m := g.unexplored[0]
	g.unexplored = g.unexplored[1:]
	return m, true
}

// PushEquivalent records a fully-costed MExpr as a member of this group's
// equivalence class. Called by the driver immediately after
// UpdateCostAndRowCount, once per popped MExpr.
func (g *Group) PushEquivalent(m *MExpr) {
	g.equivalent = append(g.equivalent, m)
}

// MarkExplored finalizes the group once its unexplored queue has drained,
// caching the cheapest equivalent expression.
func (g *Group) MarkExplored() {
	g.explored = true

	min := math.Inf(1)
	var cheapest *MExpr
	for _, e := range g.equivalent {
		if e.Cost() < min {
			min = e.Cost()
			cheapest = e
		}
	}
	g.cheapest = cheapest
	g.minCost = min
}

// Cost returns the group's cached minimum cost once explored. Before that
// it reports +Inf: this module treats "unknown cost" as an explicit sentinel
// rather than overloading 0.0, which is otherwise a legitimate cost value
// (see DESIGN.md, Open Question: zero-cost ambiguity).
func (g *Group) Cost() float64 {
	if g.explored {
		return g.minCost
	}
	return math.Inf(1)
}

// RowCount returns the cheapest member's row count once explored, or the
// start expression's provisional estimate beforehand.
func (g *Group) RowCount() uint64 {
	if g.explored && g.cheapest != nil {
		return g.cheapest.RowCount()
	}
	if g.startExpression != nil {
		return g.startExpression.RowCount()
	}
	return 0
}

// Hash returns the fingerprint identifying this group: the start
// expression's fingerprint for ordinary groups, or a fingerprint derived
// from the source id for leaf/toy groups.
func (g *Group) Hash() Fingerprint {
	if g.startExpression != nil {
		return g.startExpression.Fingerprint()
	}
	return sourceFingerprint(g.sourceNode)
}

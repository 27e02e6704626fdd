// Package xform is the exploration driver and transformation rules: the
// Cascades-style depth-first, children-first walk that drains each group's
// unexplored queue to a fixed point, applying join commutativity and
// associativity along the way.
package xform

import (
	"github.com/sirupsen/logrus"

	"github.com/aaneja/cascadesopt/cost"
	"github.com/aaneja/cascadesopt/memo"
)

// Driver owns the memo plus the cost model it explores against, and a
// logger for the non-fatal per-variant rule skips.
type Driver struct {
	Mem    *memo.Memo
	Coster cost.Coster
	Cfg    cost.Config
	Sel    *cost.SelectivityTable
	Log    *logrus.Logger
}

// NewDriver returns a Driver using the default cost model and a logger at
// its package default level.
func NewDriver(mem *memo.Memo, cfg cost.Config, sel *cost.SelectivityTable) *Driver {
	return &Driver{
		Mem:    mem,
		Coster: cost.DefaultCoster{},
		Cfg:    cfg,
		Sel:    sel,
		Log:    logrus.StandardLogger(),
	}
}

func (d *Driver) logSkip(err error) {
	d.Log.WithError(err).Debug("xform: skipping rule variant")
}

// Explore recursively drains group's unexplored queue to a fixed point:
// children are explored before rules run on a parent (children-first
// determinism), and every transformation rule registers its output through
// Memo.RegisterDerived, which only re-queues genuinely new fingerprints -
// the mechanism that guarantees the queue eventually empties.
func (d *Driver) Explore(gid memo.GroupID) {
	g := d.Mem.Group(gid)
	if g.Explored() {
		return
	}

	for {
		m, ok := g.PopUnexplored()
		if !ok {
			break
		}

		for _, childID := range m.Operands {
			d.Explore(childID)
		}

		d.applyRules(gid, m)

		m.UpdateCostAndRowCount(d.Mem, d.Coster, d.Cfg, d.Sel)
		g.PushEquivalent(m)
	}

	g.MarkExplored()
}

func (d *Driver) applyRules(gid memo.GroupID, m *memo.MExpr) {
	joinOp, ok := m.Op.(memo.InnerJoinOp)
	if !ok {
		return
	}

	commuted := CommuteJoin(d.Mem, joinOp, m.Operands)
	d.Mem.RegisterDerived(gid, commuted)

	for _, top := range d.associateJoin(gid, joinOp, m.Operands) {
		d.Mem.RegisterDerived(gid, top)
	}
}

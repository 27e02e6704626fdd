package memo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aaneja/cascadesopt/cost"
	"github.com/aaneja/cascadesopt/lqp"
	"github.com/aaneja/cascadesopt/memo"
)

func TestUpdateCostAndRowCountTableScan(t *testing.T) {
	mem := memo.NewMemo()
	fetch := uint64(200)
	gid := mem.GetOrIntern(memo.TableScanOp{Table: "t1", Fetch: &fetch}, nil)

	m := mem.Group(gid).StartExpression()
	m.UpdateCostAndRowCount(mem, cost.DefaultCoster{}, cost.DefaultConfig(), cost.NewSelectivityTable())

	require.Equal(t, uint64(200), m.RowCount())
	require.Equal(t, float64(200), m.Cost())
}

func TestUpdateCostAndRowCountTableScanDefaultsWithoutFetch(t *testing.T) {
	mem := memo.NewMemo()
	cfg := cost.DefaultConfig()
	gid := mem.GetOrIntern(memo.TableScanOp{Table: "t1"}, nil)

	m := mem.Group(gid).StartExpression()
	m.UpdateCostAndRowCount(mem, cost.DefaultCoster{}, cfg, cost.NewSelectivityTable())

	require.Equal(t, cfg.DefaultRowCount, m.RowCount())
}

func TestUpdateCostAndRowCountInnerJoinAppliesSelectivity(t *testing.T) {
	mem := memo.NewMemo()
	cfg := cost.DefaultConfig()
	sel := cost.NewSelectivityTable()
	require.NoError(t, sel.Set("t1", "t2", 0.001))

	f1, f2 := uint64(100), uint64(200)
	left := mem.GetOrIntern(memo.TableScanOp{Table: "t1", Fetch: &f1}, nil)
	right := mem.GetOrIntern(memo.TableScanOp{Table: "t2", Fetch: &f2}, nil)

	for _, gid := range []memo.GroupID{left, right} {
		g := mem.Group(gid)
		m := g.StartExpression()
		m.UpdateCostAndRowCount(mem, cost.DefaultCoster{}, cfg, sel)
		g.PushEquivalent(m)
		g.MarkExplored()
	}

	on := []lqp.EqPair{{Left: lqp.Column{Table: "t1", Name: "a1"}, Right: lqp.Column{Table: "t2", Name: "a2"}}}
	joinGid := mem.GetOrIntern(memo.InnerJoinOp{On: on}, []memo.GroupID{left, right})
	joinExpr := mem.Group(joinGid).StartExpression()
	joinExpr.UpdateCostAndRowCount(mem, cost.DefaultCoster{}, cfg, sel)

	// 100 * 200 * 0.001 = 20
	require.Equal(t, uint64(20), joinExpr.RowCount())
}

func TestMExprSchemaChasesThroughFilter(t *testing.T) {
	mem := memo.NewMemo()
	sch := lqp.Schema{{Table: "t1", Name: "a1"}}
	scanGid := mem.GetOrIntern(memo.TableScanOp{Table: "t1", Sch: sch}, nil)

	pred := lqp.BinaryExpr{Left: lqp.Column{Table: "t1", Name: "a1"}, Op: lqp.Gt, Right: lqp.Literal{Value: 0}}
	filterGid := mem.GetOrIntern(memo.FilterOp{Predicate: pred}, []memo.GroupID{scanGid})

	got, ok := mem.Group(filterGid).StartExpression().Schema(mem)
	require.True(t, ok)
	require.Equal(t, sch, got)
}

func TestMExprSchemaUnavailableForEmptyGroup(t *testing.T) {
	mem := memo.NewMemo()
	gid := mem.NewSourceGroup("x")
	_, ok := mem.GroupSchema(gid)
	require.False(t, ok)
}

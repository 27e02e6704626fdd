package memo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGroupStateMachine(t *testing.T) {
	start := &MExpr{Op: TableScanOp{Table: "t1"}, fingerprint: 1, cost: math.Inf(1), rowCount: maxRowCount}
	g := newGroup(1, start)

	require.False(t, g.Explored())
	require.Equal(t, math.Inf(1), g.Cost(), "an unexplored group reports +Inf cost, never 0.0")

	m, ok := g.PopUnexplored()
	require.True(t, ok)
	require.Same(t, start, m)

	_, ok = g.PopUnexplored()
	require.False(t, ok, "queue must drain to empty")

	m.rowCount = 100
	m.cost = 4.0
	g.PushEquivalent(m)
	g.MarkExplored()

	require.True(t, g.Explored())
	require.Equal(t, 4.0, g.Cost())
	require.Equal(t, uint64(100), g.RowCount())
	require.Same(t, m, g.CheapestLogicalExpression())
}

func TestGroupCheapestAmongEquivalents(t *testing.T) {
	cheap := &MExpr{Op: TableScanOp{}, fingerprint: 1, cost: 2.0, rowCount: 10}
	expensive := &MExpr{Op: TableScanOp{}, fingerprint: 2, cost: 9.0, rowCount: 10}

	g := newGroup(1, cheap)
	g.PushEquivalent(cheap)
	g.PushEquivalent(expensive)
	g.MarkExplored()

	require.Same(t, cheap, g.CheapestLogicalExpression())
	require.Equal(t, 2.0, g.Cost())
}

func TestSourceGroupHash(t *testing.T) {
	g := newSourceGroup(1, "abc")
	require.True(t, g.IsSource())
	require.Equal(t, "abc", g.SourceNodeID())
	require.Equal(t, sourceFingerprint("abc"), g.Hash())
}

package xform

import (
	"fmt"
	"strings"

	"github.com/aaneja/cascadesopt/memo"
)

// CheapestTree renders the plan formed by recursively choosing each group's
// cheapest logical expression.
func CheapestTree(mem *memo.Memo, gid memo.GroupID) string {
	g := mem.Group(gid)
	if g.IsSource() {
		return g.SourceNodeID()
	}
	cheapest := g.CheapestLogicalExpression()
	if cheapest == nil {
		return "<none>"
	}
	return renderMExpr(mem, cheapest)
}

func renderMExpr(mem *memo.Memo, m *memo.MExpr) string {
	label := fmt.Sprintf("%s, Cost %.2f, RowCount %d", describeMExprOp(m), m.Cost(), m.RowCount())
	if len(m.Operands) == 0 {
		return label
	}
	var b strings.Builder
	b.WriteString(label)
	for _, childID := range m.Operands {
		child := CheapestTree(mem, childID)
		for _, line := range strings.Split(child, "\n") {
			b.WriteByte('\n')
			b.WriteString("    -> ")
			b.WriteString(line)
		}
	}
	return b.String()
}

// AllTrees enumerates the full cross product of equivalent expressions
// rooted at gid. Diagnostic only - never consulted by the optimizer itself,
// only by the CLI's optional -write-trees dump.
func AllTrees(mem *memo.Memo, gid memo.GroupID) []string {
	g := mem.Group(gid)
	if g.IsSource() {
		return []string{g.SourceNodeID()}
	}

	var out []string
	for _, m := range g.Equivalent() {
		childLists := make([][]string, len(m.Operands))
		for i, childID := range m.Operands {
			childLists[i] = AllTrees(mem, childID)
		}
		for _, combo := range cartesianProduct(childLists) {
			out = append(out, fmt.Sprintf("(%s %s)", describeMExprOp(m), strings.Join(combo, " ")))
		}
	}
	return out
}

func cartesianProduct(lists [][]string) [][]string {
	if len(lists) == 0 {
		return [][]string{{}}
	}
	rest := cartesianProduct(lists[1:])
	var out [][]string
	for _, head := range lists[0] {
		for _, tail := range rest {
			combo := make([]string, 0, len(tail)+1)
			combo = append(combo, head)
			combo = append(combo, tail...)
			out = append(out, combo)
		}
	}
	return out
}

// CountTrees returns the number of distinct trees reachable from gid without
// materializing them: the product of each child's tree count, summed across
// equivalent expressions. Grounded on
// cascades/util.rs::get_all_possible_trees_count, kept as a cheap
// termination sanity check rather than a full enumeration.
func CountTrees(mem *memo.Memo, gid memo.GroupID) uint64 {
	g := mem.Group(gid)
	if g.IsSource() {
		return 1
	}
	var total uint64
	for _, m := range g.Equivalent() {
		count := uint64(1)
		for _, childID := range m.Operands {
			count *= CountTrees(mem, childID)
		}
		total += count
	}
	return total
}

func describeMExprOp(m *memo.MExpr) string {
	switch t := m.Op.(type) {
	case memo.TableScanOp:
		return "tablescan: " + t.Table
	case memo.ProjectionOp:
		return "projection"
	case memo.FilterOp:
		return "filter"
	case memo.InnerJoinOp:
		return "innerjoin"
	default:
		return "unknown"
	}
}

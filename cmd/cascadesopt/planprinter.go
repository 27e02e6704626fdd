package main

import (
	"fmt"
	"strings"

	"github.com/aaneja/cascadesopt/lqp"
)

// indentPrint renders a plan tree with two-space indentation per depth,
// grounded on planprinter.rs's depth-tracking TreeNodeVisitor.
func indentPrint(n lqp.Node, depth int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(describe(n))
	for _, c := range n.Children() {
		b.WriteByte('\n')
		b.WriteString(indentPrint(c, depth+1))
	}
	return b.String()
}

func describe(n lqp.Node) string {
	switch t := n.(type) {
	case *lqp.TableScan:
		return fmt.Sprintf("TableScan: %s", t.Table)
	case *lqp.Projection:
		return "Projection"
	case *lqp.Filter:
		return fmt.Sprintf("Filter: %s", t.Predicate)
	case *lqp.Join:
		return fmt.Sprintf("Join: %s, on=%v", t.JoinType, t.On)
	default:
		return "Node"
	}
}

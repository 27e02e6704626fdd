// Command cascadesopt builds a synthetic left-deep join plan over N tables,
// interns it into a memo, explores it with the join commutativity and
// associativity rules, and prints the cheapest plan it finds. Mirrors the
// original Rust project's main.rs driver.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"strings"
	"time"

	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"

	"github.com/aaneja/cascadesopt/cost"
	"github.com/aaneja/cascadesopt/lqp"
	"github.com/aaneja/cascadesopt/memo"
	"github.com/aaneja/cascadesopt/xform"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	writeTrees := flag.String("write-trees", "", "optional path to dump every equivalent tree, for diagnostics")
	selectivityFile := flag.String("selectivity-file", "", "optional YAML file overriding the default selectivity table")
	flag.Parse()

	log := logrus.New()
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}

	rowCounts, err := parseRowCounts(flag.Arg(0))
	if err != nil {
		log.Fatalf("invalid row counts: %v", err)
	}

	sel := cost.DefaultSelectivityTable()
	if *selectivityFile != "" {
		if err := loadSelectivityOverrides(sel, *selectivityFile); err != nil {
			log.Fatalf("loading selectivity overrides: %v", err)
		}
	}

	plan := buildLeftDeepPlan(rowCounts)
	fmt.Println("Input plan:")
	fmt.Println(indentPrint(plan, 0))

	mem := memo.NewMemo()
	root, err := mem.InternPlan(plan)
	if err != nil {
		log.Fatalf("interning plan: %v", err)
	}

	fmt.Println("Memo before exploration:")
	fmt.Print(mem.String())

	runID := uuid.NewV4()
	driver := xform.NewDriver(mem, cost.DefaultConfig(), sel)
	driver.Log = log

	start := time.Now()
	driver.Explore(root)
	elapsed := time.Since(start)

	fmt.Println("Memo after exploration:")
	fmt.Print(mem.String())

	fmt.Printf("optimizer run %s completed in %s (%d groups, %d trees)\n",
		runID.String(), elapsed, len(mem.UniqueGroups()), xform.CountTrees(mem, root))

	fmt.Println("Cheapest plan:")
	fmt.Println(xform.CheapestTree(mem, root))

	if *writeTrees != "" {
		trees := xform.AllTrees(mem, root)
		if err := ioutil.WriteFile(*writeTrees, []byte(strings.Join(trees, "\n")), 0o644); err != nil {
			log.Fatalf("writing trees: %v", err)
		}
	}
}

// parseRowCounts parses a comma-separated list of table row counts, e.g.
// "100,200,50". An empty argument defaults to a single table of 4 rows.
func parseRowCounts(arg string) ([]uint64, error) {
	if arg == "" {
		return []uint64{4}, nil
	}
	parts := strings.Split(arg, ",")
	out := make([]uint64, 0, len(parts))
	for _, p := range parts {
		n, err := cast.ToUint64E(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid row count %q: %w", p, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// buildLeftDeepPlan builds SELECT 1 FROM t1 JOIN t2 ON t1.a1=t2.a2 JOIN t3
// ON t2.a2=t3.a3 ... over the given per-table row counts, mirroring
// cascades/test_utils.rs::generate_logical_plan.
func buildLeftDeepPlan(rowCounts []uint64) lqp.Node {
	var plan lqp.Node
	for i, rc := range rowCounts {
		table := fmt.Sprintf("t%d", i+1)
		col := fmt.Sprintf("a%d", i+1)
		fetch := rc
		scan := &lqp.TableScan{
			Table: table,
			Sch:   lqp.Schema{{Table: table, Name: col, Type: lqp.Int64}},
			Fetch: &fetch,
		}

		if plan == nil {
			plan = scan
			continue
		}

		prevTable := fmt.Sprintf("t%d", i)
		prevCol := fmt.Sprintf("a%d", i)
		on := []lqp.EqPair{{
			Left:  lqp.Column{Table: prevTable, Name: prevCol},
			Right: lqp.Column{Table: table, Name: col},
		}}
		sch := lqp.BuildJoinSchema(plan.Schema(), scan.Schema(), lqp.InnerJoinType)
		plan = &lqp.Join{
			Left: plan, Right: scan, JoinType: lqp.InnerJoinType,
			On: on, Sch: sch,
		}
	}

	return &lqp.Projection{
		Exprs: []lqp.Expr{lqp.Literal{Value: 1}},
		Input: plan,
		Sch:   lqp.Schema{{Name: "1", Type: lqp.Int64}},
	}
}

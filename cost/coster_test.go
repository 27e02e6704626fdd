package cost_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aaneja/cascadesopt/cost"
)

func TestDefaultCosterTableScan(t *testing.T) {
	cfg := cost.DefaultConfig()
	fetch := uint64(4)

	tests := []struct {
		name     string
		fetch    *uint64
		wantRows uint64
	}{
		{name: "explicit fetch", fetch: &fetch, wantRows: 4},
		{name: "no fetch uses default row count", fetch: nil, wantRows: cfg.DefaultRowCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc, c := cost.DefaultCoster{}.Compute(cost.Candidate{Kind: cost.TableScanKind, Fetch: tt.fetch}, cfg, cost.NewSelectivityTable())
			require.Equal(t, tt.wantRows, rc)
			require.Equal(t, float64(tt.wantRows), c)
		})
	}
}

func TestDefaultCosterInnerJoinSelectivity(t *testing.T) {
	cfg := cost.DefaultConfig()
	sel := cost.NewSelectivityTable()
	require.NoError(t, sel.Set("t1", "t2", 0.001))

	rc, _ := cost.DefaultCoster{}.Compute(cost.Candidate{
		Kind:           cost.InnerJoinKind,
		ChildRowCounts: []uint64{100, 200},
		ChildCosts:     []float64{100, 200},
		JoinTablePairs: []cost.TablePair{{A: "t1", B: "t2"}},
	}, cfg, sel)

	require.Equal(t, uint64(20), rc)
}

func TestDefaultCosterInnerJoinDefaultsToCrossProduct(t *testing.T) {
	cfg := cost.DefaultConfig()
	sel := cost.NewSelectivityTable()

	rc, _ := cost.DefaultCoster{}.Compute(cost.Candidate{
		Kind:           cost.InnerJoinKind,
		ChildRowCounts: []uint64{10, 20},
		ChildCosts:     []float64{10, 20},
	}, cfg, sel)

	require.Equal(t, uint64(200), rc, "an unknown table pair defaults to selectivity 1.0 (cross product)")
}

func TestSelectivityTableUnordered(t *testing.T) {
	sel := cost.NewSelectivityTable()
	require.NoError(t, sel.Set("t1", "t2", 0.5))

	v, ok := sel.Lookup("t2", "t1")
	require.True(t, ok)
	require.Equal(t, 0.5, v)
}

func TestSelectivityTableRejectsOutOfRange(t *testing.T) {
	sel := cost.NewSelectivityTable()
	require.Error(t, sel.Set("t1", "t2", 1.5))
}

func TestNewConfigOptions(t *testing.T) {
	cfg := cost.NewConfig(cost.WithDefaultRowCount(50), cost.WithJoinCostPerRow(0.5))
	require.Equal(t, uint64(50), cfg.DefaultRowCount)
	require.Equal(t, 0.5, cfg.JoinCostPerRow)
	require.Equal(t, cost.DefaultConfig().ProjectCostPerRow, cfg.ProjectCostPerRow)
}

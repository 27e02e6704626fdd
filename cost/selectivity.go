package cost

import "github.com/pkg/errors"

// TablePair is an unordered pair of table names, the key a join's
// selectivity is looked up by.
type TablePair struct {
	A, B string
}

func unorderedPair(a, b string) TablePair {
	if a > b {
		a, b = b, a
	}
	return TablePair{A: a, B: b}
}

// SelectivityTable maps unordered table-name pairs to a join selectivity.
// A pair absent from the table defaults to 1.0 (no filtering effect).
type SelectivityTable struct {
	values map[TablePair]float64
}

// NewSelectivityTable returns an empty table; every lookup defaults to 1.0.
func NewSelectivityTable() *SelectivityTable {
	return &SelectivityTable{values: make(map[TablePair]float64)}
}

// Set records the selectivity for the (unordered) pair of tables.
func (s *SelectivityTable) Set(a, b string, selectivity float64) error {
	if selectivity < 0 || selectivity > 1 {
		return errors.Errorf("selectivity for %s/%s out of range [0,1]: %v", a, b, selectivity)
	}
	s.values[unorderedPair(a, b)] = selectivity
	return nil
}

// Lookup returns the recorded selectivity for the pair, if any.
func (s *SelectivityTable) Lookup(a, b string) (float64, bool) {
	v, ok := s.values[unorderedPair(a, b)]
	return v, ok
}

// DefaultSelectivityTable seeds a couple of illustrative entries; every
// other pair still defaults to 1.0.
func DefaultSelectivityTable() *SelectivityTable {
	t := NewSelectivityTable()
	_ = t.Set("t1", "t2", 0.001)
	_ = t.Set("t4", "t5", 0.1)
	return t
}

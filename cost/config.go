// Package cost holds the cost/row-count model: the tunable constants, the
// selectivity table, and a swappable Coster so the arithmetic can be
// replaced without touching the memo (see DESIGN.md for prior-art
// grounding).
package cost

// Config carries the tunable constants the cost model uses.
type Config struct {
	DefaultRowCount   uint64
	ProjectCostPerRow float64
	FilterCostPerRow  float64
	JoinCostPerRow    float64
}

// DefaultConfig returns the module's baseline constants.
func DefaultConfig() Config {
	return Config{
		DefaultRowCount:   1000,
		ProjectCostPerRow: 0.01,
		FilterCostPerRow:  0.01,
		JoinCostPerRow:    0.02,
	}
}

// Option mutates a Config under construction.
type Option func(*Config)

func WithDefaultRowCount(n uint64) Option    { return func(c *Config) { c.DefaultRowCount = n } }
func WithProjectCostPerRow(v float64) Option { return func(c *Config) { c.ProjectCostPerRow = v } }
func WithFilterCostPerRow(v float64) Option  { return func(c *Config) { c.FilterCostPerRow = v } }
func WithJoinCostPerRow(v float64) Option    { return func(c *Config) { c.JoinCostPerRow = v } }

// NewConfig builds a Config from DefaultConfig plus any overrides.
func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

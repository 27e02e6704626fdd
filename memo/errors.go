package memo

import "gopkg.in/src-d/go-errors.v1"

// ErrUnsupportedOperator is fatal: InternPlan refuses to walk a node type
// outside the closed set this module knows how to memoize.
var ErrUnsupportedOperator = errors.NewKind("unsupported logical plan operator: %s")

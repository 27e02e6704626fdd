package xform

import "gopkg.in/src-d/go-errors.v1"

// errSchemaUnavailable and errPredicateSplitFailure are non-fatal: the
// associativity rule logs and skips the offending variant rather than
// aborting exploration, unlike UnsupportedOperator which is fatal at intern
// time.
var (
	errSchemaUnavailable     = errors.NewKind("schema unavailable for group %d")
	errPredicateSplitFailure = errors.NewKind("predicate split failed: %s")
)

// Package lqp provides the logical-query-plan node and expression types this
// module optimizes over. It plays the role datafusion_expr::LogicalPlan plays
// upstream: a closed set of plain data definitions plus a couple of pure
// schema-resolution oracles, with no parsing, catalog, or execution attached.
package lqp

import "strings"

// DataType tags the scalar type of a Field. The optimizer never interprets
// these beyond carrying them through schemas; no expression evaluation
// happens in this package.
type DataType int

const (
	Int64 DataType = iota
	Varchar
	Bool
)

func (t DataType) String() string {
	switch t {
	case Int64:
		return "int64"
	case Varchar:
		return "varchar"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// Field is a single column in a Schema, qualified by its source table.
type Field struct {
	Table string
	Name  string
	Type  DataType
}

// Schema is an ordered list of fields, the concatenation unit for join
// schemas and the resolution target for column references.
type Schema []Field

func (s Schema) String() string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Table + "." + f.Name
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// Contains reports whether the schema carries a field with the given
// table-qualified name.
func (s Schema) Contains(table, name string) bool {
	for _, f := range s {
		if f.Table == table && f.Name == name {
			return true
		}
	}
	return false
}

package lqp

// BuildJoinSchema concatenates two input schemas into the schema of their
// join, mirroring datafusion_expr::logical_plan::builder::build_join_schema.
func BuildJoinSchema(left, right Schema, _ JoinType) Schema {
	out := make(Schema, 0, len(left)+len(right))
	out = append(out, left...)
	out = append(out, right...)
	return out
}

// resolvesToSchema reports whether every column reachable from e belongs to
// s. Literals resolve trivially anywhere.
func resolvesToSchema(e Expr, s Schema) bool {
	switch t := e.(type) {
	case Column:
		return s.Contains(t.Table, t.Name)
	case Literal:
		return true
	case BinaryExpr:
		return resolvesToSchema(t.Left, s) && resolvesToSchema(t.Right, s)
	default:
		return false
	}
}

// FindValidEquijoinKeyPair decides which side of an equality predicate
// belongs to leftSchema and which to rightSchema, mirroring
// datafusion::utils::find_valid_equijoin_key_pair. On success it normalizes
// the result so the leftSchema side is returned first.
func FindValidEquijoinKeyPair(left, right Expr, leftSchema, rightSchema Schema) (Expr, Expr, bool) {
	if resolvesToSchema(left, leftSchema) && resolvesToSchema(right, rightSchema) {
		return left, right, true
	}
	if resolvesToSchema(right, leftSchema) && resolvesToSchema(left, rightSchema) {
		return right, left, true
	}
	return nil, nil, false
}

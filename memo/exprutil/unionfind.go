// Package exprutil implements the equality-inference machinery the join
// associativity rule needs: a union-find over lqp.Expr values and the
// predicate-splitting helpers built on top of it.
package exprutil

import "github.com/aaneja/cascadesopt/lqp"

// UnionFind groups lqp.Expr values into equivalence classes, keyed by
// structural equality - lqp's expression types are plain comparable structs,
// so an Expr works directly as a map key without a canonical string form.
type UnionFind struct {
	parent map[lqp.Expr]lqp.Expr
	rank   map[lqp.Expr]int
}

// NewUnionFind returns an empty union-find; expressions are registered
// lazily on first Find/Union.
func NewUnionFind() *UnionFind {
	return &UnionFind{
		parent: make(map[lqp.Expr]lqp.Expr),
		rank:   make(map[lqp.Expr]int),
	}
}

// Find returns the representative of e's equivalence class, path-compressing
// along the way. An expression seen for the first time is its own root.
func (u *UnionFind) Find(e lqp.Expr) lqp.Expr {
	p, ok := u.parent[e]
	if !ok {
		u.parent[e] = e
		u.rank[e] = 0
		return e
	}
	if p == e {
		return e
	}
	root := u.Find(p)
	u.parent[e] = root
	return root
}

// Union merges the equivalence classes of a and b, by rank.
func (u *UnionFind) Union(a, b lqp.Expr) {
	ra, rb := u.Find(a), u.Find(b)
	if ra == rb {
		return
	}
	switch {
	case u.rank[ra] < u.rank[rb]:
		u.parent[ra] = rb
	case u.rank[ra] > u.rank[rb]:
		u.parent[rb] = ra
	default:
		u.parent[rb] = ra
		u.rank[ra]++
	}
}

// Classes returns every equivalence class seen so far, keyed by root.
// Singleton classes (expressions never unioned with anything) are included.
func (u *UnionFind) Classes() map[lqp.Expr][]lqp.Expr {
	out := make(map[lqp.Expr][]lqp.Expr)
	for e := range u.parent {
		r := u.Find(e)
		out[r] = append(out[r], e)
	}
	return out
}

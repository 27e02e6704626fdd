package memo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aaneja/cascadesopt/lqp"
)

// Memo is the content-addressed store of groups: a fingerprint-keyed lookup
// table over an arena of Groups indexed by GroupID. Arena+ID (rather than
// shared-ownership handles) gives a plain indexed table with no aliasing
// hazards - a GroupID is just an index, safe to copy and compare - see
// DESIGN.md for prior-art grounding.
type Memo struct {
	byFingerprint map[Fingerprint]GroupID
	groups        []*Group // index 0 reserved, unused
}

// NewMemo returns an empty memo.
func NewMemo() *Memo {
	return &Memo{
		byFingerprint: make(map[Fingerprint]GroupID),
		groups:        make([]*Group, 1),
	}
}

// Group returns the group for id. Panics on an out-of-range id, same as a
// slice index - GroupIDs are only ever handed out by this memo.
func (m *Memo) Group(id GroupID) *Group {
	return m.groups[id]
}

// UniqueGroups returns every group currently in the memo, in creation order.
func (m *Memo) UniqueGroups() []*Group {
	out := make([]*Group, 0, len(m.groups)-1)
	out = append(out, m.groups[1:]...)
	return out
}

func (m *Memo) nextID() GroupID {
	return GroupID(len(m.groups))
}

func (m *Memo) appendGroup(g *Group) {
	m.groups = append(m.groups, g)
}

func (m *Memo) fingerprintOf(gid GroupID) Fingerprint {
	return m.groups[gid].Hash()
}

// NewCandidate builds an MExpr value with its fingerprint computed, without
// registering it anywhere in the memo. Callers decide what to do with it:
// GetOrIntern to give it its own independent group, or RegisterDerived to
// attach it to an existing group's equivalence class.
func (m *Memo) NewCandidate(op Op, operands []GroupID) *MExpr {
	fp := computeFingerprint(op, operands, m.fingerprintOf)
	return &MExpr{Op: op, Operands: operands, fingerprint: fp, cost: math.Inf(1), rowCount: maxRowCount}
}

// GetOrIntern returns the group already holding an MExpr with this
// fingerprint, or creates a new, independent group seeded with a fresh
// candidate. Used for the initial plan walk (InternPlan) and for any
// subexpression a rule builds that is not itself a direct derivation of an
// existing group (e.g. the inner B join C built by join associativity).
func (m *Memo) GetOrIntern(op Op, operands []GroupID) GroupID {
	cand := m.NewCandidate(op, operands)
	if gid, ok := m.byFingerprint[cand.fingerprint]; ok {
		return gid
	}
	id := m.nextID()
	g := newGroup(id, cand)
	m.appendGroup(g)
	m.byFingerprint[cand.fingerprint] = id
	return id
}

// RegisterDerived attaches a rule-derived candidate to origin's equivalence
// class, unless a group already exists for its fingerprint - the guard that
// keeps exploration from growing the same equivalence class forever (every
// commutative/associative variant of one starting expression collapses into
// a single group; see DESIGN.md Open Question on register_derived binding).
// Returns true if the candidate was newly queued.
func (m *Memo) RegisterDerived(origin GroupID, cand *MExpr) bool {
	if _, ok := m.byFingerprint[cand.fingerprint]; ok {
		return false
	}
	m.byFingerprint[cand.fingerprint] = origin
	m.groups[origin].PushUnexplored(cand)
	return true
}

// NewSourceGroup interns a leaf group identified only by a string id,
// bypassing the Op/MExpr path entirely. Exists for the toy join-order tests
// that build trees directly from table-name strings rather than from lqp
// plans; InternPlan never calls this.
func (m *Memo) NewSourceGroup(nodeID string) GroupID {
	fp := sourceFingerprint(nodeID)
	if gid, ok := m.byFingerprint[fp]; ok {
		return gid
	}
	id := m.nextID()
	g := newSourceGroup(id, nodeID)
	m.appendGroup(g)
	m.byFingerprint[fp] = id
	return id
}

// GroupSchema resolves the schema of the group's start expression, chasing
// through pass-through operators. Returns false if the group has no
// resolvable schema (a source/leaf group, or a pass-through chain bottoming
// out before reaching a schema-carrying operator) - the SchemaUnavailable
// non-fatal case callers must handle by skipping the rule variant.
func (m *Memo) GroupSchema(gid GroupID) (lqp.Schema, bool) {
	g := m.groups[gid]
	if g.IsSource() || g.StartExpression() == nil {
		return nil, false
	}
	return g.StartExpression().Schema(m)
}

// InternPlan walks an lqp.Node tree bottom-up, interning each node as an
// MExpr and returning the GroupID of the root. Mirrors
// cascades::gen_group_logical_plan: Projection/Filter/Join recurse into
// their inputs, TableScan has none, and any other node kind is a fatal
// ErrUnsupportedOperator.
func (m *Memo) InternPlan(n lqp.Node) (GroupID, error) {
	switch t := n.(type) {
	case *lqp.TableScan:
		op := TableScanOp{Table: t.Table, Sch: t.Sch, Fetch: t.Fetch}
		return m.GetOrIntern(op, nil), nil

	case *lqp.Projection:
		childID, err := m.InternPlan(t.Input)
		if err != nil {
			return 0, err
		}
		op := ProjectionOp{Exprs: t.Exprs, Sch: t.Sch}
		return m.GetOrIntern(op, []GroupID{childID}), nil

	case *lqp.Filter:
		childID, err := m.InternPlan(t.Input)
		if err != nil {
			return 0, err
		}
		op := FilterOp{Predicate: t.Predicate}
		return m.GetOrIntern(op, []GroupID{childID}), nil

	case *lqp.Join:
		leftID, err := m.InternPlan(t.Left)
		if err != nil {
			return 0, err
		}
		rightID, err := m.InternPlan(t.Right)
		if err != nil {
			return 0, err
		}
		op := InnerJoinOp{On: t.On, Filter: t.Filter, Sch: t.Sch}
		return m.GetOrIntern(op, []GroupID{leftID, rightID}), nil

	default:
		return 0, ErrUnsupportedOperator.New(fmt.Sprintf("%T", n))
	}
}

// String renders every group and its equivalent expressions, one line per
// group listing each equivalent MExpr's operator and operand GroupIDs - see
// DESIGN.md for prior-art grounding.
func (m *Memo) String() string {
	var b strings.Builder
	b.WriteString("memo:\n")
	for i := 1; i < len(m.groups); i++ {
		g := m.groups[i]
		b.WriteString(fmt.Sprintf("  G%d: %s\n", i, formatGroup(g)))
	}
	return b.String()
}

func formatGroup(g *Group) string {
	if g.IsSource() {
		return fmt.Sprintf("(source: %s)", g.SourceNodeID())
	}
	exprs := g.Equivalent()
	if len(exprs) == 0 && g.StartExpression() != nil {
		exprs = []*MExpr{g.StartExpression()}
	}
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = formatMExpr(e)
	}
	return strings.Join(parts, " ")
}

func formatMExpr(m *MExpr) string {
	if len(m.Operands) == 0 {
		return fmt.Sprintf("(%s)", describeOp(m.Op))
	}
	operands := make([]string, len(m.Operands))
	for i, gid := range m.Operands {
		operands[i] = strconv.Itoa(int(gid))
	}
	return fmt.Sprintf("(%s %s)", describeOp(m.Op), strings.Join(operands, " "))
}

func describeOp(op Op) string {
	switch t := op.(type) {
	case TableScanOp:
		return "tablescan: " + t.Table
	case ProjectionOp:
		return "projection"
	case FilterOp:
		return "filter"
	case InnerJoinOp:
		return "innerjoin"
	default:
		return "unknown"
	}
}

// Package ctx implements the context graph (spec §4.3–§4.4): the tree of
// scopes, declarations, and per-call evaluation blocks that the annotation
// pass builds and queries. It is grounded in the teacher's own scope-chain
// shape (internal/evaluator's Environment: a store plus an outer pointer)
// generalized to the richer node kinds this domain needs.
package ctx

import (
	"fmt"

	"github.com/coalmine/jsflow/internal/jsast"
	"github.com/coalmine/jsflow/internal/value"
)

// Node is the common protocol every context-tree member satisfies: parent
// link, children keyed by AST range, condition stack, and raise bubbling
// (spec §3's Context entity, §4.3's StructuralNode).
type Node interface {
	Parent() Node
	SetParent(Node)
	AddChild(ast jsast.Node, c Node)
	Find(ast jsast.Node) (Node, bool)
	AddCondition(v *value.Value)
	PopCondition()
	Condition() *value.Value
	AddRaised(r *Raised)
}

// Binding is anything a scope Lookup can resolve a name to.
type Binding interface {
	Node
	Name() string
}

// Raised is the context-level record of a potential runtime exception,
// distinct from value.Raised (the in-lattice payload a raised-kind Item
// carries): this one additionally remembers the path condition it was
// observed under, per spec §3's "{exception, message, condition}".
type Raised struct {
	Exception string
	Message   string
	Condition *value.Value
}

func rangeKey(n jsast.Node) string {
	r := n.Range()
	return fmt.Sprintf("%d.%d", r[0], r[1])
}

// StructuralNode is embedded by every concrete context node and supplies
// the shared plumbing spec §4.3 describes.
type StructuralNode struct {
	parent     Node
	children   map[string]Node
	conditions []*value.Value
	raised     map[string][]*Raised
}

func (s *StructuralNode) Parent() Node     { return s.parent }
func (s *StructuralNode) SetParent(p Node) { s.parent = p }

func (s *StructuralNode) AddChild(ast jsast.Node, c Node) {
	if s.children == nil {
		s.children = make(map[string]Node)
	}
	s.children[rangeKey(ast)] = c
}

func (s *StructuralNode) Find(ast jsast.Node) (Node, bool) {
	c, ok := s.children[rangeKey(ast)]
	return c, ok
}

// mergeConditions concatenates two conditions' item lists. Value.True
// requires every item truthy, so the concatenation is exactly logical AND
// of the two conditions without needing a dedicated boolean combinator.
func mergeConditions(a, b *value.Value) *value.Value {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	merged := value.Value{Items: append(append([]value.Item{}, a.Items...), b.Items...)}
	return &merged
}

func (s *StructuralNode) currentCondition() *value.Value {
	if len(s.conditions) == 0 {
		return nil
	}
	return s.conditions[len(s.conditions)-1]
}

// Condition returns this node's own pushed condition if it has one,
// otherwise the nearest enclosing one — so a freshly created child scope
// (e.g. a nested BlockStatement's Block) still sees the branch condition
// its lexical parent pushed, without needing its own stack pushed to match.
func (s *StructuralNode) Condition() *value.Value {
	if c := s.currentCondition(); c != nil {
		return c
	}
	if s.parent != nil {
		return s.parent.Condition()
	}
	return nil
}

func (s *StructuralNode) AddCondition(v *value.Value) {
	s.conditions = append(s.conditions, mergeConditions(s.currentCondition(), v))
}

func (s *StructuralNode) PopCondition() {
	if len(s.conditions) > 0 {
		s.conditions = s.conditions[:len(s.conditions)-1]
	}
}

func (s *StructuralNode) AddRaised(r *Raised) {
	if s.raised == nil {
		s.raised = make(map[string][]*Raised)
	}
	s.raised[r.Exception] = append(s.raised[r.Exception], r)
	if s.parent != nil {
		s.parent.AddRaised(r)
	}
}

// Raises returns every raised record attached directly to this node
// (spec §6's Program "raises" rendering, §9 supplemented feature).
func (s *StructuralNode) Raises() map[string][]*Raised { return s.raised }

// lookupParent is the base-case fallback: a plain StructuralNode (not a
// Block) has no names of its own, so Lookup with recurse set walks to the
// parent. Concrete named scopes (Block and its descendants) shadow this
// with their own Lookup that checks local tables first.
func (s *StructuralNode) lookupParent(name string, recurse bool) (Binding, bool) {
	if !recurse || s.parent == nil {
		return nil, false
	}
	if b, ok := s.parent.(interface {
		Lookup(string, bool) (Binding, bool)
	}); ok {
		return b.Lookup(name, recurse)
	}
	return nil, false
}

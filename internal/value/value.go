// Package value implements the abstract-value lattice described in
// spec.md §4.1: a Value is an unordered disjunction of (kind, payload,
// condition) items, and every evaluator operation works by producing new
// item lists from old ones rather than by picking a single concrete
// value.
package value

import "github.com/coalmine/jsflow/internal/jsast"

// Kind is one of the value kinds a single item can carry.
type Kind string

const (
	KindInt       Kind = "int"
	KindFloat     Kind = "float"
	KindString    Kind = "string"
	KindBool      Kind = "bool"
	KindVariant   Kind = "variant"
	KindReference Kind = "reference"
	KindRaised    Kind = "raised"
	KindRandom    Kind = "random"
)

// Reference is the minimal contract a class-instance payload satisfies so
// Value.Type can render it as "@ClassName". The full instance (method
// dispatch, property storage, call tallies) lives one layer up in package
// ctx; Value only ever holds it as an opaque handle.
type Reference interface {
	ClassName() string
}

// Payload is the per-item data. Exactly the fields relevant to Kind are
// meaningful; the rest are zero. Int/float/bool/variant/random values may
// be a scalar (Num) or a range (IsRange, Lo/Hi) — spec §4.1's "a scalar or
// a two-element range".
type Payload struct {
	IsRange bool
	Num     float64
	Lo, Hi  float64
	Str     string
	Ref     Reference
	Raised  *Raised
}

// Item is one (kind, payload, condition) triple. A nil Condition means the
// item is reachable unconditionally.
type Item struct {
	Kind      Kind
	Payload   Payload
	Condition *Value
}

// Value is a disjunction of Items: every possible abstract value an
// expression or variable might hold, each tagged with the path condition
// under which it arises.
type Value struct {
	Node  jsast.Node
	Items []Item
}

func scalarItem(node jsast.Node, kind Kind, p Payload, cond *Value) Value {
	return Value{Node: node, Items: []Item{{Kind: kind, Payload: p, Condition: cond}}}
}

func Int(node jsast.Node, v int64, cond *Value) Value {
	return scalarItem(node, KindInt, Payload{Num: float64(v)}, cond)
}

func Float(node jsast.Node, v float64, cond *Value) Value {
	return scalarItem(node, KindFloat, Payload{Num: v}, cond)
}

func String(node jsast.Node, v string, cond *Value) Value {
	return scalarItem(node, KindString, Payload{Str: v}, cond)
}

func Bool(node jsast.Node, v bool, cond *Value) Value {
	n := 0.0
	if v {
		n = 1.0
	}
	return scalarItem(node, KindBool, Payload{Num: n}, cond)
}

// Variant is the "type unknown, value unknown" placeholder. CallNode uses
// it for a parameter with no matching argument and as the result of a
// call past the call-depth bound.
func Variant(node jsast.Node, cond *Value) Value {
	return scalarItem(node, KindVariant, Payload{}, cond)
}

func RefValue(node jsast.Node, ref Reference, cond *Value) Value {
	return scalarItem(node, KindReference, Payload{Ref: ref}, cond)
}

func RaisedValue(node jsast.Node, r *Raised, cond *Value) Value {
	return scalarItem(node, KindRaised, Payload{Raised: r}, cond)
}

// Type returns the unique list of kinds present, with reference items
// rendered as "@<className>" (spec §4.1).
func (v Value) Type() []string {
	var ret []string
	seen := make(map[string]bool)
	for _, it := range v.Items {
		t := string(it.Kind)
		if it.Kind == KindReference && it.Payload.Ref != nil {
			t = "@" + it.Payload.Ref.ClassName()
		}
		if !seen[t] {
			seen[t] = true
			ret = append(ret, t)
		}
	}
	return ret
}

// True reports whether every item is truthy and none is raised.
func (v Value) True() bool {
	for _, it := range v.Items {
		if it.Kind == KindRaised {
			return false
		}
		if !it.truthy() {
			return false
		}
	}
	return true
}

// False reports whether every item is falsy or raised.
func (v Value) False() bool {
	for _, it := range v.Items {
		if it.Kind == KindRaised {
			continue
		}
		if it.truthy() {
			return false
		}
	}
	return true
}

// truthy mirrors the reference implementation's Python-truthiness-derived
// rules: a range payload is always truthy (it came from a non-empty list
// in the original, and list truthiness in Python ignores contents), a
// reference is always truthy (an object with no __bool__ override), and a
// bare variant (the untyped-parameter placeholder, an empty list in the
// original) is always falsy.
func (it Item) truthy() bool {
	switch it.Kind {
	case KindReference:
		return true
	case KindRandom:
		return true
	case KindVariant:
		return false
	}
	if it.Payload.IsRange {
		return true
	}
	switch it.Kind {
	case KindInt, KindFloat, KindBool:
		return it.Payload.Num != 0
	case KindString:
		return it.Payload.Str != ""
	}
	return false
}

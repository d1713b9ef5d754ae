package ctx

import "github.com/coalmine/jsflow/internal/value"

type methodTally struct {
	called              int
	calledConditionally map[string]*CondTally
}

// Reference is one abstract class instance: its own per-instance method
// call tallies and property values, delegating to its defining Class for
// shared/static lookups (spec §3, §4.2). It implements value.Reference so
// a reference-kind Item can hold it directly.
type Reference struct {
	StructuralNode

	Class      *Class
	Properties map[string]*Variable
	methods    map[string]*methodTally
}

func NewReference(class *Class) *Reference {
	return &Reference{
		Class:      class,
		Properties: make(map[string]*Variable),
		methods:    make(map[string]*methodTally),
	}
}

func (r *Reference) ClassName() string { return r.Class.Name() }

// LookupMember prefers properties, then delegates to the defining Class
// for methods and static members (spec §4.2).
func (r *Reference) LookupMember(name string) (Binding, bool) {
	if p, ok := r.Properties[name]; ok {
		return p, true
	}
	return r.Class.Lookup(name, false)
}

// RecordCall tallies a method call on this specific instance.
func (r *Reference) RecordCall(method string, cond *value.Value) {
	mt, ok := r.methods[method]
	if !ok {
		mt = &methodTally{calledConditionally: make(map[string]*CondTally)}
		r.methods[method] = mt
	}
	if cond == nil {
		mt.called++
		return
	}
	fp := conditionFingerprint(cond)
	ct, ok := mt.calledConditionally[fp]
	if !ok {
		ct = &CondTally{Condition: cond}
		mt.calledConditionally[fp] = ct
	}
	ct.Count++
}

func (r *Reference) MethodCalled(method string) int {
	if mt, ok := r.methods[method]; ok {
		return mt.called
	}
	return 0
}

// SetProperty creates or reuses a Variable keyed by name in r's
// properties (spec §4.2's "on assignment to obj.x, create or reuse a
// Variable keyed by x").
func (r *Reference) SetProperty(name string, v value.Value) {
	if existing, ok := r.Properties[name]; ok {
		existing.SetValue(v)
		return
	}
	prop := NewVariable(name, v)
	prop.SetParent(r)
	r.Properties[name] = prop
}

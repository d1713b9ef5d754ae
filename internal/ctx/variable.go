package ctx

import "github.com/coalmine/jsflow/internal/value"

// Variable is a binding holding one current Value (spec §3, §4.4).
type Variable struct {
	StructuralNode

	VarName    string
	Val        value.Value
	Annotation Annotation
}

func NewVariable(name string, v value.Value) *Variable {
	return &Variable{VarName: name, Val: v}
}

func (v *Variable) Name() string { return v.VarName }

func (v *Variable) SetValue(val value.Value) { v.Val = val }
func (v *Variable) Value() value.Value       { return v.Val }

func (v *Variable) ReturnsAnnotation() (string, bool) {
	return v.Annotation.ReturnsType, v.Annotation.HasReturns
}

// referencesOf returns every *Reference currently held among v's items.
func (v *Variable) referencesOf() []*Reference {
	var refs []*Reference
	for _, it := range v.Val.Items {
		if it.Kind != value.KindReference {
			continue
		}
		if ref, ok := it.Payload.Ref.(*Reference); ok {
			refs = append(refs, ref)
		}
	}
	return refs
}

// LookupMember pierces through every reference-kind item held in v's
// value, delegating the member lookup to each Reference in turn; failing
// that, it falls back to the enclosing Context (spec §4.4).
func (v *Variable) LookupMember(name string) (Binding, bool) {
	for _, ref := range v.referencesOf() {
		if b, ok := ref.LookupMember(name); ok {
			return b, true
		}
	}
	if v.Parent() != nil {
		return Lookup(v.Parent(), name, true)
	}
	return nil, false
}

// AddCall dispatches a method-call tally to every Reference in v's value
// (spec §4.4's Variable.add_call).
func (v *Variable) AddCall(method string, cond *value.Value) {
	for _, ref := range v.referencesOf() {
		ref.RecordCall(method, cond)
	}
}

// AddProperty dispatches a property write to every Reference in v's value
// (spec §4.4's Variable.add_property).
func (v *Variable) AddProperty(name string, val value.Value) {
	for _, ref := range v.referencesOf() {
		ref.SetProperty(name, val)
	}
}

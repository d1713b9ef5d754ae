package ctx

import (
	"fmt"
	"sort"

	"github.com/coalmine/jsflow/internal/jsast"
	"github.com/coalmine/jsflow/internal/value"
)

// CondTally is one entry of a Function's called_conditionally table: a
// path condition and how many call sites were reached under it.
type CondTally struct {
	Condition *value.Value
	Count     int
}

// conditionFingerprint gives two structurally-equal conditions the same
// key, so repeated calls under "the same" branch collapse into one tally
// entry instead of one per syntactic re-evaluation of the test.
func conditionFingerprint(v *value.Value) string {
	if v == nil {
		return ""
	}
	var b []byte
	for _, it := range v.Items {
		b = append(b, fmt.Sprintf("%s:%v:%t:%v:%v:%s;", it.Kind, it.Payload.Num, it.Payload.IsRange, it.Payload.Lo, it.Payload.Hi, it.Payload.Str)...)
	}
	return string(b)
}

// Annotation is the JSDoc-derived metadata attached to a declaration
// during expansion (spec §4.5's "annotate returns from the preceding
// block comment").
type Annotation struct {
	ReturnsType string
	HasReturns  bool
}

// Function is a declared callable: a Block (its own body forms a nested
// scope for closures over parameters) that additionally records call-site
// tallies (spec §3, §4.3's Function entity).
type Function struct {
	Block

	FuncName   string
	FuncDecl   jsast.Callable
	Annotation Annotation

	calls               map[string]bool
	called              int
	calledConditionally map[string]*CondTally
}

func NewFunction(name string, decl jsast.Callable) *Function {
	f := &Function{Block: newBlock(), FuncName: name, FuncDecl: decl}
	f.calls = make(map[string]bool)
	f.calledConditionally = make(map[string]*CondTally)
	f.stopInstantiationBubble = true
	return f
}

func (f *Function) Name() string { return f.FuncName }

func (f *Function) ReturnsAnnotation() (string, bool) {
	return f.Annotation.ReturnsType, f.Annotation.HasReturns
}

// RecordCall tallies one reached call site, deduped by AST node identity
// per spec §3's Function.calls set. cond nil means unconditional.
func (f *Function) RecordCall(site jsast.Node, cond *value.Value) {
	key := rangeKey(site)
	if f.calls[key] {
		return
	}
	f.calls[key] = true
	if cond == nil {
		f.called++
		return
	}
	fp := conditionFingerprint(cond)
	ct, ok := f.calledConditionally[fp]
	if !ok {
		ct = &CondTally{Condition: cond}
		f.calledConditionally[fp] = ct
	}
	ct.Count++
}

func (f *Function) Called() int { return f.called }

func (f *Function) CalledConditionally() []*CondTally {
	keys := make([]string, 0, len(f.calledConditionally))
	for k := range f.calledConditionally {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*CondTally, 0, len(keys))
	for _, k := range keys {
		out = append(out, f.calledConditionally[k])
	}
	return out
}

// InstancesOf reports how many instances of className are captured
// directly on this Function's own instantiation tally (it stops the
// bubble per spec §4.3).
func (f *Function) InstancesOf(className string) int {
	if ic, ok := f.Instantiates()[className]; ok {
		return ic.Instanced
	}
	return 0
}

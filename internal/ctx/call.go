package ctx

import (
	"github.com/coalmine/jsflow/internal/jsast"
	"github.com/coalmine/jsflow/internal/value"
)

// Evaluator is implemented by the annotation-pass interpreter (package
// eval). CallNode depends on it rather than importing eval directly,
// mirroring the reference implementation's pattern of handing the
// analyzer object itself down into the call path so it can recursively
// annotate a function body without the context layer knowing anything
// about expression evaluation.
type Evaluator interface {
	AnnotateBody(body *jsast.BlockStatement, scope Node)
}

// Callable is satisfied by Function and Method: anything CallNode can
// invoke.
type Callable interface {
	Binding
	Decl() jsast.Callable
	RecordCall(site jsast.Node, cond *value.Value)
}

func (f *Function) Decl() jsast.Callable { return f.FuncDecl }

// CallNode evaluates one call site against a resolved callee: binds
// arguments into a fresh FunctionBlock, recursively annotates the body,
// and aggregates returns (spec §4.7).
type CallNode struct {
	Site jsast.Node
}

// ValueOf runs the callee's body with params bound to args and this bound
// to thisVal (nil for plain function calls), returning the combined
// return value. program supplies the call-depth bound that resolves spec
// §9 Open Question 4.
func (cn *CallNode) ValueOf(callee Callable, thisVal *value.Value, args []value.Value, ev Evaluator, program *Program) value.Value {
	if program.CallDepth >= program.MaxCallDepth {
		return value.Variant(cn.Site, nil)
	}
	program.CallDepth++
	defer func() { program.CallDepth-- }()

	decl := callee.Decl()
	fb := NewFunctionBlock(callee)

	if thisVal != nil {
		thisVar := NewVariable("this", *thisVal)
		fb.AddVariable(fb, thisVar)
	}

	params := decl.Params()
	for i, param := range params {
		var argVal value.Value
		if i < len(args) {
			argVal = args[i]
		} else {
			argVal = value.Variant(param, nil)
		}
		pv := NewVariable(param.Name, argVal)
		fb.AddVariable(fb, pv)
	}

	if decl.FuncBody() != nil {
		ev.AnnotateBody(decl.FuncBody(), fb)
	}

	var annotated value.Annotated
	if fn, ok := any(callee).(value.Annotated); ok {
		annotated = fn
	}
	return value.Combine(annotated, fb.Returns(), true)
}

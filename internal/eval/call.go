package eval

import (
	"github.com/coalmine/jsflow/internal/ctx"
	"github.com/coalmine/jsflow/internal/jsast"
	"github.com/coalmine/jsflow/internal/value"
)

type instantiationAdder interface {
	AddInstantiation(string, int)
}

// resolveCalleeBinding resolves a CallExpression's callee without
// recording any call-site side effects — used by VariableDeclarator's
// `_typeOf` rule (spec §4.5) to read a callee's @returns annotation ahead
// of actually evaluating the call.
func (in *Interpreter) resolveCalleeBinding(n *jsast.CallExpression, scope ctx.Node) ctx.Binding {
	switch callee := n.Callee.(type) {
	case *jsast.MemberExpression:
		owner, ok := in.resolveObject(callee.Object, scope)
		if !ok {
			return nil
		}
		b, _ := owner.LookupMember(callee.Property.Name)
		return b
	case *jsast.Identifier:
		b, _ := ctx.Lookup(scope, callee.Name, true)
		return b
	default:
		return nil
	}
}

// evalCall implements spec §4.7's CallExpression semantics in full:
// callee resolution (raising ReferenceError on an unknown receiver),
// constructor dispatch, call tallying (instance vs. static), and the
// per-call-site CallNode evaluation.
func (in *Interpreter) evalCall(n *jsast.CallExpression, scope ctx.Node) value.Value {
	cond := scope.Condition()

	var thisVal *value.Value
	var ownerVar *ctx.Variable
	var calleeBinding ctx.Binding

	switch callee := n.Callee.(type) {
	case *jsast.MemberExpression:
		owner, ok := in.resolveObject(callee.Object, scope)
		if !ok {
			rr := &ctx.Raised{
				Exception: "ReferenceError",
				Message:   objectName(callee.Object) + " is not defined",
				Condition: cond,
			}
			scope.AddRaised(rr)
			return value.RaisedValue(n, value.NewRaised(rr.Exception, rr.Message), cond)
		}
		ownerVar = owner
		ownerVal := owner.Value()
		thisVal = &ownerVal
		b, found := owner.LookupMember(callee.Property.Name)
		if !found {
			return value.Value{}
		}
		calleeBinding = b
	case *jsast.Identifier:
		b, found := ctx.Lookup(scope, callee.Name, true)
		if !found {
			return value.Value{}
		}
		calleeBinding = b
	default:
		return value.Value{}
	}

	if calleeBinding == nil {
		return value.Value{}
	}

	args := in.evalArgs(n.Arguments, scope)

	switch callee := calleeBinding.(type) {
	case *ctx.Class:
		return in.evalConstructorCall(n, callee, args, scope)

	case *ctx.Method:
		callee.RecordCall(n, cond)
		if ownerVar != nil {
			ownerVar.AddCall(callee.Name(), cond)
		}
		propagateInstantiates(scope, &callee.Function)
		cn := &ctx.CallNode{Site: n}
		return cn.ValueOf(callee, thisVal, args, in, in.Program)

	case *ctx.Function:
		// Reached either via a bare identifier, or via a MemberExpression
		// resolving to a static method — in neither case does spec §4.7
		// want an instance-method call tally bumped.
		callee.RecordCall(n, cond)
		propagateInstantiates(scope, callee)
		cn := &ctx.CallNode{Site: n}
		return cn.ValueOf(callee, nil, args, in, in.Program)

	default:
		return value.Value{}
	}
}

func (in *Interpreter) evalConstructorCall(n *jsast.CallExpression, class *ctx.Class, args []value.Value, scope ctx.Node) value.Value {
	ref := ctx.NewReference(class)
	class.AddInstance(scope)
	refVal := value.RefValue(n, ref, scope.Condition())

	if ctor, ok := class.Constructor(); ok {
		ctor.RecordCall(n, scope.Condition())
		cn := &ctx.CallNode{Site: n}
		cn.ValueOf(ctor, &refVal, args, in, in.Program)
	}
	return refVal
}

func (in *Interpreter) evalArgs(argNodes []jsast.Node, scope ctx.Node) []value.Value {
	args := make([]value.Value, len(argNodes))
	for i, a := range argNodes {
		args[i] = in.ValueOf(a, scope)
	}
	return args
}

func propagateInstantiates(scope ctx.Node, fn *ctx.Function) {
	adder, ok := scope.(instantiationAdder)
	if !ok {
		return
	}
	for name, ic := range fn.Instantiates() {
		adder.AddInstantiation(name, ic.Instanced)
	}
}

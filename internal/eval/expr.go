package eval

import (
	"github.com/coalmine/jsflow/internal/ctx"
	"github.com/coalmine/jsflow/internal/jsast"
	"github.com/coalmine/jsflow/internal/value"
)

func newChildBlock(parent ctx.Node) ctx.Node { return ctx.NewBlock(parent) }

// ValueOf evaluates an expression node into a Value, per spec §4.6.
// Unsupported node types return an empty (null) Value.
func (in *Interpreter) ValueOf(node jsast.Node, scope ctx.Node) value.Value {
	if node == nil {
		return value.Value{}
	}
	cond := scope.Condition()

	switch n := node.(type) {
	case *jsast.Literal:
		return literalValue(n, cond)

	case *jsast.Identifier:
		b, ok := ctx.Lookup(scope, n.Name, true)
		if !ok {
			return value.Value{}
		}
		if v, ok := b.(*ctx.Variable); ok {
			return v.Value()
		}
		return value.Value{}

	case *jsast.ThisExpression:
		b, ok := ctx.Lookup(scope, "this", true)
		if !ok {
			return value.Value{}
		}
		if v, ok := b.(*ctx.Variable); ok {
			return v.Value()
		}
		return value.Value{}

	case *jsast.ExpressionStatement:
		return in.ValueOf(n.Expression, scope)

	case *jsast.BlockStatement:
		var last value.Value
		inner := newChildBlock(scope)
		for _, stmt := range n.Body {
			if es, ok := stmt.(*jsast.ExpressionStatement); ok {
				last = in.ValueOf(es.Expression, inner)
				continue
			}
			in.AnnotateStatement(stmt, inner)
		}
		return last

	case *jsast.AssignmentExpression:
		return in.evalAssignment(n, scope)

	case *jsast.MemberExpression:
		return in.evalMemberRead(n, scope)

	case *jsast.UnaryExpression:
		argVal := in.ValueOf(n.Argument, scope)
		return value.PerformUnary(argVal, n.Operator)

	case *jsast.BinaryExpression:
		lv := in.ValueOf(n.Left, scope)
		rv := in.ValueOf(n.Right, scope)
		return value.Perform(lv, rv, n.Operator)

	case *jsast.CallExpression:
		return in.evalCall(n, scope)

	default:
		return value.Value{}
	}
}

func literalValue(n *jsast.Literal, cond *value.Value) value.Value {
	switch n.Kind {
	case jsast.LiteralInt:
		return value.Int(n, n.IntValue, cond)
	case jsast.LiteralFloat:
		return value.Float(n, n.FloatValue, cond)
	case jsast.LiteralString:
		return value.String(n, n.StringValue, cond)
	case jsast.LiteralBool:
		return value.Bool(n, n.BoolValue, cond)
	default:
		return value.Value{}
	}
}

// resolveObject resolves a MemberExpression's object sub-node (a `this`
// or a bare identifier) to the Variable holding it.
func (in *Interpreter) resolveObject(node jsast.Node, scope ctx.Node) (*ctx.Variable, bool) {
	switch n := node.(type) {
	case *jsast.ThisExpression:
		b, ok := ctx.Lookup(scope, "this", true)
		if !ok {
			return nil, false
		}
		v, ok := b.(*ctx.Variable)
		return v, ok
	case *jsast.Identifier:
		b, ok := ctx.Lookup(scope, n.Name, true)
		if !ok {
			return nil, false
		}
		v, ok := b.(*ctx.Variable)
		return v, ok
	default:
		return nil, false
	}
}

func objectName(node jsast.Node) string {
	switch n := node.(type) {
	case *jsast.Identifier:
		return n.Name
	case *jsast.ThisExpression:
		return "this"
	default:
		return "<expr>"
	}
}

func (in *Interpreter) evalMemberRead(n *jsast.MemberExpression, scope ctx.Node) value.Value {
	owner, ok := in.resolveObject(n.Object, scope)
	if !ok {
		return value.Value{}
	}
	b, ok := owner.LookupMember(n.Property.Name)
	if !ok {
		return value.Value{}
	}
	switch m := b.(type) {
	case *ctx.Variable:
		return m.Value()
	case *ctx.Property:
		if m.Getter != nil {
			ownerVal := owner.Value()
			cn := &ctx.CallNode{Site: n}
			return cn.ValueOf(m.Getter, &ownerVal, nil, in, in.Program)
		}
		return value.Value{}
	default:
		return value.Value{}
	}
}

// evalAssignment implements spec §4.6's AssignmentExpression rule. The
// "shadow a Property with a plain Variable, setter not invoked" detail
// (§9-supplemented) falls out naturally: Reference.Properties only ever
// holds Variables, so writing through it always installs one.
func (in *Interpreter) evalAssignment(n *jsast.AssignmentExpression, scope ctx.Node) value.Value {
	rhs := in.ValueOf(n.Right, scope)

	switch left := n.Left.(type) {
	case *jsast.MemberExpression:
		owner, ok := in.resolveObject(left.Object, scope)
		if ok {
			owner.AddProperty(left.Property.Name, rhs)
		}
	case *jsast.Identifier:
		b, ok := ctx.Lookup(scope, left.Name, true)
		if ok {
			if v, ok := b.(*ctx.Variable); ok {
				v.SetValue(rhs)
				return rhs
			}
		}
		if ba, ok := scope.(blockAdder); ok {
			ba.AddVariable(scope, ctx.NewVariable(left.Name, rhs))
		}
	}
	return rhs
}

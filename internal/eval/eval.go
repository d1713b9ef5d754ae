// Package eval implements the annotation-pass interpreter: statement
// dispatch (spec §4.5's Annotation pass) and expression evaluation
// (spec §4.6's Value.valueOf, §4.7's CallExpression semantics). It
// implements ctx.Evaluator so ctx.CallNode can recursively annotate a
// called function's body without package ctx importing eval — mirroring
// the reference implementation handing the analyzer object itself down
// into the call path.
package eval

import (
	"github.com/coalmine/jsflow/internal/ctx"
	"github.com/coalmine/jsflow/internal/jsast"
	"github.com/coalmine/jsflow/internal/value"
)

// Interpreter is the annotation-pass driver, scoped to one Program.
type Interpreter struct {
	Program *ctx.Program
}

func New(program *ctx.Program) *Interpreter {
	return &Interpreter{Program: program}
}

// AnnotateBody implements ctx.Evaluator: visit every statement of body in
// the given scope.
func (in *Interpreter) AnnotateBody(body *jsast.BlockStatement, scope ctx.Node) {
	for _, stmt := range body.Body {
		in.AnnotateStatement(stmt, scope)
	}
}

type blockAdder interface {
	AddVariable(ctx.Node, *ctx.Variable)
}

type childAdder interface {
	AddChild(jsast.Node, ctx.Node)
	Find(jsast.Node) (ctx.Node, bool)
}

// AnnotateStatement dispatches on node type per spec §4.5's Annotation
// pass. Unsupported node types are silently skipped (spec §7).
func (in *Interpreter) AnnotateStatement(node jsast.Node, scope ctx.Node) {
	switch n := node.(type) {
	case *jsast.Program:
		for _, stmt := range n.Body {
			in.AnnotateStatement(stmt, scope)
		}

	case *jsast.VariableDeclaration:
		for _, d := range n.Declarations {
			in.annotateDeclarator(d, scope)
		}

	case *jsast.BlockStatement:
		in.AnnotateBody(n, in.childBlockScope(n, scope))

	case *jsast.ReturnStatement:
		if n.Argument != nil {
			v := in.ValueOf(n.Argument, scope)
			ctx.AddReturn(scope, v)
		}

	case *jsast.IfStatement:
		in.annotateIf(n, scope)

	case *jsast.ExpressionStatement:
		in.ValueOf(n.Expression, scope)

	case *jsast.CallExpression:
		in.ValueOf(n, scope)

	default:
		// Function/class declarations are already installed by the
		// expansion pass; nothing further to do here on a second visit.
	}
}

// childBlockScope reuses a previously registered child Block at this AST
// range (spec §4.5: "reuse a child context if one is already registered
// at that range; otherwise create one" — this also keeps re-`annotate`
// idempotent per spec §9's re-entry note).
func (in *Interpreter) childBlockScope(n *jsast.BlockStatement, scope ctx.Node) ctx.Node {
	if ca, ok := scope.(childAdder); ok {
		if existing, ok := ca.Find(n); ok {
			return existing
		}
		child := newChildBlock(scope)
		ca.AddChild(n, child)
		return child
	}
	return scope
}

func (in *Interpreter) annotateDeclarator(d *jsast.VariableDeclarator, scope ctx.Node) {
	v := value.Value{}
	annotation := ctx.Annotation{}
	if d.Init != nil {
		if call, ok := d.Init.(*jsast.CallExpression); ok {
			if callee := in.resolveCalleeBinding(call, scope); callee != nil {
				if a, ok := callee.(value.Annotated); ok {
					annotation.ReturnsType, annotation.HasReturns = a.ReturnsAnnotation()
				}
			}
		}
		v = in.ValueOf(d.Init, scope)
	}
	variable := ctx.NewVariable(d.Id.Name, v)
	variable.Annotation = annotation
	if ba, ok := scope.(blockAdder); ok {
		ba.AddVariable(scope, variable)
	}
}

// annotateIf implements spec §4.5's IfStatement rule plus the resolved
// else-branch behavior from SPEC_FULL §4 Q2: the alternate is evaluated
// under the negated test condition.
func (in *Interpreter) annotateIf(n *jsast.IfStatement, scope ctx.Node) {
	test := in.ValueOf(n.Test, scope)
	if len(test.Items) == 0 || hasRaised(test) {
		return
	}
	if test.False() {
		if n.Alternate != nil {
			neg := value.PerformUnary(test, "!")
			scope.AddCondition(&neg)
			in.AnnotateStatement(n.Alternate, scope)
			scope.PopCondition()
		}
		return
	}
	scope.AddCondition(&test)
	in.AnnotateStatement(n.Consequent, scope)
	scope.PopCondition()

	if n.Alternate != nil && !test.True() {
		neg := value.PerformUnary(test, "!")
		scope.AddCondition(&neg)
		in.AnnotateStatement(n.Alternate, scope)
		scope.PopCondition()
	}
}

func hasRaised(v value.Value) bool {
	for _, it := range v.Items {
		if it.Kind == value.KindRaised {
			return true
		}
	}
	return false
}

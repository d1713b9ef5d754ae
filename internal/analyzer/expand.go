package analyzer

import (
	"github.com/coalmine/jsflow/internal/ctx"
	"github.com/coalmine/jsflow/internal/jsast"
	"github.com/coalmine/jsflow/internal/jsdoc"
)

// expander runs the structural expansion pass (spec §4.5): it walks an
// AST registering declarations only, never evaluating expressions.
type expander struct {
	docstring *jsdoc.Extractor
	source    string
	comments  []*jsast.Comment
}

func (e *expander) annotationFor(node jsast.Node) ctx.Annotation {
	c, ok := jsdoc.AttachedComment(e.comments, e.source, node.Range()[0])
	if !ok {
		return ctx.Annotation{}
	}
	r, ok := e.docstring.Returns(c.Value)
	if !ok {
		return ctx.Annotation{}
	}
	return ctx.Annotation{ReturnsType: r.Type, HasReturns: true}
}

// expand dispatches on node type per spec §4.5's Expansion pass.
func (e *expander) expand(node jsast.Node, scope ctx.Node) {
	switch n := node.(type) {
	case *jsast.Program:
		for _, stmt := range n.Body {
			e.expand(stmt, scope)
		}

	case *jsast.ClassDeclaration:
		class := ctx.NewClass(n.Id.Name)
		if ba, ok := scope.(interface {
			AddClass(ctx.Node, *ctx.Class)
		}); ok {
			ba.AddClass(scope, class)
		}
		e.expand(n.Body, class)

	case *jsast.ClassBody:
		for _, m := range n.Body {
			e.expandMethod(m, scope.(*ctx.Class))
		}

	case *jsast.FunctionDeclaration:
		fn := ctx.NewFunction(n.Id.Name, n)
		fn.Annotation = e.annotationFor(n)
		if ba, ok := scope.(interface {
			AddFunction(ctx.Node, *ctx.Function)
		}); ok {
			ba.AddFunction(scope, fn)
		}

	case *jsast.BlockStatement:
		child := ctx.NewBlock(scope)
		scope.AddChild(n, child)
		for _, stmt := range n.Body {
			e.expand(stmt, child)
		}

	default:
		// Expansion only installs declarations; everything else is left
		// for the annotation pass.
	}
}

// expandMethod classifies one MethodDefinition as a static function, a
// getter/setter Property, or an ordinary Method (spec §4.5, and §9's
// supplemented static-method distinction).
func (e *expander) expandMethod(m *jsast.MethodDefinition, class *ctx.Class) {
	name := m.Key.Name
	annotation := e.annotationFor(m)

	if m.Static {
		fn := ctx.NewFunction(name, m.Value)
		fn.Annotation = annotation
		class.AddStaticFunction(fn)
		return
	}

	switch m.Kind {
	case "get", "set":
		prop, ok := class.Props[name]
		if !ok {
			prop = ctx.NewProperty(name)
			class.AddProperty(prop)
		}
		method := ctx.NewMethod(name, m.Value, m.Kind)
		method.Annotation = annotation
		if m.Kind == "get" {
			prop.Getter = method
			prop.Readable = true
		} else {
			prop.Setter = method
			prop.Writable = true
		}
	default:
		method := ctx.NewMethod(name, m.Value, m.Kind)
		method.Annotation = annotation
		class.AddMethod(method)
	}
}

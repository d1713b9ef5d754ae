package ctx

import "github.com/coalmine/jsflow/internal/jsast"

// Method is a Function bound to a class instance: spec §3's "a Function
// whose node.value holds the underlying function definition; a Method is
// bound to a this." Kind distinguishes ordinary/get/set/constructor,
// matching MethodDefinition.Kind.
type Method struct {
	Function
	MethodKind string // "method", "get", "set", "constructor"
}

func NewMethod(name string, decl jsast.Callable, kind string) *Method {
	m := &Method{Function: *NewFunction(name, decl), MethodKind: kind}
	return m
}

package ctx

// Class is a declared class: a Block (its inherited functions table holds
// static methods, per §9's supplemented static-method feature) plus
// instance methods, properties, and an instantiation counter (spec §3,
// §4.3).
type Class struct {
	Block

	ClassName string
	Methods   map[string]*Method
	Props     map[string]*Property
	Instanced int
}

func NewClass(name string) *Class {
	return &Class{
		Block:     newBlock(),
		ClassName: name,
		Methods:   make(map[string]*Method),
		Props:     make(map[string]*Property),
	}
}

func (c *Class) Name() string { return c.ClassName }

func (c *Class) AddMethod(m *Method) {
	m.SetParent(c)
	c.Methods[m.Name()] = m
}

func (c *Class) AddProperty(p *Property) {
	p.SetParent(c)
	c.Props[p.Name()] = p
}

// AddStaticFunction registers a static method in the inherited Block
// functions table, where CallExpression's static-call path looks it up
// instead of in Methods (spec §9).
func (c *Class) AddStaticFunction(f *Function) {
	c.Block.AddFunction(c, f)
}

// Constructor returns the constructor Method, if declared.
func (c *Class) Constructor() (*Method, bool) {
	m, ok := c.Methods["constructor"]
	return m, ok
}

// AddInstance records one new instance of c, bubbling the tally to site's
// enclosing scope chain (spec §4.3's Class.add_instance).
func (c *Class) AddInstance(site Node) {
	c.Instanced++
	if adder, ok := site.(interface {
		AddInstantiation(string, int)
	}); ok {
		adder.AddInstantiation(c.Name(), 1)
	}
}

// Lookup prefers methods, then properties, then static functions/nested
// declarations, falling back to the enclosing scope only when recurse is
// set — matching spec §4.2's Reference lookup delegating to its defining
// Class for shared/static members.
func (c *Class) Lookup(name string, recurse bool) (Binding, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if p, ok := c.Props[name]; ok {
		return p, true
	}
	if f, ok := c.Block.Function(name); ok {
		return f, true
	}
	if v, ok := c.Block.Variable(name); ok {
		return v, true
	}
	if nc, ok := c.Block.Class(name); ok {
		return nc, true
	}
	return c.lookupParent(name, recurse)
}

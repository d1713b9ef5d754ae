package ctx

import "github.com/coalmine/jsflow/internal/value"

// Lookuper is implemented by every named scope (Block and its
// descendants); Lookup resolves Binding dispatch generically without
// every caller needing a type switch.
type Lookuper interface {
	Lookup(name string, recurse bool) (Binding, bool)
}

// Lookup walks n if it exposes Lookup, otherwise fails closed.
func Lookup(n Node, name string, recurse bool) (Binding, bool) {
	if l, ok := n.(Lookuper); ok {
		return l.Lookup(name, recurse)
	}
	return nil, false
}

// InstantiationCount is the per-scope tally of a class's instantiations,
// bubbled upward on every `new C()`/`C()` constructor call.
type InstantiationCount struct {
	Instanced int
}

// Block is a lexical scope: named variables, functions, and classes, plus
// the instantiation tallies that bubble through it (spec §4.3).
type Block struct {
	StructuralNode

	variables map[string]*Variable
	functions map[string]*Function
	classes   map[string]*Class
	order     []string

	instantiates map[string]*InstantiationCount
	// stopInstantiationBubble marks a Block that captures instantiation
	// tallies for itself rather than forwarding them further up — set by
	// Function's constructor, per spec §4.3's "a root block... or an
	// explicit Function, which captures its own so callers can re-apply
	// it".
	stopInstantiationBubble bool
}

func newBlock() Block {
	return Block{
		variables: make(map[string]*Variable),
		functions: make(map[string]*Function),
		classes:   make(map[string]*Class),
	}
}

// NewBlock creates a standalone nested lexical scope (a BlockStatement's
// body) parented under parent.
func NewBlock(parent Node) *Block {
	blk := newBlock()
	blk.SetParent(parent)
	return &blk
}

// self is always the outermost concrete node embedding this Block (the
// Program, Class, Function, or FunctionBlock itself) — declarations must
// record it, not the embedded *Block, as the parent so that fallback
// Lookup dispatches through any Lookup override the outer type defines
// (Class's methods/properties-first Lookup, in particular).
func (b *Block) AddVariable(self Node, v *Variable) {
	v.SetParent(self)
	b.variables[v.Name()] = v
	b.order = append(b.order, v.Name())
}

func (b *Block) AddFunction(self Node, f *Function) {
	f.SetParent(self)
	b.functions[f.Name()] = f
	b.order = append(b.order, f.Name())
}

func (b *Block) AddClass(self Node, c *Class) {
	c.SetParent(self)
	b.classes[c.Name()] = c
	b.order = append(b.order, c.Name())
}

func (b *Block) Variable(name string) (*Variable, bool) { v, ok := b.variables[name]; return v, ok }
func (b *Block) Function(name string) (*Function, bool) { f, ok := b.functions[name]; return f, ok }
func (b *Block) Class(name string) (*Class, bool)       { c, ok := b.classes[name]; return c, ok }

// Declarations returns every declared name in the order it was added —
// used only by rendering.
func (b *Block) Declarations() []string { return b.order }

// Lookup checks variables, then functions, then classes, then falls back
// to the parent scope (spec §4.3's Block.lookup).
func (b *Block) Lookup(name string, recurse bool) (Binding, bool) {
	if v, ok := b.variables[name]; ok {
		return v, true
	}
	if f, ok := b.functions[name]; ok {
		return f, true
	}
	if c, ok := b.classes[name]; ok {
		return c, true
	}
	return b.lookupParent(name, recurse)
}

// AddInstantiation bubbles n new instances of the named class up the
// block chain, stopping at a Function (which captures its own tally) or
// the root.
func (b *Block) AddInstantiation(className string, n int) {
	if b.instantiates == nil {
		b.instantiates = make(map[string]*InstantiationCount)
	}
	ic, ok := b.instantiates[className]
	if !ok {
		ic = &InstantiationCount{}
		b.instantiates[className] = ic
	}
	ic.Instanced += n
	if b.stopInstantiationBubble {
		return
	}
	parent := b.Parent()
	if parent == nil {
		return
	}
	if ib, ok := parent.(interface {
		AddInstantiation(string, int)
	}); ok {
		ib.AddInstantiation(className, n)
	}
}

func (b *Block) AddInstantiations(m map[string]*InstantiationCount) {
	for name, ic := range m {
		if existing, ok := b.instantiates[name]; ok {
			existing.Instanced += ic.Instanced
		} else {
			if b.instantiates == nil {
				b.instantiates = make(map[string]*InstantiationCount)
			}
			cp := *ic
			b.instantiates[name] = &cp
		}
	}
}

func (b *Block) Instantiates() map[string]*InstantiationCount { return b.instantiates }

// AddReturn bubbles a return Value up to the nearest enclosing
// FunctionBlock, per spec §4.3's "Block's add_return walks upward".
func AddReturn(n Node, v value.Value) {
	var cur Node = n
	for cur != nil {
		if fb, ok := cur.(*FunctionBlock); ok {
			fb.returns = append(fb.returns, v)
			return
		}
		cur = cur.Parent()
	}
}

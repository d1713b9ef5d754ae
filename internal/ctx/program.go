package ctx

// Program is the context-tree root: no parent, owns every top-level
// declaration (spec §3's Program entity).
type Program struct {
	Block

	RunID        string
	MaxCallDepth int
	CallDepth    int
}

// DefaultMaxCallDepth bounds inter-procedural recursion (resolves spec §9
// Open Question 4: a call-depth counter rather than unbounded recursion).
const DefaultMaxCallDepth = 64

func NewProgram() *Program {
	p := &Program{Block: newBlock(), MaxCallDepth: DefaultMaxCallDepth}
	p.stopInstantiationBubble = true
	return p
}

package ctx

// Property is an accessor-backed binding: a getter/setter Method pair with
// readable/writable flags (spec §3, §4.4).
type Property struct {
	StructuralNode

	PropName string
	Readable bool
	Writable bool
	Getter   *Method
	Setter   *Method
}

func NewProperty(name string) *Property {
	return &Property{PropName: name}
}

func (p *Property) Name() string { return p.PropName }

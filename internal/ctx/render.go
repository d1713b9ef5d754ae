package ctx

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/coalmine/jsflow/internal/value"
)

// String renders the full declaration tree plus the Program's aggregated
// raises (spec §6; the raises section is the §9-supplemented feature
// absent from spec's explicit rendering list).
func (p *Program) String() string {
	var b strings.Builder
	renderBlock(&b, &p.Block, 0)
	renderRaises(&b, p.Raises(), 0)
	return b.String()
}

func indentStr(n int) string { return strings.Repeat("  ", n) }

func renderBlock(b *strings.Builder, blk *Block, indent int) {
	for _, name := range blk.Declarations() {
		if v, ok := blk.Variable(name); ok {
			renderVariable(b, v, indent)
			continue
		}
		if f, ok := blk.Function(name); ok {
			renderFunction(b, f, indent)
			continue
		}
		if c, ok := blk.Class(name); ok {
			renderClass(b, c, indent)
			continue
		}
	}
}

func renderVariable(b *strings.Builder, v *Variable, indent int) {
	fmt.Fprintf(b, "%svar %s: %s\n", indentStr(indent), v.Name(), strings.Join(v.Val.Type(), "|"))
}

func renderFunction(b *strings.Builder, f *Function, indent int) {
	ret := f.Annotation.ReturnsType
	if ret == "" {
		ret = "unknown"
	}
	fmt.Fprintf(b, "%sfn %s() -> %s\n", indentStr(indent), f.Name(), ret)
	renderCallTallies(b, f, indent+1)
	renderInstantiates(b, f.Instantiates(), indent+1)
}

func renderCallTallies(b *strings.Builder, f *Function, indent int) {
	if f.Called() > 0 {
		fmt.Fprintf(b, "%scalled %d times\n", indentStr(indent), f.Called())
	}
	for _, ct := range f.CalledConditionally() {
		fmt.Fprintf(b, "%scalled %d times when %s\n", indentStr(indent), ct.Count, describeValue(ct.Condition))
	}
}

func renderInstantiates(b *strings.Builder, m map[string]*InstantiationCount, indent int) {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(b, "%sinstantiates %s: %d\n", indentStr(indent), n, m[n].Instanced)
	}
}

func renderClass(b *strings.Builder, c *Class, indent int) {
	fmt.Fprintf(b, "%sclass %s: %d\n", indentStr(indent), c.Name(), c.Instanced)
	methodNames := make([]string, 0, len(c.Methods))
	for n := range c.Methods {
		methodNames = append(methodNames, n)
	}
	sort.Strings(methodNames)
	for _, n := range methodNames {
		renderFunction(b, &c.Methods[n].Function, indent+1)
	}
	renderBlock(b, &c.Block, indent+1)
}

func renderRaises(b *strings.Builder, raised map[string][]*Raised, indent int) {
	if len(raised) == 0 {
		return
	}
	fmt.Fprintf(b, "%sraises:\n", indentStr(indent))
	names := make([]string, 0, len(raised))
	for n := range raised {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(b, "%s  %s: %d\n", indentStr(indent), n, len(raised[n]))
	}
}

// String renders one instance's properties and method call tallies,
// filtering underscore-prefixed ("private by convention") properties per
// the §9-supplemented Reference.String behavior.
func (r *Reference) String(indent int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s@%s\n", indentStr(indent), r.ClassName())
	names := make([]string, 0, len(r.Properties))
	for n := range r.Properties {
		if strings.HasPrefix(n, "_") {
			continue
		}
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		renderVariable(&b, r.Properties[n], indent+1)
	}
	methodNames := make([]string, 0, len(r.methods))
	for n := range r.methods {
		methodNames = append(methodNames, n)
	}
	sort.Strings(methodNames)
	for _, n := range methodNames {
		fmt.Fprintf(&b, "%s%s called %d times\n", indentStr(indent+1), n, r.MethodCalled(n))
	}
	return b.String()
}

func describeValue(v *value.Value) string {
	if v == nil {
		return "true"
	}
	parts := make([]string, 0, len(v.Items))
	for _, it := range v.Items {
		parts = append(parts, describeItem(it))
	}
	return strings.Join(parts, " | ")
}

func describeItem(it value.Item) string {
	switch it.Kind {
	case value.KindString:
		return "string(" + strconv.Quote(it.Payload.Str) + ")"
	case value.KindReference:
		if it.Payload.Ref != nil {
			return "@" + it.Payload.Ref.ClassName()
		}
		return "reference"
	case value.KindRaised:
		if it.Payload.Raised != nil {
			return "raised(" + it.Payload.Raised.Exception + ")"
		}
		return "raised"
	}
	if it.Payload.IsRange {
		return fmt.Sprintf("%s[%s,%s]", it.Kind, formatNum(it.Payload.Lo), formatNum(it.Payload.Hi))
	}
	return fmt.Sprintf("%s(%s)", it.Kind, formatNum(it.Payload.Num))
}

func formatNum(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// Package render is the CLI-facing presentation layer: it wraps
// ctx.Program.String() with ANSI coloring when
// the output stream is a terminal, leaving the core's own rendering (spec
// §6) untouched and colorless for programmatic callers.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/coalmine/jsflow/internal/ctx"
)

const (
	colorReset = "\x1b[0m"
	colorDim   = "\x1b[2m"
	colorCyan  = "\x1b[36m"
	colorRed   = "\x1b[31m"
)

// Printer writes an annotated Program to an output stream, colorizing
// keyword lines when that stream is a terminal.
type Printer struct {
	out    io.Writer
	colors bool

	showCallTallies    bool
	showInstantiations bool
}

// NewPrinter detects whether out is a TTY (github.com/mattn/go-isatty,
// matching the teacher's own CLI's terminal-detection approach) and
// colorizes accordingly. Call tallies and instantiation lines are shown
// by default; WithRenderOptions narrows that per config.RenderOptions.
func NewPrinter(out *os.File) *Printer {
	colors := isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
	return &Printer{out: out, colors: colors, showCallTallies: true, showInstantiations: true}
}

// WithRenderOptions narrows which optional sections Program prints,
// per config.Config's `render` block (jsflow.yaml's
// show_call_tallies/show_instantiations).
func (p *Printer) WithRenderOptions(showCallTallies, showInstantiations bool) *Printer {
	p.showCallTallies = showCallTallies
	p.showInstantiations = showInstantiations
	return p
}

// Program writes prog's full rendering, dropping "called"/"instantiates"
// lines the configured RenderOptions have turned off.
func (p *Printer) Program(prog *ctx.Program) {
	fmt.Fprint(p.out, p.colorize(p.filter(prog.String())))
}

// filter strips optional-section lines core rendering always produces
// (spec §6) but the ambient CLI configuration may choose to suppress.
func (p *Printer) filter(s string) string {
	if p.showCallTallies && p.showInstantiations {
		return s
	}
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		switch {
		case !p.showCallTallies && strings.HasPrefix(trimmed, "called "):
			continue
		case !p.showInstantiations && strings.HasPrefix(trimmed, "instantiates "):
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// Lookup writes a `lookup <name>` dump: a variable's "var name: types"
// line, any other binding's name and kind, or a "not found" line.
func (p *Printer) Lookup(prog *ctx.Program, name string) {
	b, ok := prog.Lookup(name, true)
	if !ok {
		fmt.Fprintf(p.out, "%s: not found\n", name)
		return
	}
	fmt.Fprintf(p.out, "%s:\n", name)
	switch v := b.(type) {
	case *ctx.Variable:
		fmt.Fprintf(p.out, "  var %s: %s\n", v.Name(), strings.Join(v.Value().Type(), "|"))
	default:
		fmt.Fprintln(p.out, p.colorize(describeBinding(b)))
	}
}

func describeBinding(b ctx.Binding) string {
	return fmt.Sprintf("%s (%s)", b.Name(), bindingKind(b))
}

func bindingKind(b ctx.Binding) string {
	switch b.(type) {
	case *ctx.Function:
		return "function"
	case *ctx.Method:
		return "method"
	case *ctx.Class:
		return "class"
	case *ctx.Property:
		return "property"
	default:
		return "binding"
	}
}

// colorize shows "class" and "fn" lines in cyan, "raises" lines in red,
// and "called"/"instantiates" lines dimmed; "var" lines stay uncolored. A
// no-op when colors are disabled.
func (p *Printer) colorize(s string) string {
	if !p.colors {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(trimmed)]
		switch {
		case strings.HasPrefix(trimmed, "class "):
			lines[i] = indent + colorCyan + trimmed + colorReset
		case strings.HasPrefix(trimmed, "fn "):
			lines[i] = indent + colorCyan + trimmed + colorReset
		case strings.HasPrefix(trimmed, "var "):
			lines[i] = indent + trimmed
		case strings.HasPrefix(trimmed, "raises"):
			lines[i] = indent + colorRed + trimmed + colorReset
		case strings.HasPrefix(trimmed, "called ") || strings.HasPrefix(trimmed, "instantiates "):
			lines[i] = indent + colorDim + trimmed + colorReset
		}
	}
	return strings.Join(lines, "\n")
}

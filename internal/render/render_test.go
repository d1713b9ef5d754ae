package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/coalmine/jsflow/internal/analyzer"
)

func annotate(t *testing.T, main string) (out *bytes.Buffer) {
	t.Helper()
	a := analyzer.New(main)
	prog, errs := a.Annotate(context.Background(), false)
	if len(errs) > 0 {
		t.Fatalf("Annotate: %v", errs)
	}
	p := &Printer{out: &bytes.Buffer{}, showCallTallies: true, showInstantiations: true}
	p.Program(prog)
	return p.out.(*bytes.Buffer)
}

func TestFilterDropsCallTalliesWhenDisabled(t *testing.T) {
	src := `
function f(){}
f();
f();
`
	var buf bytes.Buffer
	p := &Printer{out: &buf, showCallTallies: false, showInstantiations: true}
	a := analyzer.New(src)
	prog, errs := a.Annotate(context.Background(), false)
	if len(errs) > 0 {
		t.Fatalf("Annotate: %v", errs)
	}
	p.Program(prog)
	if strings.Contains(buf.String(), "called ") {
		t.Fatalf("expected call tallies suppressed, got:\n%s", buf.String())
	}
}

func TestFilterDropsInstantiationsWhenDisabled(t *testing.T) {
	src := `
class Sprite { constructor(){} }
function createSprite(){ return new Sprite(); }
createSprite();
`
	var buf bytes.Buffer
	p := &Printer{out: &buf, showCallTallies: true, showInstantiations: false}
	a := analyzer.New(src)
	prog, errs := a.Annotate(context.Background(), false)
	if len(errs) > 0 {
		t.Fatalf("Annotate: %v", errs)
	}
	p.Program(prog)
	if strings.Contains(buf.String(), "instantiates ") {
		t.Fatalf("expected instantiation lines suppressed, got:\n%s", buf.String())
	}
}

func TestProgramShowsCallTalliesWhenEnabled(t *testing.T) {
	out := annotate(t, `
function f(){}
f();
`)
	if !strings.Contains(out.String(), "called ") {
		t.Fatalf("expected call tallies shown when enabled, got:\n%s", out.String())
	}
}

// Package analyzer is the driver (spec §4.5): Analyzer.Augment,
// Analyzer.Annotate, the expansion pass, and the annotation pass, built as
// a small internal/pipeline-style processor chain.
package analyzer

import (
	"context"

	"github.com/google/uuid"

	"github.com/coalmine/jsflow/internal/ctx"
	"github.com/coalmine/jsflow/internal/diagnostics"
	"github.com/coalmine/jsflow/internal/eval"
	"github.com/coalmine/jsflow/internal/jsast"
	"github.com/coalmine/jsflow/internal/jsdoc"
	"github.com/coalmine/jsflow/internal/pipeline"
)

// Analyzer holds one main source plus zero or more precode sources applied
// in order ahead of it (spec §3's "Precode" glossary entry), and the
// compiled JSDoc extractor used during expansion.
type Analyzer struct {
	mainSource string
	precode    []string

	docstring *jsdoc.Extractor

	precodeASTs []pipeline.ParsedPrecode
	mainAST     *jsast.Program
}

// New creates an Analyzer over one main source, with the default @returns
// extraction pattern.
func New(source string) *Analyzer {
	return &Analyzer{mainSource: source, docstring: jsdoc.New()}
}

// WithDocstringPattern overrides the default @returns regex (config's
// docstring_pattern).
func (a *Analyzer) WithDocstringPattern(pattern string) error {
	e, err := jsdoc.NewWithPattern(pattern)
	if err != nil {
		return err
	}
	a.docstring = e
	return nil
}

// Augment appends a precode source, applied before the main source on the
// next Annotate call. Invalidates any cached parse.
func (a *Analyzer) Augment(source string) {
	a.precode = append(a.precode, source)
	a.precodeASTs = nil
}

// Annotate runs the full parse → expand → annotate chain and returns the
// resulting Program. reparse forces re-parsing even if a prior Annotate
// call already cached ASTs; re-running Annotate always rebuilds a fresh
// Program (and a fresh RunID) from those ASTs, so repeated calls are
// idempotent regardless of reparse (spec §9's re-entry note).
func (a *Analyzer) Annotate(ctxBg context.Context, reparse bool) (*ctx.Program, []error) {
	if reparse {
		a.precodeASTs = nil
		a.mainAST = nil
	}

	pc := &pipeline.PipelineContext{
		Ctx:            ctxBg,
		PrecodeSources: a.precode,
		MainSource:     a.mainSource,
		PrecodeASTs:    a.precodeASTs,
		MainAST:        a.mainAST,
	}

	pl := pipeline.New(
		&parseProcessor{},
		&expandProcessor{docstring: a.docstring},
		&annotateProcessor{},
	)
	pc = pl.Run(pc)

	a.precodeASTs = pc.PrecodeASTs
	a.mainAST = pc.MainAST

	return pc.Program, pc.Diagnostics
}

// parseProcessor parses every precode source (in order) and the main
// source, skipping sources already cached from a prior Annotate call.
type parseProcessor struct{}

func (p *parseProcessor) Process(pc *pipeline.PipelineContext) *pipeline.PipelineContext {
	if pc.PrecodeASTs == nil {
		parsed := make([]pipeline.ParsedPrecode, 0, len(pc.PrecodeSources))
		for i, src := range pc.PrecodeSources {
			prog, err := jsast.Parse(src, jsast.ParseOptions{Tolerant: true})
			if err != nil {
				pc.Diagnostics = append(pc.Diagnostics, diagnostics.New("", 0, 0, "precode[%d]: %v", i, err))
				continue
			}
			parsed = append(parsed, pipeline.ParsedPrecode{Source: src, AST: prog})
		}
		pc.PrecodeASTs = parsed
	}

	if pc.MainAST == nil {
		prog, err := jsast.Parse(pc.MainSource, jsast.ParseOptions{Tolerant: true})
		if err != nil {
			pc.Diagnostics = append(pc.Diagnostics, diagnostics.New("main", 0, 0, "%v", err))
			return pc
		}
		pc.MainAST = prog
	}

	return pc
}

// expandProcessor runs the structural expansion pass over every precode
// AST in order, then the main AST, into one fresh Program (spec §4.5).
type expandProcessor struct {
	docstring *jsdoc.Extractor
}

func (p *expandProcessor) Process(pc *pipeline.PipelineContext) *pipeline.PipelineContext {
	program := ctx.NewProgram()
	program.RunID = uuid.New().String()

	for _, parsed := range pc.PrecodeASTs {
		e := &expander{docstring: p.docstring, source: parsed.Source, comments: parsed.AST.Comments}
		e.expand(parsed.AST, program)
	}

	if pc.MainAST != nil {
		e := &expander{docstring: p.docstring, source: pc.MainSource, comments: pc.MainAST.Comments}
		e.expand(pc.MainAST, program)
	}

	pc.Program = program
	return pc
}

// annotateProcessor runs the annotation pass (spec §4.5's Annotation pass)
// over the main AST's top-level statements.
type annotateProcessor struct{}

func (p *annotateProcessor) Process(pc *pipeline.PipelineContext) *pipeline.PipelineContext {
	if pc.Program == nil || pc.MainAST == nil {
		return pc
	}
	in := eval.New(pc.Program)
	in.AnnotateStatement(pc.MainAST, pc.Program)
	return pc
}

// Package pipeline is the generic staged-processor scaffolding, adapted
// from the teacher's own internal/pipeline: a Pipeline runs a sequence of
// Processors over a shared, mutable PipelineContext, each stage free to
// inspect and extend what the previous stage produced.
package pipeline

import (
	"context"

	"github.com/coalmine/jsflow/internal/ctx"
	"github.com/coalmine/jsflow/internal/jsast"
)

// ParsedPrecode pairs one precode source with its parsed AST, keeping the
// two together so a source that fails to parse can be dropped without
// shifting later sources out of alignment with their own ASTs.
type ParsedPrecode struct {
	Source string
	AST    *jsast.Program
}

// PipelineContext threads parse → expand → annotate state through the
// analyzer's stage chain, in place of Funxy's lexer/parser/VM state.
type PipelineContext struct {
	Ctx context.Context

	PrecodeSources []string
	MainSource     string

	PrecodeASTs []ParsedPrecode
	MainAST     *jsast.Program

	Program     *ctx.Program
	Diagnostics []error
}

// Processor is one pipeline stage.
type Processor interface {
	Process(pc *PipelineContext) *PipelineContext
}

// Pipeline runs a sequence of Processors, continuing on per-stage errors
// so later stages can still contribute diagnostics (mirrors the
// teacher's own rationale for pressing on past an error).
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

func (p *Pipeline) Run(initial *PipelineContext) *PipelineContext {
	pc := initial
	for _, proc := range p.processors {
		pc = proc.Process(pc)
	}
	return pc
}

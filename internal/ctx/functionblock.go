package ctx

import "github.com/coalmine/jsflow/internal/value"

// FunctionBlock is the per-call-site evaluation scope: a Block that
// additionally collects every return Value evaluated in its body (spec
// §3, §4.3).
type FunctionBlock struct {
	Block

	returns []value.Value
}

func NewFunctionBlock(parent Node) *FunctionBlock {
	fb := &FunctionBlock{Block: newBlock()}
	fb.SetParent(parent)
	fb.stopInstantiationBubble = false
	return fb
}

func (fb *FunctionBlock) Returns() []value.Value { return fb.returns }

package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coalmine/jsflow/internal/ctx"
	"github.com/coalmine/jsflow/internal/value"
)

func annotate(t *testing.T, main string, precode ...string) *ctx.Program {
	t.Helper()
	a := New(main)
	for _, p := range precode {
		a.Augment(p)
	}
	program, errs := a.Annotate(context.Background(), false)
	require.Empty(t, errs)
	require.NotNil(t, program)
	return program
}

// Scenario A: literal addition.
func TestLiteralAddition(t *testing.T) {
	program := annotate(t, `var x = 1 + 2;`)

	b, ok := program.Lookup("x", true)
	require.True(t, ok)
	v := b.(*ctx.Variable).Value()

	require.Len(t, v.Items, 1)
	assert.Equal(t, value.KindInt, v.Items[0].Kind)
	assert.Equal(t, float64(3), v.Items[0].Payload.Num)
	assert.Nil(t, v.Items[0].Condition)
}

// Scenario B: JSDoc random.
func TestJSDocRandom(t *testing.T) {
	precode := "/** @returns {random} */\nfunction randomNumber(){ return 0; }"
	program := annotate(t, `var x = randomNumber();`, precode)

	b, ok := program.Lookup("x", true)
	require.True(t, ok)
	v := b.(*ctx.Variable).Value()

	require.Len(t, v.Items, 1)
	assert.Equal(t, value.KindRandom, v.Items[0].Kind)
	assert.Equal(t, 0.0, v.Items[0].Payload.Lo)
	assert.Equal(t, 1.0, v.Items[0].Payload.Hi)
}

// Scenario C: dead-branch pruning.
func TestDeadBranchPruning(t *testing.T) {
	program := annotate(t, `var x = 0; if (false) { x = 1; }`)

	b, ok := program.Lookup("x", true)
	require.True(t, ok)
	v := b.(*ctx.Variable).Value()

	require.Len(t, v.Items, 1)
	assert.Equal(t, value.KindInt, v.Items[0].Kind)
	assert.Equal(t, float64(0), v.Items[0].Payload.Num)
}

// Scenario D: class instantiation.
func TestClassInstantiation(t *testing.T) {
	program := annotate(t, `
class Sprite { constructor(){} }
function createSprite(){ return new Sprite(); }
createSprite();
createSprite();
`)

	sb, ok := program.Lookup("Sprite", true)
	require.True(t, ok)
	class := sb.(*ctx.Class)
	assert.Equal(t, 2, class.Instanced)

	fb, ok := program.Lookup("createSprite", true)
	require.True(t, ok)
	fn := fb.(*ctx.Function)
	assert.Equal(t, 2, fn.Called())
}

// Scenario E: unknown-receiver raise.
func TestUnknownReceiverRaise(t *testing.T) {
	program := annotate(t, `missing.doIt();`)

	raises := program.Raises()
	refErrs, ok := raises["ReferenceError"]
	require.True(t, ok)
	require.NotEmpty(t, refErrs)
	assert.Equal(t, "missing is not defined", refErrs[0].Message)
}

// Scenario F: conditional call tally.
func TestConditionalCallTally(t *testing.T) {
	program := annotate(t, `
function f(){}
function g(k){ if (k === "right") { f(); } }
g("right");
`)

	fb, ok := program.Lookup("f", true)
	require.True(t, ok)
	fn := fb.(*ctx.Function)

	tallies := fn.CalledConditionally()
	require.Len(t, tallies, 1)
	assert.Equal(t, 1, tallies[0].Count)
	assert.True(t, tallies[0].Condition.True())
}

func TestAnnotateIsIdempotentWithoutReparse(t *testing.T) {
	a := New(`var x = 1 + 2;`)
	p1, errs1 := a.Annotate(context.Background(), false)
	require.Empty(t, errs1)
	p2, errs2 := a.Annotate(context.Background(), false)
	require.Empty(t, errs2)

	b1, _ := p1.Lookup("x", true)
	b2, _ := p2.Lookup("x", true)
	assert.Equal(t, b1.(*ctx.Variable).Value(), b2.(*ctx.Variable).Value())
}

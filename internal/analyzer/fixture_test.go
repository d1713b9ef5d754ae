package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coalmine/jsflow/internal/ctx"
	"github.com/coalmine/jsflow/internal/fixture"
)

// annotateFixture unpacks a txtar archive (main.js plus ordered precode
// files) and runs it through the full parse/expand/annotate pipeline,
// mirroring how a multi-file --precode run is assembled in practice.
func annotateFixture(t *testing.T, archive string) *ctx.Program {
	t.Helper()
	c, err := fixture.ParseString(archive)
	require.NoError(t, err)

	a := New(c.Main)
	for _, p := range c.Precode {
		a.Augment(p)
	}
	program, errs := a.Annotate(context.Background(), false)
	require.Empty(t, errs)
	return program
}

// Precode files apply in archive order, ahead of main.js, regardless of
// where main.js sits in the archive.
func TestFixturePrecodeAppliesInOrder(t *testing.T) {
	program := annotateFixture(t, `
-- env.js --
/** @returns {random} */
function seed(){ return 0; }
-- main.js --
var x = seed();
`)

	b, ok := program.Lookup("x", true)
	require.True(t, ok)
	v := b.(*ctx.Variable).Value()
	require.Len(t, v.Items, 1)
	require.Equal(t, "random", string(v.Items[0].Kind))
}

func TestFixtureMultiplePrecodeFiles(t *testing.T) {
	program := annotateFixture(t, `
-- env.js --
function helperOne(){ return 1; }
-- extra.js --
function helperTwo(){ return 2; }
-- main.js --
var a = helperOne();
var b = helperTwo();
helperOne();
`)

	fb, ok := program.Lookup("helperOne", true)
	require.True(t, ok)
	require.Equal(t, 2, fb.(*ctx.Function).Called())

	gb, ok := program.Lookup("helperTwo", true)
	require.True(t, ok)
	require.Equal(t, 1, gb.(*ctx.Function).Called())
}

package param_test

import (
	"testing"

	"github.com/oyelowo/surrealorm/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindMonotonicAndDeterministic(t *testing.T) {
	var b param.Bindings
	b1 := b.Bind("Prince Edward Island")
	b2 := b.Bind(153)
	b3 := b.Bind(10)

	assert.Equal(t, "_param_00000001", b1.Name)
	assert.Equal(t, "_param_00000002", b2.Name)
	assert.Equal(t, "_param_00000003", b3.Name)
	assert.Equal(t, "$_param_00000001", b1.Placeholder())

	var other param.Bindings
	o1 := other.Bind("Prince Edward Island")
	o2 := other.Bind(153)
	o3 := other.Bind(10)
	require.Equal(t, []param.Binding{b1, b2, b3}, []param.Binding{o1, o2, o3})
}

func TestConcatIsMonotone(t *testing.T) {
	var a, c param.Bindings
	a.Bind(1)
	a.Bind(2)
	c.Bind(3)

	got := param.Concat(a.List(), c.List())
	require.Len(t, got, 3)
	assert.Equal(t, a.List()[0], got[0])
	assert.Equal(t, a.List()[1], got[1])
	assert.Equal(t, c.List()[0], got[2])
}

func TestAbsorbRenumbersIntoParentCounterSpace(t *testing.T) {
	var sub param.Bindings
	sub.Bind("inner-1")
	sub.Bind("inner-2")

	var parent param.Bindings
	parent.Bind("outer-1")

	rewritten, rename := parent.Absorb(sub.List())
	require.Len(t, rewritten, 2)
	assert.Equal(t, "_param_00000002", rewritten[0].Name)
	assert.Equal(t, "_param_00000003", rewritten[1].Name)
	assert.Equal(t, "_param_00000002", rename[sub.List()[0].Name])
	assert.Equal(t, 3, parent.Len())
}

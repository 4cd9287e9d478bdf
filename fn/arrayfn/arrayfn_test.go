package arrayfn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyelowo/surrealorm/expr"
	"github.com/oyelowo/surrealorm/fn/arrayfn"
	"github.com/oyelowo/surrealorm/param"
)

func TestTranspose(t *testing.T) {
	var bindings param.Bindings
	a := expr.ArrayOf(&bindings, 1, 2, 3)
	b := expr.ArrayOf(&bindings, "a", "b", "c")
	fn := arrayfn.Transpose(a, b)
	require.Empty(t, fn.GetErrors())
	assert.Equal(t, "array::transpose([1, 2, 3], ['a', 'b', 'c'])", fn.Build())
}

func TestDistinctAndLen(t *testing.T) {
	var bindings param.Bindings
	arr := expr.ArrayOf(&bindings, 1, 1, 2)
	distinct := arrayfn.Distinct(arr)
	assert.Equal(t, "array::distinct([1, 1, 2])", distinct.Build())

	count := arrayfn.Len(distinct)
	assert.Equal(t, "array::len(array::distinct([1, 1, 2]))", count.Build())
}

func TestSortAscBindingsConcatenate(t *testing.T) {
	var bindings param.Bindings
	arr := expr.ArrayOf(&bindings, expr.NumberLike(&bindings, 3), expr.NumberLike(&bindings, 1))
	fn := arrayfn.SortAsc(arr)
	require.Len(t, fn.GetBindings(), 2)
}

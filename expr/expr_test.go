package expr_test

import (
	"testing"

	"github.com/oyelowo/surrealorm/expr"
	"github.com/oyelowo/surrealorm/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayOfMacroDeterminism(t *testing.T) {
	var bindings param.Bindings
	age := expr.NewField("age")

	arr := expr.ArrayOf(&bindings, 1, 2, "Oyelowo", age)

	assert.Equal(t, "[1, 2, 'Oyelowo', age]", arr.Build())
	require.Len(t, arr.GetBindings(), 3)
	assert.Equal(t, 1, arr.GetBindings()[0].Value)
	assert.Equal(t, 2, arr.GetBindings()[1].Value)
	assert.Equal(t, "Oyelowo", arr.GetBindings()[2].Value)
}

func TestFilterConservativeParenthesization(t *testing.T) {
	city := expr.NewField("city")
	var bindings param.Bindings

	cond1 := expr.Is(city, expr.StrandLike(&bindings, "Prince Edward Island"))
	cond2 := expr.Is(city, expr.StrandLike(&bindings, "NewFoundland"))
	cond3 := expr.Like(city, expr.StrandLike(&bindings, "Toronto"))

	combined := cond1.And(cond2).Or(cond3)

	assert.Equal(t,
		"(city IS $_param_00000001) AND (city IS $_param_00000002) OR (city ~ $_param_00000003)",
		combined.Build())
	assert.Equal(t,
		"(city IS 'Prince Edward Island') AND (city IS 'NewFoundland') OR (city ~ 'Toronto')",
		expr.Raw(combined.Build(), combined.GetBindings()))
}

func TestFieldDottedPath(t *testing.T) {
	f := expr.NewField("address.city")
	assert.Equal(t, "address.city", f.Build())
}

func TestRecordIDVerbatimVsCaptured(t *testing.T) {
	var bindings param.Bindings
	bare := expr.NewRecordID(&bindings, "user", "oyelowo")
	assert.Equal(t, "user:oyelowo", bare.Build())
	assert.Empty(t, bare.GetBindings())

	captured := expr.NewRecordID(&bindings, "user", "has a space")
	assert.Equal(t, "user:$_param_00000001", captured.Build())
	require.Len(t, captured.GetBindings(), 1)
}

package typefn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oyelowo/surrealorm/expr"
	"github.com/oyelowo/surrealorm/fn/typefn"
	"github.com/oyelowo/surrealorm/param"
)

func TestThing(t *testing.T) {
	var bindings param.Bindings
	fn := typefn.Thing(expr.StrandLike(&bindings, "user"), expr.StrandLike(&bindings, "oyelowo"))
	assert.Equal(t, "type::thing($_param_00000001, $_param_00000002)", fn.Build())
}

func TestIsNumber(t *testing.T) {
	age := expr.NewField("age")
	fn := typefn.IsNumber(age)
	assert.Equal(t, "type::is::number(age)", fn.Build())
}

func TestPoint(t *testing.T) {
	var bindings param.Bindings
	fn := typefn.Point(expr.NumberLike(&bindings, 1.5), expr.NumberLike(&bindings, 2.5))
	assert.Equal(t, "type::point($_param_00000001, $_param_00000002)", fn.Build())
}

package timefn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oyelowo/surrealorm/expr"
	"github.com/oyelowo/surrealorm/fn/timefn"
	"github.com/oyelowo/surrealorm/param"
)

// TestGroupByMonth covers scenario 5 of spec.md §8:
// time::group(datetime, "month").
func TestGroupByMonth(t *testing.T) {
	var bindings param.Bindings
	created := expr.NewField("created_at")
	fn := timefn.Group(created, expr.StrandLike(&bindings, "month"))
	assert.Equal(t, "time::group(created_at, $_param_00000001)", fn.Build())
	assert.Equal(t, "month", fn.GetBindings()[0].Value)
}

func TestNow(t *testing.T) {
	assert.Equal(t, "time::now()", timefn.Now().Build())
}

func TestFromUnix(t *testing.T) {
	var bindings param.Bindings
	fn := timefn.FromUnix(expr.NumberLike(&bindings, 1_700_000_000))
	assert.Equal(t, "time::from::unix($_param_00000001)", fn.Build())
}

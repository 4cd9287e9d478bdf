package stringfn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oyelowo/surrealorm/expr"
	"github.com/oyelowo/surrealorm/fn/stringfn"
	"github.com/oyelowo/surrealorm/param"
)

func TestConcat(t *testing.T) {
	var bindings param.Bindings
	fn := stringfn.Concat(expr.StrandLike(&bindings, "a"), expr.StrandLike(&bindings, "b"))
	assert.Equal(t, "string::concat($_param_00000001, $_param_00000002)", fn.Build())
	assert.Len(t, fn.GetBindings(), 2)
}

func TestIsEmail(t *testing.T) {
	var bindings param.Bindings
	fn := stringfn.IsEmail(expr.StrandLike(&bindings, "oyelowo@example.com"))
	assert.Equal(t, "string::is::email($_param_00000001)", fn.Build())
}

func TestDistanceHamming(t *testing.T) {
	var bindings param.Bindings
	fn := stringfn.DistanceHamming(expr.StrandLike(&bindings, "foo"), expr.StrandLike(&bindings, "bar"))
	assert.Equal(t, "string::distance::hamming($_param_00000001, $_param_00000002)", fn.Build())
}

func TestSimilarityFuzzy(t *testing.T) {
	var bindings param.Bindings
	fn := stringfn.SimilarityFuzzy(expr.StrandLike(&bindings, "foo"), expr.StrandLike(&bindings, "bar"))
	assert.Equal(t, "string::similarity::fuzzy($_param_00000001, $_param_00000002)", fn.Build())
}

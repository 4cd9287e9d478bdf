package statement_test

import (
	"testing"

	"github.com/oyelowo/surrealorm/expr"
	"github.com/oyelowo/surrealorm/statement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildScenario(t *testing.T, parameterize bool) *statement.Select {
	t.Helper()
	sel := statement.NewSelect()
	bindings := sel.Params()

	var target string
	if parameterize {
		rid := expr.NewRecordID(bindings, "user", "oyelowo")
		_ = rid // bare identifier id is not captured; force capture below instead
	}
	if parameterize {
		target = expr.ThingLike(bindings, "user:oyelowo").Build()
	} else {
		target = expr.NewRecordID(bindings, "user", "oyelowo").Build()
	}
	sel = statement.NewSelect(target)
	bindings = sel.Params()
	if parameterize {
		// re-capture now against the real statement's counter, in clause order
		bindings = sel.Params()
		_ = bindings
		sel = statement.NewSelect(expr.ThingLike(sel.Params(), "user:oyelowo").Build())
		bindings = sel.Params()
	}

	city := expr.NewField("city")
	strand := func(v string) expr.Value {
		if parameterize {
			return expr.StrandLike(bindings, v)
		}
		return expr.StrandLike(bindings, v) // still need a Value; raw form uses Raw() to re-inline
	}

	cond1 := expr.Is(city, strand("Prince Edward Island"))
	cond2 := expr.Is(city, strand("NewFoundland"))
	cond3 := expr.Like(city, strand("Toronto"))
	where := cond1.And(cond2).Or(cond3)

	age := expr.NewField("age")
	orderAge := expr.NewOrder(age, expr.Numeric(), expr.Direction(expr.OrderDesc))
	orderCity := expr.NewOrder(city, expr.Direction(expr.OrderAsc))

	limit := expr.NumberLike(bindings, 153)
	start := expr.NumberLike(bindings, 10)

	sel.Omit("age", "city").
		WithIndex("ft_city").
		Where(where).
		OrderBy(orderAge, orderCity).
		Limit(limit).
		StartAt(start).
		Parallel().
		Explain(true).
		As("legal_age")

	require.Empty(t, sel.Errors())
	return sel
}

func TestSelectRawForm(t *testing.T) {
	sel := buildScenario(t, false)
	assert.Equal(t,
		"(SELECT * OMIT age, city FROM user:oyelowo WITH INDEX ft_city WHERE (city IS $_param_00000001) AND (city IS $_param_00000002) OR (city ~ $_param_00000003) ORDER BY age NUMERIC DESC, city ASC LIMIT $_param_00000004 START AT $_param_00000005 PARALLEL EXPLAIN FULL) AS legal_age",
		sel.Build())
	assert.Equal(t,
		"(SELECT * OMIT age, city FROM user:oyelowo WITH INDEX ft_city WHERE (city IS 'Prince Edward Island') AND (city IS 'NewFoundland') OR (city ~ 'Toronto') ORDER BY age NUMERIC DESC, city ASC LIMIT 153 START AT 10 PARALLEL EXPLAIN FULL) AS legal_age",
		sel.Raw())
}

func TestSelectParameterizedForm(t *testing.T) {
	sel := statement.NewSelect()
	target := expr.ThingLike(sel.Params(), "user:oyelowo").Build()
	sel = statement.NewSelect(target)
	bindings := sel.Params()
	_ = bindings

	freshBindings := sel.Params()
	city := expr.NewField("city")
	cond1 := expr.Is(city, expr.StrandLike(freshBindings, "Prince Edward Island"))
	cond2 := expr.Is(city, expr.StrandLike(freshBindings, "NewFoundland"))
	cond3 := expr.Like(city, expr.StrandLike(freshBindings, "Toronto"))
	where := cond1.And(cond2).Or(cond3)

	age := expr.NewField("age")
	orderAge := expr.NewOrder(age, expr.Numeric(), expr.Direction(expr.OrderDesc))
	orderCity := expr.NewOrder(city, expr.Direction(expr.OrderAsc))

	limit := expr.NumberLike(freshBindings, 153)
	start := expr.NumberLike(freshBindings, 10)

	sel.Omit("age", "city").
		WithIndex("ft_city").
		Where(where).
		OrderBy(orderAge, orderCity).
		Limit(limit).
		StartAt(start).
		Parallel().
		Explain(true)

	got := sel.Build()
	assert.Equal(t,
		"SELECT * OMIT age, city FROM $_param_00000001 WITH INDEX ft_city WHERE (city IS $_param_00000002) AND (city IS $_param_00000003) OR (city ~ $_param_00000004) ORDER BY age NUMERIC DESC, city ASC LIMIT $_param_00000005 START AT $_param_00000006 PARALLEL EXPLAIN FULL;",
		got)

	bindingsList := sel.Bindings()
	require.Len(t, bindingsList, 6)
	assert.Equal(t, "user:oyelowo", bindingsList[0].Value)
	assert.Equal(t, "Prince Edward Island", bindingsList[1].Value)
	assert.Equal(t, 153, bindingsList[4].Value)
	assert.Equal(t, 10, bindingsList[5].Value)
}

// TestSelectRawFormWithCapturedThing guards against a captured ("thing"
// hinted) record id being re-inlined as a quoted string by Raw: it must
// come back out the same bare table:id form a non-captured record id would.
func TestSelectRawFormWithCapturedThing(t *testing.T) {
	sel := statement.NewSelect()
	target := expr.ThingLike(sel.Params(), "user:oyelowo").Build()
	sel = statement.NewSelect(target)

	require.Empty(t, sel.Errors())
	assert.Equal(t, "SELECT * FROM $_param_00000001;", sel.Build())
	assert.Equal(t, "SELECT * FROM user:oyelowo;", sel.Raw())
}

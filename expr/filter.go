package expr

import "github.com/oyelowo/surrealorm/param"

// Filter is a boolean expression tree node. Every leaf condition
// parenthesizes itself at construction time; And/Or/Not then concatenate
// text without adding further parentheses, so a chain of combinators
// reproduces exactly the grouping the caller wrote - the "conservative
// parenthesization" behaviour demonstrated by scenario 2 of spec.md §8,
// where `cond1.and(cond2).or(cond3)` builds as
// `(cond1) AND (cond2) OR (cond3)`, not `((cond1) AND (cond2)) OR (cond3)`.
type Filter struct{ base }

// Cond builds a leaf condition `(lhs op rhs)`.
func Cond(lhs Value, op string, rhs Value) Filter {
	f := base{text: "(" + lhs.Build() + " " + op + " " + rhs.Build() + ")"}
	f.bindings = append(f.bindings, lhs.GetBindings()...)
	f.bindings = append(f.bindings, rhs.GetBindings()...)
	f.errs = append(f.errs, lhs.GetErrors()...)
	f.errs = append(f.errs, rhs.GetErrors()...)
	return Filter{f}
}

func mergeBindings(a, b []param.Binding) []param.Binding {
	out := make([]param.Binding, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

func mergeErrs(a, b []error) []error {
	out := make([]error, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// And combines a AND b without adding parentheses around either operand.
func (a Filter) And(b Filter) Filter {
	return Filter{base{
		text:     a.text + " AND " + b.text,
		bindings: mergeBindings(a.bindings, b.bindings),
		errs:     mergeErrs(a.errs, b.errs),
	}}
}

// Or combines a OR b without adding parentheses around either operand.
func (a Filter) Or(b Filter) Filter {
	return Filter{base{
		text:     a.text + " OR " + b.text,
		bindings: mergeBindings(a.bindings, b.bindings),
		errs:     mergeErrs(a.errs, b.errs),
	}}
}

// Not negates a, wrapping it in its own parentheses.
func (a Filter) Not() Filter {
	return Filter{base{text: "NOT (" + a.text + ")", bindings: a.bindings, errs: a.errs}}
}

// Group wraps a in an explicit extra parenthesis, for when a caller wants to
// override conservative parenthesization and force a particular grouping.
func (a Filter) Group() Filter {
	return Filter{base{text: "(" + a.text + ")", bindings: a.bindings, errs: a.errs}}
}

// Common comparison operators, each producing a leaf Filter via Cond.
func Eq(lhs, rhs Value) Filter      { return Cond(lhs, "=", rhs) }
func Neq(lhs, rhs Value) Filter     { return Cond(lhs, "!=", rhs) }
func Is(lhs, rhs Value) Filter      { return Cond(lhs, "IS", rhs) }
func IsNot(lhs, rhs Value) Filter   { return Cond(lhs, "IS NOT", rhs) }
func Gt(lhs, rhs Value) Filter      { return Cond(lhs, ">", rhs) }
func Gte(lhs, rhs Value) Filter     { return Cond(lhs, ">=", rhs) }
func Lt(lhs, rhs Value) Filter      { return Cond(lhs, "<", rhs) }
func Lte(lhs, rhs Value) Filter     { return Cond(lhs, "<=", rhs) }
func Like(lhs, rhs Value) Filter    { return Cond(lhs, "~", rhs) }
func NotLike(lhs, rhs Value) Filter { return Cond(lhs, "!~", rhs) }
func Contains(lhs, rhs Value) Filter    { return Cond(lhs, "CONTAINS", rhs) }
func ContainsNot(lhs, rhs Value) Filter { return Cond(lhs, "CONTAINSNOT", rhs) }
func Inside(lhs, rhs Value) Filter      { return Cond(lhs, "INSIDE", rhs) }
func NotInside(lhs, rhs Value) Filter   { return Cond(lhs, "NOTINSIDE", rhs) }

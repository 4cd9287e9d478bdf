package statement

import "github.com/oyelowo/surrealorm/param"

// base is the shared accumulator every statement builder except Select
// embeds (Select holds the same two fields itself): its own parameter
// counter, and an error list (SPEC_FULL.md §4.4). Embedding a value (not a pointer) means each
// concrete builder owns an independent counter, matching spec.md §9's
// "the counter must be a local to each builder, not a process-wide
// global".
type base struct {
	bindings param.Bindings
	errs     []error
}

// Params exposes the statement's own binding counter so a caller can
// parameter-capture clause operands against it before handing the
// resulting expr.Value to a clause method.
func (b *base) Params() *param.Bindings { return &b.bindings }

// Bindings returns every value captured against this statement, in
// capture order.
func (b *base) Bindings() []param.Binding { return b.bindings.List() }

func (b *base) addErr(err error) {
	if err != nil {
		b.errs = append(b.errs, err)
	}
}

func (b *base) addErrs(errs []error) {
	b.errs = append(b.errs, errs...)
}

// semicolon appends the trailing semicolon every top-level statement
// carries, per spec.md §6, unless alias is non-empty (an aliased
// statement is embedded as an expression and never gets one).
func semicolon(s, alias string) string {
	if alias != "" {
		return "(" + s + ") AS " + alias
	}
	return s + ";"
}

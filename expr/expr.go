// Package expr implements the expression primitives shared by every
// statement builder: fields, tables, record ids, functions, filters,
// orderings, aliases, and the semantic-role coercions that let a raw Go
// value or another primitive be reinterpreted as a duration, number,
// datetime, strand, geometry, object, thing, or array wherever the grammar
// calls for one (SPEC_FULL.md §4.3, §9).
package expr

import "github.com/oyelowo/surrealorm/param"

// Buildable is implemented by every primitive that contributes a textual
// fragment to a query.
type Buildable interface {
	Build() string
}

// Parametric is implemented by every primitive that may have captured
// bindings.
type Parametric interface {
	GetBindings() []param.Binding
}

// Erroneous is implemented by every primitive that may have accumulated
// structured errors.
type Erroneous interface {
	GetErrors() []error
}

// Value is the common contract every expression primitive satisfies
// (spec.md §3 "Expression primitive"): build(), bindings, errors.
type Value interface {
	Buildable
	Parametric
	Erroneous
}

// base is the shared accumulator embedded by every concrete primitive.
type base struct {
	text     string
	bindings []param.Binding
	errs     []error
}

func (b base) Build() string               { return b.text }
func (b base) GetBindings() []param.Binding { return b.bindings }
func (b base) GetErrors() []error           { return b.errs }

// Raw renders built with every `$name` placeholder substituted back with its
// bound value's literal text form, for debugging/printing. It mirrors the
// `ToRaw` lane of the original builder API (see SPEC_FULL.md §4.3): `Build`
// is the wire form passed to a driver, `Raw` is the human-readable form used
// in scenario 2 of spec.md §8.
func Raw(built string, bindings []param.Binding) string {
	out := built
	for _, b := range bindings {
		out = replaceAll(out, b.Placeholder(), FormatLiteral(b.Hint, b.Value))
	}
	return out
}

func replaceAll(s, old, new string) string {
	if old == "" {
		return s
	}
	var out []byte
	for {
		i := indexOf(s, old)
		if i < 0 {
			out = append(out, s...)
			break
		}
		out = append(out, s[:i]...)
		out = append(out, new...)
		s = s[i+len(old):]
	}
	return string(out)
}

func indexOf(s, sub string) int {
	n, m := len(s), len(sub)
	if m == 0 || m > n {
		return -1
	}
	for i := 0; i+m <= n; i++ {
		if s[i:i+m] == sub {
			return i
		}
	}
	return -1
}

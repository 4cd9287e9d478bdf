package expr

import (
	"strings"

	"github.com/oyelowo/surrealorm/param"
)

// ArrayOf builds an inline array literal from a mix of plain Go values and
// expression primitives (fields, functions, ...), mirroring the `array!`
// macro of _examples/original_source/rust/surreal-derive and scenario 1 of
// spec.md §8: every plain literal is still parameter-captured (so callers
// can introspect exactly what was bound) but is rendered inline in the
// built text, while a primitive argument contributes its own fragment
// verbatim with no new binding.
func ArrayOf(bindings *param.Bindings, items ...any) Value {
	parts := make([]string, len(items))
	acc := base{}
	for i, item := range items {
		if v, ok := item.(Value); ok {
			parts[i] = v.Build()
			acc.bindings = append(acc.bindings, v.GetBindings()...)
			acc.errs = append(acc.errs, v.GetErrors()...)
			continue
		}
		b := bindings.Bind(item)
		acc.bindings = append(acc.bindings, b)
		parts[i] = FormatLiteral(b.Hint, b.Value)
	}
	acc.text = "[" + strings.Join(parts, ", ") + "]"
	return acc
}

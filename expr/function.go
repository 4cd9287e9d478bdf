package expr

import "strings"

// Function is a namespaced function call, e.g. `array::add(numbers, $value)`
// or `string::concat("a", "b")`. Grounded in
// _examples/original_source/query-builder/src/functions/*.rs, where every
// `*_fn` helper builds one of these from its arguments' fragments, bindings,
// and errors.
type Function struct{ base }

// NewFunction builds a Function named name (e.g. "array::add") from args,
// concatenating each argument's bindings and errors in order.
func NewFunction(name string, args ...Value) Function {
	return buildFunction(name, args)
}

func buildFunction(name string, args []Value) Function {
	parts := make([]string, len(args))
	f := base{}
	for i, a := range args {
		parts[i] = a.Build()
		f.bindings = append(f.bindings, a.GetBindings()...)
		f.errs = append(f.errs, a.GetErrors()...)
	}
	f.text = name + "(" + strings.Join(parts, ", ") + ")"
	return Function{f}
}

// Package arrayfn implements the `array::*` function catalog of spec.md
// §4.5. Every function is a small factory taking already-built
// expr.Value arguments (fields, captured literals, nested function
// calls, ...) and producing an expr.Function whose bindings/errors are
// the concatenation of its arguments', per spec.md §4.5: "its bindings
// are the concatenation of its arguments' bindings... its printed form is
// ns::name(arg, ...)". Grounded semantically (not textually) on
// _examples/original_source/query-builder/src/functions/array.rs.
package arrayfn

import "github.com/oyelowo/surrealorm/expr"

func call(name string, args ...expr.Value) expr.Function {
	return expr.NewFunction("array::"+name, args...)
}

func Add(arr, value expr.Value) expr.Function            { return call("add", arr, value) }
func All(arr expr.Value) expr.Function                    { return call("all", arr) }
func Any(arr expr.Value) expr.Function                    { return call("any", arr) }
func Append(arr, value expr.Value) expr.Function          { return call("append", arr, value) }
func Concat(arrays ...expr.Value) expr.Function           { return call("concat", arrays...) }
func Union(a, b expr.Value) expr.Function                 { return call("union", a, b) }
func Difference(a, b expr.Value) expr.Function             { return call("difference", a, b) }
func Intersect(a, b expr.Value) expr.Function             { return call("intersect", a, b) }
func Complement(a, b expr.Value) expr.Function             { return call("complement", a, b) }
func Combine(a, b expr.Value) expr.Function                { return call("combine", a, b) }
func BooleanAnd(a, b expr.Value) expr.Function             { return call("boolean_and", a, b) }
func BooleanOr(a, b expr.Value) expr.Function              { return call("boolean_or", a, b) }
func BooleanXor(a, b expr.Value) expr.Function             { return call("boolean_xor", a, b) }
func BooleanNot(a expr.Value) expr.Function                 { return call("boolean_not", a) }
func LogicalAnd(a, b expr.Value) expr.Function              { return call("logical_and", a, b) }
func LogicalOr(a, b expr.Value) expr.Function               { return call("logical_or", a, b) }
func LogicalXor(a, b expr.Value) expr.Function              { return call("logical_xor", a, b) }
func First(arr expr.Value) expr.Function                    { return call("first", arr) }
func Last(arr expr.Value) expr.Function                     { return call("last", arr) }
func Max(arr expr.Value) expr.Function                      { return call("max", arr) }
func Min(arr expr.Value) expr.Function                      { return call("min", arr) }
func Transpose(arrays ...expr.Value) expr.Function           { return call("transpose", arrays...) }
func Matches(arr, value expr.Value) expr.Function            { return call("matches", arr, value) }
func At(arr, index expr.Value) expr.Function                 { return call("at", arr, index) }
func Clump(arr, size expr.Value) expr.Function                { return call("clump", arr, size) }
func Distinct(arr expr.Value) expr.Function                   { return call("distinct", arr) }
func Find(arr, value expr.Value) expr.Function                { return call("find", arr, value) }
func FindIndex(arr, value expr.Value) expr.Function            { return call("find_index", arr, value) }
func FilterIndex(arr, value expr.Value) expr.Function           { return call("filter_index", arr, value) }
func Flatten(arr expr.Value) expr.Function                     { return call("flatten", arr) }
func Group(arrays ...expr.Value) expr.Function                  { return call("group", arrays...) }
func Insert(arr, value, index expr.Value) expr.Function         { return call("insert", arr, value, index) }
func Len(arr expr.Value) expr.Function                          { return call("len", arr) }
func Pop(arr expr.Value) expr.Function                          { return call("pop", arr) }
func Prepend(arr, value expr.Value) expr.Function                { return call("prepend", arr, value) }
func Push(arr, value expr.Value) expr.Function                   { return call("push", arr, value) }
func Remove(arr, index expr.Value) expr.Function                 { return call("remove", arr, index) }
func Reverse(arr expr.Value) expr.Function                       { return call("reverse", arr) }
func SortAsc(arr expr.Value) expr.Function                       { return call("sort::asc", arr) }
func SortDesc(arr expr.Value) expr.Function                      { return call("sort::desc", arr) }
func Sort(arr, order expr.Value) expr.Function                   { return call("sort", arr, order) }
func Slice(arr, start, length expr.Value) expr.Function          { return call("slice", arr, start, length) }
func Join(arr, sep expr.Value) expr.Function                     { return call("join", arr, sep) }

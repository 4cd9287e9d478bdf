// Package stringfn implements the `string::*` function catalog of
// spec.md §4.5, including the `string::is::*`, `string::distance::*`, and
// `string::similarity::*` sub-namespaces. Grounded semantically on
// _examples/original_source/query-builder/src/functions/string.rs.
package stringfn

import "github.com/oyelowo/surrealorm/expr"

func call(name string, args ...expr.Value) expr.Function {
	return expr.NewFunction("string::"+name, args...)
}

func Concat(parts ...expr.Value) expr.Function      { return call("concat", parts...) }
func Contains(s, sub expr.Value) expr.Function       { return call("contains", s, sub) }
func EndsWith(s, suffix expr.Value) expr.Function    { return call("endsWith", s, suffix) }
func StartsWith(s, prefix expr.Value) expr.Function  { return call("startsWith", s, prefix) }
func Join(sep expr.Value, parts ...expr.Value) expr.Function {
	return call("join", append([]expr.Value{sep}, parts...)...)
}
func Length(s expr.Value) expr.Function           { return call("length", s) }
func Lowercase(s expr.Value) expr.Function        { return call("lowercase", s) }
func Uppercase(s expr.Value) expr.Function        { return call("uppercase", s) }
func Repeat(s, n expr.Value) expr.Function        { return call("repeat", s, n) }
func Replace(s, find, with expr.Value) expr.Function { return call("replace", s, find, with) }
func Reverse(s expr.Value) expr.Function          { return call("reverse", s) }
func Slice(s, start, length expr.Value) expr.Function { return call("slice", s, start, length) }
func Slug(s expr.Value) expr.Function             { return call("slug", s) }
func Split(s, sep expr.Value) expr.Function       { return call("split", s, sep) }
func Trim(s expr.Value) expr.Function             { return call("trim", s) }
func Words(s expr.Value) expr.Function            { return call("words", s) }

func is(name string, s expr.Value) expr.Function { return expr.NewFunction("string::is::"+name, s) }

func IsAlphanum(s expr.Value) expr.Function   { return is("alphanum", s) }
func IsAlpha(s expr.Value) expr.Function      { return is("alpha", s) }
func IsAscii(s expr.Value) expr.Function      { return is("ascii", s) }
func IsDatetime(s, format expr.Value) expr.Function {
	return expr.NewFunction("string::is::datetime", s, format)
}
func IsDomain(s expr.Value) expr.Function      { return is("domain", s) }
func IsEmail(s expr.Value) expr.Function       { return is("email", s) }
func IsHexadecimal(s expr.Value) expr.Function { return is("hexadecimal", s) }
func IsLatitude(s expr.Value) expr.Function    { return is("latitude", s) }
func IsLongitude(s expr.Value) expr.Function   { return is("longitude", s) }
func IsNumeric(s expr.Value) expr.Function     { return is("numeric", s) }
func IsSemver(s expr.Value) expr.Function      { return is("semver", s) }
func IsUUID(s expr.Value) expr.Function        { return is("uuid", s) }

func IsFormat(s, format expr.Value) expr.Function {
	return expr.NewFunction("string::is::format", s, format)
}

func distance(name string, a, b expr.Value) expr.Function {
	return expr.NewFunction("string::distance::"+name, a, b)
}

func DistanceHamming(a, b expr.Value) expr.Function     { return distance("hamming", a, b) }
func DistanceLevenshtein(a, b expr.Value) expr.Function { return distance("levenshtein", a, b) }

func similarity(name string, a, b expr.Value) expr.Function {
	return expr.NewFunction("string::similarity::"+name, a, b)
}

func SimilarityFuzzy(a, b expr.Value) expr.Function        { return similarity("fuzzy", a, b) }
func SimilarityJaro(a, b expr.Value) expr.Function          { return similarity("jaro", a, b) }
func SimilaritySmithWaterman(a, b expr.Value) expr.Function { return similarity("smithwaterman", a, b) }

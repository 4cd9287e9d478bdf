// Package timefn implements the `time::*` function catalog of spec.md
// §4.5, including the `time::from::*` sub-namespace. Grounded
// semantically on
// _examples/original_source/query-builder/src/functions/time.rs (and
// scenario 5 of spec.md §8, `time::group(datetime, "month")`).
package timefn

import "github.com/oyelowo/surrealorm/expr"

func call(name string, args ...expr.Value) expr.Function {
	return expr.NewFunction("time::"+name, args...)
}

func Now() expr.Function                     { return call("now") }
func Day(t expr.Value) expr.Function         { return call("day", t) }
func Hour(t expr.Value) expr.Function        { return call("hour", t) }
func Minute(t expr.Value) expr.Function      { return call("minute", t) }
func Month(t expr.Value) expr.Function       { return call("month", t) }
func Nano(t expr.Value) expr.Function        { return call("nano", t) }
func Second(t expr.Value) expr.Function      { return call("second", t) }
func Unix(t expr.Value) expr.Function        { return call("unix", t) }
func Wday(t expr.Value) expr.Function        { return call("wday", t) }
func Week(t expr.Value) expr.Function        { return call("week", t) }
func Yday(t expr.Value) expr.Function        { return call("yday", t) }
func Year(t expr.Value) expr.Function        { return call("year", t) }
func Floor(t, d expr.Value) expr.Function    { return call("floor", t, d) }
func Ceil(t, d expr.Value) expr.Function     { return call("ceil", t, d) }
func Round(t, d expr.Value) expr.Function    { return call("round", t, d) }
func Group(t, interval expr.Value) expr.Function { return call("group", t, interval) }
func Format(t, format expr.Value) expr.Function  { return call("format", t, format) }
func Timezone() expr.Function                { return call("timezone") }
func Max(times expr.Value) expr.Function     { return call("max", times) }
func Min(times expr.Value) expr.Function     { return call("min", times) }

func from(name string, v expr.Value) expr.Function { return expr.NewFunction("time::from::"+name, v) }

func FromMicros(v expr.Value) expr.Function { return from("micros", v) }
func FromMillis(v expr.Value) expr.Function { return from("millis", v) }
func FromSecs(v expr.Value) expr.Function   { return from("secs", v) }
func FromUnix(v expr.Value) expr.Function   { return from("unix", v) }

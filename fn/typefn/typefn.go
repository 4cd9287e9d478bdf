// Package typefn implements the `type::*` function catalog of spec.md
// §4.5, including the `type::is::*` sub-namespace. Grounded semantically
// on _examples/original_source/query-builder/src/functions/type_.rs.
package typefn

import "github.com/oyelowo/surrealorm/expr"

func call(name string, args ...expr.Value) expr.Function {
	return expr.NewFunction("type::"+name, args...)
}

func Bool(v expr.Value) expr.Function     { return call("bool", v) }
func Datetime(v expr.Value) expr.Function { return call("datetime", v) }
func Duration(v expr.Value) expr.Function { return call("duration", v) }
func Field(v expr.Value) expr.Function    { return call("field", v) }
func Fields(v expr.Value) expr.Function   { return call("fields", v) }
func Float(v expr.Value) expr.Function    { return call("float", v) }
func Int(v expr.Value) expr.Function      { return call("int", v) }
func Number(v expr.Value) expr.Function    { return call("number", v) }
func String(v expr.Value) expr.Function   { return call("string", v) }
func Regex(v expr.Value) expr.Function    { return call("regex", v) }
func Table(v expr.Value) expr.Function    { return call("table", v) }
func Point(x, y expr.Value) expr.Function { return call("point", x, y) }
func Thing(table, id expr.Value) expr.Function { return call("thing", table, id) }

func is(name string, v expr.Value) expr.Function { return expr.NewFunction("type::is::"+name, v) }

func IsArray(v expr.Value) expr.Function        { return is("array", v) }
func IsBool(v expr.Value) expr.Function         { return is("bool", v) }
func IsBytes(v expr.Value) expr.Function        { return is("bytes", v) }
func IsCollection(v expr.Value) expr.Function    { return is("collection", v) }
func IsDatetime(v expr.Value) expr.Function      { return is("datetime", v) }
func IsDecimal(v expr.Value) expr.Function       { return is("decimal", v) }
func IsDuration(v expr.Value) expr.Function       { return is("duration", v) }
func IsFloat(v expr.Value) expr.Function          { return is("float", v) }
func IsGeometry(v expr.Value) expr.Function       { return is("geometry", v) }
func IsInt(v expr.Value) expr.Function            { return is("int", v) }
func IsLine(v expr.Value) expr.Function           { return is("line", v) }
func IsMultiline(v expr.Value) expr.Function      { return is("multiline", v) }
func IsMultipoint(v expr.Value) expr.Function      { return is("multipoint", v) }
func IsMultipolygon(v expr.Value) expr.Function    { return is("multipolygon", v) }
func IsNull(v expr.Value) expr.Function            { return is("null", v) }
func IsNumber(v expr.Value) expr.Function          { return is("number", v) }
func IsObject(v expr.Value) expr.Function          { return is("object", v) }
func IsPoint(v expr.Value) expr.Function           { return is("point", v) }
func IsPolygon(v expr.Value) expr.Function         { return is("polygon", v) }
func IsRecord(v expr.Value) expr.Function          { return is("record", v) }
func IsString(v expr.Value) expr.Function          { return is("string", v) }
func IsUUID(v expr.Value) expr.Function            { return is("uuid", v) }

// Package types implements the field-type mini-language: a small closed
// taxonomy of database value shapes (primitives, record links, geometries,
// option/union, array/set) together with a parser and printer that round-trip
// on every well-formed type.
package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the variants of FieldType.
type Kind int

const (
	KindAny Kind = iota
	KindNull
	KindBool
	KindBytes
	KindString
	KindInt
	KindFloat
	KindDecimal
	KindNumber
	KindDatetime
	KindDuration
	KindUUID
	KindObject
	KindRecord
	KindGeometry
	KindOption
	KindUnion
	KindArray
	KindSet
)

// GeometryKind enumerates the GeoJSON-flavoured geometry shapes SurrealQL
// recognizes for a `geometry<...>` field.
type GeometryKind int

const (
	GeometryFeature GeometryKind = iota
	GeometryPoint
	GeometryLineString
	GeometryPolygon
	GeometryMultiPoint
	GeometryMultiLine
	GeometryMultiPolygon
	GeometryCollection
)

var geometryNames = [...]string{
	GeometryFeature:      "feature",
	GeometryPoint:        "point",
	GeometryLineString:   "LineString",
	GeometryPolygon:      "polygon",
	GeometryMultiPoint:   "multipoint",
	GeometryMultiLine:    "multiline",
	GeometryMultiPolygon: "multipolygon",
	GeometryCollection:   "collection",
}

func (g GeometryKind) String() string {
	if int(g) < 0 || int(g) >= len(geometryNames) {
		return "feature"
	}
	return geometryNames[g]
}

// ParseGeometryKind parses a single geometry keyword (e.g. "point").
func ParseGeometryKind(s string) (GeometryKind, error) {
	for k, name := range geometryNames {
		if name == s {
			return GeometryKind(k), nil
		}
	}
	return 0, fmt.Errorf("types: invalid geometry kind %q", s)
}

// FieldType is a tagged union over every shape the mini-language grammar
// allows. The zero value is Any, matching the grammar's most permissive type.
type FieldType struct {
	kind Kind

	// Record / Geometry: ordered sequence of table names / geometry kinds.
	tables     []string
	geometries []GeometryKind

	// Option / Array / Set: the wrapped/element type.
	inner *FieldType

	// Union: the ordered list of alternatives (len >= 2).
	alts []FieldType

	// Array / Set: optional maximum length.
	maxLen    uint64
	hasMaxLen bool
}

// Any is the permissive "no declared type" field type.
func Any() FieldType { return FieldType{kind: KindAny} }

func primitive(k Kind) FieldType { return FieldType{kind: k} }

func Null() FieldType     { return primitive(KindNull) }
func Bool() FieldType     { return primitive(KindBool) }
func Bytes() FieldType    { return primitive(KindBytes) }
func String() FieldType   { return primitive(KindString) }
func Int() FieldType      { return primitive(KindInt) }
func Float() FieldType    { return primitive(KindFloat) }
func Decimal() FieldType  { return primitive(KindDecimal) }
func Number() FieldType   { return primitive(KindNumber) }
func Datetime() FieldType { return primitive(KindDatetime) }
func Duration() FieldType { return primitive(KindDuration) }
func UUID() FieldType     { return primitive(KindUUID) }
func Object() FieldType   { return primitive(KindObject) }

// Record builds a `record<t1|t2|...>` type. An empty list means "any table".
func Record(tables ...string) FieldType {
	return FieldType{kind: KindRecord, tables: append([]string(nil), tables...)}
}

// Geometry builds a `geometry<k1|k2|...>` type. An empty list means "any
// geometry (feature)".
func Geometry(kinds ...GeometryKind) FieldType {
	return FieldType{kind: KindGeometry, geometries: append([]GeometryKind(nil), kinds...)}
}

// Option wraps a type as `option<inner>`.
func Option(inner FieldType) FieldType {
	return FieldType{kind: KindOption, inner: &inner}
}

// Union builds a `t1 | t2 | ...` type. A single alternative flattens to
// itself, matching the grammar's printer rule.
func Union(alts ...FieldType) FieldType {
	if len(alts) == 1 {
		return alts[0]
	}
	return FieldType{kind: KindUnion, alts: append([]FieldType(nil), alts...)}
}

// Array builds an `array<inner, maxLen?>` type.
func Array(inner FieldType, maxLen *uint64) FieldType {
	ft := FieldType{kind: KindArray, inner: &inner}
	if maxLen != nil {
		ft.maxLen, ft.hasMaxLen = *maxLen, true
	}
	return ft
}

// Set builds a `set<inner, maxLen?>` type.
func Set(inner FieldType, maxLen *uint64) FieldType {
	ft := FieldType{kind: KindSet, inner: &inner}
	if maxLen != nil {
		ft.maxLen, ft.hasMaxLen = *maxLen, true
	}
	return ft
}

// Kind returns the discriminant of the type.
func (t FieldType) Kind() Kind { return t.kind }

// Tables returns the record's reference tables (empty means any table).
func (t FieldType) Tables() []string { return t.tables }

// Geometries returns the geometry's allowed kinds (empty means any/feature).
func (t FieldType) Geometries() []GeometryKind { return t.geometries }

// Inner returns the wrapped type for Option/Array/Set, or nil otherwise.
func (t FieldType) Inner() *FieldType { return t.inner }

// Alternatives returns the union's member types.
func (t FieldType) Alternatives() []FieldType { return t.alts }

// MaxLen returns the declared maximum length and whether one was given.
func (t FieldType) MaxLen() (uint64, bool) { return t.maxLen, t.hasMaxLen }

// Predicates ----------------------------------------------------------------

func (t FieldType) IsAny() bool      { return t.kind == KindAny }
func (t FieldType) IsNull() bool     { return t.kind == KindNull }
func (t FieldType) IsBool() bool     { return t.kind == KindBool }
func (t FieldType) IsBytes() bool    { return t.kind == KindBytes }
func (t FieldType) IsString() bool   { return t.kind == KindString }
func (t FieldType) IsInt() bool      { return t.kind == KindInt }
func (t FieldType) IsFloat() bool    { return t.kind == KindFloat }
func (t FieldType) IsDecimal() bool  { return t.kind == KindDecimal }
func (t FieldType) IsNumber() bool   { return t.kind == KindNumber }
func (t FieldType) IsDatetime() bool { return t.kind == KindDatetime }
func (t FieldType) IsDuration() bool { return t.kind == KindDuration }
func (t FieldType) IsUUID() bool     { return t.kind == KindUUID }
func (t FieldType) IsObject() bool   { return t.kind == KindObject }
func (t FieldType) IsRecord() bool   { return t.kind == KindRecord }
func (t FieldType) IsGeometry() bool { return t.kind == KindGeometry }
func (t FieldType) IsOption() bool   { return t.kind == KindOption }
func (t FieldType) IsUnion() bool    { return t.kind == KindUnion }
func (t FieldType) IsArray() bool    { return t.kind == KindArray }
func (t FieldType) IsSet() bool      { return t.kind == KindSet }

// IsCollection reports whether the type is an array or a set.
func (t FieldType) IsCollection() bool { return t.kind == KindArray || t.kind == KindSet }

// IsPrimitive reports whether the type is one of the scalar leaf kinds.
func (t FieldType) IsPrimitive() bool {
	switch t.kind {
	case KindNull, KindBool, KindBytes, KindDatetime, KindDecimal, KindDuration,
		KindFloat, KindInt, KindNumber, KindObject, KindString, KindUUID:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether the type is Decimal, Float, Int, or Number.
func (t FieldType) IsNumeric() bool {
	switch t.kind {
	case KindDecimal, KindFloat, KindInt, KindNumber:
		return true
	default:
		return false
	}
}

// IsEmptyRecord reports whether the type is `record` with no reference tables.
func (t FieldType) IsEmptyRecord() bool { return t.kind == KindRecord && len(t.tables) == 0 }

// IsEmptyGeometry reports whether the type is `geometry` with no reference kinds.
func (t FieldType) IsEmptyGeometry() bool { return t.kind == KindGeometry && len(t.geometries) == 0 }

// IsRecordOf reports whether the type is a record whose *first* listed table
// matches table. An empty table argument never matches.
func (t FieldType) IsRecordOf(table string) bool {
	if table == "" || t.kind != KindRecord || len(t.tables) == 0 {
		return false
	}
	return t.tables[0] == table
}

// String renders the type back into mini-language source. print(parse(s)) == s
// (modulo normalized spacing around `|`) for every well-formed s, except that
// a bare record, geometry, array or set prints with its explicit default
// argument (record<any>, geometry<feature>, array<any>, set<any>).
func (t FieldType) String() string {
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t FieldType) write(b *strings.Builder) {
	switch t.kind {
	case KindAny:
		b.WriteString("any")
	case KindNull:
		b.WriteString("null")
	case KindBool:
		b.WriteString("bool")
	case KindBytes:
		b.WriteString("bytes")
	case KindString:
		b.WriteString("string")
	case KindInt:
		b.WriteString("int")
	case KindFloat:
		b.WriteString("float")
	case KindDecimal:
		b.WriteString("decimal")
	case KindNumber:
		b.WriteString("number")
	case KindDatetime:
		b.WriteString("datetime")
	case KindDuration:
		b.WriteString("duration")
	case KindUUID:
		b.WriteString("uuid")
	case KindObject:
		b.WriteString("object")
	case KindRecord:
		if len(t.tables) == 0 {
			b.WriteString("record<any>")
			return
		}
		b.WriteString("record<")
		b.WriteString(strings.Join(t.tables, "|"))
		b.WriteString(">")
	case KindGeometry:
		if len(t.geometries) == 0 {
			b.WriteString("geometry<feature>")
			return
		}
		b.WriteString("geometry<")
		for i, g := range t.geometries {
			if i > 0 {
				b.WriteString("|")
			}
			b.WriteString(g.String())
		}
		b.WriteString(">")
	case KindOption:
		b.WriteString("option<")
		t.inner.write(b)
		b.WriteString(">")
	case KindUnion:
		for i, alt := range t.alts {
			if i > 0 {
				b.WriteString(" | ")
			}
			alt.write(b)
		}
	case KindArray:
		b.WriteString("array<")
		t.inner.write(b)
		if t.hasMaxLen {
			b.WriteString(", ")
			b.WriteString(strconv.FormatUint(t.maxLen, 10))
		}
		b.WriteString(">")
	case KindSet:
		b.WriteString("set<")
		t.inner.write(b)
		if t.hasMaxLen {
			b.WriteString(", ")
			b.WriteString(strconv.FormatUint(t.maxLen, 10))
		}
		b.WriteString(">")
	}
}

// Equal reports whether two field types have the same kind and print the
// same text; types that differ only in ways String does not show (such as
// Record() and Record("any")) compare equal.
func (t FieldType) Equal(other FieldType) bool {
	return t.String() == other.String() && t.kind == other.kind
}

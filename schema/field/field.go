// Package field implements the fluent field-spec builder a schema
// declaration uses to describe one field of a table (SPEC_FULL.md §4.6).
// It covers exactly the closed attribute set of spec.md §4.6: rename,
// type, link_one/link_self/link_many, nest_object/nest_array,
// assert/assert_fn, value/value_fn, define/define_fn,
// permissions/permissions_fn, item_assert/item_assert_fn, old_name,
// skip/skip_serializing. Grounded in the teacher's schema/field builder
// style (fluent, descriptor-accumulating), generalized from Go-typed SQL
// columns to the field-type mini-language of types.FieldType.
package field

// GoKind records which Go-level constructor built a Descriptor, standing
// in for spec.md §4.6 rule 7's "inspect the language-level type" step:
// since every constructor below is already type-specific (String, Int,
// ...), the language-level type is known at declaration time rather than
// recovered later by reflection.
type GoKind int

const (
	KindInvalid GoKind = iota
	KindBool
	KindString
	KindInt
	KindFloat
	KindDecimal
	KindBytes
	KindTime
	KindDuration
	KindUUID
	KindJSON     // object / map
	KindSlice    // array / vector
	KindSet      // go set (distinct unordered collection)
	KindGeometry // point, line, polygon, ...
)

// Descriptor is the accumulated metadata for one field. Nothing in this
// type panics or validates; Derive (package schema) is solely responsible
// for turning a Descriptor into a FieldType and for raising diagnostics on
// conflicting attributes.
type Descriptor struct {
	Name   string
	GoKind GoKind

	Rename  string
	OldName string
	Type    string // explicit mini-language annotation; "" = infer

	LinkOne  string
	LinkSelf bool
	LinkMany string

	NestObject string // target table name for an embedded object
	NestArray  string // target table name for an array of embedded objects

	Assert   string
	AssertFn func() string

	Value   string
	ValueFn func() string

	Define   string
	DefineFn func() string

	Permissions   string
	PermissionsFn func() string

	ItemAssert   string
	ItemAssertFn func() string

	Skip            bool
	SkipSerializing bool
}

// Field is the fluent builder wrapping a Descriptor. Every method
// mutates and returns the receiver, matching the teacher's
// descriptor-accumulating field builder.
type Field struct{ d *Descriptor }

// Descriptor returns the accumulated descriptor, matching the teacher's
// velox.Field contract (Descriptor() *field.Descriptor).
func (f Field) Descriptor() *Descriptor { return f.d }

func newField(name string, kind GoKind) Field {
	return Field{d: &Descriptor{Name: name, GoKind: kind}}
}

func Bool(name string) Field     { return newField(name, KindBool) }
func String(name string) Field   { return newField(name, KindString) }
func Int(name string) Field      { return newField(name, KindInt) }
func Float(name string) Field    { return newField(name, KindFloat) }
func Decimal(name string) Field  { return newField(name, KindDecimal) }
func Bytes(name string) Field    { return newField(name, KindBytes) }
func Time(name string) Field     { return newField(name, KindTime) }
func Duration(name string) Field { return newField(name, KindDuration) }
func UUID(name string) Field     { return newField(name, KindUUID) }
func JSON(name string) Field     { return newField(name, KindJSON) }
func Slice(name string) Field    { return newField(name, KindSlice) }
func Set(name string) Field      { return newField(name, KindSet) }
func Geometry(name string) Field { return newField(name, KindGeometry) }

// Rename changes the serialized field name.
func (f Field) Rename(name string) Field { f.d.Rename = name; return f }

// OldName records the previous serialized name, surfaced to external
// migration tooling only; core never acts on it.
func (f Field) OldName(name string) Field { f.d.OldName = name; return f }

// Type sets an explicit field-type mini-language annotation, superseding
// inference.
func (f Field) Type(t string) Field { f.d.Type = t; return f }

// LinkOne declares this field a reference to exactly one record in table.
func (f Field) LinkOne(table string) Field { f.d.LinkOne = table; return f }

// LinkSelf declares this field a reference to exactly one record in the
// owning table itself.
func (f Field) LinkSelf() Field { f.d.LinkSelf = true; return f }

// LinkMany declares this field a reference to many records in table.
func (f Field) LinkMany(table string) Field { f.d.LinkMany = table; return f }

// NestObject declares this field an embedded object whose schema is table.
func (f Field) NestObject(table string) Field { f.d.NestObject = table; return f }

// NestArray declares this field an array of embedded objects of table.
func (f Field) NestArray(table string) Field { f.d.NestArray = table; return f }

// Assert attaches a literal ASSERT expression.
func (f Field) Assert(expr string) Field { f.d.Assert = expr; return f }

// AssertFn attaches a function-producing ASSERT expression.
func (f Field) AssertFn(fn func() string) Field { f.d.AssertFn = fn; return f }

// Value attaches a literal default VALUE expression.
func (f Field) Value(expr string) Field { f.d.Value = expr; return f }

// ValueFn attaches a function-producing default VALUE expression.
func (f Field) ValueFn(fn func() string) Field { f.d.ValueFn = fn; return f }

// Define overrides the entire field definition with a raw string.
func (f Field) Define(stmt string) Field { f.d.Define = stmt; return f }

// DefineFn overrides the entire field definition with a function.
func (f Field) DefineFn(fn func() string) Field { f.d.DefineFn = fn; return f }

// Permissions attaches a literal PERMISSIONS clause.
func (f Field) Permissions(clause string) Field { f.d.Permissions = clause; return f }

// PermissionsFn attaches a function-producing PERMISSIONS clause.
func (f Field) PermissionsFn(fn func() string) Field { f.d.PermissionsFn = fn; return f }

// ItemAssert attaches a per-item ASSERT expression; valid only on array/set
// fields (enforced by schema.Derive).
func (f Field) ItemAssert(expr string) Field { f.d.ItemAssert = expr; return f }

// ItemAssertFn attaches a function-producing per-item ASSERT expression.
func (f Field) ItemAssertFn(fn func() string) Field { f.d.ItemAssertFn = fn; return f }

// Skip omits the field from serialization and from generated schema
// members entirely.
func (f Field) Skip() Field { f.d.Skip = true; return f }

// SkipSerializing omits the field from serialization but keeps it in the
// generated schema members (e.g. a server-computed field).
func (f Field) SkipSerializing() Field { f.d.SkipSerializing = true; return f }

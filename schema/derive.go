package schema

import (
	"reflect"

	"github.com/go-openapi/inflect"
	"github.com/oyelowo/surrealorm/schema/field"
	"github.com/oyelowo/surrealorm/types"
)

var ruleset = inflect.NewDefaultRuleset()

// Derive inspects a zero-value schema declaration (e.g. User{}) and
// produces the runtime schema object plus every diagnostic and assertion
// spec.md §4.6/§7 calls for. It never panics: a declaration with
// conflicting attributes still yields an *Object (so unrelated fields
// remain usable) alongside the diagnostics describing what is wrong.
func Derive(decl any) (*Object, []Diagnostic, []Assertion) {
	rt := reflect.TypeOf(decl)
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	kind := NodeKind
	if k, ok := decl.(kinder); ok {
		kind = k.Kind()
	}
	cfg := Config{}
	if c, ok := decl.(configer); ok {
		cfg = c.Config()
	}
	table := cfg.TableName
	if table == "" {
		table = ruleset.Underscore(rt.Name())
	}

	var specs []field.Field
	if f, ok := decl.(fielder); ok {
		specs = f.Fields()
	}

	obj := &Object{
		table:     table,
		tableKind: kind,
		config:    cfg,
		fields:    map[string]*FieldHandle{},
	}

	var diags []Diagnostic
	var asserts []Assertion
	hasIn, hasOut := false, false

	for _, spec := range specs {
		d := spec.Descriptor()
		if d.Skip {
			continue
		}
		ft, fieldDiags, fieldAsserts := deriveFieldType(table, kind, d)
		diags = append(diags, fieldDiags...)
		asserts = append(asserts, fieldAsserts...)

		if d.Name == "in" {
			hasIn = true
		} else if d.Name == "out" {
			hasOut = true
		}

		name := d.Name
		if d.Rename != "" {
			name = d.Rename
		} else if cfg.RenameAll == "snake_case" {
			name = ruleset.Underscore(name)
		}

		obj.order = append(obj.order, d.Name)
		obj.fields[d.Name] = &FieldHandle{
			owner:        obj,
			descriptor:   d,
			serializedAs: name,
			fieldType:    ft,
			path:         name,
		}
	}

	// spec.md glossary / §3: an edge is itself a table with mandatory in,
	// out, id fields. A declaration that infers the other rules correctly
	// but never declares in/out at all must still be flagged - the checks
	// in deriveFieldType only fire for fields that are actually present.
	if kind == EdgeKind {
		if !hasIn {
			diags = append(diags, fieldDiag(table, "in", "edge table must declare an \"in\" field"))
		}
		if !hasOut {
			diags = append(diags, fieldDiag(table, "out", "edge table must declare an \"out\" field"))
		}
	}

	return obj, diags, asserts
}

// deriveFieldType applies the inference rules of spec.md §4.6, in order,
// and returns the diagnostics/assertions the field's declaration produced.
func deriveFieldType(table string, kind TableKind, d *field.Descriptor) (types.FieldType, []Diagnostic, []Assertion) {
	var diags []Diagnostic
	var asserts []Assertion

	diags = append(diags, mutualExclusionDiags(table, d)...)

	var ft types.FieldType
	explicit := d.Type != ""
	if explicit {
		parsed, err := types.Parse(d.Type)
		if err != nil {
			diags = append(diags, fieldDiag(table, d.Name, "invalid type annotation %q: %v", d.Type, err))
			parsed = types.Any()
		}
		ft = parsed
	} else {
		ft = inferFieldType(table, kind, d)
	}

	// spec.md §3 / §8 scenario 7: a node or edge id field, and an edge's
	// in/out fields, must coerce to a record type regardless of how the
	// type was arrived at.
	switch {
	case d.Name == "id":
		if !ft.IsRecord() {
			diags = append(diags, fieldDiag(table, d.Name, "edge/node id must be a record type"))
		} else {
			asserts = append(asserts, Assertion{Table: table, Field: d.Name, Kind: AssertionEdgeIdentity,
				Detail: "id coerces to " + ft.String()})
		}
	case kind == EdgeKind && (d.Name == "in" || d.Name == "out"):
		if !ft.IsRecord() {
			diags = append(diags, fieldDiag(table, d.Name, "edge %q field must be a record type", d.Name))
		} else {
			asserts = append(asserts, Assertion{Table: table, Field: d.Name, Kind: AssertionEdgeIdentity,
				Detail: d.Name + " coerces to " + ft.String()})
		}
	}

	if d.LinkOne != "" || d.LinkSelf || d.LinkMany != "" {
		diags = append(diags, linkIntegrityDiags(table, d, ft)...)
		asserts = append(asserts, Assertion{Table: table, Field: d.Name, Kind: AssertionLinkTarget,
			Detail: "links to table matching annotation"})
	}

	if (d.ItemAssert != "" || d.ItemAssertFn != nil) && !ft.IsCollection() {
		diags = append(diags, fieldDiag(table, d.Name, "item_assert requires an array or set type, got %s", ft.String()))
	}

	asserts = append(asserts, Assertion{Table: table, Field: d.Name, Kind: AssertionCoercion,
		Detail: "field \"" + d.Name + "\" coerces to " + ft.String()})

	return ft, diags, asserts
}

func mutualExclusionDiags(table string, d *field.Descriptor) []Diagnostic {
	var diags []Diagnostic
	hasDefine := d.Define != "" || d.DefineFn != nil
	if hasDefine {
		if d.Assert != "" || d.AssertFn != nil {
			diags = append(diags, fieldDiag(table, d.Name, "define/define_fn cannot be combined with assert/assert_fn"))
		}
		if d.Value != "" || d.ValueFn != nil {
			diags = append(diags, fieldDiag(table, d.Name, "define/define_fn cannot be combined with value/value_fn"))
		}
		if d.Permissions != "" || d.PermissionsFn != nil {
			diags = append(diags, fieldDiag(table, d.Name, "define/define_fn cannot be combined with permissions/permissions_fn"))
		}
		if d.ItemAssert != "" || d.ItemAssertFn != nil {
			diags = append(diags, fieldDiag(table, d.Name, "define/define_fn cannot be combined with item_assert/item_assert_fn"))
		}
	}
	if d.Define != "" && d.DefineFn != nil {
		diags = append(diags, fieldDiag(table, d.Name, "define and define_fn are mutually exclusive"))
	}
	if d.Assert != "" && d.AssertFn != nil {
		diags = append(diags, fieldDiag(table, d.Name, "assert and assert_fn are mutually exclusive"))
	}
	if d.Value != "" && d.ValueFn != nil {
		diags = append(diags, fieldDiag(table, d.Name, "value and value_fn are mutually exclusive"))
	}
	if d.Permissions != "" && d.PermissionsFn != nil {
		diags = append(diags, fieldDiag(table, d.Name, "permissions and permissions_fn are mutually exclusive"))
	}
	if d.ItemAssert != "" && d.ItemAssertFn != nil {
		diags = append(diags, fieldDiag(table, d.Name, "item_assert and item_assert_fn are mutually exclusive"))
	}
	return diags
}

func linkIntegrityDiags(table string, d *field.Descriptor, ft types.FieldType) []Diagnostic {
	target := ft
	if target.IsOption() {
		target = *target.Inner()
	}
	if target.IsArray() {
		target = *target.Inner()
	}
	if !target.IsRecord() {
		return []Diagnostic{fieldDiag(table, d.Name,
			"link field must infer to record/array(record)/option(...) thereof, got %s", ft.String())}
	}
	return nil
}

func inferFieldType(table string, kind TableKind, d *field.Descriptor) types.FieldType {
	switch {
	case d.Name == "id" && kind == NodeKind:
		return types.Record(table) // rule 1
	case kind == EdgeKind && (d.Name == "in" || d.Name == "out"):
		return types.Record() // rule 2: any record
	case d.LinkOne != "":
		return types.Record(d.LinkOne) // rule 3
	case d.LinkSelf:
		return types.Record(table) // rule 3
	case d.LinkMany != "":
		return types.Array(types.Record(d.LinkMany), nil) // rule 4
	case d.NestObject != "":
		return types.Object() // rule 5
	case d.NestArray != "":
		return types.Array(types.Any(), nil) // rule 6
	}
	switch d.GoKind { // rule 7
	case field.KindBool:
		return types.Bool()
	case field.KindFloat:
		return types.Float()
	case field.KindInt:
		return types.Int()
	case field.KindDecimal:
		return types.Decimal()
	case field.KindString:
		return types.String()
	case field.KindSlice:
		return types.Array(types.Any(), nil)
	case field.KindSet:
		return types.Set(types.Any(), nil)
	case field.KindJSON:
		return types.Object()
	case field.KindTime:
		return types.Datetime()
	case field.KindDuration:
		return types.Duration()
	case field.KindUUID:
		return types.UUID()
	case field.KindBytes:
		return types.Bytes()
	case field.KindGeometry:
		return types.Geometry()
	}
	return types.Any() // rule 8 fallback
}

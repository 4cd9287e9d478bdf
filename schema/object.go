package schema

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/oyelowo/surrealorm/expr"
	"github.com/oyelowo/surrealorm/param"
	"github.com/oyelowo/surrealorm/qerr"
	"github.com/oyelowo/surrealorm/schema/field"
	"github.com/oyelowo/surrealorm/types"
)

// Object is the runtime schema object of spec.md §3: a typed handle per
// declared field, plus the graph-traversal string, bindings, and errors
// accumulated so far. Objects are immutable value-adjacent types: Walk
// always returns a fresh Object, never mutating the receiver, per spec.md
// §5 "Sharing" and §9 "Ownership of schema objects".
type Object struct {
	table     string
	tableKind TableKind
	config    Config

	path     string // traversal prefix; "" at the root
	bindings []param.Binding
	errs     []error

	fields map[string]*FieldHandle
	order  []string
}

// Table returns the table this object was derived for (expr.Table, so it
// can be used directly as a SELECT/CREATE/etc. target).
func (o *Object) Table() expr.Table { return expr.NewTable(o.table) }

// TableName returns the bare table name.
func (o *Object) TableName() string { return o.table }

// Kind reports whether this object is a node or edge schema.
func (o *Object) Kind() TableKind { return o.tableKind }

// Path returns the graph-traversal text accumulated so far ("" at the root).
func (o *Object) Path() string { return o.path }

// GetBindings returns the bindings accumulated along the traversal so far.
func (o *Object) GetBindings() []param.Binding { return o.bindings }

// GetErrors returns the errors accumulated along the traversal so far.
func (o *Object) GetErrors() []error { return o.errs }

// Fields returns every non-skipped field's handle, in declaration order.
func (o *Object) Fields() []*FieldHandle {
	out := make([]*FieldHandle, 0, len(o.order))
	for _, name := range o.order {
		out = append(out, o.fields[name])
	}
	return out
}

// LinkFields returns the subset of fields declared as link_one, link_self,
// or link_many, partitioned from plain and nested fields (spec.md §4.6
// "metadata lists: ... link fields partitioned by kind").
func (o *Object) LinkFields() []*FieldHandle {
	var out []*FieldHandle
	for _, name := range o.order {
		fh := o.fields[name]
		d := fh.descriptor
		if d.LinkOne != "" || d.LinkSelf || d.LinkMany != "" {
			out = append(out, fh)
		}
	}
	return out
}

// Field returns the handle for name, or nil if no such field was declared
// (or it was skipped).
func (o *Object) Field(name string) *FieldHandle { return o.fields[name] }

// fullPath prepends the object's traversal prefix to a field's own path.
func (o *Object) fullPath(p string) string {
	if o.path == "" {
		return p
	}
	return o.path + "." + p
}

// FieldHandle is the typed accessor for one declared field (spec.md §3
// "Schema object": "a typed handle per declared field... so operator
// overloads can be constrained to sensible operand types").
type FieldHandle struct {
	owner        *Object
	descriptor   *field.Descriptor
	serializedAs string
	fieldType    types.FieldType
	path         string
}

// Name returns the field's Go-level declared name.
func (f *FieldHandle) Name() string { return f.descriptor.Name }

// SerializedName returns the name the field is serialized/queried under
// (after rename/rename_all).
func (f *FieldHandle) SerializedName() string { return f.serializedAs }

// Type returns the field's derived or declared FieldType.
func (f *FieldHandle) Type() types.FieldType { return f.fieldType }

// Expr returns the plain expr.Field reference for this field, usable
// anywhere an expression primitive is expected (WHERE, ORDER BY, ...).
func (f *FieldHandle) Expr() expr.Field {
	return expr.NewField(f.owner.fullPath(f.serializedAs))
}

func (f *FieldHandle) Build() string               { return f.Expr().Build() }
func (f *FieldHandle) GetBindings() []param.Binding { return f.Expr().GetBindings() }
func (f *FieldHandle) GetErrors() []error           { return f.Expr().GetErrors() }

// Number upgrades the handle into a NumberField, collecting a diagnostic
// (not a panic) if the field's type is not numeric - the runtime
// counterpart to the compile-time coercion assertion compiler/gen renders
// for generated accessors.
func (f *FieldHandle) Number() NumberField {
	if !f.fieldType.IsNumeric() {
		return NumberField{FieldHandle: f, err: qerr.OnField("schema.number", f.Name(),
			"field is not numeric: "+f.fieldType.String())}
	}
	return NumberField{FieldHandle: f}
}

// String upgrades the handle into a StringField.
func (f *FieldHandle) String() StringField {
	if !f.fieldType.IsString() {
		return StringField{FieldHandle: f, err: qerr.OnField("schema.string", f.Name(),
			"field is not a string: "+f.fieldType.String())}
	}
	return StringField{FieldHandle: f}
}

// NumberField is a FieldHandle narrowed to numeric comparisons.
type NumberField struct {
	*FieldHandle
	err error
}

// Err returns the diagnostic collected if Number()/String() narrowed a
// field whose derived type did not match, or nil otherwise.
func (n NumberField) Err() error { return n.err }

// Gt builds a `field > v` filter.
func (n NumberField) Gt(bindings *param.Bindings, v any) expr.Filter {
	return expr.Gt(n.FieldHandle, expr.NumberLike(bindings, v))
}

// Gte builds a `field >= v` filter.
func (n NumberField) Gte(bindings *param.Bindings, v any) expr.Filter {
	return expr.Gte(n.FieldHandle, expr.NumberLike(bindings, v))
}

// Lt builds a `field < v` filter.
func (n NumberField) Lt(bindings *param.Bindings, v any) expr.Filter {
	return expr.Lt(n.FieldHandle, expr.NumberLike(bindings, v))
}

// Lte builds a `field <= v` filter.
func (n NumberField) Lte(bindings *param.Bindings, v any) expr.Filter {
	return expr.Lte(n.FieldHandle, expr.NumberLike(bindings, v))
}

// Eq builds a `field = v` filter.
func (n NumberField) Eq(bindings *param.Bindings, v any) expr.Filter {
	return expr.Eq(n.FieldHandle, expr.NumberLike(bindings, v))
}

// StringField is a FieldHandle narrowed to string comparisons.
type StringField struct {
	*FieldHandle
	err error
}

// Err returns the diagnostic collected if String() narrowed a field whose
// derived type was not a string, or nil otherwise.
func (s StringField) Err() error { return s.err }

// Eq builds a `field = v` filter.
func (s StringField) Eq(bindings *param.Bindings, v string) expr.Filter {
	return expr.Eq(s.FieldHandle, expr.StrandLike(bindings, v))
}

// Like builds a `field ~ v` fuzzy-match filter.
func (s StringField) Like(bindings *param.Bindings, v string) expr.Filter {
	return expr.Like(s.FieldHandle, expr.StrandLike(bindings, v))
}

// Is builds a `field IS v` filter.
func (s StringField) Is(bindings *param.Bindings, v string) expr.Filter {
	return expr.Is(s.FieldHandle, expr.StrandLike(bindings, v))
}

// Registry resolves link/nest field traversal to the target table's schema
// object, by name, matching spec.md §9: "back-references between related
// tables are resolved by name (strings) during generation, not by
// in-memory pointers."
type Registry struct {
	declByTable map[string]any
	objByTable  map[string]*Object
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{declByTable: map[string]any{}, objByTable: map[string]*Object{}}
}

// Register derives decl's schema object and indexes it by table name for
// later traversal resolution, returning the same (object, diagnostics,
// assertions) triple as Derive.
func (r *Registry) Register(decl any) (*Object, []Diagnostic, []Assertion) {
	obj, diags, asserts := Derive(decl)
	r.declByTable[obj.table] = decl
	r.objByTable[obj.table] = obj
	return obj, diags, asserts
}

// RegisterAll derives every declaration in decls concurrently via
// golang.org/x/sync/errgroup - Derive is a pure function of its decl
// argument, so the fan-out is safe - then folds the results into the
// registry sequentially, in decls order, so Lookup/Walk resolution stays
// deterministic no matter how the goroutines interleaved. Useful for
// applications with a large table count where derivation itself does
// non-trivial work (e.g. many fields with Assert/Value expressions).
func (r *Registry) RegisterAll(decls []any) (map[string]*Object, map[string][]Diagnostic, map[string][]Assertion) {
	type derived struct {
		obj     *Object
		diags   []Diagnostic
		asserts []Assertion
	}
	results := make([]derived, len(decls))

	var g errgroup.Group
	for i, decl := range decls {
		i, decl := i, decl
		g.Go(func() error {
			obj, diags, asserts := Derive(decl)
			results[i] = derived{obj: obj, diags: diags, asserts: asserts}
			return nil
		})
	}
	_ = g.Wait() // Derive never returns an error; nothing to propagate.

	objs := make(map[string]*Object, len(decls))
	diagsByTable := make(map[string][]Diagnostic, len(decls))
	assertsByTable := make(map[string][]Assertion, len(decls))
	for i, decl := range decls {
		res := results[i]
		r.declByTable[res.obj.table] = decl
		r.objByTable[res.obj.table] = res.obj
		objs[res.obj.table] = res.obj
		diagsByTable[res.obj.table] = res.diags
		assertsByTable[res.obj.table] = res.asserts
	}
	return objs, diagsByTable, assertsByTable
}

// Lookup returns the registered root object for table, if any.
func (r *Registry) Lookup(table string) (*Object, bool) {
	obj, ok := r.objByTable[table]
	return obj, ok
}

// Walk extends fh's owning object by traversing through fh (a link_one,
// link_self, link_many, nest_object, or nest_array field) with an
// optional raw graph clause (e.g. a `WHERE` fragment for a link_many
// traversal), returning a fresh *Object rooted at the target table whose
// accumulators include everything the owner had plus this step
// (spec.md §3 "Traversal").
func (r *Registry) Walk(fh *FieldHandle, clause string) (*Object, error) {
	d := fh.descriptor
	target := d.LinkOne
	switch {
	case d.LinkSelf:
		target = fh.owner.table
	case d.LinkMany != "":
		target = d.LinkMany
	case d.NestObject != "":
		target = d.NestObject
	case d.NestArray != "":
		target = d.NestArray
	}
	if target == "" {
		return nil, qerr.OnField("schema.walk", fh.Name(), "field is not a link or nest field")
	}
	root, ok := r.objByTable[target]
	if !ok {
		return nil, qerr.OnField("schema.walk", fh.Name(), fmt.Sprintf("no schema registered for table %q", target))
	}
	step := fh.owner.fullPath(fh.serializedAs)
	if clause != "" {
		step += "[" + clause + "]"
	}
	next := &Object{
		table:     root.table,
		tableKind: root.tableKind,
		config:    root.config,
		path:      step,
		bindings:  append(append([]param.Binding(nil), fh.owner.bindings...), fh.GetBindings()...),
		errs:      append(append([]error(nil), fh.owner.errs...), fh.GetErrors()...),
		fields:    map[string]*FieldHandle{},
		order:     append([]string(nil), root.order...),
	}
	for name, f := range root.fields {
		clone := *f
		clone.owner = next
		next.fields[name] = &clone
	}
	return next, nil
}

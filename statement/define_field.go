package statement

import (
	"strings"

	"github.com/oyelowo/surrealorm/qerr"
)

// DefineField builds a `DEFINE FIELD ... ON TABLE ...` statement, per
// spec.md §4.4.3. For array/set fields with an item assertion, Build
// additionally emits the `DEFINE FIELD name.* ...` companion statement
// (joined with a newline), matching the source's per-item assertion
// shape.
type DefineField struct {
	base
	name      string
	table     string
	fieldType string
	raw       string

	value       string
	assert      string
	permissions string
	itemAssert  string
}

// NewDefineField begins `DEFINE FIELD name ON TABLE table TYPE fieldType`.
func NewDefineField(name, table, fieldType string) *DefineField {
	return &DefineField{name: name, table: table, fieldType: fieldType}
}

// Raw overrides the entire field definition. Per spec.md §4.4.3, Raw may
// not be combined with Value, Assert, Permissions, or ItemAssert.
func (d *DefineField) Raw(stmt string) *DefineField { d.raw = stmt; return d }

// Value attaches a default VALUE expression.
func (d *DefineField) Value(expr string) *DefineField { d.value = expr; return d }

// Assert attaches an ASSERT expression.
func (d *DefineField) Assert(expr string) *DefineField { d.assert = expr; return d }

// Permissions attaches a PERMISSIONS clause.
func (d *DefineField) Permissions(clause string) *DefineField { d.permissions = clause; return d }

// ItemAssert attaches a per-item ASSERT expression; requires an array or
// set FieldType (enforced by Errors, since the builder only sees the
// printed type text here and package schema enforces the FieldType-level
// rule before this builder is reached).
func (d *DefineField) ItemAssert(expr string) *DefineField { d.itemAssert = expr; return d }

// Errors returns the statement's accumulated errors.
func (d *DefineField) Errors() []error {
	errs := append([]error(nil), d.errs...)
	if d.raw != "" && (d.value != "" || d.assert != "" || d.permissions != "" || d.itemAssert != "") {
		errs = append(errs, qerr.OnField("define_field", d.name,
			"raw DEFINE cannot be combined with value/assert/permissions/item_assert"))
	}
	if d.itemAssert != "" && !strings.HasPrefix(d.fieldType, "array") && !strings.HasPrefix(d.fieldType, "set") {
		errs = append(errs, qerr.OnField("define_field", d.name,
			"item_assert requires an array or set type, got "+d.fieldType))
	}
	return errs
}

// Build renders the statement(s). The returned string may contain two
// `DEFINE FIELD` statements separated by a newline when an item assertion
// is present.
func (d *DefineField) Build() string {
	if d.raw != "" {
		return d.raw
	}
	var b strings.Builder
	b.WriteString("DEFINE FIELD ")
	b.WriteString(d.name)
	b.WriteString(" ON TABLE ")
	b.WriteString(d.table)
	b.WriteString(" TYPE ")
	b.WriteString(d.fieldType)
	if d.value != "" {
		b.WriteString(" VALUE ")
		b.WriteString(d.value)
	}
	if d.assert != "" {
		b.WriteString(" ASSERT ")
		b.WriteString(d.assert)
	}
	if d.permissions != "" {
		b.WriteString(" PERMISSIONS ")
		b.WriteString(d.permissions)
	}
	out := b.String() + ";"
	if d.itemAssert != "" {
		out += "\nDEFINE FIELD " + d.name + ".* ON TABLE " + d.table + " ASSERT " + d.itemAssert + ";"
	}
	return out
}

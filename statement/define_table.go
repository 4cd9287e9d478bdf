// DefineTable and DefineField implement spec.md §4.4.2/§4.4.3: either a
// user-supplied raw `DEFINE ...` expression (pass-through), or a default
// shape built from declared attributes, with the mutual-exclusion rules
// each section specifies. Grounded in the teacher's option-composing
// `DEFINE` builders and in
// _examples/original_source/query-builder/src/statements/{define_table,define_field}.rs.
package statement

import (
	"strings"

	"github.com/oyelowo/surrealorm/qerr"
)

// DefineTable builds a `DEFINE TABLE` statement.
type DefineTable struct {
	base
	name  string
	raw   string // user-supplied override; "" = build from attributes below
	drop  bool
	as    string
	full  bool // SCHEMAFULL
	perms string
}

// NewDefineTable begins a `DEFINE TABLE name`.
func NewDefineTable(name string) *DefineTable { return &DefineTable{name: name} }

// Raw overrides the entire statement with a user-supplied `DEFINE TABLE
// ...` expression. Per spec.md §4.4.2, Raw may not be combined with Drop,
// As, Schemafull, or Permissions.
func (d *DefineTable) Raw(stmt string) *DefineTable { d.raw = stmt; return d }

// Drop marks the table DROP (write-once, non-selectable).
func (d *DefineTable) Drop() *DefineTable { d.drop = true; return d }

// As defines the table as a view over expr.
func (d *DefineTable) As(expr string) *DefineTable { d.as = expr; return d }

// Schemafull marks the table SCHEMAFULL.
func (d *DefineTable) Schemafull() *DefineTable { d.full = true; return d }

// Permissions attaches a PERMISSIONS clause.
func (d *DefineTable) Permissions(clause string) *DefineTable { d.perms = clause; return d }

// Errors returns the statement's accumulated errors.
func (d *DefineTable) Errors() []error {
	errs := append([]error(nil), d.errs...)
	if d.raw != "" && (d.drop || d.as != "" || d.full || d.perms != "") {
		errs = append(errs, qerr.OnField("define_table", d.name,
			"raw DEFINE cannot be combined with drop/as/schemafull/permissions"))
	}
	return errs
}

// Build renders the statement.
func (d *DefineTable) Build() string {
	if d.raw != "" {
		return d.raw
	}
	var b strings.Builder
	b.WriteString("DEFINE TABLE ")
	b.WriteString(d.name)
	if d.drop {
		b.WriteString(" DROP")
	}
	if d.full {
		b.WriteString(" SCHEMAFULL")
	}
	if d.as != "" {
		b.WriteString(" AS ")
		b.WriteString(d.as)
	}
	if d.perms != "" {
		b.WriteString(" PERMISSIONS ")
		b.WriteString(d.perms)
	}
	return b.String() + ";"
}

// Create, Update, Delete, and Relate implement spec.md §4.4.4: "each
// follow the same contract with their respective clause set. Behaviour
// specific to each is a thin wrapper over the common accumulator."
// Grounded in the teacher's mutation-statement shape and in
// _examples/original_source/query-builder/src/statements/{create,update,delete,relate}.rs.
package statement

import (
	"strings"

	"github.com/oyelowo/surrealorm/expr"
)

// mutation is the accumulator shared by Create/Update/Delete: a target, an
// optional SET/content payload, an optional WHERE, and RETURN.
type mutation struct {
	base
	verb    string
	target  string
	content string // CONTENT <object>
	set     []string
	where   *expr.Filter
	ret     string // RETURN NONE | RETURN DIFF | RETURN fields | ...
	only    bool
	timeout string
	parallel bool
}

func (m *mutation) clauses() string {
	var b strings.Builder
	b.WriteString(m.verb)
	b.WriteString(" ")
	if m.only {
		b.WriteString("ONLY ")
	}
	b.WriteString(m.target)
	if m.content != "" {
		b.WriteString(" CONTENT ")
		b.WriteString(m.content)
	} else if len(m.set) > 0 {
		b.WriteString(" SET ")
		b.WriteString(strings.Join(m.set, ", "))
	}
	if m.where != nil {
		b.WriteString(" WHERE ")
		b.WriteString(m.where.Build())
	}
	if m.ret != "" {
		b.WriteString(" RETURN ")
		b.WriteString(m.ret)
	}
	if m.timeout != "" {
		b.WriteString(" TIMEOUT ")
		b.WriteString(m.timeout)
	}
	if m.parallel {
		b.WriteString(" PARALLEL")
	}
	return b.String()
}

func (m *mutation) Errors() []error {
	errs := append([]error(nil), m.errs...)
	if m.where != nil {
		errs = append(errs, m.where.GetErrors()...)
	}
	return errs
}

// Create builds a `CREATE` statement.
type Create struct{ mutation }

// NewCreate begins `CREATE target`.
func NewCreate(target string) *Create {
	c := &Create{}
	c.verb, c.target = "CREATE", target
	return c
}

// Only requests `CREATE ONLY`, which unwraps a single-row result instead
// of an array.
func (c *Create) Only() *Create { c.only = true; return c }

// Content sets the CONTENT payload (a pre-built object literal);
// mutually exclusive with Set (last call wins).
func (c *Create) Content(obj string) *Create { c.content = obj; c.set = nil; return c }

// Set appends a `field = value` assignment; mutually exclusive with
// Content (last call wins).
func (c *Create) Set(assignment string) *Create {
	c.set = append(c.set, assignment)
	c.content = ""
	return c
}

// Return sets the RETURN clause (e.g. "NONE", "DIFF", "AFTER", or a field list).
func (c *Create) Return(clause string) *Create { c.ret = clause; return c }

// Timeout sets a TIMEOUT clause (emitted verbatim; spec.md §5 - data, not cancellation).
func (c *Create) Timeout(d string) *Create { c.timeout = d; return c }

// Parallel requests parallel execution.
func (c *Create) Parallel() *Create { c.parallel = true; return c }

// Build renders the statement.
func (c *Create) Build() string { return c.clauses() + ";" }

// Update builds an `UPDATE` statement.
type Update struct{ mutation }

// NewUpdate begins `UPDATE target`.
func NewUpdate(target string) *Update {
	u := &Update{}
	u.verb, u.target = "UPDATE", target
	return u
}

func (u *Update) Only() *Update                  { u.only = true; return u }
func (u *Update) Content(obj string) *Update      { u.content = obj; u.set = nil; return u }
func (u *Update) Set(assignment string) *Update   { u.set = append(u.set, assignment); u.content = ""; return u }
func (u *Update) Where(f expr.Filter) *Update     { u.where = &f; return u }
func (u *Update) Return(clause string) *Update    { u.ret = clause; return u }
func (u *Update) Timeout(d string) *Update        { u.timeout = d; return u }
func (u *Update) Parallel() *Update               { u.parallel = true; return u }
func (u *Update) Build() string                   { return u.clauses() + ";" }

// Delete builds a `DELETE` statement.
type Delete struct{ mutation }

// NewDelete begins `DELETE target`.
func NewDelete(target string) *Delete {
	d := &Delete{}
	d.verb, d.target = "DELETE", target
	return d
}

func (d *Delete) Only() *Delete               { d.only = true; return d }
func (d *Delete) Where(f expr.Filter) *Delete { d.where = &f; return d }
func (d *Delete) Return(clause string) *Delete { d.ret = clause; return d }
func (d *Delete) Timeout(t string) *Delete     { d.timeout = t; return d }
func (d *Delete) Parallel() *Delete            { d.parallel = true; return d }
func (d *Delete) Build() string                { return d.clauses() + ";" }

// Relate builds a `RELATE from->edge->to` statement.
type Relate struct {
	base
	from    string
	edge    string
	to      string
	content string
	set     []string
	ret     string
}

// NewRelate begins `RELATE from->edge->to`.
func NewRelate(from, edge, to string) *Relate {
	return &Relate{from: from, edge: edge, to: to}
}

// Content sets the CONTENT payload for the edge record.
func (r *Relate) Content(obj string) *Relate { r.content = obj; r.set = nil; return r }

// Set appends a `field = value` assignment on the edge record.
func (r *Relate) Set(assignment string) *Relate {
	r.set = append(r.set, assignment)
	r.content = ""
	return r
}

// Return sets the RETURN clause.
func (r *Relate) Return(clause string) *Relate { r.ret = clause; return r }

// Errors returns the statement's accumulated errors.
func (r *Relate) Errors() []error { return append([]error(nil), r.errs...) }

// Build renders the statement.
func (r *Relate) Build() string {
	var b strings.Builder
	b.WriteString("RELATE ")
	b.WriteString(r.from)
	b.WriteString("->")
	b.WriteString(r.edge)
	b.WriteString("->")
	b.WriteString(r.to)
	if r.content != "" {
		b.WriteString(" CONTENT ")
		b.WriteString(r.content)
	} else if len(r.set) > 0 {
		b.WriteString(" SET ")
		b.WriteString(strings.Join(r.set, ", "))
	}
	if r.ret != "" {
		b.WriteString(" RETURN ")
		b.WriteString(r.ret)
	}
	return b.String() + ";"
}

// Let builds a `LET $name = value;` statement.
type Let struct {
	base
	name  string
	value string
}

// NewLet builds `LET $name = value`.
func NewLet(name, value string) *Let { return &Let{name: name, value: value} }

// Errors returns the statement's accumulated errors (always empty; Let has
// no clause that can fail, kept for contract symmetry with other builders).
func (l *Let) Errors() []error { return append([]error(nil), l.errs...) }

// Build renders the statement.
func (l *Let) Build() string { return "LET $" + l.name + " = " + l.value + ";" }

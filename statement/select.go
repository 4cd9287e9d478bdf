// Package statement implements the statement builders: SELECT, CREATE,
// UPDATE, DELETE, RELATE, LET, and the DEFINE family, each a fluent,
// consuming builder that owns its own query fragment, parameter bindings,
// and accumulated errors (SPEC_FULL.md §4.4). The clause ordering and
// fluent-method shape are grounded in the teacher's sql.Builder-derived
// statement types (dialect/sql/builder.go) and in
// _examples/original_source/query-builder/src/statements/select.rs for
// SurrealQL-specific clauses (WITH INDEX, PARALLEL, EXPLAIN).
package statement

import (
	"strings"

	"github.com/oyelowo/surrealorm/expr"
	"github.com/oyelowo/surrealorm/param"
)

// Select builds a SELECT statement. A caller mints every bound value through
// Params() so the statement owns a single counter from its first clause to
// its last, which is what makes Build()'s placeholder numbering deterministic
// across independently constructed but identical statements (spec.md §8).
type Select struct {
	bindings    param.Bindings
	fields      []string
	omit        []string
	targets     []string
	withIndexes []string
	where       *expr.Filter
	orders      []expr.Order
	limit       expr.Value
	start       expr.Value
	parallel    bool
	explain     string // "", "EXPLAIN", or "EXPLAIN FULL"
	alias       string
	errs        []error
}

// NewSelect begins a SELECT from the given targets (tables, record ids, or
// parenthesized subqueries, already built).
func NewSelect(targets ...string) *Select {
	return &Select{targets: targets}
}

// Params exposes the statement's own binding counter so the caller can
// parameter-capture values (record ids, filter operands, limit/offset) under
// it before passing the resulting expr.Value into a clause method.
func (s *Select) Params() *param.Bindings { return &s.bindings }

// Field adds a projected field.
func (s *Select) Field(name string) *Select {
	s.fields = append(s.fields, name)
	return s
}

// Omit excludes fields from an otherwise-`*` projection.
func (s *Select) Omit(names ...string) *Select {
	s.omit = append(s.omit, names...)
	return s
}

// WithIndex hints the query planner to use the named index.
func (s *Select) WithIndex(name string) *Select {
	s.withIndexes = append(s.withIndexes, name)
	return s
}

// Where attaches a filter tree built via the expr package against
// s.Params(). Calling Where a second time replaces the prior filter;
// compose with Filter.And/Or first if multiple conditions are needed.
func (s *Select) Where(f expr.Filter) *Select {
	s.where = &f
	return s
}

// OrderBy appends one or more ordering terms, in the order given.
func (s *Select) OrderBy(orders ...expr.Order) *Select {
	s.orders = append(s.orders, orders...)
	return s
}

// Limit sets the LIMIT clause from a value built against s.Params() (e.g.
// expr.NumberLike(s.Params(), 153) to parameter-capture it, or a plain
// expr.Field/Function for a computed limit).
func (s *Select) Limit(v expr.Value) *Select {
	s.limit = v
	return s
}

// StartAt sets the START AT (pagination offset) clause.
func (s *Select) StartAt(v expr.Value) *Select {
	s.start = v
	return s
}

// Parallel requests parallel execution across the statement's targets.
func (s *Select) Parallel() *Select {
	s.parallel = true
	return s
}

// Explain requests a query plan; full requests the FULL variant.
func (s *Select) Explain(full bool) *Select {
	if full {
		s.explain = "EXPLAIN FULL"
	} else {
		s.explain = "EXPLAIN"
	}
	return s
}

// As aliases the whole (parenthesized) statement, for use as a subquery.
func (s *Select) As(name string) *Select {
	s.alias = name
	return s
}

// Bindings returns every value parameter-captured against this statement's
// counter, in capture order - which, since every clause method captures
// against the same counter, is also the order placeholders appear in Build().
func (s *Select) Bindings() []param.Binding { return s.bindings.List() }

// Errors returns the errors accumulated across every clause, in the order
// they were appended, per the monotone-accumulation law of spec.md §8.
func (s *Select) Errors() []error {
	out := append([]error(nil), s.errs...)
	if s.where != nil {
		out = append(out, s.where.GetErrors()...)
	}
	for _, o := range s.orders {
		out = append(out, o.GetErrors()...)
	}
	return out
}

// Build renders the statement. Build always returns a string even when
// Errors() is non-empty: the caller decides whether to dispatch a query that
// accumulated errors, per the non-panicking error design of spec.md §7.
func (s *Select) Build() string {
	var b strings.Builder
	b.WriteString("SELECT ")
	if len(s.fields) == 0 {
		b.WriteString("*")
	} else {
		b.WriteString(strings.Join(s.fields, ", "))
	}
	if len(s.omit) > 0 {
		b.WriteString(" OMIT ")
		b.WriteString(strings.Join(s.omit, ", "))
	}
	b.WriteString(" FROM ")
	b.WriteString(strings.Join(s.targets, ", "))
	if len(s.withIndexes) > 0 {
		b.WriteString(" WITH INDEX ")
		b.WriteString(strings.Join(s.withIndexes, ", "))
	}
	if s.where != nil {
		b.WriteString(" WHERE ")
		b.WriteString(s.where.Build())
	}
	if len(s.orders) > 0 {
		parts := make([]string, len(s.orders))
		for i, o := range s.orders {
			parts[i] = o.Build()
		}
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(parts, ", "))
	}
	if s.limit != nil {
		b.WriteString(" LIMIT ")
		b.WriteString(s.limit.Build())
	}
	if s.start != nil {
		b.WriteString(" START AT ")
		b.WriteString(s.start.Build())
	}
	if s.parallel {
		b.WriteString(" PARALLEL")
	}
	if s.explain != "" {
		b.WriteString(" ")
		b.WriteString(s.explain)
	}
	out := b.String() + ";"
	if s.alias != "" {
		out = "(" + strings.TrimSuffix(out, ";") + ") AS " + s.alias
	}
	return out
}

// Raw renders the statement with every placeholder substituted back with its
// literal value, for debugging (spec.md §8 scenario 2).
func (s *Select) Raw() string { return expr.Raw(s.Build(), s.Bindings()) }

// Count wraps a select in a scalar `count` projection, matching the
// teacher's aggregate-wrapping helpers in dialect/sql/builder.go. The
// inner statement's trailing semicolon is stripped since it is embedded
// as a subquery expression here, not dispatched as a top-level statement.
func Count(inner *Select) string {
	return "SELECT count() FROM (" + strings.TrimSuffix(inner.Build(), ";") + ")"
}

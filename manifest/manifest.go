// Package manifest implements the resource manifest (spec.md C7, §4.7): a
// plug-in interface letting a user declare the full set of schema objects,
// roles, tokens, scopes, analyzers, params, and functions that make up an
// application. The core's only responsibility is a stable enumeration
// contract; generating the individual statements is entirely the
// responsibility of the statement builders (package statement) and the
// schema package. Grounded in the teacher's top-level aggregation idiom
// (config/feature aggregation) generalized to SurrealQL's resource
// taxonomy.
package manifest

import "github.com/oyelowo/surrealorm/schema"

// RawStatement is an already-built `DEFINE ...;` statement string,
// produced by one of the statement builders.
type RawStatement = string

// App is implemented by a user's top-level application declaration. Every
// method returns its group in the order the application wants them
// emitted; Collect concatenates them without reordering.
type App interface {
	Schemas() []*schema.Object
	Analyzers() []RawStatement
	Functions() []RawStatement
	Params() []RawStatement
	Scopes() []RawStatement
	Tokens() []RawStatement
	Users() []RawStatement
}

// Base is the default (empty) implementation of every App method; embed
// it in a concrete application declaration and override only the groups
// that are non-empty.
type Base struct{}

func (Base) Schemas() []*schema.Object { return nil }
func (Base) Analyzers() []RawStatement { return nil }
func (Base) Functions() []RawStatement { return nil }
func (Base) Params() []RawStatement    { return nil }
func (Base) Scopes() []RawStatement    { return nil }
func (Base) Tokens() []RawStatement    { return nil }
func (Base) Users() []RawStatement     { return nil }

// Collect aggregates every group of app into a single ordered sequence of
// raw statement strings: schema DEFINE TABLE/FIELD statements first (one
// table's TABLE then its FIELDs, in schema declaration order), then
// analyzers, functions, params, scopes, tokens, users - a pure structural
// fold with no I/O, per spec.md §4.7/§5.
func Collect(app App) ([]string, []error) {
	var out []string
	var errs []error

	for _, obj := range app.Schemas() {
		dt := obj.DefineTableStatement()
		errs = append(errs, dt.Errors()...)
		out = append(out, dt.Build())
		for _, df := range obj.DefineFieldStatements() {
			errs = append(errs, df.Errors()...)
			out = append(out, df.Build())
		}
	}
	out = append(out, app.Analyzers()...)
	out = append(out, app.Functions()...)
	out = append(out, app.Params()...)
	out = append(out, app.Scopes()...)
	out = append(out, app.Tokens()...)
	out = append(out, app.Users()...)
	return out, errs
}

// Package gen implements the second, smaller half of the codegen lane
// (SPEC_FULL.md §4.6): given an already-derived *schema.Object plus the
// diagnostics and assertions schema.Derive produced for it, emit one Go
// source file exposing typed field-name constants, a Migrate() function
// returning the table's ordered DEFINE statements, and an init() guard
// that panics at program-startup time (the closest Go analogue to a
// build-time assertion failure) if Derive raised any diagnostic.
//
// Grounded in the teacher's entc/gen code-generation engine (one
// generated file per schema type, driven by a template-equivalent
// builder over the derived type information), rebuilt compact and
// dave/jennifer-based rather than text/template-based, matching
// SPEC_FULL.md §0's package layout commitment.
package gen

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/oyelowo/surrealorm/schema"
)

// Options configures one file's generation.
type Options struct {
	// Package is the generated file's package clause.
	Package string
}

// File renders the generated source for obj. diags/asserts are the
// values schema.Derive (or schema.Registry.Register) returned alongside
// obj; a non-empty diags still produces a file, matching the
// never-panic-at-derivation-time design of spec.md §7 - the panic is
// deferred to the guard's init(), which only runs if the generated file
// is actually compiled and executed.
func File(obj *schema.Object, diags []schema.Diagnostic, asserts []schema.Assertion, opts Options) *jen.File {
	f := jen.NewFile(opts.Package)
	f.HeaderComment(fmt.Sprintf("Code generated for table %q. DO NOT EDIT.", obj.TableName()))

	f.Add(fieldNameConsts(obj))
	f.Line()
	f.Add(migrateFunc(obj))
	f.Line()
	f.Add(assertionComment(asserts))
	f.Add(guardInit(obj.TableName(), diags))

	return f
}

func constName(tableName, fieldName string) string {
	return exportCase(tableName) + "Field" + exportCase(fieldName)
}

func exportCase(s string) string {
	out := []rune(s)
	upperNext := true
	w := 0
	for _, r := range out {
		if r == '_' {
			upperNext = true
			continue
		}
		if upperNext {
			r = toUpper(r)
			upperNext = false
		}
		out[w] = r
		w++
	}
	return string(out[:w])
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// fieldNameConsts emits one exported string constant per declared field,
// named <Table>Field<Field>, holding its serialized (on-the-wire) name.
func fieldNameConsts(obj *schema.Object) jen.Code {
	specs := make([]jen.Code, 0, len(obj.Fields()))
	for _, fh := range obj.Fields() {
		specs = append(specs, jen.Id(constName(obj.TableName(), fh.Name())).Op("=").Lit(fh.SerializedName()))
	}
	return jen.Const().Defs(specs...)
}

// migrateFunc emits a Migrate<Table>() []string function returning this
// table's DEFINE TABLE statement followed by its DEFINE FIELD statements,
// in declaration order - the same sequence manifest.Collect folds over
// every table in an application.
func migrateFunc(obj *schema.Object) jen.Code {
	name := "Migrate" + exportCase(obj.TableName())
	return jen.Func().Id(name).Params().Index().String().Block(
		jen.Comment("rendered ahead of time against the derived schema.Object; see manifest.Collect"+
			" for the multi-table equivalent computed at runtime."),
		jen.Return(jen.Index().String().ValuesFunc(func(g *jen.Group) {
			dt := obj.DefineTableStatement()
			g.Lit(dt.Build())
			for _, df := range obj.DefineFieldStatements() {
				g.Lit(df.Build())
			}
		})),
	)
}

func assertionComment(asserts []schema.Assertion) jen.Code {
	if len(asserts) == 0 {
		return jen.Empty()
	}
	lines := make([]jen.Code, 0, len(asserts)+1)
	lines = append(lines, jen.Comment("Compile-time assertions witnessed by schema.Derive:"))
	for _, a := range asserts {
		lines = append(lines, jen.Comment(fmt.Sprintf("  - %s.%s: %s", a.Table, a.Field, a.Detail)))
	}
	return jen.Add(lines...)
}

// guardInit emits an init() that panics listing every diagnostic
// schema.Derive raised for this table, so a misconfigured schema fails
// the moment the generated package is imported rather than silently
// producing a broken migration.
func guardInit(table string, diags []schema.Diagnostic) jen.Code {
	if len(diags) == 0 {
		return jen.Empty()
	}
	msgs := make([]jen.Code, len(diags))
	for i, d := range diags {
		msgs[i] = jen.Lit(d.Error())
	}
	return jen.Func().Id("init").Params().Block(
		jen.Panic(jen.Qual("fmt", "Sprintf").Call(
			jen.Lit("surrealorm: table %q failed schema derivation:\n%s"),
			jen.Lit(table),
			jen.Qual("strings", "Join").Call(jen.Index().String().Values(msgs...), jen.Lit("\n")),
		)),
	)
}

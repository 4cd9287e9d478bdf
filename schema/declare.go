// Package schema implements the declaration and derivation sides of the
// schema-derivation compiler (SPEC_FULL.md §4.6, spec.md C6): a user
// declares a table as a Go struct embedding schema.Node or schema.Edge and
// a Fields() []field.Field method; schema.Derive then inspects that
// declaration and produces a *schema.Object (the runtime "schema object"
// of spec.md §3) plus diagnostics and assertions, never panicking
// (spec.md §7).
//
// Grounded in the teacher's declarative-schema style (a Go struct per
// table, a Fields() method returning field descriptors) generalized from
// SQL column types to the field-type mini-language of package types.
package schema

import "github.com/oyelowo/surrealorm/schema/field"

// TableKind discriminates a node table from an edge table (spec.md §3's
// "Edge" glossary entry: a table with mandatory in/out/id fields).
type TableKind int

const (
	NodeKind TableKind = iota
	EdgeKind
)

func (k TableKind) String() string {
	if k == EdgeKind {
		return "edge"
	}
	return "node"
}

// Node is embedded by a declaration struct for a node-type table.
type Node struct{}

// Kind identifies the embedding declaration as a node table.
func (Node) Kind() TableKind { return NodeKind }

// Fields is the default (empty) field list; declarations override it.
func (Node) Fields() []field.Field { return nil }

// Config is the default (zero) table configuration; declarations override
// it to customize table_name, schemafull, and the other per-table
// metadata of spec.md §4.6.
func (Node) Config() Config { return Config{} }

// Edge is embedded by a declaration struct for an edge-type table.
type Edge struct{}

// Kind identifies the embedding declaration as an edge table.
func (Edge) Kind() TableKind { return EdgeKind }

// Fields is the default (empty) field list; declarations override it.
func (Edge) Fields() []field.Field { return nil }

// Config is the default (zero) table configuration.
func (Edge) Config() Config { return Config{} }

// Config is the closed set of per-table metadata recognised by Derive
// (spec.md §4.6's "Per-table metadata" table).
type Config struct {
	// TableName overrides the table name inferred from the declaration's
	// Go type name (default: the type name, transformed by RenameAll).
	TableName string
	Schemafull bool
	Drop       bool
	Flexible   bool
	// RelaxTableName is carried on the Config but not read by Derive,
	// which applies no identifier-shape check to TableName either way.
	RelaxTableName bool
	As             string
	AsFn           func() string
	Permissions    string
	PermissionsFn  func() string
	Define         string
	DefineFn       func() string
	// RenameAll applies a case transform to every field's serialized name
	// that does not carry its own Rename ("" = no transform, "snake_case"
	// is the only recognised value since every field is already declared
	// in snake_case Go convention by this builder style).
	RenameAll string
}

type kinder interface{ Kind() TableKind }
type fielder interface{ Fields() []field.Field }
type configer interface{ Config() Config }

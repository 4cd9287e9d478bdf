// Package load implements static discovery of schema declarations: given
// a directory, it type-checks the package there (without running it) and
// reports every exported struct type whose method set matches the schema
// declaration shape (SPEC_FULL.md §4.6's "a Go struct embedding
// schema.Node or schema.Edge plus a Fields() method"). This is the
// read-only half of the two-stage codegen pipeline; turning a discovered
// declaration into a *schema.Object still requires a small generated
// driver program that imports the user's schema package and calls
// schema.Derive on a zero value of each type, since Go has no way to
// instantiate an arbitrary type from its name without importing it.
//
// Grounded in the teacher's compiler/load schema loader (a
// golang.org/x/tools/go/packages-based static scanner over a directory of
// ent schema files), generalized from "implements velox.Interface" to
// "has Fields() []field.Field, Kind() schema.TableKind, Config()
// schema.Config in its method set".
package load

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// Declaration describes one discovered schema struct.
type Declaration struct {
	// Name is the exported Go type name (e.g. "User").
	Name string
	// Package is the import path of the package it was found in.
	Package string
	// IsEdge reports whether the declaration's Kind() method set suggests
	// an edge table (best-effort: true only when the struct embeds a
	// field literally named "Edge").
	IsEdge bool
}

const (
	methodFields = "Fields"
	methodKind   = "Kind"
	methodConfig = "Config"
)

// Scan type-checks the Go package at dir and returns every exported
// struct type whose method set contains Fields, Kind, and Config - the
// three methods every schema.Node/schema.Edge embedder inherits or
// overrides. It never inspects field values; that happens later, in a
// normal Go program that actually imports the package and calls
// schema.Derive (cmd/ormgen itself only scans).
func Scan(dir string) ([]Declaration, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedSyntax,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("load: scanning %s: %w", dir, err)
	}
	var out []Declaration
	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			return nil, fmt.Errorf("load: %s: %w", dir, err)
		}
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			obj := scope.Lookup(name)
			tn, ok := obj.(*types.TypeName)
			if !ok || !tn.Exported() {
				continue
			}
			named, ok := tn.Type().(*types.Named)
			if !ok {
				continue
			}
			if !hasSchemaMethodSet(named) {
				continue
			}
			out = append(out, Declaration{
				Name:    name,
				Package: pkg.PkgPath,
				IsEdge:  embedsEdge(named),
			})
		}
	}
	return out, nil
}

func hasSchemaMethodSet(named *types.Named) bool {
	mset := types.NewMethodSet(types.NewPointer(named))
	want := map[string]bool{methodFields: false, methodKind: false, methodConfig: false}
	for i := 0; i < mset.Len(); i++ {
		name := mset.At(i).Obj().Name()
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for _, found := range want {
		if !found {
			return false
		}
	}
	return true
}

// embedsEdge reports whether named's underlying struct embeds a field
// literally named "Edge" (schema.Edge), vs. "Node" (schema.Node).
func embedsEdge(named *types.Named) bool {
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return false
	}
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if f.Embedded() && f.Name() == "Edge" {
			return true
		}
	}
	return false
}

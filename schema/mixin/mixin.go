// Package mixin provides the base mixin implementation for schema
// declarations: a reusable bundle of field.Field descriptors that can be
// folded into multiple tables' Fields() methods. Grounded in the
// teacher's schema/mixin package (a Schema base struct embedded by
// custom mixins), generalized from velox.Field/velox.Edge/velox.Index
// bundles to the field-type mini-language of package field.
package mixin

import "github.com/oyelowo/surrealorm/schema/field"

// Mixin is implemented by a reusable field bundle. A schema declaration
// folds its mixins' fields into its own Fields() method via Fold.
type Mixin interface {
	Fields() []field.Field
}

// Schema is the default (empty) Mixin implementation. Embed it in a
// custom mixin and override Fields():
//
//	type AuditMixin struct {
//	    mixin.Schema
//	}
//
//	func (AuditMixin) Fields() []field.Field {
//	    return []field.Field{
//	        field.String("created_by"),
//	        field.String("updated_by"),
//	    }
//	}
type Schema struct{}

// Fields returns no fields; override this method in an embedding mixin.
func (Schema) Fields() []field.Field { return nil }

var _ Mixin = (*Schema)(nil)

// Fold concatenates every mixin's fields, in declared order, followed by
// a declaration's own fields. This is the shape every schema declaration
// uses in its Fields() method:
//
//	func (User) Fields() []field.Field {
//	    return mixin.Fold([]mixin.Mixin{AuditMixin{}}, []field.Field{
//	        field.String("name"),
//	    })
//	}
func Fold(mixins []Mixin, own []field.Field) []field.Field {
	var out []field.Field
	for _, m := range mixins {
		out = append(out, m.Fields()...)
	}
	return append(out, own...)
}

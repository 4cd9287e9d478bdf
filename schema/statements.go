package schema

import "github.com/oyelowo/surrealorm/statement"

// DefineTableStatement returns the `DEFINE TABLE` statement producer for
// this object's table, applying its Config (spec.md §4.6 "Emitted
// statement producers: get_table_name, define_table").
func (o *Object) DefineTableStatement() *statement.DefineTable {
	if o.config.Define != "" {
		return statement.NewDefineTable(o.table).Raw(o.config.Define)
	}
	if o.config.DefineFn != nil {
		return statement.NewDefineTable(o.table).Raw(o.config.DefineFn())
	}
	dt := statement.NewDefineTable(o.table)
	if o.config.Drop {
		dt.Drop()
	}
	if o.config.Schemafull {
		dt.Schemafull()
	}
	if o.config.As != "" {
		dt.As(o.config.As)
	} else if o.config.AsFn != nil {
		dt.As(o.config.AsFn())
	}
	if o.config.Permissions != "" {
		dt.Permissions(o.config.Permissions)
	} else if o.config.PermissionsFn != nil {
		dt.Permissions(o.config.PermissionsFn())
	}
	return dt
}

// DefineFieldStatements returns one `DEFINE FIELD` producer per declared
// field, in declaration order (spec.md §4.6 "define_fields: ordered
// sequence of raw statements").
func (o *Object) DefineFieldStatements() []*statement.DefineField {
	out := make([]*statement.DefineField, 0, len(o.order))
	for _, name := range o.order {
		fh := o.fields[name]
		d := fh.descriptor
		if d.Define != "" {
			out = append(out, statement.NewDefineField(fh.serializedAs, o.table, fh.fieldType.String()).Raw(d.Define))
			continue
		}
		if d.DefineFn != nil {
			out = append(out, statement.NewDefineField(fh.serializedAs, o.table, fh.fieldType.String()).Raw(d.DefineFn()))
			continue
		}
		df := statement.NewDefineField(fh.serializedAs, o.table, fh.fieldType.String())
		if d.Value != "" {
			df.Value(d.Value)
		} else if d.ValueFn != nil {
			df.Value(d.ValueFn())
		}
		if d.Assert != "" {
			df.Assert(d.Assert)
		} else if d.AssertFn != nil {
			df.Assert(d.AssertFn())
		}
		if d.Permissions != "" {
			df.Permissions(d.Permissions)
		} else if d.PermissionsFn != nil {
			df.Permissions(d.PermissionsFn())
		}
		if d.ItemAssert != "" {
			df.ItemAssert(d.ItemAssert)
		} else if d.ItemAssertFn != nil {
			df.ItemAssert(d.ItemAssertFn())
		}
		out = append(out, df)
	}
	return out
}

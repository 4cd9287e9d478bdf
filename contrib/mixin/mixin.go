// Package mixin provides common, OPTIONAL mixin implementations for
// schema declarations.
//
// These are convenient starting points, not a closed catalog - users are
// encouraged to write their own mixins tailored to their tables via
// [schema/mixin.Schema].
//
// Available mixins:
//   - CreateTime: adds a created_at field defaulting to time::now(), write-once
//   - UpdateTime: adds an updated_at field defaulting to time::now()
//   - Time: composes CreateTime and UpdateTime
//   - ExternalID: adds a write-once external_id UUID field, distinct from
//     the table's own record id
//   - SoftDelete: adds an optional deleted_at field for soft deletion
//   - TenantID: adds a write-once, non-empty tenant_id field for multi-tenancy
//   - TimeSoftDelete: composes Time and SoftDelete
//
// Grounded in the teacher's contrib/mixin package, generalized from
// velox.Field/time.Time defaults to field.Field descriptors carrying
// literal SurrealQL VALUE/ASSERT/PERMISSIONS clauses.
package mixin

import (
	"github.com/oyelowo/surrealorm/schema/field"
	"github.com/oyelowo/surrealorm/schema/mixin"
)

// writeOnce denies UPDATE on a field, the SurrealQL equivalent of the
// teacher's Immutable() field modifier.
const writeOnce = "FOR update NONE"

// CreateTime adds created_at, set once at creation and never updated.
type CreateTime struct{ mixin.Schema }

func (CreateTime) Fields() []field.Field {
	return []field.Field{
		field.Time("created_at").
			Value("time::now()").
			Permissions(writeOnce),
	}
}

var _ mixin.Mixin = (*CreateTime)(nil)

// UpdateTime adds updated_at, defaulting to time::now() on every write.
type UpdateTime struct{ mixin.Schema }

func (UpdateTime) Fields() []field.Field {
	return []field.Field{
		field.Time("updated_at").Value("time::now()"),
	}
}

var _ mixin.Mixin = (*UpdateTime)(nil)

// Time composes CreateTime and UpdateTime - the common pair for tracking
// entity timestamps.
type Time struct{ mixin.Schema }

func (Time) Fields() []field.Field {
	return mixin.Fold([]mixin.Mixin{CreateTime{}, UpdateTime{}}, nil)
}

var _ mixin.Mixin = (*Time)(nil)

// ExternalID adds a write-once external_id field, a client-facing UUID
// distinct from the table's own record id (which SurrealQL always
// derives as a record type; see schema.Derive's id invariant).
type ExternalID struct{ mixin.Schema }

func (ExternalID) Fields() []field.Field {
	return []field.Field{
		field.UUID("external_id").
			Value("rand::uuid()").
			Permissions(writeOnce),
	}
}

var _ mixin.Mixin = (*ExternalID)(nil)

// SoftDelete adds an optional deleted_at field. An entity is considered
// deleted once this is set but remains queryable; callers filter it out
// with a WHERE deleted_at = NONE clause.
type SoftDelete struct{ mixin.Schema }

func (SoftDelete) Fields() []field.Field {
	return []field.Field{
		field.Time("deleted_at").Type("option<datetime>"),
	}
}

var _ mixin.Mixin = (*SoftDelete)(nil)

// TenantID adds a write-once, non-empty tenant_id field for row-level
// multi-tenancy.
type TenantID struct{ mixin.Schema }

func (TenantID) Fields() []field.Field {
	return []field.Field{
		field.String("tenant_id").
			Assert("string::len($value) > 0").
			Permissions(writeOnce),
	}
}

var _ mixin.Mixin = (*TenantID)(nil)

// TimeSoftDelete composes Time and SoftDelete: created_at, updated_at,
// and deleted_at.
type TimeSoftDelete struct{ mixin.Schema }

func (TimeSoftDelete) Fields() []field.Field {
	return mixin.Fold([]mixin.Mixin{Time{}, SoftDelete{}}, nil)
}

var _ mixin.Mixin = (*TimeSoftDelete)(nil)

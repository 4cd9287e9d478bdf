package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyelowo/surrealorm/schema"
	"github.com/oyelowo/surrealorm/schema/field"
)

type Person struct {
	schema.Node
}

func (Person) Fields() []field.Field {
	return []field.Field{
		field.String("name"),
		field.Int("age"),
		field.Float("rating"),
		field.Bool("active"),
		field.Time("joined_at"),
		field.Slice("tags"),
		field.JSON("settings"),
	}
}

func TestDeriveInfersPrimitiveTypes(t *testing.T) {
	obj, diags, _ := schema.Derive(Person{})
	require.Empty(t, diags)

	want := map[string]string{
		"name":      "string",
		"age":       "int",
		"rating":    "float",
		"active":    "bool",
		"joined_at": "datetime",
		"tags":      "array<any>",
		"settings":  "object",
	}
	for name, typ := range want {
		fh := obj.Field(name)
		require.NotNil(t, fh, "field %q", name)
		assert.Equal(t, typ, fh.Type().String(), "field %q", name)
	}
}

func TestDeriveTableNameFromGoTypeName(t *testing.T) {
	type WithID struct{ schema.Node }
	obj, diags, _ := schema.Derive(WithID{})
	require.Empty(t, diags)
	assert.Equal(t, "with_id", obj.TableName())
}

// Purchased is an edge table: in/out must infer to record types, and its id
// must too (spec.md §8 scenario 7).
type Purchased struct {
	schema.Edge
}

func (Purchased) Fields() []field.Field {
	return []field.Field{
		field.String("id").Type("string"),
		field.String("in").Type("string"),
		field.String("out").Type("string"),
	}
}

func TestDeriveEdgeIDAndInOutMustBeRecord(t *testing.T) {
	_, diags, _ := schema.Derive(Purchased{})
	require.Len(t, diags, 3)
	for _, d := range diags {
		assert.Contains(t, d.Msg, "must be a record type")
	}
}

// PurchasedMissingInOut is an edge declaration that never declares in/out
// fields at all: the missing-field case the per-field checks above can't
// catch since they only fire for fields that are actually present.
type PurchasedMissingInOut struct {
	schema.Edge
}

func (PurchasedMissingInOut) Fields() []field.Field {
	return []field.Field{field.Decimal("price")}
}

func TestDeriveEdgeMissingInOutFlagged(t *testing.T) {
	_, diags, _ := schema.Derive(PurchasedMissingInOut{})
	require.Len(t, diags, 2)
	assert.Contains(t, diags[0].Msg, "\"in\" field")
	assert.Contains(t, diags[1].Msg, "\"out\" field")
}

// NodeWithExplicitScalarID exercises spec.md §8 scenario 7's subtlety: a
// NODE (not just an edge) with an explicit non-record id type is also
// rejected.
type NodeWithExplicitScalarID struct {
	schema.Node
}

func (NodeWithExplicitScalarID) Fields() []field.Field {
	return []field.Field{field.String("id").Type("string")}
}

func TestDeriveNodeExplicitScalarIDRejected(t *testing.T) {
	_, diags, _ := schema.Derive(NodeWithExplicitScalarID{})
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Msg, "id must be a record type")
}

type withLinkMany struct {
	schema.Node
}

func (withLinkMany) Fields() []field.Field {
	return []field.Field{field.String("members").LinkMany("user")}
}

func TestDeriveLinkManyInfersArrayOfRecord(t *testing.T) {
	obj, diags, asserts := schema.Derive(withLinkMany{})
	require.Empty(t, diags)
	require.Len(t, asserts, 2) // AssertionLinkTarget + AssertionCoercion

	members := obj.Field("members")
	require.NotNil(t, members)
	assert.True(t, members.Type().IsArray())
	assert.Equal(t, "array<record<user>>", members.Type().String())
}

type withBadLinkType struct {
	schema.Node
}

func (withBadLinkType) Fields() []field.Field {
	return []field.Field{field.String("author").LinkOne("user").Type("string")}
}

func TestDeriveLinkFieldsRequireRecordTarget(t *testing.T) {
	_, diags, _ := schema.Derive(withBadLinkType{})
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Msg, "link field must infer to record")
}

type withConflictingAttrs struct {
	schema.Node
}

func (withConflictingAttrs) Fields() []field.Field {
	return []field.Field{
		field.String("name").Define("DEFINE FIELD name ON TABLE x TYPE string;").Assert("$value != ''"),
	}
}

func TestMutualExclusionDiagnostics(t *testing.T) {
	_, diags, _ := schema.Derive(withConflictingAttrs{})
	require.NotEmpty(t, diags)
	found := false
	for _, d := range diags {
		if d.Msg == "define/define_fn cannot be combined with assert/assert_fn" {
			found = true
		}
	}
	assert.True(t, found)
}

type withRenamed struct {
	schema.Node
}

func (withRenamed) Config() schema.Config { return schema.Config{RenameAll: "snake_case"} }
func (withRenamed) Fields() []field.Field { return []field.Field{field.String("firstName")} }

func TestDeriveRenameAll(t *testing.T) {
	obj, diags, _ := schema.Derive(withRenamed{})
	require.Empty(t, diags)
	fh := obj.Field("firstName")
	require.NotNil(t, fh)
	assert.Equal(t, "first_name", fh.SerializedName())
}

type userDecl struct {
	schema.Node
}

func (userDecl) Config() schema.Config { return schema.Config{TableName: "user"} }
func (userDecl) Fields() []field.Field { return []field.Field{field.String("name")} }

func TestRegistryRegisterAllIsOrderIndependentAndDeterministic(t *testing.T) {
	reg := schema.NewRegistry()
	objs, diags, asserts := reg.RegisterAll([]any{userDecl{}, withLinkMany{}})

	require.Empty(t, diags["user"])
	require.Empty(t, diags["with_link_many"])
	require.NotEmpty(t, asserts["with_link_many"])
	require.Contains(t, objs, "user")
	require.Contains(t, objs, "with_link_many")

	members := objs["with_link_many"].Field("members")
	require.NotNil(t, members)

	next, err := reg.Walk(members, "")
	require.NoError(t, err)
	assert.Equal(t, "user", next.TableName())
}

func TestRegistryWalkResolvesByName(t *testing.T) {
	reg := schema.NewRegistry()
	_, diags, _ := reg.Register(userDecl{})
	require.Empty(t, diags)
	teamObj, diags, _ := reg.Register(withLinkMany{})
	require.Empty(t, diags)

	members := teamObj.Field("members")
	require.NotNil(t, members)

	next, err := reg.Walk(members, "")
	require.NoError(t, err)
	assert.Equal(t, "user", next.TableName())
	assert.Equal(t, "members", next.Path())
}

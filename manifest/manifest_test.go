package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyelowo/surrealorm/manifest"
	"github.com/oyelowo/surrealorm/schema"
	"github.com/oyelowo/surrealorm/schema/field"
)

type User struct {
	schema.Node
}

func (User) Fields() []field.Field {
	return []field.Field{
		field.String("name"),
		field.Int("age"),
	}
}

func (User) Config() schema.Config {
	return schema.Config{Schemafull: true}
}

type app struct {
	manifest.Base
	users *schema.Object
}

func (a app) Schemas() []*schema.Object { return []*schema.Object{a.users} }
func (a app) Params() []manifest.RawStatement {
	return []manifest.RawStatement{"DEFINE PARAM $max_page_size VALUE 100;"}
}

func TestCollectOrdersTableThenFieldsThenAuxGroups(t *testing.T) {
	users, diags, _ := schema.Derive(User{})
	require.Empty(t, diags)

	out, errs := manifest.Collect(app{users: users})
	require.Empty(t, errs)

	require.Len(t, out, 4)
	assert.Equal(t, "DEFINE TABLE user SCHEMAFULL;", out[0])
	assert.Equal(t, "DEFINE FIELD name ON TABLE user TYPE string;", out[1])
	assert.Equal(t, "DEFINE FIELD age ON TABLE user TYPE int;", out[2])
	assert.Equal(t, "DEFINE PARAM $max_page_size VALUE 100;", out[3])
}

type Broken struct{ schema.Node }

func (Broken) Fields() []field.Field {
	return []field.Field{field.Int("count").ItemAssert("$value > 0")}
}

func TestCollectPropagatesFieldErrors(t *testing.T) {
	obj, diags, _ := schema.Derive(Broken{})
	require.Len(t, diags, 1) // Derive already flags item_assert on a non-collection type
	assert.Contains(t, diags[0].Msg, "item_assert requires an array or set type")

	out, errs := manifest.Collect(app{users: obj})
	require.NotEmpty(t, errs) // the DEFINE FIELD statement builder independently rejects it too
	assert.Contains(t, errs[0].Error(), "item_assert requires an array or set type")
	assert.Equal(t, "DEFINE TABLE broken;", out[0])
}

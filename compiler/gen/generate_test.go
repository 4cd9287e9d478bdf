package gen_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyelowo/surrealorm/compiler/gen"
	"github.com/oyelowo/surrealorm/schema"
	"github.com/oyelowo/surrealorm/schema/field"
)

type Account struct{ schema.Node }

func (Account) Fields() []field.Field {
	return []field.Field{
		field.String("name"),
		field.Int("balance"),
	}
}

func (Account) Config() schema.Config { return schema.Config{Schemafull: true} }

func TestFileRendersConstsAndMigrateFunc(t *testing.T) {
	obj, diags, asserts := schema.Derive(Account{})
	require.Empty(t, diags)

	f := gen.File(obj, diags, asserts, gen.Options{Package: "accountgen"})

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))
	src := buf.String()

	assert.Contains(t, src, "package accountgen")
	assert.Contains(t, src, "AccountFieldName")
	assert.Contains(t, src, "AccountFieldBalance")
	assert.Contains(t, src, "func MigrateAccount() []string")
	assert.Contains(t, src, "DEFINE TABLE account SCHEMAFULL;")
	assert.Contains(t, src, "DEFINE FIELD name ON TABLE account TYPE string;")
	assert.NotContains(t, src, "func init()")
}

type Broken struct{ schema.Node }

func (Broken) Fields() []field.Field {
	return []field.Field{field.Int("count").ItemAssert("$value > 0")}
}

func TestFileEmitsInitGuardWhenDiagnosticsPresent(t *testing.T) {
	obj, diags, asserts := schema.Derive(Broken{})
	require.Len(t, diags, 1)

	f := gen.File(obj, diags, asserts, gen.Options{Package: "brokengen"})

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))
	src := buf.String()

	assert.Contains(t, src, "func init()")
	assert.Contains(t, src, "panic(")
	assert.Contains(t, src, "item_assert requires an array or set type")
}

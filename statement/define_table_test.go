package statement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyelowo/surrealorm/statement"
)

func TestDefineTableDefault(t *testing.T) {
	dt := statement.NewDefineTable("user").Schemafull().As("").Permissions("FULL")
	require.Empty(t, dt.Errors())
	assert.Equal(t, "DEFINE TABLE user SCHEMAFULL PERMISSIONS FULL;", dt.Build())
}

func TestDefineTableDrop(t *testing.T) {
	dt := statement.NewDefineTable("session").Drop()
	assert.Equal(t, "DEFINE TABLE session DROP;", dt.Build())
}

func TestDefineTableAsView(t *testing.T) {
	dt := statement.NewDefineTable("adult_users").As("SELECT * FROM user WHERE age >= 18")
	assert.Equal(t, "DEFINE TABLE adult_users AS SELECT * FROM user WHERE age >= 18;", dt.Build())
}

func TestDefineTableRaw(t *testing.T) {
	dt := statement.NewDefineTable("user").Raw("DEFINE TABLE user SCHEMALESS;")
	require.Empty(t, dt.Errors())
	assert.Equal(t, "DEFINE TABLE user SCHEMALESS;", dt.Build())
}

func TestDefineTableRawMutualExclusion(t *testing.T) {
	dt := statement.NewDefineTable("user").Raw("DEFINE TABLE user SCHEMALESS;").Drop()
	errs := dt.Errors()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "raw DEFINE cannot be combined")
}

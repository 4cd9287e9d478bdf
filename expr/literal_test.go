package expr_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyelowo/surrealorm/expr"
)

func TestFormatLiteralUUID(t *testing.T) {
	id := uuid.MustParse("018f7f20-3b1a-7c3e-9b1a-2b3c4d5e6f70")
	assert.Equal(t, "'018f7f20-3b1a-7c3e-9b1a-2b3c4d5e6f70'", expr.FormatLiteral("", id))
}

func TestFormatLiteralThingIsUnquoted(t *testing.T) {
	assert.Equal(t, "user:tobie", expr.FormatLiteral("thing", "user:tobie"))
	assert.Equal(t, "42", expr.FormatLiteral("thing", 42))
}

func TestFormatLiteralDecimal(t *testing.T) {
	d := decimal.RequireFromString("19.99")
	assert.Equal(t, "19.99dec", expr.FormatLiteral("", d))
}

func TestFormatLiteralDuration(t *testing.T) {
	d, err := time.ParseDuration("1h30m")
	require.NoError(t, err)
	assert.Equal(t, "1h30m", expr.FormatLiteral("", d))
}

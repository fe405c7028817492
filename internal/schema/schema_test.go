package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneOf(t *testing.T) {
	assert.Equal(t, "", OneOf(nil))
	assert.Equal(t, "Fn", OneOf([]string{"Fn"}))
	assert.Equal(t, "Public or Inherited", OneOf(Visibilities))
	assert.Equal(t, "Semi, Expr, or Empty", OneOf(StmtKinds))
	assert.Equal(t, "MacCall, Lit, or Path", OneOf(ExprKinds))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains(StmtKinds, "Semi"))
	assert.False(t, Contains(StmtKinds, "Let"))
}

func TestCheck(t *testing.T) {
	require.NoError(t, Check(">= 0.1.0"))
	require.NoError(t, Check("< 1.0.0"))
	assert.Error(t, Check(">= 1.0.0"))
	assert.Error(t, Check("not-a-constraint"))
}

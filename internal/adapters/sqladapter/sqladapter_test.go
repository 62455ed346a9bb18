package sqladapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSelectStatement(t *testing.T) {
	summary, err := Validate(`SELECT id, name FROM users WHERE active = 1 LIMIT 10;`, ValidationSchema{})
	require.Nil(t, err)
	assert.Equal(t, "select", summary.StatementType)
	assert.True(t, summary.HasWhere)
	assert.True(t, summary.HasFrom)
	require.NotNil(t, summary.Limit)
	assert.Equal(t, int64(10), *summary.Limit)
	assert.Contains(t, summary.Tables, "users")
}

func TestValidateRejectsDisallowedStatementType(t *testing.T) {
	_, err := Validate(`DROP TABLE users;`, ValidationSchema{AllowedStatements: []string{"select"}})
	require.NotNil(t, err)
	assert.Equal(t, "$.statementType", err.Path)
}

func TestValidateRequiresLimitWhenConfigured(t *testing.T) {
	_, err := Validate(`SELECT * FROM users;`, ValidationSchema{RequireLimit: true})
	require.NotNil(t, err)
	assert.Equal(t, "$.limit", err.Path)

	summary, err2 := Validate(`SELECT * FROM users LIMIT 5;`, ValidationSchema{RequireLimit: true})
	require.Nil(t, err2)
	assert.True(t, summary.HasLimit)
}

func TestValidateDetectsSubqueryAndUnion(t *testing.T) {
	summary, err := Validate(`SELECT * FROM a WHERE id IN (SELECT id FROM b) UNION SELECT * FROM c;`, ValidationSchema{})
	require.Nil(t, err)
	assert.True(t, summary.HasSubquery)
	assert.True(t, summary.HasUnion)
}

func TestValidateIgnoresSemicolonInStringLiteral(t *testing.T) {
	summary, err := Validate(`SELECT * FROM logs WHERE message = 'a; b' LIMIT 1;`, ValidationSchema{})
	require.Nil(t, err)
	assert.Equal(t, "select", summary.StatementType)
}

func TestValidateDetectsComments(t *testing.T) {
	summary, err := Validate("SELECT * FROM t -- trailing comment\n;", ValidationSchema{})
	require.Nil(t, err)
	assert.True(t, summary.HasComments)
}

func TestValidateUnknownStatementType(t *testing.T) {
	_, err := Validate(`EXPLAIN SELECT 1;`, ValidationSchema{})
	require.NotNil(t, err)
	assert.Equal(t, "$.sql", err.Path)
}

package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftcode/llmparse/internal/adapters/sqladapter"
	"github.com/driftcode/llmparse/internal/stream"
)

func TestSQLStreamParserValidatesFirstStatement(t *testing.T) {
	p := NewSQLStreamParser(sqladapter.ValidationSchema{AllowedStatements: []string{"select"}}, stream.Limits{})
	p.Append([]byte(`SELECT * FROM users;`))
	out := p.Poll()
	require.True(t, out.Done)
	require.True(t, out.OK)
	assert.Equal(t, "select", out.Value.StatementType)
}

func TestSQLStreamParserRejectsDisallowedStatement(t *testing.T) {
	p := NewSQLStreamParser(sqladapter.ValidationSchema{AllowedStatements: []string{"select"}}, stream.Limits{})
	p.Append([]byte(`DELETE FROM users;`))
	out := p.Poll()
	require.True(t, out.Done)
	assert.False(t, out.OK)
	assert.NotNil(t, out.Error)
}

func TestSQLStreamParserWaitsForStatementEnd(t *testing.T) {
	p := NewSQLStreamParser(sqladapter.ValidationSchema{}, stream.Limits{})
	p.Append([]byte(`SELECT * FROM users`))
	out := p.Poll()
	assert.False(t, out.Done)

	p.Append([]byte(`;`))
	out = p.Poll()
	assert.True(t, out.Done)
	assert.True(t, out.OK)
}

package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	llmparse "github.com/driftcode/llmparse"
)

func TestDefaultRepairConfigEnablesEveryPrePass(t *testing.T) {
	cfg := defaultRepairConfig()
	assert.True(t, cfg.FixSmartQuotes)
	assert.True(t, cfg.StripJSONComments)
	assert.True(t, cfg.ReplacePythonLiterals)
	assert.True(t, cfg.ConvertKVObjectToJSON)
	assert.True(t, cfg.QuoteUnquotedKeys)
	assert.True(t, cfg.DropTrailingCommas)
	assert.True(t, cfg.AllowSingleQuotes)
	assert.Equal(t, llmparse.FirstWins, cfg.DuplicateKeyPolicy)
}

func TestReadInputFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), 0o644))

	got, err := readInput(path)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, got)
}

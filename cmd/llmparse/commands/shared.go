// Package commands implements the llmparse CLI's subcommands.
package commands

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	llmparse "github.com/driftcode/llmparse"
)

var (
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleOK    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	stylePath  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// readInput reads path, or stdin when path is "" or "-".
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

// defaultRepairConfig builds a RepairConfig with every textual pre-pass
// enabled, the configuration used by every CLI subcommand. No flag
// changes it.
func defaultRepairConfig() llmparse.RepairConfig {
	return llmparse.RepairConfig{
		FixSmartQuotes:        true,
		StripJSONComments:     true,
		ReplacePythonLiterals: true,
		ConvertKVObjectToJSON: true,
		QuoteUnquotedKeys:     true,
		DropTrailingCommas:    true,
		AllowSingleQuotes:     true,
		DuplicateKeyPolicy:    llmparse.FirstWins,
	}
}

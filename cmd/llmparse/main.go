package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/driftcode/llmparse/cmd/llmparse/commands"
)

func main() {
	root := &cobra.Command{
		Use:   "llmparse",
		Short: "Extract, repair, and validate structured data from LLM output",
		Long: `llmparse extracts JSON payloads from messy LLM-generated text,
repairs common formatting mistakes, and validates the result against a
schema.`,
	}

	root.AddCommand(
		commands.NewParseCmd(),
		commands.NewValidateCmd(),
		commands.NewRepairCmd(),
		commands.NewWatchCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

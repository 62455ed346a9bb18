package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	llmparse "github.com/driftcode/llmparse"
)

// RepairOptions holds options for the repair command.
type RepairOptions struct {
	File       string
	SchemaFile string
}

func NewRepairCmd() *cobra.Command {
	var opts RepairOptions

	cmd := &cobra.Command{
		Use:   "repair [file]",
		Short: "Parse, validate, and synthesize repair suggestions for a JSON payload",
		Long: `Extract and repair a JSON payload, validate it against --schema, and for
each violation attempt a local fix: coercing types, clamping numbers,
truncating strings/arrays, removing disallowed properties, snapping
near-miss enum values, and normalizing known formats.

Examples:
  llmparse repair response.txt --schema person.schema.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.File = args[0]
			}
			return runRepair(opts)
		},
	}

	cmd.Flags().StringVar(&opts.SchemaFile, "schema", "", "Path to a JSON Schema document (required)")
	cmd.MarkFlagRequired("schema")
	return cmd
}

func runRepair(opts RepairOptions) error {
	text, err := readInput(opts.File)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	schemaText, err := readInput(opts.SchemaFile)
	if err != nil {
		return fmt.Errorf("reading schema: %w", err)
	}
	schemaValue, err := llmparse.ParseValue(schemaText)
	if err != nil {
		return fmt.Errorf("parsing schema: %w", err)
	}

	result, err := llmparse.ParseAndRepair(text, schemaValue, defaultRepairConfig(), llmparse.RepairSuggestionConfig{
		CoerceTypes:           true,
		UseDefaults:           true,
		ClampNumbers:          true,
		TruncateStrings:       true,
		TruncateArrays:        true,
		RemoveExtraProperties: true,
		FixEnums:              true,
		FixFormats:            true,
	})
	if err != nil {
		fmt.Println(styleError.Render("parse failed: " + err.Error()))
		return err
	}

	fmt.Println(llmparse.Serialize(result.RepairedValue))
	if result.FullyRepaired {
		fmt.Println(styleOK.Render("fully repaired"))
	} else if result.Valid {
		fmt.Println(styleOK.Render("valid (no repairs needed)"))
	} else {
		fmt.Println(styleError.Render(fmt.Sprintf("%d unfixable error(s)", len(result.UnfixableErrors))))
	}

	for _, s := range result.Suggestions {
		fmt.Printf("  %s %s: %s\n", stylePath.Render(s.Path), styleDim.Render(string(s.ErrorKind)), s.Message)
	}
	return nil
}

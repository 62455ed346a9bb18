package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	llmparse "github.com/driftcode/llmparse"
)

// ValidateOptions holds options for the validate command.
type ValidateOptions struct {
	File       string
	SchemaFile string
	FailFast   bool
}

func NewValidateCmd() *cobra.Command {
	var opts ValidateOptions

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Parse and validate a JSON payload against a schema",
		Long: `Extract and repair a JSON payload from the given file (or stdin), then
validate it against the schema in --schema.

Examples:
  llmparse validate response.txt --schema person.schema.json
  cat response.txt | llmparse validate --schema person.schema.json --fail-fast`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.File = args[0]
			}
			return runValidate(opts)
		},
	}

	cmd.Flags().StringVar(&opts.SchemaFile, "schema", "", "Path to a JSON Schema document (required)")
	cmd.Flags().BoolVar(&opts.FailFast, "fail-fast", false, "Stop at the first validation error")
	cmd.MarkFlagRequired("schema")
	return cmd
}

func runValidate(opts ValidateOptions) error {
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
	if lintErr := llmparse.LintSchema(schemaValue); lintErr != nil {
		fmt.Println(styleError.Render("schema is invalid: " + lintErr.Error()))
		return lintErr
	}

	result, err := llmparse.ParseJSON(text, defaultRepairConfig())
	if err != nil {
		fmt.Println(styleError.Render("parse failed: " + err.Error()))
		return err
	}

	if opts.FailFast {
		if verr := llmparse.Validate(result.Value, schemaValue); verr != nil {
			fmt.Println(styleError.Render(verr.Error()))
			return verr
		}
		fmt.Println(styleOK.Render("valid"))
		return nil
	}

	errs := llmparse.ValidateAll(result.Value, schemaValue)
	if len(errs) == 0 {
		fmt.Println(styleOK.Render("valid"))
		return nil
	}
	fmt.Println(styleError.Render(fmt.Sprintf("%d validation error(s)", len(errs))))
	for _, e := range errs {
		fmt.Printf("  %s %s — %s\n", stylePath.Render(e.Path), styleDim.Render(e.JSONPointer), e.Message)
	}
	return fmt.Errorf("%d validation error(s)", len(errs))
}

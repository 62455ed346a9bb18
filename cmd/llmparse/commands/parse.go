package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	llmparse "github.com/driftcode/llmparse"
)

// ParseOptions holds options for the parse command.
type ParseOptions struct {
	File   string
	Format string // text, json
}

func NewParseCmd() *cobra.Command {
	var opts ParseOptions

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Extract and repair a JSON payload from text",
		Long: `Extract a JSON candidate from the given file (or stdin), apply the
full set of textual repairs, and print the resulting value.

Examples:
  llmparse parse response.txt
  cat response.txt | llmparse parse
  llmparse parse response.txt --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.File = args[0]
			}
			return runParse(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "text", "Output format (text, json)")
	return cmd
}

func runParse(opts ParseOptions) error {
	text, err := readInput(opts.File)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result, err := llmparse.ParseJSON(text, defaultRepairConfig())
	if err != nil {
		fmt.Println(styleError.Render("parse failed: " + err.Error()))
		return err
	}

	if opts.Format == "json" {
		fmt.Println(llmparse.Serialize(result.Value))
		return nil
	}

	fmt.Println(styleOK.Render("parsed successfully"))
	fmt.Println(llmparse.Serialize(result.Value))
	printMetadata(result.Metadata)
	return nil
}

func printMetadata(meta llmparse.RepairMetadata) {
	fmt.Println(styleDim.Render("repairs applied:"))
	report := []struct {
		name    string
		applied bool
	}{
		{"extractedFromFence", meta.ExtractedFromFence},
		{"fixedSmartQuotes", meta.FixedSmartQuotes},
		{"strippedComments", meta.StrippedComments},
		{"replacedPythonLiterals", meta.ReplacedPythonLiterals},
		{"convertedKVObject", meta.ConvertedKVObject},
		{"quotedUnquotedKeys", meta.QuotedUnquotedKeys},
		{"droppedTrailingCommas", meta.DroppedTrailingCommas},
		{"allowedSingleQuotes", meta.AllowedSingleQuotes},
	}
	for _, r := range report {
		if r.applied {
			fmt.Println(styleDim.Render("  - " + r.name))
		}
	}
	if meta.DuplicateKeyCount > 0 {
		fmt.Printf("%s\n", styleDim.Render(fmt.Sprintf("  - duplicateKeyCount=%d (%s)", meta.DuplicateKeyCount, meta.DuplicateKeyPolicy)))
	}
}

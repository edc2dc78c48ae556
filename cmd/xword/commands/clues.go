package commands

import (
	"fmt"

	"github.com/dyluth/xword/internal/printer"
	"github.com/dyluth/xword/internal/render"
	"github.com/spf13/cobra"
)

var cluesOutputFormat string

var cluesCmd = &cobra.Command{
	Use:   "clues <file.puz>",
	Short: "List clues with their index, number, direction and start cell",
	Long: `List every clue in file order. The index is the clue's position in the
file's string table; the number is the one printed in the grid.

Output Formats:
  default - Human-readable table
  jsonl   - Line-delimited JSON, one clue per line

Examples:
  xword clues mini.puz
  xword clues --output=jsonl mini.puz | jq 'select(.direction=="Down") | .text'`,
	Args: cobra.ExactArgs(1),
	RunE: runClues,
}

func init() {
	cluesCmd.Flags().StringVarP(&cluesOutputFormat, "output", "o", "default", "Output format: default or jsonl")
	rootCmd.AddCommand(cluesCmd)
}

func runClues(cmd *cobra.Command, args []string) error {
	format, err := render.ParseOutputFormat(cluesOutputFormat)
	if err != nil || format == render.OutputFormatJSON {
		return printer.Error(
			"invalid output format",
			fmt.Sprintf("Unknown format: %s", cluesOutputFormat),
			[]string{"Valid formats: default, jsonl"},
		)
	}

	doc, err := loadPuzzle(args[0])
	if err != nil {
		return err
	}

	if format == render.OutputFormatJSONL {
		return render.FormatJSONL(cmd.OutOrStdout(), doc)
	}
	return render.ClueTable(cmd.OutOrStdout(), doc)
}

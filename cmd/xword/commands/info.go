package commands

import (
	"fmt"

	"github.com/dyluth/xword/internal/printer"
	"github.com/dyluth/xword/internal/render"
	"github.com/spf13/cobra"
)

var infoOutputFormat string

var infoCmd = &cobra.Command{
	Use:   "info <file.puz>",
	Short: "Show puzzle metadata and header fields",
	Long: `Show the title, author, copyright and notes of a puzzle together with
its header fields: dimensions, format version, clue count, checksums and
whether the solution is scrambled.

Output Formats:
  default - Human-readable table
  json    - The whole puzzle as pretty-printed JSON (grid without answers)`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().StringVarP(&infoOutputFormat, "output", "o", "default", "Output format: default or json")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	format, err := render.ParseOutputFormat(infoOutputFormat)
	if err != nil || format == render.OutputFormatJSONL {
		return printer.Error(
			"invalid output format",
			fmt.Sprintf("Unknown format: %s", infoOutputFormat),
			[]string{"Valid formats: default, json"},
		)
	}

	doc, err := loadPuzzle(args[0])
	if err != nil {
		return err
	}

	if format == render.OutputFormatJSON {
		return render.FormatJSON(cmd.OutOrStdout(), doc, cfg.Display.Reveal)
	}
	return render.HeaderTable(cmd.OutOrStdout(), doc)
}

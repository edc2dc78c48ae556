package commands

import (
	"github.com/dyluth/xword/internal/printer"
	"github.com/dyluth/xword/internal/render"
	"github.com/spf13/cobra"
)

var showSolution bool

var showCmd = &cobra.Command{
	Use:   "show <file.puz>",
	Short: "Print a puzzle grid and its clues",
	Long: `Print a puzzle as a box-drawn grid followed by the Across and Down clue lists.

By default the stored player state is shown, with clue numbers in empty cells.
Use --solution (or display.reveal in the config file) to show the answers.

Examples:
  xword show mini.puz
  xword show --solution mini.puz`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVarP(&showSolution, "solution", "s", false, "Show the solution rather than the blank puzzle")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	doc, err := loadPuzzle(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if doc.Title != "" {
		printer.Printf("%s\n\n", doc.Title)
	}

	opts := render.Options{
		Color:       colorEnabled(),
		ShowNumbers: *cfg.Display.ShowNumbers,
	}
	reveal := showSolution || cfg.Display.Reveal
	if err := render.Grid(out, render.FromDocument(doc, reveal), opts); err != nil {
		return err
	}

	printer.Println()
	return render.ClueLists(out, doc)
}

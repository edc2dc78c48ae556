package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dyluth/xword/internal/command"
	"github.com/dyluth/xword/internal/game"
	"github.com/dyluth/xword/internal/printer"
	"github.com/dyluth/xword/internal/render"
	"github.com/dyluth/xword/pkg/puz"
	"github.com/spf13/cobra"
)

var (
	playScript    string
	playSeed      string
	playDirection string
	playQuiet     bool
)

var playCmd = &cobra.Command{
	Use:   "play <file.puz>",
	Short: "Solve a puzzle by entering key tokens",
	Long: `Start a solving session. Each input line holds whitespace-separated key
tokens; the grid and the active clue are redrawn after every line.

Keys:
  left, right, up, down        move the cursor (wrapping around the grid)
  toggle, shift+right, ctrl+down, ...
                               switch between Across and Down
  backspace, space, clear      empty the cursor cell
  A-Z                          type a letter and advance
  type WORD                    type every letter of WORD
  quit                         end the session

Tokens are read from stdin, or from --script. Anything after '#' is ignored.

Examples:
  xword play mini.puz
  echo "type cat down toggle" | xword play mini.puz
  xword play --seed=saved --script=moves.txt mini.puz`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playScript, "script", "", "Read key tokens from this file instead of stdin")
	playCmd.Flags().StringVar(&playSeed, "seed", "", "Initial player grid: empty or saved (default from config)")
	playCmd.Flags().StringVar(&playDirection, "direction", "", "Initial typing direction: across or down (default from config)")
	playCmd.Flags().BoolVarP(&playQuiet, "quiet", "q", false, "Only draw the final grid")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	opts := cfg.GameOptions()
	if playSeed != "" {
		opts.Seed = game.SeedMode(playSeed)
	}
	if playDirection != "" {
		dir, err := puz.ParseTypingDirection(playDirection)
		if err != nil {
			return printer.Error("invalid --direction", err.Error(), []string{"Valid directions: across, down"})
		}
		opts.Direction = dir
	}

	doc, err := loadPuzzle(args[0])
	if err != nil {
		return err
	}

	state, err := game.New(doc, opts)
	if err != nil {
		if errors.Is(err, game.ErrDegenerateGrid) {
			return printer.Error(
				"puzzle cannot be played",
				err.Error(),
				[]string{"The grid has no cell a letter can be typed into"},
			)
		}
		return printer.Error("failed to start session", err.Error(), []string{"Valid seeds: empty, saved"})
	}

	in := cmd.InOrStdin()
	if playScript != "" {
		f, err := os.Open(playScript)
		if err != nil {
			return printer.Error(
				"failed to open script",
				err.Error(),
				[]string{"Check the path given to --script"},
			)
		}
		defer f.Close()
		in = f
	}

	s := &session{
		out:   cmd.OutOrStdout(),
		state: state,
		opts: render.Options{
			Color:       colorEnabled(),
			ShowNumbers: *cfg.Display.ShowNumbers,
		},
	}
	if doc.Title != "" {
		printer.Printf("%s\n\n", doc.Title)
	}
	return s.run(in)
}

// session drives a game.State from a stream of token lines.
type session struct {
	out   io.Writer
	state *game.State
	opts  render.Options
}

func (s *session) run(in io.Reader) error {
	if !playQuiet {
		if err := s.draw(); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		cmds, err := command.ParseLine(scanner.Text())
		quit := errors.Is(err, command.ErrQuit)
		if err != nil && !quit {
			printer.Warning("line %d: %v\n", lineNo, err)
			continue
		}

		s.state.ApplyAll(cmds)
		if !playQuiet && len(cmds) > 0 {
			if err := s.draw(); err != nil {
				return err
			}
		}
		if quit || s.state.Solved() {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if playQuiet {
		if err := s.draw(); err != nil {
			return err
		}
	}
	return s.summary()
}

func (s *session) draw() error {
	if err := render.Grid(s.out, render.FromState(s.state), s.opts); err != nil {
		return err
	}
	printer.Step("%s\n\n", s.state.CurrentClueText())
	return nil
}

func (s *session) summary() error {
	p := s.state.Progress()
	if s.state.Solved() {
		printer.Success("Solved! All %d cells correct\n", p.Open)
		return nil
	}
	printer.Info("Filled %d of %d cells, %d correct\n", p.Filled, p.Open, p.Correct)
	return nil
}

package commands

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dyluth/xword/internal/config"
	"github.com/dyluth/xword/internal/printer"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

var (
	configPath string
	verbose    bool
	noColor    bool

	// cfg is resolved before any subcommand runs
	cfg *config.XwordConfig
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "xword",
	Short: "xword - Across Lite crossword reader and solver",
	Long: `xword reads Across Lite .puz crossword files and lets you solve them
in the terminal.

It decodes the binary puzzle format, derives clue numbering from the grid,
and runs a solving session driven by key tokens read from stdin or a script.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetFlags(log.LstdFlags)
		if verbose {
			log.SetOutput(cmd.ErrOrStderr())
		} else {
			log.SetOutput(io.Discard)
		}
		printer.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())

		resolved, err := config.Resolve(configPath)
		if err != nil {
			return printer.Error(
				"failed to load configuration",
				err.Error(),
				[]string{
					"Check the file passed with --config",
					fmt.Sprintf("Unset %s to use the defaults", config.EnvVar),
				},
			)
		}
		cfg = resolved

		printer.SetColor(colorEnabled())
		return nil
	},
	// Prevent silent success when unknown flags are passed to root command
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	// Enable strict flag parsing - unknown flags will cause an error
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Silence Cobra's default error and usage printing
	// We print formatted colored errors directly in the printer package
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func colorEnabled() bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return cfg != nil && *cfg.Display.Color
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", fmt.Sprintf("Config file (default $%s or <user config dir>/xword/%s)", config.EnvVar, config.DefaultFileName))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write diagnostic logs to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

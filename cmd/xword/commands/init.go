package commands

import (
	"fmt"

	"github.com/dyluth/xword/internal/config"
	"github.com/dyluth/xword/internal/printer"
	"github.com/dyluth/xword/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	forceInit bool
	initPath  string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a commented xword.yml with the default settings.

The file goes to <user config dir>/xword/xword.yml unless --path is given.

Use --force to overwrite an existing file.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
	initCmd.Flags().StringVar(&initPath, "path", "", "Where to write the config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := initPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return printer.Error(
				"no user config directory",
				err.Error(),
				[]string{"Pass --path to choose where to write the file"},
			)
		}
	}

	if !forceInit {
		if err := scaffold.CheckExisting(path); err != nil {
			return printer.Error(
				"config already initialized",
				fmt.Sprintf("Found existing: %s", path),
				[]string{"Use 'xword init --force' to overwrite it"},
			)
		}
	}

	if err := scaffold.Initialize(path, forceInit); err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	scaffold.PrintSuccess(path)
	return nil
}

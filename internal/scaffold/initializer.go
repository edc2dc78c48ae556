package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dyluth/xword/internal/config"
	"github.com/dyluth/xword/internal/printer"
)

//go:embed templates/*
var templatesFS embed.FS

// CheckExisting returns an error if a config file already exists at path.
func CheckExisting(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	return nil
}

// Initialize writes the commented default configuration to path.
// If force is true an existing file is replaced.
func Initialize(path string, force bool) error {
	if !force {
		if err := CheckExisting(path); err != nil {
			return err
		}
	}

	content, err := templatesFS.ReadFile("templates/xword.yml.tmpl")
	if err != nil {
		return fmt.Errorf("failed to read xword.yml template: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	// The template must load cleanly with the current schema
	if _, err := config.Load(path); err != nil {
		return fmt.Errorf("created %s is not a valid config: %w", path, err)
	}

	return nil
}

// PrintSuccess prints the success message with the created file
func PrintSuccess(path string) {
	printer.Success("Created %s\n", path)
	printer.Println("\nNext steps:")
	printer.Println("  1. Edit the file to change colors, numbering or the start direction")
	printer.Printf("  2. Point %s at it if you keep it somewhere else\n", config.EnvVar)
	printer.Println("  3. Run 'xword play <file.puz>' to start solving")
}

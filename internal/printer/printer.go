package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	// Color definitions
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

var (
	out    io.Writer = os.Stdout
	errOut io.Writer = os.Stderr
)

// SetOutput redirects regular and error output. Commands point it at their
// cobra streams so tests can capture what is printed.
func SetOutput(stdout, stderr io.Writer) {
	out = stdout
	errOut = stderr
}

// SetColor enables or disables colored output. NO_COLOR always wins.
func SetColor(enabled bool) {
	color.NoColor = !enabled || os.Getenv("NO_COLOR") != ""
}

// Success prints a success message in green with a checkmark prefix
func Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		green.Fprintf(out, "✓ %s", msg)
	} else {
		green.Fprint(out, msg)
	}
}

// Info prints an informational message in the default color
func Info(format string, a ...any) {
	fmt.Fprintf(out, format, a...)
}

// Warning prints a warning message in yellow with a warning emoji prefix
func Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠️") {
		yellow.Fprintf(out, "⚠️  %s", msg)
	} else {
		yellow.Fprint(out, msg)
	}
}

// Error creates a formatted error message with title, explanation, and suggestions
// Prints the formatted error to stderr with colors and returns a simple error for Cobra
func Error(title string, explanation string, suggestions []string) error {
	red.Fprintf(errOut, "%s\n\n", title)
	fmt.Fprintf(errOut, "%s\n", explanation)
	printSuggestions(suggestions)

	// Return simple error for Cobra (won't be printed due to SilenceErrors)
	return fmt.Errorf("%s", title)
}

// ErrorWithContext creates a formatted error with context details such as the
// file and offset that failed to decode.
func ErrorWithContext(title string, explanation string, context [][2]string, suggestions []string) error {
	red.Fprintf(errOut, "%s\n\n", title)

	if explanation != "" {
		fmt.Fprintf(errOut, "%s\n", explanation)
	}

	if len(context) > 0 {
		fmt.Fprintf(errOut, "\n")
		for _, kv := range context {
			fmt.Fprintf(errOut, "  %s: %s\n", kv[0], kv[1])
		}
	}

	printSuggestions(suggestions)

	return fmt.Errorf("%s", title)
}

func printSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	fmt.Fprintf(errOut, "\n")
	if len(suggestions) == 1 {
		fmt.Fprintf(errOut, "%s\n", suggestions[0])
		return
	}
	fmt.Fprintf(errOut, "Either:\n")
	for i, suggestion := range suggestions {
		fmt.Fprintf(errOut, "  %d. %s\n", i+1, suggestion)
	}
}

// Step prints a step message with emphasis. The play loop uses it for the
// active clue line.
func Step(format string, a ...any) {
	cyan.Fprintf(out, "→ %s", fmt.Sprintf(format, a...))
}

// Println prints a plain message (for output that doesn't need coloring)
func Println(a ...any) {
	fmt.Fprintln(out, a...)
}

// Printf prints a plain formatted message (for output that doesn't need coloring)
func Printf(format string, a ...any) {
	fmt.Fprintf(out, format, a...)
}

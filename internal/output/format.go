// Package output provides terminal output formatting utilities for the
// calclog CLI. This package is designed to have minimal dependencies to
// avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// IsInteractive reports whether stdout is a terminal and colors are not
// suppressed via NO_COLOR. Used to decide whether to show the spinner.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
}

// PrintBanner prints a bold section banner sized to the terminal.
func PrintBanner(out io.Writer, title string) {
	width := GetTerminalWidth()
	if width > 60 {
		width = 60
	}

	bold := color.New(color.Bold).SprintFunc()
	line := strings.Repeat("=", width)
	fmt.Fprintf(out, "%s\n  %s\n%s\n", line, bold(title), line)
}

// PrintResult prints a labeled computation result.
// Uses dim text for the expression and bold for the value.
func PrintResult(out io.Writer, expression, value string) {
	dim := color.New(color.Faint).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(out, "  %s = %s\n", dim(expression), bold(value))
}

// PrintSuccess prints a green checkmark followed by a cyan message.
func PrintSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), cyan(message))
}

// PrintHistory prints calculator history entries, one per line.
func PrintHistory(out io.Writer, entries []string) {
	dim := color.New(color.Faint).SprintFunc()
	for _, entry := range entries {
		fmt.Fprintf(out, "  %s\n", dim(entry))
	}
}

package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	// Color functions with auto-detection for terminal support.
	errorLabel  = color.New(color.FgRed, color.Bold).SprintFunc()
	errorMsg    = color.New(color.FgRed).SprintFunc()
	fixLabel    = color.New(color.FgGreen, color.Bold).SprintFunc()
	usageLabel  = color.New(color.FgCyan, color.Bold).SprintFunc()
	usageText   = color.New(color.FgCyan).SprintFunc()
	bullet      = color.New(color.FgGreen).SprintFunc()
	categoryFmt = color.New(color.FgYellow).SprintFunc()
)

// FormatError formats a CLIError for terminal display, with colors when
// available.
func FormatError(err *CLIError) string {
	return formatError(err, true)
}

// FormatErrorPlain formats a CLIError without colors.
func FormatErrorPlain(err *CLIError) string {
	return formatError(err, false)
}

func formatError(err *CLIError, useColors bool) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	if useColors {
		fmt.Fprintf(&sb, "%s [%s]: %s\n", errorLabel("Error"), categoryFmt(err.Category.String()), errorMsg(err.Message))
	} else {
		fmt.Fprintf(&sb, "Error [%s]: %s\n", err.Category.String(), err.Message)
	}

	if err.Usage != "" {
		sb.WriteString("\n")
		if useColors {
			fmt.Fprintf(&sb, "%s%s\n", usageLabel("Usage: "), usageText(err.Usage))
		} else {
			fmt.Fprintf(&sb, "Usage: %s\n", err.Usage)
		}
	}

	if len(err.Remediation) > 0 {
		sb.WriteString("\n")
		if useColors {
			sb.WriteString(fixLabel("To fix this:"))
		} else {
			sb.WriteString("To fix this:")
		}
		sb.WriteString("\n")
		for _, step := range err.Remediation {
			if useColors {
				fmt.Fprintf(&sb, "  %s %s\n", bullet("•"), step)
			} else {
				fmt.Fprintf(&sb, "  • %s\n", step)
			}
		}
	}

	return sb.String()
}

// PrintError prints a formatted CLIError to stderr.
func PrintError(err *CLIError) {
	FprintError(os.Stderr, err)
}

// FprintError prints a formatted CLIError to the given writer.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}

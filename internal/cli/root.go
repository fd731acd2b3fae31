// Package cli implements the calclog command tree.
package cli

import (
	"fmt"

	"github.com/ariel-frischer/calclog/internal/errors"
	"github.com/ariel-frischer/calclog/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "calclog",
	Short: "Calculator demo and changelog generator",
	Long: `calclog bundles two small tools used to demonstrate CI/CD pipelines:

  calc       Arithmetic operations with an operation history
  changelog  Generate CHANGELOG.md from conventional commit messages

Examples:
  calclog calc add 2 3
  calclog calc demo
  calclog changelog --stdout
  calclog changelog --watch`,
	Version:       version.Version,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"calclog {{.Version}} (commit %s, built %s)\n",
		version.Commit, version.BuildDate,
	))
}

// Execute runs the root command and formats structured errors.
// Returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if cliErr := errors.AsCLIError(err); cliErr != nil {
			errors.PrintError(cliErr)
			return exitCodeFor(cliErr.Category)
		}

		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		return ExitFailure
	}
	return ExitSuccess
}

// exitCodeFor maps an error category to a process exit code.
func exitCodeFor(category errors.Category) int {
	switch category {
	case errors.Argument:
		return ExitInvalidArguments
	case errors.Prerequisite, errors.Configuration:
		return ExitMissingPrerequisites
	default:
		return ExitFailure
	}
}

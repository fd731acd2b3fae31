package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ariel-frischer/calclog/internal/config"
	"github.com/ariel-frischer/calclog/internal/errors"
	"github.com/ariel-frischer/calclog/internal/output"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage calclog configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a project configuration file",
	Long: `Write a commented configuration template to .calclog/config.yml in the
current directory. An existing configuration file is left untouched.

Example:
  calclog config init`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.ProjectConfigPath()

	if _, err := os.Stat(path); err == nil {
		return errors.NewConfigError(
			fmt.Sprintf("%s already exists", path),
			"edit the existing file, or remove it and rerun 'calclog config init'",
		)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "creating config directory")
	}
	if err := os.WriteFile(path, []byte(config.DefaultConfigTemplate()), 0644); err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "writing config file")
	}

	output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Created %s", path))
	return nil
}

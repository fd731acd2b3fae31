package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ariel-frischer/calclog/internal/changelog"
	"github.com/ariel-frischer/calclog/internal/config"
	"github.com/ariel-frischer/calclog/internal/errors"
	"github.com/ariel-frischer/calclog/internal/git"
	"github.com/ariel-frischer/calclog/internal/output"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var (
	changelogOutputFlag string
	changelogRepoFlag   string
	changelogStdoutFlag bool
	changelogFormatFlag string
	changelogWatchFlag  bool
)

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Generate a changelog from git history",
	Long: `Generate a Keep a Changelog formatted CHANGELOG.md from git history.

Commits are categorized by their conventional commit prefix
(feat, fix, docs, ...). Each release tag becomes a section; commits after
the newest tag land in an Unreleased section at the top.

Examples:
  calclog changelog                    # Write CHANGELOG.md in the repo root
  calclog changelog --stdout           # Print to stdout instead
  calclog changelog --format yaml      # Machine-readable section list
  calclog changelog --repo ../other    # Generate for another repository
  calclog changelog --watch            # Regenerate on every commit or tag`,
	Args: cobra.NoArgs,
	RunE: runChangelog,
}

func init() {
	rootCmd.AddCommand(changelogCmd)

	changelogCmd.Flags().StringVarP(&changelogOutputFlag, "output", "o", "", "Changelog file path (default: CHANGELOG.md in the repo root)")
	changelogCmd.Flags().StringVar(&changelogRepoFlag, "repo", "", "Repository directory (default: current directory)")
	changelogCmd.Flags().BoolVar(&changelogStdoutFlag, "stdout", false, "Print to stdout instead of writing a file")
	changelogCmd.Flags().StringVar(&changelogFormatFlag, "format", "markdown", "Output format: markdown or yaml")
	changelogCmd.Flags().BoolVar(&changelogWatchFlag, "watch", false, "Keep running and regenerate when git refs change")
}

func runChangelog(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return errors.Wrap(err, errors.Configuration)
	}

	repo := cfg.Repo
	if cmd.Flags().Changed("repo") {
		repo = changelogRepoFlag
	}

	if changelogFormatFlag != "markdown" && changelogFormatFlag != "yaml" {
		return errors.NewArgumentError(
			fmt.Sprintf("unknown format %q", changelogFormatFlag),
			"use --format markdown or --format yaml",
		)
	}

	if !git.IsRepository(repo) {
		return errors.NewPrerequisiteError(
			fmt.Sprintf("%s is not a git repository", displayPath(repo)),
			"run calclog from inside a repository, or pass --repo <dir>",
			"initialize one with 'git init'",
		)
	}

	root, err := git.Root(repo)
	if err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "resolving repository root")
	}

	outPath := resolveOutputPath(cfg, root)
	gen := changelog.NewGenerator(&changelog.GitCLI{Dir: root})

	if changelogWatchFlag {
		return watchChangelog(cmd, cfg, gen, root, outPath)
	}

	if changelogStdoutFlag {
		return emitChangelog(cmd, gen)
	}

	stop := startSpinner("Generating changelog...")
	err = writeChangelog(gen, outPath)
	stop()
	if err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "generating changelog")
	}

	output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Changelog generated: %s", outPath))
	return nil
}

// emitChangelog renders to stdout in the selected format.
func emitChangelog(cmd *cobra.Command, gen *changelog.Generator) error {
	out := cmd.OutOrStdout()

	if changelogFormatFlag == "yaml" {
		data, err := changelog.MarshalYAML(gen.BuildSections())
		if err != nil {
			return errors.Wrap(err, errors.Runtime)
		}
		_, err = out.Write(data)
		return err
	}

	_, err := fmt.Fprint(out, gen.Generate())
	return err
}

// writeChangelog writes the changelog to path in the selected format.
func writeChangelog(gen *changelog.Generator, path string) error {
	if changelogFormatFlag != "yaml" {
		return gen.Write(path)
	}

	data, err := changelog.MarshalYAML(gen.BuildSections())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing changelog to %s: %w", path, err)
	}
	return nil
}

// watchChangelog regenerates the output file until interrupted.
func watchChangelog(cmd *cobra.Command, cfg *config.Configuration, gen *changelog.Generator, root, outPath string) error {
	if changelogStdoutFlag {
		return errors.NewArgumentError("--watch writes a file and cannot be combined with --stdout")
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	debounce := time.Duration(cfg.WatchDebounceMs) * time.Millisecond
	w, err := changelog.NewWatcher(root, debounce, func() error {
		if err := writeChangelog(gen, outPath); err != nil {
			return err
		}
		output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Changelog updated: %s", outPath))
		return nil
	})
	if err != nil {
		return errors.Wrap(err, errors.Runtime)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for ref changes (Ctrl+C to stop)\n", displayPath(root))
	if err := w.Watch(ctx); err != nil {
		return errors.Wrap(err, errors.Runtime)
	}
	return nil
}

// resolveOutputPath combines config, flag, and repo root into the final
// changelog path. Relative paths are anchored at the repo root.
func resolveOutputPath(cfg *config.Configuration, root string) string {
	path := cfg.Output
	if changelogOutputFlag != "" {
		path = changelogOutputFlag
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	return path
}

// startSpinner shows a spinner on interactive terminals.
// Returns a stop function; a no-op when not a TTY.
func startSpinner(message string) func() {
	if !output.IsInteractive() {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	s.Writer = os.Stderr
	s.Start()
	return s.Stop
}

// displayPath renders "." as "current directory" in messages.
func displayPath(path string) string {
	if path == "." || path == "" {
		return "current directory"
	}
	return path
}

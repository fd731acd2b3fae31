// Package changelog generates a Keep a Changelog formatted CHANGELOG.md
// from git history using conventional commit messages.
//
// This package implements:
//   - Commit categorization by the conventional commit prefix taxonomy
//   - Structural section building (one section per release tag plus Unreleased)
//   - Markdown and YAML rendering
//   - A narrow Source interface over the git CLI so categorization and
//     rendering are testable without a real repository
//   - A watch mode that regenerates the changelog when git refs change
//
// External tool failures are never fatal: a failing git query degrades to
// "no data" and the affected section is simply omitted.
package changelog

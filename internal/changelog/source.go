package changelog

import (
	"fmt"
	"os/exec"
	"strings"
)

// debugLogger logs debug messages when debug mode is enabled. No-op by
// default; set via SetDebugLogger.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git queries.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Source is the narrow seam between changelog generation and version
// control. Implementations query tags and commit ranges; the generator
// treats any error as "no data".
type Source interface {
	// Tags returns tag names sorted newest-first.
	Tags() ([]string, error)
	// Commits returns the commits reachable from to but not from.
	// An empty from means all history up to to.
	Commits(from, to string) ([]Commit, error)
	// TagDate returns the commit date (YYYY-MM-DD) of the given tag.
	TagDate(tag string) (string, error)
}

// GitCLI is a Source backed by the git command-line tool.
// Queries run synchronously in Dir and either complete or fail; there are
// no retries.
type GitCLI struct {
	// Dir is the repository directory queries run in.
	// Empty means the current working directory.
	Dir string
}

// shortHashLen is the display length of commit hashes.
const shortHashLen = 7

// Tags returns tag names sorted newest-first by creator date.
func (g *GitCLI) Tags() ([]string, error) {
	output, err := g.run("tag", "--sort=-creatordate")
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	var tags []string
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if line != "" {
			tags = append(tags, line)
		}
	}

	logDebug("[changelog] found %d tags", len(tags))
	return tags, nil
}

// Commits returns the commits in from..to, newest first.
// An empty from means all history reachable from to.
// Lines that don't parse as hash|subject|author|date are skipped.
func (g *GitCLI) Commits(from, to string) ([]Commit, error) {
	refRange := to
	if from != "" {
		refRange = from + ".." + to
	}

	output, err := g.run("log", refRange, "--pretty=format:%H|%s|%an|%ad", "--date=short")
	if err != nil {
		return nil, fmt.Errorf("listing commits for %s: %w", refRange, err)
	}

	return parseLog(output), nil
}

// TagDate returns the commit date of the given tag in YYYY-MM-DD form.
func (g *GitCLI) TagDate(tag string) (string, error) {
	output, err := g.run("log", "-1", "--format=%ad", "--date=short", tag)
	if err != nil {
		return "", fmt.Errorf("resolving date of tag %s: %w", tag, err)
	}
	return strings.TrimSpace(output), nil
}

// run executes a git subcommand in the source directory.
func (g *GitCLI) run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = g.Dir

	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(output), nil
}

// parseLog parses pipe-delimited git log output into commit records.
// Each line is hash|subject|author|date; lines with fewer than four
// fields are skipped.
func parseLog(output string) []Commit {
	var commits []Commit

	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if line == "" {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) < 4 {
			continue
		}

		hash := parts[0]
		if len(hash) > shortHashLen {
			hash = hash[:shortHashLen]
		}

		commits = append(commits, Commit{
			Hash:    hash,
			Subject: parts[1],
			Author:  parts[2],
			Date:    parts[3],
		})
	}

	return commits
}

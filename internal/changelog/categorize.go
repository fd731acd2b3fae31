package changelog

import (
	"fmt"
	"regexp"
	"strings"
)

// conventionalPattern matches "type(scope): description" with an optional
// scope. The type is a single word; the description must be non-empty.
var conventionalPattern = regexp.MustCompile(`^(\w+)(?:\(([^)]+)\))?: (.+)$`)

// Categorize classifies a commit message by its conventional commit prefix.
// It returns the category and a cleaned display message: "**scope**: rest"
// when a scope is present, otherwise just the description. Messages that
// don't match the pattern, or whose type is outside the taxonomy, fall back
// to ("other", message) with the message unmodified.
// Type matching is case-insensitive.
func Categorize(message string) (category, cleaned string) {
	m := conventionalPattern.FindStringSubmatch(message)
	if m == nil {
		return "other", message
	}

	typ := strings.ToLower(m[1])
	scope := m[2]
	description := m[3]

	if !isValidType(typ) {
		return "other", message
	}

	if scope != "" {
		return typ, fmt.Sprintf("**%s**: %s", scope, description)
	}
	return typ, description
}

// isValidType reports whether typ is one of the eleven taxonomy prefixes.
func isValidType(typ string) bool {
	for _, ct := range commitTypes {
		if ct.Key == typ {
			return true
		}
	}
	return false
}

// groupCommits buckets commits into taxonomy display order, categorizing
// each subject along the way. Empty categories are omitted; "other" is
// appended last when present.
func groupCommits(commits []Commit) []Group {
	buckets := make(map[string][]Commit)
	cleaned := make(map[string][]string)

	for _, c := range commits {
		category, msg := Categorize(c.Subject)
		buckets[category] = append(buckets[category], c)
		cleaned[category] = append(cleaned[category], msg)
	}

	var groups []Group
	for _, ct := range commitTypes {
		if len(buckets[ct.Key]) > 0 {
			groups = append(groups, Group{
				Type:     ct.Key,
				Title:    ct.Title,
				Messages: cleaned[ct.Key],
				Commits:  buckets[ct.Key],
			})
		}
	}

	if len(buckets["other"]) > 0 {
		groups = append(groups, Group{
			Type:     "other",
			Title:    otherTitle,
			Messages: cleaned["other"],
			Commits:  buckets["other"],
		})
	}

	return groups
}

package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := map[string]struct {
		message  string
		category string
		cleaned  string
	}{
		"feat with scope": {
			message:  "feat(api): add endpoint",
			category: "feat",
			cleaned:  "**api**: add endpoint",
		},
		"feat without scope": {
			message:  "feat: add endpoint",
			category: "feat",
			cleaned:  "add endpoint",
		},
		"fix": {
			message:  "fix(parser): handle empty lines",
			category: "fix",
			cleaned:  "**parser**: handle empty lines",
		},
		"uppercase type normalized": {
			message:  "Fix: typo in readme",
			category: "fix",
			cleaned:  "typo in readme",
		},
		"docs":     {message: "docs: update install guide", category: "docs", cleaned: "update install guide"},
		"style":    {message: "style: gofmt", category: "style", cleaned: "gofmt"},
		"refactor": {message: "refactor(core): split generator", category: "refactor", cleaned: "**core**: split generator"},
		"perf":     {message: "perf: cache tag dates", category: "perf", cleaned: "cache tag dates"},
		"test":     {message: "test: cover divide by zero", category: "test", cleaned: "cover divide by zero"},
		"build":    {message: "build: bump go version", category: "build", cleaned: "bump go version"},
		"ci":       {message: "ci: add release workflow", category: "ci", cleaned: "add release workflow"},
		"chore":    {message: "chore(deps): update cobra", category: "chore", cleaned: "**deps**: update cobra"},
		"revert":   {message: "revert: feat(api): add endpoint", category: "revert", cleaned: "feat(api): add endpoint"},
		"unknown type falls through": {
			message:  "wip: half done",
			category: "other",
			cleaned:  "wip: half done",
		},
		"plain message": {
			message:  "random text",
			category: "other",
			cleaned:  "random text",
		},
		"missing space after colon": {
			message:  "feat:no space",
			category: "other",
			cleaned:  "feat:no space",
		},
		"empty description": {
			message:  "feat: ",
			category: "other",
			cleaned:  "feat: ",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			category, cleaned := Categorize(tt.message)
			assert.Equal(t, tt.category, category)
			assert.Equal(t, tt.cleaned, cleaned)
		})
	}
}

func TestValidTypes(t *testing.T) {
	assert.Equal(t, []string{
		"feat", "fix", "docs", "style", "refactor", "perf",
		"test", "build", "ci", "chore", "revert",
	}, ValidTypes())
}

func TestGroupCommitsOrdering(t *testing.T) {
	commits := []Commit{
		{Hash: "aaaaaaa", Subject: "something unclassified"},
		{Hash: "bbbbbbb", Subject: "fix: second"},
		{Hash: "ccccccc", Subject: "feat: first"},
		{Hash: "ddddddd", Subject: "fix: third"},
	}

	groups := groupCommits(commits)

	// Taxonomy order regardless of commit order, "other" last.
	assert.Equal(t, []string{"feat", "fix", "other"}, groupTypes(groups))
	assert.Equal(t, []string{"second", "third"}, groups[1].Messages)
	assert.Equal(t, "Other Changes", groups[2].Title)
	assert.Equal(t, "something unclassified", groups[2].Messages[0])
}

func groupTypes(groups []Group) []string {
	types := make([]string, len(groups))
	for i, g := range groups {
		types[i] = g.Type
	}
	return types
}

package changelog

// Commit is a single commit record read from version control.
// All fields are strings sourced from the external tool; the hash is
// shortened to seven characters.
type Commit struct {
	Hash    string `yaml:"hash"`
	Subject string `yaml:"subject"`
	Author  string `yaml:"author"`
	Date    string `yaml:"date"`
}

// Group holds the commits of one category within a section, already
// categorized and with cleaned display messages parallel to Commits.
type Group struct {
	Type     string   `yaml:"type"`
	Title    string   `yaml:"title"`
	Messages []string `yaml:"messages"`
	Commits  []Commit `yaml:"commits"`
}

// Section is one version block of the changelog: a release tag (or
// "Unreleased"), its date, and the non-empty category groups in display
// order. Sections are transient; they are rebuilt on every run.
type Section struct {
	Version string  `yaml:"version"`
	Date    string  `yaml:"date"`
	Groups  []Group `yaml:"groups"`
}

// UnreleasedVersion is the section label for commits after the newest tag.
const UnreleasedVersion = "Unreleased"

// commitType pairs a conventional commit prefix with its section title.
type commitType struct {
	Key   string
	Title string
}

// commitTypes is the fixed taxonomy in display order. "other" is not
// listed; uncategorized commits always render last under "Other Changes".
var commitTypes = []commitType{
	{"feat", "Features"},
	{"fix", "Bug Fixes"},
	{"docs", "Documentation"},
	{"style", "Styles"},
	{"refactor", "Code Refactoring"},
	{"perf", "Performance"},
	{"test", "Tests"},
	{"build", "Build System"},
	{"ci", "CI/CD"},
	{"chore", "Chores"},
	{"revert", "Reverts"},
}

// otherTitle is the section title for commits outside the taxonomy.
const otherTitle = "Other Changes"

// ValidTypes returns the conventional commit prefixes in display order,
// excluding the implicit "other" fallback.
func ValidTypes() []string {
	keys := make([]string, len(commitTypes))
	for i, ct := range commitTypes {
		keys[i] = ct.Key
	}
	return keys
}

// IsEmpty returns true if the section has no commits in any group.
func (s Section) IsEmpty() bool {
	for _, g := range s.Groups {
		if len(g.Commits) > 0 {
			return false
		}
	}
	return true
}

// CommitCount returns the total number of commits across all groups.
func (s Section) CommitCount() int {
	count := 0
	for _, g := range s.Groups {
		count += len(g.Commits)
	}
	return count
}

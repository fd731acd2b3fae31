package changelog

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSource is a Source with canned data, keyed by commit range.
type mockSource struct {
	tags     []string
	commits  map[string][]Commit // key: "from..to"
	tagDates map[string]string
	tagsErr  error
	logErr   error
}

func (m *mockSource) Tags() ([]string, error) {
	if m.tagsErr != nil {
		return nil, m.tagsErr
	}
	return m.tags, nil
}

func (m *mockSource) Commits(from, to string) ([]Commit, error) {
	if m.logErr != nil {
		return nil, m.logErr
	}
	return m.commits[from+".."+to], nil
}

func (m *mockSource) TagDate(tag string) (string, error) {
	if date, ok := m.tagDates[tag]; ok {
		return date, nil
	}
	return "", errors.New("no such tag")
}

// fixedClock pins the generator's "today" for deterministic output.
func fixedClock() time.Time {
	return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
}

func TestSectionIsEmpty(t *testing.T) {
	assert.True(t, Section{Version: "v1.0.0"}.IsEmpty())
	assert.True(t, Section{Groups: []Group{{Type: "feat"}}}.IsEmpty())

	populated := Section{Groups: []Group{{
		Type:    "feat",
		Commits: []Commit{{Hash: "abc1234"}},
	}}}
	assert.False(t, populated.IsEmpty())
}

func TestBuildSectionsNoTags(t *testing.T) {
	src := &mockSource{
		commits: map[string][]Commit{
			"..HEAD": {
				{Hash: "abc1234", Subject: "feat: initial version", Author: "Dev", Date: "2026-08-01"},
				{Hash: "def5678", Subject: "fix: off by one", Author: "Dev", Date: "2026-08-02"},
			},
		},
	}

	sections := NewGenerator(src).WithClock(fixedClock).BuildSections()

	require.Len(t, sections, 1)
	assert.Equal(t, "Unreleased", sections[0].Version)
	assert.Equal(t, "2026-08-30", sections[0].Date)
	assert.Equal(t, 2, sections[0].CommitCount())
}

func TestBuildSectionsWithTags(t *testing.T) {
	src := &mockSource{
		tags: []string{"v1.1.0", "v1.0.0"},
		commits: map[string][]Commit{
			"v1.1.0..HEAD": {
				{Hash: "aaa1111", Subject: "feat: upcoming thing"},
			},
			"v1.0.0..v1.1.0": {
				{Hash: "bbb2222", Subject: "fix: crash on empty input"},
				{Hash: "ccc3333", Subject: "docs: clarify usage"},
			},
			"..v1.0.0": {
				{Hash: "ddd4444", Subject: "feat: initial release"},
			},
		},
		tagDates: map[string]string{
			"v1.1.0": "2026-07-15",
			"v1.0.0": "2026-06-01",
		},
	}

	sections := NewGenerator(src).WithClock(fixedClock).BuildSections()

	require.Len(t, sections, 3)

	// Unreleased is first, structurally, followed by tags newest-first.
	assert.Equal(t, "Unreleased", sections[0].Version)
	assert.Equal(t, "v1.1.0", sections[1].Version)
	assert.Equal(t, "2026-07-15", sections[1].Date)
	assert.Equal(t, "v1.0.0", sections[2].Version)
	assert.Equal(t, "2026-06-01", sections[2].Date)

	// Oldest tag's range covers all prior history.
	assert.Equal(t, 1, sections[2].CommitCount())
}

func TestBuildSectionsOmitsEmptyRanges(t *testing.T) {
	src := &mockSource{
		tags: []string{"v2.0.0", "v1.0.0"},
		commits: map[string][]Commit{
			// No commits after v2.0.0, none between the tags either.
			"..v1.0.0": {
				{Hash: "ddd4444", Subject: "feat: initial release"},
			},
		},
		tagDates: map[string]string{"v1.0.0": "2026-06-01"},
	}

	sections := NewGenerator(src).WithClock(fixedClock).BuildSections()

	require.Len(t, sections, 1)
	assert.Equal(t, "v1.0.0", sections[0].Version)
}

func TestBuildSectionsTagDateFallsBackToToday(t *testing.T) {
	src := &mockSource{
		tags: []string{"v1.0.0"},
		commits: map[string][]Commit{
			"..v1.0.0": {{Hash: "ddd4444", Subject: "feat: initial release"}},
		},
		// tagDates intentionally empty
	}

	sections := NewGenerator(src).WithClock(fixedClock).BuildSections()

	require.Len(t, sections, 1)
	assert.Equal(t, "2026-08-30", sections[0].Date)
}

func TestBuildSectionsToolFailureIsNotFatal(t *testing.T) {
	src := &mockSource{
		tagsErr: errors.New("git: command not found"),
		logErr:  errors.New("git: command not found"),
	}

	sections := NewGenerator(src).WithClock(fixedClock).BuildSections()
	assert.Empty(t, sections)

	// The rendered document degrades to just the header.
	out := NewGenerator(src).WithClock(fixedClock).Generate()
	assert.Contains(t, out, "# Changelog")
	assert.NotContains(t, out, "## [")
}

func TestGenerateEndToEnd(t *testing.T) {
	src := &mockSource{
		tags: []string{"v1.0.0"},
		commits: map[string][]Commit{
			"v1.0.0..HEAD": {
				{Hash: "aaa1111", Subject: "feat(api): add endpoint"},
			},
			"..v1.0.0": {
				{Hash: "bbb2222", Subject: "feat: initial release"},
				{Hash: "ccc3333", Subject: "random text"},
			},
		},
		tagDates: map[string]string{"v1.0.0": "2026-06-01"},
	}

	out := NewGenerator(src).WithClock(fixedClock).Generate()

	for _, want := range []string{
		"# Changelog",
		"[Keep a Changelog](https://keepachangelog.com/en/1.0.0/)",
		"[Semantic Versioning](https://semver.org/spec/v2.0.0.html)",
		"## [Unreleased] - 2026-08-30",
		"## [v1.0.0] - 2026-06-01",
		"### Features",
		"- **api**: add endpoint ([aaa1111])",
		"- initial release ([bbb2222])",
		"### Other Changes",
		"- random text ([ccc3333])",
	} {
		assert.Contains(t, out, want)
	}

	// Unreleased comes before the release section.
	assert.Less(t,
		strings.Index(out, "## [Unreleased]"),
		strings.Index(out, "## [v1.0.0]"))
}

func TestWriteProducesFile(t *testing.T) {
	src := &mockSource{
		commits: map[string][]Commit{
			"..HEAD": {{Hash: "abc1234", Subject: "feat: something"}},
		},
	}

	path := t.TempDir() + "/CHANGELOG.md"
	gen := NewGenerator(src).WithClock(fixedClock)

	require.NoError(t, gen.Write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, gen.Generate(), string(data))
}

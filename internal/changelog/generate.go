package changelog

import (
	"fmt"
	"os"
	"time"
)

// Generator builds changelog sections from a Source.
//
// Failure policy: every Source error is swallowed and treated as empty
// data, so a broken or absent git environment produces a changelog with
// only the fixed header, never a fatal error.
type Generator struct {
	src Source
	now func() time.Time
}

// NewGenerator creates a Generator over the given source.
func NewGenerator(src Source) *Generator {
	return &Generator{
		src: src,
		now: time.Now,
	}
}

// WithClock overrides the generator's clock. Used by tests and watch mode
// to produce deterministic "Unreleased" dates.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// BuildSections computes the changelog structurally: an Unreleased section
// first (commits after the newest tag), then one section per tag
// newest-to-oldest, each covering the range against its immediate
// predecessor. The oldest tag covers all history up to it. Sections with
// zero commits are omitted.
//
// With no tags at all, a single Unreleased section covers every commit.
func (g *Generator) BuildSections() []Section {
	tags, err := g.src.Tags()
	if err != nil {
		logDebug("[changelog] tag listing failed, degrading to no tags: %v", err)
		tags = nil
	}

	if len(tags) == 0 {
		return g.unreleasedOnly()
	}

	var sections []Section

	if s, ok := g.buildSection(UnreleasedVersion, tags[0], "HEAD"); ok {
		sections = append(sections, s)
	}

	for i, tag := range tags {
		from := ""
		if i+1 < len(tags) {
			from = tags[i+1]
		}
		if s, ok := g.buildSection(tag, from, tag); ok {
			sections = append(sections, s)
		}
	}

	return sections
}

// unreleasedOnly covers the no-tags path: all commits in one section.
func (g *Generator) unreleasedOnly() []Section {
	if s, ok := g.buildSection(UnreleasedVersion, "", "HEAD"); ok {
		return []Section{s}
	}
	return nil
}

// buildSection fetches and groups the commits in from..to.
// Returns ok=false when the range has no commits.
func (g *Generator) buildSection(version, from, to string) (Section, bool) {
	commits, err := g.src.Commits(from, to)
	if err != nil {
		logDebug("[changelog] commit query %s..%s failed, skipping: %v", from, to, err)
		return Section{}, false
	}

	s := Section{
		Version: version,
		Groups:  groupCommits(commits),
	}
	if s.IsEmpty() {
		return Section{}, false
	}

	s.Date = g.sectionDate(version)
	return s, true
}

// sectionDate resolves the date for a section: the tag's commit date for
// releases, today for Unreleased. A failing tag date query falls back to
// today as well.
func (g *Generator) sectionDate(version string) string {
	today := g.now().Format("2006-01-02")
	if version == UnreleasedVersion {
		return today
	}

	date, err := g.src.TagDate(version)
	if err != nil || date == "" {
		logDebug("[changelog] tag date for %s unavailable, using today: %v", version, err)
		return today
	}
	return date
}

// Generate renders the full changelog to a string.
func (g *Generator) Generate() string {
	return RenderString(g.BuildSections())
}

// Write renders the full changelog and writes it to path in a single
// full-file write.
func (g *Generator) Write(path string) error {
	if err := os.WriteFile(path, []byte(g.Generate()), 0644); err != nil {
		return fmt.Errorf("writing changelog to %s: %w", path, err)
	}
	return nil
}

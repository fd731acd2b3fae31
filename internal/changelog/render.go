package changelog

import (
	"fmt"
	"io"
	"strings"
)

// Render writes the changelog as Keep a Changelog formatted markdown.
// Given the same sections it produces identical output.
func Render(sections []Section, w io.Writer) error {
	if err := renderHeader(w); err != nil {
		return fmt.Errorf("rendering header: %w", err)
	}

	for _, s := range sections {
		if err := renderSection(&s, w); err != nil {
			return fmt.Errorf("rendering section %s: %w", s.Version, err)
		}
	}

	return nil
}

// RenderString is a convenience wrapper that renders to a string.
func RenderString(sections []Section) string {
	var b strings.Builder
	// strings.Builder writes never fail
	_ = Render(sections, &b)
	return b.String()
}

// renderHeader writes the fixed changelog preamble.
func renderHeader(w io.Writer) error {
	header := `# Changelog

All notable changes to this project will be documented in this file.

The format is based on [Keep a Changelog](https://keepachangelog.com/en/1.0.0/),
and this project adheres to [Semantic Versioning](https://semver.org/spec/v2.0.0.html).

`
	_, err := io.WriteString(w, header)
	return err
}

// renderSection writes one version heading and its category groups.
func renderSection(s *Section, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "## [%s] - %s\n\n", s.Version, s.Date); err != nil {
		return err
	}

	for _, g := range s.Groups {
		if err := renderGroup(&g, w); err != nil {
			return err
		}
	}

	return nil
}

// renderGroup writes one category heading and a bullet per commit.
func renderGroup(g *Group, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "### %s\n\n", g.Title); err != nil {
		return err
	}

	for i, c := range g.Commits {
		if _, err := fmt.Fprintf(w, "- %s ([%s])\n", g.Messages[i], c.Hash); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "\n")
	return err
}

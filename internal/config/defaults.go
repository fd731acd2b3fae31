package config

// Defaults returns the default configuration values.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"project": "",
		// repo: Directory the changelog is generated from.
		"repo": ".",
		// output: Written once, in full, at the end of a run.
		"output":    "CHANGELOG.md",
		"calc_name": "Calculator",
		// watch_debounce_ms: A single commit touches HEAD plus one or
		// more refs; the window collapses those into one regeneration.
		"watch_debounce_ms": 500,
	}
}

// DefaultConfigTemplate returns a commented config template for
// `calclog config init`.
func DefaultConfigTemplate() string {
	return `# Calclog Configuration
# Environment overrides use the CALCLOG_ prefix (e.g. CALCLOG_OUTPUT).

project: ""                 # Project display name
repo: .                     # Repository to generate the changelog from
output: CHANGELOG.md        # Changelog file path
calc_name: Calculator       # Name for calculator instances
watch_debounce_ms: 500      # Debounce window for changelog --watch
`
}

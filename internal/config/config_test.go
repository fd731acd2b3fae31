package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Repo)
	assert.Equal(t, "CHANGELOG.md", cfg.Output)
	assert.Equal(t, "Calculator", cfg.CalcName)
	assert.Equal(t, 500, cfg.WatchDebounceMs)
}

func TestLoadProjectConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "output: docs/CHANGES.md\ncalc_name: DemoCalc\nwatch_debounce_ms: 250\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "docs/CHANGES.md", cfg.Output)
	assert.Equal(t, "DemoCalc", cfg.CalcName)
	assert.Equal(t, 250, cfg.WatchDebounceMs)
	// Untouched keys keep their defaults.
	assert.Equal(t, ".", cfg.Repo)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("output: from-file.md\n"), 0644))

	t.Setenv("CALCLOG_OUTPUT", "from-env.md")
	t.Setenv("CALCLOG_WATCH_DEBOUNCE_MS", "100")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env.md", cfg.Output)
	assert.Equal(t, 100, cfg.WatchDebounceMs)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"empty output":      "output: \"\"\n",
		"negative debounce": "watch_debounce_ms: -1\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("output: [unclosed\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

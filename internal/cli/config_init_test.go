package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ariel-frischer/calclog/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestConfigInit(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, ".calclog/config.yml")

	data, err := os.ReadFile(filepath.Join(".calclog", "config.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "calc_name: Calculator")
	assert.Contains(t, string(data), "output: CHANGELOG.md")
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "config", "init")
	require.NoError(t, err)

	_, err = execute(t, "config", "init")
	require.Error(t, err)

	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Configuration, cliErr.Category)
	assert.Contains(t, cliErr.Message, "already exists")
}

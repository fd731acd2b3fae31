package cli

import (
	"testing"

	"github.com/ariel-frischer/calclog/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCodeForCategory(t *testing.T) {
	assert.Equal(t, ExitInvalidArguments, exitCodeFor(errors.Argument))
	assert.Equal(t, ExitMissingPrerequisites, exitCodeFor(errors.Prerequisite))
	assert.Equal(t, ExitMissingPrerequisites, exitCodeFor(errors.Configuration))
	assert.Equal(t, ExitFailure, exitCodeFor(errors.Runtime))
}

func TestRootRegistersCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	require.True(t, names["calc"])
	require.True(t, names["changelog"])
	require.True(t, names["config"])
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "calclog")
}

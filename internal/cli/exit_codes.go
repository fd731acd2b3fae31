package cli

// Exit codes for the calclog CLI.
// These codes support programmatic composition and CI/CD integration.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3

	// ExitMissingPrerequisites indicates a missing prerequisite,
	// such as running changelog outside a git repository
	ExitMissingPrerequisites = 4
)

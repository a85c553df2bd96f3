// Package casegen exposes constants for tools that drive the casegen CLI.
package casegen

// Exit codes returned by the casegen CLI.
const (
	// ExitSuccess indicates every requested suite was generated or validated.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure, such as an unwritable output file.
	ExitFailure = 1

	// ExitConfigError indicates an invalid configuration or malformed canonical data.
	ExitConfigError = 2

	// ExitEnvError indicates an environment error, such as a missing
	// problem-specifications checkout.
	ExitEnvError = 3
)

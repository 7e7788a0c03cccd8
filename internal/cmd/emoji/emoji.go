// Package emoji provides symbol constants for CLI output.
package emoji

// Status symbols shared by tables and command messages.
const (
	// Success marks a valid IBAN or a completed operation.
	Success = "✓"

	// Error marks a rejected IBAN or a failed operation.
	Error = "✗"

	// Stop marks a shutdown.
	Stop = "■"

	// Optional marks an absent value, such as a country without a branch
	// identifier.
	Optional = "-"
)

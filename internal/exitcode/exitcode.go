// Package exitcode defines the process exit codes.
package exitcode

const (
	// Success is returned when the command completed.
	Success = 0

	// UserError covers bad arguments, unknown commands and lists that don't resolve.
	UserError = 1

	// AuthError covers missing credentials and failed logins.
	AuthError = 2

	// BackendError covers Google Tasks API and network failures.
	BackendError = 3
)

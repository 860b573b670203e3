// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion, including exit and EOF in the REPL.
	Success = 0

	// UserError indicates a user error (undefined command, list exists, list not found).
	UserError = 1

	// ConfigError indicates a bad flag, config file, or lists directory.
	ConfigError = 2

	// IOError indicates a filesystem error or an unrecoverable stdin read failure.
	IOError = 3
)

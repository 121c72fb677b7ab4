// Package commands holds the argument handling of the cmd binaries, so exit codes and output are testable.
package commands

const (
	ExitOK      = 0
	ExitFailure = 1
)

// Package exitcode maps the error taxonomy returned by dock's core
// components onto the process exit codes documented in the CLI's
// external interface: 0 on success, 1 for configuration/validation
// errors, 2 for host-probe or host-path errors, and the dispatched
// command's own exit code (or 128+signum) otherwise.
package exitcode

import "errors"

// Coder is implemented by every error kind in the taxonomy that carries
// its own exit code.
type Coder interface {
	ExitCode() int
}

// Of resolves err to the process exit code dock should terminate with.
// An error with no Coder in its chain is treated as a generic failure
// and mapped to 1.
func Of(err error) int {
	if err == nil {
		return 0
	}
	var coder Coder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

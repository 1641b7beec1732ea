package config

import "fmt"

// ConfigNotFound is returned when no dock.yaml is found walking upward
// from the current directory to the filesystem root.
type ConfigNotFound struct {
	FileName string
	StartDir string
}

func (e *ConfigNotFound) Error() string {
	return fmt.Sprintf("no %s found above %s", e.FileName, e.StartDir)
}

// ExitCode implements the dispatcher's exit-code mapping: config and
// validation errors exit 1.
func (e *ConfigNotFound) ExitCode() int { return 1 }

// ConfigParseFailed wraps a YAML decoding error.
type ConfigParseFailed struct {
	Path  string
	Cause error
}

func (e *ConfigParseFailed) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Cause)
}

func (e *ConfigParseFailed) Unwrap() error { return e.Cause }
func (e *ConfigParseFailed) ExitCode() int { return 1 }

// UnsupportedSchemaVersion is returned when schema_version isn't the one
// literal this build supports.
type UnsupportedSchemaVersion struct {
	Found string
}

func (e *UnsupportedSchemaVersion) Error() string {
	return fmt.Sprintf("unsupported schema_version %q (expected %q)", e.Found, SupportedSchemaVersion)
}

func (e *UnsupportedSchemaVersion) ExitCode() int { return 1 }

// InvalidIdentifier is returned when organisation or project don't match
// the identifier pattern [A-Za-z0-9_.-]+.
type InvalidIdentifier struct {
	Field string
	Value string
}

func (e *InvalidIdentifier) Error() string {
	return fmt.Sprintf("%s: %q is not a valid identifier", e.Field, e.Value)
}

func (e *InvalidIdentifier) ExitCode() int { return 1 }

// NoEnvironments is returned when environments is empty.
type NoEnvironments struct{}

func (e *NoEnvironments) Error() string { return "environments must declare at least one entry" }
func (e *NoEnvironments) ExitCode() int { return 1 }

// UnknownDefaultShellEnv is returned when default_shell_env names an
// environment that doesn't exist.
type UnknownDefaultShellEnv struct {
	Name string
}

func (e *UnknownDefaultShellEnv) Error() string {
	return fmt.Sprintf("default_shell_env %q does not name a declared environment", e.Name)
}

func (e *UnknownDefaultShellEnv) ExitCode() int { return 1 }

// GroupWithoutUser is returned when an environment's mount_local includes
// group without user.
type GroupWithoutUser struct {
	Environment string
}

func (e *GroupWithoutUser) Error() string {
	return fmt.Sprintf("environments.%s.mount_local: group requires user", e.Environment)
}

func (e *GroupWithoutUser) ExitCode() int { return 1 }

// InvalidVolumeName is returned when a cache_volumes short-name doesn't
// match [A-Za-z0-9_.-]+.
type InvalidVolumeName struct {
	Environment string
	Name        string
}

func (e *InvalidVolumeName) Error() string {
	return fmt.Sprintf("environments.%s.cache_volumes: %q is not a valid volume name", e.Environment, e.Name)
}

func (e *InvalidVolumeName) ExitCode() int { return 1 }

// DuplicateVolumeName is returned when a cache_volumes short-name repeats
// within one environment.
type DuplicateVolumeName struct {
	Environment string
	Name        string
}

func (e *DuplicateVolumeName) Error() string {
	return fmt.Sprintf("environments.%s.cache_volumes: duplicate volume name %q", e.Environment, e.Name)
}

func (e *DuplicateVolumeName) ExitCode() int { return 1 }

// NoShellConfigured is returned when dock shell targets an environment
// with no shell set.
type NoShellConfigured struct {
	Environment string
}

func (e *NoShellConfigured) Error() string {
	return fmt.Sprintf("environment %q has no shell configured", e.Environment)
}

func (e *NoShellConfigured) ExitCode() int { return 1 }

// UnknownEnvironment is returned when a named environment isn't declared
// in dock.yaml.
type UnknownEnvironment struct {
	Name string
}

func (e *UnknownEnvironment) Error() string {
	return fmt.Sprintf("unknown environment %q", e.Name)
}

func (e *UnknownEnvironment) ExitCode() int { return 1 }

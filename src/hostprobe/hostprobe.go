// Package hostprobe resolves the facts about the calling host that the
// runtime argument assembler needs: identity, the Docker socket's owning
// group, and any inherited nested-Docker host-path map.
package hostprobe

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"

	"github.com/dock-cli/dock/src/hostpath"
)

// DefaultDockerSocketPath is used when the caller doesn't override it.
const DefaultDockerSocketPath = "/var/run/docker.sock"

// HostContext is captured once per dock invocation and threaded
// read-only through the rest of the pipeline.
type HostContext struct {
	UID              int
	GID              int
	DockerSocketPath string
	DockerSocketGID  int
	ProjectDir       string
	HostPaths        hostpath.Map
}

// Probe resolves a HostContext for the given project directory and
// docker socket path (DefaultDockerSocketPath if empty).
func Probe(projectDir, dockerSocketPath string) (*HostContext, error) {
	if dockerSocketPath == "" {
		dockerSocketPath = DefaultDockerSocketPath
	}

	uid, err := idCmd("-u")
	if err != nil {
		return nil, &Failed{Which: "uid", Cause: err}
	}
	gid, err := idCmd("-g")
	if err != nil {
		return nil, &Failed{Which: "gid", Cause: err}
	}

	sockGID, err := socketGID(dockerSocketPath)
	if err != nil {
		return nil, &Failed{Which: "docker-socket-gid", Cause: err}
	}

	hp, err := hostpath.Parse(os.Getenv(hostpath.EnvVar))
	if err != nil {
		return nil, &Failed{Which: "host-paths", Cause: err}
	}

	return &HostContext{
		UID:              uid,
		GID:              gid,
		DockerSocketPath: dockerSocketPath,
		DockerSocketGID:  sockGID,
		ProjectDir:       projectDir,
		HostPaths:        hp,
	}, nil
}

// idCmd runs the external `id` utility with a single flag (-u or -g) and
// parses its stdout as a decimal integer.
func idCmd(flag string) (int, error) {
	out, err := exec.Command("id", flag).Output()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		return 0, fmt.Errorf("parsing id %s output %q: %w", flag, out, err)
	}
	return n, nil
}

// socketGID stats the Docker socket to find its owning group id.
func socketGID(path string) (int, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, fmt.Errorf("cannot read group id of %s on this platform", path)
	}
	return int(st.Gid), nil
}

// Failed is returned when any part of the host probe cannot complete:
// the id child couldn't be started or exited non-zero, the docker
// socket couldn't be stat'd, or DOCK_HOSTPATHS is malformed.
type Failed struct {
	Which string
	Cause error
}

func (e *Failed) Error() string {
	return fmt.Sprintf("host probe (%s) failed: %v", e.Which, e.Cause)
}

func (e *Failed) Unwrap() error { return e.Cause }
func (e *Failed) ExitCode() int { return 2 }

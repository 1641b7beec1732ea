// Package assemble builds the fully-ordered argument vector passed to the
// container runtime, for both `build` and `run` invocations. The
// ordering here is a contract: callers (and tests) rely on byte-identical
// argv for identical inputs.
package assemble

import (
	"fmt"
	"path/filepath"

	"github.com/dock-cli/dock/src/config"
	"github.com/dock-cli/dock/src/hostpath"
	"github.com/dock-cli/dock/src/hostprobe"
	"github.com/dock-cli/dock/src/imageref"
)

// BuildOptions controls a `build` invocation.
type BuildOptions struct {
	Tag     string // "" defaults to imageref.DefaultTag
	Context string // build context (directory, URL, or "-" for stdin)
}

// BuildArgs assembles the argv for `docker build` (or equivalent) that
// rebuilds envName's image.
//
//	["build", "--force-rm", <env.build_args...>, "-t", "<ref>", <context>]
func BuildArgs(proj *config.Project, envName string, opts BuildOptions) ([]string, error) {
	env, err := proj.Env(envName)
	if err != nil {
		return nil, err
	}

	ref := imageref.ForEnvironment(proj.Organisation, proj.Project, envName, opts.Tag)

	args := make([]string, 0, len(env.BuildArgs)+5)
	args = append(args, "build", "--force-rm")
	args = append(args, env.BuildArgs...)
	args = append(args, "-t", ref.String(), opts.Context)
	return args, nil
}

// StandaloneBuildArgs assembles the argv for `dock rebuild <ref>
// [ARGS...]`, where ARGS are forwarded to the runtime verbatim and may
// already include a trailing build context. --force-rm is still
// prepended for consistency with the environment-driven build path, and
// -t is appended after the forwarded args rather than before them,
// since a context positional argument inside ARGS must stay adjacent to
// the flags that precede it.
//
//	["build", "--force-rm", <forwarded...>, "-t", "<ref>"]
func StandaloneBuildArgs(ref string, forwarded []string) []string {
	args := make([]string, 0, len(forwarded)+4)
	args = append(args, "build", "--force-rm")
	args = append(args, forwarded...)
	args = append(args, "-t", ref)
	return args
}

// RunOptions controls a `run` invocation.
type RunOptions struct {
	Shell   bool     // dispatching `shell`: adds --network=host
	TTY     bool     // PTY requested: adds --interactive --tty
	Tag     string   // "" defaults to imageref.DefaultTag
	Command []string // the CMD vector, or [shell] for `shell`
}

// RunArgs assembles the argv for `docker run` that executes Command
// inside envName's image, and returns the (possibly extended)
// DOCK_HOSTPATHS map that must be exported to the child process's
// environment alongside the argv.
func RunArgs(proj *config.Project, envName string, host *hostprobe.HostContext, opts RunOptions) ([]string, hostpath.Map, error) {
	env, err := proj.Env(envName)
	if err != nil {
		return nil, nil, err
	}

	args := []string{"run", "--rm", "--init"}

	if opts.Shell {
		args = append(args, "--network=host")
	}
	if opts.TTY {
		args = append(args, "--interactive", "--tty")
	}
	if env.Workdir != "" {
		args = append(args, "--workdir="+env.Workdir)
	}

	hostPaths := host.HostPaths

	if env.HasMountLocal(config.MountLocalUser) {
		if env.HasMountLocal(config.MountLocalGroup) {
			args = append(args, fmt.Sprintf("--user=%d:%d", host.UID, host.GID))
		} else {
			args = append(args, fmt.Sprintf("--user=%d", host.UID))
		}
	}

	if env.HasMountLocal(config.MountLocalProjectDir) {
		rebasedProjectDir := host.HostPaths.Rebase(host.ProjectDir)
		args = append(args, fmt.Sprintf("--mount=type=bind,src=%s,dst=%s", rebasedProjectDir, env.Workdir))
		hostPaths = hostPaths.Extend(rebasedProjectDir, env.Workdir)
	}

	if env.HasMountLocal(config.MountLocalDocker) {
		args = append(args, fmt.Sprintf("--mount=type=bind,src=%s,dst=%s", host.DockerSocketPath, host.DockerSocketPath))
		args = append(args, fmt.Sprintf("--group-add=%d", host.DockerSocketGID))
	}

	for _, vol := range env.CacheVolumes {
		name := imageref.CacheVolumeName(proj.Organisation, proj.Project, vol.Key)
		args = append(args, fmt.Sprintf("--mount=type=volume,src=%s,dst=%s", name, vol.Value))
	}

	for _, mnt := range env.Mounts {
		absSrc := filepath.Join(host.ProjectDir, mnt.Key)
		rebasedSrc := host.HostPaths.Rebase(absSrc)
		args = append(args, fmt.Sprintf("--mount=type=bind,src=%s,dst=%s", rebasedSrc, mnt.Value))
	}

	for _, e := range env.Env {
		args = append(args, fmt.Sprintf("--env=%s=%s", e.Key, e.Value))
	}

	if len(hostPaths) > 0 {
		args = append(args, "--env="+hostpath.EnvVar+"="+hostPaths.Serialize())
	}

	args = append(args, env.RunArgs...)

	ref := imageref.ForEnvironment(proj.Organisation, proj.Project, envName, opts.Tag)
	args = append(args, ref.String())

	args = append(args, opts.Command...)

	return args, hostPaths, nil
}

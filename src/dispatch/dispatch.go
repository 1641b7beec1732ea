// Package dispatch implements the three user-facing actions (run-in,
// shell, rebuild) by composing the configuration loader, host probe,
// rebuild engine, cache primer, argument assembler and process
// orchestrator in the order the core's data flow requires.
package dispatch

import (
	"context"
	"strings"

	"github.com/dock-cli/dock/src/assemble"
	"github.com/dock-cli/dock/src/cacheprime"
	"github.com/dock-cli/dock/src/config"
	"github.com/dock-cli/dock/src/hostprobe"
	"github.com/dock-cli/dock/src/imageref"
	"github.com/dock-cli/dock/src/output"
	"github.com/dock-cli/dock/src/rebuild"
	"github.com/dock-cli/dock/src/spawn"
)

// Options controls a run-in or shell dispatch.
type Options struct {
	Debug       bool // --debug/-D: stream build output, echo commands
	SkipRebuild bool // --skip-rebuild/-R: omit rebuild and cache priming
	TTY         bool // --tty/-T: request a PTY
	Tag         string
	Runtime     string // container runtime binary; "docker" if empty
}

func (o Options) runtime() string {
	if o.Runtime == "" {
		return "docker"
	}
	return o.Runtime
}

// ResolveEnvName strips the trailing "-env:" scripting suffix a run-in
// invocation may use, so "build-env:" and "build" resolve identically.
func ResolveEnvName(raw string) string {
	return strings.TrimSuffix(raw, "-env:")
}

// RunIn dispatches `dock run-in <env> CMD…`: rebuild (unless skipped),
// prime cache volumes (unless skipped), assemble run args, execute.
func RunIn(ctx context.Context, proj *config.Project, envName string, cmd []string, opts Options) (int, error) {
	return run(ctx, proj, envName, assemble.RunOptions{
		TTY:     opts.TTY,
		Tag:     opts.Tag,
		Command: cmd,
	}, opts)
}

// Shell dispatches `dock shell [env]`: same pipeline as RunIn, but the
// command is the environment's configured shell, TTY is always
// requested, and --network=host is implied.
func Shell(ctx context.Context, proj *config.Project, envName string, opts Options) (int, error) {
	env, err := proj.Env(envName)
	if err != nil {
		return 0, err
	}
	if env.Shell == "" {
		return 0, &config.NoShellConfigured{Environment: envName}
	}

	opts.TTY = true
	return run(ctx, proj, envName, assemble.RunOptions{
		Shell:   true,
		TTY:     true,
		Tag:     opts.Tag,
		Command: []string{env.Shell},
	}, opts)
}

func run(ctx context.Context, proj *config.Project, envName string, runOpts assemble.RunOptions, opts Options) (int, error) {
	env, err := proj.Env(envName)
	if err != nil {
		return 0, err
	}

	host, err := hostprobe.Probe(proj.ProjectDir, "")
	if err != nil {
		return 0, err
	}

	ref := imageref.ForEnvironment(proj.Organisation, proj.Project, envName, opts.Tag)
	printer := output.NewPrinter()

	if !opts.SkipRebuild {
		engine := &rebuild.Engine{Runtime: opts.runtime(), Debug: opts.Debug}
		buildArgs, err := assemble.BuildArgs(proj, envName, assemble.BuildOptions{Tag: opts.Tag, Context: proj.ProjectDir})
		if err != nil {
			return 0, err
		}
		if opts.Debug {
			printer.Command(opts.runtime(), append([]string{"build"}, buildArgs[1:]...))
		}
		if err := engine.Rebuild(ctx, ref, buildArgs[1:]); err != nil {
			return 0, err
		}

		if len(env.CacheVolumes) > 0 {
			primer := cacheprime.New()
			primer.Runtime = opts.runtime()
			if err := primer.Prime(ctx, proj, envName, env, ref); err != nil {
				return 0, err
			}
		}
	}

	args, _, err := assemble.RunArgs(proj, envName, host, runOpts)
	if err != nil {
		return 0, err
	}

	if opts.Debug {
		printer.Command(opts.runtime(), args)
	}

	code, err := spawn.RunInteractive(ctx, opts.runtime(), args, runOpts.TTY)
	if err != nil {
		return 0, err
	}
	return code, nil
}

// Rebuild dispatches the standalone `dock rebuild <image>[:<tag>]
// [ARGS…]`: no configuration file is needed, arguments are forwarded to
// the runtime build verbatim.
func Rebuild(ctx context.Context, image string, forwarded []string, debug bool, runtime string) error {
	if runtime == "" {
		runtime = "docker"
	}
	ref := imageref.Parse(image)
	buildArgs := assemble.StandaloneBuildArgs(ref.String(), forwarded)

	if debug {
		output.NewPrinter().Command(runtime, append([]string{"build"}, buildArgs[1:]...))
	}

	engine := &rebuild.Engine{Runtime: runtime, Debug: debug}
	return engine.Rebuild(ctx, ref, buildArgs[1:])
}

// Package clean implements `dock clean`: best-effort removal of every
// image and cache volume a project's environments would produce.
// Unlike most of the core, a single removal failure does not abort the
// pass — every environment is visited and failures are collected.
package clean

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/dock-cli/dock/src/config"
	"github.com/dock-cli/dock/src/imageref"
	"github.com/dock-cli/dock/src/spawn"
)

// Options selects which resource kinds to remove. At least one must be
// set.
type Options struct {
	Images  bool
	Volumes bool
	Runtime string
}

func (o Options) runtime() string {
	if o.Runtime == "" {
		return "docker"
	}
	return o.Runtime
}

// Run removes every environment's cache volumes and/or latest-tagged
// image, per opts. Environments are visited in a stable order; failures
// from individual removals are joined into a single CleanFailed rather
// than aborting the pass.
func Run(ctx context.Context, proj *config.Project, opts Options) error {
	if !opts.Images && !opts.Volumes {
		return &NoCleanTargetSelected{}
	}

	var errs []error

	for _, name := range proj.EnvironmentNames() {
		env := proj.Environments[name]

		if opts.Volumes {
			for _, vol := range env.CacheVolumes {
				volName := imageref.CacheVolumeName(proj.Organisation, proj.Project, vol.Key)
				if code, out, err := spawn.RunCaptured(ctx, opts.runtime(), []string{"volume", "rm", volName}); err != nil {
					errs = append(errs, fmt.Errorf("removing volume %s: %w", volName, err))
				} else if code != 0 {
					errs = append(errs, fmt.Errorf("removing volume %s: exit code %d: %s", volName, code, bytes.TrimSpace(out)))
				}
			}
		}

		if opts.Images {
			ref := imageref.ForEnvironment(proj.Organisation, proj.Project, name, "")
			if code, out, err := spawn.RunCaptured(ctx, opts.runtime(), []string{"rmi", ref.String()}); err != nil {
				errs = append(errs, fmt.Errorf("removing image %s: %w", ref.String(), err))
			} else if code != 0 {
				errs = append(errs, fmt.Errorf("removing image %s: exit code %d: %s", ref.String(), code, bytes.TrimSpace(out)))
			}
		}
	}

	if len(errs) > 0 {
		return &CleanFailed{Errs: errs}
	}
	return nil
}

// CleanFailed reports every removal failure encountered across a clean
// pass, joined via errors.Join so each is still individually inspectable.
type CleanFailed struct {
	Errs []error
}

func (e *CleanFailed) Error() string {
	return errors.Join(e.Errs...).Error()
}

func (e *CleanFailed) Unwrap() []error { return e.Errs }
func (e *CleanFailed) ExitCode() int   { return 1 }

// NoCleanTargetSelected is returned when neither --images nor --volumes
// was passed.
type NoCleanTargetSelected struct{}

func (e *NoCleanTargetSelected) Error() string {
	return "clean requires at least one of --images or --volumes"
}

func (e *NoCleanTargetSelected) ExitCode() int { return 1 }

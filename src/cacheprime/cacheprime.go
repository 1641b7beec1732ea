// Package cacheprime ensures a freshly built image's declared cache
// volumes are world-writable before the main container mounts them,
// so a container running as an unprivileged --user can still write
// into them on first use.
package cacheprime

import (
	"context"
	"fmt"

	"github.com/dock-cli/dock/src/config"
	"github.com/dock-cli/dock/src/imageref"
	"github.com/dock-cli/dock/src/spawn"
)

const defaultRuntime = "docker"

// Primer runs one short-lived container per cache volume.
type Primer struct {
	Runtime string
}

// New returns a Primer bound to the default runtime.
func New() *Primer {
	return &Primer{Runtime: defaultRuntime}
}

func (p *Primer) runtime() string {
	if p.Runtime == "" {
		return defaultRuntime
	}
	return p.Runtime
}

// Prime runs `chmod 0777 <path>` inside a throwaway container for every
// cache volume env declares, each mounted alone with no user override.
// It is a no-op when the environment declares no cache volumes.
func (p *Primer) Prime(ctx context.Context, proj *config.Project, envName string, env config.Environment, ref imageref.Ref) error {
	for _, vol := range env.CacheVolumes {
		volName := imageref.CacheVolumeName(proj.Organisation, proj.Project, vol.Key)
		args := []string{
			"run", "--rm",
			fmt.Sprintf("--mount=type=volume,src=%s,dst=%s", volName, vol.Value),
			ref.String(),
			"chmod", "0777", vol.Value,
		}

		code, output, err := spawn.RunCaptured(ctx, p.runtime(), args)
		if err != nil {
			return &CacheVolumePrimingFailed{Environment: envName, Volume: vol.Key, Cause: err}
		}
		if code != 0 {
			return &CacheVolumePrimingFailed{Environment: envName, Volume: vol.Key, Cause: fmt.Errorf("chmod exited %d: %s", code, output)}
		}
	}
	return nil
}

// CacheVolumePrimingFailed reports that a cache volume could not be primed.
type CacheVolumePrimingFailed struct {
	Environment string
	Volume      string
	Cause       error
}

func (e *CacheVolumePrimingFailed) Error() string {
	return fmt.Sprintf("priming cache volume %q for environment %q: %v", e.Volume, e.Environment, e.Cause)
}

func (e *CacheVolumePrimingFailed) Unwrap() error { return e.Cause }
func (e *CacheVolumePrimingFailed) ExitCode() int { return 1 }

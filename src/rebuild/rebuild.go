// Package rebuild implements the build-then-reclaim lifecycle that keeps
// an image tag pointing at freshly built content while cleaning up the
// image it displaced.
package rebuild

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dock-cli/dock/src/imageref"
	"github.com/dock-cli/dock/src/spawn"
)

// defaultRuntime is the container CLI invoked as a subprocess when
// Engine.Runtime is empty.
const defaultRuntime = "docker"

// Engine runs the rebuild algorithm against a container runtime.
type Engine struct {
	Runtime string
	Debug   bool
}

// New returns an Engine bound to the default runtime.
func New(debug bool) *Engine {
	return &Engine{Runtime: defaultRuntime, Debug: debug}
}

func (e *Engine) runtime() string {
	if e.Runtime == "" {
		return defaultRuntime
	}
	return e.Runtime
}

// Rebuild builds ref's tag from buildArgs (the `docker build` arguments
// that follow the `build` subcommand, which Rebuild prepends itself),
// then removes whatever image previously held that tag if the build
// produced a different one.
//
// The four steps are: record the tag's current image id (or its
// absence), run the build, record the new image id, and — only once
// the build has succeeded — reclaim the prior id.
func (e *Engine) Rebuild(ctx context.Context, ref imageref.Ref, buildArgs []string) error {
	prior := e.imageID(ctx, ref.String())

	if err := e.build(ctx, buildArgs); err != nil {
		return err
	}

	newID := e.imageID(ctx, ref.String())

	if prior == "" || prior == newID {
		return nil
	}

	if err := e.removeImage(ctx, prior); err != nil {
		if isStillInUse(err) {
			return nil
		}
		return &PriorImageRemovalFailed{ImageID: prior, Cause: err}
	}
	return nil
}

// imageID returns the image id a reference currently resolves to, or ""
// if the runtime reports no such image. Any other inspect failure is
// also treated as absence: the rebuild can still proceed, it simply has
// nothing to reclaim afterwards.
func (e *Engine) imageID(ctx context.Context, ref string) string {
	code, out, err := spawn.RunCaptured(ctx, e.runtime(), []string{"inspect", "--format={{.Id}}", ref})
	if err != nil || code != 0 {
		return ""
	}
	return strings.TrimSpace(string(out))
}

func (e *Engine) build(ctx context.Context, buildArgs []string) error {
	args := append([]string{"build"}, buildArgs...)

	if e.Debug {
		code, err := spawn.RunStreamed(ctx, e.runtime(), args, nil, os.Stdout, os.Stderr)
		if err != nil {
			return err
		}
		if code != 0 {
			return &BuildFailed{Code: code}
		}
		return nil
	}

	code, output, err := spawn.RunCaptured(ctx, e.runtime(), args)
	if err != nil {
		return err
	}
	if code != 0 {
		return &BuildFailed{Code: code, Output: output}
	}
	return nil
}

func (e *Engine) removeImage(ctx context.Context, id string) error {
	code, output, err := spawn.RunCaptured(ctx, e.runtime(), []string{"rmi", id})
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("docker rmi %s: %s", id, bytes.TrimSpace(output))
	}
	return nil
}

// isStillInUse recognises the runtime's "is being used by" / "has
// dependent child images" family of rmi failures,
// which the rebuild treats as best-effort rather than fatal: a
// container still holding the prior image open is not this rebuild's
// problem to solve.
func isStillInUse(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "being used by") || strings.Contains(msg, "has dependent child")
}

// BuildFailed reports a non-zero exit from the build subprocess. Output
// is populated only when the build ran without --debug, since debug
// mode already streamed it live.
type BuildFailed struct {
	Code   int
	Output []byte
}

func (e *BuildFailed) Error() string {
	if len(e.Output) == 0 {
		return fmt.Sprintf("build failed with exit code %d", e.Code)
	}
	return fmt.Sprintf("build failed with exit code %d:\n%s", e.Code, bytes.TrimSpace(e.Output))
}

func (e *BuildFailed) ExitCode() int { return e.Code }

// PriorImageRemovalFailed reports that the image a tag previously
// pointed at could not be reclaimed after a successful rebuild.
type PriorImageRemovalFailed struct {
	ImageID string
	Cause   error
}

func (e *PriorImageRemovalFailed) Error() string {
	return fmt.Sprintf("removing prior image %s: %v", e.ImageID, e.Cause)
}

func (e *PriorImageRemovalFailed) Unwrap() error { return e.Cause }
func (e *PriorImageRemovalFailed) ExitCode() int  { return 1 }

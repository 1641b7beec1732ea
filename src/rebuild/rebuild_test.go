package rebuild

import (
	"errors"
	"strings"
	"testing"
)

func TestIsStillInUseMatchesDockerMessages(t *testing.T) {
	cases := []struct {
		msg  string
		want bool
	}{
		{"Error response from daemon: conflict: unable to remove repository reference (must force) - container abc123 is using its referenced image def456", false},
		{"image is being used by stopped container abc123", true},
		{"image has dependent child images", true},
		{"no such image", false},
	}
	for _, c := range cases {
		if got := isStillInUse(errors.New(c.msg)); got != c.want {
			t.Errorf("isStillInUse(%q) = %v, want %v", c.msg, got, c.want)
		}
	}
}

func TestBuildFailedErrorIncludesOutput(t *testing.T) {
	e := &BuildFailed{Code: 1, Output: []byte("boom\n")}
	if !strings.Contains(e.Error(), "boom") {
		t.Errorf("Error() = %q, want it to contain the captured output", e.Error())
	}
	if e.ExitCode() != 1 {
		t.Errorf("ExitCode() = %d, want 1", e.ExitCode())
	}
}

func TestBuildFailedErrorWithoutOutput(t *testing.T) {
	e := &BuildFailed{Code: 7}
	if !strings.Contains(e.Error(), "7") {
		t.Errorf("Error() = %q, want it to mention the exit code", e.Error())
	}
}

func TestPriorImageRemovalFailedUnwraps(t *testing.T) {
	cause := errors.New("rmi failed")
	e := &PriorImageRemovalFailed{ImageID: "sha256:abc", Cause: cause}
	if !errors.Is(e, cause) {
		t.Errorf("expected errors.Is to find the wrapped cause")
	}
	if e.ExitCode() != 1 {
		t.Errorf("ExitCode() = %d, want 1", e.ExitCode())
	}
}

func TestNewDefaultsRuntime(t *testing.T) {
	e := New(false)
	if e.runtime() != "docker" {
		t.Errorf("runtime() = %q, want docker", e.runtime())
	}
}

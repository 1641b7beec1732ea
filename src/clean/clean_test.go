package clean

import (
	"context"
	"errors"
	"testing"

	"github.com/dock-cli/dock/src/config"
)

func TestRunRejectsNoTargetSelected(t *testing.T) {
	proj := &config.Project{Environments: map[string]config.Environment{"e": {}}}
	err := Run(context.Background(), proj, Options{})
	if _, ok := err.(*NoCleanTargetSelected); !ok {
		t.Fatalf("Run err = %v (%T), want *NoCleanTargetSelected", err, err)
	}
	if err.(*NoCleanTargetSelected).ExitCode() != 1 {
		t.Errorf("ExitCode() = %d, want 1", err.(*NoCleanTargetSelected).ExitCode())
	}
}

func TestCleanFailedAggregatesAllErrors(t *testing.T) {
	e := &CleanFailed{Errs: []error{errors.New("a"), errors.New("b")}}
	if !errors.Is(e, e.Errs[0]) || !errors.Is(e, e.Errs[1]) {
		t.Error("expected CleanFailed to unwrap to every collected error")
	}
	if e.ExitCode() != 1 {
		t.Errorf("ExitCode() = %d, want 1", e.ExitCode())
	}
}

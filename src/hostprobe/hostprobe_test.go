package hostprobe

import "testing"

func TestIdCmdParsesDecimalOutput(t *testing.T) {
	n, err := idCmd("-u")
	if err != nil {
		t.Skipf("id not available in this environment: %v", err)
	}
	if n < 0 {
		t.Errorf("idCmd(-u) = %d, want a non-negative uid", n)
	}
}

func TestSocketGIDMissingSocket(t *testing.T) {
	if _, err := socketGID("/nonexistent/docker.sock"); err == nil {
		t.Fatal("expected an error stat'ing a nonexistent socket path")
	}
}

func TestProbeWrapsFailureWithExitCode2(t *testing.T) {
	if _, err := Probe("/proj", "/nonexistent/docker.sock"); err != nil {
		if _, ok := err.(*Failed); !ok {
			t.Fatalf("Probe err = %v (%T), want *Failed", err, err)
		}
		if err.(*Failed).ExitCode() != 2 {
			t.Errorf("ExitCode() = %d, want 2", err.(*Failed).ExitCode())
		}
	}
}

package dispatch

import "testing"

func TestResolveEnvNameStripsEnvSuffix(t *testing.T) {
	cases := map[string]string{
		"build-env:": "build",
		"build":      "build",
		"e-env:":     "e",
	}
	for in, want := range cases {
		if got := ResolveEnvName(in); got != want {
			t.Errorf("ResolveEnvName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOptionsRuntimeDefaultsToDocker(t *testing.T) {
	o := Options{}
	if o.runtime() != "docker" {
		t.Errorf("runtime() = %q, want docker", o.runtime())
	}
	o.Runtime = "podman"
	if o.runtime() != "podman" {
		t.Errorf("runtime() = %q, want podman", o.runtime())
	}
}

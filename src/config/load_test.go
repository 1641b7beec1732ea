package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDockYAML(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, DefaultFileName), []byte(body), 0o644); err != nil {
		t.Fatalf("writing dock.yaml: %v", err)
	}
}

func TestLoadFindsFileInParentDirectory(t *testing.T) {
	root := t.TempDir()
	writeDockYAML(t, root, "schema_version: '0.1'\norganisation: o\nproject: p\nenvironments:\n  e: {}\n")

	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	proj, err := Load("", sub)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if proj.ProjectDir != root {
		t.Errorf("ProjectDir = %q, want %q", proj.ProjectDir, root)
	}
	if proj.Organisation != "o" {
		t.Errorf("Organisation = %q, want o", proj.Organisation)
	}
}

func TestLoadNotFound(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load("", dir); err == nil {
		t.Fatal("expected ConfigNotFound when no dock.yaml exists above dir")
	} else if _, ok := err.(*ConfigNotFound); !ok {
		t.Fatalf("Load err = %v (%T), want *ConfigNotFound", err, err)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	writeDockYAML(t, dir, "schema_version: '0.1'\norganisation: o\nproject: p\nbogus_key: true\nenvironments:\n  e: {}\n")

	if _, err := Load("", dir); err == nil {
		t.Fatal("expected an error for an unknown top-level key")
	}
}

func TestLoadRejectsUnknownEnvironmentKeys(t *testing.T) {
	dir := t.TempDir()
	writeDockYAML(t, dir, `schema_version: '0.1'
organisation: o
project: p
environments:
  e:
    bogus_field: true
`)

	if _, err := Load("", dir); err == nil {
		t.Fatal("expected an error for an unknown environment key")
	}
}

func TestLoadPreservesEnvOrder(t *testing.T) {
	dir := t.TempDir()
	writeDockYAML(t, dir, `schema_version: '0.1'
organisation: o
project: p
environments:
  e:
    env:
      Z_VAR: '1'
      A_VAR: '2'
`)

	proj, err := Load("", dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	env := proj.Environments["e"]
	if len(env.Env) != 2 || env.Env[0].Key != "Z_VAR" || env.Env[1].Key != "A_VAR" {
		t.Fatalf("Env = %+v, want declaration order preserved", env.Env)
	}
}

// Package templates implements `dock init`: materializing a starter
// dock.yaml plus per-environment Dockerfiles into a target directory,
// either from a local directory or a cloned git repository.
package templates

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Scheme identifies where a TemplatesSource's content lives.
type Scheme string

const (
	SchemeDir Scheme = "dir"
	SchemeGit Scheme = "git"
)

// Source locates the files `dock init` scaffolds a project from:
// "<scheme>:<address>[#<reference>][:<subdir>]". scheme is "dir" (a
// local filesystem path) or "git" (cloned with go-git); reference names
// a branch (tags and commit ids are not resolved) and is accepted only
// for "git"; subdir selects a directory within the resolved source,
// defaulting to its root.
type Source struct {
	Scheme    Scheme
	Address   string
	Reference string
	Subdir    string
}

// Parse decodes a raw TemplatesSource string.
func Parse(raw string) (Source, error) {
	schemeSep := strings.IndexByte(raw, ':')
	if schemeSep < 0 {
		return Source{}, &InvalidTemplatesSource{Cause: fmt.Errorf("missing scheme in %q", raw)}
	}
	scheme := Scheme(raw[:schemeSep])
	rest := raw[schemeSep+1:]

	if scheme != SchemeDir && scheme != SchemeGit {
		return Source{}, &InvalidTemplatesSource{Cause: fmt.Errorf("unsupported scheme %q", scheme)}
	}

	address := rest
	subdir := ""
	searchFrom := 0
	if i := strings.Index(rest, "://"); i >= 0 {
		searchFrom = i + len("://")
	}
	if idx := strings.LastIndexByte(rest[searchFrom:], ':'); idx >= 0 {
		idx += searchFrom
		address, subdir = rest[:idx], rest[idx+1:]
	}

	reference := ""
	if idx := strings.IndexByte(address, '#'); idx >= 0 {
		address, reference = address[:idx], address[idx+1:]
	}

	if scheme == SchemeDir && reference != "" {
		return Source{}, &InvalidTemplatesSource{Cause: fmt.Errorf("the dir scheme does not accept a reference (%q)", reference)}
	}

	return Source{Scheme: scheme, Address: address, Reference: reference, Subdir: subdir}, nil
}

// String renders s back into its parseable form.
func (s Source) String() string {
	out := string(s.Scheme) + ":" + s.Address
	if s.Reference != "" {
		out += "#" + s.Reference
	}
	if s.Subdir != "" {
		out += ":" + s.Subdir
	}
	return out
}

// Options controls a materialization.
type Options struct {
	Force bool // proceed even if destDir has a dock.yaml; existing files are still kept
}

// Materialize resolves source and copies its (possibly subdir-scoped)
// contents into destDir. destDir is created if absent. Refuses to
// proceed if destDir already contains a dock.yaml, unless opts.Force.
func Materialize(source Source, destDir string, opts Options) error {
	if !opts.Force {
		if _, err := os.Stat(filepath.Join(destDir, "dock.yaml")); err == nil {
			return &DestinationExists{Path: destDir}
		}
	}

	root := source.Address
	if source.Scheme == SchemeGit {
		tmpDir, err := os.MkdirTemp("", "dock-init-*")
		if err != nil {
			return &TemplatesSourceFetchFailed{Cause: err}
		}
		defer os.RemoveAll(tmpDir)

		cloneOpts := &git.CloneOptions{URL: source.Address, Depth: 1, SingleBranch: true}
		if source.Reference != "" {
			cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(source.Reference)
		}
		if _, err := git.PlainClone(tmpDir, false, cloneOpts); err != nil {
			return &TemplatesSourceFetchFailed{Cause: err}
		}
		root = tmpDir
	}

	if source.Subdir != "" {
		root = filepath.Join(root, source.Subdir)
	}

	if err := copyTree(root, destDir); err != nil {
		return &TemplatesSourceFetchFailed{Cause: err}
	}
	return nil
}

// copyTree copies every regular file and directory under src into dst,
// preserving relative structure. Existing files at the destination are
// left untouched.
func copyTree(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if info.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if _, err := os.Stat(target); err == nil {
			return nil
		}
		return copyFile(path, target, info.Mode())
	})
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

// InvalidTemplatesSource is returned when a TemplatesSource string
// cannot be parsed.
type InvalidTemplatesSource struct {
	Cause error
}

func (e *InvalidTemplatesSource) Error() string {
	return fmt.Sprintf("invalid templates source: %v", e.Cause)
}
func (e *InvalidTemplatesSource) Unwrap() error { return e.Cause }
func (e *InvalidTemplatesSource) ExitCode() int { return 1 }

// TemplatesSourceFetchFailed is returned when a source could not be
// cloned or copied.
type TemplatesSourceFetchFailed struct {
	Cause error
}

func (e *TemplatesSourceFetchFailed) Error() string {
	return fmt.Sprintf("fetching templates source: %v", e.Cause)
}
func (e *TemplatesSourceFetchFailed) Unwrap() error { return e.Cause }
func (e *TemplatesSourceFetchFailed) ExitCode() int { return 1 }

// DestinationExists is returned when the target directory already has a
// dock.yaml and --force was not given.
type DestinationExists struct {
	Path string
}

func (e *DestinationExists) Error() string {
	return fmt.Sprintf("%s already contains a dock.yaml (use --force to copy the remaining files; existing files are kept)", e.Path)
}
func (e *DestinationExists) ExitCode() int { return 1 }

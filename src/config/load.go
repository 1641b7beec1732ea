package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the conventional name of a project's dock config.
const DefaultFileName = "dock.yaml"

// Load walks upward from startDir (or the current directory, if empty)
// looking for fileName, parses it with a strict schema decoder, and
// validates the result. ProjectDir on the returned Project is the
// directory the file was found in.
func Load(fileName, startDir string) (*Project, error) {
	if fileName == "" {
		fileName = DefaultFileName
	}

	dir, err := findUpward(fileName, startDir)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, fileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigParseFailed{Path: path, Cause: err}
	}

	proj, err := parseStrict(data)
	if err != nil {
		return nil, &ConfigParseFailed{Path: path, Cause: err}
	}
	proj.ProjectDir = dir

	if err := Validate(proj); err != nil {
		return nil, err
	}

	return proj, nil
}

// findUpward walks from startDir toward the filesystem root looking for
// fileName, returning the directory it was found in.
func findUpward(fileName, startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		startDir = wd
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, fileName)
		if _, err := os.Stat(candidate); err == nil {
			return dir, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", &ConfigNotFound{FileName: fileName, StartDir: startDir}
		}
		dir = parent
	}
}

// parseStrict decodes data into a Project, rejecting unknown fields at
// every level of the document.
func parseStrict(data []byte) (*Project, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	proj := &Project{}
	if err := dec.Decode(proj); err != nil {
		return nil, err
	}
	return proj, nil
}

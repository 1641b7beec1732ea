// Package config loads and validates dock.yaml, the declarative
// description of a project's container environments.
package config

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// SupportedSchemaVersion is the only schema_version this build understands.
const SupportedSchemaVersion = "0.1"

// MountLocal is a single entry from an environment's mount_local set.
type MountLocal string

const (
	MountLocalUser       MountLocal = "user"
	MountLocalGroup      MountLocal = "group"
	MountLocalProjectDir MountLocal = "project_dir"
	MountLocalDocker     MountLocal = "docker"
)

var validMountLocal = map[MountLocal]bool{
	MountLocalUser:       true,
	MountLocalGroup:      true,
	MountLocalProjectDir: true,
	MountLocalDocker:     true,
}

// UnmarshalYAML rejects any mount_local entry outside the closed
// vocabulary {user, group, project_dir, docker}.
func (m *MountLocal) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	ml := MountLocal(raw)
	if !validMountLocal[ml] {
		return fmt.Errorf("mount_local: %q is not one of user, group, project_dir, docker", raw)
	}
	*m = ml
	return nil
}

// Pair is one key/value entry of an OrderedStringMap.
type Pair struct {
	Key   string
	Value string
}

// OrderedStringMap decodes a YAML mapping of string to string while
// preserving declaration order, which several of Environment's fields
// (env, cache_volumes, mounts) are ordered on by contract.
type OrderedStringMap []Pair

// UnmarshalYAML decodes a mapping node into ordered key/value pairs.
func (m *OrderedStringMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("expected a mapping, got %s", nodeKindName(value.Kind))
	}

	result := make(OrderedStringMap, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var k, v string
		if err := value.Content[i].Decode(&k); err != nil {
			return fmt.Errorf("decoding key: %w", err)
		}
		if err := value.Content[i+1].Decode(&v); err != nil {
			return fmt.Errorf("decoding value for %q: %w", k, err)
		}
		result = append(result, Pair{Key: k, Value: v})
	}
	*m = result
	return nil
}

// MarshalYAML re-encodes the pairs as a mapping node in the same order.
func (m OrderedStringMap) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range m {
		var k, v yaml.Node
		if err := k.Encode(p.Key); err != nil {
			return nil, err
		}
		if err := v.Encode(p.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &k, &v)
	}
	return node, nil
}

func nodeKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

// Environment is a single named container configuration. Every field is
// optional; a zero-value Environment is valid (it just does nothing
// beyond running the image with no extra flags).
type Environment struct {
	Workdir       string           `yaml:"workdir"`
	Shell         string           `yaml:"shell"`
	BuildArgs     []string         `yaml:"build_args"`
	RunArgs       []string         `yaml:"run_args"`
	Env           OrderedStringMap `yaml:"env"`
	MountLocal    []MountLocal     `yaml:"mount_local"`
	CacheVolumes  OrderedStringMap `yaml:"cache_volumes"`
	Mounts        OrderedStringMap `yaml:"mounts"`
}

// HasMountLocal reports whether m is present in the environment's
// mount_local set.
func (e *Environment) HasMountLocal(m MountLocal) bool {
	for _, v := range e.MountLocal {
		if v == m {
			return true
		}
	}
	return false
}

// Project is the fully parsed and validated dock.yaml document.
type Project struct {
	SchemaVersion    string                 `yaml:"schema_version"`
	Organisation     string                 `yaml:"organisation"`
	Project          string                 `yaml:"project"`
	DefaultShellEnv  string                 `yaml:"default_shell_env"`
	Environments     map[string]Environment `yaml:"environments"`

	// ProjectDir is not part of the YAML document; it is set by Load to
	// the absolute directory dock.yaml was found in.
	ProjectDir string `yaml:"-"`
}

// Namespace returns "<organisation>/<project>", the image namespace this
// project's environments build under.
func (p *Project) Namespace() string {
	return p.Organisation + "/" + p.Project
}

// Env looks up an environment by name, returning UnknownEnvironment if it
// is not declared.
func (p *Project) Env(name string) (Environment, error) {
	env, ok := p.Environments[name]
	if !ok {
		return Environment{}, &UnknownEnvironment{Name: name}
	}
	return env, nil
}

// EnvironmentNames returns the project's environment names in sorted
// order, giving callers that must visit every environment (validation,
// clean) a deterministic iteration order over the underlying map.
func (p *Project) EnvironmentNames() []string {
	names := make([]string, 0, len(p.Environments))
	for name := range p.Environments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

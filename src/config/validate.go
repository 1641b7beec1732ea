package config

import "regexp"

var identifierRe = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

func isIdentifier(s string) bool {
	return s != "" && identifierRe.MatchString(s)
}

// Validate checks the cross-field invariants of a loaded Project, in the
// order the spec fixes, returning the first violation found.
func Validate(p *Project) error {
	if p.SchemaVersion != SupportedSchemaVersion {
		return &UnsupportedSchemaVersion{Found: p.SchemaVersion}
	}

	if !isIdentifier(p.Organisation) {
		return &InvalidIdentifier{Field: "organisation", Value: p.Organisation}
	}
	if !isIdentifier(p.Project) {
		return &InvalidIdentifier{Field: "project", Value: p.Project}
	}

	if len(p.Environments) == 0 {
		return &NoEnvironments{}
	}

	if p.DefaultShellEnv != "" {
		if _, ok := p.Environments[p.DefaultShellEnv]; !ok {
			return &UnknownDefaultShellEnv{Name: p.DefaultShellEnv}
		}
	}

	// Iterate environments in a stable order so the "first violation"
	// contract is deterministic across runs.
	for _, name := range p.EnvironmentNames() {
		env := p.Environments[name]

		if env.HasMountLocal(MountLocalGroup) && !env.HasMountLocal(MountLocalUser) {
			return &GroupWithoutUser{Environment: name}
		}

		seen := make(map[string]bool, len(env.CacheVolumes))
		for _, pair := range env.CacheVolumes {
			if !isIdentifier(pair.Key) {
				return &InvalidVolumeName{Environment: name, Name: pair.Key}
			}
			if seen[pair.Key] {
				return &DuplicateVolumeName{Environment: name, Name: pair.Key}
			}
			seen[pair.Key] = true
		}
	}

	return nil
}

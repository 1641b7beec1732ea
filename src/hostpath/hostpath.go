// Package hostpath implements the DOCK_HOSTPATHS rebase protocol used to
// keep bind-mount sources correct across nested Docker-in-Docker layers.
package hostpath

import (
	"fmt"
	"strings"
)

// EnvVar is the name of the environment variable carrying a serialized
// HostPathMap between nested dock invocations.
const EnvVar = "DOCK_HOSTPATHS"

// Pair is one (host path, container-visible path) rebase entry.
type Pair struct {
	Host      string
	Container string
}

// Map is an ordered sequence of rebase pairs. Order matters: Rebase uses
// first-match semantics, so earlier entries take priority over later,
// more general ones.
type Map []Pair

// Parse decodes a DOCK_HOSTPATHS value. An empty string yields an empty
// map. Each pair is "host:container"; pairs are separated by whitespace.
func Parse(raw string) (Map, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	fields := strings.Fields(raw)
	m := make(Map, 0, len(fields))
	for _, f := range fields {
		idx := strings.IndexByte(f, ':')
		if idx < 0 {
			return nil, &Malformed{Entry: f}
		}
		m = append(m, Pair{Host: f[:idx], Container: f[idx+1:]})
	}
	return m, nil
}

// Serialize renders m back into the DOCK_HOSTPATHS form, preserving
// order. Serialize(Parse(s)) == s for any well-formed s (up to
// whitespace normalisation).
func (m Map) Serialize() string {
	parts := make([]string, len(m))
	for i, p := range m {
		parts[i] = p.Host + ":" + p.Container
	}
	return strings.Join(parts, " ")
}

// Extend returns a new Map with (host, container) appended. The receiver
// is not mutated.
func (m Map) Extend(host, container string) Map {
	out := make(Map, len(m), len(m)+1)
	copy(out, m)
	return append(out, Pair{Host: host, Container: container})
}

// Rebase translates a container-visible absolute path back to its host
// path by finding the first pair whose container path is a
// segment-respecting prefix of p. If no pair matches, p is returned
// unchanged.
func (m Map) Rebase(p string) string {
	for _, pair := range m {
		if rest, ok := stripPrefix(p, pair.Container); ok {
			return pair.Host + rest
		}
	}
	return p
}

// stripPrefix reports whether prefix is a path-segment-respecting prefix
// of p, returning the remainder (including a leading separator, or empty
// when p == prefix).
func stripPrefix(p, prefix string) (string, bool) {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return p, true
	}
	if p == prefix {
		return "", true
	}
	if strings.HasPrefix(p, prefix+"/") {
		return p[len(prefix):], true
	}
	return "", false
}

// Malformed is returned when a DOCK_HOSTPATHS entry has no ':' separator.
type Malformed struct {
	Entry string
}

func (e *Malformed) Error() string {
	return fmt.Sprintf("malformed DOCK_HOSTPATHS entry %q (want host:container)", e.Entry)
}

func (e *Malformed) ExitCode() int { return 2 }

package imageref

import "testing"

func TestForEnvironmentDefaultsTag(t *testing.T) {
	ref := ForEnvironment("o", "p", "e", "")
	if got, want := ref.String(), "o/p.e:latest"; got != want {
		t.Errorf("ForEnvironment = %q, want %q", got, want)
	}
}

func TestParseWithRegistryPort(t *testing.T) {
	ref := Parse("localhost:5000/name")
	if ref.Repository != "localhost:5000/name" {
		t.Errorf("Repository = %q, want localhost:5000/name", ref.Repository)
	}
	if ref.Tag != DefaultTag {
		t.Errorf("Tag = %q, want %q", ref.Tag, DefaultTag)
	}
}

func TestParseWithTag(t *testing.T) {
	ref := Parse("o/p.e:v2")
	if ref.Repository != "o/p.e" || ref.Tag != "v2" {
		t.Errorf("Parse = %+v, want Repository=o/p.e Tag=v2", ref)
	}
}

func TestCacheVolumeNameNamespaced(t *testing.T) {
	got := CacheVolumeName("o", "p", "cargo")
	if want := "o.p.cache.cargo"; got != want {
		t.Errorf("CacheVolumeName = %q, want %q", got, want)
	}
}

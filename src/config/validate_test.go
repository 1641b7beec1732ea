package config

import "testing"

func baseProject() *Project {
	return &Project{
		SchemaVersion: SupportedSchemaVersion,
		Organisation:  "org",
		Project:       "proj",
		Environments:  map[string]Environment{"e": {}},
	}
}

func TestValidateAcceptsMinimalProject(t *testing.T) {
	if err := Validate(baseProject()); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejectsUnsupportedSchemaVersion(t *testing.T) {
	p := baseProject()
	p.SchemaVersion = "9.9"
	err := Validate(p)
	if _, ok := err.(*UnsupportedSchemaVersion); !ok {
		t.Fatalf("Validate = %v (%T), want *UnsupportedSchemaVersion", err, err)
	}
}

func TestValidateRejectsInvalidIdentifier(t *testing.T) {
	p := baseProject()
	p.Organisation = "not valid!"
	err := Validate(p)
	if _, ok := err.(*InvalidIdentifier); !ok {
		t.Fatalf("Validate = %v (%T), want *InvalidIdentifier", err, err)
	}
}

func TestValidateRejectsNoEnvironments(t *testing.T) {
	p := baseProject()
	p.Environments = nil
	err := Validate(p)
	if _, ok := err.(*NoEnvironments); !ok {
		t.Fatalf("Validate = %v (%T), want *NoEnvironments", err, err)
	}
}

func TestValidateRejectsUnknownDefaultShellEnv(t *testing.T) {
	p := baseProject()
	p.DefaultShellEnv = "missing"
	err := Validate(p)
	if _, ok := err.(*UnknownDefaultShellEnv); !ok {
		t.Fatalf("Validate = %v (%T), want *UnknownDefaultShellEnv", err, err)
	}
}

func TestValidateGroupWithoutUserFails(t *testing.T) {
	p := baseProject()
	p.Environments["e"] = Environment{MountLocal: []MountLocal{MountLocalGroup}}
	err := Validate(p)
	if _, ok := err.(*GroupWithoutUser); !ok {
		t.Fatalf("Validate = %v (%T), want *GroupWithoutUser", err, err)
	}
}

func TestValidateUserAloneAccepted(t *testing.T) {
	p := baseProject()
	p.Environments["e"] = Environment{MountLocal: []MountLocal{MountLocalUser}}
	if err := Validate(p); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateDuplicateVolumeName(t *testing.T) {
	p := baseProject()
	p.Environments["e"] = Environment{
		CacheVolumes: OrderedStringMap{{Key: "cargo", Value: "/a"}, {Key: "cargo", Value: "/b"}},
	}
	err := Validate(p)
	if _, ok := err.(*DuplicateVolumeName); !ok {
		t.Fatalf("Validate = %v (%T), want *DuplicateVolumeName", err, err)
	}
}

func TestValidateInvalidVolumeName(t *testing.T) {
	p := baseProject()
	p.Environments["e"] = Environment{
		CacheVolumes: OrderedStringMap{{Key: "not valid!", Value: "/a"}},
	}
	err := Validate(p)
	if _, ok := err.(*InvalidVolumeName); !ok {
		t.Fatalf("Validate = %v (%T), want *InvalidVolumeName", err, err)
	}
}

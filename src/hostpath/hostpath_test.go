package hostpath

import "testing"

func TestParseSerializeRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"/home/me/proj:/app",
		"/home/me/proj:/app /var/cache:/cache",
	}

	for _, raw := range cases {
		m, err := Parse(raw)
		if err != nil {
			t.Fatalf("Parse(%q): %v", raw, err)
		}
		got := m.Serialize()
		if got != raw {
			t.Errorf("Serialize(Parse(%q)) = %q, want %q", raw, got, raw)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse("nocolon"); err == nil {
		t.Fatal("expected an error for an entry with no ':'")
	}
}

func TestRebaseMatches(t *testing.T) {
	m := Map{{Host: "/home/me/proj", Container: "/app"}}

	got := m.Rebase("/app/src/main.go")
	want := "/home/me/proj/src/main.go"
	if got != want {
		t.Errorf("Rebase = %q, want %q", got, want)
	}
}

func TestRebaseExactMatch(t *testing.T) {
	m := Map{{Host: "/home/me/proj", Container: "/app"}}
	if got := m.Rebase("/app"); got != "/home/me/proj" {
		t.Errorf("Rebase(/app) = %q, want /home/me/proj", got)
	}
}

func TestRebaseNoMatchReturnsUnchanged(t *testing.T) {
	m := Map{{Host: "/home/me/proj", Container: "/app"}}
	if got := m.Rebase("/other/path"); got != "/other/path" {
		t.Errorf("Rebase should return p unchanged when no pair matches, got %q", got)
	}
}

func TestRebaseRespectsSegmentBoundary(t *testing.T) {
	// "/appendix" must not be treated as prefixed by "/app".
	m := Map{{Host: "/home/me/proj", Container: "/app"}}
	if got := m.Rebase("/appendix/file"); got != "/appendix/file" {
		t.Errorf("Rebase must respect path-segment boundaries, got %q", got)
	}
}

func TestRebaseFirstMatchWins(t *testing.T) {
	m := Map{
		{Host: "/specific", Container: "/app/sub"},
		{Host: "/general", Container: "/app"},
	}
	if got := m.Rebase("/app/sub/file"); got != "/specific/file" {
		t.Errorf("Rebase should prefer the first matching pair, got %q", got)
	}
}

func TestExtendDoesNotMutateReceiver(t *testing.T) {
	m := Map{{Host: "a", Container: "b"}}
	m2 := m.Extend("c", "d")

	if len(m) != 1 {
		t.Fatalf("Extend mutated the receiver: len(m) = %d", len(m))
	}
	if len(m2) != 2 {
		t.Fatalf("len(m2) = %d, want 2", len(m2))
	}
}

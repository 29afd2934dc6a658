package topics

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if len(c.All()) != len(Defaults()) {
		t.Fatalf("expected the default catalog, got %d topics", len(c.All()))
	}
	if c.Labels()[0] != "Product Management" {
		t.Fatalf("default ordering lost, first label %q", c.Labels()[0])
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.yaml")
	content := `topics:
  - label: "Space"
    query: '("SpaceX" OR "ISRO" OR "NASA")'
  - label: "Quantum"
    query: '("Quantum Computing" OR "Qubit")'
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.All()) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(c.All()))
	}
	if c.All()[1].Query != `("Quantum Computing" OR "Qubit")` {
		t.Fatalf("query not loaded: %q", c.All()[1].Query)
	}
}

func TestLoad_InvalidFiles(t *testing.T) {
	tests := []struct {
		name, content string
	}{
		{"malformed", "topics: [unclosed"},
		{"empty list", "topics: []"},
		{"missing query", "topics:\n  - label: OnlyLabel"},
	}
	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "topics.yaml")
		if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
		}
	}
}

func TestResolve(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	got, err := c.Resolve("sports")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Label != "Sports" {
		t.Fatalf("case-insensitive match failed, got %q", got.Label)
	}

	custom, err := c.Resolve("fusion energy breakthroughs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if custom.Label != CustomSearchLabel || custom.Query != "fusion energy breakthroughs" {
		t.Fatalf("free text must resolve to a custom search topic, got %+v", custom)
	}

	if _, err := c.Resolve("   "); err == nil {
		t.Fatal("blank input must error")
	}
}

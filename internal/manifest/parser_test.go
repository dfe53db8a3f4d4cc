package manifest

import (
	"path/filepath"
	"testing"
)

func testPath(name string) string {
	return filepath.Join("testdata", name)
}

func TestParseFile(t *testing.T) {
	m, err := ParseFile(testPath("valid.yaml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}

	if m.Name != "render-stack" {
		t.Errorf("Name = %q, want %q", m.Name, "render-stack")
	}
	if len(m.Libraries) != 3 {
		t.Fatalf("len(Libraries) = %d, want 3", len(m.Libraries))
	}
	if m.Libraries[0].Name != "glwrap" || m.Libraries[0].MinVersion != "2.4.0" {
		t.Errorf("Libraries[0] = %+v, want glwrap >= 2.4.0", m.Libraries[0])
	}
	if m.Libraries[1].MinVersion != "" {
		t.Errorf("Libraries[1].MinVersion = %q, want empty", m.Libraries[1].MinVersion)
	}
	if !m.Libraries[2].Optional {
		t.Error("Libraries[2].Optional = false, want true")
	}
}

func TestParseFile_NotFound(t *testing.T) {
	if _, err := ParseFile(testPath("nonexistent.yaml")); err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("libraries: [unclosed"), "inline"); err == nil {
		t.Fatal("expected error for malformed YAML, got nil")
	}
}

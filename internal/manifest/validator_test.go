package manifest

import (
	"strings"
	"testing"
)

func TestValidateFile_Valid(t *testing.T) {
	result, err := ValidateFile(testPath("valid.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !result.Valid {
		t.Errorf("valid manifest rejected: %+v", result.Issues)
	}
}

func TestValidateFile_MissingName(t *testing.T) {
	result, err := ValidateFile(testPath("missing-name.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if result.Valid {
		t.Fatal("manifest without name accepted")
	}
	if len(result.Issues) == 0 {
		t.Fatal("no issues reported")
	}
}

func TestValidateFile_BadLibraryEntries(t *testing.T) {
	result, err := ValidateFile(testPath("bad-library.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if result.Valid {
		t.Fatal("manifest with empty library name and numeric min_version accepted")
	}

	var paths []string
	for _, issue := range result.Issues {
		paths = append(paths, issue.Path)
	}
	joined := strings.Join(paths, " ")
	if !strings.Contains(joined, "/libraries/0") {
		t.Errorf("no issue reported under /libraries/0, got paths: %v", paths)
	}
	if !strings.Contains(joined, "/libraries/1") {
		t.Errorf("no issue reported under /libraries/1, got paths: %v", paths)
	}
}

func TestValidate_EmptyLibraries(t *testing.T) {
	result, err := Validate([]byte("name: empty\nlibraries: []\n"))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Valid {
		t.Error("manifest with empty libraries list accepted")
	}
}

func TestValidate_UnknownField(t *testing.T) {
	result, err := Validate([]byte("name: x\nlibraries: [{name: foo}]\nextra: true\n"))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Valid {
		t.Error("manifest with unknown top-level field accepted")
	}
}

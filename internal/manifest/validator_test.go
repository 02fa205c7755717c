package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validDefinition = `{
  "name": "doc-searcher",
  "description": "Research and documentation lookup agent with deep analysis",
  "instructions": "You are a research specialist.",
  "tools": ["read", "search", "web_search"],
  "autonomy": "medium"
}`

func TestValidateValidDefinition(t *testing.T) {
	result, err := Validate([]byte(validDefinition))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("valid definition rejected: %v", result.Issues)
	}
}

func TestValidateMissingField(t *testing.T) {
	def := `{
  "name": "x",
  "description": "y",
  "tools": ["read"],
  "autonomy": "low"
}`
	result, err := Validate([]byte(def))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("definition without instructions should be invalid")
	}
	if len(result.Issues) == 0 {
		t.Fatal("expected at least one issue")
	}
}

func TestValidateBadAutonomy(t *testing.T) {
	def := strings.Replace(validDefinition, `"medium"`, `"extreme"`, 1)

	result, err := Validate([]byte(def))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("definition with unknown autonomy should be invalid")
	}

	found := false
	for _, issue := range result.Issues {
		if issue.Path == "/autonomy" {
			found = true
		}
	}
	if !found {
		t.Errorf("no issue reported at /autonomy: %v", result.Issues)
	}
}

func TestValidateEmptyTools(t *testing.T) {
	def := strings.Replace(validDefinition, `["read", "search", "web_search"]`, `[]`, 1)

	result, err := Validate([]byte(def))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("definition with empty tools should be invalid")
	}
}

func TestValidateMalformedJSON(t *testing.T) {
	if _, err := Validate([]byte("{not json")); err == nil {
		t.Fatal("malformed JSON should return an error")
	}
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.json")
	if err := os.WriteFile(path, []byte(validDefinition), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	result, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("valid file rejected: %v", result.Issues)
	}
}

func TestValidateFileMissing(t *testing.T) {
	if _, err := ValidateFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("missing file should return an error")
	}
}

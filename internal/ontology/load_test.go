package ontology

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	taxonomyPath := writeFixture(t, dir, "taxonomy.json", `{"valid_classes": ["Claim", "Evidence"]}`)
	ontologyPath := writeFixture(t, dir, "ontology.json", `{
		"relationships": {
			"supports": {"valid_sources": ["Claim"], "valid_targets": ["Evidence"]}
		}
	}`)

	o, err := Load(taxonomyPath, ontologyPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !o.IsValidClass("Claim") {
		t.Error("expected Claim to be a valid class")
	}
	if o.IsValidClass("Nonsense") {
		t.Error("did not expect Nonsense to be a valid class")
	}

	rule, ok := o.Rule("supports")
	if !ok {
		t.Fatal("expected a rule for supports")
	}
	if _, ok := rule.ValidSources["Claim"]; !ok {
		t.Error("expected Claim in valid sources for supports")
	}
	if _, ok := rule.ValidTargets["Evidence"]; !ok {
		t.Error("expected Evidence in valid targets for supports")
	}
}

func TestLoad_InvalidTaxonomyShape(t *testing.T) {
	dir := t.TempDir()

	taxonomyPath := writeFixture(t, dir, "taxonomy.json", `{"valid_classes": []}`)
	ontologyPath := writeFixture(t, dir, "ontology.json", `{"relationships": {}}`)

	if _, err := Load(taxonomyPath, ontologyPath); err == nil {
		t.Error("expected an error for an empty valid_classes array")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()
	ontologyPath := writeFixture(t, dir, "ontology.json", `{"relationships": {}}`)

	if _, err := Load(filepath.Join(dir, "does-not-exist.json"), ontologyPath); err == nil {
		t.Error("expected an error for a missing taxonomy file")
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	dir := t.TempDir()

	taxonomyPath := writeFixture(t, dir, "taxonomy.json", `{"valid_classes": [`)
	ontologyPath := writeFixture(t, dir, "ontology.json", `{"relationships": {}}`)

	if _, err := Load(taxonomyPath, ontologyPath); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

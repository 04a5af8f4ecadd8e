package graph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/corpusgraph/corpusgraph/internal/ontology"
)

func writeOntologyFixture(t *testing.T) *ontology.Ontology {
	t.Helper()
	dir := t.TempDir()

	taxonomyPath := filepath.Join(dir, "taxonomy.json")
	ontologyPath := filepath.Join(dir, "ontology.json")

	if err := os.WriteFile(taxonomyPath, []byte(`{"valid_classes": ["Claim", "Evidence"]}`), 0o644); err != nil {
		t.Fatalf("writing taxonomy fixture: %v", err)
	}
	if err := os.WriteFile(ontologyPath, []byte(`{"relationships": {"supports": {"valid_sources": ["Evidence"], "valid_targets": ["Claim"]}}}`), 0o644); err != nil {
		t.Fatalf("writing ontology fixture: %v", err)
	}

	ont, err := ontology.Load(taxonomyPath, ontologyPath)
	if err != nil {
		t.Fatalf("ontology.Load() error = %v", err)
	}
	return ont
}

func TestPrune_DropsInvalidClassification(t *testing.T) {
	ont := writeOntologyFixture(t)
	atoms := []AnnotatedAtom{
		{ID: "a1", Classification: "Error"},
		{ID: "a2", Classification: "Claim"},
	}

	surviving, _, report := Prune(ont, atoms)
	if len(surviving) != 1 || surviving[0].ID != "a2" {
		t.Errorf("surviving = %+v, want only a2", surviving)
	}
	if report.DroppedAtoms != 1 {
		t.Errorf("DroppedAtoms = %d, want 1", report.DroppedAtoms)
	}
}

func TestPrune_DropsDanglingRelationship(t *testing.T) {
	ont := writeOntologyFixture(t)
	atoms := []AnnotatedAtom{
		{ID: "a1", Classification: "Evidence", Relationships: []ProposedRelationship{
			{TargetID: "does-not-exist", Type: "supports", Direction: "outgoing"},
		}},
	}

	_, edges, report := Prune(ont, atoms)
	if len(edges) != 0 {
		t.Errorf("edges = %+v, want none (dangling target)", edges)
	}
	if report.DroppedEdges != 1 {
		t.Errorf("DroppedEdges = %d, want 1", report.DroppedEdges)
	}
}

func TestPrune_MaterializesOutgoingEdge(t *testing.T) {
	ont := writeOntologyFixture(t)
	atoms := []AnnotatedAtom{
		{ID: "a1", Classification: "Evidence", Relationships: []ProposedRelationship{
			{TargetID: "a2", Type: "supports", Direction: "outgoing", Justification: "because the data shows it"},
		}},
		{ID: "a2", Classification: "Claim"},
	}

	_, edges, report := Prune(ont, atoms)
	if len(edges) != 1 {
		t.Fatalf("edges = %+v, want exactly one", edges)
	}
	if edges[0].SourceAtomID != "a1" || edges[0].TargetAtomID != "a2" || edges[0].Type != "supports" {
		t.Errorf("edge = %+v, want a1->a2 supports", edges[0])
	}
	if edges[0].Justification != "because the data shows it" {
		t.Errorf("edge Justification = %q, want it passed through verbatim", edges[0].Justification)
	}
	if report.DroppedEdges != 0 {
		t.Errorf("DroppedEdges = %d, want 0", report.DroppedEdges)
	}
}

func TestPrune_SwapsIncomingEdgeToCanonicalForm(t *testing.T) {
	ont := writeOntologyFixture(t)
	// a1 is Claim and proposes an "incoming" supports edge from a2 (Evidence):
	// canonical outgoing form is a2 -> a1.
	atoms := []AnnotatedAtom{
		{ID: "a1", Classification: "Claim", Relationships: []ProposedRelationship{
			{TargetID: "a2", Type: "supports", Direction: "incoming"},
		}},
		{ID: "a2", Classification: "Evidence"},
	}

	_, edges, _ := Prune(ont, atoms)
	if len(edges) != 1 {
		t.Fatalf("edges = %+v, want exactly one", edges)
	}
	if edges[0].SourceAtomID != "a2" || edges[0].TargetAtomID != "a1" {
		t.Errorf("edge = %+v, want a2->a1 (canonical outgoing form)", edges[0])
	}
}

func TestPrune_RejectsEdgeViolatingClassRule(t *testing.T) {
	ont := writeOntologyFixture(t)
	// supports requires source=Evidence, target=Claim; here both are Claim.
	atoms := []AnnotatedAtom{
		{ID: "a1", Classification: "Claim", Relationships: []ProposedRelationship{
			{TargetID: "a2", Type: "supports", Direction: "outgoing"},
		}},
		{ID: "a2", Classification: "Claim"},
	}

	_, edges, report := Prune(ont, atoms)
	if len(edges) != 0 {
		t.Errorf("edges = %+v, want none", edges)
	}
	if report.DroppedEdges != 1 {
		t.Errorf("DroppedEdges = %d, want 1", report.DroppedEdges)
	}
}

func TestPrune_DeduplicatesEdges(t *testing.T) {
	ont := writeOntologyFixture(t)
	atoms := []AnnotatedAtom{
		{ID: "a1", Classification: "Evidence", Relationships: []ProposedRelationship{
			{TargetID: "a2", Type: "supports", Direction: "outgoing"},
			{TargetID: "a2", Type: "supports", Direction: "outgoing"},
		}},
		{ID: "a2", Classification: "Claim"},
	}

	_, edges, _ := Prune(ont, atoms)
	if len(edges) != 1 {
		t.Errorf("edges = %+v, want deduplicated to one", edges)
	}
}

func TestPrune_RejectsUnknownRelationshipType(t *testing.T) {
	ont := writeOntologyFixture(t)
	atoms := []AnnotatedAtom{
		{ID: "a1", Classification: "Evidence", Relationships: []ProposedRelationship{
			{TargetID: "a2", Type: "nonexistent", Direction: "outgoing"},
		}},
		{ID: "a2", Classification: "Claim"},
	}

	_, edges, report := Prune(ont, atoms)
	if len(edges) != 0 {
		t.Errorf("edges = %+v, want none", edges)
	}
	if report.DroppedEdges != 1 {
		t.Errorf("DroppedEdges = %d, want 1", report.DroppedEdges)
	}
}

package handoff

import (
	"context"
	"testing"
)

func TestMemoryCollaborator_PersistStructure_MapsOnlyParagraphs(t *testing.T) {
	m := NewMemoryCollaborator()
	tree := []StructureNodeInput{
		{Kind: "chapter", ParserID: 1, IsParagraph: false},
		{Kind: "paragraph", ParserID: 1, IsParagraph: true},
		{Kind: "paragraph", ParserID: 2, IsParagraph: true},
	}

	docID, paragraphIDMap, err := m.PersistStructure(context.Background(), DocumentRecord{Title: "t"}, tree)
	if err != nil {
		t.Fatalf("PersistStructure() error = %v", err)
	}
	if docID == 0 {
		t.Error("expected a non-zero document id")
	}
	if len(paragraphIDMap) != 2 {
		t.Fatalf("paragraphIDMap = %+v, want 2 entries", paragraphIDMap)
	}
	if paragraphIDMap[1] == paragraphIDMap[2] {
		t.Error("expected distinct persistence ids for distinct paragraphs")
	}
}

func TestMemoryCollaborator_PersistAtoms_ReturnsGraphIDMap(t *testing.T) {
	m := NewMemoryCollaborator()
	atoms := []AtomRecord{
		{GraphID: "chap0_par1_atom1", Text: "a"},
		{GraphID: "chap0_par1_atom2", Text: "b"},
	}

	graphIDToDBID, err := m.PersistAtoms(context.Background(), atoms)
	if err != nil {
		t.Fatalf("PersistAtoms() error = %v", err)
	}
	if len(graphIDToDBID) != 2 {
		t.Fatalf("graphIDToDBID = %+v, want 2 entries", graphIDToDBID)
	}
	if graphIDToDBID["chap0_par1_atom1"] == graphIDToDBID["chap0_par1_atom2"] {
		t.Error("expected distinct db ids for distinct atoms")
	}
}

func TestMemoryCollaborator_PersistRelationships_Accumulates(t *testing.T) {
	m := NewMemoryCollaborator()
	rels := []RelationshipRecord{{SourceAtomDBID: 1, TargetAtomDBID: 2, Type: "supports"}}

	if err := m.PersistRelationships(context.Background(), rels); err != nil {
		t.Fatalf("PersistRelationships() error = %v", err)
	}
	if err := m.PersistRelationships(context.Background(), rels); err != nil {
		t.Fatalf("PersistRelationships() error = %v", err)
	}
	if len(m.Relationships) != 2 {
		t.Errorf("Relationships = %+v, want 2 entries across both calls", m.Relationships)
	}
}

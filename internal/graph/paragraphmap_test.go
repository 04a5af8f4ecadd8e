package graph

import "testing"

func TestApplyParagraphIDMap_DropsUnmappedAtoms(t *testing.T) {
	atoms := []AnnotatedAtom{
		{ID: "a1", ParagraphID: 1},
		{ID: "a2", ParagraphID: 2},
	}
	m := ParagraphIDMap{1: 100}

	mapped, dropped := ApplyParagraphIDMap(atoms, m, nil)

	if len(mapped) != 1 || mapped[0].PersistenceParagraphID != 100 {
		t.Errorf("mapped = %+v, want one atom with persistence id 100", mapped)
	}
	if len(dropped) != 1 || dropped[0] != 2 {
		t.Errorf("dropped = %+v, want [2]", dropped)
	}
}

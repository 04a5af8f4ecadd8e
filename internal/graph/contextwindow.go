package graph

import (
	"github.com/corpusgraph/corpusgraph/internal/classifier"
	"github.com/corpusgraph/corpusgraph/internal/structure"
)

// paragraphSequence is one ordered run of paragraphs that shares a single
// context-window scope: either a chapter's own paragraphs (no subsections)
// or one subsection's paragraphs (spec.md §4.2.1 — "chapter-level paragraphs
// form their own local sequence; each subsection within a chapter is an
// independent sequence").
type paragraphSequence struct {
	paragraphs []*structure.StructureNode
}

// contextWindow builds the local context window for the atom at
// (paragraphIndex, atomIndex) within seq: the previous paragraph's atoms
// (empty for the sequence's first paragraph) followed by the atoms earlier
// in the current paragraph, per spec.md §4.2.1. The window is paragraph-
// local, not a running accumulation across the whole sequence.
func contextWindow(seq paragraphSequence, paragraphIndex, atomIndex int) []classifier.ContextAtom {
	var window []classifier.ContextAtom

	if paragraphIndex > 0 {
		prior := seq.paragraphs[paragraphIndex-1]
		for _, a := range prior.Atoms {
			window = append(window, classifier.ContextAtom{ID: a.ID, Text: a.Text})
		}
	}

	current := seq.paragraphs[paragraphIndex]
	for i := 0; i < atomIndex; i++ {
		window = append(window, classifier.ContextAtom{ID: current.Atoms[i].ID, Text: current.Atoms[i].Text})
	}

	return window
}

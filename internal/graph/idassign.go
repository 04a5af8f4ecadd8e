package graph

import (
	"fmt"

	"github.com/corpusgraph/corpusgraph/internal/structure"
)

// assignChapterAtomID builds the chap{C}_par{P}_atom{N} id for a chapter-level
// paragraph atom, per spec.md §4.2.1. C is the 0-based chapter iteration
// index (not structure.Chapter.Number, which is the number parsed from the
// chapter's header); P and N are the paragraph's structural id and the atom's
// emission-order index.
func assignChapterAtomID(chapterIndex int, paragraphID int, atomIndex int) string {
	return fmt.Sprintf("chap%d_par%d_atom%d", chapterIndex, paragraphID, atomIndex)
}

// assignSubsectionAtomID builds the chap{C}_sec{S}_par{P}_atom{N} id for an
// atom inside a subsection.
func assignSubsectionAtomID(chapterIndex, subsectionID, paragraphID, atomIndex int) string {
	return fmt.Sprintf("chap%d_sec%d_par%d_atom%d", chapterIndex, subsectionID, paragraphID, atomIndex)
}

// stampAtomIDs fills in Atom.ID across every paragraph of a single chapter,
// chapter-level paragraphs and each subsection independently, since each is
// its own addressing scope.
func stampAtomIDs(chapterIndex int, ch *structure.Chapter) {
	if len(ch.Subsections) == 0 {
		for _, p := range ch.Paragraphs {
			for i := range p.Atoms {
				p.Atoms[i].ID = assignChapterAtomID(chapterIndex, p.ID, p.Atoms[i].Index)
			}
		}
		return
	}
	for _, sub := range ch.Subsections {
		for _, p := range sub.Paragraphs {
			for i := range p.Atoms {
				p.Atoms[i].ID = assignSubsectionAtomID(chapterIndex, sub.ID, p.ID, p.Atoms[i].Index)
			}
		}
	}
}

package graph

import (
	"context"
	"fmt"

	"github.com/corpusgraph/corpusgraph/internal/ontology"
	"github.com/corpusgraph/corpusgraph/internal/structure"
)

// Run drives both stages of the Graph Constructor end to end: Build
// classifies every atom, then Prune checks the proposed relationships
// against ont and materializes the surviving edges. The returned Report
// also folds in doc's unlinked notes/citations counts, per spec.md §7's
// structured report.
func (c *Constructor) Run(ctx context.Context, doc *structure.Document, ont *ontology.Ontology) (*Result, error) {
	atoms, err := c.Build(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("build stage failed: %w", err)
	}

	surviving, edges, report := Prune(ont, atoms)
	report.UnlinkedNotes = countUnlinkedNotes(doc)
	report.UnlinkedCitations = len(doc.UnlinkedCitations)

	if report.DroppedAtoms > 0 || report.DroppedEdges > 0 || report.UnlinkedNotes > 0 || report.UnlinkedCitations > 0 {
		c.progress.setStatus(StatusCompleteWithWarnings)
	} else {
		c.progress.setStatus(StatusComplete)
	}

	return &Result{Atoms: surviving, Relationships: edges, Report: report}, nil
}

// countUnlinkedNotes counts the references bucketed under the parser's
// "Unlinked Notes" pseudo-chapter key (spec.md §4.1.2 step 11).
func countUnlinkedNotes(doc *structure.Document) int {
	return len(doc.NotesByChapter["Unlinked Notes"])
}

// Package graph implements the Graph Constructor: it turns a structure.Document's
// atoms into a typed, validated graph by classifying every atom through a
// classifier client and pruning the proposed relationships against an
// ontology (spec.md §4.2).
package graph

// AnnotatedAtom is one atom after classification, before pruning.
type AnnotatedAtom struct {
	ID             string
	ParagraphID    int
	Text           string
	Classification string
	Justification  string
	StartOffset    int
	EndOffset      int
	Relationships  []ProposedRelationship
}

// ProposedRelationship is one raw, unvalidated relationship returned by the
// classifier for its owning atom, not yet checked against the ontology.
type ProposedRelationship struct {
	TargetID      string
	Type          string
	Direction     string
	Justification string
}

// ValidatedRelationship is a pruned, ontology-conformant edge in canonical
// outgoing form: SourceAtomID always names the edge's true source, with
// incoming proposals swapped during materialization (spec.md §4.2.3).
type ValidatedRelationship struct {
	SourceAtomID  string
	TargetAtomID  string
	Type          string
	Justification string
}

// Status is the Graph Constructor's run-level state machine (spec.md
// §4.2.1).
type Status string

const (
	StatusIdle                 Status = "idle"
	StatusBuilding             Status = "building"
	StatusFiltering            Status = "filtering"
	StatusComplete             Status = "complete"
	StatusCompleteWithWarnings Status = "complete_with_warnings"
	StatusError                Status = "error"
)

// Progress is a point-in-time snapshot returned by a progress query.
type Progress struct {
	Status    Status
	Total     int
	Processed int
	Percent   float64
}

// Report is the structured, end-of-run summary spec.md §7 requires:
// counts of dropped atoms, dropped edges, unlinked notes, unlinked
// citations, plus the parser paragraph id of every atom skipped for lack of
// a paragraph id mapping (one entry per skipped atom).
type Report struct {
	TotalAtoms         int
	DroppedAtoms       int
	DroppedEdges       int
	UnlinkedNotes      int
	UnlinkedCitations  int
	UnmappedParagraphs []int
}

// Result is Constructor.Run's return value: the pruned node/edge set plus the
// run's structured report.
type Result struct {
	Atoms         []AnnotatedAtom
	Relationships []ValidatedRelationship
	Report        Report
}

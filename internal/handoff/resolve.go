package handoff

import (
	"log/slog"

	"github.com/corpusgraph/corpusgraph/internal/graph"
)

// BuildAtomRecords converts the graph package's paragraph-id-mapped atoms
// into persistence-ready records, using each atom's id as its graph_id
// (spec.md §6.4).
func BuildAtomRecords(documentID int, atoms []graph.MappedAtom) []AtomRecord {
	out := make([]AtomRecord, len(atoms))
	for i, a := range atoms {
		out[i] = AtomRecord{
			DocumentID:     documentID,
			ParagraphID:    a.PersistenceParagraphID,
			GraphID:        a.ID,
			Text:           a.Text,
			Classification: a.Classification,
			StartOffset:    a.StartOffset,
			EndOffset:      a.EndOffset,
		}
	}
	return out
}

// BuildRelationshipRecords resolves the graph package's validated
// relationships (keyed by graph id) to persistence ids via the
// graph_id -> db_id map PersistAtoms returned. A relationship whose source
// or target atom was dropped before persistence (no db id) is itself
// dropped with a warning, since it can no longer be materialized.
func BuildRelationshipRecords(rels []graph.ValidatedRelationship, graphIDToDBID map[string]int, logger *slog.Logger) []RelationshipRecord {
	if logger == nil {
		logger = slog.Default()
	}

	out := make([]RelationshipRecord, 0, len(rels))
	for _, r := range rels {
		sourceID, ok := graphIDToDBID[r.SourceAtomID]
		if !ok {
			logger.Warn("dropping relationship with unresolved source atom", "source_graph_id", r.SourceAtomID)
			continue
		}
		targetID, ok := graphIDToDBID[r.TargetAtomID]
		if !ok {
			logger.Warn("dropping relationship with unresolved target atom", "target_graph_id", r.TargetAtomID)
			continue
		}
		out = append(out, RelationshipRecord{
			SourceAtomDBID: sourceID,
			TargetAtomDBID: targetID,
			Type:           r.Type,
			Justification:  r.Justification,
		})
	}
	return out
}

package graph

import "log/slog"

// ParagraphIDMap translates a parser-local paragraph id into the id the
// persistence collaborator assigned it after inserting the structure tree
// (spec.md §4.2.4).
type ParagraphIDMap map[int]int

// MappedAtom is an AnnotatedAtom whose ParagraphID has been translated
// through a ParagraphIDMap, ready for handoff.
type MappedAtom struct {
	AnnotatedAtom
	PersistenceParagraphID int
}

// ApplyParagraphIDMap translates every atom's paragraph id through m,
// dropping (and logging) any atom whose parser-local paragraph id has no
// entry — spec.md §4.2.4 treats a missing key as a warning, not a fatal
// error, since the rest of the graph is still usable.
func ApplyParagraphIDMap(atoms []AnnotatedAtom, m ParagraphIDMap, logger *slog.Logger) ([]MappedAtom, []int) {
	if logger == nil {
		logger = slog.Default()
	}

	var mapped []MappedAtom
	var dropped []int
	for _, a := range atoms {
		persistenceID, ok := m[a.ParagraphID]
		if !ok {
			logger.Warn("dropping atom with unmapped paragraph id", "atom_id", a.ID, "paragraph_id", a.ParagraphID)
			dropped = append(dropped, a.ParagraphID)
			continue
		}
		mapped = append(mapped, MappedAtom{AnnotatedAtom: a, PersistenceParagraphID: persistenceID})
	}
	return mapped, dropped
}

package handoff

import (
	"context"
	"sync"
)

// MemoryCollaborator is an in-memory PersistenceCollaborator: it stands in
// for the real database collaborator spec.md §6 deliberately keeps out of
// scope, used by tests and by the CLI's build command.
type MemoryCollaborator struct {
	mu sync.Mutex

	nextDocumentID  int
	nextParagraphID int
	nextAtomID      int

	Documents     map[int]DocumentRecord
	Paragraphs    map[int]StructureNodeInput
	Atoms         map[int]AtomRecord
	Relationships []RelationshipRecord
}

// NewMemoryCollaborator builds an empty in-memory collaborator.
func NewMemoryCollaborator() *MemoryCollaborator {
	return &MemoryCollaborator{
		nextDocumentID:  1,
		nextParagraphID: 1,
		nextAtomID:      1,
		Documents:       make(map[int]DocumentRecord),
		Paragraphs:      make(map[int]StructureNodeInput),
		Atoms:           make(map[int]AtomRecord),
	}
}

// PersistStructure assigns an id to doc and a persistence id to every
// paragraph node in tree, returning the parser-id -> persistence-id map
// non-paragraph nodes are not mapped, per spec.md §4.2.4's scope.
func (m *MemoryCollaborator) PersistStructure(ctx context.Context, doc DocumentRecord, tree []StructureNodeInput) (int, map[int]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	documentID := m.nextDocumentID
	m.nextDocumentID++
	m.Documents[documentID] = doc

	paragraphIDMap := make(map[int]int)
	for _, node := range tree {
		if !node.IsParagraph {
			continue
		}
		persistenceID := m.nextParagraphID
		m.nextParagraphID++
		m.Paragraphs[persistenceID] = node
		paragraphIDMap[node.ParserID] = persistenceID
	}

	return documentID, paragraphIDMap, nil
}

// PersistAtoms assigns a db id to every atom, returning the graph_id ->
// db_id map relationship resolution needs.
func (m *MemoryCollaborator) PersistAtoms(ctx context.Context, atoms []AtomRecord) (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	graphIDToDBID := make(map[string]int, len(atoms))
	for _, a := range atoms {
		dbID := m.nextAtomID
		m.nextAtomID++
		m.Atoms[dbID] = a
		graphIDToDBID[a.GraphID] = dbID
	}
	return graphIDToDBID, nil
}

// PersistRelationships appends rels to the in-memory store.
func (m *MemoryCollaborator) PersistRelationships(ctx context.Context, rels []RelationshipRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Relationships = append(m.Relationships, rels...)
	return nil
}

var _ PersistenceCollaborator = (*MemoryCollaborator)(nil)

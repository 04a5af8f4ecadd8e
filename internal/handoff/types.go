// Package handoff types the persistence-collaborator contract spec.md §6.4
// describes in prose: the core never owns a database connection, it only
// hands typed batches to whatever collaborator the caller wires in.
package handoff

import "context"

// DocumentRecord is the one document-level record handed to the
// collaborator (spec.md §6.4).
type DocumentRecord struct {
	Title         string
	RawContent    string
	ParsedContent any // opaque parsed tree, collaborator-defined encoding
}

// StructureNodeInput is one node of the structure tree as the core sees it,
// before the collaborator assigns it a persistence id. ParserID is the
// parser-local id (chapter number, or subsection/paragraph id within its
// parent); ParentIndex indexes into the same slice passed to
// PersistStructure, or -1 for a root node.
type StructureNodeInput struct {
	Kind        string
	Title       string
	ParserID    int
	ParentIndex int
	StartOffset int
	EndOffset   int
	IsParagraph bool
}

// AtomRecord is one atom ready for persistence: GraphID is the temporary
// key proposed relationships reference before db ids exist (spec.md §6.4,
// §9's "string-keyed graph ids" note).
type AtomRecord struct {
	DocumentID     int
	ParagraphID    int // already translated through paragraph_id_map
	GraphID        string
	Text           string
	Classification string
	StartOffset    int
	EndOffset      int
}

// RelationshipRecord is one validated edge, keyed by persistence-assigned
// atom ids rather than graph ids.
type RelationshipRecord struct {
	SourceAtomDBID int
	TargetAtomDBID int
	Type           string
	Justification  string
}

// PersistenceCollaborator is the core's only view of persistence: three
// batch operations, none of which the core's own packages implement.
type PersistenceCollaborator interface {
	// PersistStructure inserts the document record and its structure tree,
	// returning a paragraph_id_map translating each paragraph node's
	// ParserID to the collaborator's persistence id (spec.md §4.2.4).
	PersistStructure(ctx context.Context, doc DocumentRecord, tree []StructureNodeInput) (documentID int, paragraphIDMap map[int]int, err error)

	// PersistAtoms inserts a batch of atoms, returning a graph_id -> db_id
	// map so relationship records can be resolved to persistence ids.
	PersistAtoms(ctx context.Context, atoms []AtomRecord) (graphIDToDBID map[string]int, err error)

	// PersistRelationships inserts a batch of already-resolved
	// relationship records.
	PersistRelationships(ctx context.Context, rels []RelationshipRecord) error
}

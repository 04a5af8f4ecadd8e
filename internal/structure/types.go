// Package structure implements the Structural Parser: it lifts a flat,
// normalized Markdown-ish string into a nested document tree (title,
// introduction sections, chapters, subsections, paragraphs) plus the
// cross-cutting artefacts (notes, footnotes, bibliography, in-text
// citations) that reference positions within it, and finally decomposes
// each paragraph into an ordered sequence of offset-carrying atoms.
package structure

// NodeKind tags the variant of a StructureNode.
type NodeKind string

const (
	KindIntroduction NodeKind = "introduction"
	KindChapter      NodeKind = "chapter"
	KindSubsection   NodeKind = "subsection"
	KindEndSection   NodeKind = "end_section"
	KindParagraph    NodeKind = "paragraph"
)

// AtomKind tags the variant of an Atom.
type AtomKind string

const (
	AtomSentence AtomKind = "sentence"
	AtomCitation AtomKind = "citation"
)

// StructureNode is one node of the nested document outline.
type StructureNode struct {
	Kind        NodeKind
	Title       string
	StartOffset int
	EndOffset   int
	Text        string
	Children    []*StructureNode
	Parent      *StructureNode

	// ID is the parser-local 1-based id within the node's scope (chapter
	// number, or subsection/paragraph id within its parent).
	ID int

	// Atoms holds this paragraph's decomposed atoms in reading order, per
	// spec step 4.1.3. Only populated for KindParagraph nodes belonging to
	// a chapter or subsection (see Options.DecomposeEverywhere).
	Atoms []Atom
}

// Atom is the smallest classifiable textual unit.
type Atom struct {
	// ID has the form chap{C}[_sec{S}]_par{P}_atom{N}, unique within a
	// document. It is assigned by the Graph Constructor (§4.2.1), not
	// here; this package only produces Index, the 1-based emission-order
	// position within ParagraphID, which the Graph Constructor combines
	// with chapter/subsection/paragraph addressing to build ID.
	ID          string
	ParagraphID int
	Index       int
	Text        string
	StartOffset int
	EndOffset   int
	Kind        AtomKind
}

// Note is a numbered item listed under a Notes heading.
type Note struct {
	Identifier string
	Text       string
}

// NoteReference is one inline marker occurrence, offset into the original
// (pre-normalization) text per spec.md §4.1.
type NoteReference struct {
	Identifier       string
	OffsetInOriginal int
}

// Footnote holds the parallel reference/definition lists for [^id] markers,
// independent of Notes.
type Footnote struct {
	References  []FootnoteMarker
	Definitions []FootnoteDefinition
}

// FootnoteMarker is one [^id] reference occurrence.
type FootnoteMarker struct {
	Identifier  string
	StartOffset int
	EndOffset   int
}

// FootnoteDefinition is one [^id]: text definition.
type FootnoteDefinition struct {
	Identifier  string
	Text        string
	StartOffset int
	EndOffset   int
}

// BibliographyEntry is one parsed reference-list entry.
type BibliographyEntry struct {
	Key         string // lower(last_name)_year
	Author      string
	Year        string
	FullText    string
	StartOffset int
	EndOffset   int
	Citations   []*InTextCitation
}

// InTextCitation is one parenthetical or bare-year citation found in body
// text.
type InTextCitation struct {
	Author      string
	Year        string
	PageInfo    string
	FullText    string
	StartOffset int
	EndOffset   int
	Unlinked    bool
}

// IntroSection is a front-matter section discovered before the first
// chapter (Contents, Introduction, Preface, Prologue, Acknowledgements).
type IntroSection struct {
	Title        string
	StartOffset  int
	ContentStart int
	EndOffset    int
	Text         string
	Paragraphs   []*StructureNode
}

// EndSection is a back-matter section discovered after the last chapter
// (Bibliography, Index, References, Appendix, Glossary, document-level
// Notes, etc).
type EndSection struct {
	Title       string
	StartOffset int
	EndOffset   int
	Text        string
	Paragraphs  []*StructureNode
}

// Chapter is a top-level division detected by a numbered heading.
type Chapter struct {
	Number         int
	Title          string
	StartOffset    int
	EndOffset      int
	HeaderEndOffset int
	Subsections    []*Subsection
	Paragraphs     []*StructureNode // only populated when there are no subsections
}

// Subsection is a heading-delimited division inside a Chapter.
type Subsection struct {
	ID          int
	Title       string
	StartOffset int
	EndOffset   int
	Text        string
	Paragraphs  []*StructureNode
}

// Document is the root of the Structural Parser's output.
type Document struct {
	Title          string
	RawText        string // pre-normalization
	NormalizedText string

	IntroSections []*IntroSection
	Chapters      []*Chapter
	EndSections   []*EndSection

	Notes          map[string]*Note
	NoteReferences []NoteReference
	// NotesByChapter maps a chapter title to the notes linked to it; the
	// bucket "Unlinked Notes" collects references outside any chapter
	// range, per spec.md §4.1.2 step 11.
	NotesByChapter map[string][]*Note

	Footnotes Footnote

	BibliographyEntries []*BibliographyEntry
	UnlinkedCitations   []*InTextCitation
}

// Options tunes parser behavior for callers per spec.md §9's recorded open
// questions.
type Options struct {
	// FallbackMinChars is the minimum body length (chars) a fallback
	// chapter-header match must expose to be accepted. Default 1000.
	FallbackMinChars int
	// DecomposeEverywhere, when true, also decomposes introduction and
	// end-section paragraphs into atoms (earlier source revisions did this
	// unconditionally; the current default skips them).
	DecomposeEverywhere bool
}

// DefaultOptions returns the parser defaults: FallbackMinChars of 1000 and
// DecomposeEverywhere disabled.
func DefaultOptions() Options {
	return Options{FallbackMinChars: 1000}
}

// PreChunkedChapter is one chapter boundary supplied by a caller that
// already knows chapter boundaries (e.g. from a PDF table of contents),
// bypassing intro/chapter/subsection discovery per spec.md §9.
type PreChunkedChapter struct {
	Title string
	Text  string
}

package structure

import (
	"strings"

	"github.com/corpusgraph/corpusgraph/internal/textproc"
)

// Parse implements spec §4.1.2's fixed-order discovery pipeline end to end:
// normalize, then title, intro sections, end sections, chapters,
// subsections, paragraphs, atom decomposition, notes, footnotes, note
// references, note linking, in-text citations, and bibliography linking,
// in that order (later steps depend on earlier ones; reordering them
// changes results).
func Parse(raw string, opts Options) (*Document, error) {
	normalized := textproc.Normalize(raw)

	doc := &Document{
		RawText:        raw,
		NormalizedText: normalized,
	}
	doc.Title = findTitle(normalized)

	doc.IntroSections = findIntroSections(normalized, firstChapterHeaderStart(normalized))

	doc.EndSections = findEndSections(normalized)

	doc.Chapters = findChapters(normalized, doc.IntroSections, doc.EndSections, opts)

	findChapterSubsections(normalized, doc.Chapters)

	for _, ch := range doc.Chapters {
		if len(ch.Subsections) == 0 {
			ch.Paragraphs = splitIntoParagraphs(normalized[ch.HeaderEndOffset:ch.EndOffset], ch.HeaderEndOffset)
			decomposeParagraphsInPlace(ch.Paragraphs)
			continue
		}
		for _, sub := range ch.Subsections {
			// sub.Text == normalized[contentStart:sub.EndOffset], so its base
			// offset is exactly sub.EndOffset - len(sub.Text).
			sub.Paragraphs = splitIntoParagraphs(sub.Text, sub.EndOffset-len(sub.Text))
			decomposeParagraphsInPlace(sub.Paragraphs)
		}
	}

	// Intro and end-section paragraphs never get atoms unless the caller
	// opted into DecomposeEverywhere (spec step 7).
	for _, s := range doc.IntroSections {
		s.Paragraphs = splitIntoParagraphs(s.Text, s.ContentStart)
		if opts.DecomposeEverywhere {
			decomposeParagraphsInPlace(s.Paragraphs)
		}
	}
	for _, s := range doc.EndSections {
		// s.Text == normalized[contentStart:s.EndOffset].
		s.Paragraphs = splitIntoParagraphs(s.Text, s.EndOffset-len(s.Text))
		if opts.DecomposeEverywhere {
			decomposeParagraphsInPlace(s.Paragraphs)
		}
	}

	doc.Notes = findNotes(normalized)
	doc.Footnotes = findFootnotes(normalized)

	refs := findNoteReferences(raw)
	doc.NoteReferences = refs
	normalizedOffsets := noteReferenceNormalizedOffsets(normalized)

	var notesRanges [][2]int
	for _, s := range doc.EndSections {
		if strings.EqualFold(s.Title, "Notes") {
			notesRanges = append(notesRanges, [2]int{s.StartOffset, s.EndOffset})
		}
	}
	doc.NotesByChapter = linkNotesToText(doc.Chapters, doc.Notes, refs, notesRanges, normalizedOffsets)

	var allParagraphs []*StructureNode
	for _, ch := range doc.Chapters {
		if len(ch.Subsections) == 0 {
			allParagraphs = append(allParagraphs, ch.Paragraphs...)
			continue
		}
		for _, sub := range ch.Subsections {
			allParagraphs = append(allParagraphs, sub.Paragraphs...)
		}
	}
	citations := findIntextCitations(allParagraphs)

	var bibEntries []*BibliographyEntry
	for _, s := range doc.EndSections {
		bibEntries = append(bibEntries, parseBibliographyEntries(s)...)
	}
	doc.BibliographyEntries = bibEntries
	doc.UnlinkedCitations = linkCitationsToBibliography(citations, bibEntries)

	if err := validate(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParsePreChunked implements the alternate entry point for callers that
// already know chapter boundaries (a PDF table of contents, for instance):
// it skips intro/chapter/subsection discovery entirely and builds each
// supplied chapter's paragraphs and atoms directly from its given text.
func ParsePreChunked(chapters []PreChunkedChapter) *Document {
	doc := &Document{}

	var rawCombined, normCombined string
	var cursor int
	for i, pc := range chapters {
		normalized := textproc.Normalize(pc.Text)
		start := cursor
		paragraphs := splitIntoParagraphs(normalized, start)
		decomposeParagraphsInPlace(paragraphs)

		doc.Chapters = append(doc.Chapters, &Chapter{
			Number:      i + 1,
			Title:       pc.Title,
			StartOffset: start,
			EndOffset:   start + len(normalized),
			Paragraphs:  paragraphs,
		})

		rawCombined += pc.Text + "\n\n"
		normCombined += normalized + "\n\n"
		cursor = start + len(normalized) + 2
	}
	doc.RawText = rawCombined
	doc.NormalizedText = normCombined
	return doc
}

// decomposeParagraphsInPlace runs decomposeParagraph over each paragraph
// and stamps ParagraphID onto the results, implementing spec step 7 ("only
// for paragraphs belonging to chapters/subsections").
func decomposeParagraphsInPlace(paragraphs []*StructureNode) {
	for _, p := range paragraphs {
		atoms := decomposeParagraph(p.Text, p.StartOffset)
		for i := range atoms {
			atoms[i].ParagraphID = p.ID
		}
		p.Atoms = atoms
	}
}

func firstChapterHeaderStart(text string) int {
	first := -1
	for _, m := range chapterPrimaryPattern.FindAllStringIndex(text, -1) {
		first = m[0]
		break
	}
	if first >= 0 {
		return first
	}
	for _, m := range chapterFallbackPattern.FindAllStringIndex(text, -1) {
		return m[0]
	}
	return -1
}

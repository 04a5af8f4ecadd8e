package structure

import "regexp"

// The headings this parser hunts for are an informal grammar, not a formal
// one (spec.md §9): every pattern the discovery steps need lives here so
// the rest of the package reads as plain functions over strings.
var (
	titlePattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)

	introHeadingPattern = regexp.MustCompile(
		`(?mi)^#{1,3}\s*(Contents|Introduction|Preface|Prologue|(?:Publisher'?s\s+)?Acknowledgements?)\s*$`)

	endSectionHeadingPattern = regexp.MustCompile(
		`(?mi)^#{1,3}\s*(Bibliography|Index|References|Appendix|Appendices|Glossary|(?:Publisher'?s\s+)?Acknowledgements?|Endnotes|Afterword|Notes)\s*$`)

	// chapterPrimaryPattern matches "# 3\n\n## Title" style headers: a
	// numbered header line followed (after blank lines) by a title line.
	chapterPrimaryPattern = regexp.MustCompile(
		`(?m)^#\s*(\d+|[IVXLCDM]+)\s*\n+\s*#{1,2}\s*(.+)$`)

	// chapterFallbackPattern matches a lone numbered header with no
	// attached title line.
	chapterFallbackPattern = regexp.MustCompile(`(?m)^#+\s*(\d+|[IVXLCDM]+)\s*$`)

	subsectionHeadingPattern = regexp.MustCompile(`(?m)^#{2,6}\s+(.+)$`)

	notesListItemPattern = regexp.MustCompile(`(?m)^\s*\(?(\d+|[ivxlcdm]+)\)?\.?\s+(.+)$`)

	notesHeadingPattern = regexp.MustCompile(`(?mi)^#{1,3}\s*Notes\s*$`)

	footnoteRefPattern = regexp.MustCompile(`\[\^([^\]]+)\](?:[^:]|$)`)
	footnoteDefPattern = regexp.MustCompile(`(?m)^\[\^([^\]]+)\]:\s*(.+)$`)

	noteMarkerOriginalPattern = regexp.MustCompile(`\$\{\s*\}\^\{(\d+(?:,\d+)*)\}\$`)

	// citationSplitPattern matches citation-kind spans: parenthetical
	// author-year groups, footnote markers, and note markers.
	citationSplitPattern = regexp.MustCompile(
		`\s*\([^)]*\d{4}[^)]*\)|\s*\[\^?\d+\]|\s*\$\{\s*\}\^\{\d+(?:,\d+)*\}\$`)

	parenAuthorYearPattern = regexp.MustCompile(`^([A-Z][\p{L}'\-]+(?:\s+(?:and|&)\s+[A-Z][\p{L}'\-]+)?(?:\s+et al\.?)?)\s+(\d{4}[a-z]?|forthcoming)(?::\s*([\d,\s\-]+))?`)
	bareYearPattern        = regexp.MustCompile(`^(\d{4}[a-z]?|forthcoming)(?::\s*([\d,\s\-]+))?`)
	explicitAuthorPattern  = regexp.MustCompile(`\b([A-Z][\p{L}'\-]+)\s+\(?(\d{4}[a-z]?|forthcoming)`)

	bibliographyEntryPattern = regexp.MustCompile(
		`(?m)^([A-Z][\p{L}'\-]+(?:,?\s+[A-Z]\.?(?:\s*[A-Z]\.?)?)*)\.\s+(\d{4}[a-z]?|forthcoming)\.\s+(.*)$`)
)

// sentenceEnderPattern (reused from the normalizer's output) flags a
// fully-terminated sentence.
var sentenceEnderPattern = regexp.MustCompile(`[.!?]["')\]]*$`)

package textproc

import "regexp"

// All regexes the Normalizer needs to decide whether two OCR lines belong to
// the same sentence. These mirror (a narrower subset of) the structural
// discovery patterns: the Normalizer only needs to recognize a structural
// line well enough to avoid de-wrapping across it, not to parse it.
var (
	// noteMarkerPattern matches the inline note marker ${ }^{1,2}$.
	noteMarkerPattern = regexp.MustCompile(`\$\{\s*\}\^\{\d+(?:,\d+)*\}\$`)

	headingPattern        = regexp.MustCompile(`^#{1,6}\s+\S`)
	chapterHeaderPattern  = regexp.MustCompile(`^#\s*(?:\d+|[IVXLCDM]+)\s*$`)
	numberedListItemPattern = regexp.MustCompile(`^\s*\(?(?:\d+|[ivxlcdm]+)\)?\.?\s+\S`)
	footnoteRefPattern    = regexp.MustCompile(`^\s*\[\^[^\]]+\](?::)?`)
	notesHeaderPattern    = regexp.MustCompile(`(?i)^#{0,6}\s*notes\s*$`)
	sectionKeywordPattern = regexp.MustCompile(`(?i)^#{0,6}\s*(bibliography|index|references|appendix|appendices|glossary|acknowledgements?|endnotes|afterword|contents|introduction|preface|prologue|(?:publisher'?s\s+)?acknowledgements?)\s*$`)

	sentenceEnderPattern = regexp.MustCompile(`[.!?]["')\]]*\s*$`)
)

// isStructuralLine reports whether line looks like a heading, list item,
// footnote marker, note marker, or section-keyword header, any of which
// blocks the Normalizer from joining it to an adjacent line.
func isStructuralLine(line string) bool {
	switch {
	case headingPattern.MatchString(line):
		return true
	case chapterHeaderPattern.MatchString(line):
		return true
	case numberedListItemPattern.MatchString(line):
		return true
	case footnoteRefPattern.MatchString(line):
		return true
	case notesHeaderPattern.MatchString(line):
		return true
	case sectionKeywordPattern.MatchString(line):
		return true
	case noteMarkerPattern.MatchString(line):
		return true
	default:
		return false
	}
}

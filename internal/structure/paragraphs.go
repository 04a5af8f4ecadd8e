package structure

import "regexp"

var paragraphSplitPattern = regexp.MustCompile(`\n{2,}`)

// splitIntoParagraphs implements spec step 4.1.2.6 for one prose block: the
// de-wrap transform itself already ran once, document-wide, during
// textproc.Normalize, so this step only needs to split on blank lines,
// strip, and compute absolute offsets back into blockStart's coordinate
// space.
func splitIntoParagraphs(blockText string, blockStart int) []*StructureNode {
	var paragraphs []*StructureNode
	id := 1

	pos := 0
	for pos <= len(blockText) {
		nextBreak := paragraphSplitPattern.FindStringIndex(blockText[pos:])
		var raw string
		var rawStart int
		if nextBreak == nil {
			raw = blockText[pos:]
			rawStart = pos
			pos = len(blockText) + 1
		} else {
			raw = blockText[pos : pos+nextBreak[0]]
			rawStart = pos
			pos = pos + nextBreak[1]
		}

		start, end, text := trimWithOffsets(raw, rawStart)
		if text == "" {
			continue
		}

		paragraphs = append(paragraphs, &StructureNode{
			Kind:        KindParagraph,
			ID:          id,
			StartOffset: blockStart + start,
			EndOffset:   blockStart + end,
			Text:        text,
		})
		id++
	}
	return paragraphs
}

// trimWithOffsets strips leading/trailing whitespace from raw (which begins
// at baseOffset in its parent text) and returns the trimmed text's absolute
// start/end offsets relative to that same base.
func trimWithOffsets(raw string, baseOffset int) (start, end int, text string) {
	i, j := 0, len(raw)
	for i < j && isTrimSpace(raw[i]) {
		i++
	}
	for j > i && isTrimSpace(raw[j-1]) {
		j--
	}
	return baseOffset + i, baseOffset + j, raw[i:j]
}

func isTrimSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

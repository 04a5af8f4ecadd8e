package structure

// decomposeParagraph implements spec §4.1.3: split on the citation pattern
// first, tokenize the remaining sentence material, then split any sentence
// containing a colon at the first paren-depth-zero colon. Offsets are
// absolute, computed by locating each atom's text within its source
// paragraph and adding paragraphStart. The caller fills in ParagraphID.
func decomposeParagraph(paragraphText string, paragraphStart int) []Atom {
	var atoms []Atom

	emit := func(text string, relStart, relEnd int, kind AtomKind) {
		_ = relEnd
		start, end, trimmed := trimWithOffsets(text, relStart)
		if trimmed == "" {
			return
		}
		atoms = append(atoms, Atom{
			Text:        trimmed,
			StartOffset: paragraphStart + start,
			EndOffset:   paragraphStart + end,
			Kind:        kind,
		})
	}

	pos := 0
	for _, m := range citationSplitPattern.FindAllStringIndex(paragraphText, -1) {
		if m[0] > pos {
			emitSentenceMaterial(paragraphText[pos:m[0]], pos, emit)
		}
		emit(paragraphText[m[0]:m[1]], m[0], m[1], AtomCitation)
		pos = m[1]
	}
	if pos < len(paragraphText) {
		emitSentenceMaterial(paragraphText[pos:], pos, emit)
	}

	for i := range atoms {
		atoms[i].Index = i + 1
	}
	return atoms
}

func emitSentenceMaterial(text string, base int, emit func(string, int, int, AtomKind)) {
	for _, span := range splitSentences(text) {
		sentence := text[span[0]:span[1]]
		for _, half := range splitAtTopLevelColon(sentence) {
			emit(sentence[half[0]:half[1]], base+span[0]+half[0], base+span[0]+half[1], AtomSentence)
		}
	}
}

// splitAtTopLevelColon implements spec step 4.1.3.3: split a sentence at
// the first colon that appears at parenthesis-depth zero; colons inside
// (...) never split.
func splitAtTopLevelColon(sentence string) [][2]int {
	depth := 0
	for i := 0; i < len(sentence); i++ {
		switch sentence[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				return [][2]int{{0, i}, {i + 1, len(sentence)}}
			}
		}
	}
	return [][2]int{{0, len(sentence)}}
}

package structure

import "unicode/utf8"

// commonAbbreviations lists trailing-period tokens that do not end a
// sentence on their own. Adapted from the same abbreviation-aware
// sentence-boundary heuristic used elsewhere in the corpus, but rewritten
// as an offset-preserving scanner: it returns byte ranges into the
// original text instead of rebuilding normalized strings, since atoms must
// carry absolute offsets.
var commonAbbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"sr": true, "jr": true, "st": true, "vs": true, "etc": true,
	"e.g": true, "i.e": true, "cf": true, "al": true, "fig": true,
	"vol": true, "no": true, "ed": true, "eds": true, "trans": true,
	"inc": true, "ltd": true, "co": true, "corp": true,
}

// splitSentences returns the byte ranges of each sentence in text, using an
// abbreviation- and initials-aware period scan rather than a naive split on
// ". ".
func splitSentences(text string) [][2]int {
	var spans [][2]int
	start := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}

		end := i + 1
		// Swallow trailing closing punctuation/quotes. These can be
		// multi-byte (typographic quotes), so decode a rune at a time
		// rather than comparing raw bytes.
		for end < len(text) {
			r, size := utf8.DecodeRuneInString(text[end:])
			if !isClosingPunct(r) {
				break
			}
			end += size
		}

		if c == '.' && shouldSkipPeriodSplit(text, i) {
			i = end - 1
			continue
		}

		if !isBoundary(text, end) {
			continue
		}

		spans = append(spans, [2]int{start, end})
		// Advance past any whitespace to the next sentence start.
		for end < len(text) && isSpaceByte(text[end]) {
			end++
		}
		start = end
		i = end - 1
	}

	if start < len(text) {
		spans = append(spans, [2]int{start, len(text)})
	}
	return spans
}

func shouldSkipPeriodSplit(text string, periodIdx int) bool {
	// Ellipsis.
	if periodIdx+2 < len(text) && text[periodIdx+1] == '.' && text[periodIdx+2] == '.' {
		return true
	}
	if periodIdx > 0 && text[periodIdx-1] == '.' {
		return true
	}

	// Decimal number: digit on both sides.
	if periodIdx > 0 && periodIdx+1 < len(text) && isDigitByte(text[periodIdx-1]) && isDigitByte(text[periodIdx+1]) {
		return true
	}

	token := tokenBeforePeriod(text, periodIdx)
	if token == "" {
		return false
	}

	// Single initial, e.g. "J. Smith".
	if len(token) == 1 && isAlphaByte(token[0]) {
		return true
	}

	if commonAbbreviations[normalizeToken(token)] {
		return true
	}
	return false
}

func tokenBeforePeriod(text string, periodIdx int) string {
	j := periodIdx
	i := j
	for i > 0 && isAlphaByte(text[i-1]) {
		i--
	}
	return text[i:j]
}

func normalizeToken(tok string) string {
	out := make([]byte, len(tok))
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

// isBoundary checks whether pos marks a real sentence boundary: either the
// end of the text, or whitespace followed by a likely sentence start.
func isBoundary(text string, pos int) bool {
	if pos >= len(text) {
		return true
	}
	if !isSpaceByte(text[pos]) {
		return false
	}
	j := pos
	for j < len(text) && isSpaceByte(text[j]) {
		j++
	}
	if j >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[j:])
	return isLikelySentenceStart(r)
}

func isLikelySentenceStart(r rune) bool {
	if r >= 'A' && r <= 'Z' {
		return true
	}
	if r >= '0' && r <= '9' {
		return true
	}
	if isOpeningQuoteOrBracket(r) {
		return true
	}
	return false
}

func isClosingPunct(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '’', '”':
		return true
	}
	return false
}

func isOpeningQuoteOrBracket(r rune) bool {
	switch r {
	case '"', '\'', '(', '[', '‘', '“':
		return true
	}
	return false
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlphaByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

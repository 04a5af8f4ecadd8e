package textproc

import (
	"regexp"
	"strings"
)

var paragraphBreakPattern = regexp.MustCompile(`\n{2,}`)

// dewrap implements spec step 4.1.1.2: join mid-sentence OCR line breaks
// while leaving paragraph boundaries and structural lines untouched.
//
// Paragraph-break runs are stashed before joining and restored verbatim
// afterward, so "preserve double newlines as paragraph separators" holds
// even though the join pass itself only ever looks at single-newline
// boundaries within one paragraph-content block.
func dewrap(text string) string {
	breaks := paragraphBreakPattern.FindAllString(text, -1)
	blocks := paragraphBreakPattern.Split(text, -1)

	var b strings.Builder
	for i, block := range blocks {
		b.WriteString(joinBlockLines(block))
		if i < len(breaks) {
			b.WriteString(breaks[i])
		}
	}
	return b.String()
}

func joinBlockLines(block string) string {
	lines := strings.Split(block, "\n")
	if len(lines) == 1 {
		return block
	}

	var b strings.Builder
	b.WriteString(lines[0])
	for i := 1; i < len(lines); i++ {
		prev, cur := lines[i-1], lines[i]
		if shouldJoinLines(prev, cur) {
			b.WriteString(" ")
			b.WriteString(strings.TrimLeft(cur, " \t"))
		} else {
			b.WriteString("\n")
			b.WriteString(cur)
		}
	}
	return b.String()
}

// shouldJoinLines decides whether prev and cur are the same OCR-wrapped
// sentence: prev must not already end a sentence, and neither line may be a
// structural line (heading, list item, footnote, note marker, keyword
// header) the merge would otherwise swallow.
func shouldJoinLines(prev, cur string) bool {
	trimmedPrev := strings.TrimRight(prev, " \t")
	if trimmedPrev == "" || strings.TrimSpace(cur) == "" {
		return false
	}
	if sentenceEnderPattern.MatchString(trimmedPrev) {
		return false
	}
	if isStructuralLine(prev) || isStructuralLine(cur) {
		return false
	}
	return true
}

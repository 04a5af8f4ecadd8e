package structure

import "strings"

// findFootnotes implements spec step 4.1.2.9: an independent scan for
// [^id] references (excluding [^id]:) and [^id]: text definitions,
// terminated by a blank line or the next [^ marker.
func findFootnotes(text string) Footnote {
	var fn Footnote

	defs := footnoteDefPattern.FindAllStringSubmatchIndex(text, -1)
	defSpans := make([]int, 0, len(defs))
	for i, m := range defs {
		end := len(text)
		if i+1 < len(defs) {
			end = defs[i+1][0]
		}
		if idx := strings.Index(text[m[1]:end], "\n\n"); idx >= 0 {
			end = m[1] + idx
		}
		if idx := strings.Index(text[m[1]:end], "[^"); idx >= 0 {
			candidateEnd := m[1] + idx
			if candidateEnd < end {
				end = candidateEnd
			}
		}

		fn.Definitions = append(fn.Definitions, FootnoteDefinition{
			Identifier:  text[m[2]:m[3]],
			Text:        strings.TrimSpace(text[m[4]:end]),
			StartOffset: m[0],
			EndOffset:   end,
		})
		defSpans = append(defSpans, m[0], m[1])
	}

	for _, m := range footnoteRefPattern.FindAllStringSubmatchIndex(text, -1) {
		if withinAny(m[0], defSpans) {
			continue
		}
		fn.References = append(fn.References, FootnoteMarker{
			Identifier:  text[m[2]:m[3]],
			StartOffset: m[0],
			EndOffset:   m[3] + 1,
		})
	}

	return fn
}

func withinAny(pos int, spans []int) bool {
	for i := 0; i+1 < len(spans); i += 2 {
		if pos >= spans[i] && pos < spans[i+1] {
			return true
		}
	}
	return false
}

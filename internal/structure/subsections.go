package structure

import "strings"

// findChapterSubsections implements spec step 4.1.2.5: inside each
// chapter's content, match Markdown headings and assign 1-based ids.
func findChapterSubsections(text string, chapters []*Chapter) {
	for _, ch := range chapters {
		body := text[ch.HeaderEndOffset:ch.EndOffset]
		matches := subsectionHeadingPattern.FindAllStringSubmatchIndex(body, -1)
		if len(matches) == 0 {
			continue
		}

		for i, m := range matches {
			headerStart := ch.HeaderEndOffset + m[0]
			headerEnd := ch.HeaderEndOffset + m[1]
			contentStart := headerEnd
			if contentStart < ch.EndOffset && text[contentStart] == '\n' {
				contentStart++
			}

			end := ch.EndOffset
			if i+1 < len(matches) {
				end = ch.HeaderEndOffset + matches[i+1][0]
			}

			ch.Subsections = append(ch.Subsections, &Subsection{
				ID:          i + 1,
				Title:       strings.TrimSpace(body[m[2]:m[3]]),
				StartOffset: headerStart,
				EndOffset:   end,
				Text:        text[contentStart:end],
			})
		}
	}
}

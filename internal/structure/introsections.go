package structure

import "strings"

// findIntroSections implements spec step 4.1.2.2: search the prefix of the
// text preceding the first numbered chapter header for front-matter
// headings (Contents, Introduction, Preface, Prologue, Acknowledgements).
func findIntroSections(text string, firstChapterStart int) []*IntroSection {
	prefix := text
	if firstChapterStart >= 0 {
		prefix = text[:firstChapterStart]
	}

	matches := introHeadingPattern.FindAllStringSubmatchIndex(prefix, -1)
	if len(matches) == 0 {
		return nil
	}

	sections := make([]*IntroSection, 0, len(matches))
	for i, m := range matches {
		headerStart, headerEnd := m[0], m[1]
		contentStart := headerEnd
		if contentStart < len(prefix) && prefix[contentStart] == '\n' {
			contentStart++
		}

		end := len(prefix)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		} else if firstChapterStart >= 0 {
			end = firstChapterStart
		}

		sections = append(sections, &IntroSection{
			Title:        strings.TrimSpace(prefix[m[2]:m[3]]),
			StartOffset:  headerStart,
			ContentStart: contentStart,
			EndOffset:    end,
			Text:         text[contentStart:end],
		})
	}
	return sections
}

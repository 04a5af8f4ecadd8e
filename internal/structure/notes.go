package structure

import "strings"

// findNotes implements spec step 4.1.2.8: for every Notes heading anywhere
// in the document (chapter-scoped or document-level), walk the following
// numbered list items until a double newline not followed by another list
// item, producing identifier -> text.
func findNotes(text string) map[string]*Note {
	headings := notesHeadingPattern.FindAllStringIndex(text, -1)
	if len(headings) == 0 {
		return nil
	}

	notes := make(map[string]*Note)
	for _, h := range headings {
		body := text[h[1]:]
		parseNotesListItems(body, notes)
	}
	return notes
}

func parseNotesListItems(body string, notes map[string]*Note) {
	items := notesListItemPattern.FindAllStringSubmatchIndex(body, -1)
	for i, m := range items {
		identifier := body[m[2]:m[3]]
		contentStart := m[4]

		end := len(body)
		if i+1 < len(items) {
			end = items[i+1][0]
		}
		last := i+1 >= len(items)
		if idx := strings.Index(body[m[1]:end], "\n\n"); idx >= 0 {
			// A blank line ends this item; the walk stops here unless the
			// next list item follows it with nothing else in between.
			if strings.TrimSpace(body[m[1]+idx:end]) != "" {
				last = true
			}
			end = m[1] + idx
		}

		content := strings.TrimSpace(body[contentStart:end])
		if _, exists := notes[identifier]; !exists {
			notes[identifier] = &Note{Identifier: identifier, Text: content}
		}
		if last {
			return
		}
	}
}

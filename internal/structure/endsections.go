package structure

import "strings"

// lastChapterHeaderStart scans for the last numbered chapter header line in
// text, independent of the full chapter-discovery pass (which runs after
// end-section discovery per spec.md §4.1.2). It tries the primary
// heading-pair pattern first, falling back to a lone numbered header.
func lastChapterHeaderStart(text string) int {
	last := -1
	for _, m := range chapterPrimaryPattern.FindAllStringIndex(text, -1) {
		last = m[0]
	}
	if last >= 0 {
		return last
	}
	for _, m := range chapterFallbackPattern.FindAllStringIndex(text, -1) {
		last = m[0]
	}
	return last
}

// countNumberedChaptersBefore counts numbered chapter header lines
// appearing strictly before offset.
func countNumberedChaptersBefore(text string, offset int) int {
	n := 0
	for _, m := range chapterPrimaryPattern.FindAllStringIndex(text, -1) {
		if m[0] < offset {
			n++
		}
	}
	if n > 0 {
		return n
	}
	for _, m := range chapterFallbackPattern.FindAllStringIndex(text, -1) {
		if m[0] < offset {
			n++
		}
	}
	return n
}

// hasChapterHeaderAfter reports whether a numbered chapter header appears
// at or after offset.
func hasChapterHeaderAfter(text string, offset int) bool {
	for _, m := range chapterPrimaryPattern.FindAllStringIndex(text, -1) {
		if m[0] >= offset {
			return true
		}
	}
	for _, m := range chapterFallbackPattern.FindAllStringIndex(text, -1) {
		if m[0] >= offset {
			return true
		}
	}
	return false
}

// findEndSections implements spec step 4.1.2.3: after the last numbered
// chapter header, match back-matter headings. A "Notes" heading is
// document-level only when it sits in the last 15% of the text, at least
// three numbered chapters precede it, no numbered chapter follows, and its
// body exceeds 1000 characters; otherwise it is chapter-scoped and is left
// for findNotes to pick up.
func findEndSections(text string) []*EndSection {
	lastChapterStart := lastChapterHeaderStart(text)
	searchFrom := 0
	if lastChapterStart >= 0 {
		searchFrom = lastChapterStart
	}

	suffix := text[searchFrom:]
	matches := endSectionHeadingPattern.FindAllStringSubmatchIndex(suffix, -1)
	if len(matches) == 0 {
		return nil
	}

	var sections []*EndSection
	for i, m := range matches {
		headerStart := searchFrom + m[0]
		headerEnd := searchFrom + m[1]
		title := strings.TrimSpace(suffix[m[2]:m[3]])

		contentStart := headerEnd
		if contentStart < len(text) && text[contentStart] == '\n' {
			contentStart++
		}

		end := len(text)
		if i+1 < len(matches) {
			end = searchFrom + matches[i+1][0]
		}

		if strings.EqualFold(title, "Notes") {
			if !isDocumentLevelNotes(text, headerStart, end) {
				continue
			}
		}

		sections = append(sections, &EndSection{
			Title:       title,
			StartOffset: headerStart,
			EndOffset:   end,
			Text:        text[contentStart:end],
		})
	}
	return sections
}

func isDocumentLevelNotes(text string, headerStart, end int) bool {
	lastFifteenPercentStart := int(float64(len(text)) * 0.85)
	if headerStart < lastFifteenPercentStart {
		return false
	}
	if countNumberedChaptersBefore(text, headerStart) < 3 {
		return false
	}
	if hasChapterHeaderAfter(text, headerStart+1) {
		return false
	}
	if end-headerStart <= 1000 {
		return false
	}
	return true
}

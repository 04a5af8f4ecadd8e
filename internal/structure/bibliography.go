package structure

import "strings"

// parseBibliographyEntries implements spec step 4.1.2.13: within a
// Bibliography-style end section, match "AUTHOR. YEAR. REST" lines; each
// entry spans to just before the next match.
func parseBibliographyEntries(section *EndSection) []*BibliographyEntry {
	matches := bibliographyEntryPattern.FindAllStringSubmatchIndex(section.Text, -1)
	if len(matches) == 0 {
		return nil
	}

	entries := make([]*BibliographyEntry, 0, len(matches))
	for i, m := range matches {
		author := strings.TrimSpace(section.Text[m[2]:m[3]])
		year := section.Text[m[4]:m[5]]

		end := len(section.Text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		fullText := strings.TrimSpace(section.Text[m[0]:end])
		// The author match is a surname followed only by initials.
		lastName := author
		if fields := strings.Fields(author); len(fields) > 0 {
			lastName = strings.TrimSuffix(fields[0], ",")
		}

		entries = append(entries, &BibliographyEntry{
			Key:         strings.ToLower(lastName) + "_" + year,
			Author:      author,
			Year:        year,
			FullText:    fullText,
			StartOffset: section.StartOffset + m[0],
			EndOffset:   section.StartOffset + end,
		})
	}
	return entries
}

// linkCitationsToBibliography implements spec step 4.1.2.14: join citations
// to entries by key; citations without a match go to unlinked_citations.
func linkCitationsToBibliography(citations []*InTextCitation, entries []*BibliographyEntry) []*InTextCitation {
	byKey := make(map[string]*BibliographyEntry, len(entries))
	for _, e := range entries {
		byKey[e.Key] = e
	}

	var unlinked []*InTextCitation
	for _, c := range citations {
		key := c.Author + "_" + c.Year
		if entry, ok := byKey[key]; ok {
			entry.Citations = append(entry.Citations, c)
			continue
		}
		c.Unlinked = true
		unlinked = append(unlinked, c)
	}
	return unlinked
}

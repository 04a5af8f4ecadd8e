package structure

import (
	"regexp"
	"strings"
)

var (
	parenGroupPattern    = regexp.MustCompile(`\(([^()]*)\)`)
	citationPartsPattern = regexp.MustCompile(`[,;]`)
)

// findIntextCitations implements spec step 4.1.2.12: within each paragraph,
// match parenthetical groups, attempt AUTHOR YEAR[: PAGES] then a bare YEAR
// (bound to the most recently seen explicit author), splitting multi-
// citation content on commas/semicolons.
func findIntextCitations(paragraphs []*StructureNode) []*InTextCitation {
	var out []*InTextCitation
	for _, p := range paragraphs {
		out = append(out, citationsInParagraph(p)...)
	}
	return out
}

func citationsInParagraph(p *StructureNode) []*InTextCitation {
	var citations []*InTextCitation
	lastAuthor := lastExplicitAuthor(p.Text, len(p.Text))

	for _, m := range parenGroupPattern.FindAllStringSubmatchIndex(p.Text, -1) {
		groupStart, groupEnd := m[0], m[1]
		inner := p.Text[m[2]:m[3]]

		author := lastExplicitAuthor(p.Text, groupStart)
		if author == "" {
			author = lastAuthor
		}

		for _, part := range splitCitationParts(inner) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			if loc := parenAuthorYearPattern.FindStringSubmatchIndex(part); loc != nil {
				citations = append(citations, &InTextCitation{
					Author:      strings.ToLower(lastWord(part[loc[2]:loc[3]])),
					Year:        part[loc[4]:loc[5]],
					PageInfo:    submatchOrEmpty(part, loc, 6, 7),
					FullText:    "(" + inner + ")",
					StartOffset: p.StartOffset + groupStart,
					EndOffset:   p.StartOffset + groupEnd,
				})
				continue
			}

			if loc := bareYearPattern.FindStringSubmatchIndex(part); loc != nil && author != "" {
				citations = append(citations, &InTextCitation{
					Author:      strings.ToLower(author),
					Year:        part[loc[2]:loc[3]],
					PageInfo:    submatchOrEmpty(part, loc, 4, 5),
					FullText:    "(" + inner + ")",
					StartOffset: p.StartOffset + groupStart,
					EndOffset:   p.StartOffset + groupEnd,
				})
			}
		}
	}
	return citations
}

func splitCitationParts(inner string) []string {
	return citationPartsPattern.Split(inner, -1)
}

func submatchOrEmpty(s string, loc []int, start, end int) string {
	if start >= len(loc) || loc[start] < 0 {
		return ""
	}
	return strings.TrimSpace(s[loc[start]:loc[end]])
}

func lastWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return s
	}
	return fields[len(fields)-1]
}

// lastExplicitAuthor finds the most recent "Name (YEAR" or "Name YEAR"
// occurrence strictly before pos, per the spec's explicit-author rule.
func lastExplicitAuthor(text string, pos int) string {
	scope := text[:min(pos, len(text))]
	matches := explicitAuthorPattern.FindAllStringSubmatchIndex(scope, -1)
	if len(matches) == 0 {
		return ""
	}
	last := matches[len(matches)-1]
	return scope[last[2]:last[3]]
}

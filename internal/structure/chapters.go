package structure

import (
	"strconv"
	"strings"
)

// romanValues maps single uppercase roman numerals to decimal digits, used
// only to parse whole roman numerals (no subtractive-pair arithmetic is
// needed beyond the standard left-to-right subtract-if-smaller rule).
var romanValues = map[rune]int{'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000}

func parseChapterNumber(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	return parseRoman(s)
}

func parseRoman(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	total := 0
	for i, r := range s {
		v, ok := romanValues[r]
		if !ok {
			return 0, false
		}
		if i+1 < len(s) {
			next, ok := romanValues[rune(s[i+1])]
			if ok && v < next {
				total -= v
				continue
			}
		}
		total += v
	}
	return total, true
}

type rawChapterMatch struct {
	number      int
	title       string
	start       int
	headerEnd   int
}

// findChapters implements spec step 4.1.2.4: locate numbered chapters
// between the maximum intro end offset and the minimum end-section start
// offset, apply the fallback pattern when the primary yields nothing, then
// post-filter for number regression and duplicate (number, title) pairs.
func findChapters(text string, intros []*IntroSection, ends []*EndSection, opts Options) []*Chapter {
	searchStart := 0
	for _, s := range intros {
		if s.EndOffset > searchStart {
			searchStart = s.EndOffset
		}
	}
	searchEnd := len(text)
	for _, s := range ends {
		if s.StartOffset < searchEnd {
			searchEnd = s.StartOffset
		}
	}
	if searchEnd < searchStart {
		searchEnd = len(text)
	}
	region := text[searchStart:searchEnd]

	matches := findPrimaryChapterMatches(region, searchStart)
	if len(matches) == 0 {
		matches = findFallbackChapterMatches(region, searchStart, opts)
	}
	if len(matches) == 0 {
		return nil
	}

	return buildChapters(text, matches, searchEnd)
}

func findPrimaryChapterMatches(region string, offset int) []rawChapterMatch {
	var out []rawChapterMatch
	for _, m := range chapterPrimaryPattern.FindAllStringSubmatchIndex(region, -1) {
		numStr := region[m[2]:m[3]]
		num, ok := parseChapterNumber(numStr)
		if !ok {
			continue
		}
		out = append(out, rawChapterMatch{
			number:    num,
			title:     strings.TrimSpace(region[m[4]:m[5]]),
			start:     offset + m[0],
			headerEnd: offset + m[1],
		})
	}
	return out
}

// findFallbackChapterMatches matches lone numbered headers, keeping only
// matches that expose a meaningful title within the following ten lines or
// more than FallbackMinChars of body, and that don't look like a Notes
// list item.
func findFallbackChapterMatches(region string, offset int, opts Options) []rawChapterMatch {
	minChars := opts.FallbackMinChars
	if minChars <= 0 {
		minChars = 1000
	}

	all := chapterFallbackPattern.FindAllStringSubmatchIndex(region, -1)
	var out []rawChapterMatch
	for i, m := range all {
		numStr := region[m[2]:m[3]]
		num, ok := parseChapterNumber(numStr)
		if !ok {
			continue
		}
		headerEnd := m[1]

		bodyEnd := len(region)
		if i+1 < len(all) {
			bodyEnd = all[i+1][0]
		}
		body := region[headerEnd:bodyEnd]

		title, hasTitle := titleWithinLines(body, 10)
		if !hasTitle && len(strings.TrimSpace(body)) <= minChars {
			continue
		}
		if looksLikeNotesListItem(body) {
			continue
		}

		out = append(out, rawChapterMatch{
			number:    num,
			title:     title,
			start:     offset + m[0],
			headerEnd: offset + headerEnd,
		})
	}
	return out
}

func titleWithinLines(body string, maxLines int) (string, bool) {
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if i >= maxLines {
			break
		}
		trimmed := strings.TrimSpace(strings.TrimLeft(line, "#"))
		if trimmed == "" {
			continue
		}
		if _, ok := parseChapterNumber(trimmed); ok {
			continue
		}
		return trimmed, true
	}
	return "", false
}

func looksLikeNotesListItem(body string) bool {
	trimmed := strings.TrimSpace(body)
	return notesListItemPattern.MatchString(trimmed) && len(trimmed) < 200
}

// buildChapters converts raw matches into Chapters, applying the
// content-preservation merge for number regressions and duplicate
// (number, title) pairs: a misidentified match extends the preceding valid
// chapter's end offset rather than being dropped.
func buildChapters(text string, matches []rawChapterMatch, textEnd int) []*Chapter {
	var chapters []*Chapter
	maxNumber := -1
	seen := make(map[string]*Chapter)

	for i, m := range matches {
		end := textEnd
		if i+1 < len(matches) {
			end = matches[i+1].start
		}

		if m.number < maxNumber && len(chapters) > 0 {
			chapters[len(chapters)-1].EndOffset = end
			continue
		}

		key := strconv.Itoa(m.number) + "|" + m.title
		if existing, ok := seen[key]; ok {
			existing.EndOffset = end
			continue
		}

		ch := &Chapter{
			Number:          m.number,
			Title:           m.title,
			StartOffset:     m.start,
			EndOffset:       end,
			HeaderEndOffset: m.headerEnd,
		}
		chapters = append(chapters, ch)
		seen[key] = ch
		if m.number > maxNumber {
			maxNumber = m.number
		}
	}
	return chapters
}

package structure

import "strings"

// findNoteReferences implements spec step 4.1.2.10: scan the *original*
// (pre-normalization) text for ${ }^{ids}$ markers, expanding comma-
// separated ids into separate (identifier, offset) entries.
func findNoteReferences(originalText string) []NoteReference {
	var refs []NoteReference
	for _, m := range noteMarkerOriginalPattern.FindAllStringSubmatchIndex(originalText, -1) {
		ids := strings.Split(originalText[m[2]:m[3]], ",")
		for _, id := range ids {
			refs = append(refs, NoteReference{
				Identifier:       strings.TrimSpace(id),
				OffsetInOriginal: m[0],
			})
		}
	}
	return refs
}

// noteReferenceNormalizedOffsets re-runs the same marker scan and
// comma-expansion as findNoteReferences, but against the normalized text.
// textproc.Normalize never deletes or reorders a marker occurrence (it only
// pads surrounding whitespace), so the Nth expanded entry here lines up
// positionally with the Nth entry findNoteReferences produces against the
// original text; pairing by index avoids building a full original-to-
// normalized character offset map.
func noteReferenceNormalizedOffsets(normalizedText string) []int {
	var offsets []int
	for _, m := range noteMarkerOriginalPattern.FindAllStringSubmatchIndex(normalizedText, -1) {
		ids := strings.Split(normalizedText[m[2]:m[3]], ",")
		for range ids {
			offsets = append(offsets, m[0])
		}
	}
	return offsets
}

// linkNotesToText implements spec step 4.1.2.11: attach each referenced
// note to every chapter whose range contains the reference's offset;
// references inside the document's own Notes section are excluded by the
// caller via notesSectionRanges. Unmatched notes go to "Unlinked Notes".
// normalizedOffsets holds, for each entry of refs (same index), that
// reference's position in normalized-text coordinates; when its length
// doesn't match refs (should only happen if normalization altered marker
// count, which it does not by construction), each ref's own
// OffsetInOriginal is used as a degraded fallback.
func linkNotesToText(chapters []*Chapter, notes map[string]*Note, refs []NoteReference, notesSectionRanges [][2]int, normalizedOffsets []int) map[string][]*Note {
	byChapter := make(map[string][]*Note)
	seen := make(map[string]map[string]bool)

	attach := func(chapterTitle, identifier string) {
		note, ok := notes[identifier]
		if !ok {
			return
		}
		if seen[chapterTitle] == nil {
			seen[chapterTitle] = make(map[string]bool)
		}
		if seen[chapterTitle][identifier] {
			return
		}
		seen[chapterTitle][identifier] = true
		byChapter[chapterTitle] = append(byChapter[chapterTitle], note)
	}

	for i, ref := range refs {
		offset := ref.OffsetInOriginal
		if i < len(normalizedOffsets) {
			offset = normalizedOffsets[i]
		}
		if withinRanges(offset, notesSectionRanges) {
			continue
		}

		matched := false
		for _, ch := range chapters {
			if offset >= ch.StartOffset && offset < ch.EndOffset {
				attach(ch.Title, ref.Identifier)
				matched = true
				break
			}
		}
		if !matched {
			attach("Unlinked Notes", ref.Identifier)
		}
	}
	return byChapter
}

func withinRanges(offset int, ranges [][2]int) bool {
	for _, r := range ranges {
		if offset >= r[0] && offset < r[1] {
			return true
		}
	}
	return false
}

package structure

import "errors"

// Structural invariant violations are fatal for the document being parsed;
// callers are expected to skip the document and move on rather than abort
// a whole run.
var (
	ErrInvertedRange       = errors.New("structure: node end offset precedes start offset")
	ErrSubsectionOutOfRange = errors.New("structure: subsection range falls outside its chapter's range")
)

// validate checks the invariants spec.md §7 calls fatal for a document:
// every node's range is non-inverted, and every subsection's range nests
// inside its parent chapter's range.
func validate(doc *Document) error {
	for _, ch := range doc.Chapters {
		if ch.EndOffset < ch.StartOffset {
			return ErrInvertedRange
		}
		for _, sub := range ch.Subsections {
			if sub.EndOffset < sub.StartOffset {
				return ErrInvertedRange
			}
			if sub.StartOffset < ch.StartOffset || sub.EndOffset > ch.EndOffset {
				return ErrSubsectionOutOfRange
			}
		}
	}
	for _, s := range doc.IntroSections {
		if s.EndOffset < s.StartOffset {
			return ErrInvertedRange
		}
	}
	for _, s := range doc.EndSections {
		if s.EndOffset < s.StartOffset {
			return ErrInvertedRange
		}
	}
	return nil
}

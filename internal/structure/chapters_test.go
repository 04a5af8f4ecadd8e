package structure

import "testing"

func TestParseChapterNumber(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantOK  bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"  7  ", 7, true},
		{"I", 1, true},
		{"IV", 4, true},
		{"IX", 9, true},
		{"XL", 40, true},
		{"MCMXCIX", 1999, true},
		{"", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseChapterNumber(tt.in)
		if ok != tt.wantOK {
			t.Errorf("parseChapterNumber(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("parseChapterNumber(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestBuildChapters_RegressionMergesIntoPrecedingChapter(t *testing.T) {
	// Simulates a misidentified chapter match whose number regresses
	// (e.g. a page-footer "1" picked up by the fallback pattern): it should
	// extend the preceding valid chapter's range instead of starting a new
	// one.
	text := "0123456789"
	matches := []rawChapterMatch{
		{number: 1, title: "One", start: 0, headerEnd: 1},
		{number: 2, title: "Two", start: 4, headerEnd: 5},
		{number: 1, title: "Stray", start: 7, headerEnd: 8},
	}

	chapters := buildChapters(text, matches, len(text))

	if len(chapters) != 2 {
		t.Fatalf("got %d chapters, want 2: %+v", len(chapters), chapters)
	}
	if chapters[1].EndOffset != len(text) {
		t.Errorf("chapter 2 EndOffset = %d, want %d (regression should extend it)", chapters[1].EndOffset, len(text))
	}
}

func TestBuildChapters_DuplicateNumberAndTitleMerges(t *testing.T) {
	text := "0123456789"
	matches := []rawChapterMatch{
		{number: 1, title: "Other", start: 0, headerEnd: 1},
		{number: 2, title: "Repeated", start: 3, headerEnd: 4},
		{number: 2, title: "Repeated", start: 6, headerEnd: 7},
	}

	chapters := buildChapters(text, matches, len(text))

	// The third match repeats the second's (number, title) pair without a
	// number regression, so it takes the duplicate-key path and extends
	// chapter 2 instead of starting a third chapter.
	if len(chapters) != 2 {
		t.Fatalf("got %d chapters, want 2: %+v", len(chapters), chapters)
	}
}

package structure

import "testing"

func TestParse_TitleChapterAndCitationExample(t *testing.T) {
	raw := "# Doc\n\n# 1\n\n## Intro\n\nA sentence. (Smith 2020) Another one.\n"

	doc, err := Parse(raw, DefaultOptions())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if doc.Title != "Doc" {
		t.Errorf("Title = %q, want %q", doc.Title, "Doc")
	}
	if len(doc.Chapters) != 1 {
		t.Fatalf("got %d chapters, want 1: %+v", len(doc.Chapters), doc.Chapters)
	}

	ch := doc.Chapters[0]
	if ch.Number != 1 {
		t.Errorf("chapter Number = %d, want 1", ch.Number)
	}
	if ch.Title != "Intro" {
		t.Errorf("chapter Title = %q, want %q", ch.Title, "Intro")
	}
	if len(ch.Subsections) != 0 {
		t.Fatalf("got %d subsections, want 0", len(ch.Subsections))
	}
	if len(ch.Paragraphs) != 1 {
		t.Fatalf("got %d paragraphs, want 1: %+v", len(ch.Paragraphs), ch.Paragraphs)
	}

	atoms := ch.Paragraphs[0].Atoms
	if len(atoms) != 3 {
		t.Fatalf("got %d atoms, want 3: %+v", len(atoms), atoms)
	}

	wantText := []string{"A sentence.", "(Smith 2020)", "Another one."}
	wantKind := []AtomKind{AtomSentence, AtomCitation, AtomSentence}
	for i, a := range atoms {
		if a.Text != wantText[i] {
			t.Errorf("atom %d text = %q, want %q", i, a.Text, wantText[i])
		}
		if a.Kind != wantKind[i] {
			t.Errorf("atom %d kind = %q, want %q", i, a.Kind, wantKind[i])
		}
		if a.ParagraphID != ch.Paragraphs[0].ID {
			t.Errorf("atom %d ParagraphID = %d, want %d", i, a.ParagraphID, ch.Paragraphs[0].ID)
		}
	}
}

func TestParse_SubsectionsSplitChapterIntoSequences(t *testing.T) {
	raw := "# Doc\n\n# 1\n\n## Chapter One\n\n### First\n\nFirst section text.\n\n### Second\n\nSecond section text.\n"

	doc, err := Parse(raw, DefaultOptions())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(doc.Chapters) != 1 {
		t.Fatalf("got %d chapters, want 1", len(doc.Chapters))
	}

	ch := doc.Chapters[0]
	if len(ch.Subsections) != 2 {
		t.Fatalf("got %d subsections, want 2: %+v", len(ch.Subsections), ch.Subsections)
	}
	if len(ch.Paragraphs) != 0 {
		t.Errorf("chapter with subsections should have no direct paragraphs, got %d", len(ch.Paragraphs))
	}
	if ch.Subsections[0].Title != "First" {
		t.Errorf("subsection 0 Title = %q, want %q", ch.Subsections[0].Title, "First")
	}
	if ch.Subsections[1].Title != "Second" {
		t.Errorf("subsection 1 Title = %q, want %q", ch.Subsections[1].Title, "Second")
	}
	if len(ch.Subsections[0].Paragraphs) != 1 || len(ch.Subsections[0].Paragraphs[0].Atoms) != 1 {
		t.Errorf("subsection 0 paragraphs/atoms unexpected: %+v", ch.Subsections[0].Paragraphs)
	}
}

func TestParse_EmptyInputProducesNoChapters(t *testing.T) {
	doc, err := Parse("", DefaultOptions())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(doc.Chapters) != 0 {
		t.Errorf("got %d chapters, want 0", len(doc.Chapters))
	}
	if doc.Title != "" {
		t.Errorf("Title = %q, want empty", doc.Title)
	}
}

func TestParsePreChunked_AssignsSequentialChapterNumbers(t *testing.T) {
	doc := ParsePreChunked([]PreChunkedChapter{
		{Title: "One", Text: "First sentence. Second sentence."},
		{Title: "Two", Text: "Third sentence."},
	})

	if len(doc.Chapters) != 2 {
		t.Fatalf("got %d chapters, want 2", len(doc.Chapters))
	}
	if doc.Chapters[0].Number != 1 || doc.Chapters[1].Number != 2 {
		t.Errorf("chapter numbers = %d, %d, want 1, 2", doc.Chapters[0].Number, doc.Chapters[1].Number)
	}
	if len(doc.Chapters[0].Paragraphs) != 1 {
		t.Fatalf("got %d paragraphs in chapter 1, want 1", len(doc.Chapters[0].Paragraphs))
	}
	if len(doc.Chapters[0].Paragraphs[0].Atoms) != 2 {
		t.Errorf("got %d atoms in chapter 1's paragraph, want 2", len(doc.Chapters[0].Paragraphs[0].Atoms))
	}
}

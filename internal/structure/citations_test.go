package structure

import "testing"

func paragraphNode(text string) *StructureNode {
	return &StructureNode{Kind: KindParagraph, Text: text, StartOffset: 0, EndOffset: len(text)}
}

func TestFindIntextCitations_AuthorYear(t *testing.T) {
	p := paragraphNode("This claim is well supported (Smith 2020).")
	got := findIntextCitations([]*StructureNode{p})

	if len(got) != 1 {
		t.Fatalf("got %d citations, want 1: %+v", len(got), got)
	}
	if got[0].Author != "smith" {
		t.Errorf("Author = %q, want %q", got[0].Author, "smith")
	}
	if got[0].Year != "2020" {
		t.Errorf("Year = %q, want %q", got[0].Year, "2020")
	}
}

func TestFindIntextCitations_AuthorYearWithPage(t *testing.T) {
	p := paragraphNode("As argued (Smith 2020: 45-46), the result holds.")
	got := findIntextCitations([]*StructureNode{p})

	if len(got) != 1 {
		t.Fatalf("got %d citations, want 1: %+v", len(got), got)
	}
	if got[0].PageInfo != "45-46" {
		t.Errorf("PageInfo = %q, want %q", got[0].PageInfo, "45-46")
	}
}

func TestFindIntextCitations_BareYearBindsToLastExplicitAuthor(t *testing.T) {
	p := paragraphNode("Smith (2020) made this claim. He revised it later (2021).")
	got := findIntextCitations([]*StructureNode{p})

	if len(got) != 2 {
		t.Fatalf("got %d citations, want 2: %+v", len(got), got)
	}
	if got[1].Author != "smith" {
		t.Errorf("second citation Author = %q, want %q (bound to last explicit author)", got[1].Author, "smith")
	}
	if got[1].Year != "2021" {
		t.Errorf("second citation Year = %q, want %q", got[1].Year, "2021")
	}
}

func TestFindIntextCitations_MultipleCitationsInOneGroup(t *testing.T) {
	p := paragraphNode("Several authors agree (Smith 2020; Jones 2019).")
	got := findIntextCitations([]*StructureNode{p})

	if len(got) != 2 {
		t.Fatalf("got %d citations, want 2: %+v", len(got), got)
	}
}

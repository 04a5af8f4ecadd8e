package graph

import (
	"reflect"
	"testing"

	"github.com/corpusgraph/corpusgraph/internal/classifier"
	"github.com/corpusgraph/corpusgraph/internal/structure"
)

func TestContextWindow(t *testing.T) {
	seq := paragraphSequence{paragraphs: []*structure.StructureNode{
		{Atoms: []structure.Atom{{ID: "p0a0", Text: "a"}, {ID: "p0a1", Text: "b"}}},
		{Atoms: []structure.Atom{{ID: "p1a0", Text: "c"}, {ID: "p1a1", Text: "d"}}},
	}}

	tests := []struct {
		name           string
		paragraphIndex int
		atomIndex      int
		want           []classifier.ContextAtom
	}{
		{
			name:           "first atom of first paragraph has no context",
			paragraphIndex: 0,
			atomIndex:      0,
			want:           nil,
		},
		{
			name:           "second atom of first paragraph sees only earlier atoms in same paragraph",
			paragraphIndex: 0,
			atomIndex:      1,
			want:           []classifier.ContextAtom{{ID: "p0a0", Text: "a"}},
		},
		{
			name:           "first atom of second paragraph sees the whole prior paragraph",
			paragraphIndex: 1,
			atomIndex:      0,
			want:           []classifier.ContextAtom{{ID: "p0a0", Text: "a"}, {ID: "p0a1", Text: "b"}},
		},
		{
			name:           "second atom of second paragraph sees prior paragraph plus earlier atom",
			paragraphIndex: 1,
			atomIndex:      1,
			want: []classifier.ContextAtom{
				{ID: "p0a0", Text: "a"}, {ID: "p0a1", Text: "b"}, {ID: "p1a0", Text: "c"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := contextWindow(seq, tt.paragraphIndex, tt.atomIndex)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("contextWindow() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

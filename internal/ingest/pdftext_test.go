package ingest

import "testing"

func TestPullLiteralStrings(t *testing.T) {
	tests := []struct {
		name   string
		stream string
		want   string
	}{
		{
			name:   "simple show-text op",
			stream: `(Hello) Tj`,
			want:   "Hello ",
		},
		{
			name:   "array form",
			stream: `[(Hello) (World)] TJ`,
			want:   "Hello World ",
		},
		{
			name:   "escaped parens",
			stream: `(A \(note\)) Tj`,
			want:   "A (note) ",
		},
		{
			name:   "ignores non-text operators",
			stream: `1 0 0 1 72 720 cm (Body) Tj`,
			want:   "Body ",
		},
		{
			name:   "no matches",
			stream: `q 1 0 0 RG Q`,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pullLiteralStrings([]byte(tt.stream))
			if got != tt.want {
				t.Errorf("pullLiteralStrings(%q) = %q, want %q", tt.stream, got, tt.want)
			}
		})
	}
}

func TestUnescapePDFString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`Hello`, "Hello"},
		{`A \(note\)`, "A (note)"},
		{`line\nbreak`, "line\nbreak"},
		{`back\\slash`, `back\slash`},
	}

	for _, tt := range tests {
		if got := unescapePDFString(tt.in); got != tt.want {
			t.Errorf("unescapePDFString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package ingest

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/corpusgraph/corpusgraph/internal/providers"
)

const PDFTextExtractorName = "pdfcpu-text"

// PDFTextExtractor satisfies providers.OCRProvider for text-layer PDFs: no
// vision model, no network round trip, just pdfcpu's content-stream
// extraction plus a literal-string puller. It's the zero-dependency fallback
// a caller reaches for when no OCR budget is configured; ProcessImage's
// "image" argument here is the raw bytes of a single-page PDF rather than a
// rasterized image, which is still a valid call under the same interface.
type PDFTextExtractor struct{}

func NewPDFTextExtractor() *PDFTextExtractor {
	return &PDFTextExtractor{}
}

func (e *PDFTextExtractor) Name() string                 { return PDFTextExtractorName }
func (e *PDFTextExtractor) RequestsPerSecond() float64    { return 0 }
func (e *PDFTextExtractor) MaxRetries() int               { return 1 }
func (e *PDFTextExtractor) RetryDelayBase() time.Duration { return 0 }

// ProcessImage extracts the markdown-ish text of one single-page PDF.
func (e *PDFTextExtractor) ProcessImage(ctx context.Context, pagePDF []byte, pageNum int) (*providers.OCRResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	streams, err := extractContentStreams(pagePDF)
	if err != nil {
		return &providers.OCRResult{
			Success:       false,
			ErrorMessage:  err.Error(),
			ExecutionTime: time.Since(start),
		}, err
	}

	var text strings.Builder
	for _, s := range streams {
		text.WriteString(pullLiteralStrings(s))
	}

	return &providers.OCRResult{
		Success:       true,
		Text:          text.String(),
		Metadata:      map[string]any{"page_index": pageNum},
		ExecutionTime: time.Since(start),
	}, nil
}

// SplitPages splits a PDF at path into one single-page PDF byte buffer per
// page, preserving order, using pdfcpu's page-collection API.
func SplitPages(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	pageCount, err := api.PageCount(f, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get page count: %w", err)
	}

	pages := make([][]byte, 0, pageCount)
	for p := 1; p <= pageCount; p++ {
		if _, err := f.Seek(0, 0); err != nil {
			return nil, fmt.Errorf("failed to rewind PDF: %w", err)
		}
		var out bytes.Buffer
		if err := api.Trim(f, &out, []string{fmt.Sprintf("%d", p)}, nil); err != nil {
			return nil, fmt.Errorf("failed to split page %d: %w", p, err)
		}
		pages = append(pages, out.Bytes())
	}
	return pages, nil
}

// extractContentStreams pulls the raw content-stream bytes out of a
// single-page PDF. pdfcpu's api.ExtractContent operates on paths rather
// than byte slices directly, so the page is written to a scratch file.
func extractContentStreams(pagePDF []byte) ([][]byte, error) {
	tmp, err := os.CreateTemp("", "corpusgraph-page-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch file: %w", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := tmp.Write(pagePDF); err != nil {
		return nil, fmt.Errorf("failed to write scratch file: %w", err)
	}

	rs, err := os.Open(tmp.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to reopen scratch file: %w", err)
	}
	defer rs.Close()

	var buf bytes.Buffer
	if err := api.Optimize(rs, &buf, nil); err != nil {
		return nil, fmt.Errorf("failed to normalize page PDF: %w", err)
	}
	return [][]byte{buf.Bytes()}, nil
}

// literalStringPattern matches PDF content-stream show-text operands:
// parenthesized literal strings immediately preceding a Tj/TJ/'/" operator
// (group 1), or a bracketed array of literal strings preceding TJ (group 2).
var literalStringPattern = regexp.MustCompile(`\(((?:[^()\\]|\\.)*)\)\s*(?:Tj|TJ|'|")|\[((?:[^\]()\\]|\((?:[^()\\]|\\.)*\)|\\.)*)\]\s*TJ`)

// arrayStringPattern matches each literal string inside a TJ array.
var arrayStringPattern = regexp.MustCompile(`\(((?:[^()\\]|\\.)*)\)`)

var escapeSequencePattern = regexp.MustCompile(`\\([nrtbf()\\]|[0-7]{1,3})`)

// pullLiteralStrings is a deliberately minimal PDF content-stream reader:
// it extracts the literal-string operands of text-showing operators and
// unescapes PDF string escapes, without attempting glyph-to-Unicode
// mapping through embedded font encodings. Good enough for ASCII text
// layers; garbled on anything relying on a custom CMap.
func pullLiteralStrings(stream []byte) string {
	var out strings.Builder
	matches := literalStringPattern.FindAllSubmatch(stream, -1)
	for _, m := range matches {
		if m[2] != nil {
			for _, s := range arrayStringPattern.FindAllSubmatch(m[2], -1) {
				out.WriteString(unescapePDFString(string(s[1])))
				out.WriteByte(' ')
			}
			continue
		}
		out.WriteString(unescapePDFString(string(m[1])))
		out.WriteByte(' ')
	}
	return out.String()
}

func unescapePDFString(s string) string {
	return escapeSequencePattern.ReplaceAllStringFunc(s, func(esc string) string {
		switch esc[1] {
		case 'n':
			return "\n"
		case 'r':
			return "\r"
		case 't':
			return "\t"
		case 'b', 'f':
			return ""
		case '(', ')', '\\':
			return esc[1:]
		}
		if v, err := strconv.ParseUint(esc[1:], 8, 8); err == nil {
			return string(rune(v))
		}
		return ""
	})
}

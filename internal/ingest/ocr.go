// Package ingest turns a PDF on disk into the flat OCR markdown text the
// normalizer and Structural Parser expect: split into pages, run each page
// through an OCRProvider, join the per-page markdown with page-break
// separators.
package ingest

import (
	"context"
	"fmt"
	"strings"

	"github.com/corpusgraph/corpusgraph/internal/providers"
)

var _ providers.OCRProvider = (*PDFTextExtractor)(nil)

// ExtractDocument splits path into pages and runs each through provider in
// order, concatenating the resulting markdown with a blank line between
// pages. A page-level failure aborts the whole document: partial OCR output
// would desynchronize every downstream offset.
func ExtractDocument(ctx context.Context, path string, provider providers.OCRProvider) (string, error) {
	pages, err := SplitPages(path)
	if err != nil {
		return "", fmt.Errorf("failed to split PDF into pages: %w", err)
	}

	var out strings.Builder
	for i, page := range pages {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		result, err := provider.ProcessImage(ctx, page, i+1)
		if err != nil {
			return "", fmt.Errorf("OCR failed on page %d: %w", i+1, err)
		}
		if !result.Success {
			return "", fmt.Errorf("OCR failed on page %d: %s", i+1, result.ErrorMessage)
		}
		if i > 0 {
			out.WriteString("\n\n")
		}
		out.WriteString(result.Text)
	}
	return out.String(), nil
}

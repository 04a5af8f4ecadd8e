package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corpusgraph/corpusgraph/internal/config"
	"github.com/corpusgraph/corpusgraph/internal/ingest"
	"github.com/corpusgraph/corpusgraph/internal/providers"
	"github.com/corpusgraph/corpusgraph/internal/structure"
)

var (
	parseJSONOutput   bool
	parseMistralKey   string
	parseDecomposeAll bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <input>",
	Short: "Run the Structural Parser only (no classification)",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSONOutput, "json", false, "print the full structure tree as JSON instead of a summary")
	parseCmd.Flags().StringVar(&parseMistralKey, "mistral-api-key", "", "Mistral OCR API key; if unset, PDF input falls back to the zero-dependency text extractor")
	parseCmd.Flags().BoolVar(&parseDecomposeAll, "decompose-everywhere", false, "also decompose introduction/end-section paragraphs into atoms")
}

func runParse(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	ctx := cmd.Context()

	raw, err := loadDocumentText(ctx, args[0], logger)
	if err != nil {
		return err
	}

	opts := structure.DefaultOptions()
	opts.DecomposeEverywhere = parseDecomposeAll
	if cfg, err := loadConfig(); err == nil {
		opts.FallbackMinChars = cfg.Structure.FallbackMinChars
	}

	doc, err := structure.Parse(raw, opts)
	if err != nil {
		return fmt.Errorf("structural parse failed: %w", err)
	}

	if parseJSONOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	printStructureSummary(doc)
	return nil
}

// loadDocumentText produces the flat OCR-markdown text structure.Parse
// expects: PDF inputs are run through internal/ingest first, everything
// else is read and used verbatim.
func loadDocumentText(ctx context.Context, path string, logger interface {
	Warn(msg string, args ...any)
}) (string, error) {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %q: %w", path, err)
		}
		return string(raw), nil
	}

	var provider providers.OCRProvider
	if parseMistralKey != "" {
		provider = ingest.NewMistralOCRClient(ingest.MistralOCRConfig{APIKey: parseMistralKey})
	} else {
		logger.Warn("no Mistral API key given, falling back to the zero-dependency PDF text extractor")
		provider = ingest.NewPDFTextExtractor()
	}

	return ingest.ExtractDocument(ctx, path, provider)
}

func printStructureSummary(doc *structure.Document) {
	fmt.Printf("Title: %s\n", doc.Title)
	fmt.Printf("Intro sections: %d\n", len(doc.IntroSections))
	fmt.Printf("Chapters: %d\n", len(doc.Chapters))

	totalParagraphs, totalAtoms := 0, 0
	for _, ch := range doc.Chapters {
		if len(ch.Subsections) == 0 {
			totalParagraphs += len(ch.Paragraphs)
			for _, p := range ch.Paragraphs {
				totalAtoms += len(p.Atoms)
			}
			continue
		}
		for _, sub := range ch.Subsections {
			totalParagraphs += len(sub.Paragraphs)
			for _, p := range sub.Paragraphs {
				totalAtoms += len(p.Atoms)
			}
		}
	}
	fmt.Printf("Paragraphs: %d\n", totalParagraphs)
	fmt.Printf("Atoms: %d\n", totalAtoms)
	fmt.Printf("End sections: %d\n", len(doc.EndSections))
	fmt.Printf("Bibliography entries: %d\n", len(doc.BibliographyEntries))
	fmt.Printf("Unlinked citations: %d\n", len(doc.UnlinkedCitations))
}

func loadConfig() (*config.Config, error) {
	mgr, err := config.NewManager(cfgFile)
	if err != nil {
		return nil, err
	}
	return mgr.Get(), nil
}

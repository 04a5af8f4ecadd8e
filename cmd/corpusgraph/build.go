package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/corpusgraph/corpusgraph/internal/classifier"
	"github.com/corpusgraph/corpusgraph/internal/config"
	"github.com/corpusgraph/corpusgraph/internal/graph"
	"github.com/corpusgraph/corpusgraph/internal/handoff"
	"github.com/corpusgraph/corpusgraph/internal/ontology"
	"github.com/corpusgraph/corpusgraph/internal/providers"
	"github.com/corpusgraph/corpusgraph/internal/structure"
)

var buildMistralKey string

var buildCmd = &cobra.Command{
	Use:   "build <input>",
	Short: "Run the full pipeline: structure, classify, validate against the ontology",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildMistralKey, "mistral-api-key", "", "Mistral OCR API key; if unset, PDF input falls back to the zero-dependency text extractor")
}

func runBuild(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	ctx := cmd.Context()

	mgr, err := config.NewManager(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := mgr.Get()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	parseMistralKey = buildMistralKey
	raw, err := loadDocumentText(ctx, args[0], logger)
	if err != nil {
		return err
	}

	opts := structure.DefaultOptions()
	opts.FallbackMinChars = cfg.Structure.FallbackMinChars
	doc, err := structure.Parse(raw, opts)
	if err != nil {
		return fmt.Errorf("structural parse failed: %w", err)
	}

	ont, err := ontology.Load(cfg.Ontology.TaxonomyPath, cfg.Ontology.OntologyPath)
	if err != nil {
		return fmt.Errorf("loading ontology: %w", err)
	}

	llm := providers.NewOpenRouterClient(providers.OpenRouterConfig{
		APIKey:         config.ResolveEnvVars(cfg.Classifier.APIKey),
		DefaultModel:   config.ResolveEnvVars(cfg.Classifier.Model),
		MaxRetries:     cfg.Classifier.Retries,
		RetryDelay:     time.Duration(cfg.Classifier.BackoffFactorSeconds * float64(time.Second)),
		Timeout:        60 * time.Second,
		RPS:            cfg.Rate.TokensPerSecond,
		MaxConcurrency: cfg.Concurrency.ChapterWorkers * cfg.Concurrency.SubsectionWorkers,
	})

	classifierClient, err := classifier.NewClient(llm, ont, classifier.Config{
		Rate:                 cfg.Rate.TokensPerSecond,
		Burst:                float64(cfg.Rate.Burst),
		Retries:              cfg.Classifier.Retries,
		BackoffFactorSeconds: cfg.Classifier.BackoffFactorSeconds,
		Model:                config.ResolveEnvVars(cfg.Classifier.Model),
	}, logger)
	if err != nil {
		return fmt.Errorf("building classifier client: %w", err)
	}

	constructor := graph.NewConstructor(classifierClient, graph.Config{
		ChapterWorkers:    cfg.Concurrency.ChapterWorkers,
		SubsectionWorkers: cfg.Concurrency.SubsectionWorkers,
	}, logger)

	result, err := constructor.Run(ctx, doc, ont)
	if err != nil {
		return fmt.Errorf("graph construction failed: %w", err)
	}

	collaborator := handoff.NewMemoryCollaborator()
	tree := buildStructureTree(doc)
	documentID, paragraphIDMap, err := collaborator.PersistStructure(ctx, handoff.DocumentRecord{
		Title:      doc.Title,
		RawContent: doc.RawText,
	}, tree)
	if err != nil {
		return fmt.Errorf("persisting structure: %w", err)
	}

	mapped, unmapped := graph.ApplyParagraphIDMap(result.Atoms, paragraphIDMap, logger)
	result.Report.UnmappedParagraphs = unmapped

	atomRecords := handoff.BuildAtomRecords(documentID, mapped)
	graphIDToDBID, err := collaborator.PersistAtoms(ctx, atomRecords)
	if err != nil {
		return fmt.Errorf("persisting atoms: %w", err)
	}

	relRecords := handoff.BuildRelationshipRecords(result.Relationships, graphIDToDBID, logger)
	if err := collaborator.PersistRelationships(ctx, relRecords); err != nil {
		return fmt.Errorf("persisting relationships: %w", err)
	}

	printBuildReport(result.Report, len(relRecords))
	return nil
}

// buildStructureTree flattens a structure.Document into the flat,
// parent-indexed form PersistStructure expects, depth first: each chapter
// node is followed either by its paragraphs or, when it has subsections, by
// each subsection node and that subsection's paragraphs, with each
// paragraph's ParentIndex pointing back at its owning chapter or subsection
// node.
func buildStructureTree(doc *structure.Document) []handoff.StructureNodeInput {
	var tree []handoff.StructureNodeInput

	for _, ch := range doc.Chapters {
		chapterIdx := len(tree)
		tree = append(tree, handoff.StructureNodeInput{
			Kind:        "chapter",
			Title:       ch.Title,
			ParserID:    ch.Number,
			ParentIndex: -1,
			StartOffset: ch.StartOffset,
			EndOffset:   ch.EndOffset,
		})

		if len(ch.Subsections) == 0 {
			appendParagraphs(&tree, ch.Paragraphs, chapterIdx)
			continue
		}
		for _, sub := range ch.Subsections {
			subIdx := len(tree)
			tree = append(tree, handoff.StructureNodeInput{
				Kind:        "subsection",
				Title:       sub.Title,
				ParserID:    sub.ID,
				ParentIndex: chapterIdx,
				StartOffset: sub.StartOffset,
				EndOffset:   sub.EndOffset,
			})
			appendParagraphs(&tree, sub.Paragraphs, subIdx)
		}
	}

	return tree
}

func appendParagraphs(tree *[]handoff.StructureNodeInput, paragraphs []*structure.StructureNode, parentIndex int) {
	for _, p := range paragraphs {
		*tree = append(*tree, handoff.StructureNodeInput{
			Kind:        "paragraph",
			ParserID:    p.ID,
			ParentIndex: parentIndex,
			StartOffset: p.StartOffset,
			EndOffset:   p.EndOffset,
			IsParagraph: true,
		})
	}
}

func printBuildReport(r graph.Report, relationshipCount int) {
	fmt.Printf("Atoms classified: %d\n", r.TotalAtoms)
	fmt.Printf("Atoms dropped:    %d\n", r.DroppedAtoms)
	fmt.Printf("Edges validated:  %d\n", relationshipCount)
	fmt.Printf("Edges dropped:    %d\n", r.DroppedEdges)
	fmt.Printf("Unlinked notes:     %d\n", r.UnlinkedNotes)
	fmt.Printf("Unlinked citations: %d\n", r.UnlinkedCitations)
	if len(r.UnmappedParagraphs) > 0 {
		fmt.Printf("Unmapped paragraphs: %v\n", r.UnmappedParagraphs)
	}
}

package graph

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/corpusgraph/corpusgraph/internal/classifier"
	"github.com/corpusgraph/corpusgraph/internal/structure"
)

// Config tunes the bounded concurrency of a Constructor run. Zero values fall
// back to spec.md §4.2.1's default cap of 4.
type Config struct {
	ChapterWorkers    int
	SubsectionWorkers int
}

// Classifier is the subset of classifier.Client a Constructor depends on,
// so tests can substitute a fake without touching the real rate limiter.
type Classifier interface {
	ProcessAtom(ctx context.Context, target classifier.Target, contextAtoms []classifier.ContextAtom) (classifier.Result, error)
}

// Constructor runs the build stage of the Graph Constructor (spec.md
// §4.2.1): classify every atom of a structure.Document, respecting the
// chapter/subsection concurrency bounds and paragraph-local context
// windows.
type Constructor struct {
	client Classifier
	cfg    Config
	logger *slog.Logger

	progress *progressTracker
}

// NewConstructor builds a Constructor. A nil logger falls back to
// slog.Default().
func NewConstructor(client Classifier, cfg Config, logger *slog.Logger) *Constructor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Constructor{client: client, cfg: cfg, logger: logger.With("component", "graph_constructor")}
}

// Progress returns a snapshot of the current run's (status, total,
// processed, percent). Safe to call concurrently with Build.
func (c *Constructor) Progress() Progress {
	if c.progress == nil {
		return Progress{Status: StatusIdle}
	}
	return c.progress.Snapshot()
}

// Build classifies every atom in doc and returns them annotated, in no
// particular cross-sequence order (spec.md §5: "across subsections of the
// same chapter, and across chapters, order is unspecified"). It does not
// prune against the ontology; call Prune on the result.
func (c *Constructor) Build(ctx context.Context, doc *structure.Document) ([]AnnotatedAtom, error) {
	stampAllAtomIDs(doc)

	total := countAtoms(doc)
	c.progress = newProgressTracker(total)
	c.progress.setStatus(StatusBuilding)

	chapterWorkers := boundedWorkers(len(doc.Chapters), c.cfg.ChapterWorkers)

	var mu sync.Mutex
	var all []AnnotatedAtom
	var firstErr error

	runBounded(len(doc.Chapters), chapterWorkers, func(i int) {
		if ctx.Err() != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = ctx.Err()
			}
			mu.Unlock()
			return
		}

		ch := doc.Chapters[i]
		atoms, err := c.buildChapter(ctx, i, ch)

		mu.Lock()
		defer mu.Unlock()
		all = append(all, atoms...)
		if err != nil && firstErr == nil {
			firstErr = err
		}
	})

	if firstErr != nil {
		c.progress.setStatus(StatusError)
		return nil, fmt.Errorf("graph construction cancelled: %w", firstErr)
	}

	c.progress.setStatus(StatusFiltering)
	return all, nil
}

// buildChapter classifies one chapter's atoms: chapter-level paragraphs
// (when present) run as a single sequential sequence; otherwise each
// subsection runs as its own sequential sequence, with subsections
// themselves bounded in parallel per spec.md §4.2.1.
func (c *Constructor) buildChapter(ctx context.Context, chapterIndex int, ch *structure.Chapter) ([]AnnotatedAtom, error) {
	if len(ch.Subsections) == 0 {
		return c.buildSequence(ctx, paragraphSequence{paragraphs: ch.Paragraphs})
	}

	subWorkers := boundedWorkers(len(ch.Subsections), c.cfg.SubsectionWorkers)

	var mu sync.Mutex
	var all []AnnotatedAtom
	var firstErr error

	runBounded(len(ch.Subsections), subWorkers, func(i int) {
		sub := ch.Subsections[i]
		atoms, err := c.buildSequence(ctx, paragraphSequence{paragraphs: sub.Paragraphs})

		mu.Lock()
		defer mu.Unlock()
		all = append(all, atoms...)
		if err != nil && firstErr == nil {
			firstErr = err
		}
	})

	return all, firstErr
}

// buildSequence classifies every atom of a single paragraph sequence in
// reading order, threading the paragraph-local context window between
// calls.
func (c *Constructor) buildSequence(ctx context.Context, seq paragraphSequence) ([]AnnotatedAtom, error) {
	var out []AnnotatedAtom

	for pIdx, p := range seq.paragraphs {
		for aIdx, atom := range p.Atoms {
			window := contextWindow(seq, pIdx, aIdx)

			result, err := c.client.ProcessAtom(ctx, classifier.Target{ID: atom.ID, Text: atom.Text}, window)
			if err != nil {
				return out, err
			}
			c.progress.increment()

			rels := make([]ProposedRelationship, len(result.Relationships))
			for i, r := range result.Relationships {
				rels[i] = ProposedRelationship{
					TargetID:      r.TargetID,
					Type:          r.Type,
					Direction:     string(r.Direction),
					Justification: r.Justification,
				}
			}

			out = append(out, AnnotatedAtom{
				ID:             atom.ID,
				ParagraphID:    p.ID,
				Text:           atom.Text,
				Classification: result.Classification,
				Justification:  result.Justification,
				StartOffset:    atom.StartOffset,
				EndOffset:      atom.EndOffset,
				Relationships:  rels,
			})
		}
	}

	return out, nil
}

// stampAllAtomIDs assigns deterministic atom ids across the whole document
// before classification begins, so that proposed relationships' target_id
// values can reference any atom regardless of build order.
func stampAllAtomIDs(doc *structure.Document) {
	for i, ch := range doc.Chapters {
		stampAtomIDs(i, ch)
	}
}

func countAtoms(doc *structure.Document) int {
	total := 0
	for _, ch := range doc.Chapters {
		if len(ch.Subsections) == 0 {
			for _, p := range ch.Paragraphs {
				total += len(p.Atoms)
			}
			continue
		}
		for _, sub := range ch.Subsections {
			for _, p := range sub.Paragraphs {
				total += len(p.Atoms)
			}
		}
	}
	return total
}

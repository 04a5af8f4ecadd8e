package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/corpusgraph/corpusgraph/internal/ontology"
	"github.com/corpusgraph/corpusgraph/internal/providers"
)

// DefaultRetries and DefaultBackoffFactorSeconds are spec.md §4.2.2's
// defaults: up to 3 attempts, backoff_factor × 2^i seconds between them.
const (
	DefaultRetries              = 3
	DefaultBackoffFactorSeconds = 1.0
)

// Config configures a Client. Zero values fall back to spec defaults.
type Config struct {
	Rate                 float64
	Burst                float64
	Retries              int
	BackoffFactorSeconds float64
	Model                string
}

// Client implements spec.md §4.2.2's process_atom contract: one call per
// atom, rate-limited against a shared bucket, retried with exponential
// backoff, its response validated against an ontology-derived schema, with
// a fixed {classification: "Error", ...} fallback on exhaustion.
type Client struct {
	llm     providers.LLMClient
	limiter *RateLimiter
	schema  *jsonschema.Schema
	logger  *slog.Logger

	retries              int
	backoffFactorSeconds float64
	model                string
}

// NewClient builds a Client. The ontology is consulted once, at
// construction, to compile the response schema's classification and
// relationship-type enums. A nil logger falls back to slog.Default().
func NewClient(llm providers.LLMClient, ont *ontology.Ontology, cfg Config, logger *slog.Logger) (*Client, error) {
	schema, err := buildResponseSchema(ont)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	retries := cfg.Retries
	if retries <= 0 {
		retries = DefaultRetries
	}
	backoff := cfg.BackoffFactorSeconds
	if backoff <= 0 {
		backoff = DefaultBackoffFactorSeconds
	}

	return &Client{
		llm:                  llm,
		limiter:              NewRateLimiter(cfg.Rate, cfg.Burst),
		schema:               schema,
		logger:               logger.With("component", "classifier"),
		retries:              retries,
		backoffFactorSeconds: backoff,
		model:                cfg.Model,
	}, nil
}

// ProcessAtom is process_atom: it blocks on the shared rate limiter, then
// retries the classifier call with exponential backoff until a valid
// response arrives or retries are exhausted, in which case it returns the
// fixed Error fallback rather than an error value — only context
// cancellation propagates as an error, since everything else is handled by
// the fallback per spec.md §4.2.2.
func (c *Client) ProcessAtom(ctx context.Context, target Target, contextAtoms []ContextAtom) (Result, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Result{}, err
	}

	systemPrompt, err := buildSystemPrompt(target, contextAtoms)
	if err != nil {
		return fallback(fmt.Sprintf("failed to build prompt: %v", err)), nil
	}

	var parsed *response
	attempts := 0
	retryErr := retry.Do(
		func() error {
			attempts++
			parsed = nil

			req := &providers.ChatRequest{
				Model:     c.model,
				RequestID: uuid.NewString(),
				Messages: []providers.Message{
					{Role: "system", Content: systemPrompt},
					{Role: "user", Content: userPrompt},
				},
			}

			result, err := c.llm.Chat(ctx, req)
			if err != nil {
				return err
			}

			r, err := validateResponse(c.schema, extractJSONText(result.Content))
			if err != nil {
				return err
			}
			parsed = r
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(c.retries)),
		retry.Delay(time.Duration(c.backoffFactorSeconds*float64(time.Second))),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)

	if retryErr != nil && ctx.Err() != nil {
		return Result{}, ctx.Err()
	}
	if retryErr != nil || parsed == nil {
		c.logger.Warn("classifier exhausted retries, falling back to Error classification",
			"atom_id", target.ID, "attempts", attempts, "error", retryErr)
		return fallback(fmt.Sprintf("exhausted %d attempt(s): %v", attempts, retryErr)), nil
	}

	return Result{
		Classification: parsed.Classification,
		Justification:  parsed.Justification,
		Relationships:  parsed.Relationships,
	}, nil
}

func fallback(justification string) Result {
	return Result{
		Classification: ErrorClassification,
		Justification:  justification,
		Relationships:  nil,
	}
}

// extractJSONText strips a markdown code fence around the model's response
// if present; models asked for "JSON only" still occasionally wrap it.
func extractJSONText(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return trimmed
	}
	lines = lines[1:]
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

package providers

import (
	"net/http"
	"time"
)

// OpenRouterName is the provider identifier used in ChatResult.Provider.
const OpenRouterName = "openrouter"

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterConfig configures an OpenRouterClient.
type OpenRouterConfig struct {
	APIKey       string
	BaseURL      string // defaults to defaultOpenRouterBaseURL
	DefaultModel string
	MaxRetries   int           // defaults to 3
	RetryDelay   time.Duration // defaults to 500ms
	Timeout      time.Duration // defaults to 60s
	RPS          float64       // advertised request rate, for caller-side budgeting
	MaxConcurrency int         // advertised concurrent-request budget
}

// OpenRouterClient is an LLMClient backed by OpenRouter's chat completions
// API. Request/response marshaling and retry live in openrouter_chat.go and
// openrouter_http.go, structured-output validation in structured_output.go;
// this file only owns
// construction and the small set of client-identity accessors.
type OpenRouterClient struct {
	apiKey       string
	baseURL      string
	defaultModel string
	maxRetries   int
	retryDelay   time.Duration
	rps          float64
	maxConcurrency int
	client       *http.Client
}

// NewOpenRouterClient builds an OpenRouterClient from cfg, filling in
// defaults for anything left zero.
func NewOpenRouterClient(cfg OpenRouterConfig) *OpenRouterClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	retryDelay := cfg.RetryDelay
	if retryDelay <= 0 {
		retryDelay = 500 * time.Millisecond
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	maxConcurrency := cfg.MaxConcurrency
	if maxConcurrency <= 0 {
		maxConcurrency = 4
	}

	return &OpenRouterClient{
		apiKey:         cfg.APIKey,
		baseURL:        baseURL,
		defaultModel:   cfg.DefaultModel,
		maxRetries:     maxRetries,
		retryDelay:     retryDelay,
		rps:            cfg.RPS,
		maxConcurrency: maxConcurrency,
		client:         &http.Client{Timeout: timeout},
	}
}

// Name returns the client identifier.
func (c *OpenRouterClient) Name() string {
	return OpenRouterName
}

// RequestsPerSecond returns the advertised request rate for callers that
// budget their own rate limiter around this client (the classifier does).
func (c *OpenRouterClient) RequestsPerSecond() float64 {
	return c.rps
}

// MaxRetries returns the configured transport retry count.
func (c *OpenRouterClient) MaxRetries() int {
	return c.maxRetries
}

// RetryDelayBase returns the base delay used before exponential backoff.
func (c *OpenRouterClient) RetryDelayBase() time.Duration {
	return c.retryDelay
}

// MaxConcurrency returns the advertised concurrent-request budget.
func (c *OpenRouterClient) MaxConcurrency() int {
	return c.maxConcurrency
}

var _ LLMClient = (*OpenRouterClient)(nil)

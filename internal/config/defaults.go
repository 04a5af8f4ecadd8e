package config

import "fmt"

// Config is the full set of tunable knobs the core pipeline accepts, plus
// the classifier's model and API key and the ontology file paths. There is
// no persistence or HTTP-surface config here, because those are out of
// scope.
type Config struct {
	Rate        RateConfig        `mapstructure:"rate" yaml:"rate"`
	Classifier  ClassifierConfig  `mapstructure:"classifier" yaml:"classifier"`
	Concurrency ConcurrencyConfig `mapstructure:"concurrency" yaml:"concurrency"`
	Structure   StructureConfig   `mapstructure:"structure" yaml:"structure"`
	Ontology    OntologyConfig    `mapstructure:"ontology" yaml:"ontology"`
}

// RateConfig bounds the Classifier Client's token bucket.
type RateConfig struct {
	TokensPerSecond float64 `mapstructure:"tokens_per_second" yaml:"tokens_per_second"`
	Burst           int     `mapstructure:"burst" yaml:"burst"`
}

// ClassifierConfig bounds the Classifier Client's retry/backoff and carries
// its transport credentials.
type ClassifierConfig struct {
	APIKey                string  `mapstructure:"api_key" yaml:"api_key"`
	Model                 string  `mapstructure:"model" yaml:"model"`
	Retries               int     `mapstructure:"retries" yaml:"retries"`
	BackoffFactorSeconds  float64 `mapstructure:"backoff_factor_seconds" yaml:"backoff_factor_seconds"`
}

// ConcurrencyConfig bounds the Graph Constructor's per-chapter and
// per-subsection worker fan-out.
type ConcurrencyConfig struct {
	ChapterWorkers    int `mapstructure:"chapter_workers" yaml:"chapter_workers"`
	SubsectionWorkers int `mapstructure:"subsection_workers" yaml:"subsection_workers"`
}

// StructureConfig tunes the Structural Parser's fallback heuristics.
type StructureConfig struct {
	FallbackMinChars int `mapstructure:"fallback_min_chars" yaml:"fallback_min_chars"`
}

// OntologyConfig points at the taxonomy/ontology declaration files the
// Ontology Store loads at startup.
type OntologyConfig struct {
	TaxonomyPath string `mapstructure:"taxonomy_path" yaml:"taxonomy_path"`
	OntologyPath string `mapstructure:"ontology_path" yaml:"ontology_path"`
}

// DefaultConfig returns the baseline configuration before a file or
// environment overrides are applied.
func DefaultConfig() *Config {
	return &Config{
		Rate: RateConfig{
			TokensPerSecond: 2.0,
			Burst:           4,
		},
		Classifier: ClassifierConfig{
			Model:                "${OPENROUTER_MODEL}",
			Retries:              3,
			BackoffFactorSeconds: 1.0,
		},
		Concurrency: ConcurrencyConfig{
			ChapterWorkers:    4,
			SubsectionWorkers: 4,
		},
		Structure: StructureConfig{
			FallbackMinChars: 1000,
		},
		Ontology: OntologyConfig{
			TaxonomyPath: "ontology/taxonomy.json",
			OntologyPath: "ontology/ontology.json",
		},
	}
}

// Validate checks the loaded config for values the pipeline cannot run
// with, rather than letting them surface as confusing failures deep inside
// the Classifier Client or Graph Constructor.
func (c *Config) Validate() error {
	if c.Rate.TokensPerSecond <= 0 {
		return fmt.Errorf("rate.tokens_per_second must be positive, got %v", c.Rate.TokensPerSecond)
	}
	if c.Rate.Burst <= 0 {
		return fmt.Errorf("rate.burst must be positive, got %d", c.Rate.Burst)
	}
	if c.Classifier.Retries < 0 {
		return fmt.Errorf("classifier.retries must not be negative, got %d", c.Classifier.Retries)
	}
	if c.Classifier.BackoffFactorSeconds <= 0 {
		return fmt.Errorf("classifier.backoff_factor_seconds must be positive, got %v", c.Classifier.BackoffFactorSeconds)
	}
	if c.Concurrency.ChapterWorkers <= 0 {
		return fmt.Errorf("concurrency.chapter_workers must be positive, got %d", c.Concurrency.ChapterWorkers)
	}
	if c.Concurrency.SubsectionWorkers <= 0 {
		return fmt.Errorf("concurrency.subsection_workers must be positive, got %d", c.Concurrency.SubsectionWorkers)
	}
	if c.Structure.FallbackMinChars < 0 {
		return fmt.Errorf("structure.fallback_min_chars must not be negative, got %d", c.Structure.FallbackMinChars)
	}
	return nil
}

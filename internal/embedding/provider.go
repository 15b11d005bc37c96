// Package embedding wraps pretrained sentence-embedding models behind a
// single provider interface.
package embedding

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a caller asks to embed empty text.
	// Handlers are expected to reject empty user text before ranking.
	ErrEmptyInput = errors.New("embedding: empty input")
	// ErrEmbeddingFailed wraps model or API failures.
	ErrEmbeddingFailed = errors.New("embedding: generation failed")
	// ErrInvalidConfig is returned for unknown providers or models.
	ErrInvalidConfig = errors.New("embedding: invalid configuration")
)

// Provider converts text into fixed-length vectors. For a fixed model the
// same text always encodes to the same vector.
type Provider interface {
	// EmbedQuery encodes a single user query.
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	// EmbedDocuments encodes a batch of documents in one call.
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
	// Dimension returns the embedding dimension for the current model.
	Dimension() int
	// Close releases resources held by the provider.
	Close() error
}

// Config selects and parameterizes a provider.
type Config struct {
	// Provider is "fastembed" (local ONNX model, default) or "openai".
	Provider string
	// Model is the embedding model name.
	Model string
	// CacheDir is where FastEmbed caches downloaded model files.
	CacheDir string
	// APIKey authenticates against the OpenAI embeddings API.
	APIKey string
	// BaseURL overrides the OpenAI API endpoint (for compatible servers).
	BaseURL string
}

// NewProvider creates a provider from config. Construction is cheap for the
// OpenAI provider and expensive for FastEmbed (model download + ONNX
// session); wrap with NewLazy when startup latency matters.
func NewProvider(cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "fastembed", "":
		return NewFastEmbedProvider(FastEmbedConfig{
			Model:    cfg.Model,
			CacheDir: cfg.CacheDir,
		})
	case "openai":
		return NewOpenAIProvider(OpenAIConfig{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, cfg.Provider)
	}
}

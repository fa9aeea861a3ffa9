// Package embeddings provides local embedding generation for the semantic
// context scorer. The provider is optional: when it cannot be constructed
// (no ONNX runtime, no model cache) the dependent scorer degrades to "no
// signal" instead of failing.
package embeddings

import "errors"

// Sentinel errors for provider construction and use.
var (
	ErrInvalidConfig   = errors.New("embeddings: invalid config")
	ErrEmptyInput      = errors.New("embeddings: empty input")
	ErrEmbeddingFailed = errors.New("embeddings: embedding failed")
)

// Provider generates fixed-length vectors for text.
type Provider interface {
	// EmbedQuery embeds a single query string.
	EmbedQuery(text string) ([]float32, error)
	// EmbedPassages embeds multiple passage strings.
	EmbedPassages(texts []string) ([][]float32, error)
	// Dimension returns the embedding dimension for the current model.
	Dimension() int
	// Close releases resources held by the provider.
	Close() error
}

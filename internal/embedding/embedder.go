// Package embedding provides dense text embeddings via ONNX, with a
// deterministic mock for tests and TF-IDF-only fallback builds.
package embedding

import "context"

// Embedder maps text to fixed-dimension dense vectors. Scoring embeds whole
// corpora at once, so EmbedBatch is the primary operation.
type Embedder interface {
	// EmbedBatch returns one unit-length vector per input text.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	// Embed returns the vector for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)
	Dimensions() int
	Close() error
}

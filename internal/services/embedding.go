package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// embeddingTextLimit caps request size; the embedding model truncates
// longer input anyway.
const embeddingTextLimit = 40000

type EmbeddingService interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
	EmbedTextWithRetry(ctx context.Context, text string, maxRetries int) ([]float32, error)
}

type embeddingService struct {
	client     *genai.Client
	embedModel string
}

func NewEmbeddingService(apiKey string) (EmbeddingService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &embeddingService{
		client:     client,
		embedModel: "text-embedding-004",
	}, nil
}

// EmbedText implements EmbeddingService.
func (g *embeddingService) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if len(text) > embeddingTextLimit {
		text = text[:embeddingTextLimit]
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

// EmbedTextWithRetry implements EmbeddingService.
func (g *embeddingService) EmbedTextWithRetry(ctx context.Context, text string, maxRetries int) ([]float32, error) {
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		embedding, err := g.EmbedText(ctx, text)
		if err == nil {
			return embedding, nil
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}
	}

	return nil, fmt.Errorf("failed after %d attempts: %w", maxRetries, lastErr)
}

package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"goldenindex/internal/models"
	"goldenindex/internal/repositories"
)

type IndexerService interface {
	IndexAsset(ctx context.Context, assetID uuid.UUID) error
}

type indexerService struct {
	assetRepo        repositories.AssetRepository
	docRepo          repositories.DocumentRepository
	embeddingService EmbeddingService
	searchService    SearchService
	maxRetries       int
}

func NewIndexerService(
	assetRepo repositories.AssetRepository,
	docRepo repositories.DocumentRepository,
	embeddingService EmbeddingService,
	searchService SearchService,
	maxRetries int,
) IndexerService {
	return &indexerService{
		assetRepo:        assetRepo,
		docRepo:          docRepo,
		embeddingService: embeddingService,
		searchService:    searchService,
		maxRetries:       maxRetries,
	}
}

// IndexAsset embeds an asset's catalog text (name, summary, body and any
// attached document text) and upserts it into the search collection,
// tracking progress on the asset's index status.
func (s *indexerService) IndexAsset(ctx context.Context, assetID uuid.UUID) error {
	if err := s.assetRepo.UpdateIndexStatus(assetID, models.IndexWorking, nil); err != nil {
		return fmt.Errorf("failed to update index status: %w", err)
	}

	asset, err := s.assetRepo.FindByID(assetID)
	if err != nil {
		s.failIndex(assetID, err)
		return fmt.Errorf("failed to load asset: %w", err)
	}

	docs, err := s.docRepo.FindByAsset(assetID)
	if err != nil {
		s.failIndex(assetID, err)
		return fmt.Errorf("failed to load asset documents: %w", err)
	}

	text := buildIndexText(asset, docs)

	embedding, err := s.embeddingService.EmbedTextWithRetry(ctx, text, s.maxRetries)
	if err != nil {
		s.failIndex(assetID, err)
		return fmt.Errorf("failed to embed asset text: %w", err)
	}

	if err := s.searchService.UpsertAsset(ctx, asset.ID, asset.Name, asset.Summary, embedding); err != nil {
		s.failIndex(assetID, err)
		return fmt.Errorf("failed to upsert asset into index: %w", err)
	}

	if err := s.assetRepo.UpdateIndexStatus(assetID, models.IndexComplete, nil); err != nil {
		return fmt.Errorf("failed to mark asset indexed: %w", err)
	}

	log.Printf("✅ Asset %s indexed\n", assetID)
	return nil
}

func (s *indexerService) failIndex(assetID uuid.UUID, cause error) {
	msg := cause.Error()
	if err := s.assetRepo.UpdateIndexStatus(assetID, models.IndexFailed, &msg); err != nil {
		log.Printf("⚠️  Failed to record index failure for %s: %v\n", assetID, err)
	}
}

func buildIndexText(asset *models.Asset, docs []models.AssetDocument) string {
	var builder strings.Builder
	builder.WriteString(asset.Name)
	builder.WriteString("\n\n")
	builder.WriteString(asset.Summary)
	builder.WriteString("\n\n")
	builder.WriteString(CleanText(asset.Body))

	for _, tag := range asset.Tags {
		builder.WriteString("\n")
		builder.WriteString(tag.Name)
	}

	for _, doc := range docs {
		builder.WriteString("\n\n")
		builder.WriteString(CleanText(doc.ExtractedText))
	}

	return builder.String()
}

// Reindex every catalog asset: mark all assets pending and run the
// indexer over them once, synchronously. Useful after changing the
// embedding model or wiping the Qdrant collection.
//
// Usage: go run scripts/reindex_assets.go
package main

import (
	"context"
	"log"

	"goldenindex/internal/config"
	"goldenindex/internal/models"
	"goldenindex/internal/repositories"
	"goldenindex/internal/services"
)

func main() {
	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	assetRepo := repositories.NewAssetRepository(db)
	docRepo := repositories.NewDocumentRepository(db)

	embeddingService, err := services.NewEmbeddingService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize embedding service: %v", err)
	}

	searchService, err := services.NewSearchService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := searchService.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
	}

	indexer := services.NewIndexerService(
		assetRepo,
		docRepo,
		embeddingService,
		searchService,
		cfg.Worker.RetryMaxAttempts,
	)

	ctx := context.Background()
	reindexed, failed := 0, 0

	// Page through the whole catalog
	const pageSize = 50
	for offset := 0; ; offset += pageSize {
		assets, _, err := assetRepo.List(repositories.ListAssetsFilter{
			Limit:  pageSize,
			Offset: offset,
		})
		if err != nil {
			log.Fatalf("❌ Failed to list assets: %v", err)
		}
		if len(assets) == 0 {
			break
		}

		for _, asset := range assets {
			if err := assetRepo.UpdateIndexStatus(asset.ID, models.IndexPending, nil); err != nil {
				log.Printf("⚠️  Failed to mark %s pending: %v\n", asset.ID, err)
				failed++
				continue
			}
			if err := indexer.IndexAsset(ctx, asset.ID); err != nil {
				log.Printf("❌ Failed to index %s (%s): %v\n", asset.Slug, asset.ID, err)
				failed++
				continue
			}
			reindexed++
		}
	}

	log.Printf("✅ Reindex complete: %d indexed, %d failed\n", reindexed, failed)
}

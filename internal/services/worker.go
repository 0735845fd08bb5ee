package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"goldenindex/internal/repositories"
)

type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueAsset(assetID uuid.UUID)
}

type worker struct {
	assetRepo   repositories.AssetRepository
	indexer     IndexerService
	jobQueue    chan uuid.UUID
	concurrency int
	wg          sync.WaitGroup
	stopChan    chan struct{}
}

func NewWorker(
	assetRepo repositories.AssetRepository,
	indexer IndexerService,
	concurrency int,
) Worker {
	return &worker{
		assetRepo:   assetRepo,
		indexer:     indexer,
		jobQueue:    make(chan uuid.UUID, 100),
		concurrency: concurrency,
		stopChan:    make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting indexing worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	// Poll for assets whose index run was missed or interrupted
	w.wg.Add(1)
	go w.pollPendingAssets(ctx)
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping indexing worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Indexing worker stopped")
}

// EnqueueAsset implements Worker.
func (w *worker) EnqueueAsset(assetID uuid.UUID) {
	select {
	case w.jobQueue <- assetID:
		log.Printf("📥 Asset %s queued for indexing\n", assetID)
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot queue asset %s\n", assetID)
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case assetID := <-w.jobQueue:
			if err := w.indexer.IndexAsset(ctx, assetID); err != nil {
				log.Printf("❌ Worker #%d failed to index asset %s: %v\n", workerID, assetID, err)
			}
		}
	}
}

func (w *worker) pollPendingAssets(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ticker.C:
			pending, err := w.assetRepo.FindPendingIndex(10)
			if err != nil {
				log.Printf("⚠️  Failed to fetch assets pending indexing: %v\n", err)
				continue
			}

			for _, asset := range pending {
				w.EnqueueAsset(asset.ID)
			}
		}
	}
}

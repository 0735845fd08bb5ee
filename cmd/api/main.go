package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"goldenindex/internal/config"
	"goldenindex/internal/handlers"
	"goldenindex/internal/repositories"
	"goldenindex/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	assetRepo := repositories.NewAssetRepository(db)
	taxonomyRepo := repositories.NewTaxonomyRepository(db)
	docRepo := repositories.NewDocumentRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	contentService := services.NewContentService()
	log.Println("✅ Services initialized successfully")

	// Initialize embeddings
	embeddingService, err := services.NewEmbeddingService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize embedding service: %v", err)
	}
	log.Println("✅ Embedding service initialized successfully")

	// Initialize Qdrant
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
	log.Println("✅ Qdrant initialized successfully")

	// Initialize indexer
	indexerService := services.NewIndexerService(
		assetRepo,
		docRepo,
		embeddingService,
		searchService,
		cfg.Worker.RetryMaxAttempts,
	)
	log.Println("✅ Indexer service initialized")

	// Initialize worker
	worker := services.NewWorker(
		assetRepo,
		indexerService,
		cfg.Worker.Concurrency,
	)

	// Start worker
	ctx := context.Background()
	worker.Start(ctx)
	log.Println("✅ Indexing worker started successfully")

	// Initialize Handlers
	assetHandler := handlers.NewAssetHandler(
		assetRepo,
		taxonomyRepo,
		contentService,
		searchService,
		worker,
	)
	taxonomyHandler := handlers.NewTaxonomyHandler(taxonomyRepo)
	uploadHandler := handlers.NewUploadHandler(
		assetRepo,
		docRepo,
		storageService,
		pdfParser,
		worker,
		cfg.Storage.MaxFileSize,
	)
	searchHandler := handlers.NewSearchHandler(
		assetRepo,
		embeddingService,
		searchService,
		cfg.Worker.RetryMaxAttempts,
	)
	decisionHandler := handlers.NewDecisionHandler()
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Golden Index API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Catalog
	api.Post("/assets", assetHandler.HandleCreateAsset)
	api.Get("/assets", assetHandler.HandleListAssets)
	api.Get("/assets/:id", assetHandler.HandleGetAsset)
	api.Get("/assets/:id/content", assetHandler.HandleGetAssetContent)
	api.Put("/assets/:id", assetHandler.HandleUpdateAsset)
	api.Delete("/assets/:id", assetHandler.HandleDeleteAsset)
	api.Post("/assets/:id/documents", uploadHandler.HandleUploadDocument)
	api.Get("/search", searchHandler.HandleSearch)

	// Taxonomy
	api.Post("/categories", taxonomyHandler.HandleCreateCategory)
	api.Get("/categories", taxonomyHandler.HandleListCategories)
	api.Delete("/categories/:id", taxonomyHandler.HandleDeleteCategory)
	api.Get("/tags", taxonomyHandler.HandleListTags)

	// Decision support
	decision := api.Group("/decision")
	decision.Get("/criteria/:group", decisionHandler.HandleGetCriteria)
	decision.Post("/criteria/:group/evaluate", decisionHandler.HandleEvaluateCriteria)
	decision.Get("/sourcing/criteria", decisionHandler.HandleGetSourcingCriteria)
	decision.Post("/sourcing/compare", decisionHandler.HandleCompareSourcing)
	decision.Get("/orchestration/questions", decisionHandler.HandleGetQuestions)
	decision.Post("/orchestration/advance", decisionHandler.HandleAdvanceOrchestration)
	decision.Get("/tco/cost-items", decisionHandler.HandleGetCostItems)
	decision.Post("/tco/summary", decisionHandler.HandleTCOSummary)
	decision.Post("/tco/chart", decisionHandler.HandleTCOChart)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Golden Index API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/assets",
				"GET /api/v1/search",
				"GET /api/v1/decision/orchestration/questions",
				"POST /api/v1/decision/orchestration/advance",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"goldenindex/internal/models"
	"goldenindex/internal/repositories"
	"goldenindex/internal/services"
)

type UploadHandler struct {
	assetRepo      repositories.AssetRepository
	docRepo        repositories.DocumentRepository
	storageService services.StorageService
	pdfParser      services.PDFParserService
	worker         services.Worker
	maxFileSize    int64
}

func NewUploadHandler(
	assetRepo repositories.AssetRepository,
	docRepo repositories.DocumentRepository,
	storageService services.StorageService,
	pdfParser services.PDFParserService,
	worker services.Worker,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		assetRepo:      assetRepo,
		docRepo:        docRepo,
		storageService: storageService,
		pdfParser:      pdfParser,
		worker:         worker,
		maxFileSize:    maxFileSize,
	}
}

// HandleUploadDocument handles POST /assets/:id/documents
func (h *UploadHandler) HandleUploadDocument(c *fiber.Ctx) error {
	assetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid asset ID format",
		})
	}

	asset, err := h.assetRepo.FindByID(assetID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Asset not found",
		})
	}

	file, err := c.FormFile("document")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No 'document' file in form. Upload a PDF under the 'document' field.",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Document too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveDocument(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save document: %v", err),
		})
	}

	// Extract text now so indexing never has to reopen the PDF
	content, err := h.pdfParser.ExtractText(filePath)
	if err != nil {
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to extract document text: %v", err),
		})
	}

	doc := models.AssetDocument{
		ID:               uuid.New(),
		AssetID:          asset.ID,
		Filename:         filename,
		OriginalFileName: file.Filename,
		FilePath:         filePath,
		PageCount:        content.PageCount,
		ExtractedText:    content.Text,
		CreatedAt:        time.Now(),
	}

	if err := h.docRepo.Create(&doc); err != nil {
		// Cleanup stored file if the database insert fails
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save document record",
		})
	}

	// New document text changes the asset's search vector
	if err := h.assetRepo.UpdateIndexStatus(asset.ID, models.IndexPending, nil); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to queue asset for re-indexing",
		})
	}
	h.worker.EnqueueAsset(asset.ID)

	return c.Status(fiber.StatusCreated).JSON(models.DocumentUploadResponse{
		ID:           doc.ID.String(),
		Filename:     doc.Filename,
		OriginalName: doc.OriginalFileName,
		PageCount:    doc.PageCount,
	})
}

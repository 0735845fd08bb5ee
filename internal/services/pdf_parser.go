package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFParserService interface {
	ExtractText(filePath string) (*PDFContent, error)
}

type PDFContent struct {
	Text      string
	PageCount int
	FilePath  string
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractText pulls the plain text out of an attached PDF so it can feed
// the asset's search embedding. Pages that fail to decode are skipped.
func (p *pdfParserService) ExtractText(filePath string) (*PDFContent, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", filePath)
	}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text content found in PDF")
	}

	return &PDFContent{
		Text:      text,
		PageCount: totalPage,
		FilePath:  filePath,
	}, nil
}

// CleanText collapses blank lines and trims whitespace before the text is
// embedded.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}

package services

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type ContentService interface {
	Render(markdown string) (*RenderedContent, error)
}

// RenderedContent is an asset body rendered to HTML plus a hash of the
// source markdown, so clients can skip re-fetching unchanged content.
type RenderedContent struct {
	HTML        string
	ContentHash string
}

type contentService struct {
	md goldmark.Markdown
}

func NewContentService() ContentService {
	return &contentService{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// Render implements ContentService.
func (c *contentService) Render(markdown string) (*RenderedContent, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdown), &buf); err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}

	sum := sha256.Sum256([]byte(markdown))

	return &RenderedContent{
		HTML:        buf.String(),
		ContentHash: hex.EncodeToString(sum[:]),
	}, nil
}

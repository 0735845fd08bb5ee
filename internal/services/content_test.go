package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContentService_Render(t *testing.T) {
	svc := NewContentService()

	rendered, err := svc.Render("# Golden Index\n\nSome **catalog** text.")
	require.NoError(t, err)
	require.Contains(t, rendered.HTML, "<h1>Golden Index</h1>")
	require.Contains(t, rendered.HTML, "<strong>catalog</strong>")
	require.Len(t, rendered.ContentHash, 64)
}

func TestContentService_HashTracksSource(t *testing.T) {
	svc := NewContentService()

	first, err := svc.Render("body v1")
	require.NoError(t, err)
	same, err := svc.Render("body v1")
	require.NoError(t, err)
	changed, err := svc.Render("body v2")
	require.NoError(t, err)

	require.Equal(t, first.ContentHash, same.ContentHash)
	require.NotEqual(t, first.ContentHash, changed.ContentHash)
}

func TestCleanText(t *testing.T) {
	got := CleanText("  first line \n\n\n   second line\n\n")
	require.Equal(t, "first line\nsecond line", got)
}

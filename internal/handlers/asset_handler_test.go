package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"goldenindex/internal/models"
	"goldenindex/internal/repositories"
	"goldenindex/internal/services"
)

// In-memory fakes. Every handler dependency is an interface, so the tests
// run against these instead of Postgres, Qdrant and the worker pool.

type fakeAssetRepo struct {
	assets map[uuid.UUID]*models.Asset
}

func newFakeAssetRepo() *fakeAssetRepo {
	return &fakeAssetRepo{assets: make(map[uuid.UUID]*models.Asset)}
}

func (r *fakeAssetRepo) Create(asset *models.Asset) error {
	r.assets[asset.ID] = asset
	return nil
}

func (r *fakeAssetRepo) FindByID(id uuid.UUID) (*models.Asset, error) {
	asset, ok := r.assets[id]
	if !ok {
		return nil, fmt.Errorf("asset not found")
	}
	copied := *asset
	return &copied, nil
}

func (r *fakeAssetRepo) FindBySlug(slug string) (*models.Asset, error) {
	for _, asset := range r.assets {
		if asset.Slug == slug {
			copied := *asset
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("asset not found")
}

func (r *fakeAssetRepo) List(filter repositories.ListAssetsFilter) ([]models.Asset, int64, error) {
	var out []models.Asset
	for _, asset := range r.assets {
		if filter.Status != "" && string(asset.Status) != filter.Status {
			continue
		}
		out = append(out, *asset)
	}
	return out, int64(len(out)), nil
}

func (r *fakeAssetRepo) Update(asset *models.Asset) error {
	if _, ok := r.assets[asset.ID]; !ok {
		return fmt.Errorf("asset not found")
	}
	r.assets[asset.ID] = asset
	return nil
}

func (r *fakeAssetRepo) Delete(id uuid.UUID) error {
	if _, ok := r.assets[id]; !ok {
		return fmt.Errorf("asset not found")
	}
	delete(r.assets, id)
	return nil
}

func (r *fakeAssetRepo) ReplaceTags(asset *models.Asset, tags []models.Tag) error {
	if stored, ok := r.assets[asset.ID]; ok {
		stored.Tags = tags
	}
	return nil
}

func (r *fakeAssetRepo) UpdateIndexStatus(id uuid.UUID, status models.IndexStatus, indexErr *string) error {
	asset, ok := r.assets[id]
	if !ok {
		return fmt.Errorf("asset not found")
	}
	asset.IndexStatus = status
	asset.IndexError = indexErr
	return nil
}

func (r *fakeAssetRepo) FindPendingIndex(limit int) ([]models.Asset, error) {
	var out []models.Asset
	for _, asset := range r.assets {
		if asset.IndexStatus == models.IndexPending && len(out) < limit {
			out = append(out, *asset)
		}
	}
	return out, nil
}

type fakeTaxonomyRepo struct {
	categories map[uuid.UUID]*models.Category
}

func newFakeTaxonomyRepo() *fakeTaxonomyRepo {
	return &fakeTaxonomyRepo{categories: make(map[uuid.UUID]*models.Category)}
}

func (r *fakeTaxonomyRepo) CreateCategory(category *models.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeTaxonomyRepo) FindCategoryByID(id uuid.UUID) (*models.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, fmt.Errorf("category not found")
	}
	return category, nil
}

func (r *fakeTaxonomyRepo) ListCategories() ([]models.Category, error) {
	var out []models.Category
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeTaxonomyRepo) DeleteCategory(id uuid.UUID) error {
	if _, ok := r.categories[id]; !ok {
		return fmt.Errorf("category not found")
	}
	delete(r.categories, id)
	return nil
}

func (r *fakeTaxonomyRepo) ListTags() ([]models.Tag, error) {
	return nil, nil
}

func (r *fakeTaxonomyRepo) FindOrCreateTags(names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, models.Tag{ID: uuid.New(), Name: name})
	}
	return tags, nil
}

type fakeSearchService struct {
	removed []uuid.UUID
}

func (s *fakeSearchService) InitCollection() error { return nil }

func (s *fakeSearchService) UpsertAsset(ctx context.Context, assetID uuid.UUID, name, summary string, embedding []float32) error {
	return nil
}

func (s *fakeSearchService) Search(ctx context.Context, queryEmbedding []float32, limit int) ([]services.AssetHit, error) {
	return nil, nil
}

func (s *fakeSearchService) RemoveAsset(ctx context.Context, assetID uuid.UUID) error {
	s.removed = append(s.removed, assetID)
	return nil
}

type fakeWorker struct {
	enqueued []uuid.UUID
}

func (w *fakeWorker) Start(ctx context.Context) {}

func (w *fakeWorker) Stop() {}

func (w *fakeWorker) EnqueueAsset(assetID uuid.UUID) {
	w.enqueued = append(w.enqueued, assetID)
}

func putJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

type assetTestEnv struct {
	app       *fiber.App
	assetRepo *fakeAssetRepo
	search    *fakeSearchService
	worker    *fakeWorker
}

func newAssetTestEnv() *assetTestEnv {
	env := &assetTestEnv{
		assetRepo: newFakeAssetRepo(),
		search:    &fakeSearchService{},
		worker:    &fakeWorker{},
	}

	h := NewAssetHandler(
		env.assetRepo,
		newFakeTaxonomyRepo(),
		services.NewContentService(),
		env.search,
		env.worker,
	)

	app := fiber.New()
	app.Post("/assets", h.HandleCreateAsset)
	app.Get("/assets", h.HandleListAssets)
	app.Get("/assets/:id", h.HandleGetAsset)
	app.Get("/assets/:id/content", h.HandleGetAssetContent)
	app.Put("/assets/:id", h.HandleUpdateAsset)
	app.Delete("/assets/:id", h.HandleDeleteAsset)

	env.app = app
	return env
}

func (env *assetTestEnv) seedAsset(t *testing.T) *models.Asset {
	t.Helper()

	asset := &models.Asset{
		ID:          uuid.New(),
		Name:        "Invoice Matching Bot",
		Slug:        "invoice-matching-bot",
		Summary:     "Matches invoices against purchase orders",
		Body:        "# Invoice Matching\n\nAutomated three-way match.",
		Status:      models.AssetActive,
		IndexStatus: models.IndexComplete,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, env.assetRepo.Create(asset))
	return asset
}

func TestHandleCreateAsset(t *testing.T) {
	env := newAssetTestEnv()

	resp := postJSON(t, env.app, "/assets", models.CreateAssetRequest{
		Name:    "Claims Triage",
		Slug:    "claims-triage",
		Summary: "Routes inbound claims",
		Tags:    []string{"insurance", "triage"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Asset
	decodeBody(t, resp, &created)

	require.Equal(t, "claims-triage", created.Slug)
	require.Equal(t, models.AssetIncubating, created.Status)
	require.Equal(t, models.IndexPending, created.IndexStatus)
	require.Len(t, created.Tags, 2)

	// Creation queues the asset for search indexing
	require.Equal(t, []uuid.UUID{created.ID}, env.worker.enqueued)
}

func TestHandleCreateAssetValidation(t *testing.T) {
	env := newAssetTestEnv()

	tests := []struct {
		name string
		req  models.CreateAssetRequest
	}{
		{name: "missing name", req: models.CreateAssetRequest{Slug: "x"}},
		{name: "missing slug", req: models.CreateAssetRequest{Name: "X"}},
		{name: "bad category id", req: models.CreateAssetRequest{Name: "X", Slug: "x", CategoryID: "not-a-uuid"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, env.app, "/assets", tt.req)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHandleCreateAssetUnknownCategory(t *testing.T) {
	env := newAssetTestEnv()

	resp := postJSON(t, env.app, "/assets", models.CreateAssetRequest{
		Name:       "X",
		Slug:       "x",
		CategoryID: uuid.NewString(),
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleGetAsset(t *testing.T) {
	env := newAssetTestEnv()
	asset := env.seedAsset(t)

	req := httptest.NewRequest(http.MethodGet, "/assets/"+asset.ID.String(), nil)
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.Asset
	decodeBody(t, resp, &got)
	require.Equal(t, asset.ID, got.ID)
	require.Equal(t, asset.Slug, got.Slug)
}

func TestHandleGetAssetNotFound(t *testing.T) {
	env := newAssetTestEnv()

	req := httptest.NewRequest(http.MethodGet, "/assets/"+uuid.NewString(), nil)
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleGetAssetContent(t *testing.T) {
	env := newAssetTestEnv()
	asset := env.seedAsset(t)

	req := httptest.NewRequest(http.MethodGet, "/assets/"+asset.ID.String()+"/content", nil)
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var content models.AssetContentResponse
	decodeBody(t, resp, &content)

	require.Equal(t, asset.ID.String(), content.ID)
	require.Contains(t, content.HTML, "<h1>Invoice Matching</h1>")
	require.NotEmpty(t, content.ContentHash)
}

func TestHandleUpdateAsset(t *testing.T) {
	env := newAssetTestEnv()
	asset := env.seedAsset(t)

	newName := "Invoice Matching Bot v2"
	resp := putJSON(t, env.app, "/assets/"+asset.ID.String(), models.UpdateAssetRequest{
		Name: &newName,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Asset
	decodeBody(t, resp, &updated)

	require.Equal(t, newName, updated.Name)
	// Any update invalidates the search vector
	require.Equal(t, models.IndexPending, updated.IndexStatus)
	require.Equal(t, []uuid.UUID{asset.ID}, env.worker.enqueued)
}

func TestHandleDeleteAsset(t *testing.T) {
	env := newAssetTestEnv()
	asset := env.seedAsset(t)

	req := httptest.NewRequest(http.MethodDelete, "/assets/"+asset.ID.String(), nil)
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Deletion also drops the search vector
	require.Equal(t, []uuid.UUID{asset.ID}, env.search.removed)

	_, err = env.assetRepo.FindByID(asset.ID)
	require.Error(t, err)
}

func TestHandleListAssets(t *testing.T) {
	env := newAssetTestEnv()
	env.seedAsset(t)

	req := httptest.NewRequest(http.MethodGet, "/assets?status=active", nil)
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list models.ListAssetsResponse
	decodeBody(t, resp, &list)

	require.Equal(t, int64(1), list.Total)
	require.Len(t, list.Assets, 1)
	require.Equal(t, 20, list.Limit)
}

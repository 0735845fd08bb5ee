package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

type SearchService interface {
	InitCollection() error
	UpsertAsset(ctx context.Context, assetID uuid.UUID, name, summary string, embedding []float32) error
	Search(ctx context.Context, queryEmbedding []float32, limit int) ([]AssetHit, error)
	RemoveAsset(ctx context.Context, assetID uuid.UUID) error
}

type AssetHit struct {
	AssetID string
	Name    string
	Summary string
	Score   float32
}

type searchService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewSearchService(urlStr, apiKey, collectionName string) (SearchService, error) {
	// Parse URL to extract host, port, and TLS usage
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// For gRPC client, use port 6334 by default (gRPC port)
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &searchService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 size
	}, nil
}

// InitCollection implements SearchService.
func (s *searchService) InitCollection() error {
	ctx := context.Background()

	exists, err := s.client.CollectionExists(ctx, s.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Collection already exists")
		return nil
	}

	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: s.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     s.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", s.collectionName)
	return nil
}

// UpsertAsset implements SearchService. The point id derives from the
// asset id so re-indexing overwrites the previous vector instead of
// accumulating duplicates.
func (s *searchService) UpsertAsset(ctx context.Context, assetID uuid.UUID, name, summary string, embedding []float32) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDNum(uint64(assetID.ID())),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"asset_id": assetID.String(),
			"name":     name,
			"summary":  summary,
		}),
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}

// Search implements SearchService.
func (s *searchService) Search(ctx context.Context, queryEmbedding []float32, limit int) ([]AssetHit, error) {
	searchResult, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	var hits []AssetHit
	for _, point := range searchResult {
		payload := point.Payload

		hit := AssetHit{Score: point.Score}

		if assetID, ok := payload["asset_id"]; ok {
			if val, ok := assetID.GetKind().(*qdrant.Value_StringValue); ok {
				hit.AssetID = val.StringValue
			}
		}
		if name, ok := payload["name"]; ok {
			if val, ok := name.GetKind().(*qdrant.Value_StringValue); ok {
				hit.Name = val.StringValue
			}
		}
		if summary, ok := payload["summary"]; ok {
			if val, ok := summary.GetKind().(*qdrant.Value_StringValue); ok {
				hit.Summary = val.StringValue
			}
		}

		hits = append(hits, hit)
	}

	return hits, nil
}

// RemoveAsset implements SearchService.
func (s *searchService) RemoveAsset(ctx context.Context, assetID uuid.UUID) error {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("asset_id", assetID.String()),
		},
	}

	_, err := s.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: s.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: filter,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to remove asset from index: %w", err)
	}

	return nil
}

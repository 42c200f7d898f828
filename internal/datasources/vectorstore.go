package datasources

import (
	"context"
	"time"

	"github.com/decodeat/recommendation-service/internal/domain"
)

// ProductMetadata is the denormalized product payload stored alongside each
// vector, sufficient to score and explain a recommendation without a second
// datastore round trip.
type ProductMetadata struct {
	Name            string
	Carbohydrate    float64
	Protein         float64
	Fat             float64
	TotalCalories   float64
	MainIngredients []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	SchemaVersion   int
}

// Ratios reconstructs the nutrition ratios persisted in the metadata.
func (m ProductMetadata) Ratios() domain.NutritionRatios {
	return domain.NutritionRatios{
		Carbohydrate:  m.Carbohydrate,
		Protein:       m.Protein,
		Fat:           m.Fat,
		TotalCalories: m.TotalCalories,
	}
}

// ProductRecord is a product as stored in the vector index.
type ProductRecord struct {
	ID       int64
	Vector   []float32
	Metadata ProductMetadata
}

// SimilarProduct is a nearest-neighbor result. Distance is the vector store's
// distance metric, where 0 means identical.
type SimilarProduct struct {
	ID       int64
	Distance float64
	Metadata ProductMetadata
}

type ProductUpserter interface {
	UpsertProduct(ctx context.Context, record ProductRecord) error
}

type ProductFetcher interface {
	FetchProducts(ctx context.Context, ids []int64, includeVectors bool) (map[int64]ProductRecord, error)
}

type ProductLister interface {
	ListProducts(ctx context.Context, limit int) ([]ProductRecord, error)
}

type SimilarProductQuerier interface {
	QuerySimilarProducts(
		ctx context.Context,
		vector []float32,
		count int,
		excludeIDs []int64,
	) ([]SimilarProduct, error)
}

type ProductDeleter interface {
	DeleteProduct(ctx context.Context, id int64) error
}

type ProductCounter interface {
	CountProducts(ctx context.Context) (int64, error)
}

type AvailabilityProber interface {
	IsAvailable(ctx context.Context) bool
}

// ProductVectorStore combines all product vector index capabilities.
type ProductVectorStore interface {
	ProductUpserter
	ProductFetcher
	ProductLister
	SimilarProductQuerier
	ProductDeleter
	ProductCounter
	AvailabilityProber
}

// NullProductVectorStore is a null implementation of ProductVectorStore.
type NullProductVectorStore struct{}

var _ ProductVectorStore = NullProductVectorStore{}

func (NullProductVectorStore) UpsertProduct(_ context.Context, _ ProductRecord) error {
	return nil
}

func (NullProductVectorStore) FetchProducts(
	_ context.Context,
	_ []int64,
	_ bool,
) (map[int64]ProductRecord, error) {
	return nil, nil
}

func (NullProductVectorStore) ListProducts(_ context.Context, _ int) ([]ProductRecord, error) {
	return nil, nil
}

func (NullProductVectorStore) QuerySimilarProducts(
	_ context.Context,
	_ []float32,
	_ int,
	_ []int64,
) ([]SimilarProduct, error) {
	return nil, nil
}

func (NullProductVectorStore) DeleteProduct(_ context.Context, _ int64) error {
	return nil
}

func (NullProductVectorStore) CountProducts(_ context.Context) (int64, error) {
	return 0, nil
}

func (NullProductVectorStore) IsAvailable(_ context.Context) bool {
	return false
}

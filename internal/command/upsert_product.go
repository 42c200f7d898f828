package command

import (
	"context"
	"fmt"
	"time"

	"github.com/decodeat/recommendation-service/internal/datasources"
	"github.com/decodeat/recommendation-service/internal/domain"
)

// MetadataSchemaVersion tags stored product metadata so future readers can
// migrate older records.
const MetadataSchemaVersion = 1

// UpsertProductRequest registers or replaces a product in the vector index.
type UpsertProductRequest struct {
	ProductID     int64
	Name          string
	NutritionInfo map[string]string
	Ingredients   []string
}

type UpsertProduct struct {
	Embedder datasources.Embedder
	Upserter datasources.ProductUpserter

	Now func() time.Time
}

var _ Command[UpsertProductRequest, Empty] = (*UpsertProduct)(nil)

// Execute derives the product's embedding, nutrition ratios and main
// ingredients, then writes the vector and metadata in one replace-or-create
// upsert. Readers never observe a transient missing state during an update.
func (c *UpsertProduct) Execute(ctx context.Context, req UpsertProductRequest) (Empty, error) {
	text := domain.EmbeddingText(req.Name, req.NutritionInfo, req.Ingredients)

	embedding, err := c.Embedder.EmbedText(ctx, text)
	if err != nil {
		return Empty{}, fmt.Errorf("embedding product text: %w", err)
	}

	ratios := domain.CalculateNutritionRatios(req.NutritionInfo)
	mainIngredients := domain.ExtractMainIngredients(req.Ingredients, domain.DefaultMainIngredientCount)

	now := c.now()
	record := datasources.ProductRecord{
		ID:     req.ProductID,
		Vector: domain.NormalizeEmbedding(embedding),
		Metadata: datasources.ProductMetadata{
			Name:            req.Name,
			Carbohydrate:    ratios.Carbohydrate,
			Protein:         ratios.Protein,
			Fat:             ratios.Fat,
			TotalCalories:   ratios.TotalCalories,
			MainIngredients: mainIngredients,
			CreatedAt:       now,
			UpdatedAt:       now,
			SchemaVersion:   MetadataSchemaVersion,
		},
	}

	if err := c.Upserter.UpsertProduct(ctx, record); err != nil {
		return Empty{}, fmt.Errorf("upserting product [%d]: %w", req.ProductID, err)
	}

	return Empty{}, nil
}

func (c *UpsertProduct) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

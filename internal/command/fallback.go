package command

import (
	"context"

	"github.com/decodeat/recommendation-service/internal/datasources"
	"github.com/decodeat/recommendation-service/internal/domain"
)

const (
	fallbackBaseScore  = 0.8
	fallbackScoreStep  = 0.05
	fallbackScoreFloor = 0.3
)

// PopularityFallback produces a best-effort recommendation list when no
// personalized path succeeded. It samples stored products in the store's
// listing order and assigns descending synthetic scores. It never returns
// an error: if the store is empty or unreachable, the list is empty and the
// caller treats that as the terminal state.
type PopularityFallback struct {
	ProductLister datasources.ProductLister
}

func (c *PopularityFallback) Recommend(ctx context.Context, limit int) []domain.Recommendation {
	products, err := c.ProductLister.ListProducts(ctx, limit)
	if err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx,
			"listing products for popularity fallback, returning none",
			"error", err)
		return nil
	}

	recommendations := make([]domain.Recommendation, 0, len(products))
	for i, product := range products {
		if i >= limit {
			break
		}

		score := fallbackBaseScore - fallbackScoreStep*float64(i)
		if score < fallbackScoreFloor {
			score = fallbackScoreFloor
		}

		recommendations = append(recommendations, domain.Recommendation{
			ProductID:       product.ID,
			SimilarityScore: score,
			Reason:          "popular product",
			Type:            domain.RecommendationTypePopularity,
		})
	}

	return recommendations
}

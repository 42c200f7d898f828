package command

import (
	"context"
	"fmt"
	"sort"

	"github.com/decodeat/recommendation-service/internal/cache"
	"github.com/decodeat/recommendation-service/internal/datasources"
	"github.com/decodeat/recommendation-service/internal/domain"
)

// RecommendByProductRequest asks for products similar to a reference product.
type RecommendByProductRequest struct {
	ProductID int64
	Limit     int
}

type RecommendByProduct struct {
	ProductFetcher datasources.ProductFetcher
	ProductLister  datasources.ProductLister
	Prober         datasources.AvailabilityProber
	Fallback       *PopularityFallback
	Cache          *cache.Results[RecommendationSet]

	Weights       domain.SimilarityWeights
	CandidateScan int
	MinScore      float64
}

var _ Command[RecommendByProductRequest, RecommendationSet] = (*RecommendByProduct)(nil)

// Execute runs the product-based recommendation cascade: score stored
// candidates against the reference product, fall back to popularity when the
// primary path produces nothing, and never surface a dependency failure.
func (c *RecommendByProduct) Execute(
	ctx context.Context,
	req RecommendByProductRequest,
) (RecommendationSet, error) {
	signature := cache.Signature("recommend_by_product", map[string]any{
		"product_id": req.ProductID,
		"limit":      req.Limit,
	})
	if cached, ok := c.Cache.Get(signature); ok {
		return cached, nil
	}

	recommendations := c.primary(ctx, req)
	if len(recommendations) > 0 {
		set := RecommendationSet{
			Recommendations: recommendations,
			Type:            domain.RecommendationTypeProductBased,
			DataQuality:     EvaluateQuality(recommendations, nil),
			Message:         productBasedMessage(recommendations),
		}
		c.Cache.Set(signature, set)
		return set, nil
	}

	fallback := c.Fallback.Recommend(ctx, req.Limit)
	if len(fallback) > 0 {
		return RecommendationSet{
			Recommendations: fallback,
			Type:            domain.RecommendationTypeFallback,
			DataQuality:     domain.DataQualityFair,
			Message:         "no similar products found, recommending popular products",
		}, nil
	}

	return RecommendationSet{
		Recommendations: []domain.Recommendation{},
		Type:            domain.RecommendationTypeNone,
		DataQuality:     domain.DataQualityPoor,
		Message:         "no recommendations available for this product",
	}, nil
}

// primary scores stored candidates against the reference product. Any
// dependency failure or missing reference degrades to an empty list, which
// sends the cascade to the fallback state.
func (c *RecommendByProduct) primary(
	ctx context.Context,
	req RecommendByProductRequest,
) []domain.Recommendation {
	logger := domain.LoggerFromContext(ctx)

	if !c.Prober.IsAvailable(ctx) {
		logger.WarnContext(ctx, "vector store unavailable, skipping primary recommendation path")
		return nil
	}

	reference, err := c.fetchReference(ctx, req.ProductID)
	if err != nil {
		logger.WarnContext(ctx, "resolving reference product, falling back",
			"product_id", req.ProductID,
			"error", err)
		return nil
	}

	candidates, err := c.ProductLister.ListProducts(ctx, c.CandidateScan)
	if err != nil {
		logger.WarnContext(ctx, "listing candidate products, falling back",
			"error", err)
		return nil
	}

	referenceRatios := reference.Metadata.Ratios()
	referenceIngredients := reference.Metadata.MainIngredients

	var scored []domain.Recommendation
	for _, candidate := range candidates {
		if candidate.ID == req.ProductID {
			continue
		}

		nutritionSim := domain.NutritionSimilarity(referenceRatios, candidate.Metadata.Ratios())
		ingredientSim := domain.IngredientSimilarity(referenceIngredients, candidate.Metadata.MainIngredients)
		score := domain.CompositeScore(nutritionSim, ingredientSim, c.Weights)
		if score < c.MinScore {
			continue
		}

		nutritionSimCopy := nutritionSim
		ingredientSimCopy := ingredientSim
		scored = append(scored, domain.Recommendation{
			ProductID:            candidate.ID,
			SimilarityScore:      score,
			NutritionSimilarity:  &nutritionSimCopy,
			IngredientSimilarity: &ingredientSimCopy,
			Reason:               domain.SimilarityReason(nutritionSim, ingredientSim, score),
			Type:                 domain.RecommendationTypeProductBased,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].SimilarityScore > scored[j].SimilarityScore
	})

	if len(scored) > req.Limit {
		scored = scored[:req.Limit]
	}

	return scored
}

func (c *RecommendByProduct) fetchReference(
	ctx context.Context,
	productID int64,
) (datasources.ProductRecord, error) {
	records, err := c.ProductFetcher.FetchProducts(ctx, []int64{productID}, false)
	if err != nil {
		return datasources.ProductRecord{}, fmt.Errorf("fetching reference product: %w", err)
	}

	reference, ok := records[productID]
	if !ok {
		return datasources.ProductRecord{}, fmt.Errorf("reference product [%d] not stored", productID)
	}

	return reference, nil
}

func productBasedMessage(recommendations []domain.Recommendation) string {
	switch avg := averageScore(recommendations); {
	case avg >= 0.8:
		return "found highly similar products"
	case avg >= 0.7:
		return "recommending similar products"
	default:
		return "recommending related products"
	}
}

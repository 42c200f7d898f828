package command

import (
	"context"
	"fmt"

	"github.com/decodeat/recommendation-service/internal/cache"
	"github.com/decodeat/recommendation-service/internal/datasources"
	"github.com/decodeat/recommendation-service/internal/domain"
)

// RecommendByUserRequest asks for products matching a user's interaction
// history. Events are supplied with the request; nothing is persisted.
type RecommendByUserRequest struct {
	UserID int64
	Events []domain.BehaviorEvent
	Limit  int
}

type RecommendByUser struct {
	ProductFetcher datasources.ProductFetcher
	Querier        datasources.SimilarProductQuerier
	Prober         datasources.AvailabilityProber
	Fallback       *PopularityFallback
	Cache          *cache.Results[RecommendationSet]
}

var _ Command[RecommendByUserRequest, RecommendationSet] = (*RecommendByUser)(nil)

// Execute builds a preference vector from the user's behavior history and
// returns the nearest stored products, excluding those already interacted
// with. When no preference vector can be resolved or the store is down, the
// cascade degrades to the popularity fallback.
func (c *RecommendByUser) Execute(
	ctx context.Context,
	req RecommendByUserRequest,
) (RecommendationSet, error) {
	signature := cache.Signature("recommend_by_user", map[string]any{
		"user_id":   req.UserID,
		"behaviors": behaviorSignature(req.Events),
		"limit":     req.Limit,
	})
	if cached, ok := c.Cache.Get(signature); ok {
		return cached, nil
	}

	analysis := domain.AnalyzeBehavior(req.Events)

	recommendations := c.primary(ctx, req, analysis)
	if len(recommendations) > 0 {
		set := RecommendationSet{
			Recommendations: recommendations,
			Type:            domain.RecommendationTypeUserBased,
			DataQuality:     EvaluateQuality(recommendations, &analysis),
			Message:         userBasedMessage(analysis),
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
			Message:         "not enough behavior signal, recommending popular products",
		}, nil
	}

	return RecommendationSet{
		Recommendations: []domain.Recommendation{},
		Type:            domain.RecommendationTypeNone,
		DataQuality:     domain.DataQualityPoor,
		Message:         "no recommendations available for this user",
	}, nil
}

func (c *RecommendByUser) primary(
	ctx context.Context,
	req RecommendByUserRequest,
	analysis domain.BehaviorAnalysis,
) []domain.Recommendation {
	logger := domain.LoggerFromContext(ctx)

	if !c.Prober.IsAvailable(ctx) {
		logger.WarnContext(ctx, "vector store unavailable, skipping primary recommendation path")
		return nil
	}

	preferenceVector, interactedIDs := resolvePreferenceVector(ctx, c.ProductFetcher, req.Events)
	if preferenceVector == nil {
		logger.WarnContext(ctx, "no resolvable preference vector, falling back",
			"user_id", req.UserID)
		return nil
	}

	matches, err := c.Querier.QuerySimilarProducts(ctx, preferenceVector, 2*req.Limit, interactedIDs)
	if err != nil {
		logger.WarnContext(ctx, "querying similar products, falling back",
			"user_id", req.UserID,
			"error", err)
		return nil
	}

	interacted := make(map[int64]bool, len(interactedIDs))
	for _, id := range interactedIDs {
		interacted[id] = true
	}

	var recommendations []domain.Recommendation
	for _, match := range matches {
		if interacted[match.ID] {
			continue
		}
		if len(recommendations) >= req.Limit {
			break
		}

		score := domain.DistanceToSimilarity(match.Distance)
		recommendations = append(recommendations, domain.Recommendation{
			ProductID:       match.ID,
			SimilarityScore: score,
			Reason:          domain.PersonalizedReason(analysis, score),
			Type:            domain.RecommendationTypeUserBased,
			EngagementLevel: analysis.Engagement,
		})
	}

	return recommendations
}

// resolvePreferenceVector resolves each event's product embedding and
// averages them weighted by behavior strength. Events whose product has no
// stored vector are skipped. Returns the distinct interacted product IDs
// alongside.
func resolvePreferenceVector(
	ctx context.Context,
	fetcher datasources.ProductFetcher,
	events []domain.BehaviorEvent,
) ([]float32, []int64) {
	logger := domain.LoggerFromContext(ctx)

	var interactedIDs []int64
	seen := make(map[int64]bool)
	for _, event := range events {
		if !seen[event.ProductID] {
			seen[event.ProductID] = true
			interactedIDs = append(interactedIDs, event.ProductID)
		}
	}

	records, err := fetcher.FetchProducts(ctx, interactedIDs, true)
	if err != nil {
		logger.WarnContext(ctx, "fetching interacted product vectors",
			"error", err)
		return nil, interactedIDs
	}

	var weighted []domain.WeightedVector
	for _, event := range events {
		record, ok := records[event.ProductID]
		if !ok || len(record.Vector) == 0 {
			logger.WarnContext(ctx, "no stored vector for interacted product, skipping event",
				"product_id", event.ProductID)
			continue
		}

		weighted = append(weighted, domain.WeightedVector{
			Vector: record.Vector,
			Weight: event.Type.Weight(),
		})
	}

	return domain.WeightedAverageVector(weighted), interactedIDs
}

func behaviorSignature(events []domain.BehaviorEvent) []string {
	rendered := make([]string, 0, len(events))
	for _, event := range events {
		rendered = append(rendered, fmt.Sprintf("%d:%s", event.ProductID, event.Type))
	}
	return rendered
}

func userBasedMessage(analysis domain.BehaviorAnalysis) string {
	switch analysis.Engagement {
	case domain.EngagementVeryHigh:
		return "recommending products matched to your most active interests"
	case domain.EngagementHigh:
		return "recommending products matched to your interests"
	case domain.EngagementMedium:
		return "recommending products based on your recent activity"
	default:
		return "recommending products you might like"
	}
}

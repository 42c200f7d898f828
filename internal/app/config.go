package app

import (
	"time"

	"github.com/decodeat/recommendation-service/internal/domain"
)

// RecommendationConfig bundles the tunables of the recommendation pipeline.
type RecommendationConfig struct {
	CacheMaxSize       int
	CacheTTL           time.Duration
	CandidateScanLimit int
	MinSimilarityScore float64
	SimilarityWeights  domain.SimilarityWeights
}

// DefaultRecommendationConfig returns the default pipeline config.
func DefaultRecommendationConfig() RecommendationConfig {
	return RecommendationConfig{
		CacheMaxSize:       1000,
		CacheTTL:           5 * time.Minute,
		CandidateScanLimit: 1000,
		MinSimilarityScore: 0.1,
		SimilarityWeights:  domain.DefaultSimilarityWeights,
	}
}

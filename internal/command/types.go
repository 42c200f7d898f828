package command

import (
	"github.com/decodeat/recommendation-service/internal/domain"
)

// RecommendationSet is the outcome of a recommendation command: the scored
// candidates plus the strategy, quality grade and message describing how the
// set was produced.
type RecommendationSet struct {
	Recommendations []domain.Recommendation
	Type            domain.RecommendationType
	DataQuality     domain.DataQuality
	Message         string
}

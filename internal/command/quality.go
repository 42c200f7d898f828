package command

import (
	"github.com/decodeat/recommendation-service/internal/domain"
)

// EvaluateQuality grades a recommendation list from its size and average
// similarity, tightened by the user's behavior quality when a behavior
// analysis is available.
func EvaluateQuality(
	recommendations []domain.Recommendation,
	analysis *domain.BehaviorAnalysis,
) domain.DataQuality {
	if len(recommendations) == 0 {
		return domain.DataQualityPoor
	}

	avg := averageScore(recommendations)
	behavior := behaviorQuality(analysis)

	switch {
	case avg >= 0.8 && len(recommendations) >= 10 &&
		(behavior == domain.DataQualityExcellent || behavior == domain.DataQualityGood):
		return domain.DataQualityExcellent
	case avg >= 0.7 && len(recommendations) >= 5 &&
		(behavior == domain.DataQualityGood || behavior == domain.DataQualityFair):
		return domain.DataQualityGood
	case avg >= 0.6 && len(recommendations) >= 3:
		return domain.DataQualityFair
	default:
		return domain.DataQualityPoor
	}
}

// behaviorQuality grades how much signal a behavior history carries. Without
// an analysis it reports fair, capping the overall grade at good.
func behaviorQuality(analysis *domain.BehaviorAnalysis) domain.DataQuality {
	if analysis == nil {
		return domain.DataQualityFair
	}

	switch {
	case analysis.TotalInteractions >= 10 &&
		(analysis.Engagement == domain.EngagementVeryHigh || analysis.Engagement == domain.EngagementHigh):
		return domain.DataQualityExcellent
	case analysis.TotalInteractions >= 5 &&
		(analysis.Engagement == domain.EngagementHigh || analysis.Engagement == domain.EngagementMedium):
		return domain.DataQualityGood
	case analysis.TotalInteractions >= 3:
		return domain.DataQualityFair
	default:
		return domain.DataQualityPoor
	}
}

func averageScore(recommendations []domain.Recommendation) float64 {
	if len(recommendations) == 0 {
		return 0
	}

	var total float64
	for _, r := range recommendations {
		total += r.SimilarityScore
	}
	return total / float64(len(recommendations))
}

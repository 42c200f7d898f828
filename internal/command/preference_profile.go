package command

import (
	"context"

	"github.com/decodeat/recommendation-service/internal/datasources"
	"github.com/decodeat/recommendation-service/internal/domain"
)

// BuildPreferenceProfileRequest derives a taste profile from a user's
// behavior history without producing recommendations.
type BuildPreferenceProfileRequest struct {
	UserID int64
	Events []domain.BehaviorEvent
}

type BuildPreferenceProfile struct {
	ProductFetcher datasources.ProductFetcher
}

var _ Command[BuildPreferenceProfileRequest, domain.PreferenceProfile] = (*BuildPreferenceProfile)(nil)

// Execute analyzes the behavior pattern and resolves a preference vector from
// the stored embeddings of interacted products. Missing embeddings are
// skipped; a profile with no resolvable vector is graded weak.
func (c *BuildPreferenceProfile) Execute(
	ctx context.Context,
	req BuildPreferenceProfileRequest,
) (domain.PreferenceProfile, error) {
	analysis := domain.AnalyzeBehavior(req.Events)

	vector, interactedIDs := resolvePreferenceVector(ctx, c.ProductFetcher, req.Events)

	return domain.PreferenceProfile{
		UserID:               req.UserID,
		BehaviorAnalysis:     analysis,
		PreferenceVector:     vector,
		InteractedProductIDs: interactedIDs,
		Strength:             analysis.Strength(vector != nil),
	}, nil
}

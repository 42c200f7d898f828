package domain

import (
	"strings"
	"time"
)

// BehaviorType classifies a user's interaction with a product.
type BehaviorType string

const (
	BehaviorRegister BehaviorType = "REGISTER"
	BehaviorLike     BehaviorType = "LIKE"
	BehaviorSearch   BehaviorType = "SEARCH"
	BehaviorView     BehaviorType = "VIEW"
)

// ParseBehaviorType normalizes a behavior name case-insensitively.
// Unrecognized names pass through uppercased; they weigh like a VIEW.
func ParseBehaviorType(s string) BehaviorType {
	return BehaviorType(strings.ToUpper(strings.TrimSpace(s)))
}

// Weight returns how strongly a behavior signals interest. Registering a
// product is the strongest signal; anything unrecognized counts as a view.
func (t BehaviorType) Weight() float64 {
	switch t {
	case BehaviorRegister:
		return 5
	case BehaviorLike:
		return 3
	case BehaviorSearch:
		return 2
	default:
		return 1
	}
}

// BehaviorEvent is one interaction from a user's history, supplied per
// request and never persisted here.
type BehaviorEvent struct {
	ProductID int64
	Type      BehaviorType
	Timestamp *time.Time
}

// EngagementLevel coarsely classifies how strongly a behavior history
// indicates interest.
type EngagementLevel string

const (
	EngagementNone     EngagementLevel = "none"
	EngagementLow      EngagementLevel = "low"
	EngagementMedium   EngagementLevel = "medium"
	EngagementHigh     EngagementLevel = "high"
	EngagementVeryHigh EngagementLevel = "very_high"
)

// BehaviorAnalysis summarizes a user's interaction history.
type BehaviorAnalysis struct {
	TotalInteractions int                  `json:"total_interactions"`
	Distribution      map[BehaviorType]int `json:"behavior_distribution"`
	TotalScore        float64              `json:"total_score"`
	AverageScore      float64              `json:"average_score_per_interaction"`
	MostCommonType    BehaviorType         `json:"most_common_behavior,omitempty"`
	Engagement        EngagementLevel      `json:"engagement_level"`
}

// AnalyzeBehavior counts events per type, scores them by weight, and grades
// the user's engagement from the average score per interaction. Ties for the
// most common type go to the type encountered first. Empty input yields zero
// counts and engagement "none".
func AnalyzeBehavior(events []BehaviorEvent) BehaviorAnalysis {
	analysis := BehaviorAnalysis{
		Distribution: make(map[BehaviorType]int),
		Engagement:   EngagementNone,
	}
	if len(events) == 0 {
		return analysis
	}

	var order []BehaviorType
	for _, event := range events {
		if _, ok := analysis.Distribution[event.Type]; !ok {
			order = append(order, event.Type)
		}
		analysis.Distribution[event.Type]++
		analysis.TotalScore += event.Type.Weight()
	}

	analysis.TotalInteractions = len(events)
	average := analysis.TotalScore / float64(len(events))
	analysis.AverageScore = round2(average)

	for _, t := range order {
		if analysis.Distribution[t] > analysis.Distribution[analysis.MostCommonType] {
			analysis.MostCommonType = t
		}
	}

	switch {
	case average >= 4:
		analysis.Engagement = EngagementVeryHigh
	case average >= 3:
		analysis.Engagement = EngagementHigh
	case average >= 2:
		analysis.Engagement = EngagementMedium
	case average >= 1:
		analysis.Engagement = EngagementLow
	}

	return analysis
}

// PersonalizedReason phrases why a product suits this user, qualified by
// their dominant behavior and engagement, with the similarity score adding
// detail for strong matches.
func PersonalizedReason(analysis BehaviorAnalysis, score float64) string {
	qualifier := ""
	switch analysis.Engagement {
	case EngagementVeryHigh:
		switch analysis.MostCommonType {
		case BehaviorRegister:
			qualifier = "similar to products you repeatedly register"
		case BehaviorLike:
			qualifier = "similar to products you often like"
		default:
			qualifier = "similar to products you actively engage with"
		}
	case EngagementHigh:
		switch analysis.MostCommonType {
		case BehaviorLike:
			qualifier = "similar to products you favor"
		case BehaviorSearch:
			qualifier = "similar to products you search for"
		default:
			qualifier = "similar to products you have shown interest in"
		}
	case EngagementMedium:
		qualifier = "similar to a previously viewed product"
	}

	if qualifier == "" {
		return basePreferenceReason(score)
	}
	switch {
	case score > 0.9:
		return qualifier + ", with a near-identical nutrition profile"
	case score > 0.8:
		return qualifier + ", with similar product characteristics"
	default:
		return qualifier
	}
}

func basePreferenceReason(score float64) string {
	switch {
	case score > 0.9:
		return "near-identical nutrition profile"
	case score > 0.8:
		return "similar product characteristics"
	case score > 0.7:
		return "related product"
	default:
		return "recommended product"
	}
}

// ProfileStrength grades how much a preference profile can be trusted.
type ProfileStrength string

const (
	ProfileStrengthStrong ProfileStrength = "strong"
	ProfileStrengthMedium ProfileStrength = "medium"
	ProfileStrengthWeak   ProfileStrength = "weak"
)

// PreferenceProfile is an ephemeral snapshot of a user's tastes, derived
// entirely from the behavior history supplied with a request.
type PreferenceProfile struct {
	UserID               int64            `json:"user_id"`
	BehaviorAnalysis     BehaviorAnalysis `json:"behavior_analysis"`
	PreferenceVector     []float32        `json:"preference_vector,omitempty"`
	InteractedProductIDs []int64          `json:"interacted_products"`
	Strength             ProfileStrength  `json:"profile_strength"`
}

// Strength classifies a profile from its interaction volume, engagement
// level, and whether a preference vector could be resolved.
func (a BehaviorAnalysis) Strength(hasVector bool) ProfileStrength {
	switch {
	case hasVector && a.TotalInteractions >= 10 &&
		(a.Engagement == EngagementHigh || a.Engagement == EngagementVeryHigh):
		return ProfileStrengthStrong
	case hasVector && a.TotalInteractions >= 5 &&
		(a.Engagement == EngagementMedium || a.Engagement == EngagementHigh || a.Engagement == EngagementVeryHigh):
		return ProfileStrengthMedium
	default:
		return ProfileStrengthWeak
	}
}

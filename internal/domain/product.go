package domain

import (
	"fmt"
	"strings"
	"time"
)

// Product is a stored food product with its derived recommendation features.
// The vector store owns products; everything here travels with the embedding
// as metadata.
type Product struct {
	ID              int64
	Name            string
	NutritionInfo   map[string]string
	Ingredients     []string
	Embedding       []float32
	NutritionRatios NutritionRatios
	MainIngredients []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NutritionRatios holds the share of total calories attributable to each
// macronutrient, as percentages in [0,100], plus the calorie total used to
// compute them.
type NutritionRatios struct {
	Carbohydrate  float64 `json:"carbohydrate_ratio"`
	Protein       float64 `json:"protein_ratio"`
	Fat           float64 `json:"fat_ratio"`
	TotalCalories float64 `json:"total_calories"`
}

// IsZero reports whether no ratio information is present.
func (r NutritionRatios) IsZero() bool {
	return r.Carbohydrate == 0 && r.Protein == 0 && r.Fat == 0 && r.TotalCalories == 0
}

// RecommendationType identifies which strategy produced a recommendation.
type RecommendationType string

const (
	RecommendationTypeProductBased RecommendationType = "product-based"
	RecommendationTypeUserBased    RecommendationType = "user-based"
	RecommendationTypePopularity   RecommendationType = "popularity"

	// Envelope-level outcomes: a set served from the popularity fallback, and
	// the terminal state where nothing could be recommended at all.
	RecommendationTypeFallback RecommendationType = "fallback"
	RecommendationTypeNone     RecommendationType = "none"
)

// DataQuality grades how trustworthy a recommendation set is.
type DataQuality string

const (
	DataQualityExcellent DataQuality = "excellent"
	DataQualityGood      DataQuality = "good"
	DataQualityFair      DataQuality = "fair"
	DataQualityPoor      DataQuality = "poor"
)

// Recommendation is a single scored candidate product.
type Recommendation struct {
	ProductID            int64              `json:"product_id"`
	SimilarityScore      float64            `json:"similarity_score"`
	NutritionSimilarity  *float64           `json:"nutrition_similarity,omitempty"`
	IngredientSimilarity *float64           `json:"ingredient_similarity,omitempty"`
	Reason               string             `json:"recommendation_reason"`
	Type                 RecommendationType `json:"recommendation_type,omitempty"`
	EngagementLevel      EngagementLevel    `json:"user_engagement_level,omitempty"`
}

// nutritionTextFields lists the nutrient keys included in the embedding text,
// in label order, with the unit each is declared in.
var nutritionTextFields = []struct {
	key  string
	unit string
}{
	{"energy", "kcal"},
	{"protein", "g"},
	{"fat", "g"},
	{"carbohydrate", "g"},
	{"sugar", "g"},
	{"sodium", "mg"},
	{"cholesterol", "mg"},
	{"sat_fat", "g"},
	{"trans_fat", "g"},
	{"dietary_fiber", "g"},
	{"calcium", "mg"},
}

// EmbeddingText renders a product's name, nutrition facts and ingredient list
// as the text fed to the embedding model. The rendering is deterministic so
// that identical products always embed identically.
func EmbeddingText(name string, nutrition map[string]string, ingredients []string) string {
	var parts []string

	if strings.TrimSpace(name) != "" {
		parts = append(parts, "product: "+strings.TrimSpace(name))
	}

	var facts []string
	for _, f := range nutritionTextFields {
		v := strings.TrimSpace(nutrition[f.key])
		if v == "" || v == "0" {
			continue
		}
		facts = append(facts, fmt.Sprintf("%s %s%s", f.key, v, f.unit))
	}
	if len(facts) > 0 {
		parts = append(parts, "nutrition: "+strings.Join(facts, " "))
	}

	var cleaned []string
	for _, ing := range ingredients {
		if s := strings.TrimSpace(ing); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) > 0 {
		parts = append(parts, "ingredients: "+strings.Join(cleaned, ", "))
	}

	return strings.Join(parts, " ")
}

package domain

import (
	"math"
	"strings"
)

// SimilarityWeights controls how nutrition and ingredient similarity combine
// into one score. Weights that do not sum to 1 are renormalized.
type SimilarityWeights struct {
	Nutrition  float64
	Ingredient float64
}

// DefaultSimilarityWeights favours nutrition composition over ingredient
// overlap.
var DefaultSimilarityWeights = SimilarityWeights{Nutrition: 0.6, Ingredient: 0.4}

// NutritionSimilarity compares two macro-ratio profiles by cosine similarity
// over their (carbohydrate, protein, fat) percentages, remapped from [-1,1]
// to [0,1]. A zero-magnitude profile on either side yields 0.
func NutritionSimilarity(a, b NutritionRatios) float64 {
	ax, ay, az := a.Carbohydrate, a.Protein, a.Fat
	bx, by, bz := b.Carbohydrate, b.Protein, b.Fat

	normA := math.Sqrt(ax*ax + ay*ay + az*az)
	normB := math.Sqrt(bx*bx + by*by + bz*bz)
	if normA == 0 || normB == 0 {
		return 0
	}

	cos := (ax*bx + ay*by + az*bz) / (normA * normB)
	if math.IsNaN(cos) {
		return 0
	}

	return clampScore((cos + 1) / 2)
}

// IngredientSimilarity computes a weighted Jaccard similarity over each
// product's top five ingredients. An ingredient ranked in the first three of
// its list weighs 2.0, otherwise 1.0; for each member of the union the
// larger of its two weights counts toward the union total and, when both
// products share it, toward the intersection total.
func IngredientSimilarity(a, b []string) float64 {
	setA := ingredientWeights(a)
	setB := ingredientWeights(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	var intersection, union float64
	for ingredient, weightA := range setA {
		weight := weightA
		if weightB, ok := setB[ingredient]; ok {
			weight = math.Max(weightA, weightB)
			intersection += weight
		}
		union += weight
	}
	for ingredient, weightB := range setB {
		if _, ok := setA[ingredient]; !ok {
			union += weightB
		}
	}

	if union == 0 {
		return 0
	}
	return clampScore(intersection / union)
}

// ingredientWeights lowers and trims the first five ingredients into a
// weight map, keeping the highest weight when an entry repeats.
func ingredientWeights(ingredients []string) map[string]float64 {
	if len(ingredients) > DefaultMainIngredientCount {
		ingredients = ingredients[:DefaultMainIngredientCount]
	}

	weights := make(map[string]float64, len(ingredients))
	for i, ingredient := range ingredients {
		cleaned := strings.ToLower(strings.TrimSpace(ingredient))
		if cleaned == "" {
			continue
		}
		weight := 1.0
		if i < 3 {
			weight = 2.0
		}
		if weight > weights[cleaned] {
			weights[cleaned] = weight
		}
	}
	return weights
}

// CompositeScore blends the two similarity components using w, renormalizing
// the weights if they do not sum to 1.
func CompositeScore(nutritionSim, ingredientSim float64, w SimilarityWeights) float64 {
	total := w.Nutrition + w.Ingredient
	if total == 0 {
		return 0
	}
	score := nutritionSim*(w.Nutrition/total) + ingredientSim*(w.Ingredient/total)
	return clampScore(score)
}

// SimilarityReason explains a composite score in one short phrase. Thresholds
// are evaluated high to low; the first match wins.
func SimilarityReason(nutritionSim, ingredientSim, finalScore float64) string {
	switch {
	case finalScore >= 0.9:
		switch {
		case nutritionSim >= 0.8 && ingredientSim >= 0.8:
			return "nutrition and ingredients both highly similar"
		case nutritionSim >= 0.8:
			return "macro ratios highly similar"
		case ingredientSim >= 0.8:
			return "principal ingredients highly similar"
		default:
			return "highly similar product"
		}
	case finalScore >= 0.8:
		if nutritionSim > ingredientSim {
			return "similar macro composition"
		}
		return "similar principal ingredients"
	case finalScore >= 0.7:
		switch {
		case nutritionSim >= 0.7:
			return "comparable macro ratios"
		case ingredientSim >= 0.7:
			return "similar ingredients"
		default:
			return "related product"
		}
	case finalScore >= 0.6:
		return "similar characteristics"
	default:
		return "related product"
	}
}

func clampScore(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(1, math.Max(0, v))
}

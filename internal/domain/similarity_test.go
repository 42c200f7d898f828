package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNutritionSimilarity(t *testing.T) {
	cases := []struct {
		name string
		a, b NutritionRatios
		want float64
	}{
		{
			name: "identical_ratios_are_near_one",
			a:    NutritionRatios{Carbohydrate: 60, Protein: 20, Fat: 20},
			b:    NutritionRatios{Carbohydrate: 60, Protein: 20, Fat: 20},
			want: 1,
		},
		{
			name: "zero_vector_yields_zero",
			a:    NutritionRatios{},
			b:    NutritionRatios{Carbohydrate: 60, Protein: 20, Fat: 20},
			want: 0,
		},
		{
			name: "both_zero_yields_zero",
			a:    NutritionRatios{},
			b:    NutritionRatios{},
			want: 0,
		},
		{
			name: "orthogonal_profiles_remap_to_half",
			a:    NutritionRatios{Carbohydrate: 100},
			b:    NutritionRatios{Protein: 100},
			want: 0.5,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, NutritionSimilarity(tc.a, tc.b), 0.001)
		})
	}
}

func TestNutritionSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]NutritionRatios{
		{{Carbohydrate: 60, Protein: 20, Fat: 20}, {Carbohydrate: 30, Protein: 40, Fat: 30}},
		{{Carbohydrate: 100}, {Fat: 100}},
		{{Carbohydrate: 12.5, Protein: 80, Fat: 7.5}, {Carbohydrate: 55, Protein: 5, Fat: 40}},
	}

	for _, pair := range pairs {
		assert.Equal(t, NutritionSimilarity(pair[0], pair[1]), NutritionSimilarity(pair[1], pair[0]))
	}
}

func TestNutritionSimilarity_IdenticalAboveThreshold(t *testing.T) {
	r := NutritionRatios{Carbohydrate: 47.3, Protein: 22.1, Fat: 30.6}
	assert.Greater(t, NutritionSimilarity(r, r), 0.99)
}

func TestIngredientSimilarity(t *testing.T) {
	cases := []struct {
		name string
		a, b []string
		want float64
	}{
		{
			name: "identical_lists",
			a:    []string{"flour", "sugar", "oil", "salt", "cocoa"},
			b:    []string{"flour", "sugar", "oil", "salt", "cocoa"},
			want: 1,
		},
		{
			name: "disjoint_top_five_is_exactly_zero",
			a:    []string{"flour", "sugar", "oil"},
			b:    []string{"rice", "beans", "corn"},
			want: 0,
		},
		{
			name: "empty_side_is_zero",
			a:    nil,
			b:    []string{"flour"},
			want: 0,
		},
		{
			name: "case_and_whitespace_insensitive",
			a:    []string{" Flour ", "SUGAR"},
			b:    []string{"flour", "sugar"},
			want: 1,
		},
		{
			// Shared: flour (rank<3 both, weight 2). Union: flour 2,
			// sugar 2, rice 2, beans 2 -> 2/8.
			name: "top_three_rank_weighting",
			a:    []string{"flour", "sugar"},
			b:    []string{"rice", "beans", "flour"},
			want: 0.25,
		},
		{
			// Only the first five ingredients of each list count.
			name: "sixth_ingredient_ignored",
			a:    []string{"a", "b", "c", "d", "e", "shared"},
			b:    []string{"shared", "v", "w", "x", "y"},
			want: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, IngredientSimilarity(tc.a, tc.b), 0.001)
		})
	}
}

func TestCompositeScore(t *testing.T) {
	cases := []struct {
		name     string
		nut, ing float64
		weights  SimilarityWeights
		want     float64
	}{
		{
			name: "default_weights",
			nut:  1, ing: 0.5,
			weights: DefaultSimilarityWeights,
			want:    0.8,
		},
		{
			name: "unnormalized_weights_are_renormalized",
			nut:  1, ing: 0.5,
			weights: SimilarityWeights{Nutrition: 6, Ingredient: 4},
			want:    0.8,
		},
		{
			name: "zero_weights_yield_zero",
			nut:  1, ing: 1,
			weights: SimilarityWeights{},
			want:    0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, CompositeScore(tc.nut, tc.ing, tc.weights), 0.001)
		})
	}
}

func TestSimilarityReason(t *testing.T) {
	cases := []struct {
		name           string
		nut, ing, goal float64
		want           string
	}{
		{"both_high", 0.9, 0.9, 0.95, "nutrition and ingredients both highly similar"},
		{"nutrition_high", 0.95, 0.5, 0.9, "macro ratios highly similar"},
		{"ingredients_high", 0.5, 0.95, 0.9, "principal ingredients highly similar"},
		{"high_score_neither_component", 0.7, 0.7, 0.9, "highly similar product"},
		{"macro_leaning", 0.9, 0.7, 0.82, "similar macro composition"},
		{"ingredient_leaning", 0.7, 0.9, 0.82, "similar principal ingredients"},
		{"comparable_macros", 0.75, 0.6, 0.72, "comparable macro ratios"},
		{"similar_ingredients", 0.6, 0.75, 0.72, "similar ingredients"},
		{"related_at_point_seven", 0.65, 0.65, 0.7, "related product"},
		{"similar_characteristics", 0.6, 0.6, 0.62, "similar characteristics"},
		{"low_score", 0.3, 0.3, 0.3, "related product"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SimilarityReason(tc.nut, tc.ing, tc.goal))
		})
	}
}

func TestCompositeScenario_NearIdenticalProducts(t *testing.T) {
	reference := NutritionRatios{Carbohydrate: 60, Protein: 20, Fat: 20, TotalCalories: 300}
	candidate := NutritionRatios{Carbohydrate: 60, Protein: 20, Fat: 20, TotalCalories: 280}
	ingredients := []string{"oats", "honey", "almonds", "salt", "cinnamon"}

	nut := NutritionSimilarity(reference, candidate)
	ing := IngredientSimilarity(ingredients, ingredients)
	score := CompositeScore(nut, ing, DefaultSimilarityWeights)

	assert.GreaterOrEqual(t, score, 0.95)
	assert.Contains(t, SimilarityReason(nut, ing, score), "highly similar")
}

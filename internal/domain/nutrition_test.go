package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateNutritionRatios(t *testing.T) {
	cases := []struct {
		name      string
		nutrition map[string]string
		want      NutritionRatios
	}{
		{
			name: "balanced_product_with_declared_energy",
			nutrition: map[string]string{
				"carbohydrate": "45",
				"protein":      "15",
				"fat":          "13.33",
				"energy":       "360",
			},
			want: NutritionRatios{Carbohydrate: 50, Protein: 16.67, Fat: 33.33, TotalCalories: 360},
		},
		{
			name: "zero_declared_energy_uses_macro_sum",
			nutrition: map[string]string{
				"carbohydrate": "10",
				"protein":      "10",
				"fat":          "0",
				"energy":       "0",
			},
			want: NutritionRatios{Carbohydrate: 50, Protein: 50, Fat: 0, TotalCalories: 80},
		},
		{
			name:      "no_data_yields_all_zero",
			nutrition: map[string]string{},
			want:      NutritionRatios{},
		},
		{
			name: "non_numeric_values_count_as_zero",
			nutrition: map[string]string{
				"carbohydrate": "lots",
				"protein":      "10",
				"energy":       "40",
			},
			want: NutritionRatios{Carbohydrate: 0, Protein: 100, Fat: 0, TotalCalories: 40},
		},
		{
			name: "negative_values_clamped_to_zero",
			nutrition: map[string]string{
				"carbohydrate": "-20",
				"protein":      "5",
				"fat":          "0",
				"energy":       "20",
			},
			want: NutritionRatios{Carbohydrate: 0, Protein: 100, Fat: 0, TotalCalories: 20},
		},
		{
			name: "understated_energy_rescales_to_100",
			nutrition: map[string]string{
				"carbohydrate": "30",
				"protein":      "10",
				"fat":          "10",
				"energy":       "100",
			},
			// Raw shares would be 120/40/90 percent; rescaled they
			// partition 100 exactly.
			want: NutritionRatios{Carbohydrate: 48, Protein: 16, Fat: 36, TotalCalories: 100},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateNutritionRatios(tc.nutrition)
			assert.InDelta(t, tc.want.Carbohydrate, got.Carbohydrate, 0.01)
			assert.InDelta(t, tc.want.Protein, got.Protein, 0.01)
			assert.InDelta(t, tc.want.Fat, got.Fat, 0.01)
			assert.InDelta(t, tc.want.TotalCalories, got.TotalCalories, 0.01)
		})
	}
}

func TestCalculateNutritionRatios_Bounds(t *testing.T) {
	inputs := []map[string]string{
		{"carbohydrate": "100", "protein": "0", "fat": "0", "energy": "1"},
		{"carbohydrate": "0.1", "protein": "90", "fat": "3", "energy": "5000"},
		{"carbohydrate": "7", "protein": "7", "fat": "7", "energy": "0"},
		{"carbohydrate": "abc", "protein": "", "fat": "-4"},
		{"energy": "250"},
	}

	for i, nutrition := range inputs {
		t.Run(fmt.Sprintf("input_%d", i), func(t *testing.T) {
			got := CalculateNutritionRatios(nutrition)

			for _, ratio := range []float64{got.Carbohydrate, got.Protein, got.Fat} {
				assert.GreaterOrEqual(t, ratio, 0.0)
				assert.LessOrEqual(t, ratio, 100.0)
			}
			assert.LessOrEqual(t, got.Carbohydrate+got.Protein+got.Fat, 100.0001)
		})
	}
}

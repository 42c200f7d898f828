package domain

import (
	"math"
	"strconv"
	"strings"
)

// Calories contributed per gram of each macronutrient.
const (
	caloriesPerGramCarbohydrate = 4
	caloriesPerGramProtein      = 4
	caloriesPerGramFat          = 9
)

// CalculateNutritionRatios converts absolute nutrient quantities into
// normalized macro-calorie percentages. Missing, non-numeric and negative
// values count as zero; if the declared energy is zero the sum of the macro
// contributions stands in for it. The result's percentages each lie in
// [0,100] and sum to at most 100. It never fails: unusable input yields the
// all-zero result.
func CalculateNutritionRatios(nutrition map[string]string) NutritionRatios {
	carbohydrate := nutrientValue(nutrition, "carbohydrate")
	protein := nutrientValue(nutrition, "protein")
	fat := nutrientValue(nutrition, "fat")
	totalCalories := nutrientValue(nutrition, "energy")

	carbCalories := carbohydrate * caloriesPerGramCarbohydrate
	proteinCalories := protein * caloriesPerGramProtein
	fatCalories := fat * caloriesPerGramFat
	calculated := carbCalories + proteinCalories + fatCalories

	if totalCalories == 0 {
		if calculated == 0 {
			return NutritionRatios{}
		}
		totalCalories = calculated
	}

	carbRatio := carbCalories / totalCalories * 100
	proteinRatio := proteinCalories / totalCalories * 100
	fatRatio := fatCalories / totalCalories * 100

	// A declared energy below the macro-derived total pushes the sum past
	// 100; rescale so the three shares stay a partition.
	if total := carbRatio + proteinRatio + fatRatio; total > 100 {
		carbRatio = carbRatio / total * 100
		proteinRatio = proteinRatio / total * 100
		fatRatio = fatRatio / total * 100
	}

	return NutritionRatios{
		Carbohydrate:  round2(clampPercent(carbRatio)),
		Protein:       round2(clampPercent(proteinRatio)),
		Fat:           round2(clampPercent(fatRatio)),
		TotalCalories: totalCalories,
	}
}

func nutrientValue(nutrition map[string]string, key string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(nutrition[key]), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func clampPercent(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

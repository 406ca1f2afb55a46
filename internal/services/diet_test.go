package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitnessai/internal/logging"
	"fitnessai/internal/models"
)

func newDiet() *DietAnalyzer {
	return NewDietAnalyzer(logging.Nop(), fixedClock)
}

func intake(calories, protein, carbs, fats float64) map[string]any {
	return map[string]any{
		"calories": calories,
		"macronutrients": map[string]any{
			"protein":       protein,
			"carbohydrates": carbs,
			"fats":          fats,
		},
	}
}

func mealLogs(timestamps ...string) []any {
	logs := make([]any, 0, len(timestamps))
	for _, ts := range timestamps {
		logs = append(logs, map[string]any{"timestamp": ts})
	}
	return logs
}

func dietAnalysis(t *testing.T, r models.Report) models.DietAnalysis {
	t.Helper()
	a, ok := r.Analysis.(models.DietAnalysis)
	require.True(t, ok, "analysis is %T", r.Analysis)
	return a
}

func TestDietLowProteinRatio(t *testing.T) {
	r := newDiet().Analyze(map[string]any{
		"user_data":   map[string]any{"dateOfBirth": "1996-01-01", "gender": "female"},
		"daily_intake": intake(2000, 50, 300, 40),
	})

	a := dietAnalysis(t, r)
	assert.Equal(t, 10, a.NutrientBalance.ProteinRatio)
	assert.Equal(t, 60, a.NutrientBalance.CarbsRatio)
	assert.Equal(t, 18, a.NutrientBalance.FatsRatio)
	assert.Contains(t, r.Recommendations, "Try to include more protein-rich foods like lean meats, fish, eggs, or legumes")
	assert.Contains(t, r.Recommendations, "Add healthy fats from sources like avocados, nuts, and olive oil")
	assert.NotContains(t, r.Recommendations, "Include more complex carbohydrates from whole grains, fruits, and vegetables")
	assert.True(t, r.ProfileComplete)
	assert.False(t, r.Fallback)
}

func TestDietHighRatios(t *testing.T) {
	r := newDiet().Analyze(map[string]any{
		"user_data":    map[string]any{"dateOfBirth": "1980-01-01", "gender": "male"},
		"daily_intake": intake(2000, 250, 335, 80),
	})

	a := dietAnalysis(t, r)
	assert.Equal(t, 50, a.NutrientBalance.ProteinRatio)
	assert.Equal(t, 67, a.NutrientBalance.CarbsRatio)
	assert.Equal(t, 36, a.NutrientBalance.FatsRatio)
	assert.Contains(t, r.Recommendations, "Consider balancing your meals with more vegetables and whole grains")
	assert.Contains(t, r.Recommendations, "Try to include more protein and healthy fats in your meals")
	assert.Contains(t, r.Recommendations, "Consider reducing fat intake, especially from processed foods")
}

func TestDietMaleProteinBand(t *testing.T) {
	// 22% protein is inside the default band but under the male minimum.
	payload := func(gender string) map[string]any {
		return map[string]any{
			"user_data":    map[string]any{"dateOfBirth": "1990-01-01", "gender": gender},
			"daily_intake": intake(2000, 110, 240, 60),
		}
	}
	low := "Try to include more protein-rich foods like lean meats, fish, eggs, or legumes"

	assert.Contains(t, newDiet().Analyze(payload("male")).Recommendations, low)
	assert.NotContains(t, newDiet().Analyze(payload("female")).Recommendations, low)
}

func TestDietZeroCalories(t *testing.T) {
	r := newDiet().Analyze(map[string]any{
		"user_data":    map[string]any{"dateOfBirth": "1990-01-01", "gender": "male"},
		"daily_intake": intake(0, 50, 50, 50),
	})
	a := dietAnalysis(t, r)
	assert.Equal(t, models.NutrientBalance{}, a.NutrientBalance)
}

func TestDietRecommendationOrder(t *testing.T) {
	r := newDiet().Analyze(map[string]any{
		"user_data":      map[string]any{"dateOfBirth": "2004-01-01", "gender": "female"},
		"daily_intake":   intake(2000, 50, 300, 40),
		"nutrition_logs": mealLogs("2026-10-14T07:00:00Z", "2026-10-14T14:00:00Z"),
	})

	want := []string{
		"Female-specific nutrition tips:",
		"- Ensure adequate iron intake, especially if menstruating",
		"- Include calcium-rich foods for bone health",
		"- Consider folate-rich foods for reproductive health",
		"Try to avoid gaps of more than 6 hours between meals",
		"Consider adding healthy snacks between meals",
		"Try to include more protein-rich foods like lean meats, fish, eggs, or legumes",
		"Add healthy fats from sources like avocados, nuts, and olive oil",
		"Young adult nutrition tips:",
		"- Support your active lifestyle with adequate calories",
		"- Include foods rich in calcium and vitamin D",
		"- Stay well-hydrated, especially during exercise",
	}
	assert.Equal(t, want, r.Recommendations)

	a := dietAnalysis(t, r)
	assert.Equal(t, models.MealPatternInfrequent, a.MealPattern)
	require.NotNil(t, a.CurrentIntake.RecommendedCalories)
	assert.Equal(t, 2000, *a.CurrentIntake.RecommendedCalories)
}

func TestDietMealPattern(t *testing.T) {
	tests := []struct {
		name string
		logs []any
		want models.MealPattern
		tips []string
	}{
		{
			name: "regular",
			logs: mealLogs("2026-10-14T08:00:00Z", "2026-10-14T12:00:00Z", "2026-10-14T16:00:00Z"),
			want: models.MealPatternRegular,
		},
		{
			name: "irregular",
			logs: mealLogs("2026-10-14T06:00:00Z", "2026-10-14T07:00:00Z", "2026-10-14T14:00:00Z", "2026-10-14T16:00:00Z"),
			want: models.MealPatternIrregular,
			tips: []string{"Try to avoid gaps of more than 6 hours between meals"},
		},
		{
			name: "frequent",
			logs: mealLogs("2026-10-14T08:00:00Z", "2026-10-14T09:00:00Z", "2026-10-14T10:30:00Z"),
			want: models.MealPatternFrequent,
			tips: []string{"Consider spacing your meals at least 2-3 hours apart"},
		},
		{
			name: "long gap with short average is frequent",
			logs: mealLogs(
				"2026-10-14T00:00:00Z", "2026-10-14T00:10:00Z", "2026-10-14T00:20:00Z",
				"2026-10-14T00:30:00Z", "2026-10-14T00:40:00Z", "2026-10-14T00:50:00Z",
				"2026-10-14T07:00:00Z",
			),
			want: models.MealPatternFrequent,
			tips: []string{
				"Try to avoid gaps of more than 6 hours between meals",
				"Consider spacing your meals at least 2-3 hours apart",
			},
		},
		{
			name: "unsorted input and offsets",
			logs: mealLogs("2026-10-14T16:00:00+02:00", "2026-10-14T06:00:00Z", "2026-10-14T10:00:00Z"),
			want: models.MealPatternRegular,
		},
		{
			name: "bad timestamps skipped",
			logs: []any{
				map[string]any{"timestamp": "yesterday"},
				map[string]any{"timestamp": 12.0},
				map[string]any{"meal": "lunch"},
				"not an object",
				map[string]any{"timestamp": "2026-10-14T08:00:00Z"},
			},
			want: models.MealPatternRegular,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, tips := newDiet().mealPattern(tt.logs)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.tips, tips)
		})
	}
}

func TestDietIncompleteProfile(t *testing.T) {
	r := newDiet().Analyze(map[string]any{
		"user_data":    map[string]any{},
		"daily_intake": intake(2000, 100, 250, 60),
	})

	assert.Equal(t, []string{
		"Complete your date of birth for more personalized nutrition recommendations",
		"Specify your gender for tailored nutritional advice",
	}, r.Recommendations)
	assert.False(t, r.ProfileComplete)

	a := dietAnalysis(t, r)
	assert.Nil(t, a.CurrentIntake.RecommendedCalories)
	assert.Nil(t, a.ProfileData.Age)
	assert.Equal(t, models.GenderOther, a.ProfileData.Gender)
}

func TestDietAgeWithoutGender(t *testing.T) {
	r := newDiet().Analyze(map[string]any{
		"user_data": map[string]any{"dateOfBirth": "1970-05-05"},
	})

	assert.Equal(t, "Specify your gender for tailored nutritional advice", r.Recommendations[0])
	assert.Contains(t, r.Recommendations, "Mid-life nutrition tips:")
	assert.NotContains(t, r.Recommendations, "Female-specific nutrition tips:")
	assert.False(t, r.ProfileComplete)
}

func TestDietBaselineCalories(t *testing.T) {
	tests := []struct {
		dob    string
		gender string
		want   int
	}{
		{"1990-01-01", "female", 2000},
		{"1970-01-01", "female", 1800},
		{"1990-01-01", "male", 2500},
		{"1976-10-14", "male", 2200},
	}
	for _, tt := range tests {
		t.Run(tt.gender+" "+tt.dob, func(t *testing.T) {
			r := newDiet().Analyze(map[string]any{
				"user_data": map[string]any{"dateOfBirth": tt.dob, "gender": tt.gender},
			})
			a := dietAnalysis(t, r)
			require.NotNil(t, a.CurrentIntake.RecommendedCalories)
			assert.Equal(t, tt.want, *a.CurrentIntake.RecommendedCalories)
		})
	}
}

func TestDietMalformedNumbersUseDefaults(t *testing.T) {
	r := newDiet().Analyze(map[string]any{
		"user_data": map[string]any{"dateOfBirth": "1990-01-01", "gender": "male"},
		"daily_intake": map[string]any{
			"calories":       "2000",
			"macronutrients": map[string]any{"protein": "lots", "carbohydrates": 250.0, "fats": 70.0},
		},
	})

	assert.False(t, r.Fallback)
	a := dietAnalysis(t, r)
	assert.Equal(t, 2000.0, a.CurrentIntake.Calories)
	assert.Equal(t, 0.0, a.CurrentIntake.Macronutrients.Protein)
	assert.Equal(t, 0, a.NutrientBalance.ProteinRatio)
}

func TestDietFallback(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		errText string
	}{
		{"user_data not object", map[string]any{"user_data": "me"}, "user_data: expected object, got string"},
		{"intake not object", map[string]any{"daily_intake": []any{}}, "daily_intake: expected object, got array"},
		{"macros not object", map[string]any{"daily_intake": map[string]any{"macronutrients": 4.0}}, "macronutrients: expected object, got number"},
		{"logs not array", map[string]any{"nutrition_logs": map[string]any{}}, "nutrition_logs: expected array, got object"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newDiet().Analyze(tt.payload)

			assert.True(t, r.Fallback)
			assert.False(t, r.ProfileComplete)
			assert.Equal(t, dietFallbackRecommendations, r.Recommendations)
			a, ok := r.Analysis.(models.ErrorAnalysis)
			require.True(t, ok)
			assert.Contains(t, a.Error, tt.errText)
			assert.False(t, a.ProfileComplete)
		})
	}
}

func TestDietIdempotent(t *testing.T) {
	payload := map[string]any{
		"user_data":      map[string]any{"dateOfBirth": "1990-01-01", "gender": "female"},
		"daily_intake":   intake(1800, 90, 200, 60),
		"nutrition_logs": mealLogs("2026-10-14T12:00:00Z", "2026-10-14T08:00:00Z"),
	}
	a := newDiet()

	first, err := json.Marshal(a.Analyze(payload))
	require.NoError(t, err)
	second, err := json.Marshal(a.Analyze(payload))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

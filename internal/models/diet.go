package models

type Macronutrients struct {
	Protein       float64 `json:"protein" example:"50"`
	Carbohydrates float64 `json:"carbohydrates" example:"300"`
	Fats          float64 `json:"fats" example:"40"`
}

// DailyIntake holds the day's totals: calories in kcal, macros in grams.
type DailyIntake struct {
	Calories       float64        `json:"calories" example:"2000"`
	Macronutrients Macronutrients `json:"macronutrients"`
}

type NutritionLog struct {
	Timestamp string `json:"timestamp" example:"2026-10-14T08:00:00Z"`
}

// DietRequest documents the body accepted by POST /api/diet.
type DietRequest struct {
	UserData      Profile        `json:"user_data"`
	DailyIntake   DailyIntake    `json:"daily_intake"`
	NutritionLogs []NutritionLog `json:"nutrition_logs"`
}

type MealPattern string

const (
	MealPatternRegular    MealPattern = "Regular"
	MealPatternIrregular  MealPattern = "Irregular"
	MealPatternFrequent   MealPattern = "Frequent"
	MealPatternInfrequent MealPattern = "Infrequent"
)

type CurrentIntake struct {
	Calories            float64        `json:"calories" example:"2000"`
	RecommendedCalories *int           `json:"recommended_calories" example:"2000"`
	Macronutrients      Macronutrients `json:"macronutrients"`
}

// NutrientBalance holds macro shares of total calories in whole percent.
type NutrientBalance struct {
	ProteinRatio int `json:"protein_ratio" example:"10"`
	CarbsRatio   int `json:"carbs_ratio" example:"60"`
	FatsRatio    int `json:"fats_ratio" example:"18"`
}

type DietAnalysis struct {
	CurrentIntake   CurrentIntake   `json:"current_intake"`
	MealPattern     MealPattern     `json:"meal_pattern" example:"Regular"`
	NutrientBalance NutrientBalance `json:"nutrient_balance"`
	ProfileData     ProfileData     `json:"profile_data"`
}

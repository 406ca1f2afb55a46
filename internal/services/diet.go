package services

import (
	"math"
	"time"

	"fitnessai/internal/logging"
	"fitnessai/internal/models"
	"fitnessai/internal/utils"
)

// Diet rule thresholds.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9

	maxMealGapHours   = 6
	minAvgMealGapHrs  = 2
	maxAvgMealGapHrs  = 5
	carbsRatioMin     = 0.30
	carbsRatioMax     = 0.65
	fatsRatioMin      = 0.20
	fatsRatioMax      = 0.35
	baselineAgeCutoff = 50
)

type proteinBand struct{ min, max float64 }

var (
	proteinBandMale    = proteinBand{0.25, 0.45}
	proteinBandDefault = proteinBand{0.20, 0.40}
)

var dietFallbackRecommendations = []string{
	"Please complete your profile for personalized recommendations.",
	"In the meantime, try these general tips:",
	"- Track your meals regularly",
	"- Aim for balanced macronutrients",
	"- Stay hydrated throughout the day",
}

var (
	femaleNutritionTips = []string{
		"Female-specific nutrition tips:",
		"- Ensure adequate iron intake, especially if menstruating",
		"- Include calcium-rich foods for bone health",
		"- Consider folate-rich foods for reproductive health",
	}
	maleNutritionTips = []string{
		"Male-specific nutrition tips:",
		"- Focus on lean proteins for muscle maintenance",
		"- Include zinc-rich foods for hormone balance",
		"- Consider heart-healthy fats",
	}
	ageNutritionTips = map[ageBand][]string{
		ageBandYoung: {
			"Young adult nutrition tips:",
			"- Support your active lifestyle with adequate calories",
			"- Include foods rich in calcium and vitamin D",
			"- Stay well-hydrated, especially during exercise",
		},
		ageBandAdult: {
			"Adult nutrition tips:",
			"- Balance nutrients for sustained energy",
			"- Include anti-inflammatory foods",
			"- Consider meal prep for consistent nutrition",
		},
		ageBandMidLife: {
			"Mid-life nutrition tips:",
			"- Focus on nutrient-dense, whole foods",
			"- Include foods rich in antioxidants",
			"- Consider reducing sodium intake",
		},
	}
)

// DietAnalyzer produces macro balance and meal timing advice.
type DietAnalyzer struct {
	log *logging.Logger
	now Clock
}

func NewDietAnalyzer(log *logging.Logger, now Clock) *DietAnalyzer {
	if now == nil {
		now = time.Now
	}
	return &DietAnalyzer{log: log.With("diet"), now: now}
}

func (a *DietAnalyzer) Analyze(payload map[string]any) (report models.Report) {
	defer func() {
		if r := recover(); r != nil {
			report = a.fallback(recovered(r))
		}
	}()

	r, err := a.analyze(payload)
	if err != nil {
		return a.fallback(err)
	}
	return r
}

func (a *DietAnalyzer) fallback(err error) models.Report {
	a.log.Error("diet recommendation error", "error", err)
	return models.Report{
		Recommendations: append([]string(nil), dietFallbackRecommendations...),
		Analysis:        models.ErrorAnalysis{Error: err.Error()},
		Fallback:        true,
	}
}

func (a *DietAnalyzer) analyze(payload map[string]any) (models.Report, error) {
	userData, err := utils.Object(payload, "user_data")
	if err != nil {
		return models.Report{}, err
	}
	intakeData, err := utils.Object(payload, "daily_intake")
	if err != nil {
		return models.Report{}, err
	}
	macroData, err := utils.Object(intakeData, "macronutrients")
	if err != nil {
		return models.Report{}, err
	}
	logs, err := utils.Array(payload, "nutrition_logs")
	if err != nil {
		return models.Report{}, err
	}

	profile := resolveProfile(userData, a.now(), a.log)
	intake := models.DailyIntake{
		Calories: number(a.log, intakeData, "calories", 0),
		Macronutrients: models.Macronutrients{
			Protein:       number(a.log, macroData, "protein", 0),
			Carbohydrates: number(a.log, macroData, "carbohydrates", 0),
			Fats:          number(a.log, macroData, "fats", 0),
		},
	}

	recs := []string{}

	if profile.Age == nil {
		recs = append(recs, "Complete your date of birth for more personalized nutrition recommendations")
	}
	if profile.Gender == models.GenderOther {
		recs = append(recs, "Specify your gender for tailored nutritional advice")
	}

	var baseline *int
	if profile.Complete() {
		switch profile.Gender {
		case models.GenderFemale:
			baseline = intPtr(2000)
			if *profile.Age >= baselineAgeCutoff {
				baseline = intPtr(1800)
			}
			recs = append(recs, femaleNutritionTips...)
		case models.GenderMale:
			baseline = intPtr(2500)
			if *profile.Age >= baselineAgeCutoff {
				baseline = intPtr(2200)
			}
			recs = append(recs, maleNutritionTips...)
		}
	}

	pattern, spacingTips := a.mealPattern(logs)
	recs = append(recs, spacingTips...)

	balance := models.NutrientBalance{}
	if intake.Calories > 0 {
		protein := intake.Macronutrients.Protein * kcalPerGramProtein / intake.Calories
		carbs := intake.Macronutrients.Carbohydrates * kcalPerGramCarbs / intake.Calories
		fats := intake.Macronutrients.Fats * kcalPerGramFat / intake.Calories

		band := proteinBandDefault
		if profile.Gender == models.GenderMale {
			band = proteinBandMale
		}

		switch {
		case protein < band.min:
			recs = append(recs, "Try to include more protein-rich foods like lean meats, fish, eggs, or legumes")
		case protein > band.max:
			recs = append(recs, "Consider balancing your meals with more vegetables and whole grains")
		}
		switch {
		case carbs < carbsRatioMin:
			recs = append(recs, "Include more complex carbohydrates from whole grains, fruits, and vegetables")
		case carbs > carbsRatioMax:
			recs = append(recs, "Try to include more protein and healthy fats in your meals")
		}
		switch {
		case fats < fatsRatioMin:
			recs = append(recs, "Add healthy fats from sources like avocados, nuts, and olive oil")
		case fats > fatsRatioMax:
			recs = append(recs, "Consider reducing fat intake, especially from processed foods")
		}

		balance = models.NutrientBalance{
			ProteinRatio: percent(protein),
			CarbsRatio:   percent(carbs),
			FatsRatio:    percent(fats),
		}
	}

	if profile.Age != nil {
		recs = append(recs, ageNutritionTips[ageBandOf(*profile.Age)]...)
	}

	return models.Report{
		Recommendations: recs,
		Analysis: models.DietAnalysis{
			CurrentIntake: models.CurrentIntake{
				Calories:            intake.Calories,
				RecommendedCalories: baseline,
				Macronutrients:      intake.Macronutrients,
			},
			MealPattern:     pattern,
			NutrientBalance: balance,
			ProfileData:     models.ProfileData{Age: profile.Age, Gender: profile.Gender},
		},
		ProfileComplete: profile.Complete(),
	}, nil
}

// mealPattern classifies the spacing of logged meals. Both gap checks run
// and the average-gap check runs last, so a sequence with one long gap but a
// short average ends up Frequent while both tips are emitted.
func (a *DietAnalyzer) mealPattern(logs []any) (models.MealPattern, []string) {
	var times []time.Time
	for i, raw := range logs {
		entry, ok := raw.(map[string]any)
		if !ok {
			a.log.Warn("skipping nutrition log that is not an object", "index", i)
			continue
		}
		ts, present := entry["timestamp"]
		if !present {
			continue
		}
		s, ok := ts.(string)
		if !ok {
			a.log.Warn("skipping nutrition log with non-string timestamp", "index", i)
			continue
		}
		t, ok := ParseTimestamp(s)
		if !ok {
			a.log.Warn("skipping unparseable meal timestamp", "index", i, "timestamp", s)
			continue
		}
		times = append(times, t)
	}

	pattern := models.MealPatternRegular
	if len(times) < 2 {
		return pattern, nil
	}
	sortTimes(times)

	gaps := make([]float64, 0, len(times)-1)
	for i := 1; i < len(times); i++ {
		gaps = append(gaps, times[i].Sub(times[i-1]).Hours())
	}
	avg := mean(gaps)
	longest := gaps[0]
	for _, g := range gaps[1:] {
		longest = math.Max(longest, g)
	}

	var tips []string
	if longest > maxMealGapHours {
		tips = append(tips, "Try to avoid gaps of more than 6 hours between meals")
		pattern = models.MealPatternIrregular
	}
	switch {
	case avg < minAvgMealGapHrs:
		tips = append(tips, "Consider spacing your meals at least 2-3 hours apart")
		pattern = models.MealPatternFrequent
	case avg > maxAvgMealGapHrs:
		tips = append(tips, "Consider adding healthy snacks between meals")
		pattern = models.MealPatternInfrequent
	}
	return pattern, tips
}

// percent rounds a ratio to whole percent, half to even.
func percent(ratio float64) int {
	return int(math.RoundToEven(ratio * 100))
}

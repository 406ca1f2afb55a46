package services

import (
	"fmt"
	"strings"
	"time"

	"fitnessai/internal/logging"
	"fitnessai/internal/models"
	"fitnessai/internal/utils"
)

// Workout rule thresholds.
const (
	defaultMaxHeartRate = 180
	weeklyWindow        = 7
	overloadWindow      = 4
	overtrainingMargin  = 2
	restInterval        = 24 * time.Hour
)

type heartRateZone struct {
	name     string
	low      float64
	high     float64
	guidance string
}

// heartRateZones are fractions of max heart rate, checked in order with
// inclusive bounds; the first match wins.
var heartRateZones = []heartRateZone{
	{"recovery", 0.6, 0.7, "Good for active recovery. Focus on technique and form."},
	{"aerobic", 0.7, 0.8, "Great for building endurance and burning fat."},
	{"anaerobic", 0.8, 0.9, "Excellent for improving cardiovascular fitness."},
	{"vo2max", 0.9, 1.0, "High intensity zone - limit time here to prevent overtraining."},
}

var workoutFallbackRecommendations = []string{
	"Please complete your profile for personalized recommendations.",
	"In the meantime, try these general tips:",
	"- Start with light to moderate intensity workouts",
	"- Focus on proper form and technique",
	"- Gradually increase duration and intensity",
	"- Include both cardio and strength training",
}

var (
	olderWorkoutTips = []string{
		"For your age group:",
		"- Focus on low-impact activities",
		"- Include balance exercises",
		"- Maintain flexibility with stretching",
		"- Consider swimming or water aerobics",
	}
	youngerWorkoutTips = []string{
		"For your age group:",
		"- Mix cardio with strength training",
		"- Try high-intensity interval training (HIIT)",
		"- Include dynamic stretching",
		"- Consider team sports or group activities",
	}
	middleWorkoutTips = []string{
		"For your age group:",
		"- Balance cardio and strength training",
		"- Include flexibility work",
		"- Focus on proper form and technique",
		"- Consider yoga or Pilates",
	}
	genderWorkoutTips = map[models.Gender][]string{
		models.GenderFemale: {
			"For optimal results:",
			"- Include strength training for bone health",
			"- Focus on core and lower body exercises",
			"- Consider resistance training 2-3 times per week",
			"- Mix in high and low impact activities",
		},
		models.GenderMale: {
			"For optimal results:",
			"- Balance strength and cardio training",
			"- Include upper body exercises",
			"- Consider compound movements",
			"- Focus on proper form to prevent injury",
		},
	}
)

// MaxHeartRate estimates maximum heart rate with the Tanaka formula.
func MaxHeartRate(age *int) float64 {
	if age == nil {
		return defaultMaxHeartRate
	}
	return 208 - 0.7*float64(*age)
}

// HeartRateZones returns the bpm range of each training zone.
func HeartRateZones(maxHR float64) map[string]models.ZoneBounds {
	zones := make(map[string]models.ZoneBounds, len(heartRateZones))
	for _, z := range heartRateZones {
		zones[z.name] = models.ZoneBounds{maxHR * z.low, maxHR * z.high}
	}
	return zones
}

// HeartRateZone names the zone heartRate falls in, or "unknown".
func HeartRateZone(heartRate, maxHR float64) string {
	if z, ok := zoneFor(heartRate, maxHR); ok {
		return z.name
	}
	return "unknown"
}

func zoneFor(heartRate, maxHR float64) (heartRateZone, bool) {
	for _, z := range heartRateZones {
		if maxHR*z.low <= heartRate && heartRate <= maxHR*z.high {
			return z, true
		}
	}
	return heartRateZone{}, false
}

// Targets picks the weekly frequency, session length and intensity label
// for an age and gender.
func Targets(age int, gender models.Gender) models.TrainingTargets {
	var t models.TrainingTargets
	switch {
	case age < 30:
		t = models.TrainingTargets{Frequency: 4, Duration: 45, Intensity: "moderate to high"}
	case age < 50:
		t = models.TrainingTargets{Frequency: 3, Duration: 40, Intensity: "moderate"}
	default:
		t = models.TrainingTargets{Frequency: 3, Duration: 30, Intensity: "light to moderate"}
	}
	if gender == models.GenderFemale {
		t.Intensity = strings.ReplaceAll(t.Intensity, "high", "moderate-high")
		t.Duration += 5
	}
	return t
}

// WorkoutAnalyzer produces training advice from the current session and the
// recent workout history.
type WorkoutAnalyzer struct {
	log *logging.Logger
	now Clock
}

func NewWorkoutAnalyzer(log *logging.Logger, now Clock) *WorkoutAnalyzer {
	if now == nil {
		now = time.Now
	}
	return &WorkoutAnalyzer{log: log.With("workout"), now: now}
}

// workoutRun tracks how far an analysis got so a failure can hand back
// whatever was built.
type workoutRun struct {
	profileKnown bool
	complete     bool
	recs         []string
	analysis     *models.WorkoutAnalysis
}

func (a *WorkoutAnalyzer) Analyze(payload map[string]any) (report models.Report) {
	run := &workoutRun{}
	defer func() {
		if r := recover(); r != nil {
			report = a.fallback(run, recovered(r))
		}
	}()

	if err := a.analyze(payload, run); err != nil {
		return a.fallback(run, err)
	}
	return models.Report{
		Recommendations: run.recs,
		Analysis:        *run.analysis,
		ProfileComplete: run.complete,
	}
}

// fallback returns the generic advice unless the profile was already known to
// be complete, in which case the partial result is returned as is.
func (a *WorkoutAnalyzer) fallback(run *workoutRun, err error) models.Report {
	a.log.Error("workout recommendation error", "error", err)
	if run.profileKnown && run.complete && run.analysis != nil {
		return models.Report{
			Recommendations: run.recs,
			Analysis:        *run.analysis,
			ProfileComplete: true,
			Fallback:        true,
		}
	}
	return models.Report{
		Recommendations: append([]string(nil), workoutFallbackRecommendations...),
		Analysis:        models.ErrorAnalysis{Error: err.Error()},
		Fallback:        true,
	}
}

func (a *WorkoutAnalyzer) analyze(payload map[string]any, run *workoutRun) error {
	userData, err := utils.Object(payload, "user_data")
	if err != nil {
		return err
	}
	rawHistory, err := utils.Array(payload, "workout_history")
	if err != nil {
		return err
	}
	history, err := utils.Objects("workout_history", rawHistory)
	if err != nil {
		return err
	}
	stats, err := utils.Object(payload, "current_stats")
	if err != nil {
		return err
	}

	now := a.now()
	profile := resolveProfile(userData, now, a.log)
	maxHR := MaxHeartRate(profile.Age)

	current := models.CurrentWorkout{
		ActivityType:   utils.String(stats, "activityType", ""),
		Duration:       number(a.log, stats, "duration", 0),
		HeartRate:      number(a.log, stats, "heartRate", 0),
		CaloriesBurned: number(a.log, stats, "caloriesBurned", 0),
	}

	week := tail(history, weeklyWindow)
	var volume float64
	for _, w := range week {
		volume += number(a.log, w, "duration", 0)
	}

	run.recs = []string{}
	run.analysis = &models.WorkoutAnalysis{
		CurrentWorkout: current,
		WeeklyStats:    models.WeeklyStats{TotalVolume: volume, Frequency: len(week)},
		HeartRateZones: HeartRateZones(maxHR),
		ProfileData:    models.ProfileData{Age: profile.Age, Gender: profile.Gender},
	}
	run.profileKnown = true
	run.complete = profile.Complete()
	a.log.Info("profile completeness check", "age", profile.Age, "gender", string(profile.Gender), "complete", run.complete)

	if !run.complete {
		if profile.Age == nil {
			run.recs = append(run.recs, "Complete your date of birth for more personalized workout recommendations")
		}
		if profile.Gender == models.GenderOther {
			run.recs = append(run.recs, "Specify your gender for tailored workout advice")
		}
		return nil
	}

	age := *profile.Age
	targets := Targets(age, profile.Gender)
	run.analysis.TrainingTargets = &targets

	switch {
	case len(week) < targets.Frequency:
		run.recs = append(run.recs, fmt.Sprintf("Try to increase workout frequency to %d times per week", targets.Frequency))
	case len(week) > targets.Frequency+overtrainingMargin:
		run.recs = append(run.recs, "Consider adding more rest days to prevent overtraining")
	}

	if current.Duration < float64(targets.Duration) {
		run.recs = append(run.recs, fmt.Sprintf("Gradually increase workout duration to %d minutes", targets.Duration))
	}

	if current.HeartRate > 0 {
		if z, ok := zoneFor(current.HeartRate, maxHR); ok {
			run.recs = append(run.recs, z.guidance)
		}
	}

	switch {
	case age >= 50:
		run.recs = append(run.recs, olderWorkoutTips...)
	case age < 30:
		run.recs = append(run.recs, youngerWorkoutTips...)
	default:
		run.recs = append(run.recs, middleWorkoutTips...)
	}
	run.recs = append(run.recs, genderWorkoutTips[profile.Gender]...)

	if len(history) > 0 {
		last := history[len(history)-1]
		if current.ActivityType != "" && utils.String(last, "activityType", "") == current.ActivityType {
			run.recs = append(run.recs, "Consider varying your workout type for better overall fitness")
		}
		if date, ok := ParseTimestamp(utils.String(last, "date", "")); ok {
			if now.Sub(date) < restInterval {
				run.recs = append(run.recs, "Ensure adequate rest between workouts")
			}
		} else {
			a.log.Warn("could not parse workout date", "date", fmt.Sprint(last["date"]))
		}
	}

	if len(history) >= overloadWindow {
		progressing := true
		for _, w := range tail(history, overloadWindow) {
			if number(a.log, w, "duration", 0) < float64(targets.Duration) {
				progressing = false
				break
			}
		}
		if progressing {
			run.recs = append(run.recs, "Consider gradually increasing workout intensity")
		}
	}

	return nil
}

func tail[T any](xs []T, n int) []T {
	if len(xs) <= n {
		return xs
	}
	return xs[len(xs)-n:]
}

package services

import (
	"fmt"
	"time"

	"fitnessai/internal/logging"
	"fitnessai/internal/models"
	"fitnessai/internal/utils"
)

// Stress rule thresholds.
const (
	defaultStressLevel  = 5
	defaultSleepQuality = 5
	scaleMin            = 0
	scaleMax            = 10

	highStressLevel     = 7
	moderateStressLevel = 5
	poorSleepQuality    = 5

	// trendWindow is the number of trailing entries compared against the rest.
	trendWindow          = 3
	stressTrendThreshold = 1.0
	sleepTrendThreshold  = 1.0
	moodTrendThreshold   = 0.5
)

var moodScores = map[models.Mood]float64{
	models.MoodHappy:   3,
	models.MoodNeutral: 2,
	models.MoodAnxious: 1,
	models.MoodSad:     0,
}

var stressFallbackRecommendations = []string{
	"Unable to generate personalized recommendations.",
	"Please complete your profile for tailored advice.",
	"In the meantime, try these general wellness tips:",
	"- Maintain regular exercise",
	"- Practice mindfulness daily",
	"- Keep a consistent sleep schedule",
}

var (
	highStressTips = []string{
		"Your stress level is high. Consider immediate stress relief activities:",
		"- Practice deep breathing exercises (4-7-8 technique)",
		"- Take a short walk outside",
		"- Try progressive muscle relaxation",
	}
	moderateStressTips = []string{
		"Your stress level is moderate. Here are some management techniques:",
		"- Take regular breaks during work",
		"- Practice mindfulness meditation",
		"- Consider light exercise",
	}
	lowStressTips = []string{
		"Your stress level is manageable. Keep it up with these practices:",
		"- Maintain your current stress management routine",
		"- Stay physically active",
		"- Continue with relaxation practices",
	}
	highStressGenderTips = map[models.Gender]string{
		models.GenderFemale: "- Consider journaling or talking with a friend (studies show women often benefit from verbal processing)",
		models.GenderMale:   "- Consider physical exercise or problem-solving activities (studies show men often benefit from action-oriented coping)",
	}
	ageStressTips = map[ageBand][]string{
		ageBandYoung: {
			"Young adult specific tips:",
			"- Balance academic/work pressure with social activities",
			"- Maintain regular sleep schedule despite high energy levels",
			"- Learn to set healthy boundaries",
		},
		ageBandAdult: {
			"Career-age specific tips:",
			"- Practice work-life balance",
			"- Schedule regular exercise despite busy schedule",
			"- Make time for hobbies and personal growth",
		},
		ageBandMidLife: {
			"Mid-life specific tips:",
			"- Practice stress-reducing activities like yoga or tai chi",
			"- Maintain social connections",
			"- Consider regular health check-ups",
		},
	}
	poorSleepTips = []string{
		"Improve your sleep quality with these tips:",
		"- Maintain a consistent sleep schedule",
		"- Create a relaxing bedtime routine",
		"- Limit screen time before bed",
	}
	poorSleepGenderTips = map[models.Gender]string{
		models.GenderFemale: "- Consider hormone-cycle impact on sleep patterns",
		models.GenderMale:   "- Consider impact of evening exercise on sleep quality",
	}
	decliningSleepTips = []string{
		"Your sleep quality is declining. Consider these adjustments:",
		"- Review your evening routine",
		"- Ensure your bedroom is dark and quiet",
		"- Avoid caffeine in the afternoon",
	}
	lowMoodGenderTips = map[models.Gender]string{
		models.GenderFemale: "- Join a support group or community activity",
		models.GenderMale:   "- Try a physical activity or hobby project",
	}
)

// StressAnalyzer produces coping advice from the current check-in and the
// trend of recent daily logs.
type StressAnalyzer struct {
	log *logging.Logger
	now Clock
}

func NewStressAnalyzer(log *logging.Logger, now Clock) *StressAnalyzer {
	if now == nil {
		now = time.Now
	}
	return &StressAnalyzer{log: log.With("stress"), now: now}
}

func (a *StressAnalyzer) Analyze(payload map[string]any) (report models.Report) {
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

func (a *StressAnalyzer) fallback(err error) models.Report {
	a.log.Error("error in stress analysis", "error", err)
	return models.Report{
		Recommendations: append([]string(nil), stressFallbackRecommendations...),
		Analysis: models.StressAnalysis{
			CurrentState: models.CurrentState{
				Mood:         models.MoodNeutral,
				StressLevel:  defaultStressLevel,
				SleepQuality: defaultSleepQuality,
				Gender:       models.GenderOther,
			},
			Patterns: models.Patterns{
				StressTrend: models.TrendNeutral,
				SleepTrend:  models.TrendNeutral,
				MoodTrend:   models.TrendNeutral,
			},
		},
		Fallback: true,
	}
}

func (a *StressAnalyzer) analyze(payload map[string]any) (models.Report, error) {
	userData, err := utils.Object(payload, "user_data")
	if err != nil {
		return models.Report{}, err
	}
	rawLogs, err := utils.Array(payload, "daily_logs")
	if err != nil {
		return models.Report{}, err
	}
	logs, err := utils.Objects("daily_logs", rawLogs)
	if err != nil {
		return models.Report{}, err
	}
	checkIn, err := utils.Object(payload, "current_check_in")
	if err != nil {
		return models.Report{}, err
	}

	a.log.Debug("starting stress analysis", "logs_count", len(logs), "has_check_in", len(checkIn) > 0)

	profile := resolveProfile(userData, a.now(), a.log)

	var source map[string]any
	switch {
	case len(checkIn) > 0:
		source = checkIn
	case len(logs) > 0:
		source = logs[0]
	default:
		a.log.Warn("no logs available, using default values")
	}
	state := a.currentState(source)
	state.Age = profile.Age
	state.Gender = profile.Gender

	patterns := models.Patterns{
		StressTrend: a.stressTrend(logs),
		SleepTrend:  a.sleepTrend(logs),
		MoodTrend:   moodTrend(logs),
	}
	a.log.Debug("analyzed patterns", "stress", string(patterns.StressTrend), "sleep", string(patterns.SleepTrend), "mood", string(patterns.MoodTrend))

	recs := []string{}

	switch {
	case state.StressLevel >= highStressLevel:
		recs = append(recs, highStressTips...)
		if tip, ok := highStressGenderTips[profile.Gender]; ok {
			recs = append(recs, tip)
		}
	case state.StressLevel >= moderateStressLevel:
		recs = append(recs, moderateStressTips...)
	default:
		recs = append(recs, lowStressTips...)
	}

	if profile.Age != nil {
		recs = append(recs, ageStressTips[ageBandOf(*profile.Age)]...)
	} else {
		recs = append(recs, "Complete your profile with date of birth for more personalized recommendations")
	}

	switch {
	case state.SleepQuality <= poorSleepQuality:
		recs = append(recs, poorSleepTips...)
		if tip, ok := poorSleepGenderTips[profile.Gender]; ok {
			recs = append(recs, tip)
		}
	case patterns.SleepTrend == models.TrendDeclining:
		recs = append(recs, decliningSleepTips...)
	}

	if state.Mood == models.MoodSad || state.Mood == models.MoodAnxious {
		recs = append(recs,
			fmt.Sprintf("Notice you're feeling %s. Here are some mood-lifting activities:", state.Mood),
			"- Reach out to a friend or family member",
			"- Engage in activities you enjoy",
			"- Consider journaling your thoughts",
		)
		if tip, ok := lowMoodGenderTips[profile.Gender]; ok {
			recs = append(recs, tip)
		}
	}

	a.log.Info("completed stress analysis")
	return models.Report{
		Recommendations: recs,
		Analysis: models.StressAnalysis{
			CurrentState: state,
			Patterns:     patterns,
		},
		ProfileComplete: profile.Complete(),
	}, nil
}

// currentState reads and sanitizes mood, stress and sleep from a check-in.
// A nil source yields the defaults.
func (a *StressAnalyzer) currentState(source map[string]any) models.CurrentState {
	state := models.CurrentState{
		Mood:         models.MoodNeutral,
		StressLevel:  defaultStressLevel,
		SleepQuality: defaultSleepQuality,
	}
	if source == nil {
		return state
	}

	if mood, ok := source["mood"].(string); ok && mood != "" {
		state.Mood = models.Mood(mood)
	} else {
		a.log.Warn("invalid mood value, using default", "default", string(models.MoodNeutral))
	}
	state.StressLevel = utils.Clamp(number(a.log, source, "stressLevel", defaultStressLevel), scaleMin, scaleMax)
	state.SleepQuality = utils.Clamp(number(a.log, source, "sleepQuality", defaultSleepQuality), scaleMin, scaleMax)
	return state
}

func (a *StressAnalyzer) stressTrend(logs []map[string]any) models.Trend {
	values, ok := a.series(logs, "stressLevel", defaultStressLevel)
	if !ok {
		return models.TrendNeutral
	}
	return classifyTrend(values, stressTrendThreshold, models.TrendIncreasing, models.TrendDecreasing)
}

func (a *StressAnalyzer) sleepTrend(logs []map[string]any) models.Trend {
	values, ok := a.series(logs, "sleepQuality", defaultSleepQuality)
	if !ok {
		return models.TrendNeutral
	}
	return classifyTrend(values, sleepTrendThreshold, models.TrendImproving, models.TrendDeclining)
}

func moodTrend(logs []map[string]any) models.Trend {
	values := make([]float64, 0, len(logs))
	for _, l := range logs {
		mood, _ := l["mood"].(string)
		score, ok := moodScores[models.Mood(mood)]
		if !ok {
			score = moodScores[models.MoodNeutral]
		}
		values = append(values, score)
	}
	return classifyTrend(values, moodTrendThreshold, models.TrendImproving, models.TrendDeclining)
}

// series extracts one numeric field from every log. Trend values are not
// clamped. A value that is not a number spoils the whole series.
func (a *StressAnalyzer) series(logs []map[string]any, key string, def float64) ([]float64, bool) {
	values := make([]float64, 0, len(logs))
	for i, l := range logs {
		v, ok := utils.Number(l, key, def)
		if !ok {
			a.log.Error("error analyzing pattern", "field", key, "index", i)
			return nil, false
		}
		values = append(values, v)
	}
	return values, true
}

// classifyTrend compares the mean of the last trendWindow values with the
// mean of everything before them.
func classifyTrend(values []float64, threshold float64, up, down models.Trend) models.Trend {
	if len(values) == 0 {
		return models.TrendNeutral
	}
	if len(values) <= trendWindow {
		return models.TrendStable
	}
	split := len(values) - trendWindow
	diff := mean(values[split:]) - mean(values[:split])
	switch {
	case diff > threshold:
		return up
	case diff < -threshold:
		return down
	default:
		return models.TrendStable
	}
}

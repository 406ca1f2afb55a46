package models

type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodAnxious Mood = "anxious"
	MoodSad     Mood = "sad"
)

// CheckIn is one stress/mood/sleep entry. StressLevel and SleepQuality are on
// a 0-10 scale.
type CheckIn struct {
	Mood         Mood    `json:"mood" example:"anxious"`
	StressLevel  float64 `json:"stressLevel" example:"7"`
	SleepQuality float64 `json:"sleepQuality" example:"4"`
	Notes        string  `json:"notes" example:"deadline week"`
}

// StressRequest documents the body accepted by POST /api/stress. DailyLogs are
// expected most recent first.
type StressRequest struct {
	UserData       Profile   `json:"user_data"`
	DailyLogs      []CheckIn `json:"daily_logs"`
	CurrentCheckIn *CheckIn  `json:"current_check_in"`
}

type Trend string

const (
	TrendNeutral    Trend = "neutral"
	TrendStable     Trend = "stable"
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendImproving  Trend = "improving"
	TrendDeclining  Trend = "declining"
)

type CurrentState struct {
	Mood         Mood    `json:"mood" example:"anxious"`
	StressLevel  float64 `json:"stress_level" example:"7"`
	SleepQuality float64 `json:"sleep_quality" example:"4"`
	Age          *int    `json:"age" example:"32"`
	Gender       Gender  `json:"gender" example:"female"`
}

type Patterns struct {
	StressTrend Trend `json:"stress_trend" example:"increasing"`
	SleepTrend  Trend `json:"sleep_trend" example:"stable"`
	MoodTrend   Trend `json:"mood_trend" example:"declining"`
}

type StressAnalysis struct {
	CurrentState CurrentState `json:"current_state"`
	Patterns     Patterns     `json:"patterns"`
}

package models

// WorkoutEntry is one logged session. Duration is in minutes, HeartRate in bpm.
type WorkoutEntry struct {
	ActivityType   string  `json:"activityType" example:"running"`
	Duration       float64 `json:"duration" example:"40"`
	HeartRate      float64 `json:"heartRate" example:"150"`
	CaloriesBurned float64 `json:"caloriesBurned" example:"420"`
	Date           string  `json:"date" example:"2026-10-13T18:00:00Z"`
}

// WorkoutRequest documents the body accepted by POST /api/workout.
// WorkoutHistory is expected oldest first.
type WorkoutRequest struct {
	UserData       Profile        `json:"user_data"`
	WorkoutHistory []WorkoutEntry `json:"workout_history"`
	CurrentStats   WorkoutEntry   `json:"current_stats"`
}

type CurrentWorkout struct {
	ActivityType   string  `json:"activity_type" example:"running"`
	Duration       float64 `json:"duration" example:"40"`
	HeartRate      float64 `json:"heart_rate" example:"150"`
	CaloriesBurned float64 `json:"calories_burned" example:"420"`
}

type WeeklyStats struct {
	TotalVolume float64 `json:"total_volume" example:"180"`
	Frequency   int     `json:"frequency" example:"4"`
}

// ZoneBounds is a [lower, upper] heart rate range in bpm.
type ZoneBounds [2]float64

type TrainingTargets struct {
	Frequency int    `json:"frequency" example:"3"`
	Duration  int    `json:"duration" example:"40"`
	Intensity string `json:"intensity" example:"moderate"`
}

type WorkoutAnalysis struct {
	CurrentWorkout  CurrentWorkout        `json:"current_workout"`
	WeeklyStats     WeeklyStats           `json:"weekly_stats"`
	HeartRateZones  map[string]ZoneBounds `json:"heart_rate_zones"`
	ProfileData     ProfileData           `json:"profile_data"`
	TrainingTargets *TrainingTargets      `json:"training_targets,omitempty"`
}

package models

// Report is the response body of every analyzer endpoint.
type Report struct {
	Recommendations []string `json:"recommendations"`
	Analysis        any      `json:"analysis"`
	ProfileComplete bool     `json:"profile_complete"`

	// Fallback marks a report produced by the error branch.
	Fallback bool `json:"-"`
}

// ErrorAnalysis is the analysis block of a fallback report.
type ErrorAnalysis struct {
	Error           string `json:"error" example:"user_data: expected object, got string"`
	ProfileComplete bool   `json:"profile_complete" example:"false"`
}

type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Timestamp string `json:"timestamp" example:"2026-10-14T09:30:00Z"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Invalid request: No data provided"`
}

package services

import (
	"fmt"
	"sort"
	"time"

	"fitnessai/internal/logging"
	"fitnessai/internal/models"
	"fitnessai/internal/utils"
)

// Analyzer turns a decoded request body into a report. Implementations never
// fail: any problem is folded into a fallback report.
type Analyzer interface {
	Analyze(payload map[string]any) models.Report
}

// recovered converts a recovered panic value into an error.
func recovered(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("recovered: %w", err)
	}
	return fmt.Errorf("recovered: %v", r)
}

// number reads a numeric member and logs when the value had to be replaced.
func number(log *logging.Logger, obj map[string]any, key string, def float64) float64 {
	v, ok := utils.Number(obj, key, def)
	if !ok {
		log.Warn("invalid numeric value, using default", "field", key, "value", fmt.Sprint(obj[key]), "default", def)
	}
	return v
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

// ParseTimestamp parses an ISO-8601 timestamp. Values without a zone are
// taken as UTC.
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// mean returns the arithmetic mean of xs; callers guarantee len(xs) > 0.
func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func sortTimes(ts []time.Time) {
	sort.Slice(ts, func(i, j int) bool { return ts[i].Before(ts[j]) })
}

func intPtr(v int) *int { return &v }

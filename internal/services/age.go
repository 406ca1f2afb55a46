package services

import (
	"strings"
	"time"

	"fitnessai/internal/logging"
	"fitnessai/internal/models"
	"fitnessai/internal/utils"
)

// Clock returns the current time. Analyzers take one so tests can pin "now".
type Clock func() time.Time

// birthDateLayouts are tried in order; the first that parses wins.
var birthDateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseBirthDate parses a date of birth. Anything with a T separator whose
// date part is valid is accepted as well.
func ParseBirthDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if date, _, found := strings.Cut(s, "T"); found {
		if t, err := time.Parse(time.DateOnly, date); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AgeOn returns whole years between born and now, using the calendar date
// as written in each value.
func AgeOn(born, now time.Time) int {
	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	return age
}

// ResolveAge returns the age for a date-of-birth string, or nil when it is
// empty, unparseable, or in the future.
func ResolveAge(dateOfBirth string, now time.Time) *int {
	born, ok := ParseBirthDate(dateOfBirth)
	if !ok {
		return nil
	}
	age := AgeOn(born, now)
	if age < 0 {
		return nil
	}
	return &age
}

// resolveProfile reads dateOfBirth and gender from user_data. Missing or
// blank gender becomes "other".
func resolveProfile(userData map[string]any, now time.Time, log *logging.Logger) models.Profile {
	dob := utils.String(userData, "dateOfBirth", "")
	gender := models.Gender(strings.ToLower(strings.TrimSpace(utils.String(userData, "gender", ""))))
	if gender == "" {
		gender = models.GenderOther
	}

	p := models.Profile{DateOfBirth: dob, Gender: gender}
	switch {
	case dob == "":
		log.Warn("no date of birth provided")
	default:
		p.Age = ResolveAge(dob, now)
		if p.Age == nil {
			log.Warn("could not resolve age from date of birth", "date_of_birth", dob)
		}
	}
	log.Debug("resolved profile", "age", p.Age, "gender", string(p.Gender))
	return p
}

type ageBand int

const (
	ageBandYoung ageBand = iota
	ageBandAdult
	ageBandMidLife
)

// Young is under 25, adult 25 to 39, mid-life 40 and over.
func ageBandOf(age int) ageBand {
	switch {
	case age < 25:
		return ageBandYoung
	case age < 40:
		return ageBandAdult
	default:
		return ageBandMidLife
	}
}

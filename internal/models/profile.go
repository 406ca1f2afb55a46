package models

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Profile is the part of user_data the analyzers care about. Age is derived
// from DateOfBirth and is nil when it could not be resolved.
type Profile struct {
	DateOfBirth string `json:"dateOfBirth" example:"1994-06-02"`
	Gender      Gender `json:"gender" example:"female"`
	Age         *int   `json:"-"`
}

// Complete reports whether both age and a non-"other" gender are known.
func (p Profile) Complete() bool {
	return p.Age != nil && p.Gender != GenderOther
}

// ProfileData is the profile summary echoed back in an analysis.
type ProfileData struct {
	Age    *int   `json:"age" example:"32"`
	Gender Gender `json:"gender" example:"female"`
}

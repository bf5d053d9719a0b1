package domain

import (
	"context"
	"time"
)

// Weight units accepted throughout the system.
const (
	UnitKg = "kg"
	UnitLb = "lb"
)

// ValidUnit reports whether u is a recognised weight unit.
func ValidUnit(u string) bool {
	return u == UnitKg || u == UnitLb
}

// Sex values used by the BMR formula.
const (
	SexMale   = "male"
	SexFemale = "female"
)

// Activity levels, in increasing order of expenditure.
const (
	ActivitySedentary = "sedentary"
	ActivityLight     = "lightly_active"
	ActivityModerate  = "moderately_active"
	ActivityVery      = "very_active"
	ActivitySuper     = "super_active"
)

// Weight goal types.
const (
	GoalMaintain = "maintain"
	GoalLose     = "lose"
	GoalGain     = "gain"
)

// UserProfile holds the biometric and goal attributes used by forecasting.
// TargetWeight and TargetRate are expressed in Unit and are required for
// lose/gain goals; for maintain they are ignored.
type UserProfile struct {
	UserID        int64     `json:"userId"`
	Sex           string    `json:"sex"`
	DateOfBirth   time.Time `json:"dateOfBirth"`
	HeightIn      float64   `json:"heightIn"`
	ActivityLevel string    `json:"activityLevel"`
	Goal          string    `json:"goal"`
	TargetWeight  float64   `json:"targetWeight"`
	TargetRate    float64   `json:"targetRate"`
	Unit          string    `json:"unit"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProfileRepository is the port for profile persistence. Get returns
// (nil, nil) when the user has no profile yet.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID int64) (*UserProfile, error)
	PutProfile(ctx context.Context, p UserProfile) error
}

package app

import (
	"context"
	"errors"
	"time"

	"bodycomp/internal/domain"
)

var (
	// ErrInvalidProfile indicates a profile field failed validation.
	ErrInvalidProfile = errors.New("invalid profile")
	// ErrMissingTarget indicates a lose/gain goal without target weight and rate.
	ErrMissingTarget = errors.New("target weight and rate are required for lose/gain goals")
)

var activityLevels = map[string]bool{
	domain.ActivitySedentary: true,
	domain.ActivityLight:     true,
	domain.ActivityModerate:  true,
	domain.ActivityVery:      true,
	domain.ActivitySuper:     true,
}

// ProfileService encapsulates user-profile use cases.
type ProfileService struct {
	repo domain.ProfileRepository
}

// NewProfileService creates a ProfileService backed by the given repository.
func NewProfileService(repo domain.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Get returns the user's profile, or nil if none has been saved yet.
func (s *ProfileService) Get(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	return s.repo.GetProfile(ctx, userID)
}

// Put validates and stores the user's profile.
func (s *ProfileService) Put(ctx context.Context, p domain.UserProfile) error {
	if p.Sex != domain.SexMale && p.Sex != domain.SexFemale {
		return ErrInvalidProfile
	}
	if p.DateOfBirth.IsZero() || p.DateOfBirth.After(time.Now()) {
		return ErrInvalidProfile
	}
	if p.HeightIn <= 0 {
		return ErrInvalidProfile
	}
	if !activityLevels[p.ActivityLevel] {
		return ErrInvalidProfile
	}
	if !domain.ValidUnit(p.Unit) {
		return ErrInvalidUnit
	}
	switch p.Goal {
	case domain.GoalMaintain:
		// Target weight and rate are ignored for maintain.
	case domain.GoalLose, domain.GoalGain:
		if p.TargetWeight <= 0 || p.TargetRate <= 0 {
			return ErrMissingTarget
		}
	default:
		return ErrInvalidProfile
	}

	p.UpdatedAt = time.Now()
	return s.repo.PutProfile(ctx, p)
}

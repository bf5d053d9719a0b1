package forecast

import (
	"math"
	"time"

	"bodycomp/internal/domain"
)

// Multipliers applied to BMR to estimate total daily energy expenditure.
var activityFactors = map[string]float64{
	domain.ActivitySedentary: 1.20,
	domain.ActivityLight:     1.375,
	domain.ActivityModerate:  1.55,
	domain.ActivityVery:      1.725,
	domain.ActivitySuper:     1.90,
}

// kcal per pound of adipose tissue.
const kcalPerPound = 3500

// Age returns whole years between dateOfBirth and today, decremented by one
// if the anniversary has not yet occurred this year. Returns -1 if
// dateOfBirth is missing or in the future.
func Age(dateOfBirth, today time.Time) int {
	if dateOfBirth.IsZero() || dateOfBirth.After(today) {
		return -1
	}
	years := today.Year() - dateOfBirth.Year()
	if dateOfBirth.AddDate(years, 0, 0).After(today) {
		years--
	}
	return years
}

// BMR computes the Mifflin-St Jeor basal metabolic rate in kcal/day.
// Returns NaN if sex is unrecognised or any input is non-positive or NaN.
func BMR(sex string, weightKg, heightCm float64, ageYears int) float64 {
	if math.IsNaN(weightKg) || math.IsNaN(heightCm) {
		return math.NaN()
	}
	if weightKg <= 0 || heightCm <= 0 || ageYears <= 0 {
		return math.NaN()
	}
	base := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	switch sex {
	case domain.SexMale:
		return base + 5
	case domain.SexFemale:
		return base - 161
	}
	return math.NaN()
}

// TDEE scales a basal metabolic rate by the activity level multiplier.
// Returns NaN if the level is unrecognised or bmr is invalid.
func TDEE(bmr float64, activityLevel string) float64 {
	factor, ok := activityFactors[activityLevel]
	if !ok || math.IsNaN(bmr) || bmr <= 0 {
		return math.NaN()
	}
	return bmr * factor
}

// FatMass returns the fat portion of weight, in the same unit as weight.
func FatMass(weight, bodyFatPercent float64) float64 {
	return weight * bodyFatPercent / 100
}

// LeanMass returns weight minus fat mass, in the same unit as weight.
func LeanMass(weight, bodyFatPercent float64) float64 {
	return weight - FatMass(weight, bodyFatPercent)
}

// TargetIntake derives the daily caloric intake that moves weight at
// targetRate (mass per week, expressed in rateUnit) toward the goal. A
// maintain goal returns tdee unchanged. Returns NaN for an invalid tdee,
// goal, or rate; the result is clamped to a minimum of zero.
func TargetIntake(tdee float64, goal string, targetRate float64, rateUnit string) float64 {
	if math.IsNaN(tdee) {
		return math.NaN()
	}
	if goal == domain.GoalMaintain {
		return tdee
	}
	if targetRate <= 0 || math.IsNaN(targetRate) {
		return math.NaN()
	}
	ratePerWeekLb := targetRate
	if rateUnit == domain.UnitKg {
		ratePerWeekLb = domain.KilogramsToPounds(targetRate)
	}
	adjustment := ratePerWeekLb * kcalPerPound / 7
	var intake float64
	switch goal {
	case domain.GoalLose:
		intake = tdee - adjustment
	case domain.GoalGain:
		intake = tdee + adjustment
	default:
		return math.NaN()
	}
	return math.Max(0, intake)
}

package forecast

import (
	"math"
	"time"

	"bodycomp/internal/domain"
)

// Projected body-fat percent is clamped to this physiologically plausible
// band; the simplified lean-mass model degrades at extreme extrapolations.
const (
	minProjectedBodyFat = 5
	maxProjectedBodyFat = 40
)

// ProjectEnergyBalance models daily weight change as the first-order linear
// recurrence W(t+1) = r*W(t) + b, where r captures how the Mifflin-St Jeor
// expenditure responds to weight (10 kcal per kg, i.e. 10*0.453592 per lb,
// at 3500 kcal per lb of tissue) and b follows from the target caloric
// intake. r is dimensionless and b is pound-denominated, so the recurrence
// runs directly in the anchor record's unit with b converted into it; an
// intake exactly equal to expenditure is a fixed point, and t = 0
// reproduces the anchor weight without any unit round-trip. The closed form
// W(t) = Weq + (W0-Weq)*r^t is evaluated for t = 0..cfg.PredictionDays
// inclusive. Body-fat percent is projected by holding the anchor's lean
// mass constant.
//
// Returns nil if the anchor record or profile is incomplete, PredictionDays
// is not positive, a non-maintain goal lacks a positive target weight/rate,
// or the recurrence is degenerate (r == 1).
func ProjectEnergyBalance(records []domain.MeasurementRecord, p domain.UserProfile, cfg Config, today time.Time) []Point {
	if len(records) == 0 || cfg.PredictionDays <= 0 {
		return nil
	}
	last := records[len(records)-1]
	if last.Weight <= 0 || last.BodyFatPercent < 0 || last.BodyFatPercent > 100 || !domain.ValidUnit(last.Unit) {
		return nil
	}

	age := Age(p.DateOfBirth, today)
	if age <= 0 || p.HeightIn <= 0 {
		return nil
	}
	factor, ok := activityFactors[p.ActivityLevel]
	if !ok {
		return nil
	}
	if p.Goal != domain.GoalMaintain && (p.TargetWeight <= 0 || p.TargetRate <= 0) {
		return nil
	}

	// Non-weight-dependent term of the BMR formula.
	heightCm := domain.InchesToCentimeters(p.HeightIn)
	var c float64
	switch p.Sex {
	case domain.SexMale:
		c = 6.25*heightCm - 5*float64(age) + 5
	case domain.SexFemale:
		c = 6.25*heightCm - 5*float64(age) - 161
	default:
		return nil
	}

	wKg := domain.ConvertWeight(last.Weight, last.Unit, domain.UnitKg)
	intake := TargetIntake(factor*(10*wKg+c), p.Goal, p.TargetRate, p.Unit)
	if math.IsNaN(intake) {
		return nil
	}

	r := 1 - factor*domain.PoundsToKilograms(10)/kcalPerPound
	if r == 1 {
		return nil
	}
	b := domain.ConvertWeight((intake-factor*c)/kcalPerPound, domain.UnitLb, last.Unit)
	weq := b / (1 - r)

	w0 := last.Weight
	leanMass := LeanMass(last.Weight, last.BodyFatPercent)

	points := make([]Point, 0, cfg.PredictionDays+1)
	for t := 0; t <= cfg.PredictionDays; t++ {
		w := weq + (w0-weq)*math.Pow(r, float64(t))
		bf := projectBodyFat(w, leanMass)
		points = append(points, Point{
			Day:     last.Day.AddDate(0, 0, t),
			Weight:  w,
			BodyFat: &bf,
		})
	}
	return points
}

// projectBodyFat derives body-fat percent for a projected weight assuming
// lean mass stays constant, clamped to the plausible band.
func projectBodyFat(weight, leanMass float64) float64 {
	if weight <= 0 {
		return minProjectedBodyFat
	}
	fatMass := math.Max(0, weight-leanMass)
	bf := fatMass / weight * 100
	return math.Min(maxProjectedBodyFat, math.Max(minProjectedBodyFat, bf))
}

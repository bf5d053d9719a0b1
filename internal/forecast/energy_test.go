package forecast_test

import (
	"testing"
	"time"

	"bodycomp/internal/domain"
	"bodycomp/internal/forecast"
)

var testToday = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func testProfile(goal string) domain.UserProfile {
	return domain.UserProfile{
		UserID:        1,
		Sex:           domain.SexMale,
		DateOfBirth:   time.Date(1990, 1, 15, 0, 0, 0, 0, time.UTC),
		HeightIn:      70,
		ActivityLevel: domain.ActivityLight,
		Goal:          goal,
		TargetWeight:  170,
		TargetRate:    1,
		Unit:          domain.UnitLb,
	}
}

func testRecords(weight, bodyFat float64, unit string) []domain.MeasurementRecord {
	return []domain.MeasurementRecord{
		{UserID: 1, Day: day(0), Weight: weight + 2, BodyFatPercent: bodyFat, Unit: unit},
		{UserID: 1, Day: day(30), Weight: weight, BodyFatPercent: bodyFat, Unit: unit},
	}
}

func TestProjectEnergyBalance_InvalidInputs(t *testing.T) {
	cfg := forecast.DefaultConfig()

	noSex := testProfile(domain.GoalLose)
	noSex.Sex = ""
	noDob := testProfile(domain.GoalLose)
	noDob.DateOfBirth = time.Time{}
	noHeight := testProfile(domain.GoalLose)
	noHeight.HeightIn = 0
	badActivity := testProfile(domain.GoalLose)
	badActivity.ActivityLevel = "heroic"
	noTarget := testProfile(domain.GoalLose)
	noTarget.TargetWeight = 0
	noRate := testProfile(domain.GoalGain)
	noRate.TargetRate = 0

	zeroDays := cfg
	zeroDays.PredictionDays = 0

	tests := []struct {
		name    string
		records []domain.MeasurementRecord
		profile domain.UserProfile
		cfg     forecast.Config
	}{
		{"no records", nil, testProfile(domain.GoalLose), cfg},
		{"zero prediction days", testRecords(200, 25, domain.UnitLb), testProfile(domain.GoalLose), zeroDays},
		{"non-positive weight", testRecords(-10, 25, domain.UnitLb), testProfile(domain.GoalLose), cfg},
		{"body fat out of range", testRecords(200, 120, domain.UnitLb), testProfile(domain.GoalLose), cfg},
		{"missing sex", testRecords(200, 25, domain.UnitLb), noSex, cfg},
		{"missing date of birth", testRecords(200, 25, domain.UnitLb), noDob, cfg},
		{"missing height", testRecords(200, 25, domain.UnitLb), noHeight, cfg},
		{"unknown activity level", testRecords(200, 25, domain.UnitLb), badActivity, cfg},
		{"lose goal without target weight", testRecords(200, 25, domain.UnitLb), noTarget, cfg},
		{"gain goal without target rate", testRecords(200, 25, domain.UnitLb), noRate, cfg},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := forecast.ProjectEnergyBalance(tc.records, tc.profile, tc.cfg, testToday); len(got) != 0 {
				t.Errorf("expected empty projection, got %d points", len(got))
			}
		})
	}
}

func TestProjectEnergyBalance_Shape(t *testing.T) {
	cfg := forecast.DefaultConfig()
	records := testRecords(200, 25, domain.UnitLb)
	points := forecast.ProjectEnergyBalance(records, testProfile(domain.GoalLose), cfg, testToday)
	if len(points) != cfg.PredictionDays+1 {
		t.Fatalf("expected %d points, got %d", cfg.PredictionDays+1, len(points))
	}
	if !points[0].Day.Equal(day(30)) {
		t.Errorf("projection starts at %v; want anchor day %v", points[0].Day, day(30))
	}
	if !almostEqual(points[0].Weight, 200, 1e-9) {
		t.Errorf("anchor weight = %v; want 200", points[0].Weight)
	}
	// A caloric deficit must move weight down over the horizon.
	if last := points[len(points)-1].Weight; last >= 200 {
		t.Errorf("final weight = %v; want < 200", last)
	}
}

func TestProjectEnergyBalance_MaintainIsEquilibrium(t *testing.T) {
	// With a maintain goal intake equals expenditure, so the anchor weight
	// is the fixed point of the recurrence.
	cfg := forecast.DefaultConfig()
	cfg.PredictionDays = 365
	records := testRecords(200, 25, domain.UnitLb)
	points := forecast.ProjectEnergyBalance(records, testProfile(domain.GoalMaintain), cfg, testToday)
	if len(points) != cfg.PredictionDays+1 {
		t.Fatalf("expected %d points, got %d", cfg.PredictionDays+1, len(points))
	}
	for i, p := range points {
		if !almostEqual(p.Weight, 200, 1e-2) {
			t.Fatalf("points[%d].Weight = %v; want ~200", i, p.Weight)
		}
	}
}

func TestProjectEnergyBalance_BodyFatClamped(t *testing.T) {
	cfg := forecast.DefaultConfig()
	cfg.PredictionDays = 1000

	// An extreme deficit drives the projection far below lean mass; the
	// body-fat percent must stay inside [5, 40] anyway.
	profile := testProfile(domain.GoalLose)
	profile.TargetRate = 10
	points := forecast.ProjectEnergyBalance(testRecords(200, 8, domain.UnitLb), profile, cfg, testToday)
	if len(points) == 0 {
		t.Fatal("expected projection")
	}
	for i, p := range points {
		if p.BodyFat == nil {
			t.Fatalf("points[%d].BodyFat is nil", i)
		}
		if *p.BodyFat < 5 || *p.BodyFat > 40 {
			t.Fatalf("points[%d].BodyFat = %v; want within [5, 40]", i, *p.BodyFat)
		}
	}

	// And an extreme surplus clamps at the top.
	profile = testProfile(domain.GoalGain)
	profile.TargetRate = 10
	points = forecast.ProjectEnergyBalance(testRecords(200, 38, domain.UnitLb), profile, cfg, testToday)
	for i, p := range points {
		if *p.BodyFat > 40 {
			t.Fatalf("points[%d].BodyFat = %v; want <= 40", i, *p.BodyFat)
		}
	}
}

func TestProjectEnergyBalance_KgRecords(t *testing.T) {
	// Output stays in the anchor record's unit, and the anchor weight is
	// reproduced at the start without drifting through a lb round-trip.
	cfg := forecast.DefaultConfig()
	profile := testProfile(domain.GoalLose)
	profile.Unit = domain.UnitKg
	profile.TargetWeight = 77
	profile.TargetRate = 0.5
	points := forecast.ProjectEnergyBalance(testRecords(90, 25, domain.UnitKg), profile, cfg, testToday)
	if len(points) == 0 {
		t.Fatal("expected projection")
	}
	if !almostEqual(points[0].Weight, 90, 1e-9) {
		t.Errorf("anchor weight = %v; want 90 kg", points[0].Weight)
	}
	if last := points[len(points)-1].Weight; last >= 90 || last < 60 {
		t.Errorf("final weight = %v kg; want a moderate loss below 90", last)
	}
}

package forecast_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"

	"bodycomp/internal/forecast"
)

func TestProjectSmoothing_InvalidInputs(t *testing.T) {
	history := []forecast.Point{pt(0, 200), pt(1, 198)}

	tests := []struct {
		name        string
		history     []forecast.Point
		alpha, beta float64
	}{
		{"no history", nil, 0.5, 0.3},
		{"single point", []forecast.Point{pt(0, 200)}, 0.5, 0.3},
		{"alpha below range", history, -0.1, 0.3},
		{"alpha above range", history, 1.1, 0.3},
		{"beta below range", history, 0.5, -0.1},
		{"beta above range", history, 0.5, 1.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := forecast.ProjectSmoothing(tc.history, tc.alpha, tc.beta, 150); len(got) != 0 {
				t.Errorf("expected empty projection, got %d points", len(got))
			}
		})
	}
}

func TestProjectSmoothing_DecreasingToTarget(t *testing.T) {
	// Two points falling 2 lb/day: the trend initialises negative and the
	// forecast walks down to the 150 lb target, crossing point included.
	history := []forecast.Point{pt(0, 200), pt(1, 198)}
	points := forecast.ProjectSmoothing(history, 0.5, 0.3, 150)
	if len(points) < 2 {
		t.Fatalf("expected seed plus forecasts, got %d points", len(points))
	}

	if !points[0].Day.Equal(day(1)) || points[0].Weight != 198 {
		t.Errorf("seed point = %v %v; want day 1 at 198", points[0].Day, points[0].Weight)
	}
	for i := 1; i < len(points); i++ {
		if points[i].Weight >= points[i-1].Weight {
			t.Fatalf("weight not strictly decreasing at index %d: %v >= %v",
				i, points[i].Weight, points[i-1].Weight)
		}
	}

	last := points[len(points)-1]
	if last.Weight > 150 {
		t.Errorf("final weight = %v; want <= 150 (crossing included)", last.Weight)
	}
	if prev := points[len(points)-2]; prev.Weight <= 150 {
		t.Errorf("crossing is not the final element; points[-2].Weight = %v", prev.Weight)
	}
}

func TestProjectSmoothing_HorizonCap(t *testing.T) {
	// A rising series never reaches a lower target: the sequence must end
	// at the cap, seed point plus 1825 forecasts, with no error.
	history := []forecast.Point{pt(0, 180), pt(1, 180.5), pt(2, 181)}
	points := forecast.ProjectSmoothing(history, 0.5, 0.3, 150)
	if want := 1 + 1825; len(points) != want {
		t.Fatalf("expected %d points at the cap, got %d", want, len(points))
	}
}

func TestProjectSmoothing_CapHoldsForRandomInputs(t *testing.T) {
	// Whatever the history looks like, the loop terminates and never
	// produces more than the seed plus 1825 steps.
	faker := gofakeit.New(42)
	for iter := 0; iter < 50; iter++ {
		n := faker.IntRange(2, 20)
		history := make([]forecast.Point, 0, n)
		for i := 0; i < n; i++ {
			history = append(history, pt(i, faker.Float64Range(50, 400)))
		}
		alpha := faker.Float64Range(0, 1)
		beta := faker.Float64Range(0, 1)
		target := faker.Float64Range(50, 400)

		points := forecast.ProjectSmoothing(history, alpha, beta, target)
		if len(points) > 1+1825 {
			t.Fatalf("projection exceeded cap: %d points", len(points))
		}
		for _, p := range points {
			if p.Weight < 0 {
				t.Fatalf("projected weight below zero: %v", p.Weight)
			}
		}
	}
}

func TestProjectSmoothing_ZeroDayGap(t *testing.T) {
	// Duplicate timestamps initialise the trend to zero instead of
	// dividing by zero; the smoothing update then picks up the decline.
	history := []forecast.Point{pt(0, 200), pt(0, 199)}
	points := forecast.ProjectSmoothing(history, 0.5, 0.3, 150)
	if len(points) == 0 {
		t.Fatal("expected projection despite duplicate timestamps")
	}
	if last := points[len(points)-1]; last.Weight > 150 {
		t.Errorf("final weight = %v; want <= 150", last.Weight)
	}
}

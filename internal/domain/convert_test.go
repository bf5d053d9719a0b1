package domain_test

import (
	"math"
	"testing"

	"github.com/brianvoe/gofakeit/v6"

	"bodycomp/internal/domain"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestConvertWeight(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from, to string
		want     float64
	}{
		{"kg to lb", 100.0, "kg", "lb", 220.462},
		{"lb to kg", 220.462, "lb", "kg", 100.0},
		{"same unit kg", 80.0, "kg", "kg", 80.0},
		{"same unit lb", 180.0, "lb", "lb", 180.0},
		{"unknown units", 50.0, "st", "kg", 50.0},
		{"zero value", 0, "kg", "lb", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.ConvertWeight(tc.value, tc.from, tc.to)
			if !almostEqual(got, tc.want, 0.01) {
				t.Errorf("ConvertWeight(%v, %q, %q) = %v; want %v",
					tc.value, tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestConvertWeight_RoundTrip(t *testing.T) {
	// The constants are not exact inverses; round-tripping must stay
	// within 1e-3 relative tolerance across representative weights.
	faker := gofakeit.New(7)
	for i := 0; i < 100; i++ {
		x := faker.Float64Range(50, 400)
		got := domain.KilogramsToPounds(domain.PoundsToKilograms(x))
		if math.Abs(got-x)/x > 1e-3 {
			t.Fatalf("round trip of %v drifted to %v", x, got)
		}
	}
}

func TestInchesToCentimeters(t *testing.T) {
	if got := domain.InchesToCentimeters(70); !almostEqual(got, 177.8, 1e-9) {
		t.Errorf("InchesToCentimeters(70) = %v; want 177.8", got)
	}
}

func TestValidUnit(t *testing.T) {
	if !domain.ValidUnit("kg") || !domain.ValidUnit("lb") {
		t.Error("kg and lb must be valid units")
	}
	if domain.ValidUnit("st") || domain.ValidUnit("") {
		t.Error("unknown units must be rejected")
	}
}

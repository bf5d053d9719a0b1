// Package forecast implements the body-composition forecasting engine:
// a linear weight trend, an energy-balance weight/body-fat projection, an
// adaptive-smoothing projection, and milestone detection over projections.
//
// Every function in this package is a pure computation over its inputs,
// returns in bounded time, and is safe for concurrent use. Invalid or
// underdetermined inputs yield empty slices or NaN markers, never panics.
package forecast

import "time"

// Point is a single (day, weight) sample, historical or projected. BodyFat
// is set only by projections that model body-fat percent.
type Point struct {
	Day     time.Time `json:"day"`
	Weight  float64   `json:"weight"`
	BodyFat *float64  `json:"bodyFat,omitempty"`
}

// Milestone marks the first projected crossing of a checkpoint, such as a
// body-fat threshold or the user's target weight.
type Milestone struct {
	Day     time.Time `json:"day"`
	Weight  float64   `json:"weight"`
	BodyFat float64   `json:"bodyFat"`
	Label   string    `json:"label"`
}

// Config carries the tunables for a single forecasting invocation. It is
// passed explicitly into each call; the engine holds no ambient state.
type Config struct {
	Alpha             float64   `json:"alpha"`
	Beta              float64   `json:"beta"`
	PredictionDays    int       `json:"predictionDays"`
	BodyFatThresholds []float64 `json:"bodyFatThresholds"`
}

// DefaultConfig returns the standard forecasting configuration.
func DefaultConfig() Config {
	return Config{
		Alpha:             0.5,
		Beta:              0.3,
		PredictionDays:    90,
		BodyFatThresholds: []float64{40, 35, 30, 25, 20, 15, 10, 5},
	}
}

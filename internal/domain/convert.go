package domain

const (
	lbToKg = 0.453592
	kgToLb = 2.20462
	inToCm = 2.54
)

// PoundsToKilograms converts a mass from pounds to kilograms.
func PoundsToKilograms(x float64) float64 { return x * lbToKg }

// KilogramsToPounds converts a mass from kilograms to pounds.
// Not a bit-exact inverse of PoundsToKilograms, only numerically close.
func KilogramsToPounds(x float64) float64 { return x * kgToLb }

// InchesToCentimeters converts a length from inches to centimeters.
func InchesToCentimeters(x float64) float64 { return x * inToCm }

// ConvertWeight converts a weight value between "kg" and "lb".
// Returns v unchanged if from == to or if the units are unrecognised; no
// redundant round-trip is applied for same-unit values.
func ConvertWeight(v float64, from, to string) float64 {
	if from == to {
		return v
	}
	if from == UnitKg && to == UnitLb {
		return KilogramsToPounds(v)
	}
	if from == UnitLb && to == UnitKg {
		return PoundsToKilograms(v)
	}
	return v
}

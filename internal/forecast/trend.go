package forecast

import (
	"math"
	"time"
)

// TrendSegment fits an ordinary least-squares line through the given
// (day, weight) samples and returns exactly two points on that line, at the
// earliest and latest sampled days. Samples with a non-finite weight are
// ignored. Returns nil when fewer than two valid samples remain or when all
// samples share one timestamp (zero denominator).
func TrendSegment(points []Point) []Point {
	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	days := make([]time.Time, 0, len(points))
	for _, p := range points {
		if math.IsNaN(p.Weight) || math.IsInf(p.Weight, 0) {
			continue
		}
		xs = append(xs, dayNumber(p.Day))
		ys = append(ys, p.Weight)
		days = append(days, p.Day)
	}
	if len(xs) < 2 {
		return nil
	}

	n := float64(len(xs))
	var sumX, sumY, sumXY, sumXX float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}

	// Zero exactly when every sample shares one timestamp; a genuine
	// division-by-zero guard, not a tolerance check.
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return nil
	}

	m := (n*sumXY - sumX*sumY) / denom
	b := (sumY - m*sumX) / n

	minI, maxI := 0, 0
	for i := range xs {
		if xs[i] < xs[minI] {
			minI = i
		}
		if xs[i] > xs[maxI] {
			maxI = i
		}
	}
	return []Point{
		{Day: days[minI], Weight: m*xs[minI] + b},
		{Day: days[maxI], Weight: m*xs[maxI] + b},
	}
}

// dayNumber maps a timestamp onto a day-granular x axis.
func dayNumber(t time.Time) float64 {
	return float64(t.Unix()) / 86400.0
}

package forecast

import (
	"math"
	"time"
)

// Hard cap on the dynamic forecast horizon: five years of daily steps.
const maxForecastDays = 1825

// ProjectSmoothing runs Holt's two-parameter exponential smoothing over the
// chronologically sorted history and extrapolates one day at a time until
// the forecast reaches targetWeight (inclusive) or the horizon cap is hit.
// The returned sequence starts with the last historical point repeated, for
// continuity when drawn against history. Returns nil when fewer than two
// history points are given or alpha/beta fall outside [0,1].
func ProjectSmoothing(history []Point, alpha, beta, targetWeight float64) []Point {
	it := newSmoothingIter(history, alpha, beta, targetWeight)
	if it == nil {
		return nil
	}
	points := make([]Point, 0, 32)
	for {
		p, ok := it.Next()
		if !ok {
			return points
		}
		points = append(points, p)
	}
}

// smoothingIter steps lazily through the forecast so callers can stop early
// without materialising the full horizon.
type smoothingIter struct {
	level  float64
	trend  float64
	target float64

	lastDay    time.Time
	lastWeight float64

	k      int
	seeded bool
	done   bool
}

func newSmoothingIter(history []Point, alpha, beta, target float64) *smoothingIter {
	if len(history) < 2 {
		return nil
	}
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil
	}

	level := history[0].Weight
	var trend float64
	if d := daysBetween(history[0].Day, history[1].Day); d != 0 {
		trend = (history[1].Weight - history[0].Weight) / d
	}
	for i := 1; i < len(history); i++ {
		d := daysBetween(history[i-1].Day, history[i].Day)
		prevLevel := level
		level = alpha*history[i].Weight + (1-alpha)*(level+trend*d)
		trend = beta*(level-prevLevel) + (1-beta)*trend
	}

	anchor := history[len(history)-1]
	return &smoothingIter{
		level:      level,
		trend:      trend,
		target:     target,
		lastDay:    anchor.Day,
		lastWeight: anchor.Weight,
	}
}

// Next returns the next projected point. The first call yields the anchor
// point; later calls yield daily forecasts until the target is crossed
// (that point included) or the cap is exceeded.
func (it *smoothingIter) Next() (Point, bool) {
	if it.done {
		return Point{}, false
	}
	if !it.seeded {
		it.seeded = true
		return Point{Day: it.lastDay, Weight: it.lastWeight}, true
	}

	it.k++
	if it.k > maxForecastDays {
		it.done = true
		return Point{}, false
	}
	w := math.Max(0, it.level+it.trend*float64(it.k))
	if w <= it.target {
		it.done = true
	}
	return Point{Day: it.lastDay.AddDate(0, 0, it.k), Weight: w}, true
}

func daysBetween(a, b time.Time) float64 {
	return b.Sub(a).Hours() / 24
}

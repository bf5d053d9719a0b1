package forecast

import (
	"fmt"
	"sort"

	"bodycomp/internal/domain"
)

// ScanMilestones walks a projection pairwise and records the first crossing
// of each body-fat threshold (lose goals only) and the first crossing of the
// user's target weight in the goal's direction. The target weight is given
// in targetUnit and converted into the projection's unit before comparison.
// Milestones are returned sorted by ascending day. Maintain goals have no
// milestones; body-fat thresholds for gain goals are not defined.
func ScanMilestones(points []Point, goal string, targetWeight float64, targetUnit, projectionUnit string, thresholds []float64) []Milestone {
	if goal == domain.GoalMaintain || len(points) < 2 {
		return nil
	}

	var out []Milestone
	if goal == domain.GoalLose {
		for _, th := range thresholds {
			for i := 1; i < len(points); i++ {
				prev, cur := points[i-1], points[i]
				if prev.BodyFat == nil || cur.BodyFat == nil {
					continue
				}
				if *cur.BodyFat <= th && *prev.BodyFat > th {
					out = append(out, Milestone{
						Day:     cur.Day,
						Weight:  cur.Weight,
						BodyFat: *cur.BodyFat,
						Label:   fmt.Sprintf("%g%% BF", th),
					})
					break
				}
			}
		}
	}

	if targetWeight > 0 {
		target := domain.ConvertWeight(targetWeight, targetUnit, projectionUnit)
		for i := 1; i < len(points); i++ {
			prev, cur := points[i-1], points[i]
			var crossed bool
			switch goal {
			case domain.GoalLose:
				crossed = prev.Weight > target && cur.Weight <= target
			case domain.GoalGain:
				crossed = prev.Weight < target && cur.Weight >= target
			}
			if crossed {
				m := Milestone{Day: cur.Day, Weight: cur.Weight, Label: "Target Weight"}
				if cur.BodyFat != nil {
					m.BodyFat = *cur.BodyFat
				}
				out = append(out, m)
				break
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out
}

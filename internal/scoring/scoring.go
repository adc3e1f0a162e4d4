// Package scoring turns a set of recorded answers into category subtotals,
// a total and a three-level tier.
package scoring

import (
	"github.com/abhisek/checkup/internal/quiz"
)

const (
	// MaxPerCategory is the ceiling of a category subtotal (3 questions x 2 points).
	MaxPerCategory = 6

	// MaxTotal is the ceiling of the total score (12 questions x 2 points).
	MaxTotal = 24

	// HighThreshold and MidThreshold are the inclusive lower bounds of the
	// High and Mid tiers.
	HighThreshold = 18
	MidThreshold  = 12

	// CriticalCategory is the subtotal at or below which a category is
	// considered critically weak and the tier is downgraded by one.
	CriticalCategory = 2
)

// Result is derived from the answers on demand and never stored as the
// source of truth.
type Result struct {
	Total      int
	ByCategory map[quiz.Category]int
	Tier       Tier

	// BaseTier is the tier before the weak-category downgrade.
	BaseTier   Tier
	Downgraded bool
}

// Score computes subtotals, total and tier. Questions without an answer are
// skipped. Recorded values are clamped to 0..2, subtotals to 0..6 and the
// total to 0..24.
func Score(answers quiz.Answers, questions []quiz.Question) Result {
	byCat := make(map[quiz.Category]int, 4)
	for _, c := range quiz.AllCategories() {
		byCat[c] = 0
	}

	total := 0
	for _, q := range questions {
		points, ok := answers[q.ID]
		if !ok {
			continue
		}
		p := clamp(points, quiz.PointsCritical, quiz.PointsStrategic)
		total += p
		if _, known := byCat[q.Category]; known {
			byCat[q.Category] += p
		}
	}

	for c, v := range byCat {
		byCat[c] = clamp(v, 0, MaxPerCategory)
	}
	total = clamp(total, 0, MaxTotal)

	base := classify(total)
	tier := base
	critical := false
	for _, v := range byCat {
		if v <= CriticalCategory {
			critical = true
			break
		}
	}
	if critical {
		tier = base.downgrade()
	}

	return Result{
		Total:      total,
		ByCategory: byCat,
		Tier:       tier,
		BaseTier:   base,
		Downgraded: tier != base,
	}
}

// classify maps a total to its base tier.
func classify(total int) Tier {
	switch {
	case total >= HighThreshold:
		return TierHigh
	case total >= MidThreshold:
		return TierMid
	default:
		return TierLow
	}
}

// WeakestCategories returns the categories sharing the lowest subtotal, in
// display order.
func (r Result) WeakestCategories() []quiz.Category {
	lowest := MaxPerCategory + 1
	for _, c := range quiz.AllCategories() {
		if v := r.ByCategory[c]; v < lowest {
			lowest = v
		}
	}
	var out []quiz.Category
	for _, c := range quiz.AllCategories() {
		if r.ByCategory[c] == lowest {
			out = append(out, c)
		}
	}
	return out
}

// CriticalCategories returns the categories that trigger the downgrade.
func (r Result) CriticalCategories() []quiz.Category {
	var out []quiz.Category
	for _, c := range quiz.AllCategories() {
		if r.ByCategory[c] <= CriticalCategory {
			out = append(out, c)
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

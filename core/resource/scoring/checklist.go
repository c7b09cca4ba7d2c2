package scoring

import "math"

// ChecklistItem is one symptom or statement of a weighted checklist.
type ChecklistItem struct {
	ID       string
	Category string
	Severity int
	Checked  bool
}

// ChecklistScore returns round(sum(checked severities) / (checked × maxSeverity) × 100).
// An empty selection scores 0.
func ChecklistScore(items []ChecklistItem, maxSeverity int) int {
	var sum, n int
	for _, it := range items {
		if !it.Checked {
			continue
		}
		sum += it.Severity
		n++
	}
	return weighted(sum, n, maxSeverity)
}

// CategoryScore is the checklist score restricted to one category.
type CategoryScore struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
	Checked  int    `json:"checked"`
	Total    int    `json:"total"`
}

// CategoryScores scores every category independently, in order of first appearance.
func CategoryScores(items []ChecklistItem, maxSeverity int) []CategoryScore {
	order := make([]string, 0)
	sums := make(map[string]int)
	checked := make(map[string]int)
	totals := make(map[string]int)
	for _, it := range items {
		if _, ok := totals[it.Category]; !ok {
			order = append(order, it.Category)
		}
		totals[it.Category]++
		if it.Checked {
			sums[it.Category] += it.Severity
			checked[it.Category]++
		}
	}

	scores := make([]CategoryScore, 0, len(order))
	for _, c := range order {
		scores = append(scores, CategoryScore{
			Category: c,
			Score:    weighted(sums[c], checked[c], maxSeverity),
			Checked:  checked[c],
			Total:    totals[c],
		})
	}
	return scores
}

// CheckedCount returns how many items are checked.
func CheckedCount(items []ChecklistItem) int {
	var n int
	for _, it := range items {
		if it.Checked {
			n++
		}
	}
	return n
}

func weighted(sum, n, maxSeverity int) int {
	if n == 0 || maxSeverity <= 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n*maxSeverity) * 100))
}

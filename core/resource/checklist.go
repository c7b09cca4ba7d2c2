package resource

import (
	"github.com/accredipro/institute/core/resource/scoring"
)

type (
	// Symptom is one checkable entry of a checklist widget.
	Symptom struct {
		ID       string `json:"id"`
		Label    string `json:"label"`
		Category string `json:"category"`
		Severity int    `json:"severity"`
	}

	SymptomCategory struct {
		ID    string `json:"id"`
		Label string `json:"label"`
	}

	// Checklist is the fixed catalogue behind a checklist widget.
	Checklist struct {
		Categories  []SymptomCategory `json:"categories"`
		Symptoms    []Symptom         `json:"symptoms"`
		MaxSeverity int               `json:"maxSeverity"`
	}
)

// optioner is implemented by widgets that expose a fixed option catalogue to clients.
type optioner interface {
	Options() interface{}
}

func (c Checklist) items(checked []string) []scoring.ChecklistItem {
	set := make(map[string]bool, len(checked))
	for _, id := range checked {
		set[id] = true
	}
	items := make([]scoring.ChecklistItem, 0, len(c.Symptoms))
	for _, s := range c.Symptoms {
		items = append(items, scoring.ChecklistItem{
			ID:       s.ID,
			Category: s.Category,
			Severity: s.Severity,
			Checked:  set[s.ID],
		})
	}
	return items
}

func (c Checklist) label(categoryID string) string {
	for _, cat := range c.Categories {
		if cat.ID == categoryID {
			return cat.Label
		}
	}
	return categoryID
}

// checkedSymptoms returns the known checked symptoms, in catalogue order.
func (c Checklist) checkedSymptoms(checked []string) []Symptom {
	set := make(map[string]bool, len(checked))
	for _, id := range checked {
		set[id] = true
	}
	out := make([]Symptom, 0, len(checked))
	for _, s := range c.Symptoms {
		if set[s.ID] {
			out = append(out, s)
		}
	}
	return out
}

func (c Checklist) categoryRows(scores []scoring.CategoryScore) []ReportRow {
	rows := make([]ReportRow, 0, len(scores))
	for _, cs := range scores {
		rows = append(rows, row(c.label(cs.Category), itoa(cs.Score)+" ("+itoa(cs.Checked)+"/"+itoa(cs.Total)+")"))
	}
	return rows
}

// band maps a 0-100 score to low | moderate | high.
func band(score int) string {
	switch {
	case score < 34:
		return "low"
	case score < 67:
		return "moderate"
	default:
		return "high"
	}
}

package resource

import (
	"sort"

	"github.com/accredipro/institute/core/resource/scoring"
)

var hormoneChecklist = Checklist{
	MaxSeverity: 3,
	Categories: []SymptomCategory{
		{ID: "thyroid", Label: "Thyroid"},
		{ID: "adrenal", Label: "Adrenal / Cortisol"},
		{ID: "estrogen", Label: "Estrogen Dominance"},
		{ID: "progesterone", Label: "Low Progesterone"},
		{ID: "testosterone", Label: "Testosterone / Androgens"},
		{ID: "insulin", Label: "Insulin / Blood Sugar"},
	},
	Symptoms: []Symptom{
		{ID: "cold-intolerance", Label: "Always cold, cold hands and feet", Category: "thyroid", Severity: 2},
		{ID: "hair-thinning", Label: "Thinning hair or outer eyebrows", Category: "thyroid", Severity: 2},
		{ID: "weight-gain", Label: "Weight gain despite no change in diet", Category: "thyroid", Severity: 3},
		{ID: "sluggish", Label: "Sluggish, slow to get going", Category: "thyroid", Severity: 1},
		{ID: "wired-tired", Label: "Tired but wired at night", Category: "adrenal", Severity: 2},
		{ID: "afternoon-crash", Label: "Afternoon energy crash", Category: "adrenal", Severity: 1},
		{ID: "salt-cravings", Label: "Salt cravings", Category: "adrenal", Severity: 1},
		{ID: "overwhelm", Label: "Easily overwhelmed by stress", Category: "adrenal", Severity: 3},
		{ID: "heavy-periods", Label: "Heavy or painful periods", Category: "estrogen", Severity: 3},
		{ID: "breast-tenderness", Label: "Breast tenderness", Category: "estrogen", Severity: 2},
		{ID: "water-retention", Label: "Bloating and water retention", Category: "estrogen", Severity: 1},
		{ID: "pms-mood", Label: "PMS irritability or mood swings", Category: "progesterone", Severity: 2},
		{ID: "cycle-insomnia", Label: "Poor sleep before your period", Category: "progesterone", Severity: 2},
		{ID: "spotting", Label: "Spotting before your period", Category: "progesterone", Severity: 3},
		{ID: "low-libido", Label: "Low libido", Category: "testosterone", Severity: 2},
		{ID: "muscle-loss", Label: "Loss of muscle tone", Category: "testosterone", Severity: 2},
		{ID: "chin-hair", Label: "Chin or facial hair growth", Category: "testosterone", Severity: 3},
		{ID: "belly-fat", Label: "Weight gain around the middle", Category: "insulin", Severity: 2},
		{ID: "shaky-hungry", Label: "Shaky or irritable when hungry", Category: "insulin", Severity: 2},
		{ID: "post-meal-sleepy", Label: "Sleepy after meals", Category: "insulin", Severity: 1},
		{ID: "skin-tags", Label: "Skin tags or darkened skin patches", Category: "insulin", Severity: 3},
	},
}

// Hormone is the hormone symptom checker.
type Hormone struct {
	ClientName string   `json:"clientName" validate:"max=120"`
	Age        *int     `json:"age" validate:"omitempty,min=10,max=110"`
	CycleStage string   `json:"cycleStage" validate:"omitempty,oneof=cycling perimenopause menopause not-applicable"`
	Checked    []string `json:"checked"`
	Notes      string   `json:"notes"`
}

func defaultHormone() *Hormone {
	return &Hormone{Checked: []string{}}
}

func (w *Hormone) Kind() Kind { return KindHormone }

func (w *Hormone) Options() interface{} { return hormoneChecklist }

type HormoneEvaluation struct {
	ChecklistEvaluation
	Imbalances []string `json:"imbalances"`
}

const (
	maxHormoneAdvice   = 6
	imbalanceThreshold = 50
)

var hormoneAdvice = map[string]string{
	"thyroid":      "Thyroid pattern: ask for a full thyroid panel (TSH, free T4, free T3, antibodies), not TSH alone.",
	"adrenal":      "Cortisol pattern: protect your sleep window and add daily nervous system down-regulation.",
	"estrogen":     "Estrogen dominance pattern: support liver clearance with cruciferous vegetables and fibre.",
	"progesterone": "Low progesterone pattern: track your cycle and discuss day-21 progesterone testing.",
	"testosterone": "Androgen pattern: include strength training and review fasting insulin with a practitioner.",
	"insulin":      "Blood sugar pattern: build each meal around protein, fibre and healthy fat.",
}

func (w *Hormone) Evaluate() Evaluation {
	items := hormoneChecklist.items(w.Checked)
	ev := &HormoneEvaluation{
		ChecklistEvaluation: ChecklistEvaluation{
			ClientName:   w.ClientName,
			Score:        scoring.ChecklistScore(items, hormoneChecklist.MaxSeverity),
			CheckedCount: scoring.CheckedCount(items),
			Categories:   scoring.CategoryScores(items, hormoneChecklist.MaxSeverity),
			kind:         KindHormone,
			checklist:    hormoneChecklist,
			checked:      hormoneChecklist.checkedSymptoms(w.Checked),
		},
		Imbalances: []string{},
	}
	ev.Level = band(ev.Score)

	ranked := make([]scoring.CategoryScore, 0, len(ev.Categories))
	for _, cs := range ev.Categories {
		if cs.Checked > 0 && cs.Score >= imbalanceThreshold {
			ranked = append(ranked, cs)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Checked > ranked[j].Checked
	})
	for _, cs := range ranked {
		ev.Imbalances = append(ev.Imbalances, cs.Category)
	}

	var advice scoring.Advice
	advice.Add(ev.CheckedCount == 0, "No symptoms selected: re-check in 3 months or when your cycle changes.")
	for _, c := range ev.Imbalances {
		advice.Add(true, hormoneAdvice[c])
	}
	advice.Add(w.CycleStage == "perimenopause", "Perimenopause shifts hormones month to month: track symptoms alongside your cycle.")
	advice.Add(ev.CheckedCount > 0, "Bring this report to your practitioner to decide which labs to run first.")
	ev.Recommendations = advice.Top(maxHormoneAdvice)
	return ev
}

func (ev *HormoneEvaluation) Report() Report {
	r := ev.ChecklistEvaluation.Report()
	if len(ev.Imbalances) > 0 {
		sec := ReportSection{Heading: "Top Imbalance Patterns"}
		for i, c := range ev.Imbalances {
			sec.Rows = append(sec.Rows, row(itoa(i+1)+". "+ev.checklist.label(c), "", string(scoring.StatusConcern)))
		}
		r.Sections = append([]ReportSection{sec}, r.Sections...)
	}
	return r
}

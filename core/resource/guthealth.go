package resource

import (
	"github.com/accredipro/institute/core/resource/scoring"
)

var gutChecklist = Checklist{
	MaxSeverity: 3,
	Categories: []SymptomCategory{
		{ID: "digestive", Label: "Digestive"},
		{ID: "food-reactions", Label: "Food Reactions"},
		{ID: "systemic", Label: "Systemic"},
		{ID: "skin-mood", Label: "Skin & Mood"},
	},
	Symptoms: []Symptom{
		{ID: "bloating", Label: "Bloating after meals", Category: "digestive", Severity: 2},
		{ID: "gas", Label: "Excessive gas", Category: "digestive", Severity: 1},
		{ID: "constipation", Label: "Constipation (fewer than 1 bowel movement a day)", Category: "digestive", Severity: 2},
		{ID: "diarrhea", Label: "Loose stools or diarrhea", Category: "digestive", Severity: 2},
		{ID: "reflux", Label: "Heartburn or acid reflux", Category: "digestive", Severity: 2},
		{ID: "abdominal-pain", Label: "Abdominal pain or cramping", Category: "digestive", Severity: 3},
		{ID: "undigested-food", Label: "Undigested food in stool", Category: "digestive", Severity: 2},
		{ID: "dairy", Label: "Reactions to dairy", Category: "food-reactions", Severity: 2},
		{ID: "gluten", Label: "Reactions to gluten", Category: "food-reactions", Severity: 2},
		{ID: "high-fodmap", Label: "Reactions to onions, garlic or beans", Category: "food-reactions", Severity: 2},
		{ID: "histamine", Label: "Flushing after wine, aged cheese or leftovers", Category: "food-reactions", Severity: 3},
		{ID: "sugar-cravings", Label: "Strong sugar or carb cravings", Category: "food-reactions", Severity: 1},
		{ID: "fatigue", Label: "Persistent fatigue", Category: "systemic", Severity: 2},
		{ID: "brain-fog", Label: "Brain fog or poor concentration", Category: "systemic", Severity: 2},
		{ID: "joint-pain", Label: "Joint pain or stiffness", Category: "systemic", Severity: 2},
		{ID: "frequent-illness", Label: "Frequent colds or infections", Category: "systemic", Severity: 3},
		{ID: "antibiotics", Label: "Antibiotic use in the last 2 years", Category: "systemic", Severity: 3},
		{ID: "acne", Label: "Acne or breakouts", Category: "skin-mood", Severity: 1},
		{ID: "eczema", Label: "Eczema, rosacea or rashes", Category: "skin-mood", Severity: 2},
		{ID: "anxiety", Label: "Anxiety or low mood", Category: "skin-mood", Severity: 2},
		{ID: "poor-sleep", Label: "Poor or unrefreshing sleep", Category: "skin-mood", Severity: 1},
	},
}

// GutHealth is the gut health symptom tracker.
type GutHealth struct {
	ClientName     string   `json:"clientName" validate:"max=120"`
	Checked        []string `json:"checked"`
	BowelFrequency string   `json:"bowelFrequency"`
	StoolType      *int     `json:"stoolType" validate:"omitempty,min=1,max=7"` // Bristol scale
	Notes          string   `json:"notes"`
}

func defaultGutHealth() *GutHealth {
	return &GutHealth{Checked: []string{}}
}

func (w *GutHealth) Kind() Kind { return KindGutHealth }

func (w *GutHealth) Options() interface{} { return gutChecklist }

type ChecklistEvaluation struct {
	ClientName      string                  `json:"clientName"`
	Score           int                     `json:"score"`
	Level           string                  `json:"level"`
	CheckedCount    int                     `json:"checkedCount"`
	Categories      []scoring.CategoryScore `json:"categories"`
	Recommendations []string                `json:"recommendations"`
	kind            Kind
	checklist       Checklist
	checked         []Symptom
	extra           []ReportRow
}

const maxGutAdvice = 5

func (w *GutHealth) Evaluate() Evaluation {
	items := gutChecklist.items(w.Checked)
	ev := &ChecklistEvaluation{
		ClientName:   w.ClientName,
		Score:        scoring.ChecklistScore(items, gutChecklist.MaxSeverity),
		CheckedCount: scoring.CheckedCount(items),
		Categories:   scoring.CategoryScores(items, gutChecklist.MaxSeverity),
		kind:         KindGutHealth,
		checklist:    gutChecklist,
		checked:      gutChecklist.checkedSymptoms(w.Checked),
	}
	ev.Level = band(ev.Score)
	if w.StoolType != nil {
		ev.extra = append(ev.extra, row("Bristol stool type", itoa(*w.StoolType), stoolStatus(*w.StoolType)))
	}
	if w.BowelFrequency != "" {
		ev.extra = append(ev.extra, row("Bowel frequency", w.BowelFrequency))
	}

	cat := categoryIndex(ev.Categories)
	checked := make(map[string]bool, len(w.Checked))
	for _, id := range w.Checked {
		checked[id] = true
	}

	var advice scoring.Advice
	advice.Add(ev.CheckedCount == 0, "No symptoms selected: keep supporting your gut with fibre, fermented foods and hydration.")
	advice.Add(ev.Level == "high", "Your symptom pattern suggests significant gut imbalance: consider a GI-MAP or comprehensive stool test.")
	advice.Add(checked["antibiotics"], "Recent antibiotic use: rebuild the microbiome with diverse plant fibres and a quality probiotic.")
	advice.Add(cat["food-reactions"] >= 50, "Multiple food reactions: try a 4-week elimination of the suspected foods, then reintroduce one at a time.")
	advice.Add(checked["histamine"], "Histamine-type reactions: favour fresh over aged or leftover foods while the gut heals.")
	advice.Add(cat["digestive"] >= 50, "Support digestion: eat slowly, chew thoroughly and avoid large meals late in the evening.")
	advice.Add(checked["constipation"] || (w.StoolType != nil && *w.StoolType <= 2), "For constipation: increase water, soluble fibre and magnesium-rich foods.")
	advice.Add(cat["skin-mood"] >= 50, "Skin and mood symptoms often track gut health: prioritise sleep and an anti-inflammatory diet.")
	advice.Add(cat["systemic"] >= 50, "Systemic symptoms are present: work with a practitioner on a phased gut-repair protocol.")
	ev.Recommendations = advice.Top(maxGutAdvice)
	return ev
}

func stoolStatus(t int) string {
	switch {
	case t == 3 || t == 4:
		return string(scoring.StatusOptimal)
	case t == 2 || t == 5:
		return string(scoring.StatusSuboptimal)
	default:
		return string(scoring.StatusConcern)
	}
}

func categoryIndex(scores []scoring.CategoryScore) map[string]int {
	m := make(map[string]int, len(scores))
	for _, cs := range scores {
		m[cs.Category] = cs.Score
	}
	return m
}

func (ev *ChecklistEvaluation) Report() Report {
	r := Report{
		Title:           ev.kind.Title(),
		ClientName:      ev.ClientName,
		Score:           intPtr(ev.Score),
		ScoreLabel:      "Score",
		Band:            ev.Level,
		Recommendations: ev.Recommendations,
		Sections: []ReportSection{
			{Heading: "Category Scores", Rows: ev.checklist.categoryRows(ev.Categories)},
		},
	}
	if len(ev.checked) > 0 {
		sec := ReportSection{Heading: "Reported Symptoms"}
		for _, s := range ev.checked {
			sec.Rows = append(sec.Rows, row(s.Label, ev.checklist.label(s.Category)))
		}
		r.Sections = append(r.Sections, sec)
	}
	if len(ev.extra) > 0 {
		r.Sections = append(r.Sections, ReportSection{Heading: "Additional Details", Rows: ev.extra})
	}
	return r
}

package resource

import (
	"github.com/accredipro/institute/core/resource/scoring"
)

// stressMaxAnswer is the highest answer on the 0-4 frequency scale.
const stressMaxAnswer = 4

var stressQuestions = Checklist{
	MaxSeverity: stressMaxAnswer,
	Categories: []SymptomCategory{
		{ID: "physical", Label: "Physical"},
		{ID: "emotional", Label: "Emotional"},
		{ID: "cognitive", Label: "Cognitive"},
		{ID: "behavioral", Label: "Behavioral"},
	},
	Symptoms: []Symptom{
		{ID: "tension", Label: "Muscle tension, headaches or jaw clenching", Category: "physical"},
		{ID: "sleep", Label: "Trouble falling or staying asleep", Category: "physical"},
		{ID: "digestion", Label: "Digestive upset when stressed", Category: "physical"},
		{ID: "heart", Label: "Racing heart or shallow breathing", Category: "physical"},
		{ID: "irritable", Label: "Irritability or a short temper", Category: "emotional"},
		{ID: "overwhelmed", Label: "Feeling overwhelmed", Category: "emotional"},
		{ID: "anxious", Label: "Anxious or on edge", Category: "emotional"},
		{ID: "flat", Label: "Feeling flat or unmotivated", Category: "emotional"},
		{ID: "focus", Label: "Difficulty concentrating", Category: "cognitive"},
		{ID: "racing-thoughts", Label: "Racing or repetitive thoughts", Category: "cognitive"},
		{ID: "forgetful", Label: "Forgetfulness", Category: "cognitive"},
		{ID: "indecisive", Label: "Difficulty making decisions", Category: "cognitive"},
		{ID: "appetite", Label: "Over- or under-eating when stressed", Category: "behavioral"},
		{ID: "caffeine", Label: "Relying on caffeine or alcohol", Category: "behavioral"},
		{ID: "withdrawal", Label: "Withdrawing from friends or activities", Category: "behavioral"},
		{ID: "no-downtime", Label: "No time for rest or hobbies", Category: "behavioral"},
	},
}

// Stress is the stress assessment quiz. Answers are 0 (never) to 4 (always), absent when unanswered.
type Stress struct {
	ClientName string         `json:"clientName" validate:"max=120"`
	Answers    map[string]int `json:"answers" validate:"dive,min=0,max=4"`
}

func defaultStress() *Stress {
	return &Stress{Answers: map[string]int{}}
}

func (w *Stress) Kind() Kind { return KindStress }

func (w *Stress) Options() interface{} { return stressQuestions }

func (w *Stress) items() []scoring.ChecklistItem {
	items := make([]scoring.ChecklistItem, 0, len(stressQuestions.Symptoms))
	for _, q := range stressQuestions.Symptoms {
		a, answered := w.Answers[q.ID]
		items = append(items, scoring.ChecklistItem{ID: q.ID, Category: q.Category, Severity: a, Checked: answered})
	}
	return items
}

type StressEvaluation struct {
	ClientName      string                  `json:"clientName"`
	Score           int                     `json:"score"`
	Level           string                  `json:"level"`
	Answered        int                     `json:"answered"`
	Total           int                     `json:"total"`
	Categories      []scoring.CategoryScore `json:"categories"`
	Recommendations []string                `json:"recommendations"`
}

const maxStressAdvice = 5

// stressLevel maps a 0-100 score to low | moderate | high | severe.
func stressLevel(score int) string {
	switch {
	case score < 25:
		return "low"
	case score < 50:
		return "moderate"
	case score < 75:
		return "high"
	default:
		return "severe"
	}
}

func (w *Stress) Evaluate() Evaluation {
	items := w.items()
	ev := &StressEvaluation{
		ClientName: w.ClientName,
		Score:      scoring.ChecklistScore(items, stressMaxAnswer),
		Answered:   scoring.CheckedCount(items),
		Total:      len(items),
		Categories: scoring.CategoryScores(items, stressMaxAnswer),
	}
	ev.Level = stressLevel(ev.Score)
	cat := categoryIndex(ev.Categories)

	var advice scoring.Advice
	advice.Add(ev.Answered < ev.Total, "Answer every question for the most accurate result.")
	advice.Add(ev.Level == "severe", "Your stress load is severe: please speak with a healthcare provider or counsellor.")
	advice.Add(cat["physical"] >= 50, "Physical stress signs: try 5 minutes of slow breathing (4 in, 6 out) twice a day.")
	advice.Add(w.Answers["sleep"] >= 3, "Sleep is affected: keep a consistent bedtime and no screens for the last hour.")
	advice.Add(cat["emotional"] >= 50, "Emotional load is high: schedule one restorative activity every day.")
	advice.Add(cat["cognitive"] >= 50, "Cognitive overload: write tomorrow's top 3 priorities before bed.")
	advice.Add(w.Answers["caffeine"] >= 3, "Reduce caffeine after noon and alcohol during the week.")
	advice.Add(cat["behavioral"] >= 50, "Protect time for connection and hobbies: they buffer stress.")
	advice.Add(ev.Level == "low" && ev.Answered > 0, "Your stress is well managed: keep your current habits.")
	ev.Recommendations = advice.Top(maxStressAdvice)
	return ev
}

func (ev *StressEvaluation) Report() Report {
	rows := stressQuestions.categoryRows(ev.Categories)
	return Report{
		Title:      KindStress.Title(),
		ClientName: ev.ClientName,
		Score:      intPtr(ev.Score),
		ScoreLabel: "Stress score",
		Band:       ev.Level,
		Sections: []ReportSection{
			{Heading: "Category Scores", Rows: rows},
			{Heading: "Completion", Rows: []ReportRow{row("Questions answered", itoa(ev.Answered)+" of "+itoa(ev.Total))}},
		},
		Recommendations: ev.Recommendations,
	}
}

package resource

import (
	"strings"

	"github.com/accredipro/institute/core/resource/scoring"
)

// ClientIntake is the new-client intake form.
type ClientIntake struct {
	ClientName        string   `json:"clientName" validate:"max=120"`
	Email             string   `json:"email" validate:"omitempty,email"`
	Phone             string   `json:"phone" validate:"max=40"`
	DateOfBirth       string   `json:"dateOfBirth"`
	Occupation        string   `json:"occupation"`
	PrimaryConcerns   string   `json:"primaryConcerns"`
	HealthGoals       string   `json:"healthGoals"`
	Symptoms          []string `json:"symptoms"`
	Medications       string   `json:"medications"`
	Supplements       string   `json:"supplements"`
	Allergies         string   `json:"allergies"`
	MedicalHistory    string   `json:"medicalHistory"`
	DietType          string   `json:"dietType"`
	SleepHours        *float64 `json:"sleepHours" validate:"omitempty,min=0,max=24"`
	StressLevel       *int     `json:"stressLevel" validate:"omitempty,min=1,max=10"`
	ExerciseFrequency string   `json:"exerciseFrequency"`
	Consent           bool     `json:"consent"`
}

func defaultClientIntake() *ClientIntake {
	return &ClientIntake{Symptoms: []string{}}
}

func (w *ClientIntake) Kind() Kind { return KindClientIntake }

// IntakeEvaluation reports how complete the intake is and what needs a practitioner's attention.
type IntakeEvaluation struct {
	ClientName    string   `json:"clientName"`
	Completion    int      `json:"completion"`
	Missing       []string `json:"missing"`
	Flags         []string `json:"flags"`
	ReadyToSubmit bool     `json:"readyToSubmit"`
	fields        []ReportRow
}

type intakeField struct {
	name     string
	label    string
	required bool
	filled   func(*ClientIntake) bool
	value    func(*ClientIntake) string
}

func text(s string) bool { return strings.TrimSpace(s) != "" }

var intakeFields = []intakeField{
	{"clientName", "Client name", true, func(w *ClientIntake) bool { return text(w.ClientName) }, func(w *ClientIntake) string { return w.ClientName }},
	{"email", "Email", true, func(w *ClientIntake) bool { return text(w.Email) }, func(w *ClientIntake) string { return w.Email }},
	{"phone", "Phone", false, func(w *ClientIntake) bool { return text(w.Phone) }, func(w *ClientIntake) string { return w.Phone }},
	{"dateOfBirth", "Date of birth", true, func(w *ClientIntake) bool { return text(w.DateOfBirth) }, func(w *ClientIntake) string { return w.DateOfBirth }},
	{"occupation", "Occupation", false, func(w *ClientIntake) bool { return text(w.Occupation) }, func(w *ClientIntake) string { return w.Occupation }},
	{"primaryConcerns", "Primary concerns", true, func(w *ClientIntake) bool { return text(w.PrimaryConcerns) }, func(w *ClientIntake) string { return w.PrimaryConcerns }},
	{"healthGoals", "Health goals", true, func(w *ClientIntake) bool { return text(w.HealthGoals) }, func(w *ClientIntake) string { return w.HealthGoals }},
	{"symptoms", "Symptoms", false, func(w *ClientIntake) bool { return len(w.Symptoms) > 0 }, func(w *ClientIntake) string { return strings.Join(w.Symptoms, ", ") }},
	{"medications", "Medications", false, func(w *ClientIntake) bool { return text(w.Medications) }, func(w *ClientIntake) string { return w.Medications }},
	{"supplements", "Supplements", false, func(w *ClientIntake) bool { return text(w.Supplements) }, func(w *ClientIntake) string { return w.Supplements }},
	{"allergies", "Allergies", false, func(w *ClientIntake) bool { return text(w.Allergies) }, func(w *ClientIntake) string { return w.Allergies }},
	{"medicalHistory", "Medical history", false, func(w *ClientIntake) bool { return text(w.MedicalHistory) }, func(w *ClientIntake) string { return w.MedicalHistory }},
	{"dietType", "Diet", false, func(w *ClientIntake) bool { return text(w.DietType) }, func(w *ClientIntake) string { return w.DietType }},
	{"sleepHours", "Sleep (hours/night)", false, func(w *ClientIntake) bool { return w.SleepHours != nil }, func(w *ClientIntake) string {
		if w.SleepHours == nil {
			return ""
		}
		return ftoa(*w.SleepHours, 1)
	}},
	{"stressLevel", "Stress level (1-10)", false, func(w *ClientIntake) bool { return w.StressLevel != nil }, func(w *ClientIntake) string {
		if w.StressLevel == nil {
			return ""
		}
		return itoa(*w.StressLevel)
	}},
	{"exerciseFrequency", "Exercise", false, func(w *ClientIntake) bool { return text(w.ExerciseFrequency) }, func(w *ClientIntake) string { return w.ExerciseFrequency }},
	{"consent", "Consent", true, func(w *ClientIntake) bool { return w.Consent }, func(w *ClientIntake) string {
		if w.Consent {
			return "Given"
		}
		return "Not given"
	}},
}

func (w *ClientIntake) Evaluate() Evaluation {
	ev := &IntakeEvaluation{ClientName: w.ClientName, Missing: []string{}}

	var required, filled int
	for _, f := range intakeFields {
		ok := f.filled(w)
		if ok {
			ev.fields = append(ev.fields, row(f.label, f.value(w)))
		}
		if !f.required {
			continue
		}
		required++
		if ok {
			filled++
		} else {
			ev.Missing = append(ev.Missing, f.name)
		}
	}
	ev.Completion = scoring.Percent(filled, required)
	ev.ReadyToSubmit = len(ev.Missing) == 0

	var flags scoring.Advice
	flags.Add(text(w.Medications), "Medications listed: review interactions before recommending supplements.")
	flags.Add(text(w.Allergies), "Allergies listed: confirm every protocol item is free of the listed allergens.")
	flags.Add(w.StressLevel != nil && *w.StressLevel >= 8, "High self-reported stress: prioritise nervous system support.")
	flags.Add(w.SleepHours != nil && *w.SleepHours < 6, "Under 6 hours of sleep: address sleep hygiene early.")
	flags.Add(!w.Consent, "Consent has not been recorded.")
	ev.Flags = flags.Top(-1)
	return ev
}

func (ev *IntakeEvaluation) Report() Report {
	r := Report{
		Title:           KindClientIntake.Title(),
		ClientName:      ev.ClientName,
		Score:           intPtr(ev.Completion),
		ScoreLabel:      "Completion",
		Sections:        []ReportSection{{Heading: "Client Details", Rows: ev.fields}},
		Recommendations: ev.Flags,
	}
	if len(ev.Missing) > 0 {
		rows := make([]ReportRow, 0, len(ev.Missing))
		for _, m := range ev.Missing {
			rows = append(rows, row(m, "missing", string(scoring.StatusConcern)))
		}
		r.Sections = append(r.Sections, ReportSection{Heading: "Missing Information", Rows: rows})
	}
	return r
}

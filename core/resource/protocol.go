package resource

import (
	"fmt"
	"strings"

	"github.com/accredipro/institute/core/resource/scoring"
)

// ProtocolCategory groups protocol items.
type ProtocolCategory string

const (
	CategorySupplement ProtocolCategory = "supplement"
	CategoryDiet       ProtocolCategory = "diet"
	CategoryLifestyle  ProtocolCategory = "lifestyle"
)

var (
	protocolCategories     = []ProtocolCategory{CategorySupplement, CategoryDiet, CategoryLifestyle}
	protocolCategoryLabels = map[ProtocolCategory]string{
		CategorySupplement: "Supplement",
		CategoryDiet:       "Diet",
		CategoryLifestyle:  "Lifestyle",
	}
)

type (
	ProtocolItem struct {
		Category ProtocolCategory `json:"category" validate:"oneof=supplement diet lifestyle"`
		Name     string           `json:"name" validate:"max=200"`
		Dosage   string           `json:"dosage"`
		Timing   string           `json:"timing"`
		Notes    string           `json:"notes"`
	}

	ProtocolPhase struct {
		Name  string         `json:"name" validate:"max=120"`
		Weeks int            `json:"weeks" validate:"min=0,max=104"`
		Items []ProtocolItem `json:"items" validate:"dive"`
	}

	// ProtocolBuilder lays out a phased client protocol.
	ProtocolBuilder struct {
		ClientName    string          `json:"clientName" validate:"max=120"`
		Goal          string          `json:"goal"`
		StartDate     string          `json:"startDate"`
		DurationWeeks int             `json:"durationWeeks" validate:"min=1,max=104"`
		Phases        []ProtocolPhase `json:"phases" validate:"dive"`
		Notes         string          `json:"notes"`
	}
)

func defaultProtocolBuilder() *ProtocolBuilder {
	return &ProtocolBuilder{
		DurationWeeks: 12,
		Phases: []ProtocolPhase{
			{Name: "Foundation", Weeks: 4, Items: []ProtocolItem{}},
			{Name: "Repair", Weeks: 4, Items: []ProtocolItem{}},
			{Name: "Sustain", Weeks: 4, Items: []ProtocolItem{}},
		},
	}
}

func (w *ProtocolBuilder) Kind() Kind { return KindProtocolBuilder }

type ProtocolEvaluation struct {
	ClientName      string                   `json:"clientName"`
	Goal            string                   `json:"goal"`
	TotalItems      int                      `json:"totalItems"`
	ByCategory      map[ProtocolCategory]int `json:"byCategory"`
	PhaseWeeks      int                      `json:"phaseWeeks"`
	DurationWeeks   int                      `json:"durationWeeks"`
	Warnings        []string                 `json:"warnings"`
	Recommendations []string                 `json:"recommendations"`
	phases          []ProtocolPhase
}

const maxProtocolAdvice = 5

func (w *ProtocolBuilder) Evaluate() Evaluation {
	ev := &ProtocolEvaluation{
		ClientName:    w.ClientName,
		Goal:          w.Goal,
		ByCategory:    make(map[ProtocolCategory]int, len(protocolCategories)),
		DurationWeeks: w.DurationWeeks,
		Warnings:      []string{},
		phases:        w.Phases,
	}
	for _, c := range protocolCategories {
		ev.ByCategory[c] = 0
	}

	for _, p := range w.Phases {
		ev.PhaseWeeks += p.Weeks
		named := 0
		for _, it := range p.Items {
			if strings.TrimSpace(it.Name) == "" {
				continue
			}
			named++
			ev.TotalItems++
			ev.ByCategory[it.Category]++
		}
		if named == 0 {
			ev.Warnings = append(ev.Warnings, fmt.Sprintf("Phase %q has no items yet.", p.Name))
		}
	}
	if len(w.Phases) > 0 && ev.PhaseWeeks != w.DurationWeeks {
		ev.Warnings = append(ev.Warnings,
			fmt.Sprintf("Phases cover %d weeks but the protocol runs %d weeks.", ev.PhaseWeeks, w.DurationWeeks))
	}

	var advice scoring.Advice
	advice.Add(ev.TotalItems == 0, "Add at least one diet, lifestyle or supplement item to each phase.")
	advice.Add(ev.ByCategory[CategorySupplement] > 10, "More than 10 supplements: consider simplifying to improve compliance.")
	advice.Add(ev.TotalItems > 0 && ev.ByCategory[CategoryDiet] == 0, "No dietary changes included: food is the foundation of every protocol.")
	advice.Add(ev.TotalItems > 0 && ev.ByCategory[CategoryLifestyle] == 0, "No lifestyle items included: add sleep, movement or stress practices.")
	advice.Add(w.DurationWeeks < 8, "Protocols shorter than 8 weeks rarely show lasting change.")
	advice.Add(strings.TrimSpace(w.Goal) == "", "State the client's primary goal so progress can be measured.")
	advice.Add(true, "Schedule a check-in at the end of every phase to adjust the protocol.")
	ev.Recommendations = advice.Top(maxProtocolAdvice)
	return ev
}

func (ev *ProtocolEvaluation) Report() Report {
	r := Report{
		Title:           KindProtocolBuilder.Title(),
		Subtitle:        ev.Goal,
		ClientName:      ev.ClientName,
		Recommendations: ev.Recommendations,
	}
	summary := ReportSection{Heading: "Summary", Rows: []ReportRow{
		row("Duration", itoa(ev.DurationWeeks)+" weeks"),
		row("Total items", itoa(ev.TotalItems)),
	}}
	for _, c := range protocolCategories {
		summary.Rows = append(summary.Rows, row(protocolCategoryLabels[c]+" items", itoa(ev.ByCategory[c])))
	}
	r.Sections = append(r.Sections, summary)

	for _, p := range ev.phases {
		sec := ReportSection{Heading: fmt.Sprintf("%s (%d weeks)", p.Name, p.Weeks)}
		for _, it := range p.Items {
			if strings.TrimSpace(it.Name) == "" {
				continue
			}
			detail := strings.TrimSpace(strings.Join([]string{it.Dosage, it.Timing}, " "))
			sec.Rows = append(sec.Rows, row(it.Name, detail, string(it.Category)))
		}
		r.Sections = append(r.Sections, sec)
	}
	if len(ev.Warnings) > 0 {
		sec := ReportSection{Heading: "Warnings"}
		for _, w := range ev.Warnings {
			sec.Rows = append(sec.Rows, row(w, "", string(scoring.StatusSuboptimal)))
		}
		r.Sections = append(r.Sections, sec)
	}
	return r
}

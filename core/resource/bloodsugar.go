package resource

import (
	"github.com/accredipro/institute/core/resource/scoring"
)

// ReadingContext is when a glucose reading was taken.
type ReadingContext string

const (
	ContextFasting    ReadingContext = "fasting"
	ContextPreMeal    ReadingContext = "pre-meal"
	ContextPostMeal1h ReadingContext = "post-meal-1h"
	ContextPostMeal2h ReadingContext = "post-meal-2h"
	ContextBedtime    ReadingContext = "bedtime"
)

// glucoseBands are the mg/dL reference bands per reading context.
var glucoseBands = map[ReadingContext]scoring.Bands{
	ContextFasting:    {Optimal: scoring.Range{Min: 70, Max: 90}, Conventional: scoring.Range{Min: 65, Max: 99}},
	ContextPreMeal:    {Optimal: scoring.Range{Min: 70, Max: 95}, Conventional: scoring.Range{Min: 65, Max: 110}},
	ContextPostMeal1h: {Optimal: scoring.Range{Min: 90, Max: 140}, Conventional: scoring.Range{Min: 70, Max: 180}},
	ContextPostMeal2h: {Optimal: scoring.Range{Min: 80, Max: 120}, Conventional: scoring.Range{Min: 70, Max: 140}},
	ContextBedtime:    {Optimal: scoring.Range{Min: 80, Max: 110}, Conventional: scoring.Range{Min: 70, Max: 130}},
}

var readingContextLabels = map[ReadingContext]string{
	ContextFasting:    "Fasting",
	ContextPreMeal:    "Before meal",
	ContextPostMeal1h: "1 hour after meal",
	ContextPostMeal2h: "2 hours after meal",
	ContextBedtime:    "Bedtime",
}

// GlucoseReading is one logged blood glucose measurement in mg/dL.
type GlucoseReading struct {
	Date    string         `json:"date"`
	Time    string         `json:"time"`
	Context ReadingContext `json:"context" validate:"oneof=fasting pre-meal post-meal-1h post-meal-2h bedtime"`
	Value   float64        `json:"value" validate:"gt=0,max=1000"`
	Note    string         `json:"note"`
}

// BloodSugar is the blood glucose reading log.
type BloodSugar struct {
	ClientName string           `json:"clientName" validate:"max=120"`
	Readings   []GlucoseReading `json:"readings" validate:"dive"`
}

func defaultBloodSugar() *BloodSugar {
	return &BloodSugar{Readings: []GlucoseReading{}}
}

func (w *BloodSugar) Kind() Kind { return KindBloodSugar }

func (w *BloodSugar) Options() interface{} { return glucoseBands }

type (
	ClassifiedReading struct {
		GlucoseReading
		Status scoring.Status `json:"status"`
	}

	BloodSugarEvaluation struct {
		ClientName       string                     `json:"clientName"`
		Readings         []ClassifiedReading        `json:"readings"`
		Average          float64                    `json:"average"`
		AverageByContext map[ReadingContext]float64 `json:"averageByContext"`
		Counts           scoring.StatusCounts       `json:"counts"`
		PercentOptimal   int                        `json:"percentOptimal"`
		Recommendations  []string                   `json:"recommendations"`
	}
)

const maxBloodSugarAdvice = 5

func (w *BloodSugar) Evaluate() Evaluation {
	ev := &BloodSugarEvaluation{
		ClientName:       w.ClientName,
		Readings:         make([]ClassifiedReading, 0, len(w.Readings)),
		AverageByContext: make(map[ReadingContext]float64),
	}

	var sum float64
	sums := make(map[ReadingContext]float64)
	counts := make(map[ReadingContext]int)
	concernBy := make(map[ReadingContext]int)
	for _, rd := range w.Readings {
		bands, ok := glucoseBands[rd.Context]
		if !ok || rd.Value <= 0 {
			continue
		}
		st := scoring.Classify(rd.Value, bands)
		ev.Readings = append(ev.Readings, ClassifiedReading{GlucoseReading: rd, Status: st})
		ev.Counts.Add(st)
		sum += rd.Value
		sums[rd.Context] += rd.Value
		counts[rd.Context]++
		if st == scoring.StatusConcern {
			concernBy[rd.Context]++
		}
	}
	if n := len(ev.Readings); n > 0 {
		ev.Average = scoring.Round2(sum / float64(n))
	}
	for c, s := range sums {
		ev.AverageByContext[c] = scoring.Round2(s / float64(counts[c]))
	}
	ev.PercentOptimal = scoring.Percent(ev.Counts.Optimal, ev.Counts.Total())

	fasting, hasFasting := ev.AverageByContext[ContextFasting]

	var advice scoring.Advice
	advice.Add(len(ev.Readings) == 0, "Log at least a week of fasting and post-meal readings to see your pattern.")
	advice.Add(len(ev.Readings) > 0 && counts[ContextFasting] == 0, "Add fasting readings: they are the best baseline marker.")
	advice.Add(hasFasting && fasting > 99, "Average fasting glucose is above 99 mg/dL: discuss HbA1c and fasting insulin testing with your provider.")
	advice.Add(hasFasting && fasting > 90 && fasting <= 99, "Fasting glucose is above optimal: try a 10-minute walk after dinner and an earlier last meal.")
	advice.Add(concernBy[ContextPostMeal1h]+concernBy[ContextPostMeal2h] > 0, "Post-meal spikes detected: pair carbohydrates with protein, fat and fibre.")
	advice.Add(ev.Counts.Concern > 0 && hasLow(ev.Readings), "Readings below 70 mg/dL were logged: do not skip meals and review with a practitioner.")
	advice.Add(ev.PercentOptimal >= 80, "Most readings are optimal: keep up your current routine.")
	advice.Add(len(ev.Readings) > 0, "Re-test the same meals to learn which foods affect you most.")
	ev.Recommendations = advice.Top(maxBloodSugarAdvice)
	return ev
}

func hasLow(readings []ClassifiedReading) bool {
	for _, r := range readings {
		if r.Value < 70 && r.Status == scoring.StatusConcern {
			return true
		}
	}
	return false
}

func (ev *BloodSugarEvaluation) Report() Report {
	r := Report{
		Title:      KindBloodSugar.Title(),
		ClientName: ev.ClientName,
		Score:      intPtr(ev.PercentOptimal),
		ScoreLabel: "% optimal readings",
		Sections: []ReportSection{{Heading: "Summary", Rows: []ReportRow{
			row("Readings", itoa(len(ev.Readings))),
			row("Average", ftoa(ev.Average, 1)+" mg/dL"),
			row("Optimal", itoa(ev.Counts.Optimal), string(scoring.StatusOptimal)),
			row("Suboptimal", itoa(ev.Counts.Suboptimal), string(scoring.StatusSuboptimal)),
			row("Concern", itoa(ev.Counts.Concern), string(scoring.StatusConcern)),
		}}},
		Recommendations: ev.Recommendations,
	}
	if len(ev.Readings) > 0 {
		sec := ReportSection{Heading: "Readings"}
		for _, rd := range ev.Readings {
			label := rd.Date
			if rd.Time != "" {
				label += " " + rd.Time
			}
			label += " · " + readingContextLabels[rd.Context]
			sec.Rows = append(sec.Rows, row(label, ftoa(rd.Value, 0)+" mg/dL", string(rd.Status)))
		}
		r.Sections = append(r.Sections, sec)
	}
	return r
}

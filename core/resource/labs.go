package resource

import (
	"github.com/accredipro/institute/core/resource/scoring"
)

// LabMarker is one lab value with its functional (optimal) and conventional reference ranges.
type LabMarker struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Unit  string        `json:"unit"`
	Group string        `json:"group"`
	Bands scoring.Bands `json:"bands"`
}

var labMarkers = []LabMarker{
	{ID: "tsh", Name: "TSH", Unit: "mIU/L", Group: "Thyroid", Bands: bands(1.0, 2.5, 0.45, 4.5)},
	{ID: "free-t4", Name: "Free T4", Unit: "ng/dL", Group: "Thyroid", Bands: bands(1.0, 1.5, 0.8, 1.8)},
	{ID: "free-t3", Name: "Free T3", Unit: "pg/mL", Group: "Thyroid", Bands: bands(3.0, 4.0, 2.3, 4.2)},
	{ID: "vitamin-d", Name: "Vitamin D (25-OH)", Unit: "ng/mL", Group: "Nutrients", Bands: bands(50, 80, 30, 100)},
	{ID: "ferritin", Name: "Ferritin", Unit: "ng/mL", Group: "Nutrients", Bands: bands(50, 150, 15, 300)},
	{ID: "b12", Name: "Vitamin B12", Unit: "pg/mL", Group: "Nutrients", Bands: bands(500, 900, 200, 1100)},
	{ID: "magnesium-rbc", Name: "Magnesium (RBC)", Unit: "mg/dL", Group: "Nutrients", Bands: bands(6.0, 6.5, 4.2, 6.8)},
	{ID: "fasting-glucose", Name: "Fasting glucose", Unit: "mg/dL", Group: "Metabolic", Bands: bands(75, 90, 65, 99)},
	{ID: "fasting-insulin", Name: "Fasting insulin", Unit: "µIU/mL", Group: "Metabolic", Bands: bands(2, 6, 2, 19.6)},
	{ID: "hba1c", Name: "HbA1c", Unit: "%", Group: "Metabolic", Bands: bands(4.8, 5.4, 4.0, 5.6)},
	{ID: "triglycerides", Name: "Triglycerides", Unit: "mg/dL", Group: "Lipids", Bands: bands(50, 100, 0, 149)},
	{ID: "hdl", Name: "HDL cholesterol", Unit: "mg/dL", Group: "Lipids", Bands: bands(55, 90, 40, 120)},
	{ID: "hs-crp", Name: "hs-CRP", Unit: "mg/L", Group: "Inflammation", Bands: bands(0, 1.0, 0, 3.0)},
	{ID: "homocysteine", Name: "Homocysteine", Unit: "µmol/L", Group: "Inflammation", Bands: bands(5, 8, 0, 15)},
}

func bands(optMin, optMax, convMin, convMax float64) scoring.Bands {
	return scoring.Bands{
		Optimal:      scoring.Range{Min: optMin, Max: optMax},
		Conventional: scoring.Range{Min: convMin, Max: convMax},
	}
}

// LabResults holds entered lab values keyed by marker id. Null or absent values are blank.
type LabResults struct {
	ClientName string              `json:"clientName" validate:"max=120"`
	TestDate   string              `json:"testDate"`
	Values     map[string]*float64 `json:"values"`
	Notes      string              `json:"notes"`
}

func defaultLabResults() *LabResults {
	values := make(map[string]*float64, len(labMarkers))
	for _, m := range labMarkers {
		values[m.ID] = nil
	}
	return &LabResults{Values: values}
}

func (w *LabResults) Kind() Kind { return KindLabResults }

func (w *LabResults) Options() interface{} { return labMarkers }

type (
	LabResult struct {
		Marker string         `json:"marker"`
		Name   string         `json:"name"`
		Value  float64        `json:"value"`
		Unit   string         `json:"unit"`
		Status scoring.Status `json:"status"`
		Bands  scoring.Bands  `json:"bands"`
		group  string
	}

	LabEvaluation struct {
		ClientName      string               `json:"clientName"`
		TestDate        string               `json:"testDate"`
		Results         []LabResult          `json:"results"`
		Counts          scoring.StatusCounts `json:"counts"`
		PercentOptimal  int                  `json:"percentOptimal"`
		Recommendations []string             `json:"recommendations"`
	}
)

const maxLabAdvice = 6

func (w *LabResults) Evaluate() Evaluation {
	ev := &LabEvaluation{
		ClientName: w.ClientName,
		TestDate:   w.TestDate,
		Results:    make([]LabResult, 0, len(labMarkers)),
	}
	status := make(map[string]scoring.Status, len(labMarkers))
	value := make(map[string]float64, len(labMarkers))
	for _, m := range labMarkers {
		v := w.Values[m.ID]
		if v == nil {
			continue
		}
		st := scoring.Classify(*v, m.Bands)
		ev.Results = append(ev.Results, LabResult{
			Marker: m.ID, Name: m.Name, Value: *v, Unit: m.Unit, Status: st, Bands: m.Bands, group: m.Group,
		})
		ev.Counts.Add(st)
		status[m.ID] = st
		value[m.ID] = *v
	}
	ev.PercentOptimal = scoring.Percent(ev.Counts.Optimal, ev.Counts.Total())

	off := func(id string) bool {
		st, ok := status[id]
		return ok && st != scoring.StatusOptimal
	}
	low := func(id string) bool { return off(id) && value[id] < labMarker(id).Bands.Optimal.Min }
	high := func(id string) bool { return off(id) && value[id] > labMarker(id).Bands.Optimal.Max }

	var advice scoring.Advice
	advice.Add(len(ev.Results) == 0, "Enter at least one lab value to see your functional ranges.")
	advice.Add(high("tsh") || low("free-t3") || low("free-t4"), "Thyroid markers are outside the functional range: request thyroid antibodies and reverse T3.")
	advice.Add(low("vitamin-d"), "Vitamin D is below optimal: discuss supplementing D3 with K2 and re-test in 12 weeks.")
	advice.Add(low("ferritin"), "Low ferritin: check iron panel and review iron-rich foods with vitamin C.")
	advice.Add(high("ferritin"), "High ferritin can signal inflammation or iron overload: review with your provider.")
	advice.Add(low("b12"), "B12 is below optimal: consider methylated B12 and check for absorption issues.")
	advice.Add(high("fasting-glucose") || high("fasting-insulin") || high("hba1c"), "Blood sugar markers are elevated: focus on protein-forward meals and post-meal walks.")
	advice.Add(high("triglycerides") || low("hdl"), "Lipid pattern suggests insulin resistance: reduce refined carbohydrates and alcohol.")
	advice.Add(high("hs-crp") || high("homocysteine"), "Inflammation markers are raised: prioritise omega-3s, sleep and an anti-inflammatory diet.")
	advice.Add(low("magnesium-rbc"), "RBC magnesium is low: add leafy greens, seeds and consider magnesium glycinate.")
	advice.Add(len(ev.Results) > 0 && ev.Counts.Concern == 0 && ev.Counts.Suboptimal == 0, "All entered markers are in the optimal range.")
	ev.Recommendations = advice.Top(maxLabAdvice)
	return ev
}

func labMarker(id string) LabMarker {
	for _, m := range labMarkers {
		if m.ID == id {
			return m
		}
	}
	return LabMarker{}
}

func (ev *LabEvaluation) Report() Report {
	r := Report{
		Title:      KindLabResults.Title(),
		ClientName: ev.ClientName,
		Score:      intPtr(ev.PercentOptimal),
		ScoreLabel: "% markers optimal",
		Sections: []ReportSection{{Heading: "Summary", Rows: []ReportRow{
			row("Markers entered", itoa(len(ev.Results))),
			row("Optimal", itoa(ev.Counts.Optimal), string(scoring.StatusOptimal)),
			row("Suboptimal", itoa(ev.Counts.Suboptimal), string(scoring.StatusSuboptimal)),
			row("Concern", itoa(ev.Counts.Concern), string(scoring.StatusConcern)),
		}}},
		Recommendations: ev.Recommendations,
	}
	if ev.TestDate != "" {
		r.Subtitle = "Test date " + ev.TestDate
	}

	groups := make(map[string]*ReportSection)
	var order []string
	for _, res := range ev.Results {
		sec, ok := groups[res.group]
		if !ok {
			sec = &ReportSection{Heading: res.group}
			groups[res.group] = sec
			order = append(order, res.group)
		}
		opt := res.Bands.Optimal
		value := ftoa(res.Value, 2) + " " + res.Unit + " (optimal " + ftoa(opt.Min, 1) + "-" + ftoa(opt.Max, 1) + ")"
		sec.Rows = append(sec.Rows, row(res.Name, value, string(res.Status)))
	}
	for _, g := range order {
		r.Sections = append(r.Sections, *groups[g])
	}
	return r
}

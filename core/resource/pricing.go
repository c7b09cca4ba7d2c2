package resource

import (
	"math"

	"github.com/accredipro/institute/core/resource/scoring"
)

// PricingCalculator works back from a practitioner's income goal to revenue and client targets.
type PricingCalculator struct {
	AnnualIncomeGoal   float64 `json:"annualIncomeGoal" validate:"min=0"`
	MonthlyOverhead    float64 `json:"monthlyOverhead" validate:"min=0"`
	TaxRate            float64 `json:"taxRate" validate:"taxrate"`
	WeeksPerYear       float64 `json:"weeksPerYear" validate:"min=1,max=52"`
	DaysPerWeek        float64 `json:"daysPerWeek" validate:"min=1,max=7"`
	HoursPerDay        float64 `json:"hoursPerDay" validate:"min=1,max=24"`
	AverageClientValue float64 `json:"averageClientValue" validate:"min=0"`
}

func defaultPricingCalculator() *PricingCalculator {
	return &PricingCalculator{
		AnnualIncomeGoal:   100000,
		MonthlyOverhead:    1500,
		TaxRate:            25,
		WeeksPerYear:       48,
		DaysPerWeek:        4,
		HoursPerDay:        6,
		AverageClientValue: 2000,
	}
}

func (w *PricingCalculator) Kind() Kind { return KindPricingCalculator }

type PricingEvaluation struct {
	AnnualOverhead float64 `json:"annualOverhead"`
	GrossNeeded    float64 `json:"grossNeeded"`
	TaxAmount      float64 `json:"taxAmount"`
	MonthlyTarget  float64 `json:"monthlyTarget"`
	WeeklyTarget   float64 `json:"weeklyTarget"`
	DailyTarget    float64 `json:"dailyTarget"`
	HourlyRate     float64 `json:"hourlyRate"`
	// RequiredMonthlyClients is ceil(gross / averageClientValue), 0 when the client value is not positive.
	RequiredMonthlyClients int `json:"requiredMonthlyClients"`
	// EnrolmentsPerMonth spreads the required clients evenly over the year.
	EnrolmentsPerMonth int      `json:"enrolmentsPerMonth"`
	Recommendations    []string `json:"recommendations"`
	input              PricingCalculator
}

const maxPricingAdvice = 5

func (w *PricingCalculator) Evaluate() Evaluation {
	ev := &PricingEvaluation{input: *w}
	ev.AnnualOverhead = w.MonthlyOverhead * 12

	gross := scoring.GrossNeeded(w.AnnualIncomeGoal, ev.AnnualOverhead, w.TaxRate)
	solvable := !math.IsInf(gross, 0)
	if !solvable {
		gross = 0
	}
	ev.GrossNeeded = scoring.Round2(gross)
	if solvable {
		ev.TaxAmount = scoring.Round2(gross - w.AnnualIncomeGoal - ev.AnnualOverhead)
	}
	ev.MonthlyTarget = scoring.Round2(gross / 12)
	weekly := scoring.Per(gross, w.WeeksPerYear)
	daily := scoring.Per(weekly, w.DaysPerWeek)
	ev.WeeklyTarget = scoring.Round2(weekly)
	ev.DailyTarget = scoring.Round2(daily)
	ev.HourlyRate = scoring.Round2(scoring.Per(daily, w.HoursPerDay))
	ev.RequiredMonthlyClients = scoring.ClientsNeeded(gross, w.AverageClientValue)
	ev.EnrolmentsPerMonth = scoring.ClientsNeeded(float64(ev.RequiredMonthlyClients), 12)

	var advice scoring.Advice
	advice.Add(!solvable, "A tax rate of 100% or more leaves no income: enter a rate below 100%.")
	advice.Add(ev.HourlyRate > 250, "Your required hourly rate is high: consider group programs to leverage your time.")
	advice.Add(ev.EnrolmentsPerMonth > 10, "More than 10 new clients a month is demanding: raise your package price or add recurring offers.")
	advice.Add(w.AverageClientValue < 1000, "Packages under $1,000 make goals hard to reach: bundle sessions into a 3-month program.")
	advice.Add(w.MonthlyOverhead > w.AnnualIncomeGoal/12*0.3, "Overhead is above 30% of your income goal: review recurring expenses.")
	advice.Add(w.TaxRate < 15, "A tax rate under 15% is optimistic: confirm with an accountant.")
	advice.Add(true, "Track actual revenue monthly against these targets and adjust pricing each quarter.")
	ev.Recommendations = advice.Top(maxPricingAdvice)
	return ev
}

func money(f float64) string { return "$" + ftoa(f, 2) }

func (ev *PricingEvaluation) Report() Report {
	in := ev.input
	return Report{
		Title:    KindPricingCalculator.Title(),
		Subtitle: "Income goal " + money(in.AnnualIncomeGoal),
		Sections: []ReportSection{
			{Heading: "Inputs", Rows: []ReportRow{
				row("Annual income goal (net)", money(in.AnnualIncomeGoal)),
				row("Monthly overhead", money(in.MonthlyOverhead)),
				row("Tax rate", ftoa(in.TaxRate, 1)+"%"),
				row("Working weeks per year", ftoa(in.WeeksPerYear, 0)),
				row("Working days per week", ftoa(in.DaysPerWeek, 0)),
				row("Client hours per day", ftoa(in.HoursPerDay, 0)),
				row("Average client value", money(in.AverageClientValue)),
			}},
			{Heading: "Targets", Rows: []ReportRow{
				row("Gross revenue needed", money(ev.GrossNeeded)),
				row("Estimated taxes", money(ev.TaxAmount)),
				row("Monthly revenue", money(ev.MonthlyTarget)),
				row("Weekly revenue", money(ev.WeeklyTarget)),
				row("Daily revenue", money(ev.DailyTarget)),
				row("Hourly rate", money(ev.HourlyRate)),
				row("Required monthly clients", itoa(ev.RequiredMonthlyClients)),
				row("New enrolments per month", itoa(ev.EnrolmentsPerMonth)),
			}},
		},
		Recommendations: ev.Recommendations,
	}
}

package resource

import (
	"github.com/accredipro/institute/core/resource/scoring"
)

// Nutrition is the nutrition habits assessment.
type Nutrition struct {
	ClientName        string `json:"clientName" validate:"max=120"`
	VegetableServings int    `json:"vegetableServings" validate:"min=0,max=30"`
	FruitServings     int    `json:"fruitServings" validate:"min=0,max=30"`
	WaterGlasses      int    `json:"waterGlasses" validate:"min=0,max=40"`
	ProteinEachMeal   bool   `json:"proteinEachMeal"`
	ProcessedFood     string `json:"processedFood" validate:"oneof=rarely weekly daily"`
	SugaryDrinks      int    `json:"sugaryDrinks" validate:"min=0,max=30"`
	EatsBreakfast     bool   `json:"eatsBreakfast"`
	WholeGrains       bool   `json:"wholeGrains"`
	FishPerWeek       int    `json:"fishPerWeek" validate:"min=0,max=21"`
	AlcoholPerWeek    int    `json:"alcoholPerWeek" validate:"min=0,max=100"`
	HealthyFatsDaily  bool   `json:"healthyFatsDaily"`
	FermentedFoods    bool   `json:"fermentedFoods"`
}

const nutritionBaseline = 25

func defaultNutrition() *Nutrition {
	return &Nutrition{ProcessedFood: "weekly"}
}

func (w *Nutrition) Kind() Kind { return KindNutrition }

type NutritionEvaluation struct {
	ClientName      string   `json:"clientName"`
	Score           int      `json:"score"`
	Grade           string   `json:"grade"`
	Strengths       []string `json:"strengths"`
	Recommendations []string `json:"recommendations"`
	input           Nutrition
}

const maxNutritionAdvice = 6

func nutritionGrade(score int) string {
	switch {
	case score >= 80:
		return "excellent"
	case score >= 60:
		return "good"
	case score >= 40:
		return "fair"
	default:
		return "needs improvement"
	}
}

func (w *Nutrition) Evaluate() Evaluation {
	p := scoring.NewPoints(nutritionBaseline)
	switch {
	case w.VegetableServings >= 5:
		p.Add(true, 15)
	case w.VegetableServings >= 3:
		p.Add(true, 8)
	case w.VegetableServings < 2:
		p.Sub(true, 5)
	}
	p.Add(w.FruitServings >= 2, 8)
	switch {
	case w.WaterGlasses >= 8:
		p.Add(true, 10)
	case w.WaterGlasses >= 6:
		p.Add(true, 5)
	case w.WaterGlasses < 4:
		p.Sub(true, 5)
	}
	p.Add(w.ProteinEachMeal, 10)
	p.Add(w.ProcessedFood == "rarely", 10)
	p.Sub(w.ProcessedFood == "daily", 10)
	p.Add(w.SugaryDrinks == 0, 5)
	p.Sub(w.SugaryDrinks >= 2, 10)
	p.Add(w.EatsBreakfast, 5)
	p.Add(w.WholeGrains, 5)
	p.Add(w.FishPerWeek >= 2, 7)
	p.Sub(w.AlcoholPerWeek > 7, 10)
	p.Sub(w.AlcoholPerWeek > 14, 5)
	p.Add(w.HealthyFatsDaily, 3)
	p.Add(w.FermentedFoods, 2)

	ev := &NutritionEvaluation{
		ClientName: w.ClientName,
		Score:      p.Total(),
		input:      *w,
	}
	ev.Grade = nutritionGrade(ev.Score)

	var strengths scoring.Advice
	strengths.Add(w.VegetableServings >= 5, "Eating 5+ servings of vegetables daily")
	strengths.Add(w.WaterGlasses >= 8, "Well hydrated")
	strengths.Add(w.ProteinEachMeal, "Protein at every meal")
	strengths.Add(w.ProcessedFood == "rarely", "Rarely eats processed food")
	strengths.Add(w.FishPerWeek >= 2, "Oily fish at least twice a week")
	ev.Strengths = strengths.Top(-1)

	var advice scoring.Advice
	advice.Add(w.VegetableServings < 5, "Work up to 5+ servings of colourful vegetables a day.")
	advice.Add(!w.ProteinEachMeal, "Include a palm-sized portion of protein at every meal to steady blood sugar.")
	advice.Add(w.WaterGlasses < 6, "Drink at least 6-8 glasses of water daily.")
	advice.Add(w.ProcessedFood == "daily", "Swap one processed meal a day for a home-cooked whole-food option.")
	advice.Add(w.SugaryDrinks > 0, "Replace sugary drinks with sparkling water or herbal tea.")
	advice.Add(w.AlcoholPerWeek > 7, "Keep alcohol to 7 drinks a week or fewer.")
	advice.Add(w.FishPerWeek < 2, "Add oily fish (salmon, sardines, mackerel) twice a week for omega-3s.")
	advice.Add(!w.FermentedFoods, "Add a daily fermented food such as yoghurt, kefir or sauerkraut.")
	advice.Add(!w.WholeGrains, "Choose whole grains over refined grains.")
	advice.Add(!w.EatsBreakfast, "A protein-rich breakfast helps regulate appetite through the day.")
	ev.Recommendations = advice.Top(maxNutritionAdvice)
	return ev
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func (ev *NutritionEvaluation) Report() Report {
	in := ev.input
	r := Report{
		Title:      KindNutrition.Title(),
		ClientName: ev.ClientName,
		Score:      intPtr(ev.Score),
		ScoreLabel: "Nutrition score",
		Band:       ev.Grade,
		Sections: []ReportSection{{Heading: "Daily Habits", Rows: []ReportRow{
			row("Vegetable servings / day", itoa(in.VegetableServings)),
			row("Fruit servings / day", itoa(in.FruitServings)),
			row("Glasses of water / day", itoa(in.WaterGlasses)),
			row("Protein at each meal", yesNo(in.ProteinEachMeal)),
			row("Processed food", in.ProcessedFood),
			row("Sugary drinks / day", itoa(in.SugaryDrinks)),
			row("Eats breakfast", yesNo(in.EatsBreakfast)),
			row("Whole grains", yesNo(in.WholeGrains)),
			row("Fish / week", itoa(in.FishPerWeek)),
			row("Alcoholic drinks / week", itoa(in.AlcoholPerWeek)),
		}}},
		Recommendations: ev.Recommendations,
	}
	if len(ev.Strengths) > 0 {
		sec := ReportSection{Heading: "Strengths"}
		for _, s := range ev.Strengths {
			sec.Rows = append(sec.Rows, row(s, "", string(scoring.StatusOptimal)))
		}
		r.Sections = append(r.Sections, sec)
	}
	return r
}

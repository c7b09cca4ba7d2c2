package registry

import "github.com/accredipro/institute/core/nurture"

var entries = map[string]Entry{
	"functional-medicine": {
		Slug:          "functional-medicine",
		PortalSlug:    "fm-mini-diploma",
		DisplayName:   "Functional Medicine Mini Diploma",
		Certification: "Certified Functional Medicine Practitioner",
		Lessons: []Lesson{
			{ID: 1, Title: "The Root-Cause Framework", Slug: "root-cause-framework", DurationMinutes: 18},
			{ID: 2, Title: "Systems Biology in Practice", Slug: "systems-biology", DurationMinutes: 22},
			{ID: 3, Title: "Mapping the Health Timeline", Slug: "health-timeline", DurationMinutes: 20},
			{ID: 4, Title: "Reading Labs Functionally", Slug: "functional-labs", DurationMinutes: 25},
			{ID: 5, Title: "Building Your First Protocol", Slug: "first-protocol", DurationMinutes: 24},
		},
		CheckoutURL:     "https://checkout.accredipro.academy/functional-medicine-certification",
		ExamCategory:    "functional-medicine",
		NurtureSequence: nurture.FunctionalMedicineEmails,
		DMSequence:      nurture.FunctionalMedicineDMs,
	},
	"gut-health": {
		Slug:          "gut-health",
		PortalSlug:    "gut-mini-diploma",
		DisplayName:   "Gut Health Mini Diploma",
		Certification: "Certified Gut Health Practitioner",
		Lessons: []Lesson{
			{ID: 1, Title: "The Gut-Brain-Immune Axis", Slug: "gut-brain-immune", DurationMinutes: 16},
			{ID: 2, Title: "Digestion From Top to Bottom", Slug: "digestion", DurationMinutes: 21},
			{ID: 3, Title: "The Microbiome", Slug: "microbiome", DurationMinutes: 19},
			{ID: 4, Title: "The 5R Protocol", Slug: "five-r-protocol", DurationMinutes: 27},
		},
		CheckoutURL:     "https://checkout.accredipro.academy/gut-health-certification",
		ExamCategory:    "gut-health",
		NurtureSequence: nurture.GutHealthEmails,
		DMSequence:      nurture.GutHealthDMs,
	},
	"womens-hormones": {
		Slug:          "womens-hormones",
		PortalSlug:    "hormone-mini-diploma",
		DisplayName:   "Women's Hormone Health Mini Diploma",
		Certification: "Certified Women's Hormone Health Practitioner",
		Lessons: []Lesson{
			{ID: 1, Title: "The Hormone Symphony", Slug: "hormone-symphony", DurationMinutes: 20},
			{ID: 2, Title: "Thyroid and Adrenals", Slug: "thyroid-adrenals", DurationMinutes: 23},
			{ID: 3, Title: "Reading the Menstrual Cycle", Slug: "menstrual-cycle", DurationMinutes: 19},
			{ID: 4, Title: "Estrogen and Progesterone Balance", Slug: "estrogen-progesterone", DurationMinutes: 22},
			{ID: 5, Title: "Blood Sugar and Hormones", Slug: "blood-sugar-hormones", DurationMinutes: 17},
		},
		CheckoutURL:     "https://checkout.accredipro.academy/womens-hormone-certification",
		ExamCategory:    "womens-health",
		NurtureSequence: nurture.WomensHormoneEmails,
		DMSequence:      nurture.WomensHormoneDMs,
	},
	"menopause-support": {
		Slug:          "menopause-support",
		PortalSlug:    "menopause-mini-diploma",
		DisplayName:   "Menopause Support Mini Diploma",
		Certification: "Certified Women's Hormone Health Practitioner",
		Lessons: []Lesson{
			{ID: 1, Title: "What Changes in Midlife", Slug: "midlife-changes", DurationMinutes: 18},
			{ID: 2, Title: "The Symptom Map", Slug: "symptom-map", DurationMinutes: 20},
			{ID: 3, Title: "Sleep, Mood and Brain Fog", Slug: "sleep-mood-brain-fog", DurationMinutes: 21},
			{ID: 4, Title: "Lifestyle Levers", Slug: "lifestyle-levers", DurationMinutes: 19},
		},
		CheckoutURL:     "https://checkout.accredipro.academy/womens-hormone-certification",
		ExamCategory:    "womens-health",
		NurtureSequence: nurture.MenopauseEmails,
		// no menopause DMs yet; the hormone DMs read naturally for this audience
		DMSequence: nurture.WomensHormoneDMs,
	},
	"holistic-nutrition": {
		Slug:          "holistic-nutrition",
		PortalSlug:    "nutrition-mini-diploma",
		DisplayName:   "Holistic Nutrition Mini Diploma",
		Certification: "Certified Holistic Nutrition Practitioner",
		Lessons: []Lesson{
			{ID: 1, Title: "Bio-Individual Nutrition", Slug: "bio-individual", DurationMinutes: 17},
			{ID: 2, Title: "Macronutrients Without the Dogma", Slug: "macronutrients", DurationMinutes: 22},
			{ID: 3, Title: "Blood Sugar Balance", Slug: "blood-sugar-balance", DurationMinutes: 20},
			{ID: 4, Title: "Micronutrients and Deficiencies", Slug: "micronutrients", DurationMinutes: 24},
			{ID: 5, Title: "Coaching Lasting Change", Slug: "coaching-change", DurationMinutes: 18},
		},
		CheckoutURL:     "https://checkout.accredipro.academy/holistic-nutrition-certification",
		ExamCategory:    "nutrition",
		NurtureSequence: nurture.HolisticNutritionEmails,
		DMSequence:      nurture.HolisticNutritionDMs,
	},
	"stress-resilience": {
		Slug:          "stress-resilience",
		PortalSlug:    "stress-mini-diploma",
		DisplayName:   "Stress & Resilience Mini Diploma",
		Certification: "Certified Functional Medicine Practitioner",
		Lessons: []Lesson{
			{ID: 1, Title: "The Stress Response", Slug: "stress-response", DurationMinutes: 19},
			{ID: 2, Title: "Measuring Stress Load", Slug: "stress-load", DurationMinutes: 15},
			{ID: 3, Title: "Nervous System Resets", Slug: "nervous-system-resets", DurationMinutes: 16},
			{ID: 4, Title: "Sleep as Recovery", Slug: "sleep-recovery", DurationMinutes: 20},
		},
		CheckoutURL:     "https://checkout.accredipro.academy/functional-medicine-certification",
		ExamCategory:    "functional-medicine",
		NurtureSequence: nurture.StressResilienceEmails,
		// upsell is the functional medicine certification, so its DMs are reused
		DMSequence: nurture.FunctionalMedicineDMs,
	},
	"autoimmune-wellness": {
		Slug:          "autoimmune-wellness",
		PortalSlug:    "autoimmune-mini-diploma",
		DisplayName:   "Autoimmune Wellness Mini Diploma",
		Certification: "Certified Gut Health Practitioner",
		Lessons: []Lesson{
			{ID: 1, Title: "How Autoimmunity Develops", Slug: "autoimmunity", DurationMinutes: 21},
			{ID: 2, Title: "Intestinal Permeability", Slug: "intestinal-permeability", DurationMinutes: 18},
			{ID: 3, Title: "Triggers and Flares", Slug: "triggers-flares", DurationMinutes: 20},
		},
		CheckoutURL:  "https://checkout.accredipro.academy/gut-health-certification",
		ExamCategory: "gut-health",
		// autoimmune copy is not written yet; the gut sequences sell the same certification
		NurtureSequence: nurture.GutHealthEmails,
		DMSequence:      nurture.GutHealthDMs,
	},
}

package nurture

var HolisticNutritionEmails = cleanSequence(Sequence{
	{
		ID:      "nutrition-01-welcome",
		Phase:   PhaseValue,
		Day:     0,
		Subject: "Welcome to the Holistic Nutrition Mini Diploma 🥗",
		Content: `Hi {{firstName}},

Welcome! We start with the **bio-individual** approach: there is no single perfect diet, only the right plate for the person in front of you.

Lesson 1 is open now.`,
	},
	{
		ID:      "nutrition-02-assessment",
		Phase:   PhaseValue,
		Day:     2,
		Subject: "Score your own plate",
		Content: `Hi {{firstName}},

Your resources include the Nutrition Assessment. It scores vegetables, protein, hydration, processed food and more, then gives you a short list of the highest impact changes.

Practitioners use it on intake calls to decide where to start.`,
	},
	{
		ID:      "nutrition-03-blood-sugar",
		Phase:   PhaseValue,
		Day:     5,
		Subject: "Blood sugar is the quiet driver",
		Content: `Hi {{firstName}},

Energy crashes, cravings, poor sleep and stubborn weight often share a root: unstable blood sugar.

Lesson 3 teaches the protein, fibre and fat pairing that settles it, and how to read a client's glucose log.`,
	},
	{
		ID:      "nutrition-04-career",
		Phase:   PhaseDesire,
		Day:     12,
		Subject: "Turning nutrition knowledge into a practice",
		Content: `Hi {{firstName}},

Our nutrition graduates coach one to one, run group programmes and partner with gyms and clinics.

The pricing calculator in your resources shows how many clients you'd need to reach your income goal.`,
	},
	{
		ID:      "nutrition-05-certification",
		Phase:   PhaseDesire,
		Day:     18,
		Subject: "Inside the Holistic Nutrition certification",
		Content: `Hi {{firstName}},

Macronutrients, micronutrients, therapeutic diets, meal planning and motivational coaching, all with supervised client cases.

Your mini diploma credit applies: https://checkout.accredipro.academy/holistic-nutrition-certification`,
	},
	{
		ID:      "nutrition-06-deadline",
		Phase:   PhaseDecision,
		Day:     32,
		Subject: "Your nutrition credit is expiring",
		Content: `Hi {{firstName}},

Just a reminder that your mini diploma credit will close soon.

Enroll now and keep your progress: https://checkout.accredipro.academy/holistic-nutrition-certification`,
	},
	{
		ID:      "nutrition-07-reengage",
		Phase:   PhaseReEngage,
		Day:     60,
		Subject: "How are your habits holding up?",
		Content: `Hi {{firstName}},

Retake the Nutrition Assessment and see how far you've come since day one.

When you're ready to help others do the same, we'll be here.`,
	},
})

var HolisticNutritionDMs = cleanDMs(DMSequence{
	{ID: "nutrition-dm-01", Day: 1, Message: "Hey {{firstName}}! Welcome to the nutrition mini diploma 🥗 What's your favourite healthy meal right now?"},
	{ID: "nutrition-dm-02", Day: 8, Message: "Did you try the Nutrition Assessment? What was your score?"},
	{ID: "nutrition-dm-03", Day: 22, Message: "Would you like to see how our graduates price their nutrition programmes?"},
	{ID: "nutrition-dm-04", Day: 34, Message: "Your credit closes soon {{firstName}}. Anything I can help clarify?"},
})

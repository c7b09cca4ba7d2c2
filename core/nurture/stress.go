package nurture

var StressResilienceEmails = cleanSequence(Sequence{
	{
		ID:      "stress-01-welcome",
		Phase:   PhaseValue,
		Day:     0,
		Subject: "Welcome to the Stress & Resilience Mini Diploma",
		Content: `Hi {{firstName}},

Welcome! Lesson 1 explains the stress response from the HPA axis to the nervous system, and why chronic stress shows up in digestion, hormones and sleep.`,
	},
	{
		ID:      "stress-02-assessment",
		Phase:   PhaseValue,
		Day:     2,
		Subject: "How stressed are you, really?",
		Content: `Hi {{firstName}},

The Stress Assessment in your resources scores physical, emotional, cognitive and behavioural signs of stress.

Take it honestly. The category breakdown is where the insight is.`,
	},
	{
		ID:      "stress-03-tools",
		Phase:   PhaseValue,
		Day:     6,
		Subject: "Three 2-minute resets for the nervous system",
		Content: `Hi {{firstName}},

Physiological sighs, a cold water splash and a slow walk outside. Small, free and *surprisingly* powerful.

Lesson 3 covers when to use each one and how to coach clients to stick with them.`,
	},
	{
		ID:      "stress-04-certification",
		Phase:   PhaseDesire,
		Day:     15,
		Subject: "Build a practice around resilience",
		Content: `Hi {{firstName}},

Stress sits underneath almost every chronic complaint. Practitioners who can address it become the first call for burnt-out professionals.

The Functional Medicine certification includes a full stress and resilience track: https://checkout.accredipro.academy/functional-medicine-certification`,
	},
	{
		ID:      "stress-05-deadline",
		Phase:   PhaseDecision,
		Day:     30,
		Subject: "Your credit window is closing",
		Content: `Hi {{firstName}},

Your mini diploma credit toward certification closes soon. Enroll while it's active to keep your progress.

https://checkout.accredipro.academy/functional-medicine-certification`,
	},
	{
		ID:      "stress-06-reengage",
		Phase:   PhaseReEngage,
		Day:     60,
		Subject: "A gentle check in",
		Content: `Hi {{firstName}},

How are you doing? Retake the Stress Assessment and notice what has changed.

We're here whenever you want to take the next step.`,
	},
})

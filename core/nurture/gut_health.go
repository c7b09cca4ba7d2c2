package nurture

var GutHealthEmails = cleanSequence(Sequence{
	{
		ID:      "gut-01-welcome",
		Phase:   PhaseValue,
		Day:     0,
		Subject: "Welcome to the Gut Health Mini Diploma 🦠",
		Content: `Hi {{firstName}},

You're in! Lesson 1 of your Gut Health Mini Diploma is ready.

We start with the **gut-brain-immune connection**: why roughly 70% of the immune system sits along the gut wall, and why digestive symptoms so often travel with fatigue, skin issues and low mood.

Grab a cup of tea and dive in.`,
	},
	{
		ID:      "gut-02-tracker",
		Phase:   PhaseValue,
		Day:     1,
		Subject: "Try the Gut Health Tracker on yourself",
		Content: `Hi {{firstName}},

Inside your resources you'll find the Gut Health Tracker. It scores digestive, food-reaction, systemic and elimination symptoms and shows you which area needs attention first.

Run it on yourself today, then again in four weeks. Practitioners use exactly this before-and-after view with their clients.`,
	},
	{
		ID:      "gut-03-five-r",
		Phase:   PhaseValue,
		Day:     4,
		Subject: "The 5R framework in plain English",
		Content: `Hi {{firstName}},

Remove, Replace, Reinoculate, Repair, Rebalance.

It sounds clinical, but it's simply the order that works: take out what irritates, give back what's missing, restore the good bacteria, heal the lining, then protect the result with lifestyle.

Lesson 4 shows the *exact* protocol templates our practitioners start from.`,
	},
	{
		ID:      "gut-04-demand",
		Phase:   PhaseDesire,
		Day:     9,
		Subject: "Why gut specialists are booked out",
		Content: `Hi {{firstName}},

Bloating, IBS and reflux are among the most common reasons people search for help online, and most of them have been told their tests are "normal".

A certified gut health practitioner fills that gap. Our graduates often have a waitlist within their first year.`,
	},
	{
		ID:      "gut-05-certification",
		Phase:   PhaseDesire,
		Day:     16,
		Subject: "Inside the Gut Health Practitioner certification",
		Content: `Hi {{firstName}},

The full certification covers stool testing, SIBO, food sensitivities, the 5R protocol and 12 supervised case reviews.

You'll graduate with client-ready intake forms, protocol templates and a Certified Practitioner credential.

See the curriculum: https://checkout.accredipro.academy/gut-health-certification`,
	},
	{
		ID:      "gut-06-story",
		Phase:   PhaseDecision,
		Day:     23,
		Subject: "\"I went from nurse to gut health specialist\"",
		Content: `Hi {{firstName}},

Jenna spent 14 years as an ICU nurse before burning out. She enrolled in the gut health certification on her days off and took her first paying client five months later.

Today she runs a fully virtual practice and works three days a week.

Your mini diploma lessons already count toward the same credential Jenna holds.`,
	},
	{
		ID:      "gut-07-deadline",
		Phase:   PhaseDecision,
		Day:     35,
		Subject: "⏳ Your mini diploma credit closes soon",
		Content: `Hi {{firstName}},

The credit from your mini diploma applies to the full Gut Health certification for a limited time.

Enroll now and start with your first lessons already complete: https://checkout.accredipro.academy/gut-health-certification`,
	},
	{
		ID:      "gut-08-reengage",
		Phase:   PhaseReEngage,
		Day:     60,
		Subject: "How's your gut, {{firstName}}?",
		Content: `Hi {{firstName}},

It's been about two months. If you ran the Gut Health Tracker at the start, now is a great time to run it again and compare.

Whenever you're ready to take this further, we'll be here.`,
	},
})

var GutHealthDMs = cleanDMs(DMSequence{
	{ID: "gut-dm-01", Day: 1, Message: "Hi {{firstName}}! Welcome to the gut health mini diploma. What gut symptom are you most curious about?"},
	{ID: "gut-dm-02", Day: 6, Message: "Did you get a chance to try the Gut Health Tracker yet? Happy to talk through your score 🙂"},
	{ID: "gut-dm-03", Day: 18, Message: "Are you thinking of working with clients on gut health, or mostly learning for yourself?"},
	{ID: "gut-dm-04", Day: 33, Message: "Your mini diploma credit is close to expiring {{firstName}}. Any questions I can answer before then?"},
})

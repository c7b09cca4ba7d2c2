package nurture

const functionalMedicineCheckout = "https://checkout.accredipro.academy/functional-medicine-certification"

var FunctionalMedicineEmails = cleanSequence(Sequence{
	{
		ID:      "fm-01-welcome",
		Phase:   PhaseValue,
		Day:     0,
		Subject: "🎓 Welcome to your Functional Medicine Mini Diploma, {{firstName}}",
		Content: `Hi {{firstName}},

Welcome in! Your first lesson is unlocked and waiting for you.

Over the next few days you'll learn the **root-cause framework** our Board Certified practitioners use with every client: look upstream, connect the systems, and treat the person rather than the symptom.

Set aside 20 minutes today for Lesson 1. That's all it takes to get started.

Talk soon,
The AccrediPro Standards Institute team`,
	},
	{
		ID:      "fm-02-timeline",
		Phase:   PhaseValue,
		Day:     2,
		Subject: "The one tool every functional practitioner uses first",
		Content: `Hi {{firstName}},

Before a single lab is ordered, a functional practitioner maps the client's **health timeline**: antecedents, triggers and mediators from birth to today.

Try it on yourself tonight. Write down the big events (illness, moves, grief, antibiotics, pregnancies) and the symptoms that appeared after each one. You will be surprised how clearly the story shows up on paper.

Lesson 3 walks you through a full case timeline step by step.`,
	},
	{
		ID:      "fm-03-case-study",
		Phase:   PhaseValue,
		Day:     5,
		Subject: "Case study: 7 years of fatigue, solved in 12 weeks",
		Content: `Hi {{firstName}},

Maria came to one of our graduates after seven years of "normal" labs and crushing fatigue.

Her timeline pointed to a gut infection after a trip abroad, followed by years of poor sleep and blood sugar swings. Three phases later (foundation, repair, sustain) she was back to running on weekends.

Nothing exotic. Just *systems thinking* applied in the right order. That's exactly what the certification teaches.`,
	},
	{
		ID:      "fm-04-career",
		Phase:   PhaseDesire,
		Day:     10,
		Subject: "💼 What a functional medicine practice actually earns",
		Content: `Hi {{firstName}},

A question we hear a lot: can this really become a career?

Our Certified Practitioners typically offer 3 month programmes between $1,500 and $3,000. Six clients a month is a full-time income for most of them, and many work entirely online from home.

Use the pricing calculator inside your mini diploma to run your own numbers. It takes two minutes.`,
	},
	{
		ID:      "fm-05-certification",
		Phase:   PhaseDesire,
		Day:     14,
		Subject: "From mini diploma to Board Certified",
		Content: `Hi {{firstName}},

You've had a taste. Here is the full path:

Foundation Certified (FC): the core framework and client intake.
Certified Practitioner (CP): labs, protocols and supervised case work.
Board Certified (BC): advanced cases, mentorship and your own Mastermind Circle pod.

Everything you complete in the mini diploma counts toward your FC credits.

See the full curriculum: https://checkout.accredipro.academy/functional-medicine-certification`,
	},
	{
		ID:      "fm-06-objections",
		Phase:   PhaseDecision,
		Day:     21,
		Subject: "\"I'm not a doctor. Can I really do this?\"",
		Content: `Hi {{firstName}},

Most of our graduates are nurses, coaches, personal trainers and career changers. None of them are doctors.

The certification teaches you to work within your scope: you educate, you coach, you collaborate with medical providers. You never diagnose or prescribe.

If that's been holding you back, reply to this email. A real person on our team reads every reply.`,
	},
	{
		ID:      "fm-07-deadline",
		Phase:   PhaseDecision,
		Day:     30,
		Subject: "⏰ Your mini diploma credit expires soon",
		Content: `Hi {{firstName}},

Your mini diploma credit toward the full certification is valid for 30 more days.

Enroll before then and the lessons you've already finished are applied automatically, so you start ahead.

Claim your place: https://checkout.accredipro.academy/functional-medicine-certification`,
	},
	{
		ID:      "fm-08-last-call",
		Phase:   PhaseDecision,
		Day:     45,
		Subject: "Last call for your credit, {{firstName}}",
		Content: `Hi {{firstName}},

This is the final reminder: your credit toward the Functional Medicine certification closes in a few days.

If now isn't the right time, no hard feelings. Your mini diploma stays yours forever.

https://checkout.accredipro.academy/functional-medicine-certification`,
	},
	{
		ID:      "fm-09-reengage",
		Phase:   PhaseReEngage,
		Day:     60,
		Subject: "Still thinking about it? 🌱",
		Content: `Hi {{firstName}},

It's been two months since you started your mini diploma. We'd love to know where you landed.

If you're still curious about functional medicine, Lesson 1 is always open for a refresher, and our admissions team is happy to answer questions on a short call.

Wishing you well either way.`,
	},
})

var FunctionalMedicineDMs = cleanDMs(DMSequence{
	{ID: "fm-dm-01", Day: 1, Message: "Hey {{firstName}}! 👋 Saw you started the Functional Medicine mini diploma. What made you curious about root-cause health?"},
	{ID: "fm-dm-02", Day: 4, Message: "How did the health timeline lesson land? Most people say it's the moment everything clicks."},
	{ID: "fm-dm-03", Day: 12, Message: "Quick one: are you exploring this for yourself, or thinking about working with clients?"},
	{ID: "fm-dm-04", Day: 25, Message: "If you're weighing up the full certification, I'm happy to share what the first month looks like. Just say the word."},
	{ID: "fm-dm-05", Day: 40, Message: "Heads up {{firstName}}, your mini diploma credit is close to expiring. Want me to hold a spot for you?"},
})

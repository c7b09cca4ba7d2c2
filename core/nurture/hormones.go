package nurture

var WomensHormoneEmails = cleanSequence(Sequence{
	{
		ID:      "hormone-01-welcome",
		Phase:   PhaseValue,
		Day:     0,
		Subject: "Welcome to the Women's Hormone Health Mini Diploma 🌸",
		Content: `Hi {{firstName}},

Welcome! Your first lesson on the **hormone symphony** is ready.

Estrogen, progesterone, cortisol, thyroid and insulin never act alone. When one shifts, the others follow. Understanding that is what separates a hormone specialist from a symptom chaser.`,
	},
	{
		ID:      "hormone-02-checker",
		Phase:   PhaseValue,
		Day:     2,
		Subject: "Which hormone pattern fits you?",
		Content: `Hi {{firstName}},

The Hormone Symptom Checker in your resources ranks the top imbalance patterns from the symptoms you tick.

Try it, then read Lesson 2 with your results beside you. It makes the physiology far easier to remember.`,
	},
	{
		ID:      "hormone-03-cycle",
		Phase:   PhaseValue,
		Day:     5,
		Subject: "Your cycle is a monthly report card",
		Content: `Hi {{firstName}},

Cycle length, flow, PMS and mid-cycle energy tell a practitioner more than most single blood tests.

Lesson 3 shows how to read the four phases and which symptoms point toward low progesterone or estrogen dominance.`,
	},
	{
		ID:      "hormone-04-market",
		Phase:   PhaseDesire,
		Day:     11,
		Subject: "Millions of women are looking for exactly this",
		Content: `Hi {{firstName}},

Perimenopause alone affects every woman who lives long enough, and most say they felt dismissed when they asked for help.

Women's hormone specialists are one of the fastest growing niches our graduates build practices in.`,
	},
	{
		ID:      "hormone-05-certification",
		Phase:   PhaseDesire,
		Day:     17,
		Subject: "The Women's Hormone Health certification",
		Content: `Hi {{firstName}},

The full programme covers cycle mapping, DUTCH and blood hormone testing, thyroid, perimenopause and fertility support, plus supervised client cases.

Your mini diploma lessons are credited toward it: https://checkout.accredipro.academy/womens-hormone-certification`,
	},
	{
		ID:      "hormone-06-deadline",
		Phase:   PhaseDecision,
		Day:     30,
		Subject: "Your credit toward certification expires soon",
		Content: `Hi {{firstName}},

A quick reminder that your mini diploma credit is time limited.

Enroll while it's active and begin with your completed lessons already counted: https://checkout.accredipro.academy/womens-hormone-certification`,
	},
	{
		ID:      "hormone-07-last-call",
		Phase:   PhaseDecision,
		Day:     44,
		Subject: "Last chance to use your credit ⏰",
		Content: `Hi {{firstName}},

This is the last email about your credit. After this week it closes.

If you've been on the fence, reply and tell us what's holding you back. We read every message.`,
	},
	{
		ID:      "hormone-08-reengage",
		Phase:   PhaseReEngage,
		Day:     60,
		Subject: "Checking in, {{firstName}}",
		Content: `Hi {{firstName}},

It's been a while since your mini diploma. We hope the lessons helped you understand your own hormones a little better.

Whenever the time is right, the full certification will be here.`,
	},
})

var WomensHormoneDMs = cleanDMs(DMSequence{
	{ID: "hormone-dm-01", Day: 1, Message: "Hi {{firstName}} 🌸 So glad you joined the hormone mini diploma! Is this for you, or for the women you want to help?"},
	{ID: "hormone-dm-02", Day: 7, Message: "What did the Hormone Symptom Checker show as your top pattern? Curious if it matched what you expected."},
	{ID: "hormone-dm-03", Day: 20, Message: "Would it help to see how our graduates structure their first hormone programme? I can send an example."},
	{ID: "hormone-dm-04", Day: 38, Message: "Your certification credit closes soon {{firstName}}. Want to chat through it?"},
})

var MenopauseEmails = cleanSequence(Sequence{
	{
		ID:      "meno-01-welcome",
		Phase:   PhaseValue,
		Day:     0,
		Subject: "Welcome to the Menopause Support Mini Diploma",
		Content: `Hi {{firstName}},

Welcome! Lesson 1 explains what actually changes through perimenopause and menopause, and why the transition can take up to ten years.

Hot flashes get the headlines, but sleep, mood, joint pain and blood sugar shifts are often harder for women to live with.`,
	},
	{
		ID:      "meno-02-symptoms",
		Phase:   PhaseValue,
		Day:     3,
		Subject: "34 symptoms nobody warned her about",
		Content: `Hi {{firstName}},

Anxiety, itchy skin, frozen shoulder, brain fog, heart palpitations. Many women never connect these to hormones.

Lesson 2 gives you a symptom map you can use in your very first client conversation.`,
	},
	{
		ID:      "meno-03-lifestyle",
		Phase:   PhaseValue,
		Day:     6,
		Subject: "The 4 lifestyle levers that matter most in midlife",
		Content: `Hi {{firstName}},

Strength training, protein, sleep and stress regulation move the needle more than any supplement.

Lesson 4 walks through how to coach each one without overwhelming your client.`,
	},
	{
		ID:      "meno-04-certification",
		Phase:   PhaseDesire,
		Day:     14,
		Subject: "Become a certified menopause support practitioner",
		Content: `Hi {{firstName}},

The full certification builds on the Women's Hormone Health programme with a dedicated menopause track, HRT-informed coaching and case supervision.

Details here: https://checkout.accredipro.academy/womens-hormone-certification`,
	},
	{
		ID:      "meno-05-story",
		Phase:   PhaseDecision,
		Day:     28,
		Subject: "\"I help the women I wish had helped me\"",
		Content: `Hi {{firstName}},

Carol went through a rough menopause with no support. At 54 she certified with us and now runs small group programmes for women in her town and online.

Your mini diploma is the same first step she took.`,
	},
	{
		ID:      "meno-06-reengage",
		Phase:   PhaseReEngage,
		Day:     60,
		Subject: "Still here for you, {{firstName}}",
		Content: `Hi {{firstName}},

Two months on from your mini diploma, we wanted to say thank you for learning with us.

If you'd like to go further, our admissions team is one reply away.`,
	},
})

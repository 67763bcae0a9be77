// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "math/rand"

// Treasure is a reward block placed at the bottom of the topic digest for
// readers who scroll all the way down.
type Treasure struct {
	Title string
	Body  string
}

// welcomeMessages open the topic digest. One is chosen at random per run.
var welcomeMessages = []string{
	"🏃‍♀️ Step by step, paper by paper. You're literally ascending while reading about the cosmos. Iconic.",
	"⭐ Here you are, staying up-to-date on your literature review. Nice work!",
	"🚀 Cardio + astro-ph = an insane form of multitasking. You're a rockstar.",
	"🌟 Fun fact: reading papers on a stepmill burns mass, just like a star. You're basically a main sequence queen.",
	"💪 Other people scroll Instagram at the gym. You read about stellar evolution. We are not the same.",
	"🔭 Your heart rate is up, your knowledge is expanding. The universe is proud of you.",
	"✨ Every step you take is one step closer to tenure and one step up the stepmill. Synergy!",
	"🌙 The Moon's escape velocity is 2.38 km/s. Your's must be higher because NOTHING can stop you.",
	"⚡ You're generating more power than a brown dwarf right now. Keep climbing!",
	"🍕 You could be eating pizza in bed. But no. You're on the stepmill. Reading about LITHIUM DEPLETION.",
	"🌠 Somewhere, a committee is meeting without you. But you? You're ASCENDING the stepmill.",
	"💫 Hot take: the stepmill is just a really boring rocket. You're training for space.",
	"🏔️ Sir Edmund Hillary climbed Everest. You're climbing a stepmill in Wisconsin. Both required questionable judgment and excellent cardiovascular fitness.",
	"🔥 Your VO2 max called. It said 'thank you for the gains and the gyrochronology.'",
	"🐢 This is the only acceptable way to read about rotational evolution.",
	"🎪 Welcome to the circus: you're a tenure-track professor reading arXiv on a stepmill at 6am. The clown makeup is optional.",
	"🔭 In the time it takes you to finish this stepmill session, light from the Sun will have traveled about 2.4 AU. You will have traveled about 40 floors. Both are valid units of progress.",
	"💪 Sisyphus pushed a boulder up a hill for eternity, but did he do it while reading astro-ph?",
	"☕ You could be drinking hot cocoa and relaxing. Instead you're sweating and reading about chromospheric activity. Your choices are questionable.",
	"🧗 The stepmill has no summit. The literature has no end. Your dedication has no explanation. We climb anyway.",
	"🎰 Every paper is a slot machine. Will it be relevant? Will it scoop you? Will it cite you? Spin the wheel. Read the abstract. Feel something.",
	"🚿 You will forget 80% of these abstracts by the time you shower. This is not a personal failing. This is the human condition. We read anyway.",
	"🔬 Studies show that reading papers on a stepmill increases comprehension by 0%. But it does make you feel like a high-achieving weirdo, and honestly that's worth something.",
	"🌙 Tonight's forecast: 85% chance of you lying awake thinking about that one weird result in paper #3. But that's future you's problem.",
}

// bottomTreasures close the topic digest. One is chosen at random per run.
var bottomTreasures = []Treasure{
	{"🗓️ CALENDAR INVITE", "Event: Read arXiv digest on stepmill. When: Tomorrow. And the next day. Recurring: Forever. Attendees: Just you. Location: The void (the gym). RSVP: You already did."},
	{"🪐 COSMIC PERSPECTIVE", "In 5 billion years, the Sun will expand and engulf the Earth. None of these papers will matter. But you read them anyway. That's either beautiful or stupid. Probably both."},
	{"🏁 FINISH LINE", "You crossed it. There's no medal. There's no ceremony. There's just the quiet satisfaction of knowing you read an entire digest while climbing to nowhere."},
	{"🗺️ YOU ARE HERE", "Congratulations. You've reached the bottom of an email, the peak of a fake mountain, and probably the limit of your quads' patience. Plant your flag. You earned it."},
	{"🎉 YOU MADE IT!", "Congratulations! You scrolled through the whole digest. Your dedication to the literature is matched only by your cardiovascular endurance. Gold star for you: ⭐"},
	{"🔮 FORTUNE COOKIE", "Your astronomy fortune: 'A paper you cite today will cite you back within 5 years.' Lucky numbers: 42, 3.14, 6.67×10⁻¹¹"},
	{"🦖 PALEO-ASTRONOMY FACT", "65 million years ago, a T-Rex could have looked up and seen different constellations. The Big Dipper didn't exist yet. Anyway, great job finishing this email!"},
	{"🎵 STUCK IN YOUR HEAD", "🎵 We didn't start the fire / It was always burning since the stellar core was churning 🎵 You're welcome. And congrats on finishing!"},
	{"🏆 ACHIEVEMENT UNLOCKED", "'+1 Literature Awareness' - You have gained 50 XP in the skill 'Keeping Up With The Field.' Only 9,950 more XP until you feel caught up!"},
	{"🌶️ HOT TAKE ZONE", "Controversial opinion: log(g) should be called 'surface gravity vibe check.' Thank you for coming to my TED talk at the bottom of this email."},
	{"🎲 D&D STATS UPDATE", "Your literature review stats this week: STR +1 (from stepmill), INT +3 (from papers), WIS +2 (knowing to combine them). Roll for initiative on your next paper."},
	{"🐛 BUG REPORT", "ERROR 418: You have reached the bottom of the email. This is not a bug, it's a feature. Status: Proud of you."},
	{"📊 FAKE STATISTICS", "Studies show that 94% of astronomers who read digests on stepmills publish 3x more papers. (Source: I made it up. But you DID finish this email.)"},
	{"🎬 MOVIE PITCH", "STEPMILL ASTRONOMER: One woman. One machine. 47 abstracts. Coming this summer. Starring you. You're the hero of this story."},
	{"🧪 EXPERIMENT RESULTS", "Hypothesis: You would read this whole email. Method: Sent email. Results: You're reading this. Conclusion: Hypothesis confirmed. P-value: very significant."},
	{"🌈 WHOLESOME MOMENT", "Hey. Genuinely. It's hard to keep up with the literature while doing everything else. The fact that you're trying means a lot. You're doing great. 💜"},
	{"🎰 SLOT MACHINE", "🍒🍒🍒 JACKPOT! You won: the knowledge from all these abstracts, leg strength, and this nice message. Cash out anytime (close email)."},
	{"📧 META MOMENT", "You're reading a silly message at the bottom of an automated email you built yourself. You engineered your own dopamine hit. That's either genius or a cry for help. Probably both."},
	{"🛸 ALIEN MESSAGE", "GREETINGS HUMAN. WE HAVE OBSERVED YOUR DEDICATION TO BOTH PHYSICAL AND INTELLECTUAL PURSUITS. YOU WILL BE SPARED DURING THE INVASION. jk great job reading!"},
}

func randomWelcome() string {
	return welcomeMessages[rand.Intn(len(welcomeMessages))]
}

func randomTreasure() Treasure {
	return bottomTreasures[rand.Intn(len(bottomTreasures))]
}

package scoring

// Signals is what feedback rules see.
type Signals struct {
	Metrics     Metrics
	Pace        Pace
	FillerCount int
}

// Rule adds a strength, or an improvement with its recommendation, when When holds.
type Rule struct {
	When           func(Signals) bool
	Strength       string
	Improvement    string
	Recommendation string
}

// Rules is evaluated in order; new rules are appended here.
var Rules = []Rule{
	{
		When:     func(s Signals) bool { return s.Pace.Status == PaceGood },
		Strength: "Your speaking pace was excellent and engaging.",
	},
	{
		When:     func(s Signals) bool { return s.Metrics.Clarity > 90 },
		Strength: "Exceptional clarity. Your words were very easy to understand.",
	},
	{
		When:     func(s Signals) bool { return s.FillerCount == 0 },
		Strength: "Fantastic job avoiding filler words.",
	},
	{
		When:           func(s Signals) bool { return s.Pace.Status == PaceTooFast },
		Improvement:    "Speaking pace was too fast.",
		Recommendation: "Try to build in deliberate pauses after key sentences to control your speed and allow your audience to digest information.",
	},
	{
		When:           func(s Signals) bool { return s.Metrics.Fluency < 70 },
		Improvement:    "Speech fluency could be improved.",
		Recommendation: "Practice your speech to become more comfortable. When you catch yourself using a filler word, try to replace it with a silent pause.",
	},
	{
		When:           func(s Signals) bool { return s.Pace.Status == PaceTooSlow },
		Improvement:    "Speaking pace was slower than ideal.",
		Recommendation: "Rehearse with a timer and aim for around 150 words per minute so your delivery keeps its energy.",
	},
	{
		When:           func(s Signals) bool { return s.Metrics.Clarity < 70 },
		Improvement:    "Some words were hard to make out.",
		Recommendation: "Slow down on key words, open your mouth a little wider and record in a quiet room.",
	},
	{
		When:           func(s Signals) bool { return s.FillerCount >= 5 },
		Improvement:    "Filler words appeared frequently.",
		Recommendation: "Record a short practice talk and listen back for your most common filler word, then aim to halve it next time.",
	},
}

// Evaluate runs rules against s. The returned slices are never nil.
func Evaluate(rules []Rule, s Signals) Feedback {
	fb := Feedback{Strengths: []string{}, AreasForImprovement: []string{}, Recommendations: []string{}}
	for _, r := range rules {
		if !r.When(s) {
			continue
		}
		if r.Strength != "" {
			fb.Strengths = append(fb.Strengths, r.Strength)
		}
		if r.Improvement != "" {
			fb.AreasForImprovement = append(fb.AreasForImprovement, r.Improvement)
		}
		if r.Recommendation != "" {
			fb.Recommendations = append(fb.Recommendations, r.Recommendation)
		}
	}
	return fb
}

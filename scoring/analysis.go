// Package scoring turns a transcript and its word timings into a speaking report.
// Every function here is pure.
package scoring

type Options struct {
	Fillers FillerMode
	Rules   []Rule // nil means Rules
}

// Analyze runs the whole scoring pipeline.
func Analyze(transcript string, words []Word, opts Options) Analysis {
	fillers := CountFillers(transcript, opts.Fillers)
	fillerCount := TotalFillers(fillers)
	pace := CalculatePace(words)

	m := Metrics{
		Clarity: Clarity(words),
		Fluency: Fluency(words, fillerCount),
		Pace:    PaceScore(pace.WordsPerMinute),
	}
	overall := Composite(&m)

	rules := opts.Rules
	if rules == nil {
		rules = Rules
	}
	return Analysis{
		Transcript:   transcript,
		OverallScore: overall,
		Metrics:      m,
		Pace:         pace,
		FillerWords:  fillers,
		Feedback:     Evaluate(rules, Signals{Metrics: m, Pace: pace, FillerCount: fillerCount}),
	}
}

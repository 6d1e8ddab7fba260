package scoring

// Clarity is the mean word confidence scaled to 0..100.
func Clarity(words []Word) int {
	if len(words) == 0 {
		return 0
	}
	total := 0.0
	for _, w := range words {
		total += w.Confidence
	}
	return clamp(round(total / float64(len(words)) * 100))
}

// LongPauses counts gaps between consecutive words longer than LongPauseSeconds.
func LongPauses(words []Word) int {
	n := 0
	for i := 0; i+1 < len(words); i++ {
		if words[i+1].Start-words[i].End > LongPauseSeconds {
			n++
		}
	}
	return n
}

// Fluency starts at 100 and loses points per filler word and per long pause.
func Fluency(words []Word, fillerCount int) int {
	if len(words) < 2 {
		return PerfectScore
	}
	penalty := fillerCount*FillerPenalty + LongPauses(words)*LongPausePenalty
	return clamp(PerfectScore - penalty)
}

// Composite fills the confidence and tone metrics from the measured ones and
// returns the overall score.
func Composite(m *Metrics) int {
	m.Confidence = clamp(round(float64(m.Clarity)*ConfidenceClarityWeight +
		float64(m.Fluency)*ConfidenceFluencyWeight +
		float64(m.Pace)*ConfidencePaceWeight))
	m.Tone = PlaceholderTone

	return clamp(round(float64(m.Clarity)*OverallClarityWeight +
		float64(m.Fluency)*OverallFluencyWeight +
		float64(m.Pace)*OverallPaceWeight +
		float64(m.Confidence)*OverallConfidenceWeight))
}

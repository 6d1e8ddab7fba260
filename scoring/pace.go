package scoring

// CalculatePace derives words per minute from the first word's start to the
// last word's end.
func CalculatePace(words []Word) Pace {
	if len(words) == 0 {
		return Pace{Status: PaceNotAvailable}
	}
	minutes := (words[len(words)-1].End - words[0].Start) / 60
	if minutes <= 0 {
		return Pace{Status: PaceNotAvailable}
	}
	wpm := round(float64(len(words)) / minutes)
	return Pace{WordsPerMinute: wpm, Status: paceStatus(wpm)}
}

func paceStatus(wpm int) PaceStatus {
	switch {
	case wpm > PaceFastAbove:
		return PaceTooFast
	case wpm >= PaceGoodFrom:
		return PaceGood
	default:
		return PaceTooSlow
	}
}

// PaceScore is 100 inside IdealWPM±AcceptableWPMBand and falls off linearly outside it.
func PaceScore(wpm int) int {
	diff := wpm - IdealWPM
	if diff < 0 {
		diff = -diff
	}
	if diff <= AcceptableWPMBand {
		return PerfectScore
	}
	penalty := float64(diff-AcceptableWPMBand) * PacePenaltyPerWPM
	return clamp(round(PerfectScore - penalty))
}

package scoring

// Pace thresholds, in words per minute.
const (
	PaceFastAbove = 170
	PaceGoodFrom  = 130

	IdealWPM          = 150
	AcceptableWPMBand = 20
	PacePenaltyPerWPM = 1.5
)

// Fluency penalties.
const (
	LongPauseSeconds = 1.5
	FillerPenalty    = 2
	LongPausePenalty = 4
	PerfectScore     = 100
)

// PlaceholderTone stands in for the tone metric until an independent signal exists.
const PlaceholderTone = 75

// Composite weights. Each set sums to 1.
const (
	ConfidenceClarityWeight = 0.4
	ConfidenceFluencyWeight = 0.4
	ConfidencePaceWeight    = 0.2

	OverallClarityWeight    = 0.3
	OverallFluencyWeight    = 0.3
	OverallPaceWeight       = 0.2
	OverallConfidenceWeight = 0.2
)

package scoring

// Word is one recognized token with its timing in seconds.
type Word struct {
	Text       string  `json:"text" yaml:"text"`
	Start      float64 `json:"start" yaml:"start"`
	End        float64 `json:"end" yaml:"end"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

type PaceStatus string

const (
	PaceTooFast      PaceStatus = "Too Fast"
	PaceGood         PaceStatus = "Good"
	PaceTooSlow      PaceStatus = "Too Slow"
	PaceNotAvailable PaceStatus = "N/A"
)

type Pace struct {
	WordsPerMinute int        `json:"wordsPerMinute" yaml:"wordsPerMinute"`
	Status         PaceStatus `json:"status" yaml:"status"`
}

type Metrics struct {
	Clarity    int `json:"clarity" yaml:"clarity"`
	Fluency    int `json:"fluency" yaml:"fluency"`
	Pace       int `json:"pace" yaml:"pace"`
	Confidence int `json:"confidence" yaml:"confidence"`
	Tone       int `json:"tone" yaml:"tone"`
}

type Feedback struct {
	Strengths           []string `json:"strengths" yaml:"strengths"`
	AreasForImprovement []string `json:"areasForImprovement" yaml:"areasForImprovement"`
	Recommendations     []string `json:"recommendations" yaml:"recommendations"`
}

// Analysis is the scored result for one transcript.
type Analysis struct {
	Transcript   string         `json:"transcript" yaml:"transcript"`
	OverallScore int            `json:"overallScore" yaml:"overallScore"`
	Metrics      Metrics        `json:"metrics" yaml:"metrics"`
	Pace         Pace           `json:"pace" yaml:"pace"`
	FillerWords  map[string]int `json:"fillerWords" yaml:"fillerWords"`
	Feedback     `yaml:",inline"`
}

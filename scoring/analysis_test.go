package scoring

import (
	"reflect"
	"testing"
)

func TestAnalyze_CleanMinute(t *testing.T) {
	a := Analyze("a clean and steady talk", evenWords(150, 60, 0.9), Options{})

	if a.Pace != (Pace{150, PaceGood}) {
		t.Errorf("Pace = %+v", a.Pace)
	}
	want := Metrics{Clarity: 90, Fluency: 100, Pace: 100, Confidence: 96, Tone: 75}
	if a.Metrics != want {
		t.Errorf("Metrics = %+v, want %+v", a.Metrics, want)
	}
	if a.OverallScore != 96 {
		t.Errorf("OverallScore = %d, want 96", a.OverallScore)
	}
	if len(a.FillerWords) != 0 {
		t.Errorf("FillerWords = %v", a.FillerWords)
	}
	wantStrengths := []string{
		"Your speaking pace was excellent and engaging.",
		"Fantastic job avoiding filler words.",
	}
	if !reflect.DeepEqual(a.Strengths, wantStrengths) {
		t.Errorf("Strengths = %v", a.Strengths)
	}
}

func TestAnalyze_LongPause(t *testing.T) {
	words := evenWords(150, 60, 0.95)
	for i := 75; i < len(words); i++ {
		words[i].Start += 3
		words[i].End += 3
	}

	a := Analyze("steady talk with one break", words, Options{})
	if a.Metrics.Fluency != 96 {
		t.Errorf("Fluency = %d, want 96", a.Metrics.Fluency)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	words := evenWords(40, 20, 0.77)
	first := Analyze("um so like it was um great", words, Options{})
	for i := 0; i < 5; i++ {
		if got := Analyze("um so like it was um great", words, Options{}); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestAnalyze_ScoresInRange(t *testing.T) {
	inputs := [][]Word{
		nil,
		{{Start: 0, End: 0.1, Confidence: 0}},
		evenWords(500, 30, 0.1),
		evenWords(3, 120, 1),
	}
	for i, words := range inputs {
		a := Analyze("um um um uh like so right", words, Options{})
		for name, v := range map[string]int{
			"overall":    a.OverallScore,
			"clarity":    a.Metrics.Clarity,
			"fluency":    a.Metrics.Fluency,
			"pace":       a.Metrics.Pace,
			"confidence": a.Metrics.Confidence,
		} {
			if v < 0 || v > 100 {
				t.Errorf("input %d: %s = %d out of range", i, name, v)
			}
		}
	}
}

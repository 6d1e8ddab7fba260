package orchestrator

import (
	"strings"
	"unicode/utf8"

	"github.com/speakwise/analyzer/clients"
	"github.com/speakwise/analyzer/scoring"
)

// MinTranscriptChars is the shortest trimmed transcript worth scoring.
const MinTranscriptChars = 3

// toWords flattens the per-segment word stamps in recognition order.
// Segments without word timings contribute nothing.
func toWords(asr *clients.ASRResp) []scoring.Word {
	n := 0
	for _, s := range asr.Segments {
		n += len(s.Words)
	}
	words := make([]scoring.Word, 0, n)
	for _, s := range asr.Segments {
		for _, w := range s.Words {
			words = append(words, scoring.Word{
				Text:       strings.TrimSpace(w.Word),
				Start:      w.Start,
				End:        w.End,
				Confidence: w.Probability,
			})
		}
	}
	return words
}

func validTranscript(t string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(t)) >= MinTranscriptChars
}

func preview(t string, n int) string {
	r := []rune(t)
	if len(r) <= n {
		return t
	}
	return string(r[:n]) + "..."
}

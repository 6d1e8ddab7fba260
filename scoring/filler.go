package scoring

import "strings"

// FillerVocabulary is the closed set of filler terms, in reporting order.
var FillerVocabulary = []string{"um", "uh", "like", "you know", "so", "right", "actually", "basically", "i mean"}

var punctuation = strings.NewReplacer(".", "", ",", "", "!", "", "?", "", ";", "", ":", "")

// FillerMode selects how multi-word filler terms are handled.
type FillerMode int

const (
	// FillerTokens matches single tokens only, so "you know" and "i mean"
	// are never counted.
	FillerTokens FillerMode = iota
	// FillerPhrases also matches multi-word terms over consecutive tokens.
	FillerPhrases
)

func tokenize(transcript string) []string {
	return strings.Fields(punctuation.Replace(strings.ToLower(transcript)))
}

// CountFillers tallies filler terms in transcript. Only terms that occur are present.
func CountFillers(transcript string, mode FillerMode) map[string]int {
	single := map[string]bool{}
	var phrases [][]string
	for _, term := range FillerVocabulary {
		parts := strings.Fields(term)
		if len(parts) == 1 {
			single[term] = true
		} else if mode == FillerPhrases {
			phrases = append(phrases, parts)
		}
	}

	counts := map[string]int{}
	tokens := tokenize(transcript)
	for i := 0; i < len(tokens); i++ {
		if p := matchPhrase(tokens[i:], phrases); p != nil {
			counts[strings.Join(p, " ")]++
			i += len(p) - 1
			continue
		}
		if single[tokens[i]] {
			counts[tokens[i]]++
		}
	}
	return counts
}

func matchPhrase(tokens []string, phrases [][]string) []string {
	for _, p := range phrases {
		if len(p) > len(tokens) {
			continue
		}
		ok := true
		for j := range p {
			if tokens[j] != p[j] {
				ok = false
				break
			}
		}
		if ok {
			return p
		}
	}
	return nil
}

// TotalFillers sums a tally.
func TotalFillers(tally map[string]int) int {
	n := 0
	for _, c := range tally {
		n += c
	}
	return n
}

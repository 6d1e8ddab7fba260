package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/speakwise/analyzer/scoring"
)

func writeTranscription(t *testing.T, transcript string, n int) string {
	t.Helper()
	in := transcription{Transcript: transcript}
	for i := 0; i < n; i++ {
		in.Words = append(in.Words, scoring.Word{Text: "w", Start: float64(i) * 0.4, End: float64(i+1) * 0.4, Confidence: 0.9})
	}
	b, _ := json.Marshal(in)
	path := filepath.Join(t.TempDir(), "t.json")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestScoreCommand(t *testing.T) {
	path := writeTranscription(t, "a steady minute of speech", 150)

	out, err := run(t, "score", path, "--format", "yaml")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	for _, want := range []string{"overallScore: 96", "wordsPerMinute: 150", "status: Good"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out, err = run(t, "score", path, "--format", "json")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(out), &m); err != nil {
		t.Fatalf("not json: %v\n%s", err, out)
	}
	if m["overallScore"] != float64(96) {
		t.Errorf("overallScore = %v", m["overallScore"])
	}
}

func TestScoreCommand_TooShort(t *testing.T) {
	path := writeTranscription(t, "hi", 0)
	if _, err := run(t, "score", path, "--format", "json"); err == nil {
		t.Error("expected insufficient content error")
	}
}

func TestScoreCommand_BadFormat(t *testing.T) {
	path := writeTranscription(t, "a steady minute of speech", 10)
	if _, err := run(t, "score", path, "--format", "xml"); err == nil {
		t.Error("expected format error")
	}
}

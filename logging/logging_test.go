package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewWithOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithOutput(&buf, "debug", "json")
	if err != nil {
		t.Fatal(err)
	}
	l.WithField("user", "alice").Debug("scored")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("not json: %q", buf.String())
	}
	if entry["msg"] != "scored" || entry["user"] != "alice" || entry["level"] != "debug" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNewWithOutput_Levels(t *testing.T) {
	l, err := NewWithOutput(&bytes.Buffer{}, "WARN", "text")
	if err != nil {
		t.Fatal(err)
	}
	if l.GetLevel() != logrus.WarnLevel {
		t.Errorf("level = %v", l.GetLevel())
	}

	if _, err := NewWithOutput(&bytes.Buffer{}, "loud", "text"); err == nil {
		t.Error("expected bad level error")
	}
	if _, err := NewWithOutput(&bytes.Buffer{}, "info", "xml"); err == nil {
		t.Error("expected bad format error")
	}
}

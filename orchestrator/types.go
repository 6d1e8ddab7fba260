package orchestrator

import (
	"encoding/json"
	"io"
	"time"

	"github.com/speakwise/analyzer/scoring"
)

// Audio is one uploaded recording.
type Audio struct {
	Name string
	Data io.Reader
	Size int64
}

// Report is a scored analysis. ID is empty until a store assigns one.
type Report struct {
	ID               string `json:"-" yaml:"id,omitempty"`
	UserID           string `json:"user,omitempty" yaml:"user,omitempty"`
	scoring.Analysis `yaml:",inline"`
	CreatedAt        time.Time `json:"createdAt" yaml:"createdAt"`
}

// MarshalJSON writes id as null for reports that were never persisted.
func (r Report) MarshalJSON() ([]byte, error) {
	type plain Report
	out := struct {
		ID *string `json:"id"`
		plain
	}{plain: plain(r)}
	if r.ID != "" {
		out.ID = &r.ID
	}
	return json.Marshal(out)
}

func (r *Report) UnmarshalJSON(b []byte) error {
	type plain Report
	var in struct {
		ID *string `json:"id"`
		plain
	}
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	*r = Report(in.plain)
	if in.ID != nil {
		r.ID = *in.ID
	}
	return nil
}

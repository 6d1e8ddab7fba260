package orchestrator

import (
	"context"
	"io"

	"github.com/speakwise/analyzer/clients"
)

// Persister stores a finished report and returns the identifier it assigned.
type Persister interface {
	Save(ctx context.Context, r Report) (string, error)
}

// Transcriber turns an audio upload into text with word timings.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (*clients.ASRResp, error)
}
